package models

import "time"

// TargetEntry is a food item the user plans to eat on a date.
type TargetEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:idx_target_user_date_food" json:"userId"`
	Date       string    `gorm:"type:date;uniqueIndex:idx_target_user_date_food" json:"date"`
	FoodItemID uint      `gorm:"uniqueIndex:idx_target_user_date_food" json:"foodId"`
	IsConsumed bool      `gorm:"column:is_consumed" json:"isConsumed"`
	FoodItem   *FoodItem `gorm:"foreignKey:FoodItemID" json:"-"`
}

// ConsumedFood records that the user actually ate the item that day.
type ConsumedFood struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:idx_consumed_user_date_food" json:"userId"`
	Date       string    `gorm:"type:date;uniqueIndex:idx_consumed_user_date_food" json:"date"`
	FoodItemID uint      `gorm:"uniqueIndex:idx_consumed_user_date_food" json:"foodId"`
	CreatedAt  time.Time `json:"createdAt"`
	FoodItem   *FoodItem `gorm:"foreignKey:FoodItemID" json:"-"`
}

// WaterSleep is the per-day hydration and sleep log, one row per user+date.
type WaterSleep struct {
	ID             uint    `gorm:"primaryKey" json:"-"`
	UserID         uint    `gorm:"uniqueIndex:idx_water_sleep_user_date" json:"userId"`
	Date           string  `gorm:"type:date;uniqueIndex:idx_water_sleep_user_date" json:"date"`
	GlassesOfWater int     `json:"glasses_of_water"`
	HoursOfSleep   float64 `json:"hours_of_sleep"`
}
