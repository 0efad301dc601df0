package models

import "time"

// FoodItem is a catalog entry curated by the admin dashboard. Macros are
// per listed quantity, not per 100g.
type FoodItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Quantity   string    `json:"quantity"`
	Kcal       float64   `json:"kcal"`
	P          float64   `json:"p"`
	C          float64   `json:"c"`
	F          float64   `json:"f"`
	Image      string    `json:"image"`
	IsVeg      bool      `gorm:"column:is_veg" json:"isVeg"`
	IsSelected bool      `gorm:"column:is_selected" json:"isSelected"`
	MealType   string    `gorm:"column:meal_type" json:"mealType"`
	Recipe     string    `json:"recipe"`
	CreatedAt  time.Time `json:"created_at"`
}
