package models

import "time"

// FoodTemplate is a reusable bundle of catalog items a nutritionist
// composes once and references from diet plans.
type FoodTemplate struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	Name           string             `gorm:"not null" json:"name"`
	Description    string             `json:"description"`
	NutritionistID uint               `gorm:"index" json:"nutritionist_id"`
	CreatedAt      time.Time          `json:"created_at"`
	Items          []FoodTemplateItem `gorm:"foreignKey:TemplateID" json:"food_items"`
}

type FoodTemplateItem struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	TemplateID uint      `gorm:"index" json:"-"`
	FoodItemID uint      `json:"food_item_id"`
	Quantity   float64   `json:"quantity"`
	FoodItem   *FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
}
