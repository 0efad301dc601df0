package models

import "time"

// DietTemplate is a reusable weekly plan, same shape as DietPlan but not
// tied to a client or date range.
type DietTemplate struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	NutritionistID uint               `gorm:"index" json:"nutritionist_id"`
	Name           string             `gorm:"not null" json:"name"`
	Description    string             `json:"description"`
	CreatedAt      time.Time          `json:"created_at"`
	Meals          []DietTemplateMeal `gorm:"foreignKey:DietTemplateID" json:"meals"`
}

type DietTemplateMeal struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	DietTemplateID uint          `gorm:"index" json:"-"`
	DayOfWeek      string        `json:"day_of_week"`
	MealType       string        `json:"meal_type"`
	FoodItemID     *uint         `json:"food_item_id"`
	TemplateID     *uint         `json:"template_id"`
	Quantity       float64       `json:"quantity"`
	FoodItem       *FoodItem     `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
	Template       *FoodTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
}
