package models

import "time"

// DietPlan is authored by a nutritionist for one client. Meals never
// outlive the plan: updates replace the whole set, deletes remove the
// meals before the plan row.
type DietPlan struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	NutritionistID uint           `gorm:"index" json:"nutritionist_id"`
	ClientID       uint           `json:"client_id"`
	StartDate      string         `gorm:"type:date" json:"start_date"`
	EndDate        string         `gorm:"type:date" json:"end_date"`
	Notes          string         `json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
	Meals          []DietPlanMeal `gorm:"foreignKey:DietPlanID" json:"meals"`
}

// DietPlanMeal points at either a standalone catalog item or a reusable
// food template. The schema does not enforce the exclusivity; rows with
// both or neither set are accepted as-is.
type DietPlanMeal struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	DietPlanID uint          `gorm:"index" json:"-"`
	DayOfWeek  string        `json:"day_of_week"`
	MealType   string        `json:"meal_type"`
	FoodItemID *uint         `json:"food_item_id"`
	TemplateID *uint         `json:"template_id"`
	Quantity   float64       `json:"quantity"`
	FoodItem   *FoodItem     `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
	Template   *FoodTemplate `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
}
