package services

import (
	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

// MealSpec is one requested meal slot in a diet plan or diet template
// body. Exactly one of FoodItemID/TemplateID is expected in valid data,
// but neither is enforced here; see the reference check below for the
// template side.
type MealSpec struct {
	DayOfWeek  string  `json:"day_of_week"`
	MealType   string  `json:"meal_type"`
	FoodItemID *uint   `json:"food_item_id"`
	TemplateID *uint   `json:"template_id"`
	Quantity   float64 `json:"quantity"`
}

func (m MealSpec) quantityOrDefault() float64 {
	if m.Quantity == 0 {
		return 1
	}
	return m.Quantity
}

// validateTemplateRefs confirms every distinct template id referenced by
// the meal list exists, with a single IN query. Returning an
// *InvalidTemplateError rolls the surrounding transaction back before any
// child row is written. Skipped entirely when no meal references a
// template.
func validateTemplateRefs(tx *gorm.DB, meals []MealSpec) error {
	seen := make(map[uint]bool)
	var ids []uint
	for _, meal := range meals {
		if meal.TemplateID == nil || seen[*meal.TemplateID] {
			continue
		}
		seen[*meal.TemplateID] = true
		ids = append(ids, *meal.TemplateID)
	}
	if len(ids) == 0 {
		return nil
	}

	var found []uint
	if err := tx.Model(&models.FoodTemplate{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return err
	}

	valid := make(map[uint]bool, len(found))
	for _, id := range found {
		valid[id] = true
	}

	var invalid []uint
	for _, id := range ids {
		if !valid[id] {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return &InvalidTemplateError{IDs: invalid}
	}
	return nil
}
