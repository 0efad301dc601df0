package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

type DietPlanService struct {
	db *gorm.DB
}

func NewDietPlanService(db *gorm.DB) *DietPlanService {
	return &DietPlanService{db: db}
}

// Create persists the plan and its meals as one unit. A failed meal
// insert (or a bad template reference) rolls the plan row back too.
func (s *DietPlanService) Create(plan *models.DietPlan, meals []MealSpec) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := validateTemplateRefs(tx, meals); err != nil {
			return err
		}
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		rows := buildPlanMeals(plan.ID, meals)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// Replace updates the plan's scalar fields and swaps the full meal set:
// delete everything, re-insert the submitted list. No diffing.
func (s *DietPlanService) Replace(id uint, startDate, endDate, notes string, meals []MealSpec) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.DietPlan
		if err := tx.First(&plan, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"start_date": startDate,
			"end_date":   endDate,
			"notes":      notes,
		}
		if err := tx.Model(&plan).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("diet_plan_id = ?", id).Delete(&models.DietPlanMeal{}).Error; err != nil {
			return err
		}

		if err := validateTemplateRefs(tx, meals); err != nil {
			return err
		}
		rows := buildPlanMeals(id, meals)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// Delete removes meals before the plan so the child rows never orphan. A
// missing plan rolls the meal deletion back and reports not-found.
func (s *DietPlanService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("diet_plan_id = ?", id).Delete(&models.DietPlanMeal{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.DietPlan{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *DietPlanService) Get(id uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := s.db.
		Preload("Meals.FoodItem").
		Preload("Meals.Template.Items.FoodItem").
		First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if plan.Meals == nil {
		plan.Meals = []models.DietPlanMeal{}
	}
	return &plan, nil
}

func (s *DietPlanService) ListByNutritionist(nutritionistID uint) ([]models.DietPlan, error) {
	var plans []models.DietPlan
	err := s.db.
		Preload("Meals.FoodItem").
		Preload("Meals.Template.Items.FoodItem").
		Where("nutritionist_id = ?", nutritionistID).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].Meals == nil {
			plans[i].Meals = []models.DietPlanMeal{}
		}
	}
	return plans, nil
}

func buildPlanMeals(planID uint, meals []MealSpec) []models.DietPlanMeal {
	rows := make([]models.DietPlanMeal, 0, len(meals))
	for _, meal := range meals {
		rows = append(rows, models.DietPlanMeal{
			DietPlanID: planID,
			DayOfWeek:  meal.DayOfWeek,
			MealType:   meal.MealType,
			FoodItemID: meal.FoodItemID,
			TemplateID: meal.TemplateID,
			Quantity:   meal.quantityOrDefault(),
		})
	}
	return rows
}
