package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

// DietTemplateService mirrors the diet-plan write protocol for reusable
// weekly templates.
type DietTemplateService struct {
	db *gorm.DB
}

func NewDietTemplateService(db *gorm.DB) *DietTemplateService {
	return &DietTemplateService{db: db}
}

func (s *DietTemplateService) Create(template *models.DietTemplate, meals []MealSpec) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := validateTemplateRefs(tx, meals); err != nil {
			return err
		}
		if err := tx.Create(template).Error; err != nil {
			return err
		}
		rows := buildTemplateMeals(template.ID, meals)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *DietTemplateService) Replace(id uint, name, description string, meals []MealSpec) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var template models.DietTemplate
		if err := tx.First(&template, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"name":        name,
			"description": description,
		}
		if err := tx.Model(&template).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Where("diet_template_id = ?", id).Delete(&models.DietTemplateMeal{}).Error; err != nil {
			return err
		}

		if err := validateTemplateRefs(tx, meals); err != nil {
			return err
		}
		rows := buildTemplateMeals(id, meals)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *DietTemplateService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("diet_template_id = ?", id).Delete(&models.DietTemplateMeal{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.DietTemplate{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *DietTemplateService) Get(id uint) (*models.DietTemplate, error) {
	var template models.DietTemplate
	err := s.db.
		Preload("Meals.FoodItem").
		Preload("Meals.Template.Items.FoodItem").
		First(&template, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if template.Meals == nil {
		template.Meals = []models.DietTemplateMeal{}
	}
	return &template, nil
}

func (s *DietTemplateService) ListByNutritionist(nutritionistID uint) ([]models.DietTemplate, error) {
	var templates []models.DietTemplate
	err := s.db.
		Preload("Meals.FoodItem").
		Preload("Meals.Template.Items.FoodItem").
		Where("nutritionist_id = ?", nutritionistID).
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].Meals == nil {
			templates[i].Meals = []models.DietTemplateMeal{}
		}
	}
	return templates, nil
}

func buildTemplateMeals(templateID uint, meals []MealSpec) []models.DietTemplateMeal {
	rows := make([]models.DietTemplateMeal, 0, len(meals))
	for _, meal := range meals {
		rows = append(rows, models.DietTemplateMeal{
			DietTemplateID: templateID,
			DayOfWeek:      meal.DayOfWeek,
			MealType:       meal.MealType,
			FoodItemID:     meal.FoodItemID,
			TemplateID:     meal.TemplateID,
			Quantity:       meal.quantityOrDefault(),
		})
	}
	return rows
}
