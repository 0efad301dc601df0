package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

// FoodItemSpec is one requested row of a food template's item set.
type FoodItemSpec struct {
	FoodItemID uint    `json:"food_item_id"`
	Quantity   float64 `json:"quantity"`
}

type FoodTemplateService struct {
	db *gorm.DB
}

func NewFoodTemplateService(db *gorm.DB) *FoodTemplateService {
	return &FoodTemplateService{db: db}
}

func (s *FoodTemplateService) Create(template *models.FoodTemplate, items []FoodItemSpec) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(template).Error; err != nil {
			return err
		}
		rows := buildTemplateItems(template.ID, items)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *FoodTemplateService) Replace(id uint, name, description string, items []FoodItemSpec) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var template models.FoodTemplate
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
		if err := tx.Where("template_id = ?", id).Delete(&models.FoodTemplateItem{}).Error; err != nil {
			return err
		}

		rows := buildTemplateItems(id, items)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *FoodTemplateService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&models.FoodTemplateItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.FoodTemplate{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *FoodTemplateService) Get(id uint) (*models.FoodTemplate, error) {
	var template models.FoodTemplate
	err := s.db.Preload("Items.FoodItem").First(&template, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if template.Items == nil {
		template.Items = []models.FoodTemplateItem{}
	}
	return &template, nil
}

func (s *FoodTemplateService) ListByNutritionist(nutritionistID uint) ([]models.FoodTemplate, error) {
	var templates []models.FoodTemplate
	err := s.db.
		Preload("Items.FoodItem").
		Where("nutritionist_id = ?", nutritionistID).
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].Items == nil {
			templates[i].Items = []models.FoodTemplateItem{}
		}
	}
	return templates, nil
}

func buildTemplateItems(templateID uint, items []FoodItemSpec) []models.FoodTemplateItem {
	rows := make([]models.FoodTemplateItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.FoodTemplateItem{
			TemplateID: templateID,
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
		})
	}
	return rows
}
