package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

type FoodItemService struct {
	db *gorm.DB
}

func NewFoodItemService(db *gorm.DB) *FoodItemService {
	return &FoodItemService{db: db}
}

func (s *FoodItemService) List() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FoodItemService) ListByMealType(mealType string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Where("meal_type = ?", mealType).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FoodItemService) Get(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *FoodItemService) Create(item *models.FoodItem) error {
	return s.db.Create(item).Error
}

// Update applies only the fields the client sent, so a PATCH with just
// {"kcal": 120} leaves the rest of the row alone.
func (s *FoodItemService) Update(id uint, updates map[string]interface{}) error {
	allowed := map[string]string{
		"name":       "name",
		"quantity":   "quantity",
		"kcal":       "kcal",
		"p":          "p",
		"c":          "c",
		"f":          "f",
		"image":      "image",
		"isVeg":      "is_veg",
		"isSelected": "is_selected",
		"mealType":   "meal_type",
		"recipe":     "recipe",
	}
	fields := map[string]interface{}{}
	for k, v := range updates {
		if col, ok := allowed[k]; ok {
			fields[col] = v
		}
	}
	if len(fields) == 0 {
		return ErrNoFields
	}

	res := s.db.Model(&models.FoodItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FoodItemService) Delete(id uint) error {
	res := s.db.Delete(&models.FoodItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
