package services

import (
	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

type FlyerService struct {
	db *gorm.DB
}

func NewFlyerService(db *gorm.DB) *FlyerService {
	return &FlyerService{db: db}
}

func (s *FlyerService) List() ([]models.Flyer, error) {
	var flyers []models.Flyer
	if err := s.db.Find(&flyers).Error; err != nil {
		return nil, err
	}
	return flyers, nil
}

func (s *FlyerService) Create(flyer *models.Flyer) error {
	return s.db.Create(flyer).Error
}
