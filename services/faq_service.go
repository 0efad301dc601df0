package services

import (
	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

type FAQService struct {
	db *gorm.DB
}

func NewFAQService(db *gorm.DB) *FAQService {
	return &FAQService{db: db}
}

func (s *FAQService) List() ([]models.FAQ, error) {
	var faqs []models.FAQ
	if err := s.db.Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

func (s *FAQService) Create(faq *models.FAQ) error {
	return s.db.Create(faq).Error
}

func (s *FAQService) Delete(id uint) error {
	res := s.db.Delete(&models.FAQ{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
