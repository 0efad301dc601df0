package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/utils"
)

type NutritionistService struct {
	db *gorm.DB
}

func NewNutritionistService(db *gorm.DB) *NutritionistService {
	return &NutritionistService{db: db}
}

// Create adds a nutritionist from the admin dashboard; no login until
// they set a password through signup.
func (s *NutritionistService) Create(n *models.Nutritionist) error {
	if err := s.db.Create(n).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *NutritionistService) List() ([]models.Nutritionist, error) {
	var ns []models.Nutritionist
	if err := s.db.Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

func (s *NutritionistService) Delete(id uint) error {
	res := s.db.Delete(&models.Nutritionist{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NutritionistService) Register(n *models.Nutritionist, password string) error {
	var existing models.Nutritionist
	err := s.db.Where("email = ?", n.Email).First(&existing).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	n.Password = hashed
	return s.db.Create(n).Error
}

func (s *NutritionistService) Login(email, password string) (string, *models.Nutritionist, error) {
	var n models.Nutritionist
	if err := s.db.Where("email = ?", email).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrNotFound
		}
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, n.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(n.ID, "nutritionist")
	if err != nil {
		return "", nil, err
	}
	return token, &n, nil
}

func (s *NutritionistService) Get(id uint) (*models.Nutritionist, error) {
	var n models.Nutritionist
	if err := s.db.First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (s *NutritionistService) Update(id uint, updates map[string]interface{}) error {
	allowed := map[string]bool{
		"first_name":           true,
		"last_name":            true,
		"phone_number":         true,
		"specialty":            true,
		"years_of_experience":  true,
		"current_organisation": true,
		"address":              true,
	}
	fields := map[string]interface{}{}
	for k, v := range updates {
		if allowed[k] {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return ErrNoFields
	}

	res := s.db.Model(&models.Nutritionist{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClientSummary is one row of a nutritionist's client roster, assembled
// from the link row plus the client's login and profile records.
type ClientSummary struct {
	ClientID  uint    `json:"client_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Status    string  `json:"status"`
	StartDate string  `json:"start_date"`
	Notes     string  `json:"notes"`
	Goal      string  `json:"goal"`
	Weight    float64 `json:"weight"`
}

func (s *NutritionistService) AddClient(nutritionistID, clientID uint, startDate, notes string) error {
	var user models.User
	if err := s.db.First(&user, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	link := models.NutritionistClient{
		NutritionistID: nutritionistID,
		ClientID:       clientID,
		Status:         "active",
		StartDate:      startDate,
		Notes:          notes,
	}
	if link.StartDate == "" {
		link.StartDate = time.Now().Format("2006-01-02")
	}
	if err := s.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *NutritionistService) ListClients(nutritionistID uint) ([]ClientSummary, error) {
	var links []models.NutritionistClient
	err := s.db.Where("nutritionist_id = ?", nutritionistID).Find(&links).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ClientSummary, 0, len(links))
	for _, link := range links {
		var user models.User
		if err := s.db.First(&user, link.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		summary := ClientSummary{
			ClientID:  link.ClientID,
			Name:      user.Name,
			Email:     user.Email,
			Status:    link.Status,
			StartDate: link.StartDate,
			Notes:     link.Notes,
		}
		var data models.UserData
		if err := s.db.Where("user_id = ?", link.ClientID).First(&data).Error; err == nil {
			summary.Goal = data.Goal
			summary.Weight = data.Weight
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *NutritionistService) UpdateClientStatus(nutritionistID, clientID uint, status string) error {
	res := s.db.Model(&models.NutritionistClient{}).
		Where("nutritionist_id = ? AND client_id = ?", nutritionistID, clientID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NutritionistService) RemoveClient(nutritionistID, clientID uint) error {
	res := s.db.Where("nutritionist_id = ? AND client_id = ?", nutritionistID, clientID).
		Delete(&models.NutritionistClient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
