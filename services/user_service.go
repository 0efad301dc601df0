package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nandini9934/MyApi/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Profile joins the login row with the onboarding data. A user who never
// finished onboarding still gets their name and email back.
type Profile struct {
	models.UserData
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *UserService) Profile(userID uint) (*Profile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	profile := Profile{Name: user.Name, Email: user.Email}
	profile.UserID = userID

	var data models.UserData
	err := s.db.Where("user_id = ?", userID).First(&data).Error
	if err == nil {
		profile.UserData = data
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &profile, nil
}

// SaveData upserts the onboarding profile and marks the user onboarded.
func (s *UserService) SaveData(data *models.UserData) error {
	data.Onboarded = true
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"gender", "dob", "height", "weight", "medical", "goal",
			"bodyfat", "workout", "food", "occupation", "onboarded", "target_weight",
		}),
	}).Create(data).Error
}

// UpdateData applies a partial update; unknown keys are dropped.
func (s *UserService) UpdateData(userID uint, updates map[string]interface{}) error {
	allowed := map[string]string{
		"gender":       "gender",
		"dob":          "dob",
		"height":       "height",
		"weight":       "weight",
		"medical":      "medical",
		"goal":         "goal",
		"bodyfat":      "bodyfat",
		"workout":      "workout",
		"food":         "food",
		"occupation":   "occupation",
		"targetWeight": "target_weight",
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

	res := s.db.Model(&models.UserData{}).Where("user_id = ?", userID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
