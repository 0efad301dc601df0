package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

func (s *ExerciseService) List() ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := s.db.Where("exercise_status = ?", 1).Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *ExerciseService) Create(exercise *models.Exercise) error {
	return s.db.Create(exercise).Error
}

func (s *ExerciseService) Update(id uint, updates map[string]interface{}) error {
	allowed := map[string]string{
		"exerciseName":   "exercise_name",
		"type":           "type",
		"videoLink":      "video_link",
		"muscleType":     "muscle_type",
		"workoutSteps":   "workout_steps",
		"exerciseStatus": "exercise_status",
		"workoutImage":   "workout_image",
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

	res := s.db.Model(&models.Exercise{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ExerciseService) Assign(userID, exerciseID uint, date string) error {
	var exercise models.Exercise
	if err := s.db.First(&exercise, exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	row := models.UserExercise{
		UserID:     userID,
		ExerciseID: exerciseID,
		Date:       date,
	}
	return s.db.Create(&row).Error
}

func (s *ExerciseService) ForDate(userID uint, date string) ([]models.UserExercise, error) {
	var rows []models.UserExercise
	err := s.db.Preload("Exercise").
		Where("user_id = ? AND date = ?", userID, date).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ExerciseService) Unassign(userID, exerciseID uint, date string) error {
	res := s.db.Where("user_id = ? AND exercise_id = ? AND date = ?", userID, exerciseID, date).
		Delete(&models.UserExercise{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
