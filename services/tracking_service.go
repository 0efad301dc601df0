package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nandini9934/MyApi/models"
)

type TrackingService struct {
	db *gorm.DB
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{db: db}
}

// TrackedFood is a catalog entry decorated with whether the user already
// ticked it off for the day.
type TrackedFood struct {
	models.FoodItem
	IsConsumed bool `json:"isConsumed"`
}

func (s *TrackingService) AddTarget(userID uint, date string, foodItemID uint) error {
	var item models.FoodItem
	if err := s.db.First(&item, foodItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	entry := models.TargetEntry{
		UserID:     userID,
		Date:       date,
		FoodItemID: foodItemID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *TrackingService) TargetForDate(userID uint, date string) ([]TrackedFood, error) {
	var entries []models.TargetEntry
	err := s.db.Preload("FoodItem").
		Where("user_id = ? AND date = ?", userID, date).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	foods := make([]TrackedFood, 0, len(entries))
	for _, entry := range entries {
		if entry.FoodItem == nil {
			continue
		}
		foods = append(foods, TrackedFood{
			FoodItem:   *entry.FoodItem,
			IsConsumed: entry.IsConsumed,
		})
	}
	return foods, nil
}

func (s *TrackingService) RemoveTarget(userID uint, date string, foodItemID uint) error {
	res := s.db.Where("user_id = ? AND date = ? AND food_item_id = ?", userID, date, foodItemID).
		Delete(&models.TargetEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkConsumed upserts the consumed row and flips the matching target
// entry's flag. The flag flip is best effort: the item may have been
// eaten without ever being on the target list.
func (s *TrackingService) MarkConsumed(userID uint, date string, foodItemID uint) error {
	row := models.ConsumedFood{
		UserID:     userID,
		Date:       date,
		FoodItemID: foodItemID,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "food_item_id"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return err
	}

	return s.db.Model(&models.TargetEntry{}).
		Where("user_id = ? AND date = ? AND food_item_id = ?", userID, date, foodItemID).
		Update("is_consumed", true).Error
}

func (s *TrackingService) ConsumedForDate(userID uint, date string) ([]models.FoodItem, error) {
	var rows []models.ConsumedFood
	err := s.db.Preload("FoodItem").
		Where("user_id = ? AND date = ?", userID, date).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	foods := make([]models.FoodItem, 0, len(rows))
	for _, row := range rows {
		if row.FoodItem == nil {
			continue
		}
		foods = append(foods, *row.FoodItem)
	}
	return foods, nil
}

func (s *TrackingService) UnmarkConsumed(userID uint, date string, foodItemID uint) error {
	res := s.db.Where("user_id = ? AND date = ? AND food_item_id = ?", userID, date, foodItemID).
		Delete(&models.ConsumedFood{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return s.db.Model(&models.TargetEntry{}).
		Where("user_id = ? AND date = ? AND food_item_id = ?", userID, date, foodItemID).
		Update("is_consumed", false).Error
}

func (s *TrackingService) WaterSleep(userID uint, date string) (*models.WaterSleep, error) {
	var row models.WaterSleep
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.WaterSleep{UserID: userID, Date: date}, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *TrackingService) SetWater(userID uint, date string, glasses int) error {
	row := models.WaterSleep{UserID: userID, Date: date, GlassesOfWater: glasses}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"glasses_of_water"}),
	}).Create(&row).Error
}

func (s *TrackingService) SetSleep(userID uint, date string, hours float64) error {
	row := models.WaterSleep{UserID: userID, Date: date, HoursOfSleep: hours}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"hours_of_sleep"}),
	}).Create(&row).Error
}
