package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
)

// allSlots is the fixed daily consultation grid.
var allSlots = []string{"09:00 AM", "10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM"}

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) Book(userID uint, date, timeSlot, topic string) (*models.Appointment, error) {
	var taken int64
	err := s.db.Model(&models.Appointment{}).
		Where("date = ? AND time_slot = ? AND status = ?", date, timeSlot, "scheduled").
		Count(&taken).Error
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrDuplicate
	}

	appointment := models.Appointment{
		ID:       "app_" + uuid.NewString(),
		UserID:   userID,
		Date:     date,
		TimeSlot: timeSlot,
		Topic:    topic,
		Status:   "scheduled",
		CallID:   uuid.NewString(),
	}
	if err := s.db.Create(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Upcoming lists the user's booked appointments from today onward,
// dropping today's slots whose start time already passed. Slots within a
// day follow the grid order, not the display-string order ("02:00 PM"
// sorts before "09:00 AM" lexicographically).
func (s *AppointmentService) Upcoming(userID uint, now time.Time) ([]models.Appointment, error) {
	today := now.Format("2006-01-02")

	var appointments []models.Appointment
	err := s.db.
		Where("user_id = ? AND status = ? AND date >= ?", userID, "scheduled", today).
		Order("date").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	upcoming := make([]models.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.Date == today && slotPassed(appt.TimeSlot, now) {
			continue
		}
		upcoming = append(upcoming, appt)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return slotIndex(upcoming[i].TimeSlot) < slotIndex(upcoming[j].TimeSlot)
	})
	return upcoming, nil
}

func slotIndex(slot string) int {
	for i, s := range allSlots {
		if s == slot {
			return i
		}
	}
	// Off-grid slots sort after the grid, by clock time.
	if t, err := time.Parse("03:04 PM", slot); err == nil {
		return len(allSlots) + t.Hour()*60 + t.Minute()
	}
	return len(allSlots) + 24*60
}

// AvailableSlots returns the grid minus booked slots, and minus
// already-past slots when the date is today.
func (s *AppointmentService) AvailableSlots(date string, now time.Time) ([]string, error) {
	var booked []string
	err := s.db.Model(&models.Appointment{}).
		Where("date = ? AND status = ?", date, "scheduled").
		Pluck("time_slot", &booked).Error
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	isToday := date == now.Format("2006-01-02")
	available := make([]string, 0, len(allSlots))
	for _, slot := range allSlots {
		if taken[slot] {
			continue
		}
		if isToday && slotPassed(slot, now) {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

func (s *AppointmentService) Cancel(userID uint, appointmentID string) error {
	res := s.db.Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		Update("status", "cancelled")
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ForDate returns all booked appointments on the given date, for the
// reminder sweep.
func (s *AppointmentService) ForDate(date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("date = ? AND status = ?", date, "scheduled").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func slotPassed(slot string, now time.Time) bool {
	t, err := time.ParseInLocation("03:04 PM", slot, now.Location())
	if err != nil {
		return false
	}
	slotTime := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	return slotTime.Before(now)
}
