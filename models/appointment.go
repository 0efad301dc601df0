package models

import "time"

// Appointment ids are app_<uuid> strings minted at booking time; CallID
// is handed to the video-call provider.
type Appointment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"userId"`
	ExpertID  *uint     `json:"expertId"`
	Date      string    `gorm:"type:date" json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	Topic     string    `json:"topic"`
	Status    string    `json:"status"`
	CallID    string    `json:"callId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
