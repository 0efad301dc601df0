package models

import "time"

type Nutritionist struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	FirstName           string    `gorm:"not null" json:"first_name"`
	LastName            string    `gorm:"not null" json:"last_name"`
	Email               string    `gorm:"uniqueIndex;not null" json:"email"`
	Password            string    `json:"-"`
	PhoneNumber         string    `json:"phone_number"`
	Specialty           string    `json:"specialty"`
	YearsOfExperience   int       `json:"years_of_experience"`
	CurrentOrganisation string    `json:"current_organisation"`
	Address             string    `json:"address"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NutritionistClient links a nutritionist to one of their clients.
type NutritionistClient struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NutritionistID uint      `gorm:"uniqueIndex:idx_nutritionist_client" json:"nutritionist_id"`
	ClientID       uint      `gorm:"uniqueIndex:idx_nutritionist_client" json:"client_id"`
	Status         string    `gorm:"default:active" json:"status"`
	StartDate      string    `gorm:"type:date" json:"start_date"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
