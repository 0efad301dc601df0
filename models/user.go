package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"`
	AuthProvider string    `gorm:"default:local" json:"auth_provider"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	IsSubscribed bool      `json:"isSubscribed"`
	SignupDate   time.Time `json:"signupdate"`
}

// UserData holds the onboarding profile, one row per user.
type UserData struct {
	UserID       uint    `gorm:"primaryKey" json:"userId"`
	Gender       string  `json:"gender"`
	DOB          string  `gorm:"type:date" json:"dob"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	Medical      string  `json:"medical"`
	Goal         string  `json:"goal"`
	Bodyfat      float64 `json:"bodyfat"`
	Workout      string  `json:"workout"`
	Food         string  `json:"food"`
	Occupation   string  `json:"occupation"`
	Onboarded    bool    `json:"onboarded"`
	TargetWeight float64 `json:"targetWeight"`
}
