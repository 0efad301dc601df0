package models

import "time"

type Exercise struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ExerciseName   string    `gorm:"not null" json:"exerciseName"`
	Type           string    `json:"type"`
	VideoLink      string    `json:"videoLink"`
	MuscleType     string    `json:"muscleType"`
	WorkoutSteps   string    `json:"workoutSteps"`
	ExerciseStatus int       `gorm:"default:1" json:"exerciseStatus"`
	WorkoutImage   string    `json:"workoutImage"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserExercise assigns a library exercise to a user for a date.
type UserExercise struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"userId"`
	ExerciseID uint      `json:"exerciseId"`
	Date       string    `gorm:"type:date" json:"date"`
	Exercise   *Exercise `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
}
