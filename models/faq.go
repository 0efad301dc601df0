package models

type FAQ struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"not null" json:"question"`
	Answer   string `json:"answer"`
}
