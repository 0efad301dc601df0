package models

type Flyer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	ImageURL    string `gorm:"column:image_url" json:"imageUrl"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
