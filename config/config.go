package config

import (
	"fmt"
	"log"
	"os"

	"github.com/nandini9934/MyApi/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv reads .env when present. Missing file is fine on deployed
// environments where everything comes from real env vars.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
}

func ConnectDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migrate failed: %w", err)
	}

	return db, nil
}

// Migrate is also used by tests to prepare an in-memory store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserData{},
		&models.Nutritionist{},
		&models.NutritionistClient{},
		&models.FoodItem{},
		&models.FoodTemplate{},
		&models.FoodTemplateItem{},
		&models.DietPlan{},
		&models.DietPlanMeal{},
		&models.DietTemplate{},
		&models.DietTemplateMeal{},
		&models.TargetEntry{},
		&models.ConsumedFood{},
		&models.WaterSleep{},
		&models.Exercise{},
		&models.UserExercise{},
		&models.Appointment{},
		&models.Flyer{},
		&models.FAQ{},
	)
}
