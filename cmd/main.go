package main

import (
	"context"
	"log"
	"os"

	"github.com/nandini9934/MyApi/config"
	"github.com/nandini9934/MyApi/cronjobs"
	"github.com/nandini9934/MyApi/routes"
	"github.com/nandini9934/MyApi/services"
	"github.com/nandini9934/MyApi/utils"
)

func main() {
	config.LoadEnv()

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx := context.Background()

	mailer, err := utils.NewMailer(ctx)
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}

	uploader, err := utils.NewS3Uploader(ctx)
	if err != nil {
		log.Fatalf("s3: %v", err)
	}

	appointments := services.NewAppointmentService(db)
	scheduler := cronjobs.StartReminderJob(db, appointments, mailer)
	defer scheduler.Stop()

	r := routes.SetupRouter(db, mailer, uploader)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
