package cronjobs

import (
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

// ReminderMailer sends the day-before appointment nudge.
type ReminderMailer interface {
	SendAppointmentReminder(to, date, slot string) error
}

// StartReminderJob runs a daily sweep that emails every user with an
// appointment scheduled for tomorrow.
func StartReminderJob(db *gorm.DB, appointments *services.AppointmentService, mailer ReminderMailer) *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)

	_, err := s.Every(1).Day().At("08:00").Do(func() {
		SendReminders(db, appointments, mailer, time.Now().UTC())
	})
	if err != nil {
		log.Printf("reminder job registration failed: %v", err)
	}

	s.StartAsync()
	return s
}

// SendReminders mails everyone with an appointment on the day after now.
// Split out of the scheduler so it can be driven directly.
func SendReminders(db *gorm.DB, appointments *services.AppointmentService, mailer ReminderMailer, now time.Time) {
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	upcoming, err := appointments.ForDate(tomorrow)
	if err != nil {
		log.Printf("reminder sweep query failed: %v", err)
		return
	}

	for _, appt := range upcoming {
		var user models.User
		if err := db.First(&user, appt.UserID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("reminder user lookup %d: %v", appt.UserID, err)
			}
			continue
		}
		if err := mailer.SendAppointmentReminder(user.Email, appt.Date, appt.TimeSlot); err != nil {
			log.Printf("reminder to %s failed: %v", user.Email, err)
		}
	}
}
