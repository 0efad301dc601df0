package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends transactional mail through SES. Inject it where mail is
// needed so tests can swap in a stub.
type Mailer struct {
	client *ses.Client
	sender string
}

func NewMailer(ctx context.Context) (*Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &Mailer{
		client: ses.NewFromConfig(cfg),
		sender: os.Getenv("SES_EMAIL"),
	}, nil
}

func (m *Mailer) send(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

func (m *Mailer) SendWelcomeEmail(to, name string) error {
	subject := "Welcome To Good Gut Family !"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Open the app and finish your onboarding to get your first plan.", name)
	return m.send(to, subject, body)
}

func (m *Mailer) SendResetEmail(to, name, token string) error {
	subject := "Password Reset Request"
	body := fmt.Sprintf("Hi %s,\n\nUse this code in the app to set a new password:\n\n%s\n\nThe code expires in one hour.", name, token)
	return m.send(to, subject, body)
}

func (m *Mailer) SendAppointmentReminder(to, date, slot string) error {
	subject := "Appointment Reminder"
	body := fmt.Sprintf("You have an appointment on %s at %s. See you there!", date, slot)
	return m.send(to, subject, body)
}
