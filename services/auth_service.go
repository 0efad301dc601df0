package services

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/utils"
)

// Mailer is what the auth flows need from the SES client; tests inject a
// stub.
type Mailer interface {
	SendWelcomeEmail(to, name string) error
	SendResetEmail(to, name, token string) error
}

type AuthService struct {
	db     *gorm.DB
	mailer Mailer
}

func NewAuthService(db *gorm.DB, mailer Mailer) *AuthService {
	return &AuthService{db: db, mailer: mailer}
}

func (s *AuthService) Register(name, email, password string) error {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Password:     hashed,
		AuthProvider: "local",
		IsActive:     true,
		SignupDate:   time.Now(),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}

	// The account exists either way; a failed welcome mail is not worth
	// a 500.
	if s.mailer != nil {
		if err := s.mailer.SendWelcomeEmail(email, name); err != nil {
			log.Printf("welcome email to %s failed: %v", email, err)
		}
	}
	return nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", ErrInactiveAccount
	}

	return utils.GenerateJWT(user.ID, "user")
}

// UpsertOAuthUser finds or creates the account behind a Google login and
// returns a session token for it.
func (s *AuthService) UpsertOAuthUser(name, email string) (string, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		if !user.IsActive {
			return "", ErrInactiveAccount
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Name:         name,
			Email:        email,
			AuthProvider: "google",
			IsActive:     true,
			SignupDate:   time.Now(),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return "", err
		}
	default:
		return "", err
	}

	return utils.GenerateJWT(user.ID, "user")
}

func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	token, err := utils.GenerateResetToken(user.ID)
	if err != nil {
		return err
	}
	if s.mailer == nil {
		return errors.New("mailer not configured")
	}
	return s.mailer.SendResetEmail(user.Email, user.Name, token)
}

func (s *AuthService) ResetPassword(email, newPassword string) error {
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	res := s.db.Model(&models.User{}).Where("email = ?", email).Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateSubscription turns off the paid flag; the account itself
// stays active.
func (s *AuthService) DeactivateSubscription(userID uint) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("is_subscribed", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAccount removes the login row and its profile data.
func (s *AuthService) DeleteAccount(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserData{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
