package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carry the same payload the mobile and dashboard clients already
// expect: {"user": {"id": ..., "role": ...}}.
type UserClaims struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
}

func secretKey() []byte {
	return []byte(os.Getenv("GGP_SECRET_KEY"))
}

func GenerateJWT(userID uint, role string) (string, error) {
	return signToken(userID, role, 10*time.Hour)
}

// GenerateResetToken mints the short-lived token embedded in password
// reset emails.
func GenerateResetToken(userID uint) (string, error) {
	return signToken(userID, "user", time.Hour)
}

func signToken(userID uint, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]interface{}{
			"id":   userID,
			"role": role,
		},
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secretKey())
}

// ParseToken verifies an HS256 token and returns the embedded user id and
// role. Role defaults to "user" for tokens issued before roles existed.
func ParseToken(tokenString string) (UserClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return UserClaims{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return UserClaims{}, errors.New("invalid claims")
	}

	user, ok := claims["user"].(map[string]interface{})
	if !ok {
		return UserClaims{}, errors.New("user claim missing")
	}

	id, ok := user["id"].(float64)
	if !ok || id <= 0 {
		return UserClaims{}, errors.New("user id claim missing")
	}

	role, _ := user["role"].(string)
	if role == "" {
		role = "user"
	}

	return UserClaims{ID: uint(id), Role: role}, nil
}
