package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/middlewares"
	"github.com/nandini9934/MyApi/services"
	"github.com/nandini9934/MyApi/utils"
)

type AuthController struct {
	auth  *services.AuthService
	oauth *services.OAuthService
}

func NewAuthController(auth *services.AuthService, oauth *services.OAuthService) *AuthController {
	return &AuthController{auth: auth, oauth: oauth}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctl.auth.Register(req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User Already Registered"})
			return
		}
		log.Printf("signup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User registred successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	token, err := ctl.auth.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case errors.Is(err, services.ErrInactiveAccount):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
		default:
			log.Printf("login: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (ctl *AuthController) GoogleLogin(c *gin.Context) {
	state := utils.GenerateRandomToken(32)
	c.SetCookie("oauth_state", state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, ctl.oauth.AuthURL(state))
}

func (ctl *AuthController) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie("oauth_state")
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	info, err := ctl.oauth.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		log.Printf("google callback: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google login failed"})
		return
	}

	token, err := ctl.auth.UpsertOAuthUser(info.Name, info.Email)
	if err != nil {
		if errors.Is(err, services.ErrInactiveAccount) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}
		log.Printf("google upsert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, os.Getenv("FRONTEND_URL")+"/auth-success?token="+token)
}

func (ctl *AuthController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := ctl.auth.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("forgot password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not send reset email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Reset email sent"})
}

func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctl.auth.ResetPassword(req.Email, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("reset password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Password updated"})
}

func (ctl *AuthController) VerifyToken(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return
	}

	claims, err := utils.ParseToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "userId": claims.ID, "role": claims.Role})
}

func (ctl *AuthController) DeactivateSubscription(c *gin.Context) {
	userID := middlewares.UserID(c)

	if err := ctl.auth.DeactivateSubscription(userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("deactivate subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Subscription deactivated"})
}

func (ctl *AuthController) DeleteAccount(c *gin.Context) {
	userID := middlewares.UserID(c)

	if err := ctl.auth.DeleteAccount(userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("delete account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Account deleted"})
}
