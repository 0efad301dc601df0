package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/middlewares"
	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) Metadata(c *gin.Context) {
	userID := middlewares.UserID(c)

	profile, err := ctl.users.Profile(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("metadata get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) UpdateMetadata(c *gin.Context) {
	userID := middlewares.UserID(c)

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided to update"})
		return
	}

	if err := ctl.users.UpdateData(userID, updates); err != nil {
		switch {
		case errors.Is(err, services.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided to update"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User data not found"})
		default:
			log.Printf("metadata update: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User data updated successfully"})
}

func (ctl *UserController) SaveData(c *gin.Context) {
	userID := middlewares.UserID(c)

	var data models.UserData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	data.UserID = userID

	if err := ctl.users.SaveData(&data); err != nil {
		log.Printf("userdata save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "User data saved"})
}
