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

type ExerciseController struct {
	exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{exercises: exercises}
}

func (ctl *ExerciseController) List(c *gin.Context) {
	exercises, err := ctl.exercises.List()
	if err != nil {
		log.Printf("exercise list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (ctl *ExerciseController) Create(c *gin.Context) {
	var exercise models.Exercise
	if err := c.ShouldBindJSON(&exercise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if exercise.ExerciseName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctl.exercises.Create(&exercise); err != nil {
		log.Printf("exercise create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

func (ctl *ExerciseController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided to update"})
		return
	}

	if err := ctl.exercises.Update(id, updates); err != nil {
		switch {
		case errors.Is(err, services.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided to update"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Exercise not found"})
		default:
			log.Printf("exercise update: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise updated successfully"})
}

type assignExerciseRequest struct {
	ExerciseID uint   `json:"exerciseId"`
	Date       string `json:"date"`
}

func (ctl *ExerciseController) Assign(c *gin.Context) {
	userID := middlewares.UserID(c)

	var req assignExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ExerciseID == 0 || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exerciseId and date are required"})
		return
	}

	if err := ctl.exercises.Assign(userID, req.ExerciseID, req.Date); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Exercise not found"})
			return
		}
		log.Printf("exercise assign: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise added"})
}

func (ctl *ExerciseController) Unassign(c *gin.Context) {
	userID := middlewares.UserID(c)

	var req assignExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ExerciseID == 0 || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exerciseId and date are required"})
		return
	}

	if err := ctl.exercises.Unassign(userID, req.ExerciseID, req.Date); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Exercise assignment not found"})
			return
		}
		log.Printf("exercise unassign: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise removed"})
}

func (ctl *ExerciseController) ForDate(c *gin.Context) {
	date := c.Param("date")
	userID := middlewares.UserID(c)

	rows, err := ctl.exercises.ForDate(userID, date)
	if err != nil {
		log.Printf("user exercises: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
