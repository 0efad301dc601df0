package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/middlewares"
	"github.com/nandini9934/MyApi/services"
)

type TrackingController struct {
	tracking *services.TrackingService
}

func NewTrackingController(tracking *services.TrackingService) *TrackingController {
	return &TrackingController{tracking: tracking}
}

// dateFoodQuery pulls the ?date=...&foodId=... pair most tracking routes
// take.
func dateFoodQuery(c *gin.Context) (string, uint, bool) {
	date := c.Query("date")
	foodID, err := strconv.ParseUint(c.Query("foodId"), 10, 64)
	if date == "" || err != nil || foodID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and foodId are required"})
		return "", 0, false
	}
	return date, uint(foodID), true
}

func (ctl *TrackingController) AddTarget(c *gin.Context) {
	date, foodID, ok := dateFoodQuery(c)
	if !ok {
		return
	}
	userID := middlewares.UserID(c)

	if err := ctl.tracking.AddTarget(userID, date, foodID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		case errors.Is(err, services.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Food already added for this date"})
		default:
			log.Printf("add target: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to target"})
}

func (ctl *TrackingController) TargetForDate(c *gin.Context) {
	date := c.Param("date")
	userID := middlewares.UserID(c)

	foods, err := ctl.tracking.TargetForDate(userID, date)
	if err != nil {
		log.Printf("target for date: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (ctl *TrackingController) RemoveTarget(c *gin.Context) {
	date, foodID, ok := dateFoodQuery(c)
	if !ok {
		return
	}
	userID := middlewares.UserID(c)

	if err := ctl.tracking.RemoveTarget(userID, date, foodID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Target entry not found"})
			return
		}
		log.Printf("remove target: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from target"})
}

func (ctl *TrackingController) MarkConsumed(c *gin.Context) {
	date, foodID, ok := dateFoodQuery(c)
	if !ok {
		return
	}
	userID := middlewares.UserID(c)

	if err := ctl.tracking.MarkConsumed(userID, date, foodID); err != nil {
		log.Printf("mark consumed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as consumed"})
}

func (ctl *TrackingController) ConsumedForDate(c *gin.Context) {
	date := c.Param("date")
	userID := middlewares.UserID(c)

	foods, err := ctl.tracking.ConsumedForDate(userID, date)
	if err != nil {
		log.Printf("consumed for date: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (ctl *TrackingController) UnmarkConsumed(c *gin.Context) {
	date, foodID, ok := dateFoodQuery(c)
	if !ok {
		return
	}
	userID := middlewares.UserID(c)

	if err := ctl.tracking.UnmarkConsumed(userID, date, foodID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Consumed entry not found"})
			return
		}
		log.Printf("unmark consumed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unmarked as consumed"})
}

func (ctl *TrackingController) WaterSleep(c *gin.Context) {
	date := c.Param("date")
	userID := middlewares.UserID(c)

	row, err := ctl.tracking.WaterSleep(userID, date)
	if err != nil {
		log.Printf("water sleep get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (ctl *TrackingController) SetWater(c *gin.Context) {
	date := c.Param("date")
	userID := middlewares.UserID(c)

	var req struct {
		GlassesOfWater int `json:"glasses_of_water"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := ctl.tracking.SetWater(userID, date, req.GlassesOfWater); err != nil {
		log.Printf("set water: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Water intake saved"})
}

func (ctl *TrackingController) SetSleep(c *gin.Context) {
	date := c.Param("date")
	userID := middlewares.UserID(c)

	var req struct {
		HoursOfSleep float64 `json:"hours_of_sleep"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := ctl.tracking.SetSleep(userID, date, req.HoursOfSleep); err != nil {
		log.Printf("set sleep: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sleep hours saved"})
}
