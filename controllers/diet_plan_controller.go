package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

type DietPlanController struct {
	plans *services.DietPlanService
}

func NewDietPlanController(plans *services.DietPlanService) *DietPlanController {
	return &DietPlanController{plans: plans}
}

type createDietPlanRequest struct {
	NutritionistID uint                `json:"nutritionist_id"`
	ClientID       uint                `json:"client_id"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	Notes          string              `json:"notes"`
	Meals          []services.MealSpec `json:"meals"`
}

func (ctl *DietPlanController) Create(c *gin.Context) {
	var req createDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.NutritionistID == 0 || req.ClientID == 0 || req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	plan := models.DietPlan{
		NutritionistID: req.NutritionistID,
		ClientID:       req.ClientID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Notes:          req.Notes,
	}
	if err := ctl.plans.Create(&plan, req.Meals); err != nil {
		var invalid *services.InvalidTemplateError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template IDs", "invalidIds": invalid.IDs})
			return
		}
		log.Printf("diet plan create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	created, err := ctl.plans.Get(plan.ID)
	if err != nil {
		log.Printf("diet plan reload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Diet plan created successfully", "diet_plan": created})
}

type updateDietPlanRequest struct {
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Notes     string              `json:"notes"`
	Meals     []services.MealSpec `json:"meals"`
}

func (ctl *DietPlanController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := ctl.plans.Replace(id, req.StartDate, req.EndDate, req.Notes, req.Meals)
	if err != nil {
		var invalid *services.InvalidTemplateError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template IDs", "invalidIds": invalid.IDs})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Diet plan not found"})
		default:
			log.Printf("diet plan update: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	updated, err := ctl.plans.Get(id)
	if err != nil {
		log.Printf("diet plan reload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Diet plan updated successfully", "diet_plan": updated})
}

func (ctl *DietPlanController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.plans.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Diet plan not found"})
			return
		}
		log.Printf("diet plan delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diet plan deleted successfully"})
}

func (ctl *DietPlanController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	plan, err := ctl.plans.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Diet plan not found"})
			return
		}
		log.Printf("diet plan get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (ctl *DietPlanController) ListByNutritionist(c *gin.Context) {
	id, ok := idParam(c, "nutritionistId")
	if !ok {
		return
	}

	plans, err := ctl.plans.ListByNutritionist(id)
	if err != nil {
		log.Printf("diet plan list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// idParam parses a numeric path parameter, replying 400 itself on junk.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
