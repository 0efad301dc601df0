package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

type DietTemplateController struct {
	templates *services.DietTemplateService
}

func NewDietTemplateController(templates *services.DietTemplateService) *DietTemplateController {
	return &DietTemplateController{templates: templates}
}

type dietTemplateRequest struct {
	NutritionistID uint                `json:"nutritionist_id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Meals          []services.MealSpec `json:"meals"`
}

func (ctl *DietTemplateController) Create(c *gin.Context) {
	var req dietTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.NutritionistID == 0 || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	template := models.DietTemplate{
		NutritionistID: req.NutritionistID,
		Name:           req.Name,
		Description:    req.Description,
	}
	if err := ctl.templates.Create(&template, req.Meals); err != nil {
		var invalid *services.InvalidTemplateError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template IDs", "invalidIds": invalid.IDs})
			return
		}
		log.Printf("diet template create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	created, err := ctl.templates.Get(template.ID)
	if err != nil {
		log.Printf("diet template reload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Diet template created successfully", "template": created})
}

func (ctl *DietTemplateController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dietTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := ctl.templates.Replace(id, req.Name, req.Description, req.Meals)
	if err != nil {
		var invalid *services.InvalidTemplateError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template IDs", "invalidIds": invalid.IDs})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Diet template not found"})
		default:
			log.Printf("diet template update: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	updated, err := ctl.templates.Get(id)
	if err != nil {
		log.Printf("diet template reload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Diet template updated successfully", "template": updated})
}

func (ctl *DietTemplateController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.templates.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Diet template not found"})
			return
		}
		log.Printf("diet template delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Diet template deleted successfully"})
}

func (ctl *DietTemplateController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	template, err := ctl.templates.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Diet template not found"})
			return
		}
		log.Printf("diet template get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, template)
}

func (ctl *DietTemplateController) ListByNutritionist(c *gin.Context) {
	id, ok := idParam(c, "nutritionistId")
	if !ok {
		return
	}

	templates, err := ctl.templates.ListByNutritionist(id)
	if err != nil {
		log.Printf("diet template list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, templates)
}
