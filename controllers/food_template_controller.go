package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

type FoodTemplateController struct {
	templates *services.FoodTemplateService
}

func NewFoodTemplateController(templates *services.FoodTemplateService) *FoodTemplateController {
	return &FoodTemplateController{templates: templates}
}

type foodTemplateRequest struct {
	NutritionistID uint                    `json:"nutritionist_id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	FoodItems      []services.FoodItemSpec `json:"food_items"`
}

func (ctl *FoodTemplateController) Create(c *gin.Context) {
	var req foodTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.NutritionistID == 0 || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	template := models.FoodTemplate{
		NutritionistID: req.NutritionistID,
		Name:           req.Name,
		Description:    req.Description,
	}
	if err := ctl.templates.Create(&template, req.FoodItems); err != nil {
		log.Printf("food template create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	created, err := ctl.templates.Get(template.ID)
	if err != nil {
		log.Printf("food template reload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food template created successfully", "template": created})
}

func (ctl *FoodTemplateController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req foodTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := ctl.templates.Replace(id, req.Name, req.Description, req.FoodItems)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food template not found"})
			return
		}
		log.Printf("food template update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	updated, err := ctl.templates.Get(id)
	if err != nil {
		log.Printf("food template reload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food template updated successfully", "template": updated})
}

func (ctl *FoodTemplateController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.templates.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food template not found"})
			return
		}
		log.Printf("food template delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food template deleted successfully"})
}

func (ctl *FoodTemplateController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	template, err := ctl.templates.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food template not found"})
			return
		}
		log.Printf("food template get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, template)
}

func (ctl *FoodTemplateController) ListByNutritionist(c *gin.Context) {
	id, ok := idParam(c, "nutritionistId")
	if !ok {
		return
	}

	templates, err := ctl.templates.ListByNutritionist(id)
	if err != nil {
		log.Printf("food template list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, templates)
}
