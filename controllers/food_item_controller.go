package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

type FoodItemController struct {
	foods *services.FoodItemService
}

func NewFoodItemController(foods *services.FoodItemService) *FoodItemController {
	return &FoodItemController{foods: foods}
}

func (ctl *FoodItemController) List(c *gin.Context) {
	items, err := ctl.foods.List()
	if err != nil {
		log.Printf("food item list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctl *FoodItemController) ListByMealType(c *gin.Context) {
	mealType := c.Param("mealType")
	if mealType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal type is required"})
		return
	}

	items, err := ctl.foods.ListByMealType(mealType)
	if err != nil {
		log.Printf("food item list by meal type: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctl *FoodItemController) Create(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if item.Name == "" || item.MealType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctl.foods.Create(&item); err != nil {
		log.Printf("food item create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ctl *FoodItemController) Update(c *gin.Context) {
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

	if err := ctl.foods.Update(id, updates); err != nil {
		switch {
		case errors.Is(err, services.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided to update"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
		default:
			log.Printf("food item update: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully"})
}

func (ctl *FoodItemController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.foods.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Food item not found"})
			return
		}
		log.Printf("food item delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}
