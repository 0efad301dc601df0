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

type NutritionistController struct {
	nutritionists *services.NutritionistService
}

func NewNutritionistController(nutritionists *services.NutritionistService) *NutritionistController {
	return &NutritionistController{nutritionists: nutritionists}
}

func (ctl *NutritionistController) Create(c *gin.Context) {
	var n models.Nutritionist
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if n.FirstName == "" || n.LastName == "" || n.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctl.nutritionists.Create(&n); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		log.Printf("nutritionist create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, n)
}

type nutritionistSignupRequest struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	PhoneNumber         string `json:"phone_number"`
	Specialty           string `json:"specialty"`
	YearsOfExperience   int    `json:"years_of_experience"`
	CurrentOrganisation string `json:"current_organisation"`
	Address             string `json:"address"`
}

func (ctl *NutritionistController) Signup(c *gin.Context) {
	var req nutritionistSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	n := models.Nutritionist{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		Specialty:           req.Specialty,
		YearsOfExperience:   req.YearsOfExperience,
		CurrentOrganisation: req.CurrentOrganisation,
		Address:             req.Address,
	}
	if err := ctl.nutritionists.Register(&n, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		log.Printf("nutritionist signup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Nutritionist registered successfully", "id": n.ID})
}

func (ctl *NutritionistController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	token, n, err := ctl.nutritionists.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Nutritionist not found"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			log.Printf("nutritionist login: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "nutritionist": n})
}

func (ctl *NutritionistController) List(c *gin.Context) {
	ns, err := ctl.nutritionists.List()
	if err != nil {
		log.Printf("nutritionist list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, ns)
}

func (ctl *NutritionistController) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	n, err := ctl.nutritionists.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nutritionist not found"})
			return
		}
		log.Printf("nutritionist get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (ctl *NutritionistController) Update(c *gin.Context) {
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

	if err := ctl.nutritionists.Update(id, updates); err != nil {
		switch {
		case errors.Is(err, services.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided to update"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Nutritionist not found"})
		default:
			log.Printf("nutritionist update: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nutritionist updated successfully"})
}

func (ctl *NutritionistController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.nutritionists.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Nutritionist not found"})
			return
		}
		log.Printf("nutritionist delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nutritionist deleted successfully"})
}

// requireSelf checks that the authenticated nutritionist is operating on
// their own roster.
func requireSelf(c *gin.Context, id uint) bool {
	if middlewares.UserID(c) != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return false
	}
	return true
}

type addClientRequest struct {
	ClientID  uint   `json:"client_id"`
	StartDate string `json:"start_date"`
	Notes     string `json:"notes"`
}

func (ctl *NutritionistController) AddClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok || !requireSelf(c, id) {
		return
	}

	var req addClientRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctl.nutritionists.AddClient(id, req.ClientID, req.StartDate, req.Notes); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
		case errors.Is(err, services.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Client already assigned"})
		default:
			log.Printf("add client: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Client added successfully"})
}

func (ctl *NutritionistController) ListClients(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok || !requireSelf(c, id) {
		return
	}

	clients, err := ctl.nutritionists.ListClients(id)
	if err != nil {
		log.Printf("list clients: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (ctl *NutritionistController) UpdateClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok || !requireSelf(c, id) {
		return
	}
	clientID, ok := idParam(c, "clientId")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if err := ctl.nutritionists.UpdateClientStatus(id, clientID, req.Status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Client relationship not found"})
			return
		}
		log.Printf("update client: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client updated successfully"})
}

func (ctl *NutritionistController) RemoveClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok || !requireSelf(c, id) {
		return
	}
	clientID, ok := idParam(c, "clientId")
	if !ok {
		return
	}

	if err := ctl.nutritionists.RemoveClient(id, clientID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Client relationship not found"})
			return
		}
		log.Printf("remove client: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client removed successfully"})
}
