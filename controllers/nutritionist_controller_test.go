package controllers_test

import (
	"net/http"
	"testing"

	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

func TestNutritionistSignupAndLogin(t *testing.T) {
	r, _, _ := newTestRouter(t)

	signup := map[string]interface{}{
		"first_name": "Meera",
		"last_name":  "Shah",
		"email":      "meera@example.com",
		"password":   "longenough",
		"specialty":  "sports nutrition",
	}
	w := doJSON(t, r, http.MethodPost, "/api/nutritionists/signup", "", signup)
	requireStatus(t, w, http.StatusCreated)

	// Short password rejected before any DB work.
	w = doJSON(t, r, http.MethodPost, "/api/nutritionists/signup", "", map[string]interface{}{
		"first_name": "A", "last_name": "B", "email": "ab@example.com", "password": "tiny",
	})
	requireStatus(t, w, http.StatusBadRequest)

	// Duplicate email rejected.
	w = doJSON(t, r, http.MethodPost, "/api/nutritionists/signup", "", signup)
	requireStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodPost, "/api/nutritionists/login", "", map[string]string{
		"email": "meera@example.com", "password": "longenough",
	})
	requireStatus(t, w, http.StatusOK)

	var login struct {
		Token        string              `json:"token"`
		Nutritionist models.Nutritionist `json:"nutritionist"`
	}
	decodeBody(t, w, &login)
	if login.Token == "" {
		t.Fatal("no token returned")
	}
	if login.Nutritionist.Specialty != "sports nutrition" {
		t.Errorf("specialty = %q", login.Nutritionist.Specialty)
	}

	// The nutritionist token opens the dashboard routes.
	w = doJSON(t, r, http.MethodGet, "/api/nutritionists", login.Token, nil)
	requireStatus(t, w, http.StatusOK)
}

func TestClientRoster(t *testing.T) {
	r, db, _ := newTestRouter(t)

	client := models.User{Name: "Asha", Email: "asha@example.com", IsActive: true}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	if err := db.Create(&models.UserData{UserID: client.ID, Goal: "fat loss", Weight: 68}).Error; err != nil {
		t.Fatalf("seed client data: %v", err)
	}
	n := models.Nutritionist{FirstName: "Meera", LastName: "Shah", Email: "meera@example.com"}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("seed nutritionist: %v", err)
	}
	token := nutritionistToken(t, n.ID)

	w := doJSON(t, r, http.MethodPost, "/api/nutritionists/1/clients", token, map[string]interface{}{
		"client_id": client.ID,
		"notes":     "prefers vegetarian",
	})
	requireStatus(t, w, http.StatusCreated)

	// Same client twice is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/nutritionists/1/clients", token, map[string]interface{}{
		"client_id": client.ID,
	})
	requireStatus(t, w, http.StatusBadRequest)

	// Unknown client 404s.
	w = doJSON(t, r, http.MethodPost, "/api/nutritionists/1/clients", token, map[string]interface{}{
		"client_id": 999,
	})
	requireStatus(t, w, http.StatusNotFound)

	// Another nutritionist cannot touch this roster.
	w = doJSON(t, r, http.MethodGet, "/api/nutritionists/1/clients", nutritionistToken(t, 2), nil)
	requireStatus(t, w, http.StatusForbidden)

	w = doJSON(t, r, http.MethodGet, "/api/nutritionists/1/clients", token, nil)
	requireStatus(t, w, http.StatusOK)

	var roster []services.ClientSummary
	decodeBody(t, w, &roster)
	if len(roster) != 1 {
		t.Fatalf("roster = %d entries, want 1", len(roster))
	}
	if roster[0].Name != "Asha" || roster[0].Goal != "fat loss" {
		t.Errorf("summary = %+v", roster[0])
	}
	if roster[0].Status != "active" {
		t.Errorf("status = %q, want active", roster[0].Status)
	}

	w = doJSON(t, r, http.MethodPut, "/api/nutritionists/1/clients/1", token, map[string]string{
		"status": "paused",
	})
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodDelete, "/api/nutritionists/1/clients/1", token, nil)
	requireStatus(t, w, http.StatusOK)
	w = doJSON(t, r, http.MethodDelete, "/api/nutritionists/1/clients/1", token, nil)
	requireStatus(t, w, http.StatusNotFound)
}
