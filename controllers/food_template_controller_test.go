package controllers_test

import (
	"net/http"
	"testing"

	"github.com/nandini9934/MyApi/models"
	"gorm.io/gorm"
)

func seedFoodItems(t *testing.T, db *gorm.DB) []models.FoodItem {
	t.Helper()
	items := []models.FoodItem{
		{Name: "Oats", Quantity: "50g", Kcal: 190, P: 6, C: 33, F: 3, MealType: "breakfast"},
		{Name: "Paneer", Quantity: "100g", Kcal: 265, P: 18, C: 3, F: 20, MealType: "lunch"},
		{Name: "Banana", Quantity: "1", Kcal: 105, P: 1, C: 27, F: 0, MealType: "snack"},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("seed food items: %v", err)
	}
	return items
}

func TestFoodTemplateLifecycle(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := nutritionistToken(t, 1)
	items := seedFoodItems(t, db)

	body := map[string]interface{}{
		"nutritionist_id": 1,
		"name":            "High Protein Breakfast",
		"description":     "Morning staples",
		"food_items": []map[string]interface{}{
			{"food_item_id": items[0].ID, "quantity": 2},
			{"food_item_id": items[1].ID, "quantity": 1},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/foodtemplates", token, body)
	requireStatus(t, w, http.StatusCreated)

	// The create response echoes the stored template with its item set.
	var created struct {
		Template models.FoodTemplate `json:"template"`
	}
	decodeBody(t, w, &created)
	if created.Template.ID == 0 {
		t.Fatal("create response carried no template id")
	}
	if len(created.Template.Items) != 2 {
		t.Fatalf("echoed items = %d, want 2", len(created.Template.Items))
	}
	if created.Template.Items[0].Quantity != 2 {
		t.Errorf("echoed first item quantity = %v, want 2", created.Template.Items[0].Quantity)
	}
	if created.Template.Items[0].FoodItem == nil || created.Template.Items[0].FoodItem.Name != "Oats" {
		t.Errorf("echoed first item food not resolved: %+v", created.Template.Items[0].FoodItem)
	}

	w = doJSON(t, r, http.MethodGet, "/api/foodtemplates/1", token, nil)
	requireStatus(t, w, http.StatusOK)

	var got models.FoodTemplate
	decodeBody(t, w, &got)
	if got.Name != "High Protein Breakfast" {
		t.Errorf("name = %q", got.Name)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.Items))
	}
	if got.Items[0].Quantity != 2 {
		t.Errorf("first item quantity = %v, want 2", got.Items[0].Quantity)
	}
	if got.Items[0].FoodItem == nil || got.Items[0].FoodItem.Name != "Oats" {
		t.Errorf("first item food not resolved: %+v", got.Items[0].FoodItem)
	}

	// Replace with an empty item set; the template survives, items go.
	update := map[string]interface{}{
		"name":       "High Protein Breakfast v2",
		"food_items": []map[string]interface{}{},
	}
	w = doJSON(t, r, http.MethodPut, "/api/foodtemplates/1", token, update)
	requireStatus(t, w, http.StatusOK)

	// The update response echoes the replaced state too.
	var replaced struct {
		Template models.FoodTemplate `json:"template"`
	}
	decodeBody(t, w, &replaced)
	if replaced.Template.Name != "High Protein Breakfast v2" {
		t.Errorf("echoed name = %q", replaced.Template.Name)
	}
	if len(replaced.Template.Items) != 0 {
		t.Errorf("echoed items after empty replace = %d, want 0", len(replaced.Template.Items))
	}

	w = doJSON(t, r, http.MethodGet, "/api/foodtemplates/1", token, nil)
	requireStatus(t, w, http.StatusOK)
	decodeBody(t, w, &got)
	if got.Name != "High Protein Breakfast v2" {
		t.Errorf("name after update = %q", got.Name)
	}
	if len(got.Items) != 0 {
		t.Errorf("items after empty replace = %d, want 0", len(got.Items))
	}

	w = doJSON(t, r, http.MethodDelete, "/api/foodtemplates/1", token, nil)
	requireStatus(t, w, http.StatusOK)

	var count int64
	db.Model(&models.FoodTemplateItem{}).Count(&count)
	if count != 0 {
		t.Errorf("template items left behind: %d", count)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/foodtemplates/1", token, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestFoodTemplateCreateMissingFields(t *testing.T) {
	r, _, _ := newTestRouter(t)
	token := nutritionistToken(t, 1)

	w := doJSON(t, r, http.MethodPost, "/api/foodtemplates", token, map[string]interface{}{
		"description": "no name, no nutritionist",
	})
	requireStatus(t, w, http.StatusBadRequest)

	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["error"] != "Missing required fields" {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestFoodTemplateListByNutritionist(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := nutritionistToken(t, 1)
	items := seedFoodItems(t, db)

	for _, name := range []string{"Plan A", "Plan B"} {
		w := doJSON(t, r, http.MethodPost, "/api/foodtemplates", token, map[string]interface{}{
			"nutritionist_id": 1,
			"name":            name,
			"food_items": []map[string]interface{}{
				{"food_item_id": items[2].ID, "quantity": 1},
			},
		})
		requireStatus(t, w, http.StatusCreated)
	}

	w := doJSON(t, r, http.MethodGet, "/api/foodtemplates/nutritionist/1", token, nil)
	requireStatus(t, w, http.StatusOK)

	var templates []models.FoodTemplate
	decodeBody(t, w, &templates)
	if len(templates) != 2 {
		t.Fatalf("templates = %d, want 2", len(templates))
	}

	w = doJSON(t, r, http.MethodGet, "/api/foodtemplates/nutritionist/2", token, nil)
	requireStatus(t, w, http.StatusOK)
	decodeBody(t, w, &templates)
	if len(templates) != 0 {
		t.Errorf("other nutritionist sees %d templates", len(templates))
	}
}
