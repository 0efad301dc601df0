package controllers_test

import (
	"net/http"
	"testing"

	"github.com/nandini9934/MyApi/models"
	"gorm.io/gorm"
)

func seedFoodTemplate(t *testing.T, db *gorm.DB, items []models.FoodItem) models.FoodTemplate {
	t.Helper()
	template := models.FoodTemplate{
		NutritionistID: 1,
		Name:           "Lunch Combo",
		Items: []models.FoodTemplateItem{
			{FoodItemID: items[1].ID, Quantity: 1},
			{FoodItemID: items[2].ID, Quantity: 2},
		},
	}
	if err := db.Create(&template).Error; err != nil {
		t.Fatalf("seed food template: %v", err)
	}
	return template
}

func TestDietPlanCreateAndRead(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := nutritionistToken(t, 1)
	items := seedFoodItems(t, db)
	template := seedFoodTemplate(t, db, items)

	body := map[string]interface{}{
		"nutritionist_id": 1,
		"client_id":       7,
		"start_date":      "2026-09-01",
		"end_date":        "2026-09-07",
		"notes":           "week one",
		"meals": []map[string]interface{}{
			{"day_of_week": "monday", "meal_type": "breakfast", "food_item_id": items[0].ID, "quantity": 1.5},
			{"day_of_week": "monday", "meal_type": "lunch", "template_id": template.ID},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/dietplans", token, body)
	requireStatus(t, w, http.StatusCreated)

	// The create response echoes the stored plan with expanded children.
	var created struct {
		DietPlan models.DietPlan `json:"diet_plan"`
	}
	decodeBody(t, w, &created)
	if created.DietPlan.ID == 0 {
		t.Fatal("create response carried no plan id")
	}
	if len(created.DietPlan.Meals) != 2 {
		t.Fatalf("echoed meals = %d, want 2", len(created.DietPlan.Meals))
	}
	if created.DietPlan.Meals[1].Template == nil {
		t.Error("echoed template meal not expanded")
	}

	w = doJSON(t, r, http.MethodGet, "/api/dietplans/1", token, nil)
	requireStatus(t, w, http.StatusOK)

	var plan models.DietPlan
	decodeBody(t, w, &plan)
	if len(plan.Meals) != 2 {
		t.Fatalf("meals = %d, want 2", len(plan.Meals))
	}
	if plan.Meals[0].Quantity != 1.5 {
		t.Errorf("meal quantity = %v, want 1.5", plan.Meals[0].Quantity)
	}
	// Omitted quantity defaults to 1.
	if plan.Meals[1].Quantity != 1 {
		t.Errorf("template meal quantity = %v, want 1", plan.Meals[1].Quantity)
	}
	if plan.Meals[1].Template == nil {
		t.Fatal("template meal not expanded")
	}
	if len(plan.Meals[1].Template.Items) != 2 {
		t.Errorf("nested template items = %d, want 2", len(plan.Meals[1].Template.Items))
	}
	if plan.Meals[1].Template.Items[0].FoodItem == nil {
		t.Error("nested template food item not resolved")
	}
}

func TestDietPlanCreateRejectsUnknownTemplate(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := nutritionistToken(t, 1)
	items := seedFoodItems(t, db)

	body := map[string]interface{}{
		"nutritionist_id": 1,
		"client_id":       7,
		"start_date":      "2026-09-01",
		"end_date":        "2026-09-07",
		"meals": []map[string]interface{}{
			{"day_of_week": "monday", "meal_type": "breakfast", "food_item_id": items[0].ID},
			{"day_of_week": "tuesday", "meal_type": "lunch", "template_id": 999},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/dietplans", token, body)
	requireStatus(t, w, http.StatusBadRequest)

	var resp struct {
		Error      string `json:"error"`
		InvalidIDs []uint `json:"invalidIds"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Invalid template IDs" {
		t.Errorf("error = %q", resp.Error)
	}
	if len(resp.InvalidIDs) != 1 || resp.InvalidIDs[0] != 999 {
		t.Errorf("invalidIds = %v, want [999]", resp.InvalidIDs)
	}

	// The rejected request must leave nothing behind.
	var plans, meals int64
	db.Model(&models.DietPlan{}).Count(&plans)
	db.Model(&models.DietPlanMeal{}).Count(&meals)
	if plans != 0 || meals != 0 {
		t.Errorf("rows persisted after rollback: plans=%d meals=%d", plans, meals)
	}
}

func TestDietPlanReplaceSwapsMealSet(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := nutritionistToken(t, 1)
	items := seedFoodItems(t, db)

	create := map[string]interface{}{
		"nutritionist_id": 1,
		"client_id":       7,
		"start_date":      "2026-09-01",
		"end_date":        "2026-09-07",
		"meals": []map[string]interface{}{
			{"day_of_week": "monday", "meal_type": "breakfast", "food_item_id": items[0].ID},
			{"day_of_week": "monday", "meal_type": "lunch", "food_item_id": items[1].ID},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/dietplans", token, create)
	requireStatus(t, w, http.StatusCreated)

	update := map[string]interface{}{
		"start_date": "2026-09-08",
		"end_date":   "2026-09-14",
		"notes":      "week two",
		"meals": []map[string]interface{}{
			{"day_of_week": "friday", "meal_type": "dinner", "food_item_id": items[2].ID, "quantity": 3},
		},
	}
	w = doJSON(t, r, http.MethodPut, "/api/dietplans/1", token, update)
	requireStatus(t, w, http.StatusOK)

	var replaced struct {
		DietPlan models.DietPlan `json:"diet_plan"`
	}
	decodeBody(t, w, &replaced)
	if len(replaced.DietPlan.Meals) != 1 {
		t.Fatalf("echoed meals = %d, want 1 after replace", len(replaced.DietPlan.Meals))
	}

	w = doJSON(t, r, http.MethodGet, "/api/dietplans/1", token, nil)
	requireStatus(t, w, http.StatusOK)

	var plan models.DietPlan
	decodeBody(t, w, &plan)
	if plan.StartDate != "2026-09-08" {
		t.Errorf("start date = %q", plan.StartDate)
	}
	if len(plan.Meals) != 1 {
		t.Fatalf("meals = %d, want 1 after replace", len(plan.Meals))
	}
	if plan.Meals[0].DayOfWeek != "friday" || plan.Meals[0].Quantity != 3 {
		t.Errorf("replaced meal = %+v", plan.Meals[0])
	}
}

func TestDietPlanUpdateMissingPlan(t *testing.T) {
	r, _, _ := newTestRouter(t)
	token := nutritionistToken(t, 1)

	w := doJSON(t, r, http.MethodPut, "/api/dietplans/42", token, map[string]interface{}{
		"start_date": "2026-09-01",
		"end_date":   "2026-09-07",
		"meals":      []map[string]interface{}{},
	})
	requireStatus(t, w, http.StatusNotFound)

	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["message"] != "Diet plan not found" {
		t.Errorf("message = %q", resp["message"])
	}
}

func TestDietPlanDelete(t *testing.T) {
	r, db, _ := newTestRouter(t)
	token := nutritionistToken(t, 1)
	items := seedFoodItems(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/dietplans", token, map[string]interface{}{
		"nutritionist_id": 1,
		"client_id":       7,
		"start_date":      "2026-09-01",
		"end_date":        "2026-09-07",
		"meals": []map[string]interface{}{
			{"day_of_week": "monday", "meal_type": "breakfast", "food_item_id": items[0].ID},
		},
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodDelete, "/api/dietplans/1", token, nil)
	requireStatus(t, w, http.StatusOK)

	var meals int64
	db.Model(&models.DietPlanMeal{}).Count(&meals)
	if meals != 0 {
		t.Errorf("meals left after delete: %d", meals)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/dietplans/1", token, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestDietPlanRequiresAuth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/dietplans/1", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	// A plain user token is not enough for the dashboard routes.
	w = doJSON(t, r, http.MethodGet, "/api/dietplans/1", userToken(t, 5), nil)
	requireStatus(t, w, http.StatusForbidden)
}
