package services_test

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nandini9934/MyApi/config"
	"github.com/nandini9934/MyApi/models"
	"github.com/nandini9934/MyApi/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedFood(t *testing.T, db *gorm.DB, name string) models.FoodItem {
	t.Helper()
	item := models.FoodItem{Name: name, Kcal: 100, MealType: "lunch"}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	return item
}

func TestTargetAddAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTrackingService(db)
	food := seedFood(t, db, "Dal")

	if err := svc.AddTarget(1, "2026-08-29", food.ID); err != nil {
		t.Fatalf("add target: %v", err)
	}

	err := svc.AddTarget(1, "2026-08-29", food.ID)
	if !errors.Is(err, services.ErrDuplicate) {
		t.Errorf("duplicate add = %v, want ErrDuplicate", err)
	}

	// Same food on another date is a different entry.
	if err := svc.AddTarget(1, "2026-08-30", food.ID); err != nil {
		t.Errorf("add on other date: %v", err)
	}

	if err := svc.AddTarget(1, "2026-08-29", 999); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("unknown food = %v, want ErrNotFound", err)
	}
}

func TestConsumedFlipsTargetFlag(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTrackingService(db)
	food := seedFood(t, db, "Rice")

	if err := svc.AddTarget(1, "2026-08-29", food.ID); err != nil {
		t.Fatalf("add target: %v", err)
	}
	if err := svc.MarkConsumed(1, "2026-08-29", food.ID); err != nil {
		t.Fatalf("mark consumed: %v", err)
	}

	foods, err := svc.TargetForDate(1, "2026-08-29")
	if err != nil {
		t.Fatalf("target for date: %v", err)
	}
	if len(foods) != 1 || !foods[0].IsConsumed {
		t.Errorf("target rows = %+v, want one consumed row", foods)
	}

	// Marking again is an upsert, not an error.
	if err := svc.MarkConsumed(1, "2026-08-29", food.ID); err != nil {
		t.Errorf("second mark: %v", err)
	}
	consumed, err := svc.ConsumedForDate(1, "2026-08-29")
	if err != nil {
		t.Fatalf("consumed for date: %v", err)
	}
	if len(consumed) != 1 {
		t.Errorf("consumed rows = %d, want 1", len(consumed))
	}

	if err := svc.UnmarkConsumed(1, "2026-08-29", food.ID); err != nil {
		t.Fatalf("unmark: %v", err)
	}
	foods, _ = svc.TargetForDate(1, "2026-08-29")
	if len(foods) != 1 || foods[0].IsConsumed {
		t.Errorf("flag not flipped back: %+v", foods)
	}

	if err := svc.UnmarkConsumed(1, "2026-08-29", food.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("second unmark = %v, want ErrNotFound", err)
	}
}

func TestConsumedWithoutTarget(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTrackingService(db)
	food := seedFood(t, db, "Apple")

	// Eating something never planned still records fine.
	if err := svc.MarkConsumed(3, "2026-08-29", food.ID); err != nil {
		t.Fatalf("mark consumed: %v", err)
	}
	consumed, err := svc.ConsumedForDate(3, "2026-08-29")
	if err != nil {
		t.Fatalf("consumed for date: %v", err)
	}
	if len(consumed) != 1 || consumed[0].Name != "Apple" {
		t.Errorf("consumed = %+v", consumed)
	}
}

func TestWaterSleepUpserts(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewTrackingService(db)

	row, err := svc.WaterSleep(1, "2026-08-29")
	if err != nil {
		t.Fatalf("untracked read: %v", err)
	}
	if row.GlassesOfWater != 0 || row.HoursOfSleep != 0 {
		t.Errorf("untracked row = %+v, want zeroes", row)
	}

	if err := svc.SetWater(1, "2026-08-29", 5); err != nil {
		t.Fatalf("set water: %v", err)
	}
	if err := svc.SetSleep(1, "2026-08-29", 7.5); err != nil {
		t.Fatalf("set sleep: %v", err)
	}
	if err := svc.SetWater(1, "2026-08-29", 8); err != nil {
		t.Fatalf("update water: %v", err)
	}

	row, err = svc.WaterSleep(1, "2026-08-29")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if row.GlassesOfWater != 8 {
		t.Errorf("glasses = %d, want 8", row.GlassesOfWater)
	}
	if row.HoursOfSleep != 7.5 {
		t.Errorf("sleep = %v, want 7.5", row.HoursOfSleep)
	}

	var count int64
	db.Model(&models.WaterSleep{}).Count(&count)
	if count != 1 {
		t.Errorf("rows = %d, want single upserted row", count)
	}
}
