package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nandini9934/MyApi/services"
)

func TestBookAndAvailableSlots(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAppointmentService(db)

	now := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	date := "2026-08-30"

	appt, err := svc.Book(1, date, "10:00 AM", "meal planning")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if !strings.HasPrefix(appt.ID, "app_") {
		t.Errorf("id = %q, want app_ prefix", appt.ID)
	}
	if appt.CallID == "" {
		t.Error("no call id minted")
	}
	if appt.Status != "scheduled" {
		t.Errorf("status = %q", appt.Status)
	}

	// The booked slot disappears from availability.
	slots, err := svc.AvailableSlots(date, now)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	want := []string{"09:00 AM", "11:00 AM", "02:00 PM", "03:00 PM"}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i, slot := range want {
		if slots[i] != slot {
			t.Errorf("slots[%d] = %q, want %q", i, slots[i], slot)
		}
	}

	// Double-booking the slot fails.
	if _, err := svc.Book(2, date, "10:00 AM", "intro"); !errors.Is(err, services.ErrDuplicate) {
		t.Errorf("double book = %v, want ErrDuplicate", err)
	}
}

func TestAvailableSlotsDropsPastTimesToday(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAppointmentService(db)

	// 11:30 AM: morning grid is gone, afternoon remains.
	now := time.Date(2026, 8, 29, 11, 30, 0, 0, time.UTC)
	slots, err := svc.AvailableSlots("2026-08-29", now)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	want := []string{"02:00 PM", "03:00 PM"}
	if len(slots) != len(want) || slots[0] != want[0] || slots[1] != want[1] {
		t.Errorf("slots = %v, want %v", slots, want)
	}
}

func TestUpcomingFiltersPastAndCancelled(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAppointmentService(db)

	now := time.Date(2026, 8, 29, 13, 0, 0, 0, time.UTC)

	past, err := svc.Book(1, "2026-08-29", "09:00 AM", "done already")
	if err != nil {
		t.Fatalf("book past: %v", err)
	}
	later, err := svc.Book(1, "2026-08-29", "03:00 PM", "this afternoon")
	if err != nil {
		t.Fatalf("book later: %v", err)
	}
	tomorrow, err := svc.Book(1, "2026-08-30", "09:00 AM", "tomorrow")
	if err != nil {
		t.Fatalf("book tomorrow: %v", err)
	}
	cancelled, err := svc.Book(1, "2026-08-31", "09:00 AM", "will cancel")
	if err != nil {
		t.Fatalf("book cancelled: %v", err)
	}
	if err := svc.Cancel(1, cancelled.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	upcoming, err := svc.Upcoming(1, now)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("upcoming = %d entries, want 2", len(upcoming))
	}
	if upcoming[0].ID != later.ID || upcoming[1].ID != tomorrow.ID {
		t.Errorf("upcoming order = %v, %v", upcoming[0].Topic, upcoming[1].Topic)
	}
	for _, appt := range upcoming {
		if appt.ID == past.ID {
			t.Error("past appointment leaked into upcoming")
		}
	}
}

func TestUpcomingOrdersSlotsByClockTime(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAppointmentService(db)

	now := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)

	// Booked out of order; "02:00 PM" sorts before "09:00 AM" as a
	// string but must come after it in the day.
	afternoon, err := svc.Book(1, "2026-08-30", "02:00 PM", "afternoon")
	if err != nil {
		t.Fatalf("book afternoon: %v", err)
	}
	morning, err := svc.Book(1, "2026-08-30", "09:00 AM", "morning")
	if err != nil {
		t.Fatalf("book morning: %v", err)
	}

	upcoming, err := svc.Upcoming(1, now)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("upcoming = %d entries, want 2", len(upcoming))
	}
	if upcoming[0].ID != morning.ID || upcoming[1].ID != afternoon.ID {
		t.Errorf("order = %q, %q; want morning first", upcoming[0].TimeSlot, upcoming[1].TimeSlot)
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAppointmentService(db)

	if err := svc.Cancel(1, "app_missing"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("cancel unknown = %v, want ErrNotFound", err)
	}

	// Cancelling someone else's appointment is also a miss.
	appt, err := svc.Book(1, "2026-08-30", "09:00 AM", "mine")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if err := svc.Cancel(2, appt.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("cancel other user's = %v, want ErrNotFound", err)
	}
}
