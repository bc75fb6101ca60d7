package schedule

import (
	"testing"
	"time"
)

func TestFormatSlots(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2026, 3, 10, 8, 5, 0, 0, loc)
	slots := []time.Time{
		time.Date(2026, 3, 11, 9, 0, 0, 0, loc),
		time.Date(2026, 3, 11, 14, 30, 0, 0, loc),
	}

	payload := FormatSlots(slots, now, loc)

	if payload.CurrentTime != "Tuesday, March 10 at 8:05 AM CDT" {
		t.Errorf("unexpected current time rendering: %q", payload.CurrentTime)
	}
	if len(payload.AvailableSlots) != 2 || len(payload.SlotStarts) != 2 {
		t.Fatalf("expected 2 rendered slots, got %d/%d",
			len(payload.AvailableSlots), len(payload.SlotStarts))
	}
	if payload.AvailableSlots[0] != "Wednesday, March 11 at 9:00 AM" {
		t.Errorf("unexpected slot rendering: %q", payload.AvailableSlots[0])
	}
	if payload.AvailableSlots[1] != "Wednesday, March 11 at 2:30 PM" {
		t.Errorf("unexpected slot rendering: %q", payload.AvailableSlots[1])
	}

	// SlotStarts is lossless: parsing it back recovers the exact instants.
	for i, raw := range payload.SlotStarts {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			t.Fatalf("slot start %d does not round-trip: %v", i, err)
		}
		if !parsed.Equal(slots[i]) {
			t.Errorf("slot start %d: expected %s, got %s", i, slots[i], parsed)
		}
	}
}

func TestFormatSlots_Empty(t *testing.T) {
	loc := chicago(t)
	payload := FormatSlots(nil, time.Date(2026, 3, 10, 8, 0, 0, 0, loc), loc)
	if len(payload.AvailableSlots) != 0 || len(payload.SlotStarts) != 0 {
		t.Fatal("expected empty slot lists")
	}
	if payload.CurrentTime == "" {
		t.Fatal("current time must render even with no slots")
	}
}
