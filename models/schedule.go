package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ScheduleConfig is the agent's immutable working-day configuration. It is
// built once at startup and treated as read-only by every computation.
type ScheduleConfig struct {
	// WorkStartMin and WorkEndMin are minutes from midnight.
	WorkStartMin int
	WorkEndMin   int

	AppointmentDuration time.Duration
	ScheduleBuffer      time.Duration

	Timezone string
	Location *time.Location
}

// DefaultScheduleConfig mirrors the agent's standard working day.
func DefaultScheduleConfig() ScheduleConfig {
	loc, _ := time.LoadLocation("America/Chicago")
	return ScheduleConfig{
		WorkStartMin:        9 * 60,
		WorkEndMin:          18 * 60,
		AppointmentDuration: time.Hour,
		ScheduleBuffer:      30 * time.Minute,
		Timezone:            "America/Chicago",
		Location:            loc,
	}
}

// NewScheduleConfig builds a ScheduleConfig from the raw configuration
// surface ("HH:MM" work hours, minutes for durations, IANA timezone).
func NewScheduleConfig(workStart, workEnd string, durationMin, bufferMin int, timezone string) (ScheduleConfig, error) {
	startMin, err := parseClock(workStart)
	if err != nil {
		return ScheduleConfig{}, fmt.Errorf("invalid work start %q: %w", workStart, err)
	}
	endMin, err := parseClock(workEnd)
	if err != nil {
		return ScheduleConfig{}, fmt.Errorf("invalid work end %q: %w", workEnd, err)
	}
	if durationMin < 0 || bufferMin < 0 {
		return ScheduleConfig{}, fmt.Errorf("appointment duration and buffer must be non-negative")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return ScheduleConfig{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return ScheduleConfig{
		WorkStartMin:        startMin,
		WorkEndMin:          endMin,
		AppointmentDuration: time.Duration(durationMin) * time.Minute,
		ScheduleBuffer:      time.Duration(bufferMin) * time.Minute,
		Timezone:            timezone,
		Location:            loc,
	}, nil
}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value out of range")
	}
	return h*60 + m, nil
}

// BusyInterval is one externally-booked block on the agent's calendar.
// It is supplied per request by the calendar source and never mutated.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilityPayload is the caller-facing rendering of a slot computation.
// SlotStarts carries the underlying instants (RFC3339) so the rendered
// strings never need to be re-parsed.
type AvailabilityPayload struct {
	CurrentTime    string   `json:"current_time"`
	AvailableSlots []string `json:"available_slots"`
	SlotStarts     []string `json:"slot_starts"`
}

// ShowingRequest is the ephemeral booking handed to the webhook sink.
type ShowingRequest struct {
	ListingID   string    `json:"listing_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CallerName  string    `json:"caller_name"`
	CallerPhone string    `json:"caller_phone"`
}

// ReminderPayload is the queued showing-reminder task body.
type ReminderPayload struct {
	CallerName  string    `json:"callerName"`
	CallerPhone string    `json:"callerPhone"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Start       time.Time `json:"start"`
}
