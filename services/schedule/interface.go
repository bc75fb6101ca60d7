package schedule

import (
	"context"
	"time"

	"homeshow/models"
)

// CalendarClient is the external calendar/booking collaborator, specified
// only at its request/response boundary.
type CalendarClient interface {
	// FetchBusyIntervals returns the agent's booked blocks in [start, end).
	FetchBusyIntervals(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error)
	// SubmitShowing books the showing and returns a confirmation message.
	SubmitShowing(ctx context.Context, req models.ShowingRequest) (string, error)
}

// ReminderQueue enqueues a showing reminder to fire at the given instant.
type ReminderQueue interface {
	EnqueueShowingReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// SchedulingService exposes the availability and booking operations to the
// dialogue/orchestration layer.
type SchedulingService interface {
	GetAvailability(ctx context.Context, profile models.CallerProfile, preference string) (*models.AvailabilityPayload, error)
	ScheduleShowing(ctx context.Context, profile models.CallerProfile, listing models.Listing, selectedSlot string) (string, error)
}

// DefaultSchedulingEngine implements SchedulingService. It holds no mutable
// state; concurrent sessions can share one instance freely.
type DefaultSchedulingEngine struct {
	Config   models.ScheduleConfig
	Parser   DateTimeParser
	Calendar CalendarClient

	// Reminders is optional; when nil no reminder is queued.
	Reminders ReminderQueue

	// Now is overridable in tests. Nil means time.Now.
	Now func() time.Time
}
