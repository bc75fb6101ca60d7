package schedule

import (
	"context"
	"fmt"
	"time"

	"homeshow/models"
	"homeshow/utils"

	"go.uber.org/zap"
)

// reminderLead is how long before a showing its reminder fires.
const reminderLead = 24 * time.Hour

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

// GetAvailability resolves the caller's stated preference to an anchor day,
// fetches the agent's busy intervals for that day, and returns the rendered
// set of bookable slots. A calendar failure fails the whole operation: no
// partial availability is ever offered.
func (se *DefaultSchedulingEngine) GetAvailability(ctx context.Context, profile models.CallerProfile, preference string) (*models.AvailabilityPayload, error) {
	logger := utils.GetLogger()
	now := se.now().In(se.Config.Location)

	anchor := ResolveAnchor(se.Parser, preference, now, se.Config.Location)

	busy, err := se.Calendar.FetchBusyIntervals(ctx, anchor, anchor.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch busy intervals: %w", err)
	}

	slots := AvailableSlots(anchor, busy, se.Config)
	logger.Debug("computed available slots",
		zap.String("caller", profile.Name),
		zap.String("preference", preference),
		zap.Time("anchor", anchor),
		zap.Int("busy", len(busy)),
		zap.Int("slots", len(slots)))

	return FormatSlots(slots, now, se.Config.Location), nil
}

// ResolveSelection parses a confirmed slot choice relative to now. Unlike
// preference resolution it applies no lookback: the caller is confirming an
// exact previously offered slot, not expressing a fuzzy preference.
func (se *DefaultSchedulingEngine) ResolveSelection(phrase string, now time.Time) (time.Time, time.Time, error) {
	parsed, ok := se.Parser.Parse(phrase, now.In(se.Config.Location))
	if !ok {
		return time.Time{}, time.Time{}, ErrUnparsableSelection
	}
	start := parsed.In(se.Config.Location)
	return start, start.Add(se.Config.AppointmentDuration), nil
}

// ScheduleShowing finalizes a booking for the caller's selected slot. A
// parse failure surfaces as ErrUnparsableSelection so the dialogue layer can
// re-prompt; a booking-sink failure degrades to the fixed fallback message.
func (se *DefaultSchedulingEngine) ScheduleShowing(ctx context.Context, profile models.CallerProfile, listing models.Listing, selectedSlot string) (string, error) {
	logger := utils.GetLogger()

	start, end, err := se.ResolveSelection(selectedSlot, se.now())
	if err != nil {
		return "", err
	}

	req := models.ShowingRequest{
		ListingID:   listing.ListingID,
		Start:       start,
		End:         end,
		Title:       fmt.Sprintf("Showing for %s (%s, %s)", profile.Name, listing.Address, listing.City),
		Description: showingDescription(profile, listing, start),
		CallerName:  profile.Name,
		CallerPhone: profile.Phone,
	}

	confirmation, err := se.Calendar.SubmitShowing(ctx, req)
	if err != nil {
		logger.Error("failed to submit showing",
			zap.String("listingID", listing.ListingID), zap.Error(err))
		return FallbackConfirmation, nil
	}

	if se.Reminders != nil {
		fireAt := start.Add(-reminderLead)
		if earliest := se.now().Add(time.Minute); fireAt.Before(earliest) {
			fireAt = earliest
		}
		payload := models.ReminderPayload{
			CallerName:  profile.Name,
			CallerPhone: profile.Phone,
			Address:     listing.Address,
			City:        listing.City,
			Start:       start,
		}
		if err := se.Reminders.EnqueueShowingReminder(payload, fireAt); err != nil {
			logger.Warn("failed to enqueue showing reminder", zap.Error(err))
		}
	}

	return confirmation, nil
}

func showingDescription(profile models.CallerProfile, listing models.Listing, start time.Time) string {
	return fmt.Sprintf(
		"Thank you for scheduling the showing with us. Here are the details: \n\n"+
			"Property ID: %s\n"+
			"User: %s\n"+
			"Phone: %s\n"+
			"Property: %s, %s, %s, %s\n"+
			"Appointment: %s",
		listing.ListingID, profile.Name, profile.Phone,
		listing.Address, listing.City, listing.State, listing.ZipCode,
		start.Format("Monday, January 02 2006 at 03:04 PM"))
}
