package schedule

import (
	"time"

	"homeshow/models"
)

// slotTimeFormat renders weekday, month, day and 12-hour time with no
// leading zero on the hour.
const slotTimeFormat = "Monday, January 2 at 3:04 PM"

// FormatSlots renders the computed slots for presentation. Rendering has no
// effect on slot selection; SlotStarts carries the exact instants in RFC3339
// so nothing downstream ever re-parses the human-readable strings.
func FormatSlots(slots []time.Time, now time.Time, loc *time.Location) *models.AvailabilityPayload {
	payload := &models.AvailabilityPayload{
		CurrentTime:    now.In(loc).Format(slotTimeFormat + " MST"),
		AvailableSlots: make([]string, 0, len(slots)),
		SlotStarts:     make([]string, 0, len(slots)),
	}
	for _, s := range slots {
		local := s.In(loc)
		payload.AvailableSlots = append(payload.AvailableSlots, local.Format(slotTimeFormat))
		payload.SlotStarts = append(payload.SlotStarts, local.Format(time.RFC3339))
	}
	return payload
}
