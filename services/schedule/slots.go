package schedule

import (
	"time"

	"homeshow/models"
)

// slotGrid is the fixed step at which candidate slot starts are enumerated.
// It is independent of the appointment duration so slot starts stay on a
// predictable grid however the duration is configured.
const slotGrid = 30 * time.Minute

// AvailableSlots enumerates bookable appointment starts on the calendar day
// of anchor, in the configured timezone. A candidate survives when its full
// span fits inside the work day and clears every busy interval expanded by
// the schedule buffer on both sides. Results ascend by construction.
func AvailableSlots(anchor time.Time, busy []models.BusyInterval, cfg models.ScheduleConfig) []time.Time {
	local := anchor.In(cfg.Location)
	y, m, d := local.Date()

	dayStart := time.Date(y, m, d, cfg.WorkStartMin/60, cfg.WorkStartMin%60, 0, 0, cfg.Location)
	dayEnd := time.Date(y, m, d, cfg.WorkEndMin/60, cfg.WorkEndMin%60, 0, 0, cfg.Location).
		Add(-cfg.AppointmentDuration)

	// A work day shorter than one appointment yields an empty, valid result.
	var slots []time.Time
	for cur := dayStart; !cur.After(dayEnd); cur = cur.Add(slotGrid) {
		if !conflictsAny(cur, cur.Add(cfg.AppointmentDuration), busy, cfg.ScheduleBuffer) {
			slots = append(slots, cur)
		}
	}
	return slots
}

// conflictsAny reports whether the candidate span [start, end) overlaps any
// busy interval once the buffer is applied to both of the interval's edges.
func conflictsAny(start, end time.Time, busy []models.BusyInterval, buffer time.Duration) bool {
	for _, b := range busy {
		if start.Before(b.End.Add(buffer)) && end.After(b.Start.Add(-buffer)) {
			return true
		}
	}
	return false
}
