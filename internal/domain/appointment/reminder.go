package appointment

import "time"

// Offsets are the minutes-before-start at which reminders fire, in firing order.
var Offsets = []int{5, 4, 3, 2, 1}

// CatchUpWindow bounds the periodic scan: appointments starting within it still have reminders pending.
const CatchUpWindow = 6 * time.Minute

type Due struct {
	OffsetMinutes int
	ReminderTime  time.Time
	Urgency       Urgency
}

// ComputeDue returns the reminders whose firing time is strictly after now.
func ComputeDue(scheduledFor, now time.Time) []Due {
	due := make([]Due, 0, len(Offsets))
	for _, offset := range Offsets {
		at := scheduledFor.Add(-time.Duration(offset) * time.Minute)
		if !at.After(now) {
			continue
		}
		due = append(due, Due{
			OffsetMinutes: offset,
			ReminderTime:  at,
			Urgency:       UrgencyFor(offset),
		})
	}
	return due
}

func UrgencyFor(offsetMinutes int) Urgency {
	if offsetMinutes <= 2 {
		return UrgencyHigh
	}
	return UrgencyMedium
}
