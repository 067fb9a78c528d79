package domain

import (
	"time"

	"healthtrack/internal/platform/clock"
)

// PeriodStart is the beginning of the tracking window containing now.
// Total goals have no window and return the zero time.
func PeriodStart(f Frequency, now time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return clock.StartOfDay(now)
	case FrequencyWeekly:
		return clock.StartOfWeek(now)
	default:
		return time.Time{}
	}
}

// InPeriod reports whether an event at ts counts toward a goal tracked with
// frequency f at time now.
func InPeriod(f Frequency, ts, now time.Time) bool {
	switch f {
	case FrequencyDaily:
		return clock.SameDay(now, ts)
	case FrequencyWeekly:
		return clock.SameWeek(now, ts)
	default:
		return true
	}
}

// NeedsReset reports whether the goal's last reset predates the current window.
func (g Goal) NeedsReset(now time.Time) bool {
	start := PeriodStart(g.Frequency, now)
	if start.IsZero() {
		return false
	}
	last := g.LastResetDate
	if last.IsZero() {
		last = g.StartDate
	}
	return last.Before(start)
}
