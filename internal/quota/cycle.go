package quota

import "time"

// a monthly usage window [Start, End) in UTC
type Cycle struct {
	Start time.Time
	End   time.Time
}

// returns the calendar-month cycle containing t
func CycleAt(t time.Time) Cycle {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)

	return Cycle{
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}
}

// reports whether t falls inside the cycle
func (c Cycle) Contains(t time.Time) bool {
	return !t.Before(c.Start) && t.Before(c.End)
}

// stable identifier, e.g. "2026-10"
func (c Cycle) Key() string {
	return c.Start.Format("2006-01")
}
