package deniverse

import "github.com/deniverse/deniverse/date"

// Fertile window, as phase offsets from the cycle start, boundaries
// included. The window is a fixed heuristic and deliberately does not scale
// with the cycle length; a length-aware model would center ovulation around
// Length-14 days.
const (
	fertileFirstDay = 10
	fertileLastDay  = 15
)

// Cycle holds the parameters of a menstrual cycle: the date the last period
// started, the full cycle length, and the bleeding length, both in days.
type Cycle struct {
	Start        date.Date
	Length       int
	PeriodLength int
}

// length returns the cycle length clamped to at least one day.
func (c Cycle) length() int {
	if c.Length < 1 {
		return 1
	}
	return c.Length
}

// Phase returns the day offset of d within the cycle, normalized into
// [0, Length). Dates before Start wrap around correctly.
func (c Cycle) Phase(d date.Date) int {
	n := c.length()
	return ((d.Sub(c.Start) % n) + n) % n
}

// IsPeriodDay reports whether d falls in the predicted period window.
func (c Cycle) IsPeriodDay(d date.Date) bool {
	return c.Phase(d) < c.PeriodLength
}

// IsFertileDay reports whether d falls in the heuristic fertile window.
func (c Cycle) IsFertileDay(d date.Date) bool {
	phase := c.Phase(d)
	return phase >= fertileFirstDay && phase <= fertileLastDay
}

// NextPeriodStart returns the first predicted period start on or after
// from.
func (c Cycle) NextPeriodStart(from date.Date) date.Date {
	phase := c.Phase(from)
	if phase == 0 {
		return from
	}
	return from.Add(c.length() - phase)
}
