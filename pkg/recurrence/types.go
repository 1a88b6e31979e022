package recurrence

import (
	"fmt"
	"time"
)

// Unit is the calendar unit of a recurrence interval.
type Unit string

const (
	Day   Unit = "D"
	Week  Unit = "W"
	Month Unit = "M"
	Year  Unit = "Y"
)

// Pattern is a parsed recurrence code such as P2W.
type Pattern struct {
	Amount int
	Unit   Unit
}

// String renders the canonical code, e.g. "P2W".
func (p Pattern) String() string {
	return fmt.Sprintf("P%d%s", p.Amount, p.Unit)
}

// Approximate day counts for units without a fixed length.
const (
	approxDaysPerMonth = 30
	approxDaysPerYear  = 365
)

// ApproxDuration returns the interval as a fixed duration, approximating a
// month as 30 days and a year as 365 days. Use it for display and ordering
// only; due dates go through Offset.
func (p Pattern) ApproxDuration() time.Duration {
	day := 24 * time.Hour
	switch p.Unit {
	case Day:
		return time.Duration(p.Amount) * day
	case Week:
		return time.Duration(p.Amount*7) * day
	case Month:
		return time.Duration(p.Amount*approxDaysPerMonth) * day
	case Year:
		return time.Duration(p.Amount*approxDaysPerYear) * day
	}
	return 0
}
