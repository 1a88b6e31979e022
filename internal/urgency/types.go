package urgency

import (
	"time"

	"task-intelligence/internal/model"
)

// Coefficients weight each urgency term. Zero values are used as-is, so start
// from DefaultCoefficients when overriding only a few.
type Coefficients struct {
	PriorityHigh   float64 `yaml:"priority_high" json:"priority_high"`
	PriorityMedium float64 `yaml:"priority_medium" json:"priority_medium"`
	PriorityLow    float64 `yaml:"priority_low" json:"priority_low"`

	DueOverdue      float64 `yaml:"due_overdue" json:"due_overdue"`
	DueWithinDay    float64 `yaml:"due_within_day" json:"due_within_day"`
	DueWithin3Days  float64 `yaml:"due_within_3_days" json:"due_within_3_days"`
	DueWithinWeek   float64 `yaml:"due_within_week" json:"due_within_week"`
	DueWithin2Weeks float64 `yaml:"due_within_2_weeks" json:"due_within_2_weeks"`
	DueWithinMonth  float64 `yaml:"due_within_month" json:"due_within_month"`
	DueLater        float64 `yaml:"due_later" json:"due_later"`

	NextTag   float64 `yaml:"next_tag" json:"next_tag"`
	Active    float64 `yaml:"active" json:"active"`
	Scheduled float64 `yaml:"scheduled" json:"scheduled"`
	Blocking  float64 `yaml:"blocking" json:"blocking"` // per task waiting on this one
	Blocked   float64 `yaml:"blocked" json:"blocked"`   // per outstanding dependency, normally negative

	AgePerDay float64 `yaml:"age_per_day" json:"age_per_day"`
	AgeMax    float64 `yaml:"age_max" json:"age_max"`
}

// DefaultCoefficients returns the stock weights.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		PriorityHigh:   6.0,
		PriorityMedium: 3.9,
		PriorityLow:    1.8,

		DueOverdue:      15.0,
		DueWithinDay:    12.0,
		DueWithin3Days:  9.0,
		DueWithinWeek:   6.0,
		DueWithin2Weeks: 3.0,
		DueWithinMonth:  1.5,
		DueLater:        0.2,

		NextTag:   15.0,
		Active:    4.0,
		Scheduled: 5.0,
		Blocking:  8.0,
		Blocked:   -5.0,

		AgePerDay: 0.1,
		AgeMax:    2.0,
	}
}

// Snapshot is the read-only view of a task that urgency depends on.
type Snapshot struct {
	Priority  model.Priority
	Due       *time.Time
	Scheduled *time.Time
	Start     *time.Time
	Tags      []string
	Entry     time.Time
}

// SnapshotOf extracts the urgency inputs from a persisted task.
func SnapshotOf(t model.Task) Snapshot {
	return Snapshot{
		Priority:  t.Priority,
		Due:       t.Due,
		Scheduled: t.Scheduled,
		Start:     t.Start,
		Tags:      t.Tags,
		Entry:     t.Entry,
	}
}

// Breakdown lists every term of a score. Total is the clamped sum.
type Breakdown struct {
	Priority  float64 `json:"priority"`
	Due       float64 `json:"due"`
	NextTag   float64 `json:"next_tag"`
	Active    float64 `json:"active"`
	Scheduled float64 `json:"scheduled"`
	Blocking  float64 `json:"blocking"`
	Blocked   float64 `json:"blocked"`
	Age       float64 `json:"age"`
	Total     float64 `json:"total"`
}

// Sum returns the unclamped sum of all terms.
func (b Breakdown) Sum() float64 {
	return b.Priority + b.Due + b.NextTag + b.Active + b.Scheduled + b.Blocking + b.Blocked + b.Age
}
