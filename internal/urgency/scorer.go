package urgency

import (
	"math"
	"strings"
	"time"

	"task-intelligence/internal/model"
)

const (
	nextTag = "next"
	day     = 24 * time.Hour
)

// Scorer computes urgency from a fixed set of coefficients. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	c Coefficients
}

// NewScorer creates a Scorer with the given coefficients.
func NewScorer(c Coefficients) *Scorer {
	return &Scorer{c: c}
}

// Score returns the urgency of a task, never below zero. blocking is the
// number of tasks that depend on it and blocked the number of its outstanding
// dependencies; negative counts are treated as zero.
func (s *Scorer) Score(t Snapshot, blocking, blocked int, now time.Time) float64 {
	return s.Breakdown(t, blocking, blocked, now).Total
}

// Breakdown returns each term of the score. Only Total is clamped at zero.
func (s *Scorer) Breakdown(t Snapshot, blocking, blocked int, now time.Time) Breakdown {
	b := Breakdown{
		Priority: s.priority(t.Priority),
		Due:      s.due(t.Due, now),
		Blocking: s.c.Blocking * float64(max(blocking, 0)),
		Blocked:  s.c.Blocked * float64(max(blocked, 0)),
		Age:      s.age(t.Entry, now),
	}
	if hasTag(t.Tags, nextTag) {
		b.NextTag = s.c.NextTag
	}
	if t.Start != nil {
		b.Active = s.c.Active
	}
	if t.Scheduled != nil {
		b.Scheduled = s.c.Scheduled
	}
	b.Total = math.Max(0, b.Sum())
	return b
}

func (s *Scorer) priority(p model.Priority) float64 {
	switch p {
	case model.PriorityHigh:
		return s.c.PriorityHigh
	case model.PriorityMedium:
		return s.c.PriorityMedium
	case model.PriorityLow:
		return s.c.PriorityLow
	}
	return 0
}

// due buckets the fractional number of days until due. A due time equal to
// now is not overdue.
func (s *Scorer) due(due *time.Time, now time.Time) float64 {
	if due == nil {
		return 0
	}
	days := due.Sub(now).Hours() / 24

	switch {
	case days < 0:
		return s.c.DueOverdue
	case days < 1:
		return s.c.DueWithinDay
	case days < 3:
		return s.c.DueWithin3Days
	case days < 7:
		return s.c.DueWithinWeek
	case days < 14:
		return s.c.DueWithin2Weeks
	case days < 30:
		return s.c.DueWithinMonth
	}
	return s.c.DueLater
}

// age grows linearly with days since entry up to AgeMax. Entries in the future count as zero days.
func (s *Scorer) age(entry, now time.Time) float64 {
	if entry.IsZero() {
		return 0
	}
	days := math.Max(0, float64(now.Sub(entry))/float64(day))
	return math.Min(days*s.c.AgePerDay, s.c.AgeMax)
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}
