package urgency_test

import (
	"math"
	"testing"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/urgency"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScoreDueBuckets(t *testing.T) {
	s := urgency.NewScorer(urgency.DefaultCoefficients())
	day := 24 * time.Hour

	tests := []struct {
		name string
		due  *time.Time
		want float64
	}{
		{name: "no due date", due: nil, want: 0},
		{name: "overdue by a second", due: at(-time.Second), want: 15.0},
		{name: "due exactly now", due: at(0), want: 12.0},
		{name: "due in 12 hours", due: at(12 * time.Hour), want: 12.0},
		{name: "due in exactly 1 day", due: at(day), want: 9.0},
		{name: "due in 2 days", due: at(2 * day), want: 9.0},
		{name: "due in exactly 3 days", due: at(3 * day), want: 6.0},
		{name: "due in exactly 7 days", due: at(7 * day), want: 3.0},
		{name: "due in exactly 14 days", due: at(14 * day), want: 1.5},
		{name: "due in 29 days", due: at(29 * day), want: 1.5},
		{name: "due in exactly 30 days", due: at(30 * day), want: 0.2},
		{name: "due next year", due: at(365 * day), want: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(urgency.Snapshot{Due: tt.due, Entry: now}, 0, 0, now)
			if !approx(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScorePriority(t *testing.T) {
	s := urgency.NewScorer(urgency.DefaultCoefficients())

	tests := []struct {
		priority model.Priority
		want     float64
	}{
		{priority: model.PriorityHigh, want: 6.0},
		{priority: model.PriorityMedium, want: 3.9},
		{priority: model.PriorityLow, want: 1.8},
		{priority: model.PriorityNone, want: 0},
	}
	for _, tt := range tests {
		got := s.Score(urgency.Snapshot{Priority: tt.priority, Entry: now}, 0, 0, now)
		if !approx(got, tt.want) {
			t.Errorf("priority %q: Score() = %v, want %v", tt.priority, got, tt.want)
		}
	}

	high := s.Score(urgency.Snapshot{Priority: model.PriorityHigh, Due: at(48 * time.Hour), Entry: now}, 1, 0, now)
	medium := s.Score(urgency.Snapshot{Priority: model.PriorityMedium, Due: at(48 * time.Hour), Entry: now}, 1, 0, now)
	if high <= medium {
		t.Errorf("high %v should score above medium %v", high, medium)
	}
}

func TestScoreCombined(t *testing.T) {
	s := urgency.NewScorer(urgency.DefaultCoefficients())

	t.Run("active scheduled next task due in 36 hours", func(t *testing.T) {
		task := urgency.Snapshot{
			Priority:  model.PriorityHigh,
			Due:       at(36 * time.Hour),
			Tags:      []string{"next"},
			Start:     at(0),
			Scheduled: at(0),
			Entry:     now,
		}
		// 6.0 + 9.0 + 15.0 + 4.0 + 5.0
		if got := s.Score(task, 0, 0, now); !approx(got, 39.0) {
			t.Errorf("Score() = %v, want 39.0", got)
		}
	})

	t.Run("same task due in 12 hours", func(t *testing.T) {
		task := urgency.Snapshot{
			Priority:  model.PriorityHigh,
			Due:       at(12 * time.Hour),
			Tags:      []string{"NEXT"},
			Start:     at(0),
			Scheduled: at(0),
			Entry:     now,
		}
		// 6.0 + 12.0 + 15.0 + 4.0 + 5.0
		if got := s.Score(task, 0, 0, now); !approx(got, 42.0) {
			t.Errorf("Score() = %v, want 42.0", got)
		}
	})

	t.Run("blocking and blocked counts", func(t *testing.T) {
		got := s.Score(urgency.Snapshot{Entry: now}, 2, 1, now)
		if !approx(got, 11.0) {
			t.Errorf("Score() = %v, want 11.0", got)
		}
	})

	t.Run("negative counts are ignored", func(t *testing.T) {
		got := s.Score(urgency.Snapshot{Priority: model.PriorityLow, Entry: now}, -3, -3, now)
		if !approx(got, 1.8) {
			t.Errorf("Score() = %v, want 1.8", got)
		}
	})
}

func TestScoreClampsOnlyTotal(t *testing.T) {
	s := urgency.NewScorer(urgency.DefaultCoefficients())
	old := now.AddDate(0, 0, -20)

	b := s.Breakdown(urgency.Snapshot{Priority: model.PriorityLow, Entry: old}, 0, 1, now)
	if !approx(b.Sum(), -1.2) {
		t.Errorf("Sum() = %v, want -1.2", b.Sum())
	}
	if b.Total != 0 {
		t.Errorf("Total = %v, want 0", b.Total)
	}

	// The negative blocked term is offset by other terms before the clamp.
	withNext := s.Score(urgency.Snapshot{Priority: model.PriorityLow, Tags: []string{"next"}, Entry: old}, 0, 1, now)
	if !approx(withNext, 13.8) {
		t.Errorf("Score() = %v, want 13.8", withNext)
	}

	if got := s.Score(urgency.Snapshot{Priority: model.PriorityHigh, Entry: now}, 0, 1000, now); got != 0 {
		t.Errorf("heavily blocked Score() = %v, want 0", got)
	}
}

func TestScoreAge(t *testing.T) {
	s := urgency.NewScorer(urgency.DefaultCoefficients())

	tests := []struct {
		name  string
		entry time.Time
		want  float64
	}{
		{name: "created now", entry: now, want: 0},
		{name: "five days old", entry: now.AddDate(0, 0, -5), want: 0.5},
		{name: "capped", entry: now.AddDate(0, 0, -100), want: 2.0},
		{name: "created in the future", entry: now.AddDate(0, 0, 3), want: 0},
		{name: "unknown entry", entry: time.Time{}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := s.Breakdown(urgency.Snapshot{Entry: tt.entry}, 0, 0, now)
			if !approx(b.Age, tt.want) {
				t.Errorf("Age = %v, want %v", b.Age, tt.want)
			}
		})
	}
}

func TestCustomCoefficients(t *testing.T) {
	c := urgency.DefaultCoefficients()
	c.NextTag = 1.0
	c.Blocked = 0
	s := urgency.NewScorer(c)

	got := s.Score(urgency.Snapshot{Tags: []string{"next"}, Entry: now}, 0, 5, now)
	if !approx(got, 1.0) {
		t.Errorf("Score() = %v, want 1.0", got)
	}
}

func TestSnapshotOf(t *testing.T) {
	due := now.Add(time.Hour)
	task := model.Task{
		UUID:     "a",
		Priority: model.PriorityHigh,
		Due:      &due,
		Tags:     []string{"next"},
		Entry:    now,
	}
	snap := urgency.SnapshotOf(task)
	if snap.Priority != model.PriorityHigh || snap.Due != task.Due || snap.Entry != now || len(snap.Tags) != 1 {
		t.Errorf("SnapshotOf() = %+v", snap)
	}
}
