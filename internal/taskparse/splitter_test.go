package taskparse_test

import (
	"reflect"
	"testing"
	"time"

	"task-intelligence/internal/model"
	"task-intelligence/internal/taskparse"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want []string
	}{
		{name: "comma list", blob: "Buy milk, Call dentist, Review code", want: []string{"Buy milk", "Call dentist", "Review code"}},
		{name: "newline list", blob: "Buy milk\nCall dentist", want: []string{"Buy milk", "Call dentist"}},
		{name: "newlines with a single comma", blob: "Buy milk, eggs\nCall dentist", want: []string{"Buy milk, eggs", "Call dentist"}},
		{name: "newlines and commas", blob: "a, b, c\nd, e", want: []string{"a", "b", "c", "d", "e"}},
		{name: "single comma stays whole", blob: "Buy milk, eggs", want: []string{"Buy milk, eggs"}},
		{name: "blank fragments dropped", blob: "a,, b, ", want: []string{"a", "b"}},
		{name: "crlf lines", blob: "one\r\ntwo\r\n", want: []string{"one", "two"}},
		{name: "single line", blob: "  just one task  ", want: []string{"just one task"}},
		{name: "blank", blob: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskparse.Split(tt.blob)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.blob, got, tt.want)
			}
		})
	}
}

func TestParseMany(t *testing.T) {
	p := newParser(t)

	t.Run("comma separated descriptions", func(t *testing.T) {
		got := p.ParseMany("Buy milk, Call dentist, Review code", now)
		var descs []string
		for _, task := range got {
			descs = append(descs, task.Description)
		}
		want := []string{"Buy milk", "Call dentist", "Review code"}
		if !reflect.DeepEqual(descs, want) {
			t.Errorf("descriptions = %q, want %q", descs, want)
		}
	})

	t.Run("metadata-only fragments are dropped", func(t *testing.T) {
		got := p.ParseMany("p1, Buy milk @shop p2, #proj", now)
		if len(got) != 1 {
			t.Fatalf("got %d tasks, want 1", len(got))
		}
		if got[0].Description != "Buy milk" || got[0].Priority != model.PriorityMedium {
			t.Errorf("unexpected task %+v", got[0])
		}
		if got[0].Source != "Buy milk @shop p2" {
			t.Errorf("Source = %q, want trimmed fragment", got[0].Source)
		}
	})

	t.Run("blank blob", func(t *testing.T) {
		if got := p.ParseMany(" \n ", now); len(got) != 0 {
			t.Errorf("got %d tasks, want none", len(got))
		}
	})
}

func TestWallClockWrappers(t *testing.T) {
	p := newParser(t)

	got := p.ParseNow("Call dentist p1 2030-01-02")
	if got.Description != "Call dentist" || got.Priority != model.PriorityHigh {
		t.Errorf("ParseNow() = %+v", got)
	}
	if got.Due == nil || !got.Due.Equal(time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseNow() due = %v", got.Due)
	}

	many := p.ParseManyNow("Buy milk, Call dentist")
	if len(many) != 2 || many[0].Description != "Buy milk" || many[1].Description != "Call dentist" {
		t.Errorf("ParseManyNow() = %+v", many)
	}
}

func TestOutOfRangeOffsetStaysInDescription(t *testing.T) {
	p := newParser(t)

	got := p.Parse("Ship +9999999999999w", now)
	if got.Description != "Ship +9999999999999w" || got.Due != nil {
		t.Errorf("Parse() = %+v, want the offset kept as text", got)
	}
}
