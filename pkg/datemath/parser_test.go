package datemath_test

import (
	"testing"
	"time"

	"task-intelligence/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) // Sunday
	date := func(y int, m time.Month, d, hh, mm, ss int) time.Time {
		return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
	}

	tests := []struct {
		name      string
		expr      string
		reference time.Time
		want      time.Time
		wantOK    bool
	}{
		{name: "ISO date", expr: "2025-06-20", reference: base, want: date(2025, 6, 20, 0, 0, 0), wantOK: true},
		{name: "ISO leap day", expr: "2024-02-29", reference: base, want: date(2024, 2, 29, 0, 0, 0), wantOK: true},
		{name: "ISO month 13", expr: "2025-13-01", reference: base},
		{name: "ISO day 45", expr: "2025-02-45", reference: base},
		{name: "ISO non-leap Feb 29", expr: "2025-02-29", reference: base},

		{name: "Plus 3 days keeps time", expr: "+3d", reference: base, want: date(2025, 6, 18, 12, 0, 0), wantOK: true},
		{name: "Minus 2 weeks", expr: "-2w", reference: base, want: date(2025, 6, 1, 12, 0, 0), wantOK: true},
		{name: "Plus 1 year", expr: "+1y", reference: base, want: date(2026, 6, 15, 12, 0, 0), wantOK: true},
		// AddDate normalizes Feb 31 into March.
		{name: "Jan 31 plus 1 month", expr: "+1m", reference: date(2025, 1, 31, 9, 30, 0), want: date(2025, 3, 3, 9, 30, 0), wantOK: true},
		{name: "Jan 31 plus 1 month leap year", expr: "+1m", reference: date(2024, 1, 31, 9, 30, 0), want: date(2024, 3, 2, 9, 30, 0), wantOK: true},
		{name: "Leap day plus 1 year", expr: "+1y", reference: date(2024, 2, 29, 0, 0, 0), want: date(2025, 3, 1, 0, 0, 0), wantOK: true},
		{name: "Unknown unit", expr: "+3x", reference: base},
		{name: "Missing digits", expr: "+d", reference: base},
		{name: "Missing sign", expr: "3d", reference: base},
		{name: "Largest accepted offset", expr: "+10000d", reference: base, want: base.AddDate(0, 0, 10000), wantOK: true},
		{name: "Offset above bound", expr: "+10001d", reference: base},
		{name: "Huge week offset", expr: "+9999999999999w", reference: base},
		{name: "Huge negative year offset", expr: "-9999999999y", reference: base},

		{name: "Today", expr: "today", reference: base, want: date(2025, 6, 15, 0, 0, 0), wantOK: true},
		{name: "Tomorrow", expr: "tomorrow", reference: base, want: date(2025, 6, 16, 0, 0, 0), wantOK: true},
		{name: "Yesterday", expr: "yesterday", reference: base, want: date(2025, 6, 14, 0, 0, 0), wantOK: true},
		{name: "Normalized case and space", expr: "  TODAY ", reference: base, want: date(2025, 6, 15, 0, 0, 0), wantOK: true},
		{name: "End of month leap February", expr: "eom", reference: date(2024, 2, 15, 12, 0, 0), want: date(2024, 2, 29, 23, 59, 59), wantOK: true},
		{name: "End of month February", expr: "eom", reference: date(2025, 2, 10, 8, 0, 0), want: date(2025, 2, 28, 23, 59, 59), wantOK: true},
		{name: "End of month December", expr: "eom", reference: date(2025, 12, 5, 8, 0, 0), want: date(2025, 12, 31, 23, 59, 59), wantOK: true},
		{name: "End of year", expr: "eoy", reference: base, want: date(2025, 12, 31, 23, 59, 59), wantOK: true},
		{name: "Start of month", expr: "som", reference: base, want: date(2025, 6, 1, 0, 0, 0), wantOK: true},
		{name: "Start of year", expr: "soy", reference: base, want: date(2025, 1, 1, 0, 0, 0), wantOK: true},

		{name: "Monday from Sunday", expr: "monday", reference: base, want: date(2025, 6, 16, 0, 0, 0), wantOK: true},
		{name: "Saturday from Sunday", expr: "Saturday", reference: base, want: date(2025, 6, 21, 0, 0, 0), wantOK: true},
		{name: "Same weekday is a week later", expr: "sunday", reference: base, want: date(2025, 6, 22, 0, 0, 0), wantOK: true},

		{name: "In 3 days", expr: "in 3 days", reference: base, want: date(2025, 6, 18, 0, 0, 0), wantOK: true},
		{name: "In 2 weeks", expr: "in 2 weeks", reference: base, want: date(2025, 6, 29, 0, 0, 0), wantOK: true},
		{name: "In 1 month", expr: "in 1 month", reference: base, want: date(2025, 7, 15, 0, 0, 0), wantOK: true},
		{name: "Next Friday", expr: "next friday", reference: base, want: date(2025, 6, 20, 0, 0, 0), wantOK: true},
		{name: "Invalid duration phrase", expr: "in a few days", reference: base},
		{name: "Duration phrase above bound", expr: "in 99999 weeks", reference: base},
		{name: "Invalid next weekday", expr: "next funday", reference: base},

		{name: "Plain word", expr: "dentist", reference: base},
		{name: "Empty", expr: "   ", reference: base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Resolve(tt.expr, tt.reference)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v (got %v)", tt.expr, ok, tt.wantOK, got)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) got = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestResolveNow(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got, ok := parser.ResolveNow("2025-06-20")
	if !ok || !got.Equal(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ResolveNow(ISO) = %v, %v", got, ok)
	}

	before := time.Now()
	got, ok = parser.ResolveNow("+1d")
	after := time.Now()
	if !ok {
		t.Fatal("ResolveNow(+1d) not resolved")
	}
	if got.Before(before.AddDate(0, 0, 1)) || got.After(after.AddDate(0, 0, 1)) {
		t.Errorf("ResolveNow(+1d) = %v, want one day after %v", got, before)
	}

	if _, ok := parser.ResolveNow("dentist"); ok {
		t.Error("ResolveNow resolved a plain word")
	}
}

func TestResolveUsesParserLocation(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	loc := parser.Location()

	// 20:00 UTC is already 03:00 the next day in UTC+7.
	reference := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)
	got, ok := parser.Resolve("today", reference)
	if !ok {
		t.Fatal("expected today to resolve")
	}
	want := time.Date(2025, 6, 16, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
