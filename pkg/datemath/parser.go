package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	relativePattern  = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)
	inDurationPhrase = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves date expressions to absolute time.Time values in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser resolves named dates in the IANA zone timezone, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the location results are expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve converts a date expression to an absolute time, relative to reference.
// The boolean is false when expr is not a date; callers treat it as plain text.
func (p *Parser) Resolve(expr string, reference time.Time) (time.Time, bool) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return time.Time{}, false
	}
	reference = reference.In(p.location)

	if isoDatePattern.MatchString(expr) {
		return p.parseISODate(expr)
	}

	if m := relativePattern.FindStringSubmatch(expr); m != nil {
		return p.parseRelative(m[1], m[2], m[3], reference)
	}

	if t, ok := p.parseNamed(expr, reference); ok {
		return t, true
	}

	if target, ok := weekdays[expr]; ok {
		return p.nextWeekday(target, reference), true
	}

	// Multi-word phrases never come out of the whitespace tokenizer; they are
	// only reachable when a whole expression is resolved directly.
	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, reference)
	}
	if strings.HasPrefix(expr, "next ") {
		target, ok := weekdays[strings.TrimSpace(strings.TrimPrefix(expr, "next "))]
		if !ok {
			return time.Time{}, false
		}
		return p.nextWeekday(target, reference), true
	}

	return time.Time{}, false
}

// ResolveNow resolves expr against the current wall clock.
func (p *Parser) ResolveNow(expr string) (time.Time, bool) {
	return p.Resolve(expr, time.Now())
}

// parseISODate handles YYYY-MM-DD. Out-of-range months and days are rejected by time.ParseInLocation.
func (p *Parser) parseISODate(expr string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", expr, p.location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// maxOffset bounds relative amounts; larger tokens stay plain text.
const maxOffset = 10000

// parseRelative handles [+-]<n>[dwmy], keeping the reference time of day.
func (p *Parser) parseRelative(sign, digits, unit string, reference time.Time) (time.Time, bool) {
	amount, err := strconv.Atoi(digits)
	if err != nil || amount > maxOffset {
		return time.Time{}, false
	}
	if sign == "-" {
		amount = -amount
	}

	switch unit {
	case "d":
		return reference.AddDate(0, 0, amount), true
	case "w":
		return reference.AddDate(0, 0, amount*7), true
	case "m":
		return reference.AddDate(0, amount, 0), true
	case "y":
		return reference.AddDate(amount, 0, 0), true
	}
	return time.Time{}, false
}

func (p *Parser) parseNamed(expr string, reference time.Time) (time.Time, bool) {
	switch expr {
	case "today":
		return p.startOfDay(reference), true
	case "tomorrow":
		return p.startOfDay(reference.AddDate(0, 0, 1)), true
	case "yesterday":
		return p.startOfDay(reference.AddDate(0, 0, -1)), true
	case "som":
		return p.startOfMonth(reference), true
	case "soy":
		return time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, p.location), true
	case "eom":
		// Day 0 of the following month is the last day of this one.
		last := time.Date(reference.Year(), reference.Month()+1, 0, 0, 0, 0, 0, p.location)
		return p.EndOfDay(last), true
	case "eoy":
		return p.EndOfDay(time.Date(reference.Year(), time.December, 31, 0, 0, 0, 0, p.location)), true
	}
	return time.Time{}, false
}

// parseInDuration resolves "in N days", "in N weeks" and "in N months" to midnight.
func (p *Parser) parseInDuration(expr string, reference time.Time) (time.Time, bool) {
	matches := inDurationPhrase.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return time.Time{}, false
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxOffset {
		return time.Time{}, false
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(reference.AddDate(0, 0, amount)), true
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(reference.AddDate(0, 0, amount*7)), true
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(reference.AddDate(0, amount, 0)), true
	}
	return time.Time{}, false
}

// nextWeekday returns the next target weekday strictly after the reference date.
func (p *Parser) nextWeekday(target time.Weekday, reference time.Time) time.Time {
	daysUntil := int(target - reference.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(reference.AddDate(0, 0, daysUntil))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

func (p *Parser) startOfMonth(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 on the day of t.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}
