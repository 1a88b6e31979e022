package taskparse

import (
	"strings"
	"time"
)

// minCommasForSplit is how many commas a blob needs before commas act as task separators.
const minCommasForSplit = 2

// Split breaks blob into task fragments by comma and newline density:
//   - two or more commas and no newline: split on commas
//   - newlines and fewer than two commas: split on newlines
//   - newlines and two or more commas: split on newlines, then each line on commas
//   - otherwise: one fragment
//
// Fragments are trimmed and blank ones dropped.
func Split(blob string) []string {
	commas := strings.Count(blob, ",")
	newlines := strings.Count(blob, "\n")

	var pieces []string
	switch {
	case commas >= minCommasForSplit && newlines == 0:
		pieces = strings.Split(blob, ",")
	case newlines > 0 && commas >= minCommasForSplit:
		for _, line := range strings.Split(blob, "\n") {
			pieces = append(pieces, strings.Split(line, ",")...)
		}
	default:
		pieces = strings.Split(blob, "\n")
	}

	fragments := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		fragments = append(fragments, piece)
	}
	return fragments
}

// ParseMany splits blob and parses each fragment, dropping results whose
// description is blank. Order follows the input.
func (p *Parser) ParseMany(blob string, now time.Time) []ParsedTask {
	fragments := Split(blob)
	tasks := make([]ParsedTask, 0, len(fragments))
	for _, fragment := range fragments {
		parsed := p.Parse(fragment, now)
		if strings.TrimSpace(parsed.Description) == "" {
			continue
		}
		tasks = append(tasks, parsed)
	}
	return tasks
}

// ParseManyNow is ParseMany against the current wall clock.
func (p *Parser) ParseManyNow(blob string) []ParsedTask {
	return p.ParseMany(blob, time.Now())
}
