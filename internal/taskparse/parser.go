package taskparse

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/datemath"
)

const (
	projectPrefix = "#"
	tagPrefix     = "@"
)

var priorityPattern = regexp.MustCompile(`^(?i)[p!]([123])$`)

var priorityLevels = map[string]model.Priority{
	"1": model.PriorityHigh,
	"2": model.PriorityMedium,
	"3": model.PriorityLow,
}

// Parser turns a single task's text into a ParsedTask.
type Parser struct {
	dates *datemath.Parser
}

// New creates a Parser that resolves date tokens with dates.
func New(dates *datemath.Parser) *Parser {
	return &Parser{dates: dates}
}

type token struct {
	text  string
	start int
}

// tokenize splits text on Unicode whitespace, keeping byte offsets.
func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, token{text: text[start:i], start: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: text[start:], start: start})
	}
	return tokens
}

// Parse classifies every whitespace-separated token of text on its own:
// priority, then project, then tag, then date. Unrecognized tokens form the
// description. The first priority, project and date win; every tag is kept.
func (p *Parser) Parse(text string, now time.Time) ParsedTask {
	var words []string
	out := ParsedTask{Source: text}

	for _, tok := range tokenize(text) {
		el, ok := p.classify(tok, now)
		if !ok {
			words = append(words, tok.text)
			continue
		}

		switch e := el.(type) {
		case PriorityElement:
			if out.Priority == model.PriorityNone {
				out.Priority = e.Priority
			}
		case ProjectElement:
			if out.Project == "" {
				out.Project = e.Project
			}
		case TagElement:
			out.Tags = append(out.Tags, e.Tag)
		case DateElement:
			if out.Due == nil {
				due := e.Due
				out.Due = &due
			}
		}
		out.Elements = append(out.Elements, el)
	}

	out.Description = strings.TrimSpace(strings.Join(words, " "))
	return out
}

// ParseNow parses text against the current wall clock.
func (p *Parser) ParseNow(text string) ParsedTask {
	return p.Parse(text, time.Now())
}

func (p *Parser) classify(tok token, now time.Time) (Element, bool) {
	pos := Span{Start: tok.start, End: tok.start + len(tok.text), Text: tok.text}

	if m := priorityPattern.FindStringSubmatch(tok.text); m != nil {
		return PriorityElement{Pos: pos, Priority: priorityLevels[m[1]]}, true
	}
	if name, ok := prefixed(tok.text, projectPrefix); ok {
		return ProjectElement{Pos: pos, Project: name}, true
	}
	if name, ok := prefixed(tok.text, tagPrefix); ok {
		return TagElement{Pos: pos, Tag: name}, true
	}
	if due, ok := p.dates.Resolve(tok.text, now); ok {
		return DateElement{Pos: pos, Due: due}, true
	}
	return nil, false
}

// prefixed reports whether s is prefix followed by at least one character.
func prefixed(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	rest := s[len(prefix):]
	if utf8.RuneCountInString(rest) < 1 {
		return "", false
	}
	return rest, true
}

// Segments cuts p.Source into consecutive plain and recognized pieces.
// Joining every segment's Text gives back p.Source unchanged.
func Segments(p ParsedTask) []Segment {
	text := p.Source
	segments := make([]Segment, 0, 2*len(p.Elements)+1)
	cursor := 0
	for _, el := range p.Elements {
		span := el.Span()
		if span.Start < cursor || span.End > len(text) {
			continue
		}
		if span.Start > cursor {
			segments = append(segments, Segment{Text: text[cursor:span.Start]})
		}
		segments = append(segments, Segment{Text: text[span.Start:span.End], Recognized: true, Category: el.Category()})
		cursor = span.End
	}
	if cursor < len(text) {
		segments = append(segments, Segment{Text: text[cursor:]})
	}
	return segments
}
