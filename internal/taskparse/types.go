package taskparse

import (
	"time"

	"task-intelligence/internal/model"
)

// Category classifies a recognized token for highlighting.
type Category int

const (
	CategoryDueDate Category = iota
	CategoryPriority
	CategoryProject
	CategoryTag
)

func (c Category) String() string {
	switch c {
	case CategoryDueDate:
		return "DUE_DATE"
	case CategoryPriority:
		return "PRIORITY"
	case CategoryProject:
		return "PROJECT"
	case CategoryTag:
		return "TAG"
	}
	return "UNKNOWN"
}

// Span is a byte range [Start, End) of the original input. Text is input[Start:End].
type Span struct {
	Start int
	End   int
	Text  string
}

// Element is a recognized token. The set of implementations is closed:
// DateElement, PriorityElement, ProjectElement and TagElement.
type Element interface {
	Category() Category
	Span() Span
	element()
}

type DateElement struct {
	Pos Span
	Due time.Time
}

type PriorityElement struct {
	Pos      Span
	Priority model.Priority
}

type ProjectElement struct {
	Pos     Span
	Project string
}

type TagElement struct {
	Pos Span
	Tag string
}

func (e DateElement) Category() Category     { return CategoryDueDate }
func (e PriorityElement) Category() Category { return CategoryPriority }
func (e ProjectElement) Category() Category  { return CategoryProject }
func (e TagElement) Category() Category      { return CategoryTag }

func (e DateElement) Span() Span     { return e.Pos }
func (e PriorityElement) Span() Span { return e.Pos }
func (e ProjectElement) Span() Span  { return e.Pos }
func (e TagElement) Span() Span      { return e.Pos }

func (DateElement) element()     {}
func (PriorityElement) element() {}
func (ProjectElement) element()  {}
func (TagElement) element()      {}

// ParsedTask is the structured form of one task's free text.
type ParsedTask struct {
	// Source is the exact text that was parsed; element spans index into it.
	Source string

	Description string
	Due         *time.Time
	Priority    model.Priority
	Project     string
	Tags        []string

	// Elements lists every recognized token in input order, including repeats
	// of a category whose value was already taken from an earlier token.
	Elements []Element
}

// Segment is a slice of the original input, either plain text or a recognized element.
type Segment struct {
	Text       string
	Recognized bool
	Category   Category // meaningful only when Recognized
}
