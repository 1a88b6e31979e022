package recurring

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-intelligence/internal/model"
	"task-intelligence/pkg/recurrence"
)

// Generator materializes instances of recurring templates. It does not persist anything.
type Generator struct {
	newID func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithIDFunc replaces the instance UUID source.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		g.newID = fn
	}
}

// NewGenerator creates a Generator that assigns random UUIDs to instances.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{newID: uuid.NewString}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns up to count new instances of template, numbered after the
// highest of existing. Instance k is due at anchor + k intervals, where the
// anchor is the template's due date, else its scheduled date, else now.
// Generation stops before the first instance due after template.Until.
func (g *Generator) Generate(template model.Task, count int, existing []int, now time.Time) ([]model.Task, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if strings.TrimSpace(template.Recur) == "" {
		return nil, ErrMissingRecurrence
	}
	pattern, ok := recurrence.Parse(template.Recur)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecurrence, template.Recur)
	}

	anchor := now
	switch {
	case template.Due != nil:
		anchor = *template.Due
	case template.Scheduled != nil:
		anchor = *template.Scheduled
	}

	next := NextInstanceNumber(existing)
	instances := make([]model.Task, 0, count)
	for k := next; k < next+count; k++ {
		due := pattern.Offset(anchor, k)
		if template.Until != nil && due.After(*template.Until) {
			break
		}
		instances = append(instances, g.instance(template, k, due))
	}
	return instances, nil
}

// NextInstanceNumber returns one more than the highest existing number, or 1.
func NextInstanceNumber(existing []int) int {
	highest := 0
	for _, n := range existing {
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}

func (g *Generator) instance(template model.Task, k int, due time.Time) model.Task {
	inst := template.Clone()
	inst.UUID = g.newID()
	inst.Status = model.StatusPending
	inst.Start = nil
	inst.End = nil
	inst.Parent = template.UUID
	inst.Imask = k

	scheduled := due
	inst.Due = &due
	inst.Scheduled = &scheduled
	return inst
}
