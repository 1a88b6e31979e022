package dependency

import (
	"sort"

	"task-intelligence/internal/model"
)

// Node is a task in the dependency graph. An edge A->B means A depends on B.
type Node struct {
	UUID         string
	Dependencies []string
}

// Graph maps task UUID to its node.
type Graph map[string]Node

// BuildGraph builds a graph from persisted tasks. Deleted tasks are left out.
func BuildGraph(tasks []model.Task) Graph {
	g := make(Graph, len(tasks))
	for _, t := range tasks {
		if t.Status == model.StatusDeleted {
			continue
		}
		g[t.UUID] = Node{UUID: t.UUID, Dependencies: t.Depends}
	}
	return g
}

// Counts holds the dependency counts used for urgency.
type Counts struct {
	Blocking int // pending tasks that depend on this one
	Blocked  int // dependencies of this task that are still pending
}

// CountAll computes Counts for every task. Dependencies on unknown or
// finished tasks do not count.
func CountAll(tasks []model.Task) map[string]Counts {
	pending := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		pending[t.UUID] = t.IsPending()
	}

	counts := make(map[string]Counts, len(tasks))
	for _, t := range tasks {
		seen := make(map[string]bool, len(t.Depends))
		for _, dep := range t.Depends {
			if seen[dep] || !pending[dep] {
				continue
			}
			seen[dep] = true

			c := counts[t.UUID]
			c.Blocked++
			counts[t.UUID] = c

			if t.IsPending() {
				d := counts[dep]
				d.Blocking++
				counts[dep] = d
			}
		}
	}
	return counts
}

func sortedKeys(g Graph) []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
