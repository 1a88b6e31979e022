package dependency_test

import (
	"reflect"
	"testing"

	"task-intelligence/internal/dependency"
	"task-intelligence/internal/model"
)

func graphOf(edges map[string][]string) dependency.Graph {
	g := dependency.Graph{}
	for id, deps := range edges {
		g[id] = dependency.Node{UUID: id, Dependencies: deps}
	}
	return g
}

func TestWouldCreateCycle(t *testing.T) {
	// a -> b -> c, d -> c, e <-> f (existing loop)
	g := graphOf(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": nil,
		"d": {"c", "missing"},
		"e": {"f"},
		"f": {"e"},
	})

	tests := []struct {
		name string
		task string
		dep  string
		want bool
	}{
		{name: "self dependency", task: "a", dep: "a", want: true},
		{name: "self dependency unknown node", task: "zz", dep: "zz", want: true},
		{name: "direct back edge", task: "b", dep: "a", want: true},
		{name: "transitive back edge", task: "c", dep: "a", want: true},
		{name: "forward edge", task: "a", dep: "c", want: false},
		{name: "sibling", task: "d", dep: "b", want: false},
		{name: "dependency not in graph", task: "a", dep: "missing", want: false},
		{name: "branch through missing node", task: "b", dep: "d", want: false},
		{name: "existing unrelated loop", task: "a", dep: "e", want: false},
		{name: "into existing loop", task: "e", dep: "f", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dependency.WouldCreateCycle(tt.task, tt.dep, g); got != tt.want {
				t.Errorf("WouldCreateCycle(%s, %s) = %v, want %v", tt.task, tt.dep, got, tt.want)
			}
		})
	}
}

func TestWouldCreateCycleDiamond(t *testing.T) {
	// top depends on left and right, both depend on bottom.
	g := graphOf(map[string][]string{
		"top":    {"left", "right"},
		"left":   {"bottom"},
		"right":  {"bottom"},
		"bottom": nil,
	})
	if !dependency.WouldCreateCycle("bottom", "top", g) {
		t.Error("bottom -> top should close a loop")
	}
	if dependency.WouldCreateCycle("left", "right", g) {
		t.Error("left -> right should not close a loop")
	}
}

func TestWouldCreateCycleLongChain(t *testing.T) {
	edges := map[string][]string{}
	ids := make([]string, 2000)
	for i := range ids {
		ids[i] = string(rune('a'+i%26)) + string(rune('0'+i/26%10)) + string(rune('0'+i/260))
	}
	for i := 0; i < len(ids)-1; i++ {
		edges[ids[i]] = []string{ids[i+1]}
	}
	g := graphOf(edges)

	if !dependency.WouldCreateCycle(ids[len(ids)-1], ids[0], g) {
		t.Error("closing a long chain should be a cycle")
	}
}

func TestFindCycle(t *testing.T) {
	acyclic := graphOf(map[string][]string{"a": {"b"}, "b": {"c"}, "c": nil})
	if got := dependency.FindCycle(acyclic); got != nil {
		t.Errorf("FindCycle(acyclic) = %v, want nil", got)
	}

	cyclic := graphOf(map[string][]string{"a": {"b"}, "b": {"c"}, "c": {"a"}, "d": {"a"}})
	want := []string{"a", "b", "c", "a"}
	if got := dependency.FindCycle(cyclic); !reflect.DeepEqual(got, want) {
		t.Errorf("FindCycle(cyclic) = %v, want %v", got, want)
	}

	self := graphOf(map[string][]string{"x": {"x"}})
	if got := dependency.FindCycle(self); !reflect.DeepEqual(got, []string{"x", "x"}) {
		t.Errorf("FindCycle(self) = %v", got)
	}
}

func TestBuildGraphAndCountAll(t *testing.T) {
	tasks := []model.Task{
		{UUID: "a", Status: model.StatusPending, Depends: []string{"b", "c", "b"}},
		{UUID: "b", Status: model.StatusPending},
		{UUID: "c", Status: model.StatusCompleted},
		{UUID: "d", Status: model.StatusPending, Depends: []string{"b", "ghost"}},
		{UUID: "e", Status: model.StatusDeleted, Depends: []string{"b"}},
	}

	g := dependency.BuildGraph(tasks)
	if _, ok := g["e"]; ok {
		t.Error("deleted task should not be in graph")
	}
	if len(g) != 4 {
		t.Errorf("graph has %d nodes, want 4", len(g))
	}

	counts := dependency.CountAll(tasks)
	want := map[string]dependency.Counts{
		"a": {Blocked: 1},
		"b": {Blocking: 2},
		"d": {Blocked: 1},
		"e": {Blocked: 1},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("CountAll() = %+v, want %+v", counts, want)
	}
}
