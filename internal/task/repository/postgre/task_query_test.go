package postgre

import (
	"testing"

	"task-intelligence/internal/model"
	"task-intelligence/internal/task/repository"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repository.ListOptions
		wantMods string
		wantArgs int
	}{
		{"no filter", repository.ListOptions{}, "1=1", 0},
		{"status", repository.ListOptions{Status: model.StatusPending}, "1=1 AND status = $1", 1},
		{"parent", repository.ListOptions{Parent: "p"}, "1=1 AND parent = $1", 1},
		{"both", repository.ListOptions{Status: model.StatusPending, Parent: "p"}, "1=1 AND status = $1 AND parent = $2", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildListQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods = %q, want %q", mods, tt.wantMods)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestTaskArgs_NilSlices(t *testing.T) {
	args := taskArgs(model.Task{UUID: "a"})
	if len(args) != 17 {
		t.Fatalf("len(args) = %d, want 17", len(args))
	}
	if tags, ok := args[5].([]string); !ok || tags == nil {
		t.Errorf("tags arg = %#v, want empty non-nil slice", args[5])
	}
	if deps, ok := args[16].([]string); !ok || deps == nil {
		t.Errorf("depends arg = %#v, want empty non-nil slice", args[16])
	}
}
