package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"task-intelligence/internal/model"
	"task-intelligence/internal/urgency"
)

// taskFixture is the YAML shape of a task.
type taskFixture struct {
	UUID        string     `yaml:"uuid"`
	Description string     `yaml:"description"`
	Status      string     `yaml:"status"`
	Priority    string     `yaml:"priority"`
	Project     string     `yaml:"project"`
	Tags        []string   `yaml:"tags"`
	Entry       time.Time  `yaml:"entry"`
	Due         *time.Time `yaml:"due"`
	Scheduled   *time.Time `yaml:"scheduled"`
	Start       *time.Time `yaml:"start"`
	Until       *time.Time `yaml:"until"`
	Recur       string     `yaml:"recur"`
	Depends     []string   `yaml:"depends"`
}

func (f taskFixture) toModel() (model.Task, error) {
	p := model.Priority(f.Priority)
	if !p.IsValid() {
		return model.Task{}, fmt.Errorf("task %q: invalid priority %q", f.UUID, f.Priority)
	}
	status := model.Status(f.Status)
	if status == "" {
		status = model.StatusPending
	}
	return model.Task{
		UUID:        f.UUID,
		Description: f.Description,
		Status:      status,
		Priority:    p,
		Project:     f.Project,
		Tags:        f.Tags,
		Entry:       f.Entry,
		Modified:    f.Entry,
		Due:         f.Due,
		Scheduled:   f.Scheduled,
		Start:       f.Start,
		Until:       f.Until,
		Recur:       f.Recur,
		Depends:     f.Depends,
	}, nil
}

// tasksFile is the input of the score and cycle commands. Coefficients not
// named in the file keep their default value.
type tasksFile struct {
	Coefficients urgency.Coefficients `yaml:"coefficients"`
	Tasks        []taskFixture         `yaml:"tasks"`
}

// recurFile is the input of the recur command.
type recurFile struct {
	Template taskFixture `yaml:"template"`
	Count    int         `yaml:"count"`
	Existing []int       `yaml:"existing"`
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return nil
}

func loadTasks(path string) ([]model.Task, urgency.Coefficients, error) {
	f := tasksFile{Coefficients: urgency.DefaultCoefficients()}
	if err := readYAML(path, &f); err != nil {
		return nil, urgency.Coefficients{}, err
	}
	coeffs := f.Coefficients

	tasks := make([]model.Task, 0, len(f.Tasks))
	seen := make(map[string]bool, len(f.Tasks))
	for _, tf := range f.Tasks {
		if tf.UUID == "" {
			return nil, coeffs, fmt.Errorf("task %q: uuid is required", tf.Description)
		}
		if seen[tf.UUID] {
			return nil, coeffs, fmt.Errorf("duplicate task uuid %q", tf.UUID)
		}
		seen[tf.UUID] = true

		t, err := tf.toModel()
		if err != nil {
			return nil, coeffs, err
		}
		tasks = append(tasks, t)
	}
	return tasks, coeffs, nil
}
