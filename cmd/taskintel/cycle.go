package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-intelligence/internal/dependency"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Find dependency cycles in a fixture, or test whether a new edge would create one",
	Args:  cobra.NoArgs,
	RunE:  runCycle,
}

var (
	cycleFixture string
	cycleCheck   string
)

func init() {
	cycleCmd.Flags().StringVarP(&cycleFixture, "fixture", "f", "", "YAML file with tasks")
	cycleCmd.Flags().StringVar(&cycleCheck, "check", "", "Edge to test, as <task>:<dependency>")
	_ = cycleCmd.MarkFlagRequired("fixture")
}

func runCycle(cmd *cobra.Command, args []string) error {
	tasks, _, err := loadTasks(cycleFixture)
	if err != nil {
		return err
	}
	g := dependency.BuildGraph(tasks)
	out := cmd.OutOrStdout()

	if cycleCheck != "" {
		task, dep, ok := strings.Cut(cycleCheck, ":")
		if !ok || task == "" || dep == "" {
			return fmt.Errorf("--check must look like <task>:<dependency>")
		}
		if dependency.WouldCreateCycle(task, dep, g) {
			fmt.Fprintf(out, "%s -> %s would create a cycle\n", task, dep)
		} else {
			fmt.Fprintf(out, "%s -> %s is safe\n", task, dep)
		}
		return nil
	}

	if path := dependency.FindCycle(g); len(path) > 0 {
		fmt.Fprintf(out, "cycle: %s\n", strings.Join(path, " -> "))
		return nil
	}
	fmt.Fprintln(out, "no cycles")
	return nil
}
