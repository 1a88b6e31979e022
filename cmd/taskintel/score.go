package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"task-intelligence/internal/dependency"
	"task-intelligence/internal/urgency"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Rank the pending tasks of a fixture by urgency",
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

var scoreFixture string

func init() {
	scoreCmd.Flags().StringVarP(&scoreFixture, "fixture", "f", "", "YAML file with tasks and optional coefficients")
	_ = scoreCmd.MarkFlagRequired("fixture")
}

type scoredTask struct {
	uuid        string
	description string
	breakdown   urgency.Breakdown
}

func runScore(cmd *cobra.Command, args []string) error {
	tasks, coeffs, err := loadTasks(scoreFixture)
	if err != nil {
		return err
	}
	now, err := referenceTime()
	if err != nil {
		return err
	}

	scorer := urgency.NewScorer(coeffs)
	counts := dependency.CountAll(tasks)

	var ranked []scoredTask
	for _, t := range tasks {
		if !t.IsPending() {
			continue
		}
		c := counts[t.UUID]
		ranked = append(ranked, scoredTask{
			uuid:        t.UUID,
			description: t.Description,
			breakdown:   scorer.Breakdown(urgency.SnapshotOf(t), c.Blocking, c.Blocked, now),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].breakdown.Total > ranked[j].breakdown.Total
	})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UUID\tURGENCY\tPRI\tDUE\tNEXT\tACTIVE\tSCHED\tBLOCKING\tBLOCKED\tAGE\tDESCRIPTION")
	for _, r := range ranked {
		b := r.breakdown
		fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.2f\t%s\n",
			r.uuid, b.Total, b.Priority, b.Due, b.NextTag, b.Active, b.Scheduled, b.Blocking, b.Blocked, b.Age, r.description)
	}
	return w.Flush()
}
