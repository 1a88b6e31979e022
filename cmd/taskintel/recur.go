package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"task-intelligence/internal/recurring"
	"task-intelligence/pkg/recurrence"
)

var recurCmd = &cobra.Command{
	Use:   "recur [code]",
	Short: "Validate a recurrence code, or expand a template fixture into instances",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRecur,
}

var recurFixture string

func init() {
	recurCmd.Flags().StringVarP(&recurFixture, "fixture", "f", "", "YAML file with template, count and existing instance numbers")
}

func runRecur(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if recurFixture == "" {
		if len(args) == 0 {
			return fmt.Errorf("either a code or --fixture is required")
		}
		p, ok := recurrence.Parse(args[0])
		if !ok {
			return fmt.Errorf("invalid recurrence code %q", args[0])
		}
		fmt.Fprintf(out, "%s: every %d %s\n", p.String(), p.Amount, unitName(p.Unit, p.Amount))
		return nil
	}

	var f recurFile
	if err := readYAML(recurFixture, &f); err != nil {
		return err
	}
	tmpl, err := f.Template.toModel()
	if err != nil {
		return err
	}
	now, err := referenceTime()
	if err != nil {
		return err
	}

	count := f.Count
	if count == 0 {
		count = 1
	}
	instances, err := recurring.NewGenerator().Generate(tmpl, count, f.Existing, now)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDUE\tDESCRIPTION")
	for _, inst := range instances {
		fmt.Fprintf(w, "%d\t%s\t%s\n", inst.Imask, inst.Due.Format(time.RFC3339), inst.Description)
	}
	return w.Flush()
}

func unitName(u recurrence.Unit, n int) string {
	names := map[recurrence.Unit]string{
		recurrence.Day:   "day",
		recurrence.Week:  "week",
		recurrence.Month: "month",
		recurrence.Year:  "year",
	}
	if n == 1 {
		return names[u]
	}
	return names[u] + "s"
}
