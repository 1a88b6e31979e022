package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"task-intelligence/internal/taskparse"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse one or many tasks and show the recognized metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var splitCmd = &cobra.Command{
	Use:   "split <text>",
	Short: "Show how a blob is split into task fragments",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSplit,
}

func runParse(cmd *cobra.Command, args []string) error {
	dates, err := dateParser()
	if err != nil {
		return err
	}
	parser := taskparse.New(dates)
	blob := strings.Join(args, " ")

	var parsed []taskparse.ParsedTask
	if nowFlag == "" {
		parsed = parser.ParseManyNow(blob)
	} else {
		now, err := referenceTime()
		if err != nil {
			return err
		}
		parsed = parser.ParseMany(blob, now)
	}
	if len(parsed) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDESCRIPTION\tPRIORITY\tPROJECT\tDUE\tTAGS")
	for i, p := range parsed {
		due := "-"
		if p.Due != nil {
			due = p.Due.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, p.Description, dash(string(p.Priority)), dash(p.Project), due, dash(strings.Join(p.Tags, ",")))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for i, p := range parsed {
		fmt.Fprintf(cmd.OutOrStdout(), "\n[%d] %s\n", i+1, highlight(p))
	}
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	for i, fragment := range taskparse.Split(strings.Join(args, " ")) {
		fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i+1, fragment)
	}
	return nil
}

// highlight brackets every recognized segment with its category.
func highlight(p taskparse.ParsedTask) string {
	var b strings.Builder
	for _, seg := range taskparse.Segments(p) {
		if seg.Recognized {
			fmt.Fprintf(&b, "[%s:%s]", seg.Category, seg.Text)
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
