package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-intelligence/pkg/datemath"
)

var rootCmd = &cobra.Command{
	Use:   "taskintel",
	Short: "taskintel - offline task intelligence tools",
	Long:  `taskintel parses task text, resolves dates, scores urgency, expands recurrences and checks dependency cycles without a server.`,
	// No RunE - defaults to showing help when no subcommand is provided
}

var (
	timezone string
	nowFlag  string
)

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "UTC", "IANA timezone for date resolution")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "Reference time (RFC3339), defaults to the wall clock")

	rootCmd.AddCommand(parseCmd, splitCmd, dateCmd, recurCmd, scoreCmd, cycleCmd)
}

// referenceTime returns --now when set, else the current time.
func referenceTime() (time.Time, error) {
	if nowFlag == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, nowFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}
	return t, nil
}

func dateParser() (*datemath.Parser, error) {
	p, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz %q: %w", timezone, err)
	}
	return p, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
