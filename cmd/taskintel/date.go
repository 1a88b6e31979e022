package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var dateCmd = &cobra.Command{
	Use:   "date <expression>",
	Short: "Resolve a date expression such as 2025-03-14, +2w, eom or friday",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDate,
}

func runDate(cmd *cobra.Command, args []string) error {
	dates, err := dateParser()
	if err != nil {
		return err
	}

	expr := strings.Join(args, " ")
	var (
		t  time.Time
		ok bool
	)
	if nowFlag == "" {
		t, ok = dates.ResolveNow(expr)
	} else {
		now, err := referenceTime()
		if err != nil {
			return err
		}
		t, ok = dates.Resolve(expr, now)
	}
	if !ok {
		return fmt.Errorf("could not resolve %q", expr)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
	return nil
}
