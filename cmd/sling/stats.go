package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/sling/journal"
)

// StatsCmd prints the outcome summary of a session journal
type StatsCmd struct {
	Journal string `help:"SQLite journal written by play --journal" type:"existingfile" short:"j" required:""`
	Recent  int    `help:"Number of recent sessions to list" default:"10" short:"n"`

	out io.Writer `kong:"-"`
}

// Run executes the stats command
func (s *StatsCmd) Run() error {
	out := s.out
	if out == nil {
		out = os.Stdout
	}

	store, err := journal.Open(s.Journal)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sum, err := store.Summary(ctx)
	if err != nil {
		return err
	}
	recent, err := store.Recent(ctx, s.Recent)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "sessions  %d\n", sum.Total)
	fmt.Fprintf(out, "full      %d (avg hold %s)\n", sum.FiredFull, sum.AvgFullHold.Round(time.Millisecond))
	fmt.Fprintf(out, "fast      %d\n", sum.FiredFast)
	fmt.Fprintf(out, "cancelled %d\n", sum.Cancelled)

	reasons := make([]string, 0, len(sum.CancelledBy))
	for reason := range sum.CancelledBy {
		reasons = append(reasons, reason)
	}
	slices.Sort(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(out, "  %-14s %d\n", reason, sum.CancelledBy[reason])
	}
	fmt.Fprintf(out, "energy    %g\n", sum.EnergySpent)

	if len(recent) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION\tOUTCOME\tREASON\tHOLD\tCOST\tAT")
	for _, e := range recent {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\t%s\n",
			e.SessionID.String()[:8], e.Outcome, e.Reason, e.Hold, e.Cost, e.RecordedAt.Format(time.DateTime))
	}
	return tw.Flush()
}
