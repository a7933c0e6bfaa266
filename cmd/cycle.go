package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/deniverse/deniverse/date"
	"github.com/deniverse/deniverse/renderer"
)

type cycleCmd struct {
	date  string
	start string
}

func (*cycleCmd) Name() string     { return "cycle" }
func (*cycleCmd) Synopsis() string { return "show the cycle phase of a day" }
func (*cycleCmd) Usage() string {
	return `deni cycle [-d <date>] [-start <date>]

  Prints the cycle phase, period and fertile status, and the next
  predicted period start. With -start, records a new last period start in
  the preferences first.
`
}

func (c *cycleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to inspect (defaults to today)")
	f.StringVar(&c.start, "start", "", "Record this date as the last period start")
}

func (c *cycleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	prefs := openPrefs()

	if c.start != "" {
		start, err := date.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		prefs.LastPeriodStart = start
		prefs.Save()
	}

	if prefs.LastPeriodStart.IsZero() {
		fmt.Fprintln(os.Stderr, "Error: no period start recorded, use -start first")
		return subcommands.ExitFailure
	}

	delayed := openAgenda().IsPeriodDelayed(day)
	printMarkdown(renderer.CycleStatus(prefs.Cycle(), day, delayed))
	return subcommands.ExitSuccess
}
