package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type delayCmd struct {
	date string
	off  bool
}

func (*delayCmd) Name() string     { return "delay" }
func (*delayCmd) Synopsis() string { return "mark a day as a cycle delay" }
func (*delayCmd) Usage() string {
	return `deni delay [-d <date>] [-off]

  Marks the day as a cycle delay, or unmarks it with -off. Unmarked days
  are stored as absence.
`
}

func (c *delayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to mark (defaults to today)")
	f.BoolVar(&c.off, "off", false, "Unmark the day instead")
}

func (c *delayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	openAgenda().SetPeriodDelay(day, !c.off)
	return subcommands.ExitSuccess
}
