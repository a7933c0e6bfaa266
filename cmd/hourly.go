package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type hourlyCmd struct {
	date string
	hour int
}

func (*hourlyCmd) Name() string     { return "hourly" }
func (*hourlyCmd) Synopsis() string { return "set or clear an hour slot of a day" }
func (*hourlyCmd) Usage() string {
	return `deni hourly -h <hour> [-d <date>] [<text>]

  Assigns the text of one hour slot (0-23). Omitted or blank text clears
  the slot.
`
}

func (c *hourlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to edit (defaults to today)")
	f.IntVar(&c.hour, "h", -1, "Hour of the slot, 0 to 23")
}

func (c *hourlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.hour < 0 || c.hour > 23 {
		fmt.Fprintln(os.Stderr, "Error: -h must be an hour between 0 and 23")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	openAgenda().SetHourly(day, c.hour, f.Arg(0))
	return subcommands.ExitSuccess
}
