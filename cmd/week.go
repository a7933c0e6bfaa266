package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type weekCmd struct {
	date string
}

func (*weekCmd) Name() string     { return "week" }
func (*weekCmd) Synopsis() string { return "show or set the note of an ISO week" }
func (*weekCmd) Usage() string {
	return `deni week [-d <date>] [<text>]

  Without text, prints the note of the ISO week containing the date. With
  text, replaces it; blank text removes the note.
`
}

func (c *weekCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any day of the week (defaults to today)")
}

func (c *weekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	agenda := openAgenda()

	if f.NArg() == 0 {
		note, ok := agenda.WeekNote(day)
		if !ok {
			fmt.Printf("No note for week %s.\n", day.WeekKey())
			return subcommands.ExitSuccess
		}
		printMarkdown(fmt.Sprintf("# Week %s\n\n%s\n", day.WeekKey(), note))
		return subcommands.ExitSuccess
	}

	agenda.SetWeekNote(day, f.Arg(0))
	return subcommands.ExitSuccess
}
