package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/deniverse/deniverse/renderer"
)

type dayCmd struct {
	date     string
	text     string
	reminder string
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "show or edit the agenda entry of a day" }
func (*dayCmd) Usage() string {
	return `deni day [-d <date>] [-text <text>] [-r <reminder>]

  Without -text, displays the day: free text, notes, hourly slots, and the
  week note. With -text, replaces the day's free text (empty clears it);
  -r additionally sets the day-level reminder, and "-r" with an empty
  value clears it.
`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to show or edit (defaults to today)")
	f.StringVar(&c.text, "text", "", "New free text for the day; empty text clears it")
	f.StringVar(&c.reminder, "r", "", "Day-level reminder timestamp; empty clears it")
}

func (c *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	agenda := openAgenda()

	if flagSet(f, "text") {
		entry := agenda.Entry(day)
		var drawing []byte
		if entry != nil {
			drawing = entry.Drawing
		}
		if flagSet(f, "r") {
			reminder, err := parseReminder(c.reminder)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
			agenda.UpdateDayTextReminder(day, c.text, drawing, reminder)
		} else {
			agenda.UpdateDayText(day, c.text, drawing)
		}
	}

	weekNote, _ := agenda.WeekNote(day)
	printMarkdown(renderer.Day(day, agenda.Entry(day), weekNote))
	return subcommands.ExitSuccess
}

// flagSet reports whether a flag was given explicitly, so an empty value
// can mean "clear" rather than "show" or "leave untouched".
func flagSet(f *flag.FlagSet, name string) bool {
	set := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}
