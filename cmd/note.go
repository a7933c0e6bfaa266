package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/deniverse/deniverse"
)

type noteCmd struct {
	date     string
	category string
	reminder string
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "add a note to a day" }
func (*noteCmd) Usage() string {
	return `deni note [-d <date>] [-c <category>] [-r <reminder>] <text>

  Adds a categorized note to the day. Categories: personal, work, finance,
  health, other. The reminder is a local "YYYY-MM-DD HH:MM" timestamp.
`
}

func (c *noteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to attach the note to (defaults to today)")
	f.StringVar(&c.category, "c", "other", "Note category")
	f.StringVar(&c.reminder, "r", "", "Optional reminder timestamp")
}

func (c *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: note text is required")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := deniverse.ParseNoteCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	reminder, err := parseReminder(c.reminder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	note := openAgenda().AddNote(day, f.Arg(0), category, reminder)
	fmt.Printf("Added note %s on %s\n", note.ID, day)
	return subcommands.ExitSuccess
}

type editNoteCmd struct {
	date     string
	id       string
	category string
	reminder string
}

func (*editNoteCmd) Name() string     { return "edit-note" }
func (*editNoteCmd) Synopsis() string { return "replace a note's text, category, and reminder" }
func (*editNoteCmd) Usage() string {
	return `deni edit-note -id <id> [-d <date>] [-c <category>] [-r <reminder>] <text>

  Replaces the note in place. An omitted -r clears the note's reminder.
  An unknown id leaves the store untouched.
`
}

func (c *editNoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the note to edit")
	f.StringVar(&c.date, "d", "", "Day holding the note (defaults to today)")
	f.StringVar(&c.category, "c", "other", "Note category")
	f.StringVar(&c.reminder, "r", "", "Optional reminder timestamp")
}

func (c *editNoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and the note text are required")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	id, err := uuid.Parse(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid note id: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := deniverse.ParseNoteCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	reminder, err := parseReminder(c.reminder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	openAgenda().UpdateNote(day, id, f.Arg(0), category, reminder)
	return subcommands.ExitSuccess
}

type rmNoteCmd struct {
	date string
	id   string
}

func (*rmNoteCmd) Name() string     { return "rm-note" }
func (*rmNoteCmd) Synopsis() string { return "delete a note from a day" }
func (*rmNoteCmd) Usage() string {
	return `deni rm-note -id <id> [-d <date>]

  Deletes the note. An unknown id leaves the store untouched.
`
}

func (c *rmNoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the note to delete")
	f.StringVar(&c.date, "d", "", "Day holding the note (defaults to today)")
}

func (c *rmNoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	id, err := uuid.Parse(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid note id: %v\n", err)
		return subcommands.ExitUsageError
	}

	openAgenda().DeleteNote(day, id)
	return subcommands.ExitSuccess
}
