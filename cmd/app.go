// Package cmd implements the CLI application to manage the agenda and the
// finance ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/deniverse/deniverse"
	"github.com/deniverse/deniverse/date"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dayCmd{}, "agenda")
	c.Register(&noteCmd{}, "agenda")
	c.Register(&editNoteCmd{}, "agenda")
	c.Register(&rmNoteCmd{}, "agenda")
	c.Register(&hourlyCmd{}, "agenda")
	c.Register(&weekCmd{}, "agenda")
	c.Register(&delayCmd{}, "agenda")

	c.Register(&cycleCmd{}, "cycle")

	c.Register(&addTxCmd{}, "finance")
	c.Register(&editTxCmd{}, "finance")
	c.Register(&rmTxCmd{}, "finance")
	c.Register(&txCmd{}, "finance")
	c.Register(&balanceCmd{}, "finance")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&weeklyCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the directory holding the JSON documents")

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "deniverse")
	}
	return "."
}

func openAgenda() *deniverse.AgendaStore { return deniverse.NewAgendaStore(*dataDir) }

func openPrefs() *deniverse.Preferences { return deniverse.LoadPreferences(*dataDir) }

func openFinance() *deniverse.FinanceStore {
	return deniverse.NewFinanceStore(*dataDir, openPrefs().PreferredCurrency)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseDay parses the conventional -d flag, defaulting to today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

const reminderFormat = "2006-01-02 15:04"

// parseReminder parses the conventional -r flag; empty means no reminder.
func parseReminder(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(reminderFormat, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder %q want format %q: %w", s, reminderFormat, err)
	}
	return &t, nil
}
