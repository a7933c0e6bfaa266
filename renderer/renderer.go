// Package renderer turns agenda and ledger views into markdown for
// terminal display.
package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/deniverse/deniverse"
	"github.com/deniverse/deniverse/date"
)

// Day renders everything attached to one day: free text, notes, hourly
// slots, and the surrounding week note.
func Day(d date.Date, e *deniverse.DayEntry, weekNote string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", d.Key(), d.Weekday())

	if e == nil {
		b.WriteString("Nothing planned.\n")
	} else {
		if e.Text != "" {
			fmt.Fprintf(&b, "%s\n\n", e.Text)
		}
		if e.PeriodDelayed {
			b.WriteString("Marked as a cycle delay.\n\n")
		}
		ConditionalBlock(&b, func(w io.Writer) bool {
			if len(e.Notes) == 0 {
				return false
			}
			fmt.Fprintf(w, "## Notes\n\n")
			for _, n := range e.Notes {
				fmt.Fprintf(w, "- [%s] %s", n.Category, n.Text)
				if n.Reminder != nil {
					fmt.Fprintf(w, " (reminder %s)", n.Reminder.Format("2006-01-02 15:04"))
				}
				fmt.Fprintf(w, "\n    id: %s\n", n.ID)
			}
			fmt.Fprintln(w)
			return true
		})
		ConditionalBlock(&b, func(w io.Writer) bool {
			if len(e.Hourly) == 0 {
				return false
			}
			hours := make([]int, 0, len(e.Hourly))
			for h := range e.Hourly {
				hours = append(hours, h)
			}
			sort.Ints(hours)
			fmt.Fprintf(w, "## Schedule\n\n")
			for _, h := range hours {
				fmt.Fprintf(w, "- %02d:00 %s\n", h, e.Hourly[h])
			}
			fmt.Fprintln(w)
			return true
		})
	}

	if weekNote != "" {
		fmt.Fprintf(&b, "## Week %s\n\n%s\n", d.WeekKey(), weekNote)
	}
	return b.String()
}

// CycleStatus renders the cycle phase of one day.
func CycleStatus(c deniverse.Cycle, d date.Date, delayed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cycle on %s\n\n", d.Key())
	fmt.Fprintf(&b, "- phase: day %d of %d\n", c.Phase(d)+1, c.Length)
	fmt.Fprintf(&b, "- period day: %v\n", c.IsPeriodDay(d))
	fmt.Fprintf(&b, "- fertile day: %v\n", c.IsFertileDay(d))
	fmt.Fprintf(&b, "- next period: %s\n", c.NextPeriodStart(d.Add(1)))
	if delayed {
		b.WriteString("- marked delayed on this day\n")
	}
	return b.String()
}

// Transactions renders a markdown table of ledger movements, most recent
// first.
func Transactions(txs []deniverse.Transaction) string {
	if len(txs) == 0 {
		return "No transactions.\n"
	}
	var b strings.Builder
	b.WriteString("| Date | Title | Category | Amount | Id |\n")
	b.WriteString("|---|---|---|---:|---|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Title, tx.Category, tx.Amount.SignedString(), tx.ID)
	}
	return b.String()
}

// Summary renders one periodic aggregation report.
func Summary(s *deniverse.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Finance %s\n\n", s.Range)
	b.WriteString("| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Income | %s |\n", s.Income)
	fmt.Fprintf(&b, "| Expenses | %s |\n", s.Expense)
	fmt.Fprintf(&b, "| Net | %s |\n", s.Net.SignedString())
	fmt.Fprintf(&b, "| Wallet balance | %s |\n", s.EndBalance)
	fmt.Fprintf(&b, "| Transactions | %d |\n", s.Count)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(s.ByCategory) == 0 {
			return false
		}
		fmt.Fprintf(w, "\n## Expenses by category\n\n")
		fmt.Fprintf(w, "| Category | Total |\n|---|---:|\n")
		for _, line := range s.ByCategory {
			fmt.Fprintf(w, "| %s | %s |\n", line.Category, line.Total)
		}
		return true
	})
	return b.String()
}
