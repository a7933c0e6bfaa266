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

// report runs the shared aggregation flow of the periodic report commands.
func report(dateFlag string, period date.Period) subcommands.ExitStatus {
	day, err := parseDay(dateFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	summary := openFinance().Summarize(date.NewRange(day, period))
	printMarkdown(renderer.Summary(summary))
	return subcommands.ExitSuccess
}

type summaryCmd struct {
	date   string
	period string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "aggregate the ledger over a standard period" }
func (*summaryCmd) Usage() string {
	return `deni summary [-d <date>] [-p <period>]

  Aggregates income, expenses, and per-category totals over the period
  containing the date. Periods: daily, weekly, monthly, quarterly,
  yearly.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any day of the period (defaults to today)")
	f.StringVar(&c.period, "p", "monthly", "Reporting period")
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return report(c.date, period)
}

type weeklyCmd struct {
	date string
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "weekly ledger report" }
func (*weeklyCmd) Usage() string {
	return `deni weekly [-d <date>]

  Shorthand for "summary -p weekly".
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any day of the week (defaults to today)")
}

func (c *weeklyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(c.date, date.Weekly)
}

type monthlyCmd struct {
	date string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "monthly ledger report" }
func (*monthlyCmd) Usage() string {
	return `deni monthly [-d <date>]

  Shorthand for "summary -p monthly".
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Any day of the month (defaults to today)")
}

func (c *monthlyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return report(c.date, date.Monthly)
}
