package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/deniverse/deniverse"
	"github.com/deniverse/deniverse/renderer"
)

type txCmd struct {
	n int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `deni tx [-n <count>]

  Prints the ledger, most recent first, with the wallet balance.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 0, "Limit the listing to the n most recent transactions")
}

func (c *txCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	finance := openFinance()
	txs := finance.Transactions()
	if c.n > 0 && c.n < len(txs) {
		txs = txs[:c.n]
	}
	md := renderer.Transactions(txs)
	md += fmt.Sprintf("\nWallet balance: %s\n", finance.WalletBalance())
	printMarkdown(md)
	return subcommands.ExitSuccess
}

type addTxCmd struct {
	date     string
	amount   string
	category string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "add a transaction to the ledger" }
func (*addTxCmd) Usage() string {
	return `deni add-tx -a <amount> [-d <date>] [-c <category>] <title>

  Adds a transaction and moves the wallet balance by its amount. A
  positive amount is income, a negative one an expense. Categories:
  salary, food, coffee, transport, shopping, health, home, fun, other.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount, negative for an expense (e.g. -12.50)")
	f.StringVar(&c.date, "d", "", "Transaction date (defaults to today)")
	f.StringVar(&c.category, "c", "other", "Transaction category")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -a and the transaction title are required")
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := deniverse.ParseFinanceCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	finance := openFinance()
	amount, err := deniverse.ParseMoney(c.amount, finance.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	tx := deniverse.NewTransaction(f.Arg(0), amount, day, category)
	finance.Add(tx)
	fmt.Printf("Added transaction %s, wallet balance %s\n", tx.ID, finance.WalletBalance())
	return subcommands.ExitSuccess
}

type editTxCmd struct {
	id       string
	date     string
	amount   string
	category string
}

func (*editTxCmd) Name() string     { return "edit-tx" }
func (*editTxCmd) Synopsis() string { return "replace a transaction" }
func (*editTxCmd) Usage() string {
	return `deni edit-tx -id <id> -a <amount> [-d <date>] [-c <category>] <title>

  Replaces the transaction in place, keeping its id, and adjusts the
  wallet balance by the amount delta. An unknown id leaves the ledger
  untouched.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to edit")
	f.StringVar(&c.amount, "a", "", "New amount, negative for an expense")
	f.StringVar(&c.date, "d", "", "New transaction date (defaults to today)")
	f.StringVar(&c.category, "c", "other", "New transaction category")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || c.id == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -id, -a, and the transaction title are required")
		return subcommands.ExitUsageError
	}
	id, err := uuid.Parse(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction id: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := deniverse.ParseFinanceCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	finance := openFinance()
	amount, err := deniverse.ParseMoney(c.amount, finance.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	finance.Replace(id, deniverse.Transaction{
		ID:       id,
		Title:    f.Arg(0),
		Amount:   amount,
		Date:     day,
		Category: category,
	})
	fmt.Printf("Wallet balance %s\n", finance.WalletBalance())
	return subcommands.ExitSuccess
}

type rmTxCmd struct {
	id string
}

func (*rmTxCmd) Name() string     { return "rm-tx" }
func (*rmTxCmd) Synopsis() string { return "delete a transaction" }
func (*rmTxCmd) Usage() string {
	return `deni rm-tx -id <id>

  Deletes the transaction and moves the wallet balance back by its
  amount. An unknown id leaves the ledger untouched.
`
}

func (c *rmTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to delete")
}

func (c *rmTxCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	id, err := uuid.Parse(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction id: %v\n", err)
		return subcommands.ExitUsageError
	}

	finance := openFinance()
	finance.Remove(id)
	fmt.Printf("Wallet balance %s\n", finance.WalletBalance())
	return subcommands.ExitSuccess
}
