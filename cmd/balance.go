package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/deniverse/deniverse"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show or set the wallet balance" }
func (*balanceCmd) Usage() string {
	return `deni balance [<amount>]

  Without an amount, prints the wallet balance. With one, sets it
  directly, independent of the transaction sum, to reconcile against a
  real account.
`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	finance := openFinance()

	if f.NArg() > 0 {
		balance, err := deniverse.ParseMoney(f.Arg(0), finance.Currency())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
			return subcommands.ExitUsageError
		}
		finance.SetWalletBalance(balance)
	}

	fmt.Printf("Wallet balance %s\n", finance.WalletBalance())
	return subcommands.ExitSuccess
}
