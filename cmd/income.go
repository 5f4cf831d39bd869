package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/balance"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	account string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income from annotated text" }
func (*incomeCmd) Usage() string {
	return `bal income [-on <account>] <text>

  Records every amount found in <text> as one income for the account. A bare
  number with no explicit '+' counts too. The amounts are summed, rounded to
  two decimals, and added to the account and the grand total.

Usage Examples:
$ bal income -on bank "refund+50"
$ bal income "sold bike 120.5"
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "on", "", "Account to credit. Defaults to the last income account.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.Join(f.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "Error: annotated text is required, e.g. \"refund+50\".")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *balance.Ledger) error {
		account, err := resolveAccount(l, c.account, balance.Income)
		if err != nil {
			return err
		}
		entry, err := l.ApplyIncome(account, text)
		if err != nil {
			return err
		}
		if err := l.SetDefaultAccount(balance.Income, account); err != nil {
			return err
		}
		fmt.Printf("Received %s on %s, balance %s, total %s\n", entry.Amount, account, entry.Balance, entry.Total)
		return nil
	})
}
