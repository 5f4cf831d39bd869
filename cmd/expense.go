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

type expenseCmd struct {
	account string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense from annotated text" }
func (*expenseCmd) Usage() string {
	return `bal expense [-on <account>] <text>

  Records every '-'-signed amount found in <text> as one expense against the
  account. The amounts are summed, rounded to two decimals, and subtracted
  from the account and the grand total.

Usage Examples:
$ bal expense -on cash "lunch-10"
$ bal expense "coffee-3.5 groceries-42"
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "on", "", "Account to charge. Defaults to the last expense account.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.Join(f.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "Error: annotated text is required, e.g. \"lunch-10\".")
		return subcommands.ExitUsageError
	}
	return mutate(func(l *balance.Ledger) error {
		account, err := resolveAccount(l, c.account, balance.Expense)
		if err != nil {
			return err
		}
		entry, err := l.ApplyExpense(account, text)
		if err != nil {
			return err
		}
		if err := l.SetDefaultAccount(balance.Expense, account); err != nil {
			return err
		}
		fmt.Printf("Spent %s from %s, balance %s, total %s\n", entry.Amount, account, entry.Balance, entry.Total)
		return nil
	})
}
