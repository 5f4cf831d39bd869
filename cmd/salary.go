package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/balance"
	"github.com/google/subcommands"
)

type salaryCmd struct {
	account string
}

func (*salaryCmd) Name() string     { return "salary" }
func (*salaryCmd) Synopsis() string { return "record a salary payment" }
func (*salaryCmd) Usage() string {
	return `bal salary [-on <account>] <amount>

  Adds a single signed decimal amount to the account and the grand total.
  Unlike expense and income, the amount is a plain numeric literal.

Usage Examples:
$ bal salary -on bank 5000
`
}

func (c *salaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "on", "", "Account to credit. Defaults to the last salary account.")
}

func (c *salaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one amount is required, e.g. 5000.")
		return subcommands.ExitUsageError
	}
	text := f.Arg(0)
	return mutate(func(l *balance.Ledger) error {
		account, err := resolveAccount(l, c.account, balance.Salary)
		if err != nil {
			return err
		}
		entry, err := l.ApplySalary(account, text)
		if err != nil {
			return err
		}
		if err := l.SetDefaultAccount(balance.Salary, account); err != nil {
			return err
		}
		fmt.Printf("Salary %s on %s, balance %s, total %s\n", entry.Amount, account, entry.Balance, entry.Total)
		return nil
	})
}
