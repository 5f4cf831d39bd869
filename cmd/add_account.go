package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/balance"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new account to the ledger" }
func (*addCmd) Usage() string {
	return `bal add <account> <opening>

  Inserts a new account with the given opening balance. The opening balance
  is added to the grand total. No history entry is recorded.

Usage Examples:
$ bal add savings 1000
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <account> <opening>.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	opening, err := balance.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return mutate(func(l *balance.Ledger) error {
		if err := l.CreateAccount(name, opening); err != nil {
			return err
		}
		fmt.Printf("Added account %s with opening balance %s, total %s\n", name, opening, l.GrandTotal())
		return nil
	})
}
