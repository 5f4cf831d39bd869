package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/balance"
	"github.com/google/subcommands"
)

type removeCmd struct {
	yes bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete an account from the ledger" }
func (*removeCmd) Usage() string {
	return `bal remove [-y] <account>

  Deletes the account and subtracts its balance from the grand total.
  Without -y the command only reports what would be removed.

Usage Examples:
$ bal remove savings
$ bal remove -y savings
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Confirm the deletion.")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one <account>.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	if !c.yes {
		// Dry run: report and leave the document untouched.
		s, rec := open()
		l, err := loadLedger(s, rec)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		held, ok := l.Balance(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown account: %q\n", name)
			return subcommands.ExitFailure
		}
		fmt.Printf("Account %s holds %s; it would be subtracted from the total. Re-run with -y to delete.\n", name, held)
		return subcommands.ExitSuccess
	}

	return mutate(func(l *balance.Ledger) error {
		removed, err := l.DeleteAccount(name)
		if err != nil {
			return err
		}
		fmt.Printf("Removed account %s holding %s, total %s\n", name, removed, l.GrandTotal())
		return nil
	})
}
