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

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a fresh ledger document" }
func (*initCmd) Usage() string {
	return `bal init <account>=<opening> [<account>=<opening> ...]

  Creates a new ledger document with the given accounts and opening balances.
  The grand total starts as the sum of all openings and the history empty.

Usage Examples:
$ bal init cash=100 bank=50
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one <account>=<opening> pair is required.")
		return subcommands.ExitUsageError
	}
	names := make([]string, 0, f.NArg())
	openings := make([]balance.Amount, 0, f.NArg())
	for _, arg := range f.Args() {
		name, opening, err := parseAccountArg(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		names = append(names, name)
		openings = append(openings, opening)
	}

	l, err := balance.NewLedger(names, openings)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	s, rec := open()
	l.SetRecorder(rec)
	if err := s.Save(l); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Initialized %s with %d accounts, total %s\n", s.Path, f.NArg(), l.GrandTotal())
	return subcommands.ExitSuccess
}

// parseAccountArg splits one "name=opening" argument.
func parseAccountArg(arg string) (string, balance.Amount, error) {
	name, opening, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return "", balance.Amount{}, fmt.Errorf("expected <account>=<opening>, got %q", arg)
	}
	a, err := balance.ParseAmount(opening)
	if err != nil {
		return "", balance.Amount{}, fmt.Errorf("opening balance for %q: %w", name, err)
	}
	return name, a, nil
}
