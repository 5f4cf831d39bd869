package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/balance"
	"github.com/google/subcommands"
)

type queryCmd struct {
	currency string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "list accounts, balances and the grand total" }
func (*queryCmd) Usage() string {
	return `bal query [-currency <code>]

  Prints the grand total followed by every account and its balance.
  With -currency, balances are formatted in that currency for display;
  the document itself stays currency-less.

Usage Examples:
$ bal query
$ bal query -currency CNY
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Display currency code (e.g. CNY, EUR). Display only.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rec := open()
	l, err := loadLedger(s, rec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	b.WriteString("| Account | Balance |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| %s | %s |\n", balance.KeyGrandTotal, c.format(l.GrandTotal()))
	for name, bal := range l.Accounts() {
		fmt.Fprintf(&b, "| %s | %s |\n", name, c.format(bal))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// format renders a balance, optionally through the display currency.
func (c *queryCmd) format(a balance.Amount) string {
	if c.currency == "" {
		return a.String()
	}
	cur := money.New(0, c.currency).Currency()
	// Amounts are exact to two decimals; shift to the currency's minor unit.
	minor := a.Decimal().Shift(int32(cur.Fraction)).IntPart()
	return cur.Formatter().Format(minor)
}
