package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type historyCmd struct {
	tail int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list raw history entries" }
func (*historyCmd) Usage() string {
	return `bal history [-tail <n>]

  Lists the raw history entries in chronological order: one line per
  committed mutation with its post-mutation snapshots.

Usage Examples:
$ bal history
$ bal history -tail 10
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "tail", 0, "Show only the last N entries.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rec := open()
	l, err := loadLedger(s, rec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	entries := l.History()
	if c.tail > 0 && len(entries) > c.tail {
		entries = entries[len(entries)-c.tail:]
	}
	if len(entries) == 0 {
		fmt.Println("No history yet.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("# History\n\n")
	b.WriteString("| Time | Type | Record | Amount | Account | Balance | Total |\n")
	b.WriteString("|---|---|---|---:|---|---:|---:|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			e.Time.Format("2006-01-02 15:04:05"), e.Kind.Label(), e.Record,
			e.Amount, e.Account, e.Balance, e.Total)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
