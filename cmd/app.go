// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/balance"
	"github.com/google/subcommands"
)

// Version of the bal tool.
const Version = "1.0.0"

// Commands lists every subcommand of the bal tool.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&expenseCmd{},
	&incomeCmd{},
	&salaryCmd{},
	&addCmd{},
	&removeCmd{},
	&queryCmd{},
	&historyCmd{},
	&topicCmd{},
	&versionCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var documentFile = flag.String("f", "", "Path to the ledger document. Defaults to $BALANCE_FILE or balance.yaml.")
var logsDir = flag.String("logs", "", "Directory receiving diagnostic log files. Defaults to $BALANCE_LOGS or logs.")

func documentPath() string {
	if *documentFile != "" {
		return *documentFile
	}
	if v := os.Getenv("BALANCE_FILE"); v != "" {
		return v
	}
	return "balance.yaml"
}

func logsPath() string {
	if *logsDir != "" {
		return *logsDir
	}
	if v := os.Getenv("BALANCE_LOGS"); v != "" {
		return v
	}
	return "logs"
}

// open builds the process recorder and the document store. Recording is
// best-effort: when the log file cannot be opened the nop recorder applies.
func open() (*balance.Store, balance.Recorder) {
	var rec balance.Recorder
	if r, err := balance.NewFileRecorder(logsPath(), "finance"); err == nil {
		rec = r
	} else {
		rec = balance.NopRecorder()
	}
	return balance.NewStore(documentPath(), rec), rec
}

// loadLedger loads the document and installs the recorder on it. A missing
// document is turned into a hint to run `bal init`.
func loadLedger(s *balance.Store, rec balance.Recorder) (*balance.Ledger, error) {
	l, err := s.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("document %q does not exist, run 'bal init' first", s.Path)
	}
	if err != nil {
		return nil, err
	}
	l.SetRecorder(rec)
	return l, nil
}

// mutate runs one read-modify-write cycle: backup, load, apply, save.
// The backup is taken before the mutation, so it always reflects the
// pre-transaction state, and it is taken at most once per invocation.
func mutate(op func(l *balance.Ledger) error) subcommands.ExitStatus {
	s, rec := open()
	if err := s.Backup(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	l, err := loadLedger(s, rec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := op(l); err != nil {
		// The document on disk is left untouched.
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.Save(l); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// resolveAccount picks the account to operate on: the -on flag when given,
// otherwise the last-used account of this kind.
func resolveAccount(l *balance.Ledger, flagValue string, k balance.Kind) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if name, ok := l.DefaultAccount(k); ok {
		return name, nil
	}
	return "", fmt.Errorf("no account given and no usable default %s account, use -on", k)
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
