package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/balance/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// An optional .env can supply BALANCE_FILE and BALANCE_LOGS.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; outside completion mode it is a no-op.
func completion() {
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"f":    predict.Files("*.yaml"),
			"logs": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"init":    {},
			"expense": {},
			"income":  {},
			"salary":  {},
			"add":     {},
			"remove":  {},
			"query":   {},
			"history": {},
			"topic":   {},
			"version": {},
		},
	}
	c.Complete("bal")
}
