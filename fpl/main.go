package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tburke/finplan/cmd"
)

// completion describes the command tree for shell completion. Install with
// `COMP_INSTALL=1 fpl`.
func completion() *complete.Command {
	profileFlags := map[string]complete.Predictor{
		"profile-file": predict.Files("*.json"),
		"currency":     predict.Set{"USD", "EUR", "GBP"},
	}
	return &complete.Command{
		Flags: profileFlags,
		Sub: map[string]*complete.Command{
			"project":        {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"series":         {Flags: map[string]complete.Predictor{"y": predict.Something, "json": predict.Nothing}},
			"mortgage":       {Flags: map[string]complete.Predictor{"p": predict.Something, "r": predict.Something, "y": predict.Something}},
			"show":           {},
			"set-investment": {Flags: map[string]complete.Predictor{"name": predict.Something, "balance": predict.Something, "rate": predict.Something}},
			"get":            {},
			"fmt":            {},
			"topic":          {Args: predict.Set{"readme", "profile", "projection", "series", "mortgage"}},
			"assist":         {},
		},
	}
}

func main() {
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
