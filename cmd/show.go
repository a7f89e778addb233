package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tburke/finplan/renderer"
)

type showCmd struct{}

func (*showCmd) Name() string { return "show" }
func (*showCmd) Synopsis() string {
	return "display a summary of the profile document"
}
func (*showCmd) Usage() string {
	return `fpl show

  Validates the profile document and prints a readable summary of its
  people, investments, expenses and income sources. See 'fpl topic profile'.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProfileMarkdown(renderer.NewProfile(plan, Currency())))
	return subcommands.ExitSuccess
}
