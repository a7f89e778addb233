package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tburke/finplan"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the profile document into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fpl fmt

  Validates the profile document and rewrites it in a canonical form:
  stable key order, indented, sections in a fixed sequence. A document
  that fails validation is reported and left untouched.

Usage Examples:
# Rewrites the default profile file.
$ fpl fmt
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := ProfilePath()
	fmt.Fprintf(os.Stderr, "Formatting profile %q...\n", path)

	plan, err := finplan.LoadPlan(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := finplan.SavePlan(path, plan); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q.\n", path)
	return subcommands.ExitSuccess
}
