package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type getCmd struct{}

func (*getCmd) Name() string { return "get" }
func (*getCmd) Synopsis() string {
	return "query the profile document with a jsonpath expression"
}
func (*getCmd) Usage() string {
	return `fpl get <jsonpath>

  Evaluates a jsonpath expression against the raw profile document and
  prints the result as JSON.

Usage Examples:
# All investment balances:
$ fpl get '$.investments[*].balance'

# The first person's retirement age:
$ fpl get '$.person1.retirement_age'
`
}

func (*getCmd) SetFlags(f *flag.FlagSet) {}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expects exactly one jsonpath expression.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	doc, err := LoadDocument()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(path, any(doc))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jval); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
