package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tburke/finplan"
	"github.com/tburke/finplan/renderer"
)

type projectCmd struct {
	jsonOut bool
}

func (*projectCmd) Name() string { return "project" }
func (*projectCmd) Synopsis() string {
	return "project total net worth over the plan's own horizon"
}
func (*projectCmd) Usage() string {
	return `fpl project [-json]

  Computes the total-assets series over the plan's projection_years_main
  horizon: investment growth per account, 401k contributions until each
  person's retirement, 529 contributions every year, and the flat annual
  expense total. See 'fpl topic projection'.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOut, "json", false, "Print the series as JSON instead of a report.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	series, err := plan.TotalAssetsSeries()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(map[string][]float64{"TotalAssets": series}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	report := renderer.NewNetWorth(finplan.CurrentYear(), series, Currency())
	printMarkdown(renderer.NetWorthMarkdown(report))
	return subcommands.ExitSuccess
}
