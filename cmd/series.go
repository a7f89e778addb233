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

type seriesCmd struct {
	years   int
	jsonOut bool
}

func (*seriesCmd) Name() string { return "series" }
func (*seriesCmd) Synopsis() string {
	return "compute yearly investment, income and expense series for charting"
}
func (*seriesCmd) Usage() string {
	return `fpl series [-y <years>] [-json]

  Computes four aligned yearly sequences starting at the current year:
  Year, Investments (compounded per account), Income (cumulative net of tax
  and expenses) and Expenses (per-year active total). Records with
  start/end dates only count in the years of their window.
  See 'fpl topic series'.
`
}

// horizonUnset marks the -y flag as not passed; 0 is a legal horizon.
const horizonUnset = -1

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "y", horizonUnset, "Projection horizon in years (defaults to the configured horizon).")
	f.BoolVar(&c.jsonOut, "json", false, "Print the named series as JSON instead of a report.")
}

// resolveHorizon maps the flag sentinel to the configured default horizon.
func resolveHorizon(years int) int {
	if years == horizonUnset {
		return getConfig().Horizon
	}
	return years
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := LoadDocument()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	plan, err := finplan.ParsePlanSeries(doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ts, err := finplan.ComputeTimeSeries(plan, resolveHorizon(c.years))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(ts.Named()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SeriesMarkdown(renderer.NewSeries(ts, Currency())))
	return subcommands.ExitSuccess
}
