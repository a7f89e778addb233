package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tburke/finplan"
	"github.com/tburke/finplan/renderer"
)

type mortgageCmd struct {
	principal float64
	rate      float64
	years     int
}

func (*mortgageCmd) Name() string { return "mortgage" }
func (*mortgageCmd) Synopsis() string {
	return "quote the fixed monthly payment of a mortgage"
}
func (*mortgageCmd) Usage() string {
	return `fpl mortgage -p <principal> -r <annual_rate_percent> -y <years>

  Computes the fixed monthly payment (principal and interest) using the
  standard amortization formula. A zero rate quotes straight-line
  principal over payments. See 'fpl topic mortgage'.

Usage Examples:
# A 30-year 300k loan at 6%:
$ fpl mortgage -p 300000 -r 6 -y 30
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "p", 0, "Loan principal (required)")
	f.Float64Var(&c.rate, "r", 0, "Annual interest rate in percent")
	f.IntVar(&c.years, "y", 0, "Loan term in years (required)")
}

func (c *mortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.principal <= 0 || c.years <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -p and -y must be positive.")
		return subcommands.ExitUsageError
	}

	payment := finplan.MonthlyPayment(c.principal, c.rate, c.years)
	report := renderer.NewMortgage(c.principal, c.rate, c.years, payment, Currency())
	printMarkdown(renderer.MortgageMarkdown(report))
	return subcommands.ExitSuccess
}
