// Package cmd implements the CLI application to project a financial plan.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/tburke/finplan"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "projections")
	c.Register(&seriesCmd{}, "projections")
	c.Register(&mortgageCmd{}, "calculators")

	c.Register(&showCmd{}, "profile")
	c.Register(&setInvestmentCmd{}, "profile")
	c.Register(&getCmd{}, "profile")
	c.Register(&fmtCmd{}, "profile")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var profileFile = flag.String("profile-file", "", "Path to the profile document (JSON). Overrides config file and environment.")
var currencyFlag = flag.String("currency", "", "3-letter currency code for report amounts. Overrides config file and environment.")

// ProfilePath resolves the profile file location: flag, then environment,
// then config file, then the default "profile.json".
func ProfilePath() string {
	if *profileFile != "" {
		return *profileFile
	}
	return getConfig().ProfileFile
}

// Currency resolves the report currency the same way.
func Currency() string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	return getConfig().Currency
}

// LoadPlan loads and validates the full plan from the app profile file.
func LoadPlan() (*finplan.FinancePlan, error) {
	return finplan.LoadPlan(ProfilePath())
}

// LoadDocument loads the raw profile document from the app profile file.
func LoadDocument() (map[string]any, error) {
	return finplan.LoadDocument(ProfilePath())
}
