package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tburke/finplan/agent"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }

func (*assistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }

func (*assistCmd) Usage() string {
	return `assist:
  Start an interactive session with the AI assistant. The assistant can
  read the profile, run projections and research financial questions.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	plan, err := LoadPlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	actuary := agent.NewActuary(plan, Currency())
	researcher := agent.NewResearcher()
	a := agent.New(os.Stdout, os.Stdin, actuary, researcher)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
