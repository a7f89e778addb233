package agent

import (
	"context"
	"fmt"
	"math"

	"github.com/tburke/finplan"
	"github.com/tburke/finplan/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.

			The user is here to understand his household's long-term finances:
			how his net worth evolves, when retirement contributions stop, what
			his income and expenses look like over the coming decades.

			Devise a plan of questions to ask each expert and come up with the
			best response to the user's request. Run the projections through
			the Actuary before asserting any figure.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded with Google Search, for
// questions about rates, products and institutions.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert financial researcher,
		aware of financial products, institutions and current market rates.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance research. You can search and
			find anything related to financial institutions, savings rates,
			mortgage rates, 401k and 529 rules. You leverage Google Search to
			ground your assertions and relate the latest news to the user's
			request.
				`}}},
		},
	}
}

// NewActuary returns the expert in charge of the user's financial plan. It
// can summarize the profile and run both projections through its function
// library; the plan is captured here rather than read from any shared file.
func NewActuary(plan *finplan.FinancePlan, currency string) *Expert {
	lib := []Function{
		profileFunc(plan, currency),
		netWorthFunc(plan, currency),
		chartFunc(plan, currency),
	}
	return &Expert{
		Name: "Actuary",
		Description: `This is the Actuary. He knows the user's financial plan
		and can run its projections: the profile summary, the net-worth
		series, and the yearly income/expense/investment chart series.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an actuary in charge of the user's financial plan.
				Use the available tools to get the figures before answering:
				  - Profile: the plan's people, investments, expenses and income
				  - NetWorth: the total-assets projection over the plan's horizon
				  - Chart: yearly investment, income and expense series
				Never invent a figure; every number must come from a tool.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func profileFunc(plan *finplan.FinancePlan, currency string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Profile",
			Description: "Profile summarizes the user's financial plan: people, children, investments, expenses and income sources.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown summary of the plan.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return textResponse(id, "Profile", renderer.ProfileMarkdown(renderer.NewProfile(plan, currency)), nil)
		},
	}
}

func netWorthFunc(plan *finplan.FinancePlan, currency string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "NetWorth",
			Description: "NetWorth projects the user's total assets over the plan's own horizon, with retirement contribution cutoffs applied.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of total assets per year.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			series, err := plan.TotalAssetsSeries()
			if err != nil {
				return textResponse(id, "NetWorth", "", err)
			}
			startYear := finplan.CurrentYear()
			md := renderer.NetWorthMarkdown(renderer.NewNetWorth(startYear, series, currency))
			return textResponse(id, "NetWorth", md, nil)
		},
	}
}

func chartFunc(plan *finplan.FinancePlan, currency string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Chart",
			Description: "Chart computes yearly Investments, Income and Expenses series over a horizon in years, honoring each record's active date window.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"horizon": {
						Type:        genai.TypeInteger,
						Description: "Number of future years to chart, between 0 and 100. Defaults to the plan's own horizon.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with one row per calendar year.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			horizon := plan.ProjectionYearsMain
			if v, ok := args["horizon"]; ok {
				f, ok := v.(float64)
				if !ok || f != math.Trunc(f) {
					return textResponse(id, "Chart", "", fmt.Errorf("argument 'horizon' must be an integer, got %v", v))
				}
				horizon = int(f)
			}
			ts, err := finplan.ComputeTimeSeries(plan, horizon)
			if err != nil {
				return textResponse(id, "Chart", "", err)
			}
			return textResponse(id, "Chart", renderer.SeriesMarkdown(renderer.NewSeries(ts, currency)), nil)
		},
	}
}

func textResponse(id, name, output string, err error) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: name}
	if err != nil {
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}
	resp.Response = map[string]any{"output": output}
	return resp
}
