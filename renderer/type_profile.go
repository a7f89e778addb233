package renderer

import "github.com/tburke/finplan"

// Profile is the renderable summary of a financial plan.
type Profile struct {
	People      []ProfilePerson     `json:"people"`
	Children    []ProfileChild      `json:"children"`
	Investments []ProfileInvestment `json:"investments"`
	Expenses    []ProfileExpense    `json:"expenses"`
	Income      []ProfileIncome     `json:"income"`
	// TotalBalance is the sum of all investment balances.
	TotalBalance Money `json:"totalBalance"`
	// AnnualExpenses is the flat annualized expense total.
	AnnualExpenses Money `json:"annualExpenses"`
	Horizon        int   `json:"horizon"`
}

type ProfilePerson struct {
	Name             string `json:"name"`
	BirthYear        int    `json:"birthYear"`
	RetirementAge    int    `json:"retirementAge"`
	Contribution401k Money  `json:"contribution401k"`
}

type ProfileChild struct {
	Name            string `json:"name"`
	BirthYear       int    `json:"birthYear"`
	Contribution529 Money  `json:"contribution529"`
}

type ProfileInvestment struct {
	Name        string  `json:"name"`
	Balance     Money   `json:"balance"`
	RatePercent float64 `json:"ratePercent"`
	Broker      string  `json:"broker,omitempty"`
}

type ProfileExpense struct {
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
	Type   string `json:"type"`
	Window string `json:"window,omitempty"`
}

type ProfileIncome struct {
	Name           string  `json:"name"`
	Amount         Money   `json:"amount"`
	TaxRatePercent float64 `json:"taxRatePercent"`
	Window         string  `json:"window,omitempty"`
}

// NewProfile builds the summary report from a parsed plan.
func NewProfile(plan *finplan.FinancePlan, currency string) *Profile {
	p := &Profile{Horizon: plan.ProjectionYearsMain}

	for _, person := range []finplan.Person{plan.Person1, plan.Person2} {
		p.People = append(p.People, ProfilePerson{
			Name:             person.Name,
			BirthYear:        person.BirthYear,
			RetirementAge:    person.RetirementAge,
			Contribution401k: NewMoney(person.Contribution401k, currency),
		})
	}
	for _, child := range []finplan.Child{plan.Child1, plan.Child2} {
		p.Children = append(p.Children, ProfileChild{
			Name:            child.Name,
			BirthYear:       child.BirthYear,
			Contribution529: NewMoney(child.Contribution529, currency),
		})
	}

	var total float64
	for _, inv := range plan.Investments {
		total += inv.Balance
		p.Investments = append(p.Investments, ProfileInvestment{
			Name:        inv.Name,
			Balance:     NewMoney(inv.Balance, currency),
			RatePercent: inv.InterestRatePercent,
			Broker:      inv.Broker,
		})
	}
	p.TotalBalance = NewMoney(total, currency)

	for _, e := range plan.Expenses {
		p.Expenses = append(p.Expenses, ProfileExpense{
			Name:   e.Name,
			Amount: NewMoney(e.Amount, currency),
			Type:   string(e.Type),
			Window: window(e.StartDate, e.EndDate),
		})
	}
	p.AnnualExpenses = NewMoney(finplan.AnnualExpenses(plan.Expenses), currency)

	for _, s := range plan.Income {
		p.Income = append(p.Income, ProfileIncome{
			Name:           s.Name,
			Amount:         NewMoney(s.Amount, currency),
			TaxRatePercent: s.EffectiveTaxRatePercent,
			Window:         window(s.StartDate, s.EndDate),
		})
	}
	return p
}

func window(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return "from " + start
	case start == "":
		return "until " + end
	default:
		return start + " to " + end
	}
}
