package finplan

import (
	"fmt"
	"math"
)

// FinancePlan is the aggregate the projection engine operates on. It
// exclusively owns its child entities; they are constructed fresh from the
// collaborator's document and discarded with the plan.
type FinancePlan struct {
	Investments []Investment
	Expenses    []Expense
	Income      []IncomeSource
	Person1     Person
	Person2     Person
	Child1      Child
	Child2      Child
	// ProjectionYearsMain is the plan's own horizon, used by the net-worth
	// projection.
	ProjectionYearsMain int

	// complete is true when the plan was parsed with persons and children
	// present, which the net-worth projection requires.
	complete bool
}

// ParsePlan converts a profile document into a typed FinancePlan. It checks
// every required field and returns a ValidationErrors listing all
// violations found, never guessing a default for a missing required field.
func ParsePlan(doc map[string]any) (*FinancePlan, error) {
	var p docParser
	plan := &FinancePlan{
		Investments:         p.investments(doc),
		Expenses:            p.expenses(doc),
		Income:              p.incomeSources(doc),
		Person1:             p.person(doc, "person1"),
		Person2:             p.person(doc, "person2"),
		Child1:              p.child(doc, "child1"),
		Child2:              p.child(doc, "child2"),
		ProjectionYearsMain: p.integer(doc, "", "projection_years_main"),
		complete:            true,
	}
	if err := p.errs.asError(); err != nil {
		return nil, err
	}
	return plan, nil
}

// ParsePlanSeries is like ParsePlan but only requires the sections the
// horizon time-series computation reads: investments, expenses and income.
// Persons, children and the plan's own horizon are left zero, so the
// resulting plan supports ComputeTimeSeries but not TotalAssetsSeries.
func ParsePlanSeries(doc map[string]any) (*FinancePlan, error) {
	var p docParser
	plan := &FinancePlan{
		Investments: p.investments(doc),
		Expenses:    p.expenses(doc),
		Income:      p.incomeSources(doc),
	}
	if err := p.errs.asError(); err != nil {
		return nil, err
	}
	return plan, nil
}

func (p *FinancePlan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("investments", p.Investments)
	w.Append("expenses", p.Expenses)
	w.Append("income", p.Income)
	w.Append("person1", p.Person1)
	w.Append("person2", p.Person2)
	w.Append("child1", p.Child1)
	w.Append("child2", p.Child2)
	w.Append("projection_years_main", p.ProjectionYearsMain)
	return w.MarshalJSON()
}

// docParser accumulates validation failures while walking a profile
// document, so every problem is reported in one pass.
type docParser struct {
	errs ValidationErrors
}

func (p *docParser) object(doc map[string]any, key string) map[string]any {
	v, ok := doc[key]
	if !ok {
		p.errs.addf("%s: missing required object", key)
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		p.errs.addf("%s: expected an object, got %T", key, v)
		return nil
	}
	return obj
}

// records returns the list of sub-objects under key. A missing key yields
// an empty list; a present key of the wrong shape is a violation.
func (p *docParser) records(doc map[string]any, key string) []map[string]any {
	v, ok := doc[key]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		p.errs.addf("%s: expected a list, got %T", key, v)
		return nil
	}
	records := make([]map[string]any, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			p.errs.addf("%s[%d]: expected an object, got %T", key, i, item)
			continue
		}
		records = append(records, obj)
	}
	return records
}

func path(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func (p *docParser) number(obj map[string]any, prefix, key string) float64 {
	if obj == nil {
		return 0
	}
	v, ok := obj[key]
	if !ok {
		p.errs.addf("%s: missing required number", path(prefix, key))
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		p.errs.addf("%s: expected a number, got %T", path(prefix, key), v)
		return 0
	}
	return f
}

func (p *docParser) integer(obj map[string]any, prefix, key string) int {
	f := p.number(obj, prefix, key)
	if f != math.Trunc(f) {
		p.errs.addf("%s: expected an integer, got %v", path(prefix, key), f)
		return 0
	}
	return int(f)
}

func (p *docParser) text(obj map[string]any, prefix, key string) string {
	if obj == nil {
		return ""
	}
	v, ok := obj[key]
	if !ok {
		p.errs.addf("%s: missing required string", path(prefix, key))
		return ""
	}
	s, ok := v.(string)
	if !ok {
		p.errs.addf("%s: expected a string, got %T", path(prefix, key), v)
		return ""
	}
	return s
}

func (p *docParser) optionalText(obj map[string]any, prefix, key string) string {
	v, ok := obj[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		p.errs.addf("%s: expected a string, got %T", path(prefix, key), v)
		return ""
	}
	return s
}

func (p *docParser) optionalNumber(obj map[string]any, prefix, key string) float64 {
	v, ok := obj[key]
	if !ok {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		p.errs.addf("%s: expected a number, got %T", path(prefix, key), v)
		return 0
	}
	return f
}

func (p *docParser) optionalBool(obj map[string]any, prefix, key string, fallback bool) bool {
	v, ok := obj[key]
	if !ok {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		p.errs.addf("%s: expected a boolean, got %T", path(prefix, key), v)
		return fallback
	}
	return b
}

func (p *docParser) optionalBoolPtr(obj map[string]any, prefix, key string) *bool {
	v, ok := obj[key]
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		p.errs.addf("%s: expected a boolean, got %T", path(prefix, key), v)
		return nil
	}
	return &b
}

func (p *docParser) investments(doc map[string]any) []Investment {
	records := p.records(doc, "investments")
	investments := make([]Investment, 0, len(records))
	for i, obj := range records {
		prefix := indexed("investments", i)
		inv := Investment{
			Name:                p.text(obj, prefix, "name"),
			Balance:             p.number(obj, prefix, "balance"),
			InterestRatePercent: p.number(obj, prefix, "interest_rate_percent"),
			ShowOnChart:         p.optionalBool(obj, prefix, "show_on_chart", true),
			Taxable:             p.optionalBoolPtr(obj, prefix, "taxable"),
			Broker:              p.optionalText(obj, prefix, "broker"),
			UpdatedAt:           p.optionalText(obj, prefix, "updated_at"),
		}
		if inv.Balance < 0 {
			p.errs.addf("%s.balance: must not be negative, got %v", prefix, inv.Balance)
		}
		investments = append(investments, inv)
	}
	return investments
}

func (p *docParser) expenses(doc map[string]any) []Expense {
	records := p.records(doc, "expenses")
	expenses := make([]Expense, 0, len(records))
	for i, obj := range records {
		prefix := indexed("expenses", i)
		e := Expense{
			Name:      p.text(obj, prefix, "name"),
			Amount:    p.number(obj, prefix, "expense"),
			StartDate: p.optionalText(obj, prefix, "start_date"),
			EndDate:   p.optionalText(obj, prefix, "end_date"),
			UpdatedAt: p.optionalText(obj, prefix, "updated_at"),
		}
		// A missing or mistyped field is one violation; only a string value
		// gets as far as the recurrence check.
		if raw, ok := obj["type"].(string); ok {
			recurrence, err := ParseRecurrence(raw)
			if err != nil {
				p.errs.addf("%s.type: %v", prefix, err)
			}
			e.Type = recurrence
		} else {
			p.text(obj, prefix, "type")
		}
		expenses = append(expenses, e)
	}
	return expenses
}

func (p *docParser) incomeSources(doc map[string]any) []IncomeSource {
	records := p.records(doc, "income")
	sources := make([]IncomeSource, 0, len(records))
	for i, obj := range records {
		prefix := indexed("income", i)
		s := IncomeSource{
			Name:                    p.text(obj, prefix, "name"),
			Amount:                  p.number(obj, prefix, "income"),
			Type:                    p.text(obj, prefix, "type"),
			Taxable:                 p.optionalBoolPtr(obj, prefix, "taxable"),
			EffectiveTaxRatePercent: p.optionalNumber(obj, prefix, "effective_tax_rate_percent"),
			Contributions:           p.contributions(obj, prefix),
			StartDate:               p.optionalText(obj, prefix, "start_date"),
			EndDate:                 p.optionalText(obj, prefix, "end_date"),
			UpdatedAt:               p.optionalText(obj, prefix, "updated_at"),
		}
		if s.EffectiveTaxRatePercent < 0 || s.EffectiveTaxRatePercent > 100 {
			p.errs.addf("%s.effective_tax_rate_percent: must be between 0 and 100, got %v", prefix, s.EffectiveTaxRatePercent)
		}
		sources = append(sources, s)
	}
	return sources
}

func (p *docParser) contributions(obj map[string]any, prefix string) map[string]float64 {
	v, ok := obj["contributions"]
	if !ok {
		return nil
	}
	raw, ok := v.(map[string]any)
	if !ok {
		p.errs.addf("%s.contributions: expected an object, got %T", prefix, v)
		return nil
	}
	contributions := make(map[string]float64, len(raw))
	for name, amount := range raw {
		f, ok := amount.(float64)
		if !ok {
			p.errs.addf("%s.contributions.%s: expected a number, got %T", prefix, name, amount)
			continue
		}
		contributions[name] = f
	}
	return contributions
}

func (p *docParser) person(doc map[string]any, key string) Person {
	obj := p.object(doc, key)
	if obj == nil {
		return Person{}
	}
	person := Person{
		Name:                    p.text(obj, key, "name"),
		BirthYear:               p.integer(obj, key, "birth_year"),
		RetirementAge:           p.integer(obj, key, "retirement_age"),
		SocialSecurityStartYear: p.integer(obj, key, "social_security_start_year"),
		AnnualSalary:            p.number(obj, key, "annual_salary"),
		Contribution401k:        p.number(obj, key, "retirement_401k_contribution"),
		UpdatedAt:               p.optionalText(obj, key, "updated_at"),
	}
	if v, ok := obj["expiration_age"]; ok {
		if f, ok := v.(float64); ok && f == math.Trunc(f) {
			age := int(f)
			person.ExpirationAge = &age
		} else {
			p.errs.addf("%s.expiration_age: expected an integer, got %v", key, v)
		}
	}
	if person.RetirementAge < 0 {
		p.errs.addf("%s.retirement_age: must not be negative, got %d", key, person.RetirementAge)
	}
	if person.BirthYear < 1900 || person.BirthYear > 2100 {
		p.errs.addf("%s.birth_year: implausible calendar year %d", key, person.BirthYear)
	}
	return person
}

func (p *docParser) child(doc map[string]any, key string) Child {
	obj := p.object(doc, key)
	if obj == nil {
		return Child{}
	}
	return Child{
		Name:            p.text(obj, key, "name"),
		BirthYear:       p.integer(obj, key, "birth_year"),
		Contribution529: p.number(obj, key, "annual_529_contribution"),
		UpdatedAt:       p.optionalText(obj, key, "updated_at"),
	}
}

func indexed(key string, i int) string {
	return fmt.Sprintf("%s[%d]", key, i)
}
