package finplan

// IncomeSource is a recurring annual inflow, optionally taxed at a flat
// effective rate and bounded by an active date window at year granularity.
type IncomeSource struct {
	Name                    string
	Amount                  float64 // annual amount, document key "income"
	Type                    string  // currently always "annually"
	Taxable                 *bool
	EffectiveTaxRatePercent float64 // 0 when unspecified
	// Contributions is carried through from the document but not used in
	// any computation yet.
	Contributions map[string]float64
	StartDate     string
	EndDate       string
	UpdatedAt     string
}

// NetAnnual returns the yearly amount net of the flat effective tax rate.
func (s IncomeSource) NetAnnual() float64 {
	return s.Amount * (1 - s.EffectiveTaxRatePercent/100)
}

// ActiveIn reports whether the source counts in the given calendar year.
func (s IncomeSource) ActiveIn(year int) bool {
	return windowContains(s.StartDate, s.EndDate, year)
}

func (s IncomeSource) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", s.Name)
	w.Append("income", s.Amount)
	w.Append("type", s.Type)
	if s.Taxable != nil {
		w.Append("taxable", *s.Taxable)
	}
	w.Optional("effective_tax_rate_percent", s.EffectiveTaxRatePercent)
	if len(s.Contributions) > 0 {
		w.Append("contributions", s.Contributions)
	}
	w.Optional("start_date", s.StartDate)
	w.Optional("end_date", s.EndDate)
	w.Optional("updated_at", s.UpdatedAt)
	return w.MarshalJSON()
}

// ActiveNetIncome returns the total net income of the sources active in the
// given year.
func ActiveNetIncome(sources []IncomeSource, year int) float64 {
	var total float64
	for _, s := range sources {
		if s.ActiveIn(year) {
			total += s.NetAnnual()
		}
	}
	return total
}
