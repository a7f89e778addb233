package finplan

// Investment is a single account or asset with its own balance and growth
// rate. Balances and rates are independently owned per investment; there is
// no cross-investment invariant.
type Investment struct {
	Name                string
	Balance             float64
	InterestRatePercent float64
	ShowOnChart         bool
	Taxable             *bool
	Broker              string
	UpdatedAt           string
}

// GrowthSeries returns this investment's balance compounded annually over
// the given number of years, including year 0.
func (inv Investment) GrowthSeries(years int) []float64 {
	return CompoundSeries(inv.Balance, inv.InterestRatePercent, years)
}

func (inv Investment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", inv.Name)
	w.Append("balance", inv.Balance)
	w.Append("interest_rate_percent", inv.InterestRatePercent)
	w.Append("show_on_chart", inv.ShowOnChart)
	if inv.Taxable != nil {
		w.Append("taxable", *inv.Taxable)
	}
	w.Optional("broker", inv.Broker)
	w.Optional("updated_at", inv.UpdatedAt)
	return w.MarshalJSON()
}

// CompoundSeries computes annual compound growth values including year 0.
//
// It returns a slice of length years+1 where index t is the value at year t:
// index 0 is the principal unchanged, and each following year multiplies the
// previous value by (1 + annualRatePercent/100). Negative principals or
// rates are passed through arithmetically; validating them is the caller's
// concern.
func CompoundSeries(principal, annualRatePercent float64, years int) []float64 {
	rate := annualRatePercent / 100
	values := make([]float64, 0, years+1)
	value := principal
	values = append(values, value)
	for t := 1; t <= years; t++ {
		value *= 1 + rate
		values = append(values, value)
	}
	return values
}
