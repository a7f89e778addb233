package finplan

import (
	"fmt"
	"time"
)

// MaxHorizon is the largest projection horizon, in years, either mode
// accepts. Longer horizons are rejected to keep the contract explicit.
const MaxHorizon = 100

// CurrentYear returns the calendar year used as year 0 of a projection
// when no explicit start year is given.
func CurrentYear() int { return time.Now().UTC().Year() }

// computationFailure turns a panic that escaped a series computation into a
// single descriptive error, so a malformed plan cannot crash the host. The
// recovery sites also reset their result, keeping result and error mutually
// exclusive.
func computationFailure(op string, r any) error {
	return fmt.Errorf("%s failed: %v", op, r)
}

// TotalAssetsSeries projects the plan's total net worth over its own
// horizon, starting from the current UTC year.
func (p *FinancePlan) TotalAssetsSeries() ([]float64, error) {
	return p.TotalAssetsSeriesFrom(CurrentYear())
}

// TotalAssetsSeriesFrom projects total net worth with an explicit starting
// calendar year, which anchors the retirement contribution cutoffs.
//
// The result has length ProjectionYearsMain+1. Element 0 is the baseline
// snapshot: the sum of initial balances plus an empty cash account. Each
// following year adds retirement-gated 401k contributions and ungated 529
// contributions to cash, subtracts the flat annual expense total (active
// windows are deliberately ignored here), then compounds every investment
// by its own rate; the element is the post-step sum of balances and cash.
func (p *FinancePlan) TotalAssetsSeriesFrom(startYear int) (series []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			series, err = nil, computationFailure("net-worth projection", r)
		}
	}()

	if !p.complete {
		return nil, fmt.Errorf("net-worth projection needs a full plan with persons and children")
	}
	if p.ProjectionYearsMain < 0 {
		return nil, fmt.Errorf("projection_years_main must not be negative, got %d", p.ProjectionYearsMain)
	}
	if p.ProjectionYearsMain > MaxHorizon {
		return nil, fmt.Errorf("projection_years_main %d exceeds the maximum of %d years", p.ProjectionYearsMain, MaxHorizon)
	}

	balances := make([]float64, len(p.Investments))
	rates := make([]float64, len(p.Investments))
	for i, inv := range p.Investments {
		balances[i] = inv.Balance
		rates[i] = inv.InterestRatePercent / 100
	}

	// Contributions stop at retirement; year 0 is a snapshot and never
	// receives one. 529 contributions are not retirement-gated.
	p1Years := p.Person1.YearsToRetirement(startYear)
	p2Years := p.Person2.YearsToRetirement(startYear)
	annualChild := p.Child1.Contribution529 + p.Child2.Contribution529
	annualExpenses := AnnualExpenses(p.Expenses)

	cash := 0.0
	series = make([]float64, 0, p.ProjectionYearsMain+1)
	series = append(series, sum(balances))

	for yearIdx := 1; yearIdx <= p.ProjectionYearsMain; yearIdx++ {
		contribution := annualChild
		if yearIdx <= p1Years {
			contribution += p.Person1.Contribution401k
		}
		if yearIdx <= p2Years {
			contribution += p.Person2.Contribution401k
		}
		cash += contribution
		cash -= annualExpenses
		for i := range balances {
			balances[i] *= 1 + rates[i]
		}
		series = append(series, sum(balances)+cash)
	}
	return series, nil
}

// TimeSeries holds the aligned yearly series produced for charting. All
// slices have the same length, horizon+1, indexed by calendar year starting
// at the series' first year.
type TimeSeries struct {
	// Years holds the actual calendar years.
	Years []int
	// Investments is the sum of every investment's independent compound
	// series.
	Investments []float64
	// Income is the cumulative running sum of yearly net income minus
	// yearly active expenses.
	Income []float64
	// Expenses is the per-year active annualized expense total.
	Expenses []float64
}

// Named returns the series as the name → sequence mapping the presentation
// collaborator consumes. Years are widened to float64 so every sequence is
// numeric and of equal length.
func (ts *TimeSeries) Named() map[string][]float64 {
	years := make([]float64, len(ts.Years))
	for i, y := range ts.Years {
		years[i] = float64(y)
	}
	return map[string][]float64{
		"Year":        years,
		"Investments": ts.Investments,
		"Income":      ts.Income,
		"Expenses":    ts.Expenses,
	}
}

// ComputeTimeSeries computes the horizon time-series starting at the
// current UTC year.
func ComputeTimeSeries(p *FinancePlan, horizon int) (*TimeSeries, error) {
	return ComputeTimeSeriesFrom(p, CurrentYear(), horizon)
}

// ComputeTimeSeriesFrom computes yearly Investments, Income and Expenses
// series over an explicit horizon, starting at startYear.
//
// Unlike the net-worth projection, this computation honors each record's
// active date window and ignores retirement cutoffs and person/child
// contributions entirely. The two behaviors diverged on purpose and stay
// separate.
func ComputeTimeSeriesFrom(p *FinancePlan, startYear, horizon int) (ts *TimeSeries, err error) {
	defer func() {
		if r := recover(); r != nil {
			ts, err = nil, computationFailure("time-series projection", r)
		}
	}()

	if horizon < 0 {
		return nil, fmt.Errorf("horizon must not be negative, got %d", horizon)
	}
	if horizon > MaxHorizon {
		return nil, fmt.Errorf("horizon %d exceeds the maximum of %d years", horizon, MaxHorizon)
	}

	ts = &TimeSeries{
		Years:       make([]int, horizon+1),
		Investments: make([]float64, horizon+1),
		Income:      make([]float64, horizon+1),
		Expenses:    make([]float64, horizon+1),
	}
	for i := range ts.Years {
		ts.Years[i] = startYear + i
	}

	for _, inv := range p.Investments {
		for t, value := range inv.GrowthSeries(horizon) {
			ts.Investments[t] += value
		}
	}

	cumulative := 0.0
	for i, year := range ts.Years {
		expenses := ActiveExpenseTotal(p.Expenses, year)
		cumulative += ActiveNetIncome(p.Income, year) - expenses
		ts.Expenses[i] = expenses
		ts.Income[i] = cumulative
	}
	return ts, nil
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
