package renderer

import "github.com/tburke/finplan"

// Series is the renderable form of the horizon time-series: one row per
// calendar year with the three charted values.
type Series struct {
	StartYear int         `json:"startYear"`
	EndYear   int         `json:"endYear"`
	Rows      []SeriesRow `json:"rows"`
}

// SeriesRow is a single calendar year of the horizon time-series.
type SeriesRow struct {
	Year        int   `json:"year"`
	Investments Money `json:"investments"`
	// Income is cumulative net income after expenses up to this year.
	Income   Money `json:"income"`
	Expenses Money `json:"expenses"`
}

// NewSeries builds the report from a computed time-series.
func NewSeries(ts *finplan.TimeSeries, currency string) *Series {
	s := &Series{Rows: make([]SeriesRow, 0, len(ts.Years))}
	for i, year := range ts.Years {
		s.Rows = append(s.Rows, SeriesRow{
			Year:        year,
			Investments: NewMoney(ts.Investments[i], currency),
			Income:      NewMoney(ts.Income[i], currency),
			Expenses:    NewMoney(ts.Expenses[i], currency),
		})
	}
	if len(ts.Years) > 0 {
		s.StartYear = ts.Years[0]
		s.EndYear = ts.Years[len(ts.Years)-1]
	}
	return s
}
