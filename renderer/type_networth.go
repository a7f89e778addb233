package renderer

// NetWorth is the renderable form of a total net-worth projection.
type NetWorth struct {
	// Horizon is the number of projected years (the series has Horizon+1 rows).
	Horizon int `json:"horizon"`
	// StartYear is the calendar year of the baseline row.
	StartYear int `json:"startYear"`
	// Baseline is the year-0 total: initial balances, empty cash.
	Baseline Money `json:"baseline"`
	// Final is the last projected total.
	Final Money `json:"final"`
	// Delta is Final minus Baseline.
	Delta Money `json:"delta"`
	// Rows holds one entry per projected year, baseline included.
	Rows []NetWorthRow `json:"rows"`
}

// NetWorthRow is a single year of the net-worth projection.
type NetWorthRow struct {
	Index int   `json:"index"`
	Year  int   `json:"year"`
	Total Money `json:"total"`
}

// NewNetWorth builds the report from a computed series.
func NewNetWorth(startYear int, series []float64, currency string) *NetWorth {
	nw := &NetWorth{
		Horizon:   len(series) - 1,
		StartYear: startYear,
		Rows:      make([]NetWorthRow, 0, len(series)),
	}
	for i, total := range series {
		nw.Rows = append(nw.Rows, NetWorthRow{
			Index: i,
			Year:  startYear + i,
			Total: NewMoney(total, currency),
		})
	}
	if len(series) > 0 {
		nw.Baseline = NewMoney(series[0], currency)
		nw.Final = NewMoney(series[len(series)-1], currency)
		nw.Delta = NewMoney(series[len(series)-1]-series[0], currency)
	}
	return nw
}
