// Package finplan computes multi-year personal-finance projections from a
// structured financial profile.
//
// The profile is a JSON document describing two adults, two children, a set
// of investments, recurring expenses and income sources. The engine turns it
// into yearly series of asset totals, income and expenses, suitable for
// charting.
//
// Two projections are exposed:
//
//   - [FinancePlan.TotalAssetsSeries] folds investment growth, retirement
//     contributions and a flat annual expense total into a single net-worth
//     series over the plan's own horizon.
//   - [ComputeTimeSeries] produces aligned Year/Investments/Income/Expenses
//     series over an explicit horizon, honoring per-record active date
//     windows.
//
// The two computations deliberately diverge (flat vs. date-windowed expenses,
// retirement-gated vs. ungated contributions) and are kept as independent
// operations.
//
// All computations are pure and synchronous: each call receives its own
// profile snapshot and returns freshly allocated series, so concurrent calls
// are safe.
package finplan
