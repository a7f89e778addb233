package finplan

import "math"

// almostEqual compares floats against closed-form expectations with a small
// absolute tolerance.
func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// sampleDocument returns a complete, valid profile document in the shape
// the storage collaborator hands over.
func sampleDocument() map[string]any {
	return map[string]any{
		"investments": []any{
			map[string]any{
				"name":                  "Brokerage",
				"balance":               10000.0,
				"interest_rate_percent": 5.0,
				"show_on_chart":         true,
				"broker":                "Vanguard",
			},
			map[string]any{
				"name":                  "Savings",
				"balance":               2000.0,
				"interest_rate_percent": 0.0,
			},
		},
		"expenses": []any{
			map[string]any{
				"name":    "Groceries",
				"expense": 100.0,
				"type":    "monthly",
			},
			map[string]any{
				"name":       "Insurance",
				"expense":    600.0,
				"type":       "annually",
				"start_date": "2026-01-01",
				"end_date":   "2028-12-31",
			},
		},
		"income": []any{
			map[string]any{
				"name":                       "Salary",
				"income":                     50000.0,
				"type":                       "annually",
				"effective_tax_rate_percent": 10.0,
			},
		},
		"person1": map[string]any{
			"name":                         "Alex",
			"birth_year":                   1980.0,
			"retirement_age":               65.0,
			"social_security_start_year":   2047.0,
			"annual_salary":                50000.0,
			"retirement_401k_contribution": 10000.0,
		},
		"person2": map[string]any{
			"name":                         "Sam",
			"birth_year":                   1982.0,
			"retirement_age":               60.0,
			"social_security_start_year":   2049.0,
			"annual_salary":                40000.0,
			"retirement_401k_contribution": 8000.0,
		},
		"child1": map[string]any{
			"name":                    "Jo",
			"birth_year":              2015.0,
			"annual_529_contribution": 1000.0,
		},
		"child2": map[string]any{
			"name":                    "Max",
			"birth_year":              2018.0,
			"annual_529_contribution": 500.0,
		},
		"projection_years_main": 10.0,
	}
}
