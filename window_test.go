package finplan

import "testing"

func TestYearBound(t *testing.T) {
	testCases := []struct {
		in       string
		wantYear int
		wantOK   bool
	}{
		{"2031-06-15", 2031, true},
		{"2031", 2031, true},
		{"1999-12-31T23:59:59Z", 1999, true},
		{"", 0, false},
		{"203", 0, false},
		{"soon", 0, false},
		{"20x1-01-01", 0, false},
	}
	for _, tc := range testCases {
		year, ok := yearBound(tc.in)
		if year != tc.wantYear || ok != tc.wantOK {
			t.Errorf("yearBound(%q) = (%d, %v), want (%d, %v)", tc.in, year, ok, tc.wantYear, tc.wantOK)
		}
	}
}

func TestWindowContains(t *testing.T) {
	testCases := []struct {
		name       string
		start, end string
		year       int
		want       bool
	}{
		{"no bounds", "", "", 2025, true},
		{"inside window", "2024-01-01", "2026-12-31", 2025, true},
		{"start year inclusive", "2025-06-01", "", 2025, true},
		{"end year inclusive", "", "2025-02-01", 2025, true},
		{"before start", "2026-01-01", "", 2025, false},
		{"after end", "", "2024-12-31", 2025, false},
		{"unparsable start is open", "whenever", "2026-01-01", 2025, true},
		{"unparsable end is open", "2024-01-01", "later", 2030, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := windowContains(tc.start, tc.end, tc.year); got != tc.want {
				t.Errorf("windowContains(%q, %q, %d) = %v, want %v", tc.start, tc.end, tc.year, got, tc.want)
			}
		})
	}
}

func TestExpense_AnnualAmount(t *testing.T) {
	testCases := []struct {
		name string
		e    Expense
		want float64
	}{
		{"monthly annualized", Expense{Amount: 100, Type: Monthly}, 1200},
		{"annually as-is", Expense{Amount: 600, Type: Annually}, 600},
		{"total as-is", Expense{Amount: 600, Type: Total}, 600},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.e.AnnualAmount(); got != tc.want {
				t.Errorf("AnnualAmount() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestActiveExpenseTotal(t *testing.T) {
	expenses := []Expense{
		{Name: "Groceries", Amount: 100, Type: Monthly},
		{Name: "Insurance", Amount: 600, Type: Annually, StartDate: "2026-01-01", EndDate: "2028-12-31"},
		{Name: "Roof", Amount: 9000, Type: Total, StartDate: "2027-01-01", EndDate: "2027-12-31"},
	}
	testCases := []struct {
		year int
		want float64
	}{
		{2025, 1200},
		{2026, 1800},
		{2027, 10800},
		{2028, 1800},
		{2029, 1200},
	}
	for _, tc := range testCases {
		if got := ActiveExpenseTotal(expenses, tc.year); got != tc.want {
			t.Errorf("ActiveExpenseTotal(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}

func TestActiveNetIncome(t *testing.T) {
	sources := []IncomeSource{
		{Name: "Salary", Amount: 50000, Type: "annually", EffectiveTaxRatePercent: 10},
		{Name: "Pension", Amount: 12000, Type: "annually", StartDate: "2030-01-01"},
	}
	if got := ActiveNetIncome(sources, 2025); !almostEqual(got, 45000) {
		t.Errorf("ActiveNetIncome(2025) = %v, want 45000", got)
	}
	if got := ActiveNetIncome(sources, 2030); !almostEqual(got, 57000) {
		t.Errorf("ActiveNetIncome(2030) = %v, want 57000", got)
	}
}

func TestIncomeSource_NetAnnual_DefaultsToNoTax(t *testing.T) {
	s := IncomeSource{Amount: 30000}
	if got := s.NetAnnual(); got != 30000 {
		t.Errorf("NetAnnual() = %v, want 30000", got)
	}
}

func TestAnnualExpenses_IgnoresWindows(t *testing.T) {
	expenses := []Expense{
		{Amount: 100, Type: Monthly},
		{Amount: 600, Type: Annually, StartDate: "2090-01-01"},
	}
	// The flat total annualizes every record, active or not.
	if got := AnnualExpenses(expenses); got != 1800 {
		t.Errorf("AnnualExpenses() = %v, want 1800", got)
	}
}
