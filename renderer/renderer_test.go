package renderer

import (
	"strings"
	"testing"

	"github.com/tburke/finplan"
)

func TestNewMoney_Formatting(t *testing.T) {
	testCases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1798.65, "USD", "$1,798.65"},
		{0, "USD", "$0.00"},
		{-250.5, "USD", "-$250.50"},
	}
	for _, tc := range testCases {
		if got := NewMoney(tc.amount, tc.currency).String(); got != tc.want {
			t.Errorf("NewMoney(%v, %q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := NewMoney(100, "USD").SignedString(); got != "+$100.00" {
		t.Errorf("SignedString() = %q, want +$100.00", got)
	}
	if got := NewMoney(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
}

func TestNetWorthMarkdown(t *testing.T) {
	nw := NewNetWorth(2025, []float64{10000, 20300, 30600}, "USD")
	md := NetWorthMarkdown(nw)
	for _, fragment := range []string{
		"# Net Worth Projection",
		"| 2025 | 0 | $10,000.00 |",
		"| 2027 | 2 | $30,600.00 |",
		"+$20,600.00",
	} {
		if !strings.Contains(md, fragment) {
			t.Errorf("NetWorthMarkdown() missing %q:\n%s", fragment, md)
		}
	}
}

func TestSeriesMarkdown(t *testing.T) {
	ts := &finplan.TimeSeries{
		Years:       []int{2025, 2026},
		Investments: []float64{3000, 3200},
		Income:      []float64{45000, 90000},
		Expenses:    []float64{12000, 12000},
	}
	md := SeriesMarkdown(NewSeries(ts, "USD"))
	for _, fragment := range []string{
		"# Projection 2025-2026",
		"| 2025 | $3,000.00 | $45,000.00 | $12,000.00 |",
		"| 2026 | $3,200.00 | $90,000.00 | $12,000.00 |",
	} {
		if !strings.Contains(md, fragment) {
			t.Errorf("SeriesMarkdown() missing %q:\n%s", fragment, md)
		}
	}
}

func TestMortgageMarkdown(t *testing.T) {
	payment := finplan.MonthlyPayment(300000, 6, 30)
	md := MortgageMarkdown(NewMortgage(300000, 6, 30, payment, "USD"))
	for _, fragment := range []string{
		"$300,000.00",
		"$1,798.65",
		"30 years",
	} {
		if !strings.Contains(md, fragment) {
			t.Errorf("MortgageMarkdown() missing %q:\n%s", fragment, md)
		}
	}
}

func TestProfileMarkdown(t *testing.T) {
	plan := &finplan.FinancePlan{
		Investments: []finplan.Investment{
			{Name: "Brokerage", Balance: 10000, InterestRatePercent: 5, Broker: "Vanguard"},
		},
		Expenses: []finplan.Expense{
			{Name: "Groceries", Amount: 100, Type: finplan.Monthly},
		},
		Income: []finplan.IncomeSource{
			{Name: "Salary", Amount: 50000, EffectiveTaxRatePercent: 10, EndDate: "2040-01-01"},
		},
		Person1:             finplan.Person{Name: "Alex", BirthYear: 1980, RetirementAge: 65, Contribution401k: 10000},
		Person2:             finplan.Person{Name: "Sam", BirthYear: 1982, RetirementAge: 60},
		Child1:              finplan.Child{Name: "Jo", BirthYear: 2015, Contribution529: 1000},
		Child2:              finplan.Child{Name: "Max", BirthYear: 2018},
		ProjectionYearsMain: 10,
	}
	md := ProfileMarkdown(NewProfile(plan, "USD"))
	for _, fragment := range []string{
		"Projection horizon: 10 years",
		"| Alex | 1980 | 65 | $10,000.00 |",
		"| Brokerage | $10,000.00 | 5% | Vanguard |",
		"$1,200.00 / year",
		"until 2040-01-01",
	} {
		if !strings.Contains(md, fragment) {
			t.Errorf("ProfileMarkdown() missing %q:\n%s", fragment, md)
		}
	}
}
