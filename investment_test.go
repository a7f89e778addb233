package finplan

import (
	"math"
	"testing"
)

func TestCompoundSeries_ZeroYears(t *testing.T) {
	for _, tc := range []struct {
		principal, rate float64
	}{
		{10000, 5},
		{0, 12},
		{-500, 3},
		{2500, 0},
	} {
		got := CompoundSeries(tc.principal, tc.rate, 0)
		if len(got) != 1 || got[0] != tc.principal {
			t.Errorf("CompoundSeries(%v, %v, 0) = %v, want [%v]", tc.principal, tc.rate, got, tc.principal)
		}
	}
}

func TestCompoundSeries_Example(t *testing.T) {
	got := CompoundSeries(10000, 5, 3)
	want := []float64{10000, 10500, 11025, 11576.25}
	if len(got) != len(want) {
		t.Fatalf("CompoundSeries() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("CompoundSeries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCompoundSeries_ClosedForm(t *testing.T) {
	testCases := []struct {
		name            string
		principal, rate float64
		years           int
	}{
		{"typical growth", 10000, 7, 30},
		{"zero rate", 5000, 0, 10},
		{"negative rate", 8000, -2.5, 15},
		{"negative principal", -1000, 4, 5},
		{"one year", 123.45, 11.5, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CompoundSeries(tc.principal, tc.rate, tc.years)
			if len(got) != tc.years+1 {
				t.Fatalf("length = %d, want %d", len(got), tc.years+1)
			}
			want := tc.principal * math.Pow(1+tc.rate/100, float64(tc.years))
			// Repeated multiplication accumulates rounding; compare loosely.
			if math.Abs(got[tc.years]-want) > 1e-6*math.Max(1, math.Abs(want)) {
				t.Errorf("final value = %v, want %v", got[tc.years], want)
			}
		})
	}
}

func TestInvestment_GrowthSeries(t *testing.T) {
	inv := Investment{Name: "Brokerage", Balance: 2000, InterestRatePercent: 10}
	got := inv.GrowthSeries(1)
	if len(got) != 2 || got[0] != 2000 || !almostEqual(got[1], 2200) {
		t.Errorf("GrowthSeries(1) = %v, want [2000 2200]", got)
	}
}
