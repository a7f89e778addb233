package finplan

import "math"

// MonthlyPayment computes the fixed monthly payment (principal and
// interest) of a mortgage using the standard amortization formula
//
//	M = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the total number of payments.
//
// A non-positive principal or term returns 0 rather than an error; a zero
// rate degenerates to straight-line principal/n.
func MonthlyPayment(principal, annualInterestPercent float64, years int) float64 {
	if principal <= 0 || years <= 0 {
		return 0
	}
	n := float64(years * 12)
	monthlyRate := annualInterestPercent / 100 / 12
	if monthlyRate == 0 {
		return principal / n
	}
	factor := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * factor / (factor - 1)
}
