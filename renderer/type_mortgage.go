package renderer

// Mortgage is the renderable form of a fixed-rate mortgage quote.
type Mortgage struct {
	Principal     Money   `json:"principal"`
	RatePercent   float64 `json:"ratePercent"`
	Years         int     `json:"years"`
	Payment       Money   `json:"payment"`
	AnnualPayment Money   `json:"annualPayment"`
	TotalPaid     Money   `json:"totalPaid"`
	TotalInterest Money   `json:"totalInterest"`
}

// NewMortgage builds the report from a computed monthly payment.
func NewMortgage(principal, ratePercent float64, years int, payment float64, currency string) *Mortgage {
	total := payment * 12 * float64(years)
	interest := total - principal
	if total == 0 {
		interest = 0
	}
	return &Mortgage{
		Principal:     NewMoney(principal, currency),
		RatePercent:   ratePercent,
		Years:         years,
		Payment:       NewMoney(payment, currency),
		AnnualPayment: NewMoney(payment*12, currency),
		TotalPaid:     NewMoney(total, currency),
		TotalInterest: NewMoney(interest, currency),
	}
}
