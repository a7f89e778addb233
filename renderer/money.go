package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display value: an amount in the report currency, formatted
// with the currency's own conventions. Projections compute on float64;
// reports convert at the edge.
type Money struct {
	value *money.Money
}

// NewMoney creates a Money from a float amount and a 3-letter currency code.
func NewMoney(amount float64, currency string) Money {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	units := decimal.NewFromFloat(amount).Mul(factor).Round(0)
	return Money{money.New(units.IntPart(), cur.Code)}
}

// String returns the formatted amount, e.g. "$1,798.65".
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

// SignedString prefixes positive amounts with "+" and renders zero as "-",
// for delta columns.
func (m Money) SignedString() string {
	if m.value == nil {
		return ""
	}
	switch {
	case m.value.Amount() == 0:
		return "-"
	case m.value.Amount() > 0:
		return "+" + m.String()
	default:
		return m.String()
	}
}
