package finplan

import "fmt"

// Recurrence describes how an expense amount recurs.
type Recurrence string

const (
	// Monthly amounts are annualized by multiplying by 12.
	Monthly Recurrence = "monthly"
	// Annually amounts count once per active year.
	Annually Recurrence = "annually"
	// Total is kept behaviorally identical to Annually. Whether it was
	// meant as a one-off charge in the start year is an open question in
	// the data format; until settled, both recur once per active year.
	Total Recurrence = "total"
)

// ParseRecurrence validates an expense type value from a document.
func ParseRecurrence(s string) (Recurrence, error) {
	switch r := Recurrence(s); r {
	case Monthly, Annually, Total:
		return r, nil
	default:
		return "", fmt.Errorf("unknown expense type %q (want monthly, annually or total)", s)
	}
}

// Expense is a recurring outflow, optionally bounded by an active date
// window at year granularity.
type Expense struct {
	Name      string
	Amount    float64 // per occurrence, document key "expense"
	Type      Recurrence
	StartDate string
	EndDate   string
	UpdatedAt string
}

// AnnualAmount returns the expense's yearly equivalent.
func (e Expense) AnnualAmount() float64 {
	if e.Type == Monthly {
		return e.Amount * 12
	}
	return e.Amount
}

// ActiveIn reports whether the expense counts in the given calendar year.
func (e Expense) ActiveIn(year int) bool {
	return windowContains(e.StartDate, e.EndDate, year)
}

func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", e.Name)
	w.Append("expense", e.Amount)
	w.Append("type", string(e.Type))
	w.Optional("start_date", e.StartDate)
	w.Optional("end_date", e.EndDate)
	w.Optional("updated_at", e.UpdatedAt)
	return w.MarshalJSON()
}

// AnnualExpenses returns the flat annualized total of all expenses,
// ignoring active windows. This is the total the net-worth projection
// subtracts every year.
func AnnualExpenses(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.AnnualAmount()
	}
	return total
}

// ActiveExpenseTotal returns the annualized total of the expenses active in
// the given year. It is evaluated independently per year; with profile-sized
// inputs there is nothing worth memoizing.
func ActiveExpenseTotal(expenses []Expense, year int) float64 {
	var total float64
	for _, e := range expenses {
		if e.ActiveIn(year) {
			total += e.AnnualAmount()
		}
	}
	return total
}
