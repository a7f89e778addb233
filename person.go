package finplan

// Person is one of the two adults in the financial plan.
type Person struct {
	Name                    string
	BirthYear               int
	RetirementAge           int
	SocialSecurityStartYear int
	AnnualSalary            float64
	Contribution401k        float64 // annual amount, document key "retirement_401k_contribution"
	ExpirationAge           *int
	UpdatedAt               string
}

// YearsToRetirement returns how many full years remain before this person
// retires, as seen from currentYear. Never negative: once past retirement
// age the answer is 0.
func (p Person) YearsToRetirement(currentYear int) int {
	remaining := p.RetirementAge - (currentYear - p.BirthYear)
	return max(0, remaining)
}

func (p Person) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Append("birth_year", p.BirthYear)
	w.Append("retirement_age", p.RetirementAge)
	w.Append("social_security_start_year", p.SocialSecurityStartYear)
	w.Append("annual_salary", p.AnnualSalary)
	w.Append("retirement_401k_contribution", p.Contribution401k)
	if p.ExpirationAge != nil {
		w.Append("expiration_age", *p.ExpirationAge)
	}
	w.Optional("updated_at", p.UpdatedAt)
	return w.MarshalJSON()
}

// Child is one of the two children; only the 529 contribution participates
// in projections.
type Child struct {
	Name            string
	BirthYear       int
	Contribution529 float64 // annual amount, document key "annual_529_contribution"
	UpdatedAt       string
}

func (c Child) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", c.Name)
	w.Append("birth_year", c.BirthYear)
	w.Append("annual_529_contribution", c.Contribution529)
	w.Optional("updated_at", c.UpdatedAt)
	return w.MarshalJSON()
}
