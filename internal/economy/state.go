package economy

// State is the macroeconomic snapshot produced by each policy round.
type State struct {
	GDP            float64 `json:"gdp" yaml:"gdp"`
	BudgetDeficit  float64 `json:"budget_deficit" yaml:"budget_deficit"`
	EmploymentRate float64 `json:"employment_rate" yaml:"employment_rate"`
	WelfareIndex   float64 `json:"welfare_index" yaml:"welfare_index"`
	InflationRate  float64 `json:"inflation_rate" yaml:"inflation_rate"`
}

// InitialState returns the economy before any policy has been applied.
func InitialState() State {
	return State{
		GDP:            1000,
		BudgetDeficit:  0,
		EmploymentRate: 95,
		WelfareIndex:   50,
		InflationRate:  baseInflation,
	}
}

// Policy holds the tax rates (percent) and spending levels (currency units)
// proposed for a round.
type Policy struct {
	IncomeTax      float64 `json:"income_tax" yaml:"income_tax"`
	CorporateTax   float64 `json:"corporate_tax" yaml:"corporate_tax"`
	ConsumptionTax float64 `json:"consumption_tax" yaml:"consumption_tax"`

	Education      float64 `json:"education" yaml:"education"`
	Infrastructure float64 `json:"infrastructure" yaml:"infrastructure"`
	Healthcare     float64 `json:"healthcare" yaml:"healthcare"`
	Welfare        float64 `json:"welfare" yaml:"welfare"`
}

// Baseline returns the reference policy every round's deltas are measured
// against. It never changes over a session.
func Baseline() Policy {
	return Policy{
		IncomeTax:      20,
		CorporateTax:   25,
		ConsumptionTax: 15,
		Education:      40,
		Infrastructure: 60,
		Healthcare:     30,
		Welfare:        20,
	}
}

// TotalSpending sums the four spending categories.
func (p Policy) TotalSpending() float64 {
	return p.Education + p.Infrastructure + p.Healthcare + p.Welfare
}

// Config holds the fixed limits of a game session.
type Config struct {
	MaxRounds  int
	TargetGDP  float64
	MaxDeficit float64
}

// DefaultConfig returns the standard session limits.
func DefaultConfig() Config {
	return Config{
		MaxRounds:  10,
		TargetGDP:  2000,
		MaxDeficit: 500,
	}
}

// RoundRecord is one entry of a session's history. Round 0 holds the
// initial state and the baseline policy.
type RoundRecord struct {
	Round  int    `json:"round"`
	Policy Policy `json:"policy"`
	State  State  `json:"state"`
}
