package economy

import "math"

// Model coefficients. They are fixed for every session.
const (
	marginalPropensityToConsume = 0.7
	potentialGrowth             = 3.0
	baseInflation               = 2.0

	incomeShare      = 0.6
	profitShare      = 0.3
	consumptionShare = 0.7
	consumptionBase  = 0.5

	okunCoefficient      = 0.5
	demandPressureBuffer = 2.0
	inflationPassThrough = 0.5

	educationWelfareWeight  = 0.2
	healthcareWelfareWeight = 0.3
	welfareSpendingWeight   = 0.4
	taxWelfarePenalty       = 100.0

	employmentMin = 85.0
	employmentMax = 99.0
	welfareMin    = 0.0
	welfareMax    = 100.0
)

// Resolution captures every intermediate term of one policy round.
type Resolution struct {
	IncomeTaxDelta      float64 `json:"income_tax_delta"`
	CorporateTaxDelta   float64 `json:"corporate_tax_delta"`
	ConsumptionTaxDelta float64 `json:"consumption_tax_delta"`

	EducationDelta      float64 `json:"education_delta"`
	InfrastructureDelta float64 `json:"infrastructure_delta"`
	HealthcareDelta     float64 `json:"healthcare_delta"`
	WelfareDelta        float64 `json:"welfare_delta"`

	TaxRevenue    float64 `json:"tax_revenue"`
	TotalSpending float64 `json:"total_spending"`

	TaxMultiplier      float64 `json:"tax_multiplier"`
	SpendingMultiplier float64 `json:"spending_multiplier"`
	TaxImpact          float64 `json:"tax_impact"`
	SpendingImpact     float64 `json:"spending_impact"`

	GrowthPercent    float64 `json:"growth_percent"`
	EmploymentChange float64 `json:"employment_change"`
	WelfareChange    float64 `json:"welfare_change"`
	DemandPressure   float64 `json:"demand_pressure"`

	Next State `json:"next"`
}

// TaxMultiplier is the closed-economy Keynesian tax multiplier.
func TaxMultiplier() float64 {
	return -marginalPropensityToConsume / (1 - marginalPropensityToConsume)
}

// SpendingMultiplier is the closed-economy Keynesian spending multiplier.
func SpendingMultiplier() float64 {
	return 1 / (1 - marginalPropensityToConsume)
}

// PotentialGrowth returns the steady-state growth rate in percent.
func PotentialGrowth() float64 { return potentialGrowth }

// ApplyPolicy converts the proposed policy into the next economic state.
// Deltas are measured against baseline, not the previous round's policy.
// Inputs are assumed to be within PolicyControls ranges.
func ApplyPolicy(prev State, baseline, in Policy) State {
	return Resolve(prev, baseline, in).Next
}

// Resolve performs the same transition as ApplyPolicy and keeps the
// intermediate terms.
func Resolve(prev State, baseline, in Policy) Resolution {
	var r Resolution

	r.IncomeTaxDelta = (in.IncomeTax - baseline.IncomeTax) / 100
	r.CorporateTaxDelta = (in.CorporateTax - baseline.CorporateTax) / 100
	r.ConsumptionTaxDelta = (in.ConsumptionTax - baseline.ConsumptionTax) / 100

	r.EducationDelta = in.Education - baseline.Education
	r.InfrastructureDelta = in.Infrastructure - baseline.Infrastructure
	r.HealthcareDelta = in.Healthcare - baseline.Healthcare
	r.WelfareDelta = in.Welfare - baseline.Welfare

	gdp := prev.GDP
	r.TaxRevenue = gdp*incomeShare*(in.IncomeTax/100) +
		gdp*profitShare*(in.CorporateTax/100) +
		gdp*consumptionShare*(in.ConsumptionTax/100)*consumptionBase
	r.TotalSpending = in.TotalSpending()

	r.TaxMultiplier = TaxMultiplier()
	r.SpendingMultiplier = SpendingMultiplier()

	taxDeltas := r.IncomeTaxDelta + r.CorporateTaxDelta + r.ConsumptionTaxDelta
	spendDeltas := r.EducationDelta + r.InfrastructureDelta + r.HealthcareDelta + r.WelfareDelta
	r.TaxImpact = taxDeltas * r.TaxMultiplier * gdp
	r.SpendingImpact = spendDeltas * r.SpendingMultiplier

	newGDP := gdp*(1+potentialGrowth/100) + r.TaxImpact + r.SpendingImpact
	r.GrowthPercent = (newGDP - gdp) / gdp * 100

	// Simplified Okun's law.
	r.EmploymentChange = okunCoefficient * (r.GrowthPercent - potentialGrowth)

	r.WelfareChange = educationWelfareWeight*r.EducationDelta +
		healthcareWelfareWeight*r.HealthcareDelta +
		welfareSpendingWeight*r.WelfareDelta -
		taxWelfarePenalty*(r.IncomeTaxDelta+r.CorporateTaxDelta)

	r.DemandPressure = math.Max(0, r.GrowthPercent-potentialGrowth-demandPressureBuffer)

	r.Next = State{
		GDP:            newGDP,
		BudgetDeficit:  r.TotalSpending - r.TaxRevenue,
		EmploymentRate: clamp(prev.EmploymentRate+r.EmploymentChange, employmentMin, employmentMax),
		WelfareIndex:   clamp(prev.WelfareIndex+r.WelfareChange, welfareMin, welfareMax),
		InflationRate:  baseInflation + r.DemandPressure*inflationPassThrough,
	}
	return r
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
