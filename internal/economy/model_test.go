package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestApplyPolicyAtBaseline(t *testing.T) {
	next := ApplyPolicy(InitialState(), Baseline(), Baseline())

	assert.InDelta(t, 1030.0, next.GDP, eps, "GDP grows by potential growth only")
	assert.InDelta(t, -97.5, next.BudgetDeficit, eps)
	assert.InDelta(t, 95.0, next.EmploymentRate, eps)
	assert.InDelta(t, 50.0, next.WelfareIndex, eps)
	assert.InDelta(t, 2.0, next.InflationRate, eps)
}

func TestResolveAtBaselineHasNoPolicyImpact(t *testing.T) {
	r := Resolve(InitialState(), Baseline(), Baseline())

	assert.Zero(t, r.TaxImpact)
	assert.Zero(t, r.SpendingImpact)
	assert.InDelta(t, 247.5, r.TaxRevenue, eps)
	assert.InDelta(t, 150.0, r.TotalSpending, eps)
	assert.InDelta(t, PotentialGrowth(), r.GrowthPercent, eps)
	assert.InDelta(t, 0, r.DemandPressure, eps)
}

func TestMultipliers(t *testing.T) {
	assert.InDelta(t, -7.0/3.0, TaxMultiplier(), eps)
	assert.InDelta(t, 10.0/3.0, SpendingMultiplier(), eps)
}

func TestHigherIncomeTaxSlowsGrowthAndWelfare(t *testing.T) {
	policy := Baseline()
	policy.IncomeTax = 30

	base := Resolve(InitialState(), Baseline(), Baseline())
	r := Resolve(InitialState(), Baseline(), policy)

	assert.Less(t, r.TaxImpact, 0.0)
	assert.InDelta(t, 0.1*TaxMultiplier()*1000, r.TaxImpact, eps)
	assert.Less(t, r.Next.GDP, base.Next.GDP)
	assert.InDelta(t, 1030-700.0/3.0, r.Next.GDP, 1e-6)
	assert.InDelta(t, -10.0, r.WelfareChange, eps)
	assert.InDelta(t, 40.0, r.Next.WelfareIndex, eps)
	assert.InDelta(t, -157.5, r.Next.BudgetDeficit, eps)
	// The growth collapse would push employment below the floor.
	assert.Equal(t, employmentMin, r.Next.EmploymentRate)
}

func TestEmploymentClampsAtCeiling(t *testing.T) {
	prev := InitialState()
	prev.EmploymentRate = 99

	policy := Baseline()
	policy.Infrastructure = 150

	r := Resolve(prev, Baseline(), policy)
	require.Greater(t, r.EmploymentChange, 0.0)
	assert.Equal(t, 99.0, r.Next.EmploymentRate)
}

func TestWelfareClampsToRange(t *testing.T) {
	prev := InitialState()
	prev.WelfareIndex = 95

	generous := Baseline()
	generous.Welfare = 150
	assert.Equal(t, 100.0, ApplyPolicy(prev, Baseline(), generous).WelfareIndex)

	prev.WelfareIndex = 3
	harsh := Baseline()
	harsh.IncomeTax = 80
	harsh.CorporateTax = 80
	assert.Equal(t, 0.0, ApplyPolicy(prev, Baseline(), harsh).WelfareIndex)
}

func TestInflationNeedsGrowthAboveBuffer(t *testing.T) {
	// 5% growth is exactly potential plus the buffer: no pressure yet.
	small := Baseline()
	small.Infrastructure = 66
	r := Resolve(InitialState(), Baseline(), small)
	assert.InDelta(t, 5.0, r.GrowthPercent, 1e-9)
	assert.InDelta(t, 2.0, r.Next.InflationRate, 1e-9)

	big := Baseline()
	big.Infrastructure = 150
	r = Resolve(InitialState(), Baseline(), big)
	assert.InDelta(t, 33.0, r.GrowthPercent, 1e-9)
	assert.InDelta(t, 2.0+0.5*(33.0-3.0-2.0), r.Next.InflationRate, 1e-9)
}

func TestDeltasUseFixedBaselineNotPreviousPolicy(t *testing.T) {
	policy := Baseline()
	policy.Education = 100

	first := ApplyPolicy(InitialState(), Baseline(), policy)
	second := Resolve(first, Baseline(), policy)

	assert.InDelta(t, 60.0, second.EducationDelta, eps)
	assert.InDelta(t, 60.0*SpendingMultiplier(), second.SpendingImpact, eps)
}
