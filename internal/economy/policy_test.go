package economy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyControlsRanges(t *testing.T) {
	controls := PolicyControls()
	require.Len(t, controls, 7)

	want := map[string][2]float64{
		KeyIncomeTax:      {5, 80},
		KeyCorporateTax:   {5, 80},
		KeyConsumptionTax: {5, 50},
		KeyEducation:      {5, 150},
		KeyInfrastructure: {5, 150},
		KeyHealthcare:     {5, 150},
		KeyWelfare:        {5, 150},
	}
	for _, c := range controls {
		bounds, ok := want[c.Key]
		require.True(t, ok, c.Key)
		assert.Equal(t, bounds[0], c.Min, c.Key)
		assert.Equal(t, bounds[1], c.Max, c.Key)
	}

	// Callers get a copy.
	controls[0].Max = 1000
	c, ok := PolicyControl(KeyIncomeTax)
	require.True(t, ok)
	assert.Equal(t, 80.0, c.Max)
}

func TestBaselineIsValid(t *testing.T) {
	assert.NoError(t, Baseline().Validate())
}

func TestValidateJoinsEveryViolation(t *testing.T) {
	p := Baseline()
	p.ConsumptionTax = 51
	p.Welfare = 4
	p.Education = math.NaN()

	err := p.Validate()
	require.ErrorIs(t, err, ErrPolicyOutOfRange)
	assert.Contains(t, err.Error(), "consumption_tax=51")
	assert.Contains(t, err.Error(), "welfare=4")
	assert.Contains(t, err.Error(), "education=NaN")
}

func TestClampLimitsEveryField(t *testing.T) {
	p := Policy{
		IncomeTax: 100, CorporateTax: 1, ConsumptionTax: 60,
		Education: 0, Infrastructure: 200, Healthcare: math.NaN(), Welfare: 70,
	}
	got := p.Clamp()

	assert.Equal(t, Policy{
		IncomeTax: 80, CorporateTax: 5, ConsumptionTax: 50,
		Education: 5, Infrastructure: 150, Healthcare: 5, Welfare: 70,
	}, got)
	assert.NoError(t, got.Validate())
}

func TestPolicyFromMap(t *testing.T) {
	p, err := PolicyFromMap(Baseline(), map[string]string{
		KeyIncomeTax:  " 32.5",
		KeyHealthcare: "45",
		KeyEducation:  "41",
	})
	require.NoError(t, err)
	assert.Equal(t, 32.5, p.IncomeTax)
	assert.Equal(t, 45.0, p.Healthcare)
	assert.Equal(t, 41.0, p.Education)
	assert.Equal(t, Baseline().Infrastructure, p.Infrastructure)

	_, err = PolicyFromMap(Baseline(), map[string]string{"defense": "10"})
	require.ErrorIs(t, err, ErrUnknownPolicyKey)

	_, err = PolicyFromMap(Baseline(), map[string]string{KeyWelfare: "lots"})
	require.Error(t, err)
}

func TestPolicyFieldAccess(t *testing.T) {
	var p Policy
	for i, key := range PolicyKeys() {
		require.True(t, p.Set(key, float64(i+1)))
	}
	assert.Equal(t, Policy{1, 2, 3, 4, 5, 6, 7}, p)
	assert.Equal(t, 22.0, p.TotalSpending())

	_, ok := p.Get("defense")
	assert.False(t, ok)
	assert.False(t, p.Set("defense", 1))
}
