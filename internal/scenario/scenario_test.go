package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiscal-sim/internal/economy"
)

const stimulus = `
name: stimulus
rounds:
  - infrastructure: 150
    income_tax: 18
  - {}
  - education: 60
`

func TestParseInheritsOmittedFields(t *testing.T) {
	plan, err := Parse([]byte(stimulus))
	require.NoError(t, err)

	assert.Equal(t, "stimulus", plan.Name)
	require.Len(t, plan.Rounds, 3)

	first := economy.Baseline()
	first.Infrastructure = 150
	first.IncomeTax = 18
	assert.Equal(t, first, plan.Rounds[0])
	assert.Equal(t, first, plan.Rounds[1])

	third := first
	third.Education = 60
	assert.Equal(t, third, plan.Rounds[2])
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("rounds:\n  - defense: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defense")
}

func TestParseRejectsOutOfRange(t *testing.T) {
	_, err := Parse([]byte("rounds:\n  - {}\n  - consumption_tax: 55\n"))
	require.ErrorIs(t, err, economy.ErrPolicyOutOfRange)
	assert.Contains(t, err.Error(), "round 2")
}

func TestParseRejectsEmptyPlans(t *testing.T) {
	_, err := Parse(nil)
	require.ErrorIs(t, err, ErrEmptyPlan)

	_, err = Parse([]byte("name: idle\nrounds: []\n"))
	require.ErrorIs(t, err, ErrEmptyPlan)
}

func TestLoadDefaultsNameToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "austerity.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rounds:\n  - welfare: 10\n"), 0o644))

	plan, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "austerity", plan.Name)
	assert.Equal(t, 10.0, plan.Rounds[0].Welfare)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunStopsAtTerminalStatus(t *testing.T) {
	plan, err := Parse([]byte(stimulus))
	require.NoError(t, err)
	plan.Rounds = append(plan.Rounds, plan.Rounds[2], plan.Rounds[2], plan.Rounds[2])

	s, err := Run(plan, economy.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, economy.WonByTarget, s.Status())
	assert.Less(t, s.Round(), len(plan.Rounds))
	assert.Len(t, s.History(), s.Round()+1)
}

func TestRunConstantPlanExhaustsRounds(t *testing.T) {
	plan := Constant("steady", economy.Baseline(), 12)

	s, err := Run(plan, economy.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, economy.LostByRounds, s.Status())
	assert.Equal(t, 10, s.Round())
}

func TestBundledScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		plan, err := Load(path)
		require.NoError(t, err, path)
		s, err := Run(plan, economy.DefaultConfig())
		require.NoError(t, err, path)
		assert.True(t, s.Status().Terminal(), "%s ends the game", plan.Name)
	}
}
