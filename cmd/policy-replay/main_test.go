package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiscal-sim/internal/economy"
	"fiscal-sim/internal/report"
)

func parse(t *testing.T, environ map[string]string, args ...string) config {
	t.Helper()
	fs := flag.NewFlagSet("policy-replay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := parseConfig(fs, args, env.Options{Environment: environ})
	require.NoError(t, err)
	return cfg
}

func TestParseConfig(t *testing.T) {
	cfg := parse(t, map[string]string{"FISCAL_SIM_FORMAT": "json", "FISCAL_SIM_LOCALE": "zh-CN"},
		"-format", "tsv", "-set", "income_tax=25", "-set", "welfare=30")
	assert.Equal(t, "tsv", cfg.Format)
	assert.Equal(t, "zh-CN", cfg.Locale)
	assert.Equal(t, kvList{"income_tax=25", "welfare=30"}, cfg.Overrides)
}

func TestKVListRejectsMalformedEntries(t *testing.T) {
	_, err := kvList{"income_tax"}.toMap()
	require.Error(t, err)
	_, err = kvList{"=5"}.toMap()
	require.Error(t, err)

	m, err := kvList{"welfare=10", " welfare =20"}.toMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"welfare": "20"}, m)
}

func TestRunConstantPlan(t *testing.T) {
	cfg := parse(t, map[string]string{}, "-format", "tsv")

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, report.TSVHeader, lines[0])
	assert.Len(t, lines, 1+economy.DefaultConfig().MaxRounds+1)
}

func TestRunScenarioWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stimulus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rounds:\n  - education: 50\n  - {}\n  - {}\n  - {}\n"), 0o644))

	cfg := parse(t, map[string]string{}, "-scenario", path, "-set", "infrastructure=150", "-format", "json")
	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), `"scenario": "stimulus"`)
	assert.Contains(t, out.String(), `"status": "won_by_target"`)
}

func TestRunRejectsBadInput(t *testing.T) {
	var out bytes.Buffer

	err := run(parse(t, map[string]string{}, "-set", "income_tax=95"), &out)
	require.ErrorIs(t, err, economy.ErrPolicyOutOfRange)

	err = run(parse(t, map[string]string{}, "-set", "defense=1"), &out)
	require.ErrorIs(t, err, economy.ErrUnknownPolicyKey)

	err = run(parse(t, map[string]string{}, "-format", "xml"), &out)
	require.Error(t, err)

	err = run(parse(t, map[string]string{}, "-scenario", filepath.Join(t.TempDir(), "missing.yaml")), &out)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, out.Len())
}
