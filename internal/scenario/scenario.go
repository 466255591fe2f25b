// Package scenario loads scripted policy plans for headless replays.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"fiscal-sim/internal/economy"
)

// ErrEmptyPlan is returned for plans without rounds.
var ErrEmptyPlan = errors.New("scenario has no rounds")

// Plan is an ordered list of policies, one per round.
type Plan struct {
	Name   string
	Rounds []economy.Policy
}

// roundEntry mirrors a YAML round entry. Pointer fields distinguish omitted
// values, which inherit from the previous round.
type roundEntry struct {
	IncomeTax      *float64 `yaml:"income_tax"`
	CorporateTax   *float64 `yaml:"corporate_tax"`
	ConsumptionTax *float64 `yaml:"consumption_tax"`
	Education      *float64 `yaml:"education"`
	Infrastructure *float64 `yaml:"infrastructure"`
	Healthcare     *float64 `yaml:"healthcare"`
	Welfare        *float64 `yaml:"welfare"`
}

type planFile struct {
	Name   string      `yaml:"name"`
	Rounds []roundEntry `yaml:"rounds"`
}

func (r roundEntry) overlay(prev economy.Policy) economy.Policy {
	out := prev
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&out.IncomeTax, r.IncomeTax)
	set(&out.CorporateTax, r.CorporateTax)
	set(&out.ConsumptionTax, r.ConsumptionTax)
	set(&out.Education, r.Education)
	set(&out.Infrastructure, r.Infrastructure)
	set(&out.Healthcare, r.Healthcare)
	set(&out.Welfare, r.Welfare)
	return out
}

// Parse decodes a YAML plan. Omitted fields carry over from the previous
// round; the first round starts from the baseline. Unknown keys and
// out-of-range values are errors.
func Parse(data []byte) (Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file planFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return Plan{}, ErrEmptyPlan
		}
		return Plan{}, fmt.Errorf("decode scenario: %w", err)
	}
	if len(file.Rounds) == 0 {
		return Plan{}, ErrEmptyPlan
	}

	plan := Plan{Name: strings.TrimSpace(file.Name), Rounds: make([]economy.Policy, 0, len(file.Rounds))}
	prev := economy.Baseline()
	for i, entry := range file.Rounds {
		p := entry.overlay(prev)
		if err := p.Validate(); err != nil {
			return Plan{}, fmt.Errorf("round %d: %w", i+1, err)
		}
		plan.Rounds = append(plan.Rounds, p)
		prev = p
	}
	return plan, nil
}

// Load reads and parses the plan at path. A missing name defaults to the
// file's base name.
func Load(path string) (Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	plan, err := Parse(b)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	if plan.Name == "" {
		base := filepath.Base(path)
		plan.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return plan, nil
}

// Constant returns a plan that repeats p for the given number of rounds.
func Constant(name string, p economy.Policy, rounds int) Plan {
	plan := Plan{Name: name, Rounds: make([]economy.Policy, rounds)}
	for i := range plan.Rounds {
		plan.Rounds[i] = p
	}
	return plan
}

// Run plays the plan on a new session and stops at the first terminal
// status or when the plan runs out of rounds.
func Run(plan Plan, cfg economy.Config) (*economy.Session, error) {
	s := economy.NewSession(cfg)
	for i, p := range plan.Rounds {
		if s.Status().Terminal() {
			break
		}
		if _, err := s.Apply(p); err != nil {
			return s, fmt.Errorf("scenario %q round %d: %w", plan.Name, i+1, err)
		}
	}
	return s, nil
}
