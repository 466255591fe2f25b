package economy

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"fiscal-sim/internal/core"
)

// Policy control keys, shared by sliders, scenario files and CLI overrides.
const (
	KeyIncomeTax      = "income_tax"
	KeyCorporateTax   = "corporate_tax"
	KeyConsumptionTax = "consumption_tax"
	KeyEducation      = "education"
	KeyInfrastructure = "infrastructure"
	KeyHealthcare     = "healthcare"
	KeyWelfare        = "welfare"
)

// ErrPolicyOutOfRange is wrapped by every RangeError.
var ErrPolicyOutOfRange = errors.New("policy value out of range")

// ErrUnknownPolicyKey reports an override for a key no control defines.
var ErrUnknownPolicyKey = errors.New("unknown policy key")

// RangeError describes a policy field outside its control range.
type RangeError struct {
	Key   string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s=%g outside [%g, %g]", e.Key, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrPolicyOutOfRange }

var policyControls = []core.ParameterControl{
	{Key: KeyIncomeTax, Label: "policy.income_tax", Unit: "value.percent", Type: core.ParamTypePercent, Step: 0.5, Min: 5, Max: 80},
	{Key: KeyCorporateTax, Label: "policy.corporate_tax", Unit: "value.percent", Type: core.ParamTypePercent, Step: 0.5, Min: 5, Max: 80},
	{Key: KeyConsumptionTax, Label: "policy.consumption_tax", Unit: "value.percent", Type: core.ParamTypePercent, Step: 0.5, Min: 5, Max: 50},
	{Key: KeyEducation, Label: "policy.education", Unit: "value.amount", Type: core.ParamTypeCurrency, Step: 1, Min: 5, Max: 150},
	{Key: KeyInfrastructure, Label: "policy.infrastructure", Unit: "value.amount", Type: core.ParamTypeCurrency, Step: 1, Min: 5, Max: 150},
	{Key: KeyHealthcare, Label: "policy.healthcare", Unit: "value.amount", Type: core.ParamTypeCurrency, Step: 1, Min: 5, Max: 150},
	{Key: KeyWelfare, Label: "policy.welfare", Unit: "value.amount", Type: core.ParamTypeCurrency, Step: 1, Min: 5, Max: 150},
}

// PolicyControls returns the slider definitions for every policy field, tax
// rates first.
func PolicyControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), policyControls...)
}

// PolicyControl returns the control for key.
func PolicyControl(key string) (core.ParameterControl, bool) {
	for _, c := range policyControls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// PolicyKeys lists the control keys in presentation order.
func PolicyKeys() []string {
	keys := make([]string, len(policyControls))
	for i, c := range policyControls {
		keys[i] = c.Key
	}
	return keys
}

// Field returns a pointer to the policy field named by key.
func (p *Policy) Field(key string) (*float64, bool) {
	switch key {
	case KeyIncomeTax:
		return &p.IncomeTax, true
	case KeyCorporateTax:
		return &p.CorporateTax, true
	case KeyConsumptionTax:
		return &p.ConsumptionTax, true
	case KeyEducation:
		return &p.Education, true
	case KeyInfrastructure:
		return &p.Infrastructure, true
	case KeyHealthcare:
		return &p.Healthcare, true
	case KeyWelfare:
		return &p.Welfare, true
	default:
		return nil, false
	}
}

// Get returns the value of the field named by key.
func (p Policy) Get(key string) (float64, bool) {
	f, ok := p.Field(key)
	if !ok {
		return 0, false
	}
	return *f, true
}

// Set assigns the field named by key. It reports false for unknown keys.
func (p *Policy) Set(key string, value float64) bool {
	f, ok := p.Field(key)
	if !ok {
		return false
	}
	*f = value
	return true
}

// Validate checks every field against its control range. All violations are
// joined into the returned error.
func (p Policy) Validate() error {
	var errs []error
	for _, c := range policyControls {
		v, _ := p.Get(c.Key)
		if math.IsNaN(v) || !c.Contains(v) {
			errs = append(errs, &RangeError{Key: c.Key, Value: v, Min: c.Min, Max: c.Max})
		}
	}
	return errors.Join(errs...)
}

// Clamp returns a copy with every field limited to its control range.
func (p Policy) Clamp() Policy {
	out := p
	for _, c := range policyControls {
		f, _ := out.Field(c.Key)
		if math.IsNaN(*f) {
			*f = c.Min
			continue
		}
		*f = c.Clamp(*f)
	}
	return out
}

// PolicyFromMap overlays key/value overrides onto base. Values are parsed as
// floats; unknown keys and unparsable values are errors. Range checks are
// left to Validate.
func PolicyFromMap(base Policy, kv map[string]string) (Policy, error) {
	out := base
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := strings.TrimSpace(k)
		parsed, err := strconv.ParseFloat(strings.TrimSpace(kv[k]), 64)
		if err != nil {
			return Policy{}, fmt.Errorf("parse %s: %w", key, err)
		}
		if !out.Set(key, parsed) {
			return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicyKey, key)
		}
	}
	return out, nil
}
