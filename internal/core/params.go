package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeCurrency denotes floating-point amounts of money.
	ParamTypeCurrency ParamType = "currency"
	// ParamTypePercent denotes floating-point percentages.
	ParamTypePercent ParamType = "percent"
)

// Tone hints how a presented value should be coloured.
type Tone uint8

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

// Parameter describes a single value exposed for display. Label is a
// message key resolved by the presentation layer.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value float64
	// Scale is the upper bound printed after the value ("50.0/100"); zero
	// means no scale.
	Scale float64
	Tone  Tone
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a model.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable input that should be exposed as
// a slider. Label is a message key; Unit is the message key of the format
// used to print the value.
type ParameterControl struct {
	Key   string
	Label string
	Unit  string
	Type  ParamType

	Step float64
	Min  float64
	Max  float64
}

// Clamp limits v to the control's range.
func (c ParameterControl) Clamp(v float64) float64 {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}

// Contains reports whether v lies within the control's range.
func (c ParameterControl) Contains(v float64) bool {
	return v >= c.Min && v <= c.Max
}
