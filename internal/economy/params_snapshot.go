package economy

import (
	"fiscal-sim/internal/core"
)

// Indicator keys exposed by Parameters.
const (
	IndicatorGDP        = "gdp"
	IndicatorDeficit    = "deficit"
	IndicatorEmployment = "employment"
	IndicatorWelfare    = "welfare_index"
	IndicatorInflation  = "inflation"
	IndicatorRound      = "round"
	IndicatorMaxRounds  = "max_rounds"
	IndicatorTargetGDP  = "target_gdp"
	IndicatorMaxDeficit = "max_deficit"
)

// Thresholds used to colour the indicators.
const (
	healthyGDP        = 1000.0
	healthyEmployment = 90.0
	healthyWelfare    = 50.0
	healthyInflation  = 3.0
)

// Parameters reports the current indicators for display.
func (s *Session) Parameters() core.ParameterSnapshot {
	st := s.state
	groups := []core.ParameterGroup{
		{
			Name: "group.indicators",
			Params: []core.Parameter{
				currencyParam(IndicatorGDP, "indicator.gdp", st.GDP, tone(st.GDP >= healthyGDP)),
				currencyParam(IndicatorDeficit, "indicator.deficit", st.BudgetDeficit, tone(st.BudgetDeficit <= 0)),
				percentParam(IndicatorEmployment, "indicator.employment", st.EmploymentRate, 0, tone(st.EmploymentRate >= healthyEmployment)),
				percentParam(IndicatorWelfare, "indicator.welfare", st.WelfareIndex, welfareMax, tone(st.WelfareIndex >= healthyWelfare)),
				percentParam(IndicatorInflation, "indicator.inflation", st.InflationRate, 0, tone(st.InflationRate <= healthyInflation)),
			},
		},
		{
			Name: "group.session",
			Params: []core.Parameter{
				intParam(IndicatorRound, "session.round", s.round),
				intParam(IndicatorMaxRounds, "session.max_rounds", s.cfg.MaxRounds),
				currencyParam(IndicatorTargetGDP, "session.target_gdp", s.cfg.TargetGDP, core.ToneNeutral),
				currencyParam(IndicatorMaxDeficit, "session.max_deficit", s.cfg.MaxDeficit, core.ToneNeutral),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func tone(healthy bool) core.Tone {
	if healthy {
		return core.TonePositive
	}
	return core.ToneNegative
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: float64(value),
	}
}

func currencyParam(key, label string, value float64, t core.Tone) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeCurrency,
		Value: value,
		Tone:  t,
	}
}

func percentParam(key, label string, value, scale float64, t core.Tone) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypePercent,
		Value: value,
		Scale: scale,
		Tone:  t,
	}
}
