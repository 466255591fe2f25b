package i18n

import (
	"golang.org/x/text/message"

	"fiscal-sim/internal/core"
	"fiscal-sim/internal/economy"
)

// Message keys used by the formatters.
const (
	KeyStatusContinuing  = "status.continuing"
	KeyStatusWon         = "status.won"
	KeyStatusLostRounds  = "status.lost_rounds"
	KeyStatusLostDeficit = "status.lost_deficit"
	KeyValuePercent      = "value.percent"
	KeyValueCurrency     = "value.currency"
	KeyValueScaled       = "value.scaled"
	KeyValueInt          = "value.int"
)

// StatusMessage formats the end-of-game line for status. The win message
// carries the GDP, the deficit loss carries the deficit.
func StatusMessage(p *message.Printer, status economy.Status, st economy.State) string {
	switch status {
	case economy.WonByTarget:
		return p.Sprintf(KeyStatusWon, st.GDP)
	case economy.LostByRounds:
		return p.Sprintf(KeyStatusLostRounds)
	case economy.LostByDeficit:
		return p.Sprintf(KeyStatusLostDeficit, st.BudgetDeficit)
	default:
		return p.Sprintf(KeyStatusContinuing)
	}
}

// FormatParam prints a displayed value according to its type.
func FormatParam(p *message.Printer, param core.Parameter) string {
	if param.Scale > 0 {
		return p.Sprintf(KeyValueScaled, param.Value, param.Scale)
	}
	switch param.Type {
	case core.ParamTypeCurrency:
		return p.Sprintf(KeyValueCurrency, param.Value)
	case core.ParamTypePercent:
		return p.Sprintf(KeyValuePercent, param.Value)
	default:
		return p.Sprintf(KeyValueInt, param.Value)
	}
}

// FormatControl prints a slider value with the control's unit format.
func FormatControl(p *message.Printer, c core.ParameterControl, v float64) string {
	return p.Sprintf(c.Unit, v)
}
