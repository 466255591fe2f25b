package ui

import (
	"image"

	"golang.org/x/text/message"

	"fiscal-sim/internal/core"
	"fiscal-sim/internal/i18n"
)

const indicatorGroup = "group.indicators"

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// IndicatorRow is one formatted line of the indicator panel.
type IndicatorRow struct {
	Label string
	Value string
	Tone  core.Tone
}

// IndicatorPanel shows the economy's current indicators. Rows are rebuilt
// from the provider's snapshot on every Update.
type IndicatorPanel struct {
	Bounds image.Rectangle

	provider parameterProvider
	rows     []IndicatorRow
}

// NewIndicatorPanel binds a panel to a parameter provider.
func NewIndicatorPanel(provider parameterProvider, bounds image.Rectangle) *IndicatorPanel {
	return &IndicatorPanel{Bounds: bounds, provider: provider}
}

// SetProvider switches the panel to another provider, e.g. after a reset.
func (h *IndicatorPanel) SetProvider(provider parameterProvider) {
	h.provider = provider
	h.rows = h.rows[:0]
}

// Update refreshes the rows using p for labels and numbers.
func (h *IndicatorPanel) Update(p *message.Printer) {
	h.rows = h.rows[:0]
	if h.provider == nil {
		return
	}
	for _, group := range h.provider.Parameters().Groups {
		if group.Name != indicatorGroup {
			continue
		}
		for _, param := range group.Params {
			h.rows = append(h.rows, IndicatorRow{
				Label: p.Sprintf(param.Label),
				Value: i18n.FormatParam(p, param),
				Tone:  param.Tone,
			})
		}
	}
}

// Rows returns the rows computed by the last Update.
func (h *IndicatorPanel) Rows() []IndicatorRow {
	return h.rows
}
