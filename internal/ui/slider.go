package ui

import (
	"image"
	"math"

	"fiscal-sim/internal/core"
	"fiscal-sim/internal/economy"
)

const handleRadius = 10

// hotFraction is the share of (min+max) above which a slider fill is drawn
// in the warning colour.
const hotFraction = 0.6

// Slider maps horizontal drags on a track to a control's value range.
type Slider struct {
	Control core.ParameterControl
	Track   image.Rectangle
	Value   float64

	dragging bool
}

// NewSlider places a slider on track with an initial value.
func NewSlider(c core.ParameterControl, track image.Rectangle, value float64) *Slider {
	return &Slider{Control: c, Track: track, Value: c.Clamp(value)}
}

// ValueAt converts a cursor column into a value; columns outside the track
// pin to its ends.
func ValueAt(c core.ParameterControl, track image.Rectangle, x int) float64 {
	w := track.Dx()
	if w <= 0 {
		return c.Min
	}
	hx := math.Max(float64(track.Min.X), math.Min(float64(x), float64(track.Max.X)))
	return c.Min + (hx-float64(track.Min.X))/float64(w)*(c.Max-c.Min)
}

func (s *Slider) fraction() float64 {
	span := s.Control.Max - s.Control.Min
	if span <= 0 {
		return 0
	}
	return (s.Value - s.Control.Min) / span
}

// HandleX is the column of the handle centre.
func (s *Slider) HandleX() float64 {
	return float64(s.Track.Min.X) + s.fraction()*float64(s.Track.Dx())
}

// FillWidth is the width of the filled part of the track.
func (s *Slider) FillWidth() float64 {
	return s.fraction() * float64(s.Track.Dx())
}

// Hot reports whether the value is in the upper part of the range.
func (s *Slider) Hot() bool {
	return s.Value >= (s.Control.Min+s.Control.Max)*hotFraction
}

// Press starts a drag when (x, y) hits the handle.
func (s *Slider) Press(x, y int) bool {
	hx := int(math.Round(s.HandleX()))
	cy := (s.Track.Min.Y + s.Track.Max.Y) / 2
	hit := image.Rect(hx-handleRadius, cy-handleRadius, hx+handleRadius, cy+handleRadius)
	s.dragging = pointInRect(x, y, hit)
	return s.dragging
}

// Drag moves the handle to column x while a drag is active.
func (s *Slider) Drag(x int) bool {
	if !s.dragging {
		return false
	}
	s.Value = ValueAt(s.Control, s.Track, x)
	return true
}

// Release ends the drag.
func (s *Slider) Release() { s.dragging = false }

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

// PolicySliders lays out one slider per policy field, taxes in the left
// panel and spending in the right.
func PolicySliders(p economy.Policy) []*Slider {
	controls := economy.PolicyControls()
	out := make([]*Slider, 0, len(controls))
	tax, spend := 0, 0
	for _, c := range controls {
		v, _ := p.Get(c.Key)
		var track image.Rectangle
		if c.Type == core.ParamTypePercent {
			track = SliderTrack(taxSliderX, tax)
			tax++
		} else {
			track = SliderTrack(spendSliderX, spend)
			spend++
		}
		out = append(out, NewSlider(c, track, v))
	}
	return out
}

// PolicyOf reads the slider values back into a policy.
func PolicyOf(sliders []*Slider) economy.Policy {
	p := economy.Baseline()
	for _, s := range sliders {
		p.Set(s.Control.Key, s.Value)
	}
	return p
}
