// Package render holds the screen palette and the geometry of the trend
// chart. Nothing here touches the graphics backend.
package render

import "image"

// Chart margins, in pixels.
const (
	chartInsetX      = 20
	chartInsetBottom = 40
	chartInsetTop    = 20
	gridDivisions    = 5
)

// DefaultFloor is the lowest value the chart's vertical axis starts from.
const DefaultFloor = 800.0

// Point is a projected screen position.
type Point struct {
	X, Y float32
}

// Chart projects a value series into a screen rectangle. The vertical
// axis spans min(series, Floor) to max(series, Target).
type Chart struct {
	Bounds image.Rectangle
	Target float64
	Floor  float64
}

// Range returns the vertical axis limits for series.
func (c Chart) Range(series []float64) (lo, hi float64) {
	lo, hi = c.Floor, c.Target
	for _, v := range series {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func (c Chart) y(v, lo, hi float64) float32 {
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	h := float64(c.Bounds.Dy())
	plot := h - chartInsetBottom - chartInsetTop
	return float32(float64(c.Bounds.Max.Y) - chartInsetBottom - (v-lo)/span*plot)
}

// Project maps each value of series to a point. Fewer than two values
// produce no points.
func (c Chart) Project(series []float64) []Point {
	if len(series) < 2 {
		return nil
	}
	lo, hi := c.Range(series)
	left := float64(c.Bounds.Min.X + chartInsetX)
	step := float64(c.Bounds.Dx()-2*chartInsetX) / float64(len(series)-1)
	out := make([]Point, len(series))
	for i, v := range series {
		out[i] = Point{X: float32(left + float64(i)*step), Y: c.y(v, lo, hi)}
	}
	return out
}

// TargetY is the screen row of the target line for series.
func (c Chart) TargetY(series []float64) float32 {
	lo, hi := c.Range(series)
	return c.y(c.Target, lo, hi)
}

// GridRows returns the rows of the horizontal grid lines.
func (c Chart) GridRows() []float32 {
	rows := make([]float32, 0, gridDivisions-1)
	for i := 1; i < gridDivisions; i++ {
		rows = append(rows, float32(c.Bounds.Min.Y+i*c.Bounds.Dy()/gridDivisions))
	}
	return rows
}
