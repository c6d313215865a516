package render

import colorful "github.com/lucasb-eyer/go-colorful"

// Stop pins a ramp color at a position in [0, 1].
type Stop struct {
	Pos float64
	Col colorful.Color
}

// Ramp is a piecewise color gradient evaluated in Lab space. Stops
// must be ordered by ascending position, first at 0 and last at 1.
type Ramp []Stop

// HeatRamp returns the stock intensity ramp for difference heatmaps:
// black through red and yellow to white.
func HeatRamp() Ramp {
	return Ramp{
		{Pos: 0.0, Col: colorful.Color{R: 0, G: 0, B: 0}},
		{Pos: 0.4, Col: colorful.Color{R: 0.8, G: 0.1, B: 0.1}},
		{Pos: 0.8, Col: colorful.Color{R: 1, G: 0.9, B: 0.2}},
		{Pos: 1.0, Col: colorful.Color{R: 1, G: 1, B: 1}},
	}
}

// At evaluates the ramp at t, clamping t to [0, 1]. Colors between
// stops blend perceptually in Lab space.
func (r Ramp) At(t float64) colorful.Color {
	if len(r) == 0 {
		return colorful.Color{}
	}
	if t <= r[0].Pos {
		return r[0].Col
	}
	for i := 0; i < len(r)-1; i++ {
		a, b := r[i], r[i+1]
		if t <= b.Pos {
			span := b.Pos - a.Pos
			if span <= 0 {
				return b.Col
			}
			return a.Col.BlendLab(b.Col, (t-a.Pos)/span).Clamped()
		}
	}
	return r[len(r)-1].Col
}
