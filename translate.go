package parcoord

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// translate resolves the pixel position of every point of every series
// inside the plot area dc. It runs after Range, i.e. with the per-axis
// extremes already applied.
func (c *Chart) translate(dc draw.Canvas) {
	for _, s := range c.Series {
		c.translateSeries(s, dc)
	}
}

// translateSeries derives the points of s from the dimension axes. A
// NaN value yields a null point which stays in the sequence to keep the
// index alignment with the other dimensions. The series' closest point
// range is tracked as the minimal distance between the primary-axis
// coordinates of consecutive defined points; with fewer than two
// defined points it stays at the math.MaxFloat64 sentinel.
func (c *Chart) translateSeries(s *Series, dc draw.Canvas) {
	s.ensurePoints()
	s.ClosestPointRange = math.MaxFloat64

	prev := math.NaN()
	for i, v := range s.Values {
		pt := &s.points[i]
		pt.label = ""

		if i >= len(c.Axes) || math.IsNaN(v) {
			*pt = Point{Null: true}
			continue
		}
		a := c.Axes[i]

		pt.Null = false
		pt.XY = c.mapPoint(a, v, dc)
		pt.Inside = dc.Contains(pt.XY)

		p := c.primaryCoord(a, pt.XY)
		if !math.IsNaN(prev) {
			if d := math.Abs(p - prev); d < s.ClosestPointRange {
				s.ClosestPointRange = d
			}
		}
		prev = p
	}
}

// mapPoint maps the value v on the dimension axis a to a point inside
// the plot area. The position along the shared axis comes from a's
// computed geometry, the position along the value axis from a's scale.
func (c *Chart) mapPoint(a *Axis, v float64, dc draw.Canvas) vg.Point {
	size := dc.Size()
	t := transFor(a.Scale.ScaleType)

	switch c.layout {
	case Radial:
		center := dc.Center()
		radius := 0.5 * math.Min(float64(size.X), float64(size.Y))
		r := t.Trans(a.Scale.Interval, Interval{0, radius}, v)
		sin, cos := math.Sincos(a.Geometry.Angle * math.Pi / 180)
		return vg.Point{
			X: center.X + vg.Length(r*sin),
			Y: center.Y + vg.Length(r*cos),
		}
	case Horizontal:
		y := dc.Min.Y + vg.Length(a.Geometry.Top)*size.Y
		x := t.Trans(a.Scale.Interval,
			Interval{float64(dc.Min.X), float64(dc.Max.X)}, v)
		return vg.Point{X: vg.Length(x), Y: y}
	default:
		x := dc.Min.X + vg.Length(a.Geometry.Left)*size.X
		y := t.Trans(a.Scale.Interval,
			Interval{float64(dc.Min.Y), float64(dc.Max.Y)}, v)
		return vg.Point{X: x, Y: vg.Length(y)}
	}
}

// primaryCoord extracts the coordinate along the shared axis from a
// translated point: the horizontal position in a vertical layout, the
// vertical position in a horizontal one, the angle in a radial one.
func (c *Chart) primaryCoord(a *Axis, p vg.Point) float64 {
	switch c.layout {
	case Radial:
		return a.Geometry.Angle
	case Horizontal:
		return float64(p.Y)
	default:
		return float64(p.X)
	}
}
