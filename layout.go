package parcoord

import "math"

// ----------------------------------------------------------------------------
// Layout

// A Layout determines how the dimension axes are arranged inside the
// plot area. The layout is resolved once from the chart options; all
// later geometry computations branch on the resolved value instead of
// re-checking the polar and inverted flags.
type Layout int

const (
	// Vertical places the dimension axes as vertical lines spread
	// evenly along the width of the plot area.
	Vertical Layout = iota
	// Horizontal places the dimension axes as horizontal lines spread
	// evenly along the height of the plot area (an inverted chart).
	Horizontal
	// Radial arranges the dimension axes as spokes of a polar chart.
	Radial
)

// String returns the name of l.
func (l Layout) String() string {
	return []string{"vertical", "horizontal", "radial"}[int(l)]
}

// resolveLayout turns the polar and inverted chart flags into a Layout.
// Polar wins over inverted, matching the precedence of the flags in the
// chart options.
func resolveLayout(polar, inverted bool) Layout {
	switch {
	case polar:
		return Radial
	case inverted:
		return Horizontal
	default:
		return Vertical
	}
}

// ----------------------------------------------------------------------------
// Geometry

// Geometry is the placement of one dimension axis inside the plot area.
// Left, Width, Height and Top are fractions of the plot area; a NaN
// component is unset and must not be used. Angle is only set for radial
// layouts and is measured in degrees, clockwise from the top.
type Geometry struct {
	Left, Width, Height, Top float64
	Angle                    float64
}

func unsetGeometry() Geometry {
	nan := math.NaN()
	return Geometry{Left: nan, Width: nan, Height: nan, Top: nan, Angle: nan}
}

// Equal reports whether g and h agree component-wise, treating NaN
// components as equal.
func (g Geometry) Equal(h Geometry) bool {
	eq := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return eq(g.Left, h.Left) && eq(g.Width, h.Width) &&
		eq(g.Height, h.Height) && eq(g.Top, h.Top) && eq(g.Angle, h.Angle)
}

// axisGeometry computes the placement of the axis at ordinal position pos
// of count axes in total. The axes are spread evenly with half a slot of
// margin at both ends, i.e. at the fractions (pos+0.5)/count.
//
// In a vertical layout the offset is the Left fraction and the Width is
// zero: an axis occupies a single line, not a band. The orthogonal pair
// (Top, Height) is reset to unset so no stale values survive an
// orientation flip. A horizontal layout is the transposed arrangement.
//
// axisGeometry is pure; calling it twice with the same arguments yields
// the same geometry.
func axisGeometry(pos, count int, layout Layout) Geometry {
	g := unsetGeometry()
	frac := (float64(pos) + 0.5) / float64(count)

	switch layout {
	case Radial:
		g.Angle = 360 * frac
	case Horizontal:
		g.Top = frac
		g.Height = 0
	default:
		g.Left = frac
		g.Width = 0
	}

	return g
}
