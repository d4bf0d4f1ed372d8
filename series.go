package parcoord

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Series

// A Series is one multivariate record: one value per dimension. It is
// drawn as a polyline crossing all dimension axes.
type Series struct {
	// Name of the series, shown in the legend.
	Name string

	// Values holds one value per dimension. A NaN value marks the
	// dimension as missing; the corresponding point becomes a null
	// point which is kept in the sequence to preserve the index
	// alignment with the axes.
	Values []float64

	// Style of the connecting line. A zero style is filled in from the
	// chart's style and color palette when the series is added.
	Style draw.LineStyle

	// XAxis and YAxis are the nominal axes of the series. In parallel
	// mode they are only defaults; each point resolves its own axis by
	// dimension index.
	XAxis, YAxis *Axis

	// ClosestPointRange is the minimal pixel distance between the
	// primary-axis coordinates of consecutive points, used as a
	// hit-testing tolerance. It is math.MaxFloat64 while fewer than
	// two points have been translated.
	ClosestPointRange float64

	points []Point
}

// NewSeries returns a series over the given per-dimension values.
func NewSeries(name string, values ...float64) *Series {
	return &Series{
		Name:              name,
		Values:            values,
		ClosestPointRange: math.MaxFloat64,
	}
}

// Len returns the number of dimensions the series has values for.
func (s *Series) Len() int { return len(s.Values) }

// Points returns the translated points of s. The slice is valid after
// the owning chart translated the series and is recomputed on each
// translation.
func (s *Series) Points() []Point { return s.points }

func (s *Series) ensurePoints() {
	if len(s.points) != len(s.Values) {
		s.points = make([]Point, len(s.Values))
	}
}

// ----------------------------------------------------------------------------
// Point

// A Point is the resolved position of one series value on its dimension
// axis. Points are derived state; they are recomputed whenever the
// chart is translated.
type Point struct {
	// XY is the position inside the plot area.
	XY vg.Point

	// Null marks a point whose dimension value is missing. Null points
	// are excluded from line and marker rendering.
	Null bool

	// Inside reports whether the point lies inside the plot area.
	Inside bool

	// label caches the resolved display string of the point's value.
	label string
}
