package parcoord

import (
	"math"
	"time"
)

// defaultBoostThreshold is the point count above which series are drawn
// without markers. Parallel charts force the threshold to math.MaxInt
// because the shortcut assumes a single shared y-axis.
const defaultBoostThreshold = 5000

// Options configure a Chart. The zero value is usable: it describes a
// non-parallel chart with all defaults. Option resolution is layered:
// base defaults, then parallel-mode defaults, then whatever the user
// set explicitly.
type Options struct {
	// Title of the chart.
	Title string

	// Parallel enables the parallel coordinate mode.
	Parallel bool

	// Polar arranges the dimension axes radially instead of side by
	// side. Inverted transposes a non-polar chart.
	Polar    bool
	Inverted bool

	// Legend enables or disables the legend. Nil selects the default:
	// enabled for ordinary charts, disabled for parallel charts since
	// they typically show many series.
	Legend *bool

	// BoostThreshold is the total point count above which markers are
	// dropped. Zero selects the default.
	BoostThreshold int

	// XAxis describes the shared axis the dimension axes are placed
	// along. In parallel mode it is forced to a discrete axis on the
	// opposite side of its usual one.
	XAxis AxisOptions

	// Axes holds per-dimension axis options. Missing entries are
	// padded with empty options during provisioning.
	Axes []AxisOptions

	// ParallelAxes holds options shared by every dimension axis. They
	// act as defaults below the per-dimension options in Axes.
	ParallelAxes AxisOptions
}

// AxisOptions describe one axis. All fields are optional; the zero
// value leaves everything to the defaults.
type AxisOptions struct {
	// Title of the axis.
	Title string

	// Type of the axis' scale.
	Type ScaleType

	// Format is a fmt format string applied to the raw point value
	// when building point labels, e.g. "%.1f mm".
	Format string

	// Categories holds the names of a discrete axis' values; a point
	// value v is displayed as Categories[v].
	Categories []string

	// TimeFmt is the time layout used for time axes. Empty selects a
	// layout from the axis' current range.
	TimeFmt string
	// T0 is the reference time of a time axis; point values are
	// offsets from T0 in seconds.
	T0 time.Time

	// Min and Max fix the scale edges. Nil lets autoscaling determine
	// the edge from the data.
	Min, Max *float64

	// Opposite draws the axis title and labels on the opposite side.
	Opposite bool
}

// merge returns o with all fields that are set in over replaced by the
// value from over. It is used to layer the shared ParallelAxes options
// below the per-dimension ones and to fold option updates into the
// stored options.
func (o AxisOptions) merge(over AxisOptions) AxisOptions {
	m := o
	if over.Title != "" {
		m.Title = over.Title
	}
	if over.Type != Linear {
		m.Type = over.Type
	}
	if over.Format != "" {
		m.Format = over.Format
	}
	if over.Categories != nil {
		m.Categories = over.Categories
	}
	if over.TimeFmt != "" {
		m.TimeFmt = over.TimeFmt
	}
	if !over.T0.IsZero() {
		m.T0 = over.T0
	}
	if over.Min != nil {
		m.Min = over.Min
	}
	if over.Max != nil {
		m.Max = over.Max
	}
	if over.Opposite {
		m.Opposite = true
	}
	return m
}

// isZero reports whether no field of o is set.
func (o AxisOptions) isZero() bool {
	return o.Title == "" && o.Type == Linear && o.Format == "" &&
		o.Categories == nil && o.TimeFmt == "" && o.T0.IsZero() &&
		o.Min == nil && o.Max == nil && !o.Opposite
}

// resolve applies the layered defaults to o and returns the effective
// options. The input is not modified.
func (o Options) resolve() Options {
	r := o

	if r.BoostThreshold == 0 {
		r.BoostThreshold = defaultBoostThreshold
	}

	if r.Parallel {
		// Many thin series: no legend unless explicitly requested, and
		// no boost shortcut since it assumes single-axis geometry.
		if r.Legend == nil {
			off := false
			r.Legend = &off
		}
		r.BoostThreshold = math.MaxInt

		// The shared axis carries the dimension positions, not data.
		r.XAxis.Type = Discrete
		r.XAxis.Opposite = true
	} else if r.Legend == nil {
		on := true
		r.Legend = &on
	}

	return r
}

// newScale builds a Scale from axis options.
func (o AxisOptions) newScale() *Scale {
	s := NewScale()
	s.Title = o.Title
	s.ScaleType = o.Type
	s.Categories = o.Categories
	s.TimeFmt = o.TimeFmt
	s.T0 = o.T0
	if o.Min != nil {
		s.FixMin(*o.Min)
	}
	if o.Max != nil {
		s.FixMax(*o.Max)
	}
	s.Ticker = transFor(o.Type).Ticker
	return s
}
