package parcoord

import "fmt"

var debug = false

// ----------------------------------------------------------------------------
// Chart

// A Chart is a parallel coordinate plot: every series is a polyline
// crossing one axis per data dimension. The chart owns its axes and
// series for its whole lifetime; all methods are to be called from a
// single goroutine.
type Chart struct {
	// Title of the chart.
	Title string

	// Style controls the appearance of the chart.
	Style Style

	// X is the shared axis the dimension axes are positioned along. In
	// parallel mode it is discrete: its values are the axis positions.
	X *Axis

	// Axes holds the dimension axes, one per data index present in
	// any series.
	Axes []*Axis

	// Series holds all series of the chart.
	Series []*Series

	user   Options // options as given by the caller
	opts   Options // resolved options
	layout Layout
	dims   int
}

// NewChart creates a chart from opts and binds the given series to it.
func NewChart(opts Options, series ...*Series) *Chart {
	c := &Chart{
		Title: opts.Title,
		Style: DefaultStyle(12),
		user:  opts,
		opts:  opts.resolve(),
	}
	c.layout = resolveLayout(c.opts.Polar, c.opts.Inverted)
	c.dims = dimensionCount(series)
	c.provision()
	for _, s := range series {
		c.AddSeries(s)
	}
	return c
}

// dimensionCount scans the series for the highest data index used by
// any of them: max over the series of len-1, or 0 if no series carries
// data.
func dimensionCount(series []*Series) int {
	n := 0
	for _, s := range series {
		if d := s.Len() - 1; d > n {
			n = d
		}
	}
	return n
}

// DimensionCount returns the highest data index any of the chart's
// series has a value for.
func (c *Chart) DimensionCount() int { return c.dims }

// provision builds the chart's axes from the stored options. In
// parallel mode the per-dimension option list is padded with empty
// placeholders until its length exceeds the dimension count, so there
// is one axis per data index present in any series. The shared options
// are layered below each dimension's own options.
func (c *Chart) provision() {
	c.X = newAxis(0, c.opts.XAxis, AxisOptions{})

	if !c.opts.Parallel {
		// Ordinary chart: a single value axis.
		ao := AxisOptions{}
		if len(c.opts.Axes) > 0 {
			ao = c.opts.Axes[0]
		}
		c.Axes = []*Axis{newAxis(0, ao, AxisOptions{})}
		return
	}

	for len(c.opts.Axes) <= c.dims {
		c.opts.Axes = append(c.opts.Axes, AxisOptions{})
	}

	c.Axes = make([]*Axis, len(c.opts.Axes))
	for i, ao := range c.opts.Axes {
		a := newAxis(i, ao, c.opts.ParallelAxes)
		a.setGeometry(len(c.opts.Axes), c.layout)
		c.Axes[i] = a
	}

	// The shared axis spans the dimension slots; its category names
	// are the dimension titles.
	c.X.Scale.ScaleType = Discrete
	c.X.Scale.SetExtremes(0, float64(len(c.Axes)-1))
	names := make([]string, len(c.Axes))
	for i, a := range c.Axes {
		names[i] = a.Options.Title
	}
	c.X.Scale.Categories = names
}

// reprovision rebuilds the axes and rebinds every series.
func (c *Chart) reprovision() {
	c.provision()
	for _, s := range c.Series {
		c.bind(s)
	}
}

// AddSeries adds s to the chart. In parallel mode the series is bound
// to every axis, not only to its nominal x/y pair; if s is longer than
// any series seen so far the missing axes are provisioned first.
func (c *Chart) AddSeries(s *Series) {
	c.Series = append(c.Series, s)
	if s.Style.Color == nil {
		s.Style = c.Style.lineStyle(len(c.Series) - 1)
	}

	if c.opts.Parallel {
		if d := s.Len() - 1; d > c.dims {
			c.dims = d
			c.reprovision()
			return
		}
	}
	c.bind(s)
}

// bind attaches s to the chart's axes. With parallel mode off this is
// the default binding: the series belongs to its nominal axis pair
// only. With parallel mode on the series is inserted into every axis'
// owned series; the nominal pair is kept as a default, actual per-point
// axis resolution happens during translation.
func (c *Chart) bind(s *Series) {
	s.XAxis = c.X
	s.YAxis = c.Axes[0]

	if !c.opts.Parallel {
		c.Axes[0].bind(s)
		return
	}
	c.X.bind(s)
	for _, a := range c.Axes {
		a.bind(s)
	}
}

// RemoveSeries removes s from the chart and from every axis' owned
// series, marking each axis for a forced recompute: any axis may have
// been tracking extremes derived from s.
func (c *Chart) RemoveSeries(s *Series) {
	for i, t := range c.Series {
		if t == s {
			c.Series = append(c.Series[:i], c.Series[i+1:]...)
			break
		}
	}
	c.X.unbind(s)
	for _, a := range c.Axes {
		a.unbind(s)
	}
	s.XAxis, s.YAxis = nil, nil
}

// Update applies an option update. Only the Parallel flag, the Legend
// flag and the shared per-axis options in ParallelAxes can be updated:
// a Parallel change takes effect immediately, shared per-axis options
// are merged into the stored options and re-applied to every existing
// axis. All other fields of opts are ignored; layout flags, titles and
// per-dimension axis options are fixed at construction. Update never
// draws, redrawing is left to the caller.
func (c *Chart) Update(opts Options) {
	modeChanged := opts.Parallel != c.user.Parallel
	axesChanged := !opts.ParallelAxes.isZero()

	c.user.Parallel = opts.Parallel
	if opts.Legend != nil {
		c.user.Legend = opts.Legend
	}
	if axesChanged {
		c.user.ParallelAxes = c.user.ParallelAxes.merge(opts.ParallelAxes)
	}
	c.opts = c.user.resolve()

	if modeChanged {
		c.layout = resolveLayout(c.opts.Polar, c.opts.Inverted)
		c.dims = dimensionCount(c.Series)
		c.reprovision()
		return
	}
	if axesChanged {
		for _, a := range c.Axes {
			a.applyOptions(c.opts.ParallelAxes)
		}
	}
}

// Range prepares all scales of c: stale extremes are recomputed,
// autoscaling constraints applied and unset or degenerate scales
// widened to a usable range.
func (c *Chart) Range() error {
	for _, a := range c.Axes {
		if a.dirty || a.forceRedraw {
			if c.opts.Parallel {
				a.updateExtremes()
			} else {
				a.updateExtremesAll()
			}
			a.forceRedraw = false
		}
		a.Scale.autoscale()
		a.Scale.deDegenerate()
	}

	c.X.Scale.SetExtremes(0, float64(len(c.Axes)-1))
	c.X.Scale.autoscale()
	c.X.Scale.deDegenerate()

	c.debugScales("After Range")

	return nil
}

// Legend reports whether the legend is shown.
func (c *Chart) Legend() bool { return *c.opts.Legend }

// BoostThreshold returns the point count above which markers are
// dropped.
func (c *Chart) BoostThreshold() int { return c.opts.BoostThreshold }

func (c *Chart) debugScales(info string) {
	if !debug {
		return
	}
	fmt.Println(info)
	fmt.Println("    X:", c.X.Scale)
	fmt.Println("    Dimension axes:")
	for _, a := range c.Axes {
		fmt.Printf("        %d %v %s\n", a.Position, a.Geometry, a.Scale)
	}
}
