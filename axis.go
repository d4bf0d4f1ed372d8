package parcoord

// ----------------------------------------------------------------------------
// Axis

// An Axis represents one data dimension of a parallel coordinate chart.
// Every series is bound to every axis; the axis at ordinal position i
// scales the values at index i of all bound series.
type Axis struct {
	// Position is the 0-based ordinal position of the axis among the
	// chart's dimension axes.
	Position int

	// Scale maps the dimension's values to the unit interval.
	Scale *Scale

	// Geometry is the axis' placement inside the plot area, computed
	// from Position and the total axis count.
	Geometry Geometry

	// Options the axis was provisioned with, already merged with the
	// chart's shared per-axis options.
	Options AxisOptions

	// own holds the axis' per-dimension options before merging. Shared
	// option updates re-merge on top of these, never on the merged
	// result, so an updated shared value is not shadowed by the value
	// it replaced.
	own AxisOptions

	// Series contains every series bound to this axis.
	Series []*Series

	// dirty marks the axis' extremes as stale. forceRedraw is set when
	// a series was removed, since the extremes may shrink.
	dirty       bool
	forceRedraw bool
}

// newAxis returns an axis at ordinal position pos provisioned from its
// per-dimension options own layered on top of the shared options.
func newAxis(pos int, own, shared AxisOptions) *Axis {
	merged := shared.merge(own)
	return &Axis{
		Position: pos,
		Scale:    merged.newScale(),
		Geometry: unsetGeometry(),
		Options:  merged,
		own:      own,
		dirty:    true,
	}
}

// setGeometry places a among count axes arranged in the given layout.
func (a *Axis) setGeometry(count int, layout Layout) {
	a.Geometry = axisGeometry(a.Position, count, layout)
}

// applyOptions re-applies the shared options to the axis. The axis'
// per-dimension options act as overrides on top of opts, so shared
// options never clobber explicit per-dimension settings. The axis is
// marked dirty; recomputation is left to the next Range call.
func (a *Axis) applyOptions(opts AxisOptions) {
	merged := opts.merge(a.own)
	a.Options = merged

	s := merged.newScale()
	s.Data = a.Scale.Data
	a.Scale = s
	a.dirty = true
}

// bind adds s to the axis' owned series and marks the axis dirty.
func (a *Axis) bind(s *Series) {
	a.Series = append(a.Series, s)
	a.dirty = true
}

// unbind removes s from the axis' owned series. The axis is marked both
// dirty and for a forced redraw since its extremes may have been
// derived from s.
func (a *Axis) unbind(s *Series) {
	for i, t := range a.Series {
		if t == s {
			a.Series = append(a.Series[:i], a.Series[i+1:]...)
			break
		}
	}
	a.dirty = true
	a.forceRedraw = true
}

// updateExtremes recomputes the axis' data range from the values at the
// axis' own dimension index of every bound series. Series shorter than
// Position+1 and NaN values are skipped, so series of unequal length
// and explicit nulls are tolerated. This intentionally ignores the
// other indices of the bound series: an axis scales one dimension only.
func (a *Axis) updateExtremes() {
	a.Scale.Data = unsetInterval()
	for _, s := range a.Series {
		if a.Position >= len(s.Values) {
			continue
		}
		a.Scale.Data.Update(s.Values[a.Position])
	}
	a.dirty = false
}

// updateExtremesAll is the default extremes computation of an ordinary
// chart: the data range covers all values of every bound series.
func (a *Axis) updateExtremesAll() {
	a.Scale.Data = unsetInterval()
	for _, s := range a.Series {
		a.Scale.Data.Update(s.Values...)
	}
	a.dirty = false
}
