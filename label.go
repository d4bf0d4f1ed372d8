package parcoord

import (
	"fmt"
	"strconv"
	"time"
)

// PointLabel resolves the display string for the value of s at
// dimension index i. The resolution order is: an explicit per-axis
// format, the category name of a discrete axis, time formatting of a
// time axis, and finally the raw value. The resolved string is cached
// on the point, so repeated calls are idempotent.
func (c *Chart) PointLabel(s *Series, i int) string {
	if i < 0 || i >= len(s.Values) {
		return ""
	}
	s.ensurePoints()
	if s.points[i].label != "" {
		return s.points[i].label
	}

	v := s.Values[i]
	label := strconv.FormatFloat(v, 'g', -1, 64)
	if i < len(c.Axes) {
		label = c.Axes[i].formatValue(v)
	}

	s.points[i].label = label
	return label
}

// formatValue renders the raw value v according to the axis' options.
func (a *Axis) formatValue(v float64) string {
	s := a.Scale
	switch {
	case a.Options.Format != "":
		return fmt.Sprintf(a.Options.Format, v)
	case s.ScaleType == Discrete && len(s.Categories) > 0:
		if k := int(v); k >= 0 && k < len(s.Categories) {
			return s.Categories[k]
		}
	case s.ScaleType == Time:
		layout := s.TimeFmt
		if layout == "" {
			layout = defaultTimeFmt(s.span())
		}
		return s.T0.Add(time.Duration(v * float64(time.Second))).Format(layout)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// span returns the extent of a time scale as a duration. An unset scale
// reports zero.
func (s *Scale) span() time.Duration {
	if !s.HasData() {
		return 0
	}
	return time.Duration((s.Data.Max - s.Data.Min) * float64(time.Second))
}

// defaultTimeFmt selects a time layout matching the tick granularity
// a range of the given extent produces.
func defaultTimeFmt(span time.Duration) string {
	switch {
	case span < time.Minute:
		return "15:04:05"
	case span < 24*time.Hour:
		return "15:04"
	case span < 30*24*time.Hour:
		return "Jan _2 15:04"
	case span < 2*365*24*time.Hour:
		return "2006-01-02"
	default:
		return "Jan 2006"
	}
}
