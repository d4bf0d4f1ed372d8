// Package parcoord is an experimental package to produce parallel
// coordinate plots.
//
// It tries to use or enhance  gonum.org/v1/plot.
//
// Dimension Axes
//
// In a parallel coordinate plot every data dimension is drawn as its
// own axis and every multivariate record is a polyline crossing all
// axes. A chart with series of length up to n provisions n axes, one
// per data index; axes beyond the configured ones are synthesized with
// empty option sets. The axis at ordinal position i of n axes is placed
// at the fraction (i+0.5)/n of the plot area, so the axes are spread
// evenly with half a slot of margin at both ends. An inverted chart
// transposes the arrangement, a polar chart arranges the axes as the
// spokes of a star plot.
//
// Unlike in an ordinary plot every series is bound to every axis, and
// an axis scales only the single data index it represents: series of
// unequal length and missing values are tolerated, a missing value
// becomes a null point which keeps its slot in the polyline.
//
// Scales
//
// The concept of a scale is taken from ggplot2. Each dimension axis
// owns one scale which may be linear, discrete, time or logarithmic;
// the scale autoscales to the data of its dimension unless fixed edges
// are configured.
package parcoord
