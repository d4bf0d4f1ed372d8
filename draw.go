package parcoord

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Draw renders the chart onto dc. The scales are prepared first, then
// the axes are drawn, the series translated and drawn as polylines.
//
// Only parallel charts can be drawn: without parallel mode the chart
// merely carries the default series/axis binding and its dimension
// axes have no layout geometry; rendering such an ordinary plot is
// left to gonum.org/v1/plot itself.
func (c *Chart) Draw(dc draw.Canvas) error {
	if !c.opts.Parallel {
		return errors.New("parcoord: chart is not in parallel coordinate mode")
	}
	if err := c.Range(); err != nil {
		return err
	}
	style := c.Style

	if style.Background != nil {
		dc.SetColor(style.Background)
		dc.Fill(dc.Rectangle.Path())
	}

	if c.Title != "" {
		dc.FillText(style.Title, vg.Point{X: dc.Center().X, Y: dc.Max.Y}, c.Title)
		dc.Max.Y -= style.TitleHeight
	}

	inner := c.plotArea(dc)
	c.drawAxes(dc, inner)
	c.translate(inner)
	c.drawSeries(inner)
	if c.Legend() {
		c.drawLegend(dc)
	}

	return nil
}

// plotArea carves the plot area out of dc, leaving room for axis
// titles and tick labels.
func (c *Chart) plotArea(dc draw.Canvas) draw.Canvas {
	style := c.Style
	inner := dc

	if c.layout == Radial {
		pad := style.Axis.TitleHeight + style.Padding
		inner.Min.X += pad
		inner.Min.Y += pad
		inner.Max.X -= pad
		inner.Max.Y -= pad
		return inner
	}

	labels := vg.Length(20) // Ticks and tick labels. TODO: calculate from style
	inner.Min.X += labels + style.Padding
	inner.Max.X -= style.Padding
	inner.Min.Y += labels + style.Padding
	// The shared axis sits opposite its usual side: titles go on top.
	if c.opts.XAxis.Opposite {
		inner.Max.Y -= style.Axis.TitleHeight
	}
	return inner
}

// ticker returns the tick marker of a, falling back to the default
// matching its scale type.
func (a *Axis) ticker() plot.Ticker {
	if a.Scale.Ticker != nil {
		return a.Scale.Ticker
	}
	return transFor(a.Scale.ScaleType).Ticker
}

// drawAxes draws every dimension axis as a line with its ticks, tick
// labels and title.
func (c *Chart) drawAxes(dc, inner draw.Canvas) {
	for _, a := range c.Axes {
		switch c.layout {
		case Radial:
			c.drawRadialAxis(dc, inner, a)
		case Horizontal:
			c.drawHorizontalAxis(dc, inner, a)
		default:
			c.drawVerticalAxis(dc, inner, a)
		}
	}
}

func (c *Chart) drawVerticalAxis(dc, inner draw.Canvas, a *Axis) {
	style := c.Style
	x := inner.Min.X + vg.Length(a.Geometry.Left)*inner.Size().X
	dc.StrokeLine2(style.Axis.Line, x, inner.Min.Y, x, inner.Max.Y)

	ty := inner.Min.Y - style.Padding
	if c.opts.XAxis.Opposite {
		ty = inner.Max.Y + style.Padding
	}
	dc.FillText(style.Axis.Title, vg.Point{X: x, Y: ty}, a.Options.Title)

	t := transFor(a.Scale.ScaleType)
	cy := Interval{float64(inner.Min.Y), float64(inner.Max.Y)}
	for _, tick := range a.ticker().Ticks(a.Scale.Min, a.Scale.Max) {
		y := vg.Length(t.Trans(a.Scale.Interval, cy, tick.Value))
		length := style.Axis.Tick.Length
		if tick.IsMinor() {
			length /= 2
		}
		dc.StrokeLine2(style.Axis.Tick.LineStyle, x-length, y, x, y)
		if tick.IsMinor() {
			continue
		}
		dc.FillText(style.Axis.Tick.Label, vg.Point{X: x - length, Y: y}, tick.Label)
	}
}

func (c *Chart) drawHorizontalAxis(dc, inner draw.Canvas, a *Axis) {
	style := c.Style
	y := inner.Min.Y + vg.Length(a.Geometry.Top)*inner.Size().Y
	dc.StrokeLine2(style.Axis.Line, inner.Min.X, y, inner.Max.X, y)

	title := style.Axis.Title
	title.XAlign = draw.XRight
	dc.FillText(title, vg.Point{X: inner.Min.X - style.Padding, Y: y}, a.Options.Title)

	t := transFor(a.Scale.ScaleType)
	cx := Interval{float64(inner.Min.X), float64(inner.Max.X)}
	for _, tick := range a.ticker().Ticks(a.Scale.Min, a.Scale.Max) {
		x := vg.Length(t.Trans(a.Scale.Interval, cx, tick.Value))
		length := style.Axis.Tick.Length
		if tick.IsMinor() {
			length /= 2
		}
		dc.StrokeLine2(style.Axis.Tick.LineStyle, x, y-length, x, y)
		if tick.IsMinor() {
			continue
		}
		label := style.Axis.Tick.Label
		label.XAlign = draw.XCenter
		label.YAlign = draw.YTop
		dc.FillText(label, vg.Point{X: x, Y: y - length}, tick.Label)
	}
}

func (c *Chart) drawRadialAxis(dc, inner draw.Canvas, a *Axis) {
	style := c.Style
	center := inner.Center()
	size := inner.Size()
	radius := vg.Length(0.5 * math.Min(float64(size.X), float64(size.Y)))
	sin, cos := math.Sincos(a.Geometry.Angle * math.Pi / 180)

	rim := vg.Point{
		X: center.X + vg.Length(float64(radius)*sin),
		Y: center.Y + vg.Length(float64(radius)*cos),
	}
	dc.StrokeLine2(style.Axis.Line, center.X, center.Y, rim.X, rim.Y)

	title := style.Axis.Title
	title.YAlign = -0.3 // draw.YCenter
	pad := float64(style.Padding)
	at := vg.Point{
		X: rim.X + vg.Length(pad*sin),
		Y: rim.Y + vg.Length(pad*cos),
	}
	dc.FillText(title, at, a.Options.Title)
}

// drawSeries strokes every series as a polyline across the axes. Null
// points split the line. Markers are dropped above the boost threshold;
// parallel charts force the threshold to math.MaxInt so they always
// draw markers.
func (c *Chart) drawSeries(inner draw.Canvas) {
	total := 0
	for _, s := range c.Series {
		total += s.Len()
	}
	markers := total <= c.BoostThreshold()

	for _, s := range c.Series {
		var segs [][]vg.Point
		var seg []vg.Point
		for _, p := range s.points {
			if p.Null {
				if len(seg) > 1 {
					segs = append(segs, seg)
				}
				seg = nil
				continue
			}
			seg = append(seg, p.XY)
		}
		if len(seg) > 1 {
			segs = append(segs, seg)
		}
		if len(segs) > 0 {
			inner.StrokeLines(s.Style, segs...)
		}

		if !markers {
			continue
		}
		glyph := draw.GlyphStyle{
			Color:  s.Style.Color,
			Radius: c.Style.Marker.Radius,
			Shape:  draw.CircleGlyph{},
		}
		for _, p := range s.points {
			if p.Null || !p.Inside {
				continue
			}
			inner.DrawGlyph(glyph, p.XY)
		}
	}
}

// drawLegend draws a simple legend in the top right corner of dc.
func (c *Chart) drawLegend(dc draw.Canvas) {
	style := c.Style
	swatch := style.Legend.SwatchSize
	pad := style.Legend.Pad

	y := dc.Max.Y - pad
	for _, s := range c.Series {
		x := dc.Max.X - swatch - pad
		dc.StrokeLine2(s.Style, x, y, x+swatch, y)
		label := style.Legend.Label
		label.XAlign = draw.XRight
		dc.FillText(label, vg.Point{X: x - pad, Y: y}, s.Name)
		y -= swatch + pad
	}
}
