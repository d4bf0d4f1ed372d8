package parcoord

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Chart is drawn.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	// Padding between the drawing area and the plot area.
	Padding vg.Length

	Axis struct {
		Line        draw.LineStyle
		Title       draw.TextStyle
		TitleHeight vg.Length
		Tick        struct {
			draw.LineStyle
			Length vg.Length
			Label  draw.TextStyle
		}
	}

	// Line is the default style of the series polylines; the color is
	// taken from Palette.
	Line struct {
		Width  vg.Length
		Dashes []vg.Length
	}

	// Marker is the glyph drawn on each defined point.
	Marker struct {
		Radius vg.Length
	}

	Legend struct {
		Label      draw.TextStyle
		SwatchSize vg.Length
		Pad        vg.Length
	}

	// Palette provides the series line colors, cycled through in
	// series order.
	Palette []color.Color
}

// lineStyle returns the line style for the i'th series.
func (s Style) lineStyle(i int) draw.LineStyle {
	return draw.LineStyle{
		Color:  s.Palette[i%len(s.Palette)],
		Width:  s.Line.Width,
		Dashes: s.Line.Dashes,
	}
}

// DefaultStyle returns a Style suitable for parallel coordinate plots.
// The baseFontSize is the font size for axis titles, the chart title is
// a bit bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica-Bold", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	fs := Style{}
	fs.Background = color.Transparent

	fs.TitleHeight = scale(baseFontSize, 3)
	fs.Title.Color = color.Black
	fs.Title.Font = titleFont
	fs.Title.XAlign = draw.XCenter
	fs.Title.YAlign = draw.YTop

	fs.Padding = scale(baseFontSize, 0.5)

	fs.Axis.Line.Color = color.Gray16{0x1111}
	fs.Axis.Line.Width = vg.Length(1)

	fs.Axis.Title.Color = color.Black
	fs.Axis.Title.Font = baseFont
	fs.Axis.Title.XAlign = draw.XCenter
	fs.Axis.Title.YAlign = draw.YAlignment(0.3)
	fs.Axis.TitleHeight = scale(baseFontSize, 2)

	fs.Axis.Tick.Color = color.Gray16{0x1111}
	fs.Axis.Tick.Width = vg.Length(1)
	fs.Axis.Tick.Length = vg.Length(4)
	fs.Axis.Tick.Label.Color = color.Black
	fs.Axis.Tick.Label.Font = tickFont
	fs.Axis.Tick.Label.XAlign = draw.XRight
	fs.Axis.Tick.Label.YAlign = -0.3 // draw.YCenter

	fs.Line.Width = vg.Length(1.5)
	fs.Marker.Radius = vg.Length(2)

	fs.Legend.Label.Color = color.Black
	fs.Legend.Label.Font = tickFont
	fs.Legend.Label.XAlign = draw.XLeft
	fs.Legend.Label.YAlign = -0.3 // draw.YCenter
	fs.Legend.SwatchSize = scale(baseFontSize, 1.5)
	fs.Legend.Pad = vg.Length(4)

	fs.Palette = []color.Color{
		color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
		color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
		color.RGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
		color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	}

	return fs
}
