// +build ignore

package main

import (
	"math/rand"
	"os"

	"github.com/vdobler/parcoord"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	opts := parcoord.Options{
		Title:    "Parallel Coordinates",
		Parallel: true,
		Axes: []parcoord.AxisOptions{
			{Title: "Weight"},
			{Title: "Power"},
			{Title: "Displacement"},
			{Title: "Consumption"},
			{Title: "Price"},
		},
	}

	chart := parcoord.NewChart(opts)
	for i := 0; i < 12; i++ {
		weight := 900 + 600*rand.Float64()
		power := 40 + 200*rand.Float64()
		disp := 1.0 + 3*rand.Float64()
		cons := 4 + 8*rand.Float64()
		price := 12000 + weight*20 + power*100
		chart.AddSeries(parcoord.NewSeries("",
			weight, power, disp, cons, price))
	}

	img := vgimg.New(800, 500)
	dc := draw.New(img)
	dc.Min.X += vg.Length(10)
	dc.Min.Y += vg.Length(10)
	dc.Max.X -= vg.Length(10)
	dc.Max.Y -= vg.Length(10)

	if err := chart.Draw(dc); err != nil {
		panic(err)
	}

	file, err := os.Create("parcoord.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		panic(err)
	}
}
