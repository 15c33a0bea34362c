// seehuhn.de/go/pixel - incremental rasterization and line clipping
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf writes one PDF file per test case, for visual inspection
// of the rasterized points and clip results.
// Run from the module root directory.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/alecthomas/kingpin.v2"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/clip"
	"seehuhn.de/go/pixel/testcases"
)

var (
	outDir   = kingpin.Flag("dir", "Output directory.").Default("testdata/pdf").String()
	category = kingpin.Flag("category", "Only render this category.").String()
	scale    = kingpin.Flag("scale", "PDF points per pixel.").Default("4").Float64()
)

func main() {
	kingpin.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	n := 0
	for _, cat := range slices.Sorted(maps.Keys(testcases.All)) {
		if *category != "" && cat != *category {
			continue
		}
		for _, tc := range testcases.All[cat] {
			name := cat + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath, *scale); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			n++
		}
	}
	slog.Info("wrote PDF files", "dir", *outDir, "count", n)
}

func generatePDF(tc testcases.TestCase, pdfPath string, s float64) error {
	if _, ok := tc.Shape.(testcases.Clip); ok {
		// clip coordinates are already in page units
		s = 1
	}
	w := float64(tc.Width) * s
	h := float64(tc.Height) * s
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// Move the origin to the page center. Both PDF and the test cases
	// have y pointing up.
	page.Transform(matrix.Matrix{s, 0, 0, s, w / 2, h / 2})

	drawPath := func(p *path.Data) {
		k := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
				k++
			case path.CmdLineTo:
				page.LineTo(p.Coords[k].X, p.Coords[k].Y)
				k++
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}
	drawPixels := func(pts []pixel.Point) {
		page.SetFillColor(color.DeviceGray(0.3))
		for _, p := range pts {
			page.Rectangle(float64(p.X)-0.5, float64(p.Y)-0.5, 1, 1)
		}
		page.Fill()
	}
	overlay := func(pts []pixel.Point, closed bool) {
		page.SetStrokeColor(color.DeviceGray(0.8))
		page.SetLineWidth(0.15)
		page.SetLineJoin(graphics.LineJoinRound)
		drawPath(pixel.Polyline(pts, closed))
		page.Stroke()
	}

	switch shape := tc.Shape.(type) {
	case testcases.Line:
		pts := pixel.Line(shape.X1, shape.Y1, shape.X2, shape.Y2)
		drawPixels(pts)
		overlay(pts, false)
	case testcases.Circle:
		pts, err := pixel.Circle(shape.XC, shape.YC, shape.R)
		if err != nil {
			return err
		}
		drawPixels(pts)
		overlay(pts, true)
	case testcases.Ellipse:
		pts, err := pixel.Ellipse(shape.XC, shape.YC, shape.RX, shape.RY)
		if err != nil {
			return err
		}
		drawPixels(pts)
		overlay(pts, true)
	case testcases.Clip:
		res, err := clip.LiangBarsky(shape.Segment, shape.Window)
		if err != nil {
			return err
		}
		win := shape.Window
		page.SetFillColor(color.DeviceGray(0.9))
		page.Rectangle(win.XMin, win.YMin, win.XMax-win.XMin, win.YMax-win.YMin)
		page.Fill()

		page.SetLineCap(graphics.LineCapRound)
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(2)
		if inner, ok := clip.Visible(res); ok {
			drawPath(inner.Path())
			page.Stroke()
		}

		var outer []clip.Segment
		switch r := res.(type) {
		case clip.PartiallyInside:
			outer = r.Outer
		case clip.FullyOutside:
			outer = []clip.Segment{r.Segment}
		}
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(1)
		page.SetLineDash([]float64{4, 3}, 0)
		for _, o := range outer {
			drawPath(o.Path())
		}
		if len(outer) > 0 {
			page.Stroke()
		}
	default:
		return fmt.Errorf("unknown shape %T", tc.Shape)
	}

	return page.Close()
}
