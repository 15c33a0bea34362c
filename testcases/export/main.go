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

// Command export writes the test cases, together with the output computed
// for them, to JSON. This is the hand-off format for external renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/alecthomas/kingpin.v2"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/clip"
	"seehuhn.de/go/pixel/testcases"
)

var (
	outFile = kingpin.Flag("out", "JSON output file.").Default("testdata/testcases.json").String()
	lineAlg = kingpin.Flag("line", "Line algorithm (dda, bresenham).").Default("dda").String()
	circAlg = kingpin.Flag("circle", "Circle algorithm (midpoint, bresenham, parametric).").Default("midpoint").String()
	clipAlg = kingpin.Flag("clip", "Clip algorithm (liang-barsky, cohen-sutherland).").Default("liang-barsky").String()
	verbose = kingpin.Flag("verbose", "Log rejected geometry.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	if *verbose {
		pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	r := pixel.NewRasterizer()
	var err error
	r.Line, err = pixel.ParseLineAlgorithm(*lineAlg)
	kingpin.FatalIfError(err, "--line")
	r.Circle, err = pixel.ParseCircleAlgorithm(*circAlg)
	kingpin.FatalIfError(err, "--circle")
	alg, err := clip.ParseAlgorithm(*clipAlg)
	kingpin.FatalIfError(err, "--clip")

	var out struct {
		Line      string         `json:"line_algorithm"`
		Circle    string         `json:"circle_algorithm"`
		Clip      string         `json:"clip_algorithm"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.Line = r.Line.String()
	out.Circle = r.Circle.String()
	out.Clip = alg.String()

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(r, alg, category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
	slog.Info("wrote test cases", "file", *outFile, "count", len(out.TestCases))
}

type jsonTestCase struct {
	Name   string         `json:"name"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Shape  string         `json:"shape"`
	Params map[string]int `json:"params,omitempty"`
	Points [][2]int       `json:"points,omitempty"`

	Segment *jsonSegment  `json:"segment,omitempty"`
	Window  []float64     `json:"window,omitempty"`
	Result  string        `json:"result,omitempty"`
	Inner   *jsonSegment  `json:"inner,omitempty"`
	Outer   []jsonSegment `json:"outer,omitempty"`
}

type jsonSegment [2][2]float64

func toJSON(r *pixel.Rasterizer, alg clip.Algorithm, category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	var pts []pixel.Point
	var err error
	switch s := tc.Shape.(type) {
	case testcases.Line:
		jtc.Shape = "line"
		jtc.Params = map[string]int{"x1": s.X1, "y1": s.Y1, "x2": s.X2, "y2": s.Y2}
		pts = r.DrawLine(s.X1, s.Y1, s.X2, s.Y2)
	case testcases.Circle:
		jtc.Shape = "circle"
		jtc.Params = map[string]int{"xc": s.XC, "yc": s.YC, "r": s.R}
		pts, err = r.DrawCircle(s.XC, s.YC, s.R)
	case testcases.Ellipse:
		jtc.Shape = "ellipse"
		jtc.Params = map[string]int{"xc": s.XC, "yc": s.YC, "rx": s.RX, "ry": s.RY}
		pts, err = r.DrawEllipse(s.XC, s.YC, s.RX, s.RY)
	case testcases.Clip:
		jtc.Shape = "clip"
		seg := segmentToJSON(s.Segment)
		jtc.Segment = &seg
		jtc.Window = []float64{s.Window.XMin, s.Window.YMin, s.Window.XMax, s.Window.YMax}
		res, err := alg.Clip(s.Segment, s.Window)
		if err != nil {
			return jtc, err
		}
		jtc.Result = res.Kind().String()
		if p, ok := res.(clip.PartiallyInside); ok {
			inner := segmentToJSON(p.Inner)
			jtc.Inner = &inner
			for _, o := range p.Outer {
				jtc.Outer = append(jtc.Outer, segmentToJSON(o))
			}
		}
		return jtc, nil
	default:
		return jtc, fmt.Errorf("unknown shape %T", tc.Shape)
	}
	if err != nil {
		return jtc, err
	}

	jtc.Points = make([][2]int, len(pts))
	for i, p := range pts {
		jtc.Points[i] = [2]int{p.X, p.Y}
	}
	return jtc, nil
}

func segmentToJSON(s clip.Segment) jsonSegment {
	return jsonSegment{{s.P1.X, s.P1.Y}, {s.P2.X, s.P2.Y}}
}
