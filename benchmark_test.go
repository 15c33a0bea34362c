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

package pixel_test

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkCircle measures the circle algorithms, including writing the
// pixels into an image.
func BenchmarkCircle(b *testing.B) {
	for _, alg := range []pixel.CircleAlgorithm{pixel.Midpoint, pixel.BresenhamCircle, pixel.Parametric} {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%dx%d", alg, size, size), func(b *testing.B) {
				dst := image.NewAlpha(image.Rect(0, 0, size, size))
				c := size / 2
				r := size * 45 / 100

				b.ReportAllocs()
				for b.Loop() {
					pts, _ := alg.Circle(c, c, r)
					plot(dst, pts)
				}
			})
		}
	}
}

// BenchmarkVectorRing benchmarks x/image/vector filling a one pixel wide
// ring, which covers the same pixels as a rasterized circle.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			radius := float32(size) * 0.45

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, radius+0.5, false)
				addCircleToVector(r, center, center, radius-0.5, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkEllipse(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			c := size / 2

			b.ReportAllocs()
			for b.Loop() {
				pts, _ := pixel.Ellipse(c, c, size*45/100, size*30/100)
				plot(dst, pts)
			}
		})
	}
}

func BenchmarkLine(b *testing.B) {
	for _, alg := range []pixel.LineAlgorithm{pixel.DDA, pixel.Bresenham} {
		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("%s/%dx%d", alg, size, size), func(b *testing.B) {
				dst := image.NewAlpha(image.Rect(0, 0, size, size))

				b.ReportAllocs()
				for b.Loop() {
					plot(dst, alg.Line(0, 0, size-1, size/3))
				}
			})
		}
	}
}

// BenchmarkAllCases runs the default rasterizer over the whole test case
// table.
func BenchmarkAllCases(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	r := pixel.NewRasterizer()
	for b.Loop() {
		for _, tc := range cases {
			switch s := tc.Shape.(type) {
			case testcases.Line:
				r.DrawLine(s.X1, s.Y1, s.X2, s.Y2)
			case testcases.Circle:
				r.DrawCircle(s.XC, s.YC, s.R)
			case testcases.Ellipse:
				r.DrawEllipse(s.XC, s.YC, s.RX, s.RY)
			}
		}
	}
}

func plot(dst *image.Alpha, pts []pixel.Point) {
	for _, p := range pts {
		dst.SetAlpha(p.X, p.Y, color.Alpha{255})
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
