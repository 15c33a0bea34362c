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

// Package pixel implements incremental rasterization of lines, circles and
// ellipses on the integer grid.
//
// All functions are pure: they return a freshly allocated point sequence
// owned by the caller and keep no state between calls. They may be used
// concurrently without synchronisation. Line clipping against a rectangular
// window lives in the sub-package [seehuhn.de/go/pixel/clip].
//
// Coordinates use the mathematical orientation (y grows upwards); the package
// never draws anything and has no notion of a screen.
package pixel

//go:generate go run ./testcases/export

import "errors"

// ErrInvalidGeometry is returned (wrapped) when shape parameters violate
// their domain constraints: a negative circle radius, a non-positive ellipse
// radius, or a clip window with xmin > xmax or ymin > ymax.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Rasterizer selects the algorithm variant used for each shape.
// The zero value selects the same defaults as [NewRasterizer].
//
// A Rasterizer holds no buffers and is safe for concurrent use.
type Rasterizer struct {
	// Line selects the line algorithm.
	Line LineAlgorithm

	// Circle selects the circle algorithm.
	Circle CircleAlgorithm
}

// NewRasterizer returns a Rasterizer using DDA lines and midpoint circles.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Line:   DDA,
		Circle: Midpoint,
	}
}

// DrawLine rasterizes the segment from (x1, y1) to (x2, y2) using the
// configured line algorithm.
func (r *Rasterizer) DrawLine(x1, y1, x2, y2 int) []Point {
	return r.Line.Line(x1, y1, x2, y2)
}

// DrawCircle rasterizes the circle with center (xc, yc) and radius rad using
// the configured circle algorithm.
func (r *Rasterizer) DrawCircle(xc, yc, rad int) ([]Point, error) {
	return r.Circle.Circle(xc, yc, rad)
}

// DrawEllipse rasterizes the axis-aligned ellipse with center (xc, yc) and
// radii rx, ry. There is only one ellipse algorithm.
func (r *Rasterizer) DrawEllipse(xc, yc, rx, ry int) ([]Point, error) {
	return Ellipse(xc, yc, rx, ry)
}
