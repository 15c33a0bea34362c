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

package testcases

import "seehuhn.de/go/pixel/clip"

// TestCase defines a single named input for the rasterizers or clippers.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Shape  Shape  // the input
	Width  int    // canvas width for visual output, origin at the center
	Height int    // canvas height for visual output
}

// Shape is the input of a test case.
type Shape interface {
	isShape()
}

// Line is a segment for the line rasterizers.
type Line struct {
	X1, Y1, X2, Y2 int
}

func (Line) isShape() {}

// Circle is a circle for the circle rasterizers.
type Circle struct {
	XC, YC, R int
}

func (Circle) isShape() {}

// Ellipse is an axis-aligned ellipse for the ellipse rasterizer.
type Ellipse struct {
	XC, YC, RX, RY int
}

func (Ellipse) isShape() {}

// Clip is a segment and window for the line clippers, together with the
// classification both algorithms must produce.
type Clip struct {
	Segment clip.Segment
	Window  clip.Window
	Want    clip.Kind
}

func (Clip) isShape() {}
