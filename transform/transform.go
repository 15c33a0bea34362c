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

// Package transform applies 2D affine maps to rasterized point sequences.
//
// Matrices follow the PDF convention used by [matrix.Matrix]: the entries
// [a b c d e f] map (x, y) to (a·x + c·y + e, b·x + d·y + f).
// The results are floating point; [Round] maps them back to the grid.
package transform

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel"
)

// Apply maps every point of pts through m.
func Apply(m matrix.Matrix, pts []pixel.Point) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = apply(m, p.Vec())
	}
	return out
}

// ApplyVec is like [Apply] for points which are already floating point.
func ApplyVec(m matrix.Matrix, pts []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		out[i] = apply(m, p)
	}
	return out
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ScaleMatrix returns the matrix which scales by sx, sy with center as the
// fixed point.
func ScaleMatrix(center vec.Vec2, sx, sy float64) matrix.Matrix {
	m := matrix.Scale(sx, sy)
	m[4] = center.X - sx*center.X
	m[5] = center.Y - sy*center.Y
	return m
}

// RotateMatrix returns the matrix which rotates counter-clockwise by deg
// degrees about pivot.
func RotateMatrix(pivot vec.Vec2, deg float64) matrix.Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{
		cos, sin,
		-sin, cos,
		pivot.X - cos*pivot.X + sin*pivot.Y,
		pivot.Y - sin*pivot.X - cos*pivot.Y,
	}
}

// Axis selects the line or point a mirror image is taken across.
type Axis int

const (
	// AxisX mirrors across the horizontal line through the center (y flips).
	AxisX Axis = iota

	// AxisY mirrors across the vertical line through the center (x flips).
	AxisY

	// AxisOrigin mirrors through the center point itself (both flip).
	AxisOrigin
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisOrigin:
		return "origin"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MirrorMatrix returns the reflection across axis through center.
// Unknown axis values give the identity.
func MirrorMatrix(axis Axis, center vec.Vec2) matrix.Matrix {
	switch axis {
	case AxisX:
		return ScaleMatrix(center, 1, -1)
	case AxisY:
		return ScaleMatrix(center, -1, 1)
	case AxisOrigin:
		return ScaleMatrix(center, -1, -1)
	default:
		return matrix.Identity
	}
}

// Scale scales pts by sx, sy about center.
func Scale(pts []pixel.Point, center vec.Vec2, sx, sy float64) []vec.Vec2 {
	return Apply(ScaleMatrix(center, sx, sy), pts)
}

// Rotate rotates pts counter-clockwise by deg degrees about pivot.
func Rotate(pts []pixel.Point, pivot vec.Vec2, deg float64) []vec.Vec2 {
	return Apply(RotateMatrix(pivot, deg), pts)
}

// Mirror reflects pts across axis through center.
func Mirror(pts []pixel.Point, axis Axis, center vec.Vec2) []vec.Vec2 {
	return Apply(MirrorMatrix(axis, center), pts)
}

// Round maps floating point results back to the nearest grid points,
// dropping duplicates.
func Round(pts []vec.Vec2) []pixel.Point {
	out := make([]pixel.Point, len(pts))
	for i, p := range pts {
		out[i] = pixel.Point{X: roundInt(p.X), Y: roundInt(p.Y)}
	}
	return pixel.Dedup(out)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
