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

package pixel

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position on the integer grid.
type Point struct {
	X, Y int
}

// Pt returns the point (x, y).
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vec converts p to a floating point vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dedup removes every point which equals an earlier point of the sequence.
// The relative order of the remaining points is preserved.
// The result shares the backing array of pts.
func Dedup(pts []Point) []Point {
	seen := make(map[Point]struct{}, len(pts))
	out := pts[:0]
	for _, p := range pts {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Polyline converts a point sequence into a path which connects consecutive
// points by straight lines. If closed is set, the path returns to the first
// point. This is the form in which point data is handed to a renderer.
// An empty sequence gives an empty path.
func Polyline(pts []Point, closed bool) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0].Vec())
	for _, q := range pts[1:] {
		p = p.LineTo(q.Vec())
	}
	if closed {
		p = p.Close()
	}
	return p
}
