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
	"math"
)

// LineAlgorithm identifies a line rasterization method.
//
// Every method returns max(|dx|,|dy|)+1 points, starting at the first
// endpoint and ending at the second, and consecutive points differ by at
// most one in each coordinate.
type LineAlgorithm int

const (
	// DDA steps along the major axis and accumulates the real-valued slope.
	DDA LineAlgorithm = iota

	// Bresenham steps along the major axis using an integer decision
	// variable.
	Bresenham
)

func (a LineAlgorithm) String() string {
	switch a {
	case DDA:
		return "dda"
	case Bresenham:
		return "bresenham"
	default:
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
}

// ParseLineAlgorithm returns the line algorithm with the given name,
// as returned by [LineAlgorithm.String].
func ParseLineAlgorithm(name string) (LineAlgorithm, error) {
	for _, a := range []LineAlgorithm{DDA, Bresenham} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown line algorithm %q", name)
}

// Line rasterizes the segment from (x1, y1) to (x2, y2) using algorithm a.
// Unknown values of a fall back to DDA.
func (a LineAlgorithm) Line(x1, y1, x2, y2 int) []Point {
	if a == Bresenham {
		return bresenhamLine(x1, y1, x2, y2)
	}
	return Line(x1, y1, x2, y2)
}

// Line rasterizes the segment from (x1, y1) to (x2, y2) using the digital
// differential analyzer. A zero-length segment gives the single point
// (x1, y1).
func Line(x1, y1, x2, y2 int) []Point {
	dx := x2 - x1
	dy := y2 - y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return []Point{{X: x1, Y: y1}}
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	pts := make([]Point, 0, steps+1)
	x, y := float64(x1), float64(y1)
	for range steps + 1 {
		pts = append(pts, Point{X: int(math.Round(x)), Y: int(math.Round(y))})
		x += xInc
		y += yInc
	}
	return pts
}

// bresenhamLine is the all-octant form of Bresenham's algorithm. The major
// axis advances on every step; the minor axis advances when the doubled
// error term becomes positive.
func bresenhamLine(x1, y1, x2, y2 int) []Point {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := sign(x2-x1), sign(y2-y1)

	steps := max(dx, dy)
	pts := make([]Point, 0, steps+1)
	x, y := x1, y1
	pts = append(pts, Point{X: x, Y: y})

	if dx >= dy {
		d := 2*dy - dx
		for range steps {
			if d > 0 {
				y += sy
				d -= 2 * dx
			}
			d += 2 * dy
			x += sx
			pts = append(pts, Point{X: x, Y: y})
		}
	} else {
		d := 2*dx - dy
		for range steps {
			if d > 0 {
				x += sx
				d -= 2 * dy
			}
			d += 2 * dx
			y += sy
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
