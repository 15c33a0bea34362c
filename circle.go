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

// CircleAlgorithm identifies a method for computing one octant of a circle.
//
// All methods compute the octant from (0, r) to the diagonal x == y and
// reflect it through the eight symmetries (±x,±y), (±y,±x). The result is
// an ordered contour, starting at (xc, yc+r) and running clockwise, in
// which every point occurs exactly once.
type CircleAlgorithm int

const (
	// Midpoint uses the decision variable d = 1-r.
	Midpoint CircleAlgorithm = iota

	// BresenhamCircle uses the decision variable d = 3-2r.
	BresenhamCircle

	// Parametric samples the octant at angular steps of 1/r radians and
	// rounds to the nearest grid point.
	Parametric
)

func (a CircleAlgorithm) String() string {
	switch a {
	case Midpoint:
		return "midpoint"
	case BresenhamCircle:
		return "bresenham"
	case Parametric:
		return "parametric"
	default:
		return fmt.Sprintf("CircleAlgorithm(%d)", int(a))
	}
}

// ParseCircleAlgorithm returns the circle algorithm with the given name,
// as returned by [CircleAlgorithm.String].
func ParseCircleAlgorithm(name string) (CircleAlgorithm, error) {
	for _, a := range []CircleAlgorithm{Midpoint, BresenhamCircle, Parametric} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown circle algorithm %q", name)
}

// Circle rasterizes the circle with center (xc, yc) and radius r using
// algorithm a. Unknown values of a fall back to Midpoint.
//
// A negative radius gives an error wrapping [ErrInvalidGeometry].
// A zero radius gives the single point (xc, yc).
func (a CircleAlgorithm) Circle(xc, yc, r int) ([]Point, error) {
	if r < 0 {
		Logger().Debug("circle rejected", "xc", xc, "yc", yc, "r", r)
		return nil, fmt.Errorf("circle radius %d: %w", r, ErrInvalidGeometry)
	}
	if r == 0 {
		return []Point{{X: xc, Y: yc}}, nil
	}

	var oct []Point
	switch a {
	case BresenhamCircle:
		oct = bresenhamOctant(r)
	case Parametric:
		oct = parametricOctant(r)
	default:
		oct = midpointOctant(r)
	}
	return reflectOctant(xc, yc, oct), nil
}

// Circle rasterizes the circle with center (xc, yc) and radius r using the
// midpoint algorithm. See [CircleAlgorithm.Circle] for details.
func Circle(xc, yc, r int) ([]Point, error) {
	return Midpoint.Circle(xc, yc, r)
}

// midpointOctant returns the offsets (x, y), 0 <= x <= y, of the octant
// starting at (0, r).
func midpointOctant(r int) []Point {
	oct := make([]Point, 0, r)
	x, y := 0, r
	d := 1 - r
	for x <= y {
		oct = append(oct, Point{X: x, Y: y})
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
	return oct
}

// bresenhamOctant is like midpointOctant, with the decision variable scaled
// to avoid the half-integer midpoint.
func bresenhamOctant(r int) []Point {
	oct := make([]Point, 0, r)
	x, y := 0, r
	d := 3 - 2*r
	for x <= y {
		oct = append(oct, Point{X: x, Y: y})
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	return oct
}

func parametricOctant(r int) []Point {
	rf := float64(r)
	step := 1 / rf
	oct := make([]Point, 0, r)
	for theta := 0.0; theta < math.Pi/4; theta += step {
		oct = append(oct, Point{
			X: int(math.Round(rf * math.Sin(theta))),
			Y: int(math.Round(rf * math.Cos(theta))),
		})
	}
	// the diagonal itself, so that the octants meet
	diag := int(math.Round(rf * math.Sqrt2 / 2))
	return append(oct, Point{X: diag, Y: diag})
}

// reflectOctant maps the octant offsets to all eight octants around
// (xc, yc). Each octant is traversed in the direction which continues the
// previous one, so that the concatenation is a closed contour.
func reflectOctant(xc, yc int, oct []Point) []Point {
	n := len(oct)
	pts := make([]Point, 0, 8*n)
	fwd := func(mx, my int, swap bool) {
		for i := range n {
			pts = append(pts, octantPoint(xc, yc, oct[i], mx, my, swap))
		}
	}
	rev := func(mx, my int, swap bool) {
		for i := n - 1; i >= 0; i-- {
			pts = append(pts, octantPoint(xc, yc, oct[i], mx, my, swap))
		}
	}

	fwd(1, 1, false)  // (0,r) to the diagonal
	rev(1, 1, true)   // down to (r,0)
	fwd(1, -1, true)  // (r,0) to the diagonal
	rev(1, -1, false) // down to (0,-r)
	fwd(-1, -1, false)
	rev(-1, -1, true)
	fwd(-1, 1, true)
	rev(-1, 1, false) // back up to (0,r)

	return Dedup(pts)
}

func octantPoint(xc, yc int, p Point, mx, my int, swap bool) Point {
	x, y := p.X, p.Y
	if swap {
		x, y = y, x
	}
	return Point{X: xc + mx*x, Y: yc + my*y}
}
