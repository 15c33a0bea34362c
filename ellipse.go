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

import "fmt"

// Ellipse rasterizes the axis-aligned ellipse with center (xc, yc) and
// radii rx (horizontal) and ry (vertical), using the two-region midpoint
// algorithm.
//
// One quadrant is computed and reflected through (±x,±y). The result is an
// ordered contour, starting at (xc, yc+ry) and running clockwise, in which
// every point occurs exactly once. Consecutive points are 8-connected,
// except at the tips of very flat ellipses where several points lie on the
// axis; the point set as a whole is always 8-connected.
//
// If rx or ry is not positive, an error wrapping [ErrInvalidGeometry] is
// returned.
func Ellipse(xc, yc, rx, ry int) ([]Point, error) {
	if rx <= 0 || ry <= 0 {
		Logger().Debug("ellipse rejected", "xc", xc, "yc", yc, "rx", rx, "ry", ry)
		return nil, fmt.Errorf("ellipse radii %d, %d: %w", rx, ry, ErrInvalidGeometry)
	}

	q := ellipseQuadrant(int64(rx), int64(ry))
	n := len(q)
	pts := make([]Point, 0, 4*n)
	for i := range n {
		pts = append(pts, Point{X: xc + q[i].X, Y: yc + q[i].Y})
	}
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, Point{X: xc + q[i].X, Y: yc - q[i].Y})
	}
	for i := range n {
		pts = append(pts, Point{X: xc - q[i].X, Y: yc - q[i].Y})
	}
	for i := n - 1; i >= 0; i-- {
		pts = append(pts, Point{X: xc - q[i].X, Y: yc + q[i].Y})
	}
	return Dedup(pts), nil
}

// ellipseQuadrant returns the offsets of the first quadrant, from (0, ry)
// to (rx, 0).
//
// The decision parameters of both regions are kept multiplied by 4, which
// makes them integers without changing any of the sign tests:
//
//	4·p1 = 4ry² - 4rx²ry + rx²
//	4·p2 = ry²(2x+1)² + 4rx²(y-1)² - 4rx²ry²
func ellipseQuadrant(rx, ry int64) []Point {
	rx2 := rx * rx
	ry2 := ry * ry

	q := make([]Point, 0, rx+ry+1)
	x, y := int64(0), ry

	// Region 1: |slope| < 1, x advances on every step.
	p := 4*ry2 - 4*rx2*ry + rx2
	for ry2*x < rx2*y {
		q = append(q, Point{X: int(x), Y: int(y)})
		x++
		if p < 0 {
			p += 4 * (2*ry2*x + ry2)
		} else {
			y--
			p += 4 * (2*ry2*x - 2*rx2*y + ry2)
		}
	}

	// Region 2: |slope| >= 1, y decreases on every step.
	p = ry2*(2*x+1)*(2*x+1) + 4*rx2*(y-1)*(y-1) - 4*rx2*ry2
	for y >= 0 {
		q = append(q, Point{X: int(x), Y: int(y)})
		if p > 0 {
			y--
			p += 4 * (rx2 - 2*rx2*y)
		} else {
			x++
			y--
			p += 4 * (2*ry2*x - 2*rx2*y + rx2)
		}
	}

	// For very flat ellipses region 2 reaches y == 0 before x == rx;
	// the rest of the quadrant lies on the axis.
	x = int64(q[len(q)-1].X)
	for x < rx {
		x++
		q = append(q, Point{X: int(x), Y: 0})
	}
	return q
}
