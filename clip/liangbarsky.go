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

package clip

import "seehuhn.de/go/geom/vec"

// LiangBarsky clips s against w using the parametric Liang-Barsky method.
//
// The segment is written as P1 + t·(P2-P1), and the interval t ∈ [0, 1] is
// narrowed against each of the four window edges. If the interval becomes
// empty, or the segment is parallel to an edge and outside of it, the
// result is [FullyOutside].
//
// An invalid window gives an error wrapping [pixel.ErrInvalidGeometry].
func LiangBarsky(s Segment, w Window) (Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if s.IsPoint() {
		return pointResult(s, w), nil
	}

	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y

	// p[i] is the rate at which the signed distance to edge i changes along
	// the segment, q[i] is the signed distance of P1 (positive inside).
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		s.P1.X - w.XMin,
		w.XMax - s.P1.X,
		s.P1.Y - w.YMin,
		w.YMax - s.P1.Y,
	}

	t0, t1 := 0.0, 1.0
	for i := range 4 {
		if p[i] == 0 {
			if q[i] < 0 {
				return FullyOutside{Segment: s}, nil
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			// entering
			if r > t1 {
				return FullyOutside{Segment: s}, nil
			}
			if r > t0 {
				t0 = r
			}
		} else {
			// leaving
			if r < t0 {
				return FullyOutside{Segment: s}, nil
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	// Points with t in [t0, t1] lie in the window; clamping only removes
	// rounding errors.
	inner := s
	if t0 > 0 {
		inner.P1 = w.clamp(vec.Vec2{X: s.P1.X + t0*dx, Y: s.P1.Y + t0*dy})
	}
	if t1 < 1 {
		inner.P2 = w.clamp(vec.Vec2{X: s.P1.X + t1*dx, Y: s.P1.Y + t1*dy})
	}
	return shortened(s, inner, t0 > 0, t1 < 1), nil
}
