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

// Outcode is the Cohen-Sutherland region code of a point: a bit mask of
// the window edges the point lies beyond.
type Outcode uint8

// Outcode bits. A point inside the window or on its boundary has code 0.
const (
	OutLeft   Outcode = 1 << iota // x < XMin
	OutRight                      // x > XMax
	OutBottom                     // y < YMin
	OutTop                        // y > YMax
)

// Code returns the region code of p with respect to w.
func (w Window) Code(p vec.Vec2) Outcode {
	var code Outcode
	if p.X < w.XMin {
		code |= OutLeft
	} else if p.X > w.XMax {
		code |= OutRight
	}
	if p.Y < w.YMin {
		code |= OutBottom
	} else if p.Y > w.YMax {
		code |= OutTop
	}
	return code
}

// CohenSutherland clips s against w using the Cohen-Sutherland region code
// method.
//
// Both endpoints are classified by their region codes. The segment is
// accepted once both codes are zero and rejected as soon as the codes share
// a bit. Otherwise an outside endpoint is moved to the violated edge, tried
// in the order top, bottom, right, left, and the test repeats.
//
// An invalid window gives an error wrapping [pixel.ErrInvalidGeometry].
func CohenSutherland(s Segment, w Window) (Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if s.IsPoint() {
		return pointResult(s, w), nil
	}

	p1, p2 := s.P1, s.P2
	code1, code2 := w.Code(p1), w.Code(p2)
	for code1|code2 != 0 {
		if code1&code2 != 0 {
			return FullyOutside{Segment: s}, nil
		}

		codeOut := code1
		if codeOut == 0 {
			codeOut = code2
		}

		// The chosen edge is crossed by the segment, so the divisor
		// below is never zero.
		var p vec.Vec2
		switch {
		case codeOut&OutTop != 0:
			p.X = p1.X + (p2.X-p1.X)*(w.YMax-p1.Y)/(p2.Y-p1.Y)
			p.Y = w.YMax
		case codeOut&OutBottom != 0:
			p.X = p1.X + (p2.X-p1.X)*(w.YMin-p1.Y)/(p2.Y-p1.Y)
			p.Y = w.YMin
		case codeOut&OutRight != 0:
			p.Y = p1.Y + (p2.Y-p1.Y)*(w.XMax-p1.X)/(p2.X-p1.X)
			p.X = w.XMax
		case codeOut&OutLeft != 0:
			p.Y = p1.Y + (p2.Y-p1.Y)*(w.XMin-p1.X)/(p2.X-p1.X)
			p.X = w.XMin
		}

		if codeOut == code1 {
			p1 = p
			code1 = w.Code(p1)
		} else {
			p2 = p
			code2 = w.Code(p2)
		}
	}

	inner := Segment{P1: p1, P2: p2}
	return shortened(s, inner, p1 != s.P1, p2 != s.P2), nil
}
