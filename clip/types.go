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

// Package clip clips line segments against an axis-aligned rectangular
// window.
//
// Two algorithms are provided, [LiangBarsky] and [CohenSutherland]. They
// satisfy the same contract and agree, up to rounding, on the clipped
// coordinates. Points on the window boundary count as inside.
package clip

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel"
)

// Segment is a directed line segment from P1 to P2.
type Segment struct {
	P1, P2 vec.Vec2
}

// Seg returns the segment from (x1, y1) to (x2, y2).
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: vec.Vec2{X: x1, Y: y1}, P2: vec.Vec2{X: x2, Y: y2}}
}

// IsPoint reports whether the segment has zero length.
func (s Segment) IsPoint() bool {
	return s.P1 == s.P2
}

// Path returns the segment as a one-line path for a renderer.
func (s Segment) Path() *path.Data {
	return (&path.Data{}).MoveTo(s.P1).LineTo(s.P2)
}

func (s Segment) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
}

// Window is an axis-aligned clip rectangle.
// A valid window has XMin <= XMax and YMin <= YMax.
type Window struct {
	XMin, YMin, XMax, YMax float64
}

// NewWindow returns the window spanned by two opposite corners, given in
// any order.
func NewWindow(x1, y1, x2, y2 float64) Window {
	return Window{
		XMin: min(x1, x2),
		YMin: min(y1, y2),
		XMax: max(x1, x2),
		YMax: max(y1, y2),
	}
}

// WindowFromRect converts a rectangle to a window.
func WindowFromRect(r rect.Rect) Window {
	return Window{XMin: r.LLx, YMin: r.LLy, XMax: r.URx, YMax: r.URy}
}

// Rect converts the window to a rectangle.
func (w Window) Rect() rect.Rect {
	return rect.Rect{LLx: w.XMin, LLy: w.YMin, URx: w.XMax, URy: w.YMax}
}

// Validate returns an error wrapping [pixel.ErrInvalidGeometry] if the
// window corners are not ordered.
func (w Window) Validate() error {
	if w.XMin > w.XMax || w.YMin > w.YMax {
		pixel.Logger().Debug("clip window rejected", "window", w.String())
		return fmt.Errorf("clip window %s: %w", w, pixel.ErrInvalidGeometry)
	}
	return nil
}

// Contains reports whether p lies inside the window or on its boundary.
func (w Window) Contains(p vec.Vec2) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// clamp returns the point of the window closest to p.
func (w Window) clamp(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: min(max(p.X, w.XMin), w.XMax),
		Y: min(max(p.Y, w.YMin), w.YMax),
	}
}

func (w Window) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", w.XMin, w.XMax, w.YMin, w.YMax)
}

// Kind classifies the outcome of clipping a segment.
type Kind int

const (
	Inside Kind = iota
	Partial
	Outside
)

func (k Kind) String() string {
	switch k {
	case Inside:
		return "inside"
	case Partial:
		return "partial"
	case Outside:
		return "outside"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of clipping one segment. It is one of
// [FullyInside], [PartiallyInside] or [FullyOutside].
type Result interface {
	Kind() Kind
	isResult()
}

// FullyInside means that the whole segment lies in the window.
type FullyInside struct {
	Segment Segment
}

// PartiallyInside means that the segment was shortened.
//
// Inner is the part inside the window, with the same direction as the
// original segment. Outer holds the removed pieces in order along the
// segment: first the piece before Inner.P1 (if P1 was moved), then the
// piece after Inner.P2 (if P2 was moved).
type PartiallyInside struct {
	Inner Segment
	Outer []Segment
}

// FullyOutside means that no part of the segment lies in the window.
type FullyOutside struct {
	Segment Segment
}

func (FullyInside) Kind() Kind     { return Inside }
func (PartiallyInside) Kind() Kind { return Partial }
func (FullyOutside) Kind() Kind    { return Outside }

func (FullyInside) isResult()     {}
func (PartiallyInside) isResult() {}
func (FullyOutside) isResult()    {}

// Visible returns the part of the segment inside the window, and false if
// the result is [FullyOutside].
func Visible(r Result) (Segment, bool) {
	switch r := r.(type) {
	case FullyInside:
		return r.Segment, true
	case PartiallyInside:
		return r.Inner, true
	default:
		return Segment{}, false
	}
}

// shortened builds the result for a segment orig whose accepted part is
// inner. moved1 and moved2 tell whether the respective endpoint was
// replaced by a boundary intersection.
func shortened(orig, inner Segment, moved1, moved2 bool) Result {
	if !moved1 && !moved2 {
		return FullyInside{Segment: orig}
	}
	res := PartiallyInside{Inner: inner}
	if moved1 {
		res.Outer = append(res.Outer, Segment{P1: orig.P1, P2: inner.P1})
	}
	if moved2 {
		res.Outer = append(res.Outer, Segment{P1: inner.P2, P2: orig.P2})
	}
	return res
}

// pointResult classifies a zero-length segment by containment.
func pointResult(s Segment, w Window) Result {
	if w.Contains(s.P1) {
		return FullyInside{Segment: s}
	}
	return FullyOutside{Segment: s}
}
