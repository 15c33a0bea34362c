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

import "fmt"

// Clipper is implemented by line clipping methods.
type Clipper interface {
	Clip(s Segment, w Window) (Result, error)
}

// ClipperFunc adapts a clipping function, such as [LiangBarsky], to the
// [Clipper] interface.
type ClipperFunc func(s Segment, w Window) (Result, error)

// Clip calls f(s, w).
func (f ClipperFunc) Clip(s Segment, w Window) (Result, error) {
	return f(s, w)
}

// Algorithm selects one of the clipping methods of this package.
// The zero value is AlgLiangBarsky.
type Algorithm int

const (
	// AlgLiangBarsky selects [LiangBarsky].
	AlgLiangBarsky Algorithm = iota

	// AlgCohenSutherland selects [CohenSutherland].
	AlgCohenSutherland
)

var (
	_ Clipper = AlgLiangBarsky
	_ Clipper = ClipperFunc(CohenSutherland)
)

func (a Algorithm) String() string {
	switch a {
	case AlgLiangBarsky:
		return "liang-barsky"
	case AlgCohenSutherland:
		return "cohen-sutherland"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm returns the algorithm with the given name, as returned by
// [Algorithm.String].
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range []Algorithm{AlgLiangBarsky, AlgCohenSutherland} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown clip algorithm %q", name)
}

// Clip clips s against w using algorithm a.
// Unknown values of a fall back to Liang-Barsky.
func (a Algorithm) Clip(s Segment, w Window) (Result, error) {
	if a == AlgCohenSutherland {
		return CohenSutherland(s, w)
	}
	return LiangBarsky(s, w)
}

// ClipAll clips every segment of segs against w. The window is validated
// first; if it is invalid, no segment is processed and the result is nil.
func (a Algorithm) ClipAll(segs []Segment, w Window) ([]Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	res := make([]Result, len(segs))
	for i, s := range segs {
		r, err := a.Clip(s, w)
		if err != nil {
			// unreachable, the window was checked above
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
