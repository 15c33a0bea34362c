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

package pixel_test

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixel"
)

func pts(xy ...int) []pixel.Point {
	res := make([]pixel.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pixel.Pt(xy[i], xy[i+1]))
	}
	return res
}

func TestLineExact(t *testing.T) {
	want := pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)
	for _, alg := range []pixel.LineAlgorithm{pixel.DDA, pixel.Bresenham} {
		got := alg.Line(0, 0, 5, 2)
		if !slices.Equal(got, want) {
			t.Errorf("%s: got %v, expected %v", alg, got, want)
		}
	}
}

func TestDegenerate(t *testing.T) {
	if got := pixel.Line(5, 5, 5, 5); !slices.Equal(got, pts(5, 5)) {
		t.Errorf("Line(5,5,5,5) = %v", got)
	}
	if got := pixel.Bresenham.Line(5, 5, 5, 5); !slices.Equal(got, pts(5, 5)) {
		t.Errorf("Bresenham.Line(5,5,5,5) = %v", got)
	}
	for _, alg := range []pixel.CircleAlgorithm{pixel.Midpoint, pixel.BresenhamCircle, pixel.Parametric} {
		got, err := alg.Circle(0, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, pts(0, 0)) {
			t.Errorf("%s: Circle(0,0,0) = %v", alg, got)
		}
	}
}

func TestCircleExact(t *testing.T) {
	cases := []struct {
		r    int
		want []pixel.Point
	}{
		{1, pts(0, 1, 1, 0, 0, -1, -1, 0)},
		{2, pts(0, 2, 1, 2, 2, 1, 2, 0, 2, -1, 1, -2, 0, -2, -1, -2, -2, -1, -2, 0, -2, 1, -1, 2)},
		{3, pts(0, 3, 1, 3, 2, 2, 3, 1, 3, 0, 3, -1, 2, -2, 1, -3, 0, -3, -1, -3, -2, -2, -3, -1, -3, 0, -3, 1, -2, 2, -1, 3)},
	}
	for _, c := range cases {
		got, err := pixel.Circle(0, 0, c.r)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, c.want) {
			t.Errorf("Circle(0,0,%d) = %v, expected %v", c.r, got, c.want)
		}
	}
}

// TestCircleVariants checks that the two decision variable forms select
// exactly the same pixels.
func TestCircleVariants(t *testing.T) {
	for r := range 80 {
		a, err := pixel.Midpoint.Circle(1, 2, r)
		if err != nil {
			t.Fatal(err)
		}
		b, err := pixel.BresenhamCircle.Circle(1, 2, r)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(a, b) {
			t.Errorf("r=%d: midpoint and bresenham circles differ", r)
		}
	}
}

func TestEllipseExact(t *testing.T) {
	cases := []struct {
		rx, ry int
		want   []pixel.Point
	}{
		{1, 1, pts(0, 1, 1, 0, 0, -1, -1, 0)},
		{2, 1, pts(0, 1, 1, 1, 2, 0, 1, -1, 0, -1, -1, -1, -2, 0, -1, 1)},
		{3, 2, pts(0, 2, 1, 2, 2, 1, 3, 0, 2, -1, 1, -2, 0, -2, -1, -2, -2, -1, -3, 0, -2, 1, -1, 2)},
		{1, 3, pts(0, 3, 1, 2, 1, 1, 1, 0, 1, -1, 1, -2, 0, -3, -1, -2, -1, -1, -1, 0, -1, 1, -1, 2)},
	}
	for _, c := range cases {
		got, err := pixel.Ellipse(0, 0, c.rx, c.ry)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, c.want) {
			t.Errorf("Ellipse(0,0,%d,%d) = %v, expected %v", c.rx, c.ry, got, c.want)
		}
	}
}

func TestEllipseOffset(t *testing.T) {
	base, err := pixel.Ellipse(0, 0, 17, 9)
	if err != nil {
		t.Fatal(err)
	}
	moved, err := pixel.Ellipse(-4, 11, 17, 9)
	if err != nil {
		t.Fatal(err)
	}
	if len(base) != len(moved) {
		t.Fatalf("got %d and %d points", len(base), len(moved))
	}
	for i := range base {
		if moved[i] != pixel.Pt(base[i].X-4, base[i].Y+11) {
			t.Errorf("point %d: %s is not %s shifted", i, moved[i], base[i])
		}
	}
}

func TestInvalidGeometry(t *testing.T) {
	res, err := pixel.Circle(0, 0, -1)
	if !errors.Is(err, pixel.ErrInvalidGeometry) {
		t.Errorf("Circle with r=-1: got error %v", err)
	}
	if res != nil {
		t.Errorf("Circle with r=-1 returned %v", res)
	}

	for _, r := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}} {
		res, err := pixel.Ellipse(0, 0, r[0], r[1])
		if !errors.Is(err, pixel.ErrInvalidGeometry) {
			t.Errorf("Ellipse with radii %v: got error %v", r, err)
		}
		if res != nil {
			t.Errorf("Ellipse with radii %v returned %v", r, res)
		}
	}
}

func TestRasterizer(t *testing.T) {
	var zero pixel.Rasterizer
	if def := pixel.NewRasterizer(); *def != zero {
		t.Errorf("NewRasterizer() = %+v, expected the zero value", *def)
	}

	r := &pixel.Rasterizer{Line: pixel.Bresenham, Circle: pixel.Parametric}
	if got, want := r.DrawLine(-3, 7, 12, 1), pixel.Bresenham.Line(-3, 7, 12, 1); !slices.Equal(got, want) {
		t.Errorf("DrawLine = %v, expected %v", got, want)
	}
	got, err := r.DrawCircle(2, 2, 9)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := pixel.Parametric.Circle(2, 2, 9)
	if !slices.Equal(got, want) {
		t.Errorf("DrawCircle = %v, expected %v", got, want)
	}
	if _, err := r.DrawEllipse(0, 0, 0, 1); !errors.Is(err, pixel.ErrInvalidGeometry) {
		t.Errorf("DrawEllipse: got error %v", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range []pixel.LineAlgorithm{pixel.DDA, pixel.Bresenham} {
		b, err := pixel.ParseLineAlgorithm(a.String())
		if err != nil || b != a {
			t.Errorf("ParseLineAlgorithm(%q) = %v, %v", a.String(), b, err)
		}
	}
	for _, a := range []pixel.CircleAlgorithm{pixel.Midpoint, pixel.BresenhamCircle, pixel.Parametric} {
		b, err := pixel.ParseCircleAlgorithm(a.String())
		if err != nil || b != a {
			t.Errorf("ParseCircleAlgorithm(%q) = %v, %v", a.String(), b, err)
		}
	}
	if _, err := pixel.ParseLineAlgorithm("wu"); err == nil {
		t.Error("unknown line algorithm accepted")
	}
	if _, err := pixel.ParseCircleAlgorithm(""); err == nil {
		t.Error("empty circle algorithm name accepted")
	}
	if s := pixel.LineAlgorithm(7).String(); s != "LineAlgorithm(7)" {
		t.Errorf("unexpected name %q", s)
	}
}

func TestDedup(t *testing.T) {
	in := pts(1, 1, 2, 2, 1, 1, 3, 3, 2, 2, 1, 1)
	got := pixel.Dedup(in)
	if want := pts(1, 1, 2, 2, 3, 3); !slices.Equal(got, want) {
		t.Errorf("Dedup = %v, expected %v", got, want)
	}
	if got := pixel.Dedup(nil); len(got) != 0 {
		t.Errorf("Dedup(nil) = %v", got)
	}
}

func TestPolyline(t *testing.T) {
	p := pixel.Polyline(pts(0, 0, 1, 0, 1, 1), true)
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if !slices.Equal(p.Cmds, wantCmds) {
		t.Errorf("commands %v, expected %v", p.Cmds, wantCmds)
	}
	wantCoords := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if !slices.Equal(p.Coords, wantCoords) {
		t.Errorf("coordinates %v, expected %v", p.Coords, wantCoords)
	}

	open := pixel.Polyline(pts(0, 0, 1, 0), false)
	if len(open.Cmds) != 2 || open.Cmds[1] != path.CmdLineTo {
		t.Errorf("open path commands %v", open.Cmds)
	}

	empty := pixel.Polyline(nil, true)
	if len(empty.Cmds) != 0 || len(empty.Coords) != 0 {
		t.Errorf("empty input gave %v", empty)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	pixel.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer pixel.SetLogger(nil)

	_, _ = pixel.Circle(0, 0, -2)
	if !strings.Contains(buf.String(), "circle rejected") {
		t.Errorf("expected a log record, got %q", buf.String())
	}

	pixel.SetLogger(nil)
	if pixel.Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
