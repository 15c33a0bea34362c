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

package testcases

import "seehuhn.de/go/pixel/clip"

// window is the clip window used by most cases.
var window = clip.Window{XMin: -100, YMin: -100, XMax: 100, YMax: 100}

var clipCases = []TestCase{
	// trivially classified
	{Name: "inside", Shape: Clip{Segment: clip.Seg(-50, -50, 50, 50), Window: window, Want: clip.Inside}, Width: 320, Height: 320},
	{Name: "outside_above", Shape: Clip{Segment: clip.Seg(-200, 150, 200, 150), Window: window, Want: clip.Outside}, Width: 480, Height: 320},
	{Name: "outside_small_window", Shape: Clip{Segment: clip.Seg(20, 20, 30, 30), Window: clip.NewWindow(10, 10, -10, -10), Want: clip.Outside}, Width: 80, Height: 80},

	// crossing one or more edges
	{Name: "crossing_left_right", Shape: Clip{Segment: clip.Seg(-150, 0, 150, 50), Window: window, Want: clip.Partial}, Width: 320, Height: 320},
	{Name: "crossing_right", Shape: Clip{Segment: clip.Seg(0, 0, 200, 0), Window: window, Want: clip.Partial}, Width: 480, Height: 320},
	{Name: "crossing_corners", Shape: Clip{Segment: clip.Seg(-150, -150, 150, 150), Window: window, Want: clip.Partial}, Width: 320, Height: 320},
	{Name: "crossing_left_bottom", Shape: Clip{Segment: clip.Seg(-120, 80, 80, -120), Window: window, Want: clip.Partial}, Width: 320, Height: 320},
	{Name: "crossing_bottom_top", Shape: Clip{Segment: clip.Seg(0, -150, 0, 150), Window: window, Want: clip.Partial}, Width: 320, Height: 320},
	{Name: "leaving_right", Shape: Clip{Segment: clip.Seg(90, 90, 150, 95), Window: window, Want: clip.Partial}, Width: 320, Height: 320},
	{Name: "entering_right", Shape: Clip{Segment: clip.Seg(150, 95, 90, 90), Window: window, Want: clip.Partial}, Width: 320, Height: 320},

	// touching the boundary counts as inside
	{Name: "touching_right_edge", Shape: Clip{Segment: clip.Seg(100, -50, 100, 50), Window: window, Want: clip.Inside}, Width: 320, Height: 320},
	{Name: "along_top_edge", Shape: Clip{Segment: clip.Seg(-100, 100, 100, 100), Window: window, Want: clip.Inside}, Width: 320, Height: 320},
	{Name: "edge_to_edge", Shape: Clip{Segment: clip.Seg(-100, 0, 100, 0), Window: window, Want: clip.Inside}, Width: 320, Height: 320},
	{Name: "touching_corner", Shape: Clip{Segment: clip.Seg(50, 150, 150, 50), Window: window, Want: clip.Partial}, Width: 320, Height: 320},
	{Name: "missing_corner", Shape: Clip{Segment: clip.Seg(50, 150, 150, 60), Window: window, Want: clip.Outside}, Width: 320, Height: 320},

	// zero-length segments
	{Name: "point_inside", Shape: Clip{Segment: clip.Seg(0, 0, 0, 0), Window: window, Want: clip.Inside}, Width: 320, Height: 320},
	{Name: "point_on_edge", Shape: Clip{Segment: clip.Seg(-100, 30, -100, 30), Window: window, Want: clip.Inside}, Width: 320, Height: 320},
	{Name: "point_outside", Shape: Clip{Segment: clip.Seg(300, 0, 300, 0), Window: window, Want: clip.Outside}, Width: 640, Height: 320},
}
