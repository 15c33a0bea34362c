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

var lineCases = []TestCase{
	// axis-aligned and diagonal
	{Name: "horizontal", Shape: Line{X1: -20, Y1: 0, X2: 20, Y2: 0}, Width: 64, Height: 64},
	{Name: "vertical", Shape: Line{X1: 3, Y1: 25, X2: 3, Y2: -25}, Width: 64, Height: 64},
	{Name: "diagonal", Shape: Line{X1: -20, Y1: -20, X2: 20, Y2: 20}, Width: 64, Height: 64},
	{Name: "antidiagonal", Shape: Line{X1: 20, Y1: -20, X2: -20, Y2: 20}, Width: 64, Height: 64},

	// one case per octant
	{Name: "octant_1", Shape: Line{X1: 0, Y1: 0, X2: 25, Y2: 7}, Width: 64, Height: 64},
	{Name: "octant_2", Shape: Line{X1: 0, Y1: 0, X2: 7, Y2: 25}, Width: 64, Height: 64},
	{Name: "octant_3", Shape: Line{X1: 0, Y1: 0, X2: -7, Y2: 25}, Width: 64, Height: 64},
	{Name: "octant_4", Shape: Line{X1: 0, Y1: 0, X2: -25, Y2: 7}, Width: 64, Height: 64},
	{Name: "octant_5", Shape: Line{X1: 0, Y1: 0, X2: -25, Y2: -7}, Width: 64, Height: 64},
	{Name: "octant_6", Shape: Line{X1: 0, Y1: 0, X2: -7, Y2: -25}, Width: 64, Height: 64},
	{Name: "octant_7", Shape: Line{X1: 0, Y1: 0, X2: 7, Y2: -25}, Width: 64, Height: 64},
	{Name: "octant_8", Shape: Line{X1: 0, Y1: 0, X2: 25, Y2: -7}, Width: 64, Height: 64},

	{Name: "shallow_long", Shape: Line{X1: -30, Y1: -2, X2: 30, Y2: 3}, Width: 64, Height: 64},
	{Name: "steep_offset", Shape: Line{X1: 3, Y1: -20, X2: -4, Y2: 22}, Width: 64, Height: 64},
	{Name: "point", Shape: Line{X1: 5, Y1: 5, X2: 5, Y2: 5}, Width: 16, Height: 16},
}

var circleCases = []TestCase{
	{Name: "radius_0", Shape: Circle{XC: 0, YC: 0, R: 0}, Width: 16, Height: 16},
	{Name: "radius_1", Shape: Circle{XC: 0, YC: 0, R: 1}, Width: 16, Height: 16},
	{Name: "radius_5", Shape: Circle{XC: 0, YC: 0, R: 5}, Width: 16, Height: 16},
	{Name: "radius_12_offset", Shape: Circle{XC: 3, YC: -4, R: 12}, Width: 40, Height: 40},
	{Name: "radius_25", Shape: Circle{XC: 0, YC: 0, R: 25}, Width: 64, Height: 64},
	{Name: "radius_60", Shape: Circle{XC: -2, YC: 1, R: 60}, Width: 128, Height: 128},
}

var ellipseCases = []TestCase{
	{Name: "wide", Shape: Ellipse{XC: 0, YC: 0, RX: 20, RY: 10}, Width: 64, Height: 64},
	{Name: "tall", Shape: Ellipse{XC: 0, YC: 0, RX: 10, RY: 20}, Width: 64, Height: 64},
	{Name: "round", Shape: Ellipse{XC: 0, YC: 0, RX: 12, RY: 12}, Width: 64, Height: 64},
	{Name: "offset", Shape: Ellipse{XC: 4, YC: -3, RX: 25, RY: 15}, Width: 64, Height: 64},
	{Name: "small", Shape: Ellipse{XC: 0, YC: 0, RX: 3, RY: 2}, Width: 16, Height: 16},
	{Name: "flat", Shape: Ellipse{XC: 0, YC: 0, RX: 29, RY: 1}, Width: 64, Height: 16},
	{Name: "thin", Shape: Ellipse{XC: 0, YC: 0, RX: 2, RY: 27}, Width: 16, Height: 64},
}
