// seehuhn.de/go/sketch - freehand drawing with smoothed strokes
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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// The view cases use the 100x100 local coordinate system of a canvas and
// map it to device space with a CTM.
var viewCases = []TestCase{
	{
		Name:      "zoom_2x",
		Points:    []vec.Vec2{pt(10, 50), pt(30, 20), pt(50, 50), pt(70, 80), pt(90, 50)},
		Width:     200,
		Height:    200,
		CTM:       matrix.Scale(2, 2),
		LineWidth: 1,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "zoom_half",
		Points:    []vec.Vec2{pt(10, 50), pt(30, 20), pt(50, 50), pt(70, 80), pt(90, 50)},
		Width:     50,
		Height:    50,
		CTM:       matrix.Scale(0.5, 0.5),
		LineWidth: 2,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "panned",
		Points:    circlePoints(50, 50, 30, 12),
		Width:     128,
		Height:    96,
		CTM:       matrix.Scale(0.8, 0.8).Translate(24, 8),
		LineWidth: 1,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "anisotropic",
		Points:    sinePoints(5, 95, 50, 30, 1, 24),
		Width:     128,
		Height:    64,
		CTM:       matrix.Scale(1.28, 0.64),
		LineWidth: 1,
		Cap:       graphics.LineCapButt,
	},
}
