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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var basicCases = []TestCase{
	{
		Name:      "dot",
		Points:    []vec.Vec2{pt(32, 32)},
		Width:     64,
		Height:    64,
		LineWidth: 6,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "two_points",
		Points:    []vec.Vec2{pt(10, 32), pt(54, 32)},
		Width:     64,
		Height:    64,
		LineWidth: 4,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "two_points_butt",
		Points:    []vec.Vec2{pt(10, 32), pt(54, 32)},
		Width:     64,
		Height:    64,
		LineWidth: 4,
		Cap:       graphics.LineCapButt,
	},
	{
		Name:      "two_points_square",
		Points:    []vec.Vec2{pt(10, 32), pt(54, 32)},
		Width:     64,
		Height:    64,
		LineWidth: 4,
		Cap:       graphics.LineCapSquare,
	},
	{
		Name:      "collinear",
		Points:    []vec.Vec2{pt(10, 10), pt(20, 20), pt(30, 30), pt(40, 40), pt(54, 54)},
		Width:     64,
		Height:    64,
		LineWidth: 3,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "corner",
		Points:    []vec.Vec2{pt(12, 12), pt(52, 12), pt(52, 52)},
		Width:     64,
		Height:    64,
		LineWidth: 3,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "repeated_points",
		Points:    []vec.Vec2{pt(10, 40), pt(10, 40), pt(30, 20), pt(30, 20), pt(30, 20), pt(54, 40)},
		Width:     64,
		Height:    64,
		LineWidth: 3,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "back_to_start",
		Points:    []vec.Vec2{pt(16, 16), pt(48, 16), pt(48, 48), pt(16, 48), pt(16, 16)},
		Width:     64,
		Height:    64,
		LineWidth: 2,
		Cap:       graphics.LineCapButt,
	},
}
