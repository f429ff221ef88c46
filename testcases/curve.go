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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var curveCases = []TestCase{
	{
		Name:      "circle",
		Points:    circlePoints(32, 32, 22, 16),
		Width:     64,
		Height:    64,
		LineWidth: 2,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "circle_coarse",
		Points:    circlePoints(32, 32, 22, 5),
		Width:     64,
		Height:    64,
		LineWidth: 2,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "sine",
		Points:    sinePoints(6, 58, 32, 18, 2, 40),
		Width:     64,
		Height:    64,
		LineWidth: 2,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "spiral",
		Points:    spiralPoints(32, 32, 3, 28, 3),
		Width:     64,
		Height:    64,
		LineWidth: 1.5,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "zigzag",
		Points:    zigzagPoints(6, 32, 58, 16, 6),
		Width:     64,
		Height:    64,
		LineWidth: 3,
		Cap:       graphics.LineCapButt,
	},
}

// circlePoints samples n points on a circle, counter-clockwise in device
// space, and repeats the first point at the end.
func circlePoints(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		angle := -2 * math.Pi * float64(i%n) / float64(n)
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return pts
}

// sinePoints samples n points of a sine wave between x1 and x2.
func sinePoints(x1, x2, cy, amplitude, periods float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		x := x1 + t*(x2-x1)
		y := cy + amplitude*math.Sin(2*math.Pi*periods*t)
		pts = append(pts, pt(x, y))
	}
	return pts
}

// spiralPoints samples an Archimedean spiral, 16 points per turn.
func spiralPoints(cx, cy, rMin, rMax, turns float64) []vec.Vec2 {
	steps := max(int(turns*16), 8)

	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	pts := make([]vec.Vec2, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return pts
}

// zigzagPoints builds a zigzag with the given number of segments.
func zigzagPoints(x1, cy, x2, amplitude float64, segments int) []vec.Vec2 {
	segWidth := (x2 - x1) / float64(segments)

	pts := []vec.Vec2{pt(x1, cy)}
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		pts = append(pts, pt(x1+float64(i)*segWidth, y))
	}
	return pts
}
