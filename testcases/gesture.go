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
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var gestureCases = []TestCase{
	{
		Name: "signature",
		Points: []vec.Vec2{
			pt(8, 40), pt(9, 36), pt(11, 30), pt(14, 26), pt(17, 25),
			pt(19, 28), pt(19, 34), pt(17, 40), pt(16, 44), pt(18, 42),
			pt(22, 35), pt(26, 30), pt(29, 31), pt(30, 36), pt(31, 41),
			pt(34, 40), pt(37, 34), pt(40, 28), pt(43, 27), pt(45, 31),
			pt(45, 37), pt(47, 41), pt(51, 39), pt(54, 33), pt(56, 28),
		},
		Width:     64,
		Height:    64,
		LineWidth: 1.5,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "jittery_line",
		Points:    jitter(linePoints(6, 32, 58, 32, 60), 1.5, 1),
		Width:     64,
		Height:    64,
		LineWidth: 2,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "jittery_circle",
		Points:    jitter(circlePoints(32, 32, 20, 48), 1, 2),
		Width:     64,
		Height:    64,
		LineWidth: 2,
		Cap:       graphics.LineCapRound,
	},
	{
		Name:      "dense_samples",
		Points:    linePoints(10, 10, 54, 54, 500),
		Width:     64,
		Height:    64,
		LineWidth: 2,
		Cap:       graphics.LineCapRound,
	},
}

// linePoints samples n equidistant points on the segment from (x1, y1) to
// (x2, y2), both ends included.
func linePoints(x1, y1, x2, y2 float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		pts = append(pts, pt(x1+t*(x2-x1), y1+t*(y2-y1)))
	}
	return pts
}

// jitter displaces every point by a pseudo-random offset of at most amount
// in each coordinate.  The result only depends on the arguments.
func jitter(pts []vec.Vec2, amount float64, seed uint64) []vec.Vec2 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		dx := (2*rng.Float64() - 1) * amount
		dy := (2*rng.Float64() - 1) * amount
		res[i] = pt(math.Round((p.X+dx)*100)/100, math.Round((p.Y+dy)*100)/100)
	}
	return res
}
