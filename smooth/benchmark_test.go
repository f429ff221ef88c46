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

package smooth

import (
	"context"
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func wave(n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		x := float64(i) / 10
		pts[i] = vec.Vec2{X: x, Y: 10 * math.Sin(x)}
	}
	return pts
}

func BenchmarkPath(b *testing.B) {
	for _, n := range []int{10, 100, 1000, 10000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			pts := wave(n)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Path(pts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkLiveStroke re-smooths the whole stroke after every new point,
// the way the active stroke of a canvas is redrawn.
func BenchmarkLiveStroke(b *testing.B) {
	pts := wave(500)
	b.ReportAllocs()
	for b.Loop() {
		for i := 1; i <= len(pts); i++ {
			if _, err := Path(pts[:i]); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkPathAll(b *testing.B) {
	strokes := make([][]vec.Vec2, 64)
	for i := range strokes {
		strokes[i] = wave(200)
	}
	s := NewSmoother()
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := s.PathAll(ctx, strokes); err != nil {
			b.Fatal(err)
		}
	}
}
