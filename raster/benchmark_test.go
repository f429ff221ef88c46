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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/smooth"
)

// BenchmarkStrokeCircle benchmarks stroking a smoothed circle at different
// image sizes.
func BenchmarkStrokeCircle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	p, err := smooth.Path(circlePoints(50, 50, 40, 24))
	if err != nil {
		b.Fatal(err)
	}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := NewRasterizer(size, size)
			s := float64(size) / 100
			r.CTM = matrix.Scale(s, s)
			r.Width = 2

			dst := image.NewAlpha(r.Bounds())
			src := image.NewUniform(color.Alpha{255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset()
				r.Stroke(p)
				r.Draw(dst, src)
			}
		})
	}
}

// BenchmarkFillCircle benchmarks x/image/vector filling the outline of the
// same circle directly, as a lower bound for BenchmarkStrokeCircle.
func BenchmarkFillCircle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.41
			innerR := float32(size) * 0.39

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeLength benchmarks stroking smoothed paths with an
// increasing number of input points.
func BenchmarkStrokeLength(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			p, err := smooth.Path(circlePoints(100, 100, 80, n))
			if err != nil {
				b.Fatal(err)
			}
			r := NewRasterizer(200, 200)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset()
				r.Stroke(p)
			}
		})
	}
}

func circlePoints(cx, cy, radius float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n+1)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: cx + radius*math.Cos(phi), Y: cy + radius*math.Sin(phi)}
	}
	return pts
}

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(kappa)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
