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

package sketch

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestFitView(t *testing.T) {
	cases := []struct {
		width, height float64
		origin, far   vec.Vec2 // images of (0,0) and (100,100)
	}{
		{100, 100, pt(0, 0), pt(100, 100)},
		{300, 100, pt(100, 0), pt(200, 100)},
		{200, 400, pt(0, 100), pt(200, 300)},
		{0, 100, pt(0, 0), pt(100, 100)}, // empty area: identity
	}
	for _, c := range cases {
		m := FitView(c.width, c.height)
		x, y := m.Apply(0, 0)
		diff(t, c.origin, pt(x, y), approx)
		x, y = m.Apply(ViewBoxSize, ViewBoxSize)
		diff(t, c.far, pt(x, y), approx)
	}
}

func TestInvert(t *testing.T) {
	views := []matrix.Matrix{
		matrix.Identity,
		matrix.Scale(2, 3).Translate(5, -7),
		matrix.RotateDeg(30).Translate(1, 2),
		{0, 1, 1, 0, 3, 4},
	}
	pts := []vec.Vec2{pt(0, 0), pt(1, 0), pt(-3.5, 12.25)}
	for _, m := range views {
		if !invertible(m) {
			t.Fatalf("%v reported as singular", m)
		}
		c := New(100, 100)
		if err := c.SetView(m); err != nil {
			t.Fatal(err)
		}
		diff(t, m.Inv(), c.inverse, approx)
		for _, p := range pts {
			diff(t, p, c.ToLocal(c.ToScreen(p)), approx)
		}
	}

	singular := []matrix.Matrix{
		{1, 2, 2, 4, 0, 0},
		{1e-7, 0, 0, 1e-7, 0, 0},
		{math.NaN(), 0, 0, 1, 0, 0},
		matrix.Zero,
	}
	for _, m := range singular {
		if invertible(m) {
			t.Errorf("%v accepted as a view", m)
		}
	}
}

func TestViewChanges(t *testing.T) {
	c := New(100, 100)

	if err := c.SetView(matrix.Matrix{}); !errors.Is(err, ErrSingularView) {
		t.Errorf("zero matrix: got %v, want %v", err, ErrSingularView)
	}

	zoom := matrix.Scale(4, 4).Translate(-20, -40)
	if err := c.SetView(zoom); err != nil {
		t.Fatal(err)
	}
	diff(t, pt(10, 20), c.ToLocal(pt(20, 40)), approx)
	diff(t, pt(20, 40), c.ToScreen(pt(10, 20)), approx)

	// a user-defined view survives resizing
	c.Handle(Resize{Width: 300, Height: 100})
	diff(t, zoom, c.View(), approx)

	c.ResetView()
	diff(t, FitView(300, 100), c.View(), approx)
	diff(t, pt(0, 0), c.ToLocal(pt(100, 0)), approx)

	// the fitted view follows the surface size
	c.Handle(Resize{Width: 100, Height: 300})
	diff(t, FitView(100, 300), c.View(), approx)
}

func TestStrokeUsesView(t *testing.T) {
	c := New(100, 100)
	c.SetMode(ModeDraw)
	if err := c.SetView(matrix.Scale(2, 2).Translate(10, 10)); err != nil {
		t.Fatal(err)
	}
	draw(c, pt(10, 10), pt(30, 50))
	diff(t, []vec.Vec2{pt(0, 0), pt(10, 20)}, c.Strokes()[0].Points, approx)
}
