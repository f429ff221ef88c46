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
	"errors"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sketch/testcases"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

// collect returns the commands and the concatenated coordinates of p.
func collect(p path.Path) ([]path.Command, []vec.Vec2) {
	var cmds []path.Command
	var coords []vec.Vec2
	for cmd, pts := range p {
		cmds = append(cmds, cmd)
		coords = append(coords, pts...)
	}
	return cmds, coords
}

func TestSinglePoint(t *testing.T) {
	p, err := Path([]vec.Vec2{pt(5, 5)})
	if err != nil {
		t.Fatal(err)
	}
	cmds, coords := collect(p)
	diff(t, []path.Command{path.CmdMoveTo}, cmds)
	diff(t, []vec.Vec2{pt(5, 5)}, coords)
}

func TestEmpty(t *testing.T) {
	if _, err := Path(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Path(nil): got %v, want %v", err, ErrInvalidInput)
	}
	if _, err := Polyline([]vec.Vec2{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Polyline([]): got %v, want %v", err, ErrInvalidInput)
	}
}

func TestFactorRange(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(1, 1)}
	cases := []struct {
		factor float64
		ok     bool
	}{
		{0, false},
		{-0.1, false},
		{math.NaN(), false},
		{0.50001, false},
		{1e-6, true},
		{0.2, true},
		{0.5, true},
	}
	for _, c := range cases {
		s := &Smoother{Factor: c.factor}
		_, err := s.Path(pts)
		if c.ok && err != nil {
			t.Errorf("factor %g: unexpected error %v", c.factor, err)
		} else if !c.ok && !errors.Is(err, ErrInvalidFactor) {
			t.Errorf("factor %g: got %v, want %v", c.factor, err, ErrInvalidFactor)
		}
	}
}

// TestCorner checks the control points for a right-angle corner against
// values computed by hand.
func TestCorner(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10)}

	p, err := Path(pts)
	if err != nil {
		t.Fatal(err)
	}

	cmds, coords := collect(p)
	diff(t, []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo}, cmds)
	want := []vec.Vec2{
		pt(0, 0),
		pt(2, 0), pt(8, -2), pt(10, 0),
		pt(12, 2), pt(10, 8), pt(10, 10),
	}
	diff(t, want, coords, approx)
}

func TestControlPoints(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10)}
	s := &Smoother{Factor: 0.5}

	type pair struct{ In, Out vec.Vec2 }
	cases := []struct {
		i    int
		want pair
	}{
		// first point: previous neighbour clamped to the point itself
		{0, pair{pt(-5, 0), pt(5, 0)}},
		// chord from (0,0) to (10,10) has length 10*sqrt(2)
		{1, pair{pt(5, -5), pt(15, 5)}},
		// last point: next neighbour clamped to the point itself
		{2, pair{pt(10, 5), pt(10, 15)}},
	}
	for _, c := range cases {
		in, out := s.ControlPoints(pts, c.i)
		diff(t, c.want, pair{in, out}, approx)
	}
}

func TestControlPointsSinglePoint(t *testing.T) {
	pts := []vec.Vec2{pt(3, 4)}
	in, out := ControlPoints(pts, 0)
	if in != pts[0] || out != pts[0] {
		t.Errorf("got %v, %v, want both equal to %v", in, out, pts[0])
	}
}

// TestStructure checks the shape of the path for all test strokes.
func TestStructure(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				p, err := Path(tc.Points)
				if err != nil {
					t.Fatal(err)
				}

				cmds, coords := collect(p)
				n := len(tc.Points)
				if len(cmds) != n {
					t.Fatalf("got %d commands, want %d", len(cmds), n)
				}
				if len(coords) != 3*n-2 {
					t.Fatalf("got %d coordinates, want %d", len(coords), 3*n-2)
				}
				if cmds[0] != path.CmdMoveTo || coords[0] != tc.Points[0] {
					t.Errorf("path does not start with MoveTo %v", tc.Points[0])
				}
				for k := 1; k < n; k++ {
					if cmds[k] != path.CmdCubeTo {
						t.Errorf("command %d: got %v, want CubeTo", k, cmds[k])
					}
					if end := coords[3*k]; end != tc.Points[k] {
						t.Errorf("segment %d ends at %v, want %v", k, end, tc.Points[k])
					}
				}
			})
		}
	}
}

// TestCollinear checks that control points of collinear input stay on the
// line.
func TestCollinear(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(1, 2), pt(3, 6), pt(4, 8)}
	p, err := Path(pts)
	if err != nil {
		t.Fatal(err)
	}
	_, coords := collect(p)
	for i, c := range coords {
		if d := math.Abs(2*c.X - c.Y); d > 1e-12 {
			t.Errorf("coordinate %d (%v) is %g away from the line", i, c, d)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, tc := range testcases.All["gesture"] {
		a, err := Path(tc.Points)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Path(slices.Clone(tc.Points))
		if err != nil {
			t.Fatal(err)
		}
		aCmds, aCoords := collect(a)
		bCmds, bCoords := collect(b)
		diff(t, aCmds, bCmds)
		if len(aCoords) != len(bCoords) {
			t.Fatalf("%s: %d vs %d coordinates", tc.Name, len(aCoords), len(bCoords))
		}
		for i := range aCoords {
			if math.Float64bits(aCoords[i].X) != math.Float64bits(bCoords[i].X) ||
				math.Float64bits(aCoords[i].Y) != math.Float64bits(bCoords[i].Y) {
				t.Fatalf("%s: coordinate %d differs: %v vs %v", tc.Name, i, aCoords[i], bCoords[i])
			}
		}
	}
}

// TestNoAliasing checks that paths neither share memory with their input
// nor with each other, and that iterating a path cannot change it.
func TestNoAliasing(t *testing.T) {
	s1 := []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10)}
	s2 := []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10)}

	p1, err := Path(s1)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Path(s2)
	if err != nil {
		t.Fatal(err)
	}
	_, want := collect(p2)

	s1[1] = pt(100, 100)
	for _, pts := range p1 {
		pts[0] = pt(-1, -1)
	}
	_, got := collect(p2)
	diff(t, want, got)

	s2[2] = pt(-7, -7)
	_, got = collect(p2)
	diff(t, want, got)

	_, first := collect(p1)
	if first[0] != pt(0, 0) {
		t.Errorf("path changed by its consumer: starts at %v", first[0])
	}
}

func TestPolyline(t *testing.T) {
	pts := []vec.Vec2{pt(1, 1), pt(2, 3), pt(5, 8)}
	p, err := Polyline(pts)
	if err != nil {
		t.Fatal(err)
	}
	cmds, coords := collect(p)
	diff(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}, cmds)
	diff(t, pts, coords)

	pts[1] = pt(0, 0)
	_, coords = collect(p)
	if coords[1] != pt(2, 3) {
		t.Errorf("polyline shares memory with its input")
	}
}

func TestPathAll(t *testing.T) {
	var strokes [][]vec.Vec2
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			strokes = append(strokes, tc.Points)
		}
	}

	s := NewSmoother()
	res, err := s.PathAll(context.Background(), strokes)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != len(strokes) {
		t.Fatalf("got %d paths, want %d", len(res), len(strokes))
	}
	for i, pts := range strokes {
		want, err := s.Path(pts)
		if err != nil {
			t.Fatal(err)
		}
		wantCmds, wantCoords := collect(want)
		gotCmds, gotCoords := collect(res[i])
		diff(t, wantCmds, gotCmds)
		diff(t, wantCoords, gotCoords)
	}
}

// TestEarlyStop checks that a consumer can stop the iteration early.
func TestEarlyStop(t *testing.T) {
	p, err := Path([]vec.Vec2{pt(0, 0), pt(1, 0), pt(2, 1), pt(3, 3)})
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for cmd := range p {
		n++
		if cmd == path.CmdCubeTo {
			break
		}
	}
	if n != 2 {
		t.Errorf("got %d segments before break, want 2", n)
	}
}

func TestPathAllErrors(t *testing.T) {
	s := NewSmoother()

	strokes := [][]vec.Vec2{{pt(0, 0), pt(1, 1)}, nil, {pt(2, 2)}}
	if _, err := s.PathAll(context.Background(), strokes); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty stroke: got %v, want %v", err, ErrInvalidInput)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.PathAll(ctx, strokes[:1]); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: got %v, want %v", err, context.Canceled)
	}
}
