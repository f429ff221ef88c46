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
	"context"
	"slices"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/smooth"
)

// Stroke is a finished gesture.  Points are in local coordinates and
// contain at least one point.
type Stroke struct {
	ID     uuid.UUID
	Points []vec.Vec2
}

// Clone returns a deep copy of s.
func (s Stroke) Clone() Stroke {
	return Stroke{ID: s.ID, Points: slices.Clone(s.Points)}
}

// Drawing is a snapshot of the contents of a Canvas.
type Drawing struct {
	// Strokes lists the finished strokes in the order they were drawn.
	Strokes []Stroke

	// Active is the stroke currently being drawn, or nil.
	Active []vec.Vec2
}

// Paths smooths all finished strokes of the drawing.  The strokes are
// processed in parallel.
func (d *Drawing) Paths(ctx context.Context, s *smooth.Smoother) ([]path.Path, error) {
	pts := make([][]vec.Vec2, len(d.Strokes))
	for i, st := range d.Strokes {
		pts[i] = st.Points
	}
	return s.PathAll(ctx, pts)
}

// Bounds returns the smallest rectangle containing all points of the
// drawing, including the active stroke.  The second return value is false
// if the drawing has no points.  The stroke width is not taken into
// account.
func (d *Drawing) Bounds() (rect.Rect, bool) {
	var b rect.Rect
	found := false
	add := func(pts []vec.Vec2) {
		for _, p := range pts {
			if !found {
				b = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				found = true
			}
			b.Add(p.X, p.Y)
		}
	}
	for _, st := range d.Strokes {
		add(st.Points)
	}
	add(d.Active)
	return b, found
}
