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

// Package smooth converts a sequence of points into a smooth path made of
// cubic Bézier segments.
//
// Each point gets two control points which lie on the line through the
// point, parallel to the chord joining its two neighbours.  At the ends of
// the sequence the missing neighbour is replaced by the point itself.  The
// distance of the control points from the point is a fixed fraction of the
// chord length.  Since every control point only depends on the immediate
// neighbours, the computation is a single O(n) pass.
package smooth

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFactor is the smoothing factor used by NewSmoother and by the
// package-level functions.
const DefaultFactor = 0.2

// MaxFactor is the largest allowed smoothing factor.
const MaxFactor = 0.5

var (
	// ErrInvalidInput is returned when a path is requested for an empty
	// point sequence.
	ErrInvalidInput = errors.New("smooth: empty point sequence")

	// ErrInvalidFactor is returned when the smoothing factor is outside
	// the range (0, MaxFactor].
	ErrInvalidFactor = errors.New("smooth: invalid smoothing factor")
)

// Smoother computes smooth paths through point sequences.
//
// A Smoother holds no state besides its configuration and can be used
// concurrently.
type Smoother struct {
	// Factor is the fraction of the neighbour chord length used to place
	// the control points.  Larger values give rounder curves.  Must be in
	// the range (0, MaxFactor].
	Factor float64
}

// NewSmoother returns a Smoother which uses DefaultFactor.
func NewSmoother() *Smoother {
	return &Smoother{Factor: DefaultFactor}
}

var defaultSmoother = NewSmoother()

// ControlPoints returns the two control points for pts[i], using
// DefaultFactor.  See Smoother.ControlPoints.
func ControlPoints(pts []vec.Vec2, i int) (in, out vec.Vec2) {
	return defaultSmoother.ControlPoints(pts, i)
}

// Path returns the smooth path through pts, using DefaultFactor.
// See Smoother.Path.
func Path(pts []vec.Vec2) (path.Path, error) {
	return defaultSmoother.Path(pts)
}

// ControlPoints returns the two Bézier control points belonging to pts[i].
// The incoming control point is used by the curve segment ending at pts[i],
// the outgoing control point by the segment starting there.
//
// The index must be in the range [0, len(pts)-1].
func (s *Smoother) ControlPoints(pts []vec.Vec2, i int) (in, out vec.Vec2) {
	prev := pts[max(i-1, 0)]
	next := pts[min(i+1, len(pts)-1)]

	chord := next.Sub(prev)
	length := chord.Length() * s.Factor
	angle := math.Atan2(chord.Y, chord.X)

	offset := vec.Vec2{
		X: math.Cos(angle) * length,
		Y: math.Sin(angle) * length,
	}
	cur := pts[i]
	return cur.Sub(offset), cur.Add(offset)
}

// Path returns the smooth path through pts.
//
// The path starts with a MoveTo to pts[0], followed by one CubeTo for every
// further point.  A single point gives a path which consists of the MoveTo
// only.  The result is computed from scratch on every call and does not
// share memory with pts.  The path can be iterated any number of times.
func (s *Smoother) Path(pts []vec.Vec2) (path.Path, error) {
	if len(pts) == 0 {
		return nil, ErrInvalidInput
	}
	if !validFactor(s.Factor) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidFactor, s.Factor)
	}

	coords := make([]vec.Vec2, 0, 3*len(pts)-2)
	coords = append(coords, pts[0])

	_, out := s.ControlPoints(pts, 0)
	for j := 1; j < len(pts); j++ {
		in, nextOut := s.ControlPoints(pts, j)
		coords = append(coords, out, in, pts[j])
		out = nextOut
	}
	return segments(path.CmdCubeTo, coords), nil
}

// Polyline returns the path which joins the points in pts by straight
// lines.  This is the unsmoothed counterpart of Path.
func Polyline(pts []vec.Vec2) (path.Path, error) {
	if len(pts) == 0 {
		return nil, ErrInvalidInput
	}
	return segments(path.CmdLineTo, slices.Clone(pts)), nil
}

// segments returns the path which starts with a MoveTo to coords[0] and
// continues with one segment of type cmd for every following group of
// points.  Callers receive copies of the coordinates, so that the path
// cannot be modified through the iterator.
func segments(cmd path.Command, coords []vec.Vec2) path.Path {
	n := 1
	if cmd == path.CmdCubeTo {
		n = 3
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		buf[0] = coords[0]
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for k := 1; k+n <= len(coords); k += n {
			copy(buf[:n], coords[k:k+n])
			if !yield(cmd, buf[:n]) {
				return
			}
		}
	}
}

func validFactor(f float64) bool {
	return f > 0 && f <= MaxFactor
}
