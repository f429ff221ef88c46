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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
	L    float64  // length
}

// Stroke adds the outline of p, stroked with Width and Cap, to the
// accumulated coverage.
//
// Subpaths which consist of a single point, or whose segments all have
// zero length, are drawn as a dot if Cap is LineCapRound, and are omitted
// otherwise.
func (r *Rasterizer) Stroke(p path.Path) {
	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.dots) == 0 {
		return
	}

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	d := r.Width / 2
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			// clockwise, like the outlines of open subpaths
			start := len(r.stroke)
			r.addArc(pt, d, vec.Vec2{X: 1, Y: 0}, -2*math.Pi, true)
			r.endOutline(start)
		}
	}
	for i := range r.segsOffsets {
		r.strokeSubpath(r.subpathSegments(i), r.subpathClosed[i], d)
	}

	r.fillOutlines()
}

// endOutline records the polygon which starts at index start of r.stroke.
// Polygons with fewer than three vertices are discarded.
func (r *Rasterizer) endOutline(start int) {
	if len(r.stroke)-start < 3 {
		r.stroke = r.stroke[:start]
		return
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}

// subpathSegments returns the segments for subpath i as a slice into segs.
func (r *Rasterizer) subpathSegments(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

// flattenPath walks the path, flattens curves, and fills the segment
// buffers.  Every MoveTo starts a new subpath; subpaths without any
// segment of positive length are collected in r.dots.
func (r *Rasterizer) flattenPath(p path.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	startIdx := 0
	inSubpath := false

	endSubpath := func(closed bool) {
		if !inSubpath {
			return
		}
		if len(r.segs) == startIdx {
			r.dots = append(r.dots, start)
		} else {
			r.segsOffsets = append(r.segsOffsets, startIdx)
			r.subpathClosed = append(r.subpathClosed, closed)
		}
		startIdx = len(r.segs)
		inSubpath = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			endSubpath(false)
			current = pts[0]
			start = current
			inSubpath = true

		case path.CmdLineTo:
			if inSubpath {
				r.addStrokeSegment(current, pts[0])
			}
			current = pts[0]

		case path.CmdQuadTo:
			if inSubpath {
				r.flattenQuadratic(current, pts[0], pts[1], r.addStrokeSegment)
			}
			current = pts[1]

		case path.CmdCubeTo:
			if inSubpath {
				r.flattenCubic(current, pts[0], pts[1], pts[2], r.addStrokeSegment)
			}
			current = pts[2]

		case path.CmdClose:
			if inSubpath {
				if current != start {
					r.addStrokeSegment(current, start)
				}
				current = start
			}
			endSubpath(true)
		}
	}
	endSubpath(false)
}

// addStrokeSegment adds a line segment to the flattening buffer.
// Degenerate segments are skipped.
func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: n, L: length})
}

// turn returns the sine of the turning angle from seg to next.  Positive
// values mean that the path turns towards the +N side, which then is the
// inner side of the corner.
func turn(seg, next *strokeSegment) float64 {
	return seg.T.X*next.T.Y - seg.T.Y*next.T.X
}

// straight reports whether next continues seg without a visible corner.
// A reversal of direction is a corner.
func straight(seg, next *strokeSegment) bool {
	sin := turn(seg, next)
	return sin > -collinearityThreshold && sin < collinearityThreshold && seg.T.Dot(next.T) > 0
}

// strokeSubpath builds the outline for a single subpath into r.stroke.
// For open subpaths the outline is one closed polygon: forward pass on the
// +N side, end cap, backward pass on the -N side, start cap.  Closed
// subpaths give two rings, one for each side, which are traversed in
// opposite directions.  Round joins are added on the outer side of each
// corner, which depends on the turn direction.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool, d float64) {
	if len(segs) == 0 {
		return
	}
	first := &segs[0]
	last := &segs[len(segs)-1]

	if closed {
		start := len(r.stroke)
		r.cornerForward(last, first, d, true)
		for i := range len(segs) - 1 {
			r.cornerForward(&segs[i], &segs[i+1], d, true)
		}
		r.endOutline(start)

		start = len(r.stroke)
		r.cornerBackward(last, first, d, true)
		for i := len(segs) - 1; i > 0; i-- {
			r.cornerBackward(&segs[i-1], &segs[i], d, true)
		}
		r.endOutline(start)
		return
	}

	start := len(r.stroke)
	r.addCap(first.A, first.T.Mul(-1), d)

	// forward pass: +N side
	skipNextA := false
	for i := range segs {
		seg := &segs[i]
		if !skipNextA {
			r.stroke = append(r.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		if i < len(segs)-1 {
			skipNextA = r.cornerForward(seg, &segs[i+1], d, false)
		} else {
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		}
	}

	r.addCap(last.B, last.T, d)

	// backward pass: -N side
	skipNextB := false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skipNextB {
			r.stroke = append(r.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		if i > 0 {
			skipNextB = r.cornerBackward(&segs[i-1], seg, d, false)
		} else {
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
		}
	}
	r.endOutline(start)
}

// cornerForward adds the +N side of the corner between seg and next.  In
// closed subpaths the corner is emitted completely.  In open subpaths the
// offset point at next.A is left to the caller, and the return value tells
// the caller to skip it.
func (r *Rasterizer) cornerForward(seg, next *strokeSegment, d float64, closed bool) bool {
	if !straight(seg, next) && turn(seg, next) > 0 {
		return r.addInner(seg.B, seg, next, d, true)
	}
	r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
	if !straight(seg, next) {
		r.addJoin(seg.B, seg.T, next.T, d, true)
	}
	if closed {
		r.stroke = append(r.stroke, next.A.Add(next.N.Mul(d)))
	}
	return false
}

// cornerBackward adds the -N side of the corner between prev and seg,
// walking from seg back to prev.  The return value has the same meaning
// as for cornerForward.
func (r *Rasterizer) cornerBackward(prev, seg *strokeSegment, d float64, closed bool) bool {
	if !straight(prev, seg) && turn(prev, seg) <= 0 {
		return r.addInner(seg.A, seg, prev, d, false)
	}
	r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
	if !straight(prev, seg) {
		r.addJoin(seg.A, prev.T, seg.T, d, false)
	}
	if closed {
		r.stroke = append(r.stroke, prev.B.Sub(prev.N.Mul(d)))
	}
	return false
}

// addCap adds a line cap to the stroke outline at point P.
// T is the outward tangent direction (away from the line).
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X} // normal (90° CCW from T)

	switch r.Cap {
	case graphics.LineCapButt:
		// the offset points on both sides are connected directly

	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// semicircle from +N through T to -N
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// innerIntersection returns the point where the offset lines of s1 and s2
// on the inner side of their common point P meet.  The result is only
// valid if the part of each offset line cut off by the intersection is at
// most half the length of its segment, so that the intersections at both
// ends of a segment stay in order.
func innerIntersection(P vec.Vec2, s1, s2 *strokeSegment, d float64, positive bool) (vec.Vec2, bool) {
	cosTheta := s1.T.Dot(s2.T)
	if cosTheta > 1-1e-9 || cosTheta < -1+1e-9 {
		return vec.Vec2{}, false
	}

	// the offset lines are cut off by d*tan(θ/2)
	cut := d * math.Sqrt((1-cosTheta)/(1+cosTheta))
	if 2*cut > min(s1.L, s2.L) {
		return vec.Vec2{}, false
	}

	innerDir := s1.N.Add(s2.N)
	if !positive {
		innerDir = innerDir.Mul(-1)
	}
	innerDirLen := innerDir.Length()
	if innerDirLen < 1e-9 {
		return vec.Vec2{}, false
	}
	innerDir = innerDir.Mul(1 / innerDirLen)

	// distance from P is d / cos(θ/2)
	halfAngle := math.Sqrt((1 + cosTheta) / 2)
	return P.Add(innerDir.Mul(d / halfAngle)), true
}

// addInner adds the inner side of the corner at P, walking from segment
// from to segment to.  If the inner offset lines intersect, the
// intersection replaces the offset points of both segments and the return
// value is true.  Otherwise the outline runs through P, which keeps the
// winding number positive in the overlap of the two segments.
func (r *Rasterizer) addInner(P vec.Vec2, from, to *strokeSegment, d float64, positive bool) bool {
	if X, ok := innerIntersection(P, from, to, d, positive); ok {
		r.stroke = append(r.stroke, X)
		return true
	}
	n1, n2 := from.N.Mul(d), to.N.Mul(d)
	if !positive {
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}
	r.stroke = append(r.stroke, P.Add(n1), P, P.Add(n2))
	return false
}

// addJoin adds a round join at point P where the tangent changes from T1
// to T2.  The arc is built on the outer side of the corner, which is the
// +N side if positive is set.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X
	angle := math.Acos(max(-1, min(1, cosTheta)))

	if positive {
		// forward pass: arc from +N of T1 to +N of T2
		N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
		if sinTheta > 0 {
			r.addArc(P, d, N1, angle, false)
		} else {
			r.addArc(P, d, N1, -angle, false)
		}
	} else {
		// backward pass: arc from -N of T2 back to -N of T1
		N2 := vec.Vec2{X: T2.Y, Y: -T2.X}
		if sinTheta > 0 {
			r.addArc(P, d, N2, -angle, false)
		} else {
			r.addArc(P, d, N2, angle, false)
		}
	}
}

// addArc adds arc vertices to the stroke outline.
// center is the arc center, radius is the arc radius.
// startDir is the unit vector from center to arc start.
// sweep is the sweep angle in radians (positive = CCW).
// includeStart indicates whether to include the start point (false if caller already added it).
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius, Y: 0}).Length(),
		r.transformLinear(vec.Vec2{X: 0, Y: radius}).Length())

	// A chord subtending angle θ deviates from the circle by r*(1-cos(θ/2)).
	n := 1
	if devRadius > r.Flatness {
		angleStep := 2 * math.Acos(1-r.Flatness/devRadius)
		if angleStep <= 0 || math.IsNaN(angleStep) {
			angleStep = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/angleStep)), 1)
	}
	if math.Abs(sweep) > math.Pi {
		// at least a triangle for full circles
		n = max(n, 3)
	}

	dt := sweep / float64(n)
	startI := 0
	if !includeStart {
		startI = 1
	}
	for i := startI; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}
