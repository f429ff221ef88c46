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

// Package raster draws stroked paths into images.
//
// Each subpath is converted into a closed outline polygon (offset lines on
// both sides, round joins, and the configured caps).  All outlines of a
// path are then filled together with the nonzero winding rule, using exact
// area coverage for anti-aliasing.  Since the outline is a single polygon,
// the edges of overlapping parts of a stroke, such as the join regions
// along a curve, are not counted twice.  Separately stroked paths are
// composited on top of each other.
package raster

//go:generate go run ../testcases/genpdf

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Rasterizer converts stroked paths to pixel coverage, the fraction of each
// pixel's area covered by the stroke.  Coverage of all paths passed to
// Stroke accumulates until Reset is called.  Internal buffers grow as
// needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms from user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Flatness controls curve approximation accuracy in device pixels.
	// Typical values: 0.25–1.0. Must be positive.
	Flatness float64

	// Width sets stroke thickness in user-space units.
	// Must be positive.
	Width float64

	// Cap sets the style for stroke endpoints (butt, round, or square).
	// Joins are always round.
	Cap graphics.LineCapStyle

	width, height int
	acc           []float32 // accumulated coverage, row by row

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// filling with 2D buffers.  Larger outlines use an active edge list.
	smallPathThreshold int

	// fill buffers
	cover       []float32 // cover change per pixel; reused as output
	area        []float32 // area within pixel
	edges       []edge    // outline edges in device coordinates
	activeIdx   []int     // indices of active edges
	rowHasEdges []bool    // per-scanline flag: true if any edge contributes

	edgeBBoxFirst bool // true if no edges added yet
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64

	// stroke buffers
	segs          []strokeSegment // segments of all subpaths, contiguous
	segsOffsets   []int           // start index of each subpath in segs
	subpathClosed []bool          // whether each subpath is closed
	dots          []vec.Vec2      // subpaths without orientation
	stroke        []vec.Vec2      // outline vertices of all subpaths
	strokeOffsets []int           // start index of each outline in stroke
}

// NewRasterizer returns a Rasterizer for a device area of the given size,
// with the identity CTM, width 1 and round caps.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
		Width:    1.0,
		Cap:      graphics.LineCapRound,

		width:  width,
		height: height,
		acc:    make([]float32, width*height),

		smallPathThreshold: smallPathThreshold,
	}
}

// Bounds returns the device area covered by the Rasterizer.
func (r *Rasterizer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Reset discards all accumulated coverage.
func (r *Rasterizer) Reset() {
	clear(r.acc)
}

// Draw uses the accumulated coverage as a mask to paint src over dst.
// The top-left corner of the device area is aligned with dst.Bounds().Min.
func (r *Rasterizer) Draw(dst draw.Image, src image.Image) {
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, r.Coverage(), image.Point{}, draw.Over)
}

// Coverage returns the accumulated coverage as an alpha mask.
func (r *Rasterizer) Coverage() *image.Alpha {
	mask := image.NewAlpha(r.Bounds())
	for i, c := range r.acc {
		mask.Pix[i] = uint8(c*255 + 0.5)
	}
	return mask
}

// composite paints one row of coverage values over the accumulated
// coverage.  The values are in [0, 1].
func (r *Rasterizer) composite(y, xMin int, coverage []float32) {
	row := r.acc[y*r.width+xMin:]
	for i, c := range coverage {
		a := row[i]
		row[i] = a + c - a*c
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each
// resulting line segment.  p0 is the start point (current point), p1 is
// control, p2 is endpoint.  All points are in user space; CTM-aware
// tolerance checking is used.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p2)
}

// flattenCubic flattens a cubic Bézier and calls emit for each resulting
// line segment.  p0 is start, p1/p2 are controls, p3 is endpoint.
// All in user space.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// segment count using Wang's formula, measured in device space
	mDev := max(r.transformLinear(d1).Length(), r.transformLinear(d2).Length())
	n := 1
	if mDev > 0 {
		// n = ceil(sqrt(3 * mDev / (4 * ε)))
		nFloat := math.Sqrt(3 * mDev / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p3)
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  Values of 0.25-1.0 are typical; 0.25 is below the threshold
	// of visual perception.
	defaultFlatness = 0.25

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// filling with 2D buffers.
	smallPathThreshold = 65536

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which segments are treated
	// as degenerate.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the maximum |sin| of the turning angle for
	// which no join is needed between consecutive segments.
	collinearityThreshold = 1e-6
)
