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

	"seehuhn.de/go/geom/matrix"
)

// ViewBoxSize is the width and height of the local coordinate area which
// the fitted view shows.
const ViewBoxSize = 100

// ErrSingularView is returned by SetView for matrices which cannot be
// inverted.
var ErrSingularView = errors.New("sketch: singular view matrix")

// singularThreshold is the smallest absolute determinant accepted for a
// view matrix.
const singularThreshold = 1e-12

// FitView returns the view which shows the square [0, ViewBoxSize]² of
// local coordinates centred in a screen area of the given size, as large
// as possible without cropping.
//
// If the area is empty, the identity is returned.
func FitView(width, height float64) matrix.Matrix {
	s := min(width, height) / ViewBoxSize
	if !(s > 0) || math.IsInf(s, 0) {
		return matrix.Identity
	}
	tx := (width - ViewBoxSize*s) / 2
	ty := (height - ViewBoxSize*s) / 2
	return matrix.Scale(s, s).Translate(tx, ty)
}

// invertible reports whether m can be used as a view.  Matrix.Inv only
// rejects an exactly zero determinant, so nearly singular matrices are
// filtered here.
func invertible(m matrix.Matrix) bool {
	det := m[0]*m[3] - m[1]*m[2]
	return math.Abs(det) >= singularThreshold && !math.IsNaN(det) && !math.IsInf(det, 0)
}
