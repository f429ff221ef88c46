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

// Package export writes drawings as SVG, PNG and PDF files.
//
// All writers take the page size in local coordinates, a Style which is
// applied to all strokes, and the path of every stroke.  The origin of the
// local coordinate system is the top-left corner of the page and the
// y-axis points down.
package export

import (
	"errors"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Page gives the area of local coordinates which is exported.
type Page struct {
	Width, Height float64
}

// DefaultPage is the view box of a canvas.
var DefaultPage = Page{Width: 100, Height: 100}

// Style describes how strokes are painted.
type Style struct {
	// Width is the stroke width in local units.
	Width float64

	// Cap is the line cap style.  Joins are always round.
	Cap graphics.LineCapStyle

	// Color is the stroke colour.
	Color color.Color

	// Background is painted over the whole page before the strokes.
	// If nil, the background is left transparent.
	Background color.Color
}

// DefaultStyle returns black strokes of width 1 with round caps on a white
// background.
func DefaultStyle() Style {
	return Style{
		Width:      1,
		Cap:        graphics.LineCapRound,
		Color:      color.Black,
		Background: color.White,
	}
}

var (
	errEmptyPage = errors.New("export: empty page")
	errBadWidth  = errors.New("export: stroke width must be positive")
	errBadScale  = errors.New("export: scale must be positive")
)

func (p Page) check() error {
	if !(p.Width > 0 && p.Height > 0) {
		return errEmptyPage
	}
	return nil
}

func (s *Style) check() error {
	if !(s.Width > 0) {
		return errBadWidth
	}
	return nil
}

func (s *Style) strokeColor() color.Color {
	if s.Color == nil {
		return color.Black
	}
	return s.Color
}

// dotted returns p with a zero-length LineTo after every subpath which
// consists of a single MoveTo.  Such subpaths are not painted otherwise,
// but a zero-length segment shows the line cap.
func dotted(p path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var lone bool
		var buf [1]vec.Vec2
		finishDot := func() bool {
			if !lone {
				return true
			}
			lone = false
			return yield(path.CmdLineTo, buf[:])
		}
		for cmd, pts := range p {
			if cmd == path.CmdMoveTo {
				if !finishDot() {
					return
				}
				if !yield(cmd, pts) {
					return
				}
				lone = true
				buf[0] = pts[0]
				continue
			}
			lone = false
			if !yield(cmd, pts) {
				return
			}
		}
		finishDot()
	}
}
