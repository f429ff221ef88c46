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

package export

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the paths to a single-page PDF file.  One local unit
// corresponds to scale PDF points.
//
// Colours are written in the DeviceRGB colour space.  The alpha channel is
// ignored.
func WritePDF(fileName string, page Page, style Style, scale float64, paths []path.Path) error {
	if err := page.check(); err != nil {
		return err
	}
	if err := style.check(); err != nil {
		return err
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return errBadScale
	}

	w, h := page.Width*scale, page.Height*scale
	paper := &pdf.Rectangle{URx: w, URy: h}
	out, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if style.Background != nil {
		r, g, b := rgb(style.Background)
		out.SetFillColor(pdfcolor.DeviceRGB{r, g, b})
		out.Rectangle(0, 0, w, h)
		out.Fill()
	}

	// PDF has the origin at the bottom left
	out.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h})

	r, g, b := rgb(style.strokeColor())
	out.SetStrokeColor(pdfcolor.DeviceRGB{r, g, b})
	out.SetLineWidth(style.Width)
	out.SetLineCap(style.Cap)
	out.SetLineJoin(graphics.LineJoinRound)

	for _, p := range paths {
		for cmd, pts := range pdfPath(p) {
			switch cmd {
			case path.CmdMoveTo:
				out.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				out.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				out.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				out.ClosePath()
			}
		}
	}
	if len(paths) > 0 {
		out.Stroke()
	}

	return out.Close()
}

// pdfPath returns p using only the path operators of PDF content streams.
// Quadratic segments are converted to cubic ones.
func pdfPath(p path.Path) path.Path {
	return dotted(p.ToCubic())
}

// rgb returns the non-premultiplied red, green and blue components of c,
// in the range [0, 1].
func rgb(c color.Color) (r, g, b float64) {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return float64(n.R) / 0xffff, float64(n.G) / 0xffff, float64(n.B) / 0xffff
}
