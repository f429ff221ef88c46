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
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/sketch/raster"
)

// Image renders the paths into a new image.  One local unit corresponds
// to scale pixels.
func Image(page Page, style Style, scale float64, paths []path.Path) (*image.NRGBA, error) {
	if err := page.check(); err != nil {
		return nil, err
	}
	if err := style.check(); err != nil {
		return nil, err
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, errBadScale
	}

	w := int(math.Ceil(page.Width * scale))
	h := int(math.Ceil(page.Height * scale))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if style.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	}

	r := raster.NewRasterizer(w, h)
	r.CTM = matrix.Scale(scale, scale)
	r.Width = style.Width
	r.Cap = style.Cap
	for _, p := range paths {
		r.Stroke(p)
	}
	r.Draw(img, image.NewUniform(style.strokeColor()))

	return img, nil
}

// WritePNG renders the paths and writes the result in PNG format.
func WritePNG(w io.Writer, page Page, style Style, scale float64, paths []path.Path) error {
	img, err := Image(page, style, scale, paths)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
