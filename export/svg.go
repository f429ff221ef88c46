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
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// SVGPathData returns the SVG path data ("d" attribute) for p, for example
// "M 0,0 C 2,0 8,-2 10,0".  Numbers use the shortest representation which
// reads back to the same value.
func SVGPathData(p path.Path) string {
	var b strings.Builder

	for cmd, pts := range p {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
		case path.CmdLineTo:
			b.WriteByte('L')
		case path.CmdQuadTo:
			b.WriteByte('Q')
		case path.CmdCubeTo:
			b.WriteByte('C')
		case path.CmdClose:
			b.WriteByte('Z')
		}
		for _, c := range pts {
			b.WriteByte(' ')
			writePoint(&b, c)
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, c vec.Vec2) {
	b.WriteString(formatNumber(c.X))
	b.WriteByte(',')
	b.WriteString(formatNumber(c.Y))
}

func formatNumber(x float64) string {
	if x == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// WriteSVG writes a standalone SVG document showing the given paths.
func WriteSVG(w io.Writer, page Page, style Style, paths []path.Path) error {
	if err := page.check(); err != nil {
		return err
	}
	if err := style.check(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	width, height := formatNumber(page.Width), formatNumber(page.Height)

	fmt.Fprintln(bw, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		width, height, width, height)
	if style.Background != nil {
		fmt.Fprintf(bw, `<rect x="0" y="0" width="%s" height="%s" fill="%s"%s/>`+"\n",
			width, height, svgColor(style.Background), svgOpacity("fill-opacity", style.Background))
	}

	stroke := style.strokeColor()
	fmt.Fprintf(bw, `<g fill="none" stroke="%s"%s stroke-width="%s" stroke-linecap="%s" stroke-linejoin="round">`+"\n",
		svgColor(stroke), svgOpacity("stroke-opacity", stroke), formatNumber(style.Width), svgLineCap(style.Cap))
	for _, p := range paths {
		fmt.Fprintf(bw, `<path d="%s"/>`+"\n", SVGPathData(dotted(p)))
	}
	fmt.Fprintln(bw, "</g>")
	fmt.Fprintln(bw, "</svg>")

	return bw.Flush()
}

func svgColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// svgOpacity returns the opacity attribute for c, or the empty string if c
// is opaque.
func svgOpacity(attr string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, formatNumber(float64(n.A)/255))
}

func svgLineCap(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "round"
	case graphics.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}
