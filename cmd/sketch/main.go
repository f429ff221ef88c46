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

// Command sketch replays a log of pointer events and writes the resulting
// drawing as SVG, PDF or PNG.
//
// Usage:
//
//	sketch [-o out.svg] [-factor 0.2] [-smooth=false] [-width 800] [-height 600] [-scale 4] [-v] events.json
//
// The event log is a JSON array of objects like
//
//	{"type": "move", "x": 120, "y": 45}
//
// where type is one of down, move, up, cancel, resize, toggle, reset and
// clear.  Positions are in screen pixels; resize events use the fields
// width and height, and move events may give the number of touches.
// Replay starts in draw mode.
//
// With -smooth=false the strokes are exported as polylines through the
// recorded points.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/export"
	"seehuhn.de/go/sketch/smooth"
)

func main() {
	out := flag.String("o", "sketch.svg", "output file (.svg, .pdf or .png)")
	factor := flag.Float64("factor", 0.2, "smoothing factor, in (0, 0.5]")
	smoothed := flag.Bool("smooth", true, "smooth the strokes; otherwise draw polylines")
	width := flag.Float64("width", 800, "width of the drawing surface in pixels")
	height := flag.Float64("height", 600, "height of the drawing surface in pixels")
	scale := flag.Float64("scale", 4, "output pixels (PNG) or points (PDF) per local unit")
	verbose := flag.Bool("v", false, "log state changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] events.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	c := sketch.New(*width, *height)
	c.Smoother.Factor = *factor
	if *verbose {
		c.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opt := &options{scale: *scale, smooth: *smoothed}
	err := run(c, flag.Arg(0), *out, opt)
	if err != nil {
		log.Fatal(err)
	}
}

type options struct {
	scale  float64
	smooth bool
}

func run(c *sketch.Canvas, in, out string, opt *options) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	events, err := readEvents(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	c.SetMode(sketch.ModeDraw)
	if err := replay(c, events); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	c.Handle(sketch.PointerUp{})

	paths, err := strokePaths(c.Drawing(), c.Smoother, opt.smooth)
	if err != nil {
		return err
	}
	log.Printf("%d strokes", len(paths))

	page := export.DefaultPage
	if b, ok := c.Drawing().Bounds(); ok {
		if b.LLx < 0 || b.LLy < 0 || b.URx > page.Width || b.URy > page.Height {
			log.Printf("drawing extends beyond the page")
		}
	}
	style := export.DefaultStyle()
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".svg":
		err = writeFile(out, func(w *os.File) error {
			return export.WriteSVG(w, page, style, paths)
		})
	case ".png":
		err = writeFile(out, func(w *os.File) error {
			return export.WritePNG(w, page, style, opt.scale, paths)
		})
	case ".pdf":
		err = export.WritePDF(out, page, style, opt.scale, paths)
	default:
		return fmt.Errorf("%s: unsupported output format %q", out, ext)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	return nil
}

// strokePaths returns one path per finished stroke of d.
func strokePaths(d *sketch.Drawing, s *smooth.Smoother, smoothed bool) ([]path.Path, error) {
	if smoothed {
		return d.Paths(context.Background(), s)
	}
	paths := make([]path.Path, len(d.Strokes))
	for i, st := range d.Strokes {
		p, err := smooth.Polyline(st.Points)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}
	return paths, nil
}

func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
