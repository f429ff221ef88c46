// Command export writes the test strokes and their smoothed paths to JSON,
// for comparison with other implementations of the smoothing algorithm.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/smooth"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	factor := flag.Float64("factor", smooth.DefaultFactor, "smoothing factor")
	outName := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	s := &smooth.Smoother{Factor: *factor}

	out := struct {
		Factor    float64        `json:"factor"`
		TestCases []jsonTestCase `json:"testcases"`
	}{Factor: *factor}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			p, err := s.Path(tc.Points)
			if err != nil {
				log.Fatalf("%s_%s: %v", category, tc.Name, err)
			}
			out.TestCases = append(out.TestCases, jsonTestCase{
				Name:   category + "_" + tc.Name,
				Points: pointsToJSON(tc.Points),
				Path:   pathToJSON(p),
			})
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outName), 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*outName)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Points [][]float64   `json:"points"`
	Path   []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, pt := range pts {
		res[i] = []float64{pt.X, pt.Y}
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		var seg jsonSegment
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = pointsToJSON(pts)
		segs = append(segs, seg)
	}
	return segs
}
