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

package smooth

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathAll computes the smooth paths for a number of independent strokes.
// The strokes are processed in parallel; result i belongs to strokes[i].
// If any stroke fails, or if ctx is cancelled, the first error is
// returned and the result is nil.
func (s *Smoother) PathAll(ctx context.Context, strokes [][]vec.Vec2) ([]path.Path, error) {
	res := make([]path.Path, len(strokes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pts := range strokes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := s.Path(pts)
			if err != nil {
				return fmt.Errorf("stroke %d: %w", i, err)
			}
			res[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
