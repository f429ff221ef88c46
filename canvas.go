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

// Package sketch implements the state of a freehand drawing surface.
//
// A Canvas receives pointer events in screen coordinates, converts them to
// local coordinates using the current view, and collects the resulting
// strokes.  While a stroke is being drawn, ActivePath returns its smoothed
// outline; finished strokes are available through Paths.  Rendering the
// paths is left to the host, or to the packages raster and export.
//
// Pointer events are only recorded in draw mode.  In move mode they belong
// to the pan/zoom layer of the host, which reports the resulting view via
// SetView.
package sketch

//go:generate go run ./testcases/export

import (
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/smooth"
)

// Mode selects how pointer events are interpreted.
type Mode int

// These are the supported modes.
const (
	ModeMove Mode = iota // pointer events pan and zoom the view
	ModeDraw             // pointer events draw strokes
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeDraw:
		return "draw"
	default:
		return "invalid"
	}
}

// State is the state of the stroke recogniser.
type State int

// These are the states of a Canvas.
const (
	StateIdle    State = iota // no gesture in progress
	StateDrawing              // a stroke is being recorded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	default:
		return "invalid"
	}
}

// Canvas holds the strokes of a drawing together with the input state.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Smoother converts strokes into paths.
	Smoother *smooth.Smoother

	// OnStroke, if not nil, is called after a stroke has been finished.
	// The argument is a copy owned by the callee.
	OnStroke func(Stroke)

	// Logger receives debug messages about state changes.
	// If nil, messages are discarded.
	Logger *slog.Logger

	mode  Mode
	state State

	width, height float64
	view          matrix.Matrix
	inverse       matrix.Matrix
	customView    bool

	strokes []finished
	active  []vec.Vec2
}

// finished is a stroke together with its cached path.
type finished struct {
	Stroke
	path   path.Path
	factor float64 // the smoothing factor used for path
}

// New returns an empty Canvas for a drawing surface of the given size in
// screen pixels.  The canvas starts in move mode, with the fitted view.
func New(width, height float64) *Canvas {
	c := &Canvas{
		Smoother: smooth.NewSmoother(),
		width:    width,
		height:   height,
	}
	c.setView(FitView(width, height))
	return c
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c *Canvas) logger() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

// Mode returns the current mode.
func (c *Canvas) Mode() Mode {
	return c.mode
}

// State returns the state of the stroke recogniser.
func (c *Canvas) State() State {
	return c.state
}

// SetMode switches between move and draw mode.  Leaving draw mode while
// a stroke is in progress finishes the stroke.
func (c *Canvas) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	if c.state == StateDrawing {
		c.finish()
	}
	c.logger().Debug("mode changed", "from", c.mode, "to", m)
	c.mode = m
}

// ToggleMode switches from move mode to draw mode and back.
func (c *Canvas) ToggleMode() {
	if c.mode == ModeDraw {
		c.SetMode(ModeMove)
	} else {
		c.SetMode(ModeDraw)
	}
}

// Handle processes a single input event.  The return value indicates
// whether the visible drawing changed.
func (c *Canvas) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case PointerDown:
		if c.mode != ModeDraw || c.state != StateIdle {
			return false
		}
		c.state = StateDrawing
		c.active = nil
		c.logger().Debug("stroke started", "pos", ev.Pos)
		return false

	case PointerMove:
		if c.state != StateDrawing || ev.Touches != 1 {
			return false
		}
		c.active = append(c.active, c.ToLocal(ev.Pos))
		return true

	case PointerUp:
		if c.state != StateDrawing {
			return false
		}
		return c.finish()

	case PointerCancel:
		if c.state != StateDrawing {
			return false
		}
		changed := len(c.active) > 0
		c.logger().Debug("stroke cancelled", "points", len(c.active))
		c.active = nil
		c.state = StateIdle
		return changed

	case Resize:
		c.width, c.height = ev.Width, ev.Height
		if !c.customView {
			c.setView(FitView(ev.Width, ev.Height))
		}
		c.logger().Debug("resized", "width", ev.Width, "height", ev.Height)
		return true
	}
	return false
}

// finish moves the active stroke to the list of finished strokes.
// Gestures without any recorded points are dropped.
func (c *Canvas) finish() bool {
	pts := c.active
	c.active = nil
	c.state = StateIdle
	if len(pts) == 0 {
		return false
	}

	st := Stroke{ID: uuid.New(), Points: pts}
	c.strokes = append(c.strokes, finished{Stroke: st})
	c.logger().Debug("stroke finished", "id", st.ID, "points", len(pts))

	if c.OnStroke != nil {
		c.OnStroke(st.Clone())
	}
	return true
}

// Strokes returns copies of all finished strokes.
func (c *Canvas) Strokes() []Stroke {
	res := make([]Stroke, len(c.strokes))
	for i, f := range c.strokes {
		res[i] = f.Clone()
	}
	return res
}

// Active returns a copy of the points of the stroke in progress.
// The second return value is false if no stroke is being drawn.
func (c *Canvas) Active() ([]vec.Vec2, bool) {
	if c.state != StateDrawing {
		return nil, false
	}
	return slices.Clone(c.active), true
}

// Drawing returns a snapshot of the canvas contents.
func (c *Canvas) Drawing() *Drawing {
	d := &Drawing{Strokes: c.Strokes()}
	if pts, ok := c.Active(); ok && len(pts) > 0 {
		d.Active = pts
	}
	return d
}

// Clear removes all strokes, including the one in progress.
func (c *Canvas) Clear() {
	c.strokes = nil
	c.active = nil
	c.state = StateIdle
	c.logger().Debug("cleared")
}

// Paths returns the smoothed paths of all finished strokes, in drawing
// order.  Finished strokes never change, so their paths are computed once
// and reused until the smoothing factor changes.
func (c *Canvas) Paths() ([]path.Path, error) {
	res := make([]path.Path, len(c.strokes))
	for i := range c.strokes {
		f := &c.strokes[i]
		if f.path == nil || f.factor != c.Smoother.Factor {
			p, err := c.Smoother.Path(f.Points)
			if err != nil {
				return nil, err
			}
			f.path, f.factor = p, c.Smoother.Factor
		}
		res[i] = f.path
	}
	return res, nil
}

// ActivePath returns the smoothed path of the stroke in progress.  The
// path is recomputed on every call.  If no stroke is in progress, or if
// the stroke has no points yet, nil is returned.
func (c *Canvas) ActivePath() (path.Path, error) {
	if c.state != StateDrawing || len(c.active) == 0 {
		return nil, nil
	}
	return c.Smoother.Path(c.active)
}

// View returns the matrix which maps local coordinates to screen
// coordinates.
func (c *Canvas) View() matrix.Matrix {
	return c.view
}

// SetView sets the matrix which maps local coordinates to screen
// coordinates.  The view stays in effect until ResetView is called;
// Resize events do not change it.
func (c *Canvas) SetView(m matrix.Matrix) error {
	if !invertible(m) {
		return ErrSingularView
	}
	c.view, c.inverse = m, m.Inv()
	c.customView = true
	return nil
}

// ResetView restores the fitted view for the current surface size.
func (c *Canvas) ResetView() {
	c.customView = false
	c.setView(FitView(c.width, c.height))
}

func (c *Canvas) setView(m matrix.Matrix) {
	if !invertible(m) {
		m = matrix.Identity
	}
	c.view, c.inverse = m, m.Inv()
}

// ToLocal converts a point from screen coordinates to local coordinates.
func (c *Canvas) ToLocal(screen vec.Vec2) vec.Vec2 {
	x, y := c.inverse.Apply(screen.X, screen.Y)
	return vec.Vec2{X: x, Y: y}
}

// ToScreen converts a point from local coordinates to screen coordinates.
func (c *Canvas) ToScreen(local vec.Vec2) vec.Vec2 {
	x, y := c.view.Apply(local.X, local.Y)
	return vec.Vec2{X: x, Y: y}
}
