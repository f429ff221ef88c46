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

import "seehuhn.de/go/geom/vec"

// Event is an input event delivered to a Canvas by the host.
type Event interface {
	isEvent()
}

// PointerDown starts a gesture.  Pos is in screen coordinates.
type PointerDown struct {
	Pos vec.Vec2
}

func (PointerDown) isEvent() {}

// PointerMove reports the pointer position during a gesture.  Pos is in
// screen coordinates; Touches is the number of active touch points.
// Moves with more than one touch point belong to the pinch gesture of the
// pan/zoom layer and are not recorded.
type PointerMove struct {
	Pos     vec.Vec2
	Touches int
}

func (PointerMove) isEvent() {}

// PointerUp ends a gesture.
type PointerUp struct{}

func (PointerUp) isEvent() {}

// PointerCancel aborts a gesture, for example when another view takes
// over the pointer.
type PointerCancel struct{}

func (PointerCancel) isEvent() {}

// Resize reports the new size of the drawing surface in screen pixels.
type Resize struct {
	Width, Height float64
}

func (Resize) isEvent() {}
