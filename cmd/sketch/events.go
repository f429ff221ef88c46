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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
)

// jsonEvent is one entry of an event log.
type jsonEvent struct {
	Type    string  `json:"type"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Touches int     `json:"touches,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
}

// readEvents decodes a JSON array of events.
func readEvents(r io.Reader) ([]jsonEvent, error) {
	var events []jsonEvent
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}
	return events, nil
}

// replay feeds the events into c.  Events which are not pointer events
// are mapped to the corresponding Canvas methods.
func replay(c *sketch.Canvas, events []jsonEvent) error {
	for i, ev := range events {
		pos := vec.Vec2{X: ev.X, Y: ev.Y}
		switch ev.Type {
		case "down":
			c.Handle(sketch.PointerDown{Pos: pos})
		case "move":
			touches := ev.Touches
			if touches == 0 {
				touches = 1
			}
			c.Handle(sketch.PointerMove{Pos: pos, Touches: touches})
		case "up":
			c.Handle(sketch.PointerUp{})
		case "cancel":
			c.Handle(sketch.PointerCancel{})
		case "resize":
			c.Handle(sketch.Resize{Width: ev.Width, Height: ev.Height})
		case "toggle":
			c.ToggleMode()
		case "reset":
			c.ResetView()
		case "clear":
			c.Clear()
		default:
			return fmt.Errorf("event %d: unknown type %q", i, ev.Type)
		}
	}
	return nil
}
