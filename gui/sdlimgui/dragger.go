// This file is part of Cheat Console.
//
// Cheat Console is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cheat Console is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cheat Console.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/izhv/cheatconsole/overlay"
)

// the state of the mouse and of imgui as seen by the dragger
type dragInput struct {
	x, y float64

	// the left button was pressed this frame / is being held
	clicked bool
	down    bool

	// an imgui widget is being used or is under the mouse
	itemActive  bool
	itemHovered bool
}

// dragInputFromImgui must be called after imgui.NewFrame(). The item states
// are those of the previous frame
func dragInputFromImgui(tk *toolkit) dragInput {
	pos := imgui.MousePos()
	return dragInput{
		x:           float64(pos.X),
		y:           float64(pos.Y),
		clicked:     imgui.IsMouseClicked(0),
		down:        imgui.IsMouseDown(0),
		itemActive:  imgui.IsAnyItemActive(),
		itemHovered: tk.hovered,
	}
}

// dragger turns mouse movement into the overlay.Delta used to move the cheat
// console window
type dragger struct {
	dragging bool

	// mouse position at the previous frame of the drag
	lastX, lastY float64
}

// update is called once per frame with the drag area of the window. It
// returns the distance the mouse has moved since the previous frame if a drag
// is in progress.
//
// A drag begins with a left click inside the drag area that is not on a
// widget, and ends when the button is released. Using a widget cancels the
// drag.
func (drg *dragger) update(area overlay.Rect, in dragInput) overlay.Delta {
	if in.itemActive {
		drg.dragging = false
		return overlay.Delta{}
	}

	if in.clicked {
		drg.dragging = !in.itemHovered && area.Contains(in.x, in.y)
		drg.lastX = in.x
		drg.lastY = in.y
		return overlay.Delta{}
	}

	if !drg.dragging || !in.down {
		drg.dragging = false
		return overlay.Delta{}
	}

	d := overlay.Delta{
		X: in.x - drg.lastX,
		Y: in.y - drg.lastY,
	}
	drg.lastX = in.x
	drg.lastY = in.y

	return d
}

// cancel any drag in progress
func (drg *dragger) cancel() {
	drg.dragging = false
}
