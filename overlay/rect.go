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

package overlay

import "fmt"

// Viewport is a camera viewport in normalised coordinates. Each component
// should be in the range 0.0 to 1.0.
type Viewport struct {
	X, Y float64
	W, H float64
}

// FullViewport covers the entire display.
var FullViewport = Viewport{X: 0, Y: 0, W: 1, H: 1}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("{%.1f,%.1f %.1fx%.1f}", r.X, r.Y, r.W, r.H)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains returns true if the point is inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Delta is the distance the pointer has moved while dragging the window. The
// zero value means no movement.
type Delta struct {
	X, Y float64
}

// IsZero returns true if the delta has no movement.
func (d Delta) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// screenRegion scales the viewport by the size of the display.
func screenRegion(vp Viewport, displayWidth, displayHeight int) Rect {
	dw := float64(displayWidth)
	dh := float64(displayHeight)
	return Rect{
		X: vp.X * dw,
		Y: vp.Y * dh,
		W: vp.W * dw,
		H: vp.H * dh,
	}
}

// clamp v to the range lo to hi. if hi is less than lo then the lower bound
// wins
func clamp[T int | float64](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
