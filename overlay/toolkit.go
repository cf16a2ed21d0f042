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

// Toolkit is the immediate mode UI used to draw the cheat console. Widget
// functions take the current value and return the value after any user
// interaction during this frame.
//
// The id argument of the widget functions is unique to the control and is
// not displayed.
type Toolkit interface {
	// BeginWindow opens the window at the supplied screen position. The
	// content rectangle is relative to the window and is the area inside
	// which the widgets should be laid out.
	BeginWindow(title string, window Rect, content Rect)
	EndWindow()

	// Label starts a new row of the layout with a label of fixed width. The
	// next widget is placed on the same row and expands to fill it.
	Label(text string, width float64)

	SliderInt(id string, value int, min int, max int) int
	SliderFloat(id string, value float64, min float64, max float64) float64
	Toggle(id string, caption string, value bool) bool
}
