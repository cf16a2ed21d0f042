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

// the window is placed and sized by the overlay.Controller every frame. imgui
// must not move, resize or remember it
const toolkitWindowFlags = imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize |
	imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoSavedSettings

// toolkit implements the overlay.Toolkit interface with dear imgui
type toolkit struct {
	// left edge of the content area, relative to the window. used to line up
	// widgets after a label
	contentX float32

	// whether any widget was under the mouse during the most recent frame
	hovered bool
}

// BeginWindow implements the overlay.Toolkit interface.
func (tk *toolkit) BeginWindow(title string, window overlay.Rect, content overlay.Rect) {
	tk.contentX = float32(content.X)
	tk.hovered = false

	imgui.SetNextWindowPosV(imgui.Vec2{X: float32(window.X), Y: float32(window.Y)}, imgui.ConditionAlways, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: float32(window.W), Y: float32(window.H)}, imgui.ConditionAlways)

	// the top edge of the content area is decided by the height of the title
	// bar. the padding affects the other three edges
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.Vec2{
		X: float32(content.X),
		Y: float32(window.H - content.Bottom()),
	})
	imgui.BeginV(title, nil, toolkitWindowFlags)
	imgui.PopStyleVar()
}

// EndWindow implements the overlay.Toolkit interface.
func (tk *toolkit) EndWindow() {
	imgui.End()
}

// Label implements the overlay.Toolkit interface. The next widget is placed
// on the same line, after the width of the label.
func (tk *toolkit) Label(text string, width float64) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
	imgui.SameLineV(tk.contentX+float32(width), -1)
}

// the id is hidden from the display by the ## prefix
func hiddenID(id string) string {
	return "##" + id
}

// SliderInt implements the overlay.Toolkit interface.
func (tk *toolkit) SliderInt(id string, value int, min int, max int) int {
	v := int32(value)
	imgui.PushItemWidth(-1)
	defer imgui.PopItemWidth()
	changed := imgui.SliderInt(hiddenID(id), &v, int32(min), int32(max))
	tk.hovered = tk.hovered || imgui.IsItemHovered()
	if changed {
		return int(v)
	}
	return value
}

// SliderFloat implements the overlay.Toolkit interface. The value is returned
// unchanged unless the slider has been moved. imgui works with float32.
func (tk *toolkit) SliderFloat(id string, value float64, min float64, max float64) float64 {
	f := float32(value)
	imgui.PushItemWidth(-1)
	defer imgui.PopItemWidth()
	changed := imgui.SliderFloatV(hiddenID(id), &f, float32(min), float32(max), "%.1f", 0)
	tk.hovered = tk.hovered || imgui.IsItemHovered()
	if changed {
		return float64(f)
	}
	return value
}

// Toggle implements the overlay.Toolkit interface.
func (tk *toolkit) Toggle(id string, caption string, value bool) bool {
	b := value
	changed := imgui.Checkbox(caption+hiddenID(id), &b)
	tk.hovered = tk.hovered || imgui.IsItemHovered()
	if changed {
		return b
	}
	return value
}
