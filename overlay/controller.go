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

// Config is the fixed layout of the cheat console window.
type Config struct {
	Title   string
	Width   float64
	Height  float64
	Padding float64
}

// DefaultConfig returns the standard cheat console layout.
func DefaultConfig() Config {
	return Config{
		Title:   "Cheat Console",
		Width:   256.0,
		Height:  192.0,
		Padding: 8.0,
	}
}

// Controller draws the cheat console and keeps it inside the screen region.
type Controller struct {
	cfg      Config
	tk       Toolkit
	controls []BoundControl

	// the area of the display covered by the camera viewport
	region Rect

	// the current position and size of the window
	window Rect
}

// NewController is the preferred method of initialisation for the Controller
// type. Initialize() must be called before the first call to Tick().
func NewController(cfg Config, tk Toolkit, controls ...BoundControl) *Controller {
	return &Controller{
		cfg:      cfg,
		tk:       tk,
		controls: controls,
	}
}

// Initialize derives the screen region from the camera viewport and the size
// of the display in pixels. The window is placed in the top-right corner of
// the region.
//
// A zero-area viewport or display results in a zero-area region and window.
func (ctrl *Controller) Initialize(vp Viewport, displayWidth int, displayHeight int) {
	ctrl.region = screenRegion(vp, displayWidth, displayHeight)

	w := clamp(ctrl.cfg.Width, 0, ctrl.region.W)
	h := clamp(ctrl.cfg.Height, 0, ctrl.region.H)

	ctrl.window = Rect{
		X: ctrl.region.Right() - w,
		Y: ctrl.region.Y,
		W: w,
		H: h,
	}
}

// Tick runs a single frame of the cheat console. Nothing happens if visible
// is false. Otherwise the drag delta is applied to the window position, the
// position is clamped to the screen region and the window is drawn.
func (ctrl *Controller) Tick(visible bool, drag Delta) {
	if !visible {
		return
	}

	// the window is already inside the region if it has not been moved
	if !drag.IsZero() {
		ctrl.window.X += drag.X
		ctrl.window.Y += drag.Y
		ctrl.clampWindow()
	}

	ctrl.tk.BeginWindow(ctrl.cfg.Title, ctrl.window, ctrl.content())
	labelWidth := ctrl.window.W / 4.0
	for _, c := range ctrl.controls {
		ctrl.tk.Label(c.Label(), labelWidth)
		c.present(ctrl.tk)
	}
	ctrl.tk.EndWindow()
}

func (ctrl *Controller) clampWindow() {
	ctrl.window.X = clamp(ctrl.window.X, ctrl.region.X, ctrl.region.Right()-ctrl.window.W)
	ctrl.window.Y = clamp(ctrl.window.Y, ctrl.region.Y, ctrl.region.Bottom()-ctrl.window.H)
}

// content area is relative to the window. the extra padding at the top leaves
// space for the title bar
func (ctrl *Controller) content() Rect {
	p := ctrl.cfg.Padding
	return Rect{
		X: p,
		Y: 2.0 * p,
		W: ctrl.window.W - 2.0*p,
		H: ctrl.window.H - 3.0*p,
	}
}

// DragArea returns the area of the window, in screen coordinates, that can be
// grabbed to start dragging the window. It is the full height of the window
// less a margin on the left and right.
func (ctrl *Controller) DragArea() Rect {
	m := 2.0 * ctrl.cfg.Padding
	return Rect{
		X: ctrl.window.X + m,
		Y: ctrl.window.Y,
		W: ctrl.window.W - 2.0*m,
		H: ctrl.window.H,
	}
}

// Region returns the screen region computed by Initialize().
func (ctrl *Controller) Region() Rect {
	return ctrl.region
}

// Window returns the current window rectangle.
func (ctrl *Controller) Window() Rect {
	return ctrl.window
}

// Config returns the layout the controller was created with.
func (ctrl *Controller) Config() Config {
	return ctrl.cfg
}
