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

// Package overlay implements the cheat console: a small debug window drawn
// over the game screen with controls that read and write live game state.
//
// The Controller owns two rectangles. The screen region is the area of the
// display covered by the camera viewport and is computed once by
// Initialize(). The window rectangle is the position of the cheat console
// itself. It starts in the top-right corner of the screen region and is moved
// by drag input, always clamped so that it lies entirely inside the region.
//
// Drawing is delegated to an implementation of the Toolkit interface. The
// Controller does not know anything about the immediate mode UI library that
// sits behind it, which means it can be tested without a window or a GPU.
//
// Every call to Tick() is a complete frame. Each BoundControl reads the value
// it is bound to, presents it with a widget and, if the widget returns a
// different value, writes the new value back straight away. There is no
// retained state between frames other than the window position.
//
//	ctrl := overlay.NewController(overlay.DefaultConfig(), tk,
//		overlay.CheatControls(inv, gm, snd)...)
//	ctrl.Initialize(overlay.FullViewport, 1920, 1080)
//
//	for {
//		ctrl.Tick(display, drag)
//	}
//
// Initialize() must be called before the first call to Tick().
package overlay
