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
	"github.com/izhv/cheatconsole/logger"
	"github.com/izhv/cheatconsole/overlay"
	"github.com/veandco/go-sdl2/sdl"
)

// Service runs a single frame. It waits for events, handles them and then
// draws the cheat console.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Service() {
	img.thread.Check("sdlimgui.Service")

	// poll for sdl event or timeout
	ev := img.polling.wait()

	// whether a mouse button down event has been polled. if it has and we
	// poll an up event in the same PollEvent() loop below, then we need to
	// "trickle" the up and down events over two frames. see commentary for
	// trickleMouseButton type
	leftMouseDownPolled := false

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			if ev.Button == sdl.BUTTON_LEFT {
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					leftMouseDownPolled = true
				case sdl.MOUSEBUTTONUP:
					if leftMouseDownPolled {
						img.plt.trickleMouseButtonLeft = trickleMouseDown
					}
				}
			}

			// the effect of the mouse button should be seen on the next frame
			// without waiting for a timeout
			img.polling.alert()
		}
	}

	img.renderFrame()
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 || ev.Type != sdl.KEYUP {
		return
	}

	switch {
	case img.prefs.isHotkey(sdl.GetKeyName(ev.Keysym.Sym)):
		display := !img.isDisplayed()
		err := img.prefs.display.Set(display)
		if err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
			return
		}
		if display {
			logger.Log(img.perm, "sdlimgui", "cheat console shown")
		} else {
			logger.Log(img.perm, "sdlimgui", "cheat console hidden")
		}
		img.polling.alert()

	case ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE:
		img.quit()
	}
}

func (img *SdlImgui) renderFrame() {
	img.plt.newFrame()
	imgui.NewFrame()

	display := img.isDisplayed()

	var drag overlay.Delta
	if display {
		drag = img.drag.update(img.ctrl.DragArea(), dragInputFromImgui(img.tk))
	} else {
		img.drag.cancel()
	}
	img.ctrl.Tick(display, drag)

	imgui.Render()

	img.rnd.preRender()
	img.rnd.render()
	img.plt.postRender()
}
