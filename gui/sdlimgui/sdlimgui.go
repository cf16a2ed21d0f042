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

// Package sdlimgui is the host for the cheat console. It creates an SDL window
// with an OpenGL context and draws the overlay.Controller with dear imgui.
//
// The display of the cheat console is toggled with a hotkey. The hotkey,
// whether the console is displayed and the camera viewport are stored in the
// preferences file.
package sdlimgui

import (
	"fmt"
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/izhv/cheatconsole/assert"
	"github.com/izhv/cheatconsole/gui/sdlaudio"
	"github.com/izhv/cheatconsole/logger"
	"github.com/izhv/cheatconsole/overlay"
	"github.com/izhv/cheatconsole/sound"
)

// SdlImgui is an sdl based host for the cheat console using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     *gl21

	// polling encapsulates the waiting for events between frames
	polling *polling

	prefs *preferences

	// permission for logging the frequent and less interesting events
	perm logger.Permission

	// the cheat console and the means to draw and move it
	tk   *toolkit
	drag dragger
	ctrl *overlay.Controller

	// audio is nil if no sample is playing
	audio *sdlaudio.Audio

	running bool

	// the goroutine that created the SdlImgui. all SDL and imgui calls must be
	// made from this goroutine
	thread assert.Thread
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
// The controls are presented by the cheat console in order.
//
// MUST ONLY be called from the main thread.
func NewSdlImgui(perm logger.Permission, controls ...overlay.BoundControl) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		perm:    perm,
		running: true,
		thread:  assert.NewThread(),
	}

	// window positions are never saved
	img.io.SetIniFilename("")

	var err error

	img.prefs, err = newPreferences()
	if err != nil {
		img.context.Destroy()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.plt, err = newPlatform(img,
		int32(img.prefs.windowWidth.Get().(int)),
		int32(img.prefs.windowHeight.Get().(int)))
	if err != nil {
		img.context.Destroy()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.rnd = newRenderer(img)
	err = img.rnd.start()
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.polling = newPolling(img)

	img.tk = &toolkit{}
	img.ctrl = overlay.NewController(overlay.DefaultConfig(), img.tk, controls...)

	w, h := img.plt.window.GetSize()
	img.ctrl.Initialize(img.prefs.viewport(), int(w), int(h))
	logger.Logf(logger.Allow, "sdlimgui", "screen region: %s", img.ctrl.Region())
	logger.Logf(logger.Allow, "sdlimgui", "cheat console hotkey: %s", img.prefs.hotkey.String())

	return img, nil
}

// PlayAudio loops the sound sample at the volume of the mixer. The audio is
// also sent to every recorder.
func (img *SdlImgui) PlayAudio(pcm sound.PCM, mixer *sound.Mixer, recorders ...sdlaudio.Recorder) error {
	if img.audio != nil {
		return fmt.Errorf("sdlimgui: audio is already playing")
	}

	var err error
	img.audio, err = sdlaudio.NewAudio(pcm, mixer, recorders...)
	if err != nil {
		return fmt.Errorf("sdlimgui: %w", err)
	}

	return nil
}

// Running returns false once the user has asked to quit.
func (img *SdlImgui) Running() bool {
	return img.running
}

func (img *SdlImgui) quit() {
	img.running = false
}

func (img *SdlImgui) isDisplayed() bool {
	return img.prefs.display.Get().(bool)
}

// Destroy saves the preferences and releases all resources.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.thread.Check("sdlimgui.Destroy")

	err := img.prefs.save()
	if err != nil {
		fmt.Fprintln(output, err)
	}

	if img.audio != nil {
		err = img.audio.EndMixing()
		if err != nil {
			fmt.Fprintln(output, err)
		}
	}

	img.rnd.destroy()

	err = img.plt.destroy()
	if err != nil {
		fmt.Fprintln(output, err)
	}

	img.context.Destroy()
}
