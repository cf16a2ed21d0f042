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
	"fmt"
	"strings"

	"github.com/izhv/cheatconsole/overlay"
	"github.com/izhv/cheatconsole/prefs"
	"github.com/izhv/cheatconsole/resources"
	"github.com/veandco/go-sdl2/sdl"
)

type preferences struct {
	dsk *prefs.Disk

	// whether the cheat console is displayed
	display prefs.Bool

	// name of the key that toggles the display. names are as understood by
	// sdl.GetKeyFromName()
	hotkey prefs.String

	// camera viewport in normalised coordinates
	cameraX prefs.Float
	cameraY prefs.Float
	cameraW prefs.Float
	cameraH prefs.Float

	// size of the SDL window
	windowWidth  prefs.Int
	windowHeight prefs.Int
}

func newPreferences() (*preferences, error) {
	p := &preferences{}
	p.setDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{key: "overlay.display", p: &p.display},
		{key: "overlay.hotkey", p: &p.hotkey},
		{key: "camera.x", p: &p.cameraX},
		{key: "camera.y", p: &p.cameraY},
		{key: "camera.w", p: &p.cameraW},
		{key: "camera.h", p: &p.cameraH},
		{key: "window.width", p: &p.windowWidth},
		{key: "window.height", p: &p.windowHeight},
	} {
		err = p.dsk.Add(e.key, e.p)
		if err != nil {
			return nil, err
		}
	}

	// hotkey must name a key that SDL knows about
	p.hotkey.SetHookPre(func(v prefs.Value) error {
		if sdl.GetKeyFromName(fmt.Sprintf("%v", v)) == 0 {
			return fmt.Errorf("unknown key name (%v)", v)
		}
		return nil
	})

	// load preferences from disk
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// the zero values of the pref types are not suitable defaults for all values
func (p *preferences) setDefaults() {
	p.display.Set(true)
	p.hotkey.Set("F1")
	p.cameraX.Set(0.0)
	p.cameraY.Set(0.0)
	p.cameraW.Set(1.0)
	p.cameraH.Set(1.0)
	p.windowWidth.Set(1280)
	p.windowHeight.Set(720)
}

// viewport returns the camera viewport described by the preferences.
func (p *preferences) viewport() overlay.Viewport {
	return overlay.Viewport{
		X: p.cameraX.Get().(float64),
		Y: p.cameraY.Get().(float64),
		W: p.cameraW.Get().(float64),
		H: p.cameraH.Get().(float64),
	}
}

// isHotkey returns true if the key name matches the hotkey preference.
func (p *preferences) isHotkey(name string) bool {
	return strings.EqualFold(name, p.hotkey.String())
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
