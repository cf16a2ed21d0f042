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

//go:build !release

package sdlimgui

import (
	"os"
	"testing"

	"github.com/izhv/cheatconsole/overlay"
	"github.com/izhv/cheatconsole/prefs"
	"github.com/izhv/cheatconsole/test"
)

func TestPreferences(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	p, err := newPreferences()
	test.DemandSuccess(t, err)

	// defaults
	test.ExpectEquality(t, p.display.Get().(bool), true)
	test.ExpectEquality(t, p.viewport(), overlay.FullViewport)
	test.ExpectSuccess(t, p.isHotkey("F1"))
	test.ExpectSuccess(t, p.isHotkey("f1"))
	test.ExpectFailure(t, p.isHotkey("F2"))

	// an unknown key name is rejected and the hotkey is unchanged
	test.ExpectFailure(t, p.hotkey.Set("not a key"))
	test.ExpectEquality(t, p.hotkey.String(), "F1")

	test.ExpectSuccess(t, p.hotkey.Set("F12"))
	test.ExpectSuccess(t, p.display.Set(false))
	test.ExpectSuccess(t, p.cameraX.Set(0.5))
	test.ExpectSuccess(t, p.cameraW.Set(0.5))
	test.ExpectSuccess(t, p.save())

	// a new instance reads the saved values
	p, err = newPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.display.Get().(bool), false)
	test.ExpectSuccess(t, p.isHotkey("F12"))
	test.ExpectEquality(t, p.viewport(), overlay.Viewport{X: 0.5, Y: 0, W: 0.5, H: 1})

	// the window position of the cheat console is not stored
	dsk, err := prefs.NewDisk(p.dsk.Path())
	test.DemandSuccess(t, err)
	w := &test.CompareWriter{}
	test.DemandSuccess(t, dsk.Write(w))
	test.ExpectSuccess(t, w.Compare(`camera.h :: 1
camera.w :: 0.5
camera.x :: 0.5
camera.y :: 0
overlay.display :: false
overlay.hotkey :: F12
window.height :: 720
window.width :: 1280
`))
}
