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
	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop waits for an event. the
// loop does not need to run often while the cheat console is hidden
const (
	activeSleepPeriod = 10
	idleSleepPeriod   = 500
)

type polling struct {
	img *SdlImgui

	// wake is used to preempt the timeout when we want the next frame to be
	// drawn immediately. for example, the result of a mouse click should be
	// seen without waiting for the timeout
	wake bool
}

func newPolling(img *SdlImgui) *polling {
	return &polling{
		img: img,
	}
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

func (pol *polling) wait() sdl.Event {
	var timeout int

	if pol.wake {
		pol.wake = false
	} else if pol.img.isDisplayed() {
		timeout = activeSleepPeriod
	} else {
		timeout = idleSleepPeriod
	}

	// wait for new SDL event or until the selected timeout period has elapsed
	return sdl.WaitEventTimeout(timeout)
}
