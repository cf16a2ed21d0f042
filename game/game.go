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

// Package game holds general game state that is not owned by any other
// system.
package game

import (
	"github.com/izhv/cheatconsole/logger"
)

const logTag = "game"

// State is the general game state. It is not safe for concurrent use.
type State struct {
	perm logger.Permission

	// interactive mode allows the mouse to interact with the scene
	interactive bool
}

// NewState is the preferred method of initialisation for the State type.
func NewState(perm logger.Permission) *State {
	return &State{
		perm: perm,
	}
}

// InteractiveMode returns true if interactive mode is enabled.
func (s *State) InteractiveMode() bool {
	return s.interactive
}

// SetInteractiveMode enables or disables interactive mode.
func (s *State) SetInteractiveMode(interactive bool) {
	s.interactive = interactive
	if interactive {
		logger.Log(s.perm, logTag, "interactive mode enabled")
	} else {
		logger.Log(s.perm, logTag, "interactive mode disabled")
	}
}
