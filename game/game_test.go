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

package game_test

import (
	"strings"
	"testing"

	"github.com/izhv/cheatconsole/game"
	"github.com/izhv/cheatconsole/logger"
	"github.com/izhv/cheatconsole/test"
)

func TestInteractiveMode(t *testing.T) {
	logger.Clear()

	s := game.NewState(logger.Allow)
	test.ExpectEquality(t, s.InteractiveMode(), false)

	s.SetInteractiveMode(true)
	test.ExpectEquality(t, s.InteractiveMode(), true)
	s.SetInteractiveMode(false)
	test.ExpectEquality(t, s.InteractiveMode(), false)

	w := &strings.Builder{}
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "game: interactive mode enabled\ngame: interactive mode disabled\n")
}
