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

package logger

import (
	"io"
	"sync"
)

// the central logger is used from the main thread and from the audio
// goroutine so access is serialised
var central *Logger
var crit sync.Mutex

// the maximum number of entries kept by the central logger
const maxCentral = 256

func init() {
	central = NewLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	crit.Lock()
	defer crit.Unlock()
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	crit.Lock()
	defer crit.Unlock()
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	crit.Lock()
	defer crit.Unlock()
	central.Clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.Write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	crit.Lock()
	defer crit.Unlock()
	central.Tail(output, number)
}

// SetEcho prints entries to io.Writer as they are added to the central
// logger.
func SetEcho(output io.Writer, writeRecent bool) {
	crit.Lock()
	defer crit.Unlock()
	central.SetEcho(output, writeRecent)
}
