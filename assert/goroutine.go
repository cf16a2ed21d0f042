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

// Package assert contains checks for conditions that can only be the result of
// a programming error.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread remembers the goroutine it was created on.
type Thread struct {
	id uint64
}

// NewThread returns a Thread for the calling goroutine.
func NewThread() Thread {
	return Thread{id: GetGoRoutineID()}
}

// Check panics if it is called from a goroutine other than the one the Thread
// was created on. The name is used in the panic message.
func (t Thread) Check(name string) {
	if id := GetGoRoutineID(); id != t.id {
		panic(fmt.Sprintf("%s: called from goroutine %d but must be called from goroutine %d", name, id, t.id))
	}
}
