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

package sdlaudio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/izhv/cheatconsole/test"
)

func TestFillLoops(t *testing.T) {
	source := []float32{0.1, 0.2, 0.3}
	buffer := make([]float32, 5)

	pos := fill(buffer, source, 0, 1.0)
	test.ExpectEquality(t, pos, 2)
	for i, v := range []float32{0.1, 0.2, 0.3, 0.1, 0.2} {
		test.ExpectEquality(t, buffer[i], v, i)
	}

	pos = fill(buffer, source, pos, 1.0)
	test.ExpectEquality(t, pos, 1)
	for i, v := range []float32{0.3, 0.1, 0.2, 0.3, 0.1} {
		test.ExpectEquality(t, buffer[i], v, i)
	}
}

func TestFillGain(t *testing.T) {
	source := []float32{0.5, -0.5, 0.05}
	buffer := make([]float32, 3)

	fill(buffer, source, 0, 0.0)
	for i := range buffer {
		test.ExpectEquality(t, buffer[i], 0.0, i)
	}

	// amplified samples are limited
	fill(buffer, source, 0, 10.0)
	test.ExpectEquality(t, buffer[0], 1.0)
	test.ExpectEquality(t, buffer[1], -1.0)
	test.ExpectApproximate(t, buffer[2], 0.5, 0.0001)
}

func TestFillEmpty(t *testing.T) {
	buffer := []float32{1, 1, 1}
	pos := fill(buffer, nil, 10, 1.0)
	test.ExpectEquality(t, pos, 0)
	for i := range buffer {
		test.ExpectEquality(t, buffer[i], 0.0, i)
	}
}

func TestEncode(t *testing.T) {
	samples := []float32{1.0, -0.25}
	b := make([]byte, len(samples)*4)
	encode(b, samples)
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(b[0:])), 1.0)
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(b[4:])), -0.25)
}
