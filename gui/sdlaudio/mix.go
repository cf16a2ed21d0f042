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
)

// fill the buffer with samples from the looping source, beginning at position
// pos. each sample is multiplied by gain and limited to the range -1.0 to 1.0.
// returns the position at which the next call should continue
func fill(buffer []float32, source []float32, pos int, gain float32) int {
	if len(source) == 0 {
		for i := range buffer {
			buffer[i] = 0
		}
		return 0
	}

	for i := range buffer {
		if pos >= len(source) {
			pos = 0
		}
		v := source[pos] * gain
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		buffer[i] = v
		pos++
	}

	return pos
}

// encode float32 samples as little endian bytes, as required by the
// AUDIO_F32LSB format
func encode(dst []byte, samples []float32) {
	for i, s := range samples {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(s))
	}
}
