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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when EndMixing() is called. It is therefore only suitable for short
// recordings.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/izhv/cheatconsole/logger"
)

// the bit depth of the WAV file
const bitDepth = 16

// WavWriter implements the sdlaudio.Recorder interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavwriter: invalid sample rate (%d)", sampleRate)
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// SetAudio implements the sdlaudio.Recorder interface. Samples should be in
// the range -1.0 to 1.0 and are limited to that range if they are not.
func (aw *WavWriter) SetAudio(samples []float32) error {
	const max = 1<<(bitDepth-1) - 1

	for _, s := range samples {
		v := int(s * max)
		if v > max {
			v = max
		} else if v < -max {
			v = -max
		}
		aw.buffer = append(aw.buffer, v)
	}

	return nil
}

// EndMixing implements the sdlaudio.Recorder interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	// audio format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
