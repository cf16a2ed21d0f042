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

package sound

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/izhv/cheatconsole/logger"
)

// PCM is mono sample data. Samples are in the range -1.0 to 1.0.
type PCM struct {
	SampleRate int
	Data       []float32
}

// Duration returns the length of the sample data.
func (p PCM) Duration() time.Duration {
	if p.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(p.Data)) * time.Second / time.Duration(p.SampleRate)
}

// LoadPCM decodes the data in the reader. The filename extension decides the
// format: ".wav" and ".mp3" are supported. Only the first (left) channel of
// multi-channel data is kept.
func LoadPCM(r io.ReadSeeker, filename string) (PCM, error) {
	var p PCM
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		p, err = loadWAV(r)
	case ".mp3":
		p, err = loadMP3(r)
	default:
		return p, fmt.Errorf("sound: unsupported file type (%s)", filename)
	}

	if err != nil {
		return p, fmt.Errorf("sound: %w", err)
	}

	logger.Logf(logger.Allow, logTag, "%s: %d samples at %dHz (%s)", filepath.Base(filename),
		len(p.Data), p.SampleRate, p.Duration().Round(time.Millisecond))

	return p, nil
}

func loadWAV(r io.ReadSeeker) (PCM, error) {
	var p PCM

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return p, fmt.Errorf("wav: not a valid wav file")
	}

	var buf *audio.IntBuffer
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return p, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return p, fmt.Errorf("wav: no channels")
	}

	// integer samples are scaled by the largest signed value for the bit depth
	scale := float32(audio.IntMaxSignedValue(int(dec.BitDepth)))
	if scale == 0 {
		return p, fmt.Errorf("wav: unsupported bit depth (%d)", dec.BitDepth)
	}

	// 8bit samples are unsigned with silence at 128
	var offset int
	if dec.BitDepth == 8 {
		offset = 128
	}

	p.SampleRate = int(dec.SampleRate)
	p.Data = make([]float32, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := float32(buf.Data[i]-offset) / scale
		if v < -1.0 {
			v = -1.0
		} else if v > 1.0 {
			v = 1.0
		}
		p.Data = append(p.Data, v)
	}

	return p, nil
}

func loadMP3(r io.Reader) (PCM, error) {
	var p PCM

	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return p, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16bit little endian with two channels. a
	// sample frame is four bytes and the left channel is the first two
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			s := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			p.Data = append(p.Data, float32(s)/32768.0)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return p, fmt.Errorf("mp3: %w", err)
		}
	}

	p.SampleRate = dec.SampleRate()

	return p, nil
}
