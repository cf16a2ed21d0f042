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

// Package sdlaudio plays a looping sound sample through an SDL audio device.
// The volume of the sample follows the master settings of a sound.Mixer.
package sdlaudio

import (
	"fmt"
	"time"

	"github.com/izhv/cheatconsole/logger"
	"github.com/izhv/cheatconsole/sound"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in each buffer sent to the audio device. a shorter
// buffer means changes to the mixer are heard sooner but the feeder goroutine
// must wake more often.
//
// the following value has been discovered through trial and error. the precise
// value is not critical.
const bufferLength = 1024

// the feeder keeps this many buffers queued at the device
const queueDepth = 2

// Recorder receives a copy of every buffer sent to the audio device. Calls
// to SetAudio() are made from the goroutine that feeds the device.
type Recorder interface {
	SetAudio(samples []float32) error
	EndMixing() error
}

// Audio outputs a looping sample using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	pcm   sound.PCM
	mixer *sound.Mixer

	recorders []Recorder

	// position in the pcm data of the next sample to queue
	pos int

	samples []float32
	bytes   []byte

	quit chan bool
	done chan bool
}

// NewAudio is the preferred method of initialisation for the Audio Type. The
// SDL audio subsystem must have been initialised.
func NewAudio(pcm sound.PCM, mixer *sound.Mixer, recorders ...Recorder) (*Audio, error) {
	if pcm.SampleRate <= 0 {
		return nil, fmt.Errorf("sdlaudio: invalid sample rate (%d)", pcm.SampleRate)
	}

	aud := &Audio{
		pcm:       pcm,
		mixer:     mixer,
		recorders: recorders,
		quit:      make(chan bool),
		done:      make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(pcm.SampleRate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	// the device is opened without allowing changes so the actual spec should
	// always match the requested spec
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}
	aud.spec = actualSpec

	aud.samples = make([]float32, bufferLength)
	aud.bytes = make([]byte, bufferLength*4)

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", bufferLength)

	// prime the device before unpausing
	for n := 0; n < queueDepth; n++ {
		if err := aud.queue(); err != nil {
			sdl.CloseAudioDevice(aud.id)
			return nil, err
		}
	}

	go aud.feed()

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// feed runs in its own goroutine and tops up the device queue until EndMixing()
// is called
func (aud *Audio) feed() {
	defer close(aud.done)

	// wake twice per buffer period
	period := time.Duration(bufferLength) * time.Second / time.Duration(aud.spec.Freq) / 2
	tck := time.NewTicker(period)
	defer tck.Stop()

	threshold := uint32(bufferLength * 4 * queueDepth)

	for {
		select {
		case <-aud.quit:
			return
		case <-tck.C:
			for sdl.GetQueuedAudioSize(aud.id) < threshold {
				if err := aud.queue(); err != nil {
					logger.Log(logger.Allow, "sdlaudio", err)
					break
				}
			}
		}
	}
}

// queue the next buffer of samples at the current gain
func (aud *Audio) queue() error {
	aud.pos = fill(aud.samples, aud.pcm.Data, aud.pos, aud.mixer.Gain())
	for _, r := range aud.recorders {
		if err := r.SetAudio(aud.samples); err != nil {
			return fmt.Errorf("sdlaudio: %w", err)
		}
	}
	encode(aud.bytes, aud.samples)
	if err := sdl.QueueAudio(aud.id, aud.bytes); err != nil {
		return fmt.Errorf("sdlaudio: %w", err)
	}
	return nil
}

// EndMixing stops the feeder goroutine and closes the audio device. The
// EndMixing() function of every recorder is called. The first error
// encountered is returned.
func (aud *Audio) EndMixing() error {
	close(aud.quit)
	<-aud.done
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)

	var rerr error
	for _, r := range aud.recorders {
		if err := r.EndMixing(); err != nil && rerr == nil {
			rerr = fmt.Errorf("sdlaudio: %w", err)
		}
	}

	return rerr
}
