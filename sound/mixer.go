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

// Package sound holds the master audio settings and loads the PCM data that
// is played by the audio device.
//
// The Mixer is written by the cheat console on the main thread and read by
// the audio device from its own goroutine, so its values are stored
// atomically.
package sound

import (
	"math"
	"sync/atomic"

	"github.com/izhv/cheatconsole/logger"
)

const logTag = "sound"

// Mixer holds the master volume and mute settings.
type Mixer struct {
	perm logger.Permission

	// master volume in decibels, stored as float64 bits
	volume atomic.Uint64
	muted  atomic.Bool
}

// NewMixer is the preferred method of initialisation for the Mixer type. The
// master volume starts at 0dB and the mixer is not muted.
func NewMixer(perm logger.Permission) *Mixer {
	return &Mixer{
		perm: perm,
	}
}

// MasterVolume returns the master volume in decibels.
func (mx *Mixer) MasterVolume() float64 {
	return math.Float64frombits(mx.volume.Load())
}

// SetMasterVolume sets the master volume in decibels. The value is not
// limited in any way.
func (mx *Mixer) SetMasterVolume(db float64) {
	mx.volume.Store(math.Float64bits(db))
	logger.Logf(mx.perm, logTag, "master volume set to %.1fdB", db)
}

// MasterMuted returns true if all sound is muted.
func (mx *Mixer) MasterMuted() bool {
	return mx.muted.Load()
}

// SetMasterMuted mutes or unmutes all sound.
func (mx *Mixer) SetMasterMuted(muted bool) {
	mx.muted.Store(muted)
	if muted {
		logger.Log(mx.perm, logTag, "muted")
	} else {
		logger.Log(mx.perm, logTag, "unmuted")
	}
}

// Gain returns the linear amplitude multiplier for the current settings. It
// is zero when muted.
func (mx *Mixer) Gain() float32 {
	if mx.muted.Load() {
		return 0.0
	}
	return float32(DecibelsToGain(mx.MasterVolume()))
}

// DecibelsToGain converts a volume in decibels to a linear amplitude
// multiplier.
func DecibelsToGain(db float64) float64 {
	return math.Pow(10, db/20.0)
}
