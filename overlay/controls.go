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

package overlay

// BoundControl is a widget bound to a single external value. The control
// owns no storage of its own. Every call to present() reads the external
// value, shows it and writes it back only if it has changed.
type BoundControl interface {
	Label() string
	present(tk Toolkit)
}

// IntSlider binds an integer value to a slider.
type IntSlider struct {
	Name     string
	Min, Max int
	Get      func() int
	Set      func(int)
}

// Label implements the BoundControl interface.
func (c IntSlider) Label() string {
	return c.Name
}

func (c IntSlider) present(tk Toolkit) {
	v := c.Get()
	nv := clamp(tk.SliderInt(c.Name, clamp(v, c.Min, c.Max), c.Min, c.Max), c.Min, c.Max)
	if nv != v {
		c.Set(nv)
	}
}

// FloatSlider binds a floating point value to a slider.
type FloatSlider struct {
	Name     string
	Min, Max float64
	Get      func() float64
	Set      func(float64)
}

// Label implements the BoundControl interface.
func (c FloatSlider) Label() string {
	return c.Name
}

func (c FloatSlider) present(tk Toolkit) {
	v := c.Get()
	nv := clamp(tk.SliderFloat(c.Name, clamp(v, c.Min, c.Max), c.Min, c.Max), c.Min, c.Max)
	if nv != v {
		c.Set(nv)
	}
}

// Toggle binds a boolean value to a checkbox. The caption is shown next to
// the checkbox.
type Toggle struct {
	Name    string
	Caption string
	Get     func() bool
	Set     func(bool)
}

// Label implements the BoundControl interface.
func (c Toggle) Label() string {
	return c.Name
}

func (c Toggle) present(tk Toolkit) {
	v := c.Get()
	nv := tk.Toggle(c.Name, c.Caption, v)
	if nv != v {
		c.Set(nv)
	}
}

// Inventory is the holder of the player's currency.
type Inventory interface {
	Currency() int
	SetCurrency(int)
}

// Game is the holder of general game state.
type Game interface {
	InteractiveMode() bool
	SetInteractiveMode(bool)
}

// Sound is the holder of the master audio settings. Volume is in decibels.
type Sound interface {
	MasterVolume() float64
	SetMasterVolume(float64)
	MasterMuted() bool
	SetMasterMuted(bool)
}

// ranges of the cheat controls
const (
	CurrencyMin     = 0
	CurrencyMax     = 1000
	MasterVolumeMin = -80.0
	MasterVolumeMax = 20.0
)

// CheatControls returns the standard set of cheat console controls bound to
// the supplied state holders.
func CheatControls(inv Inventory, gm Game, snd Sound) []BoundControl {
	return []BoundControl{
		IntSlider{
			Name: "Currency",
			Min:  CurrencyMin,
			Max:  CurrencyMax,
			Get:  inv.Currency,
			Set:  inv.SetCurrency,
		},
		Toggle{
			Name:    "Interactive Mode",
			Caption: "Enabled",
			Get:     gm.InteractiveMode,
			Set:     gm.SetInteractiveMode,
		},
		FloatSlider{
			Name: "Master Volume",
			Min:  MasterVolumeMin,
			Max:  MasterVolumeMax,
			Get:  snd.MasterVolume,
			Set:  snd.SetMasterVolume,
		},
		Toggle{
			Name:    "Master Muted",
			Caption: "Muted",
			Get:     snd.MasterMuted,
			Set:     snd.SetMasterMuted,
		},
	}
}
