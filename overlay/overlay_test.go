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

package overlay_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/izhv/cheatconsole/overlay"
	"github.com/izhv/cheatconsole/test"
)

// toolkit records what was drawn and returns scripted widget values. widgets
// without a scripted value return the value they were given
type toolkit struct {
	windows   int
	window    overlay.Rect
	content   overlay.Rect
	labels    []string
	presented map[string]any

	ints   map[string]int
	floats map[string]float64
	bools  map[string]bool
}

func newToolkit() *toolkit {
	return &toolkit{
		presented: make(map[string]any),
		ints:      make(map[string]int),
		floats:    make(map[string]float64),
		bools:     make(map[string]bool),
	}
}

func (tk *toolkit) BeginWindow(title string, window overlay.Rect, content overlay.Rect) {
	tk.windows++
	tk.window = window
	tk.content = content
	tk.labels = tk.labels[:0]
}

func (tk *toolkit) EndWindow() {}

func (tk *toolkit) Label(text string, width float64) {
	tk.labels = append(tk.labels, text)
}

func (tk *toolkit) SliderInt(id string, value int, min int, max int) int {
	tk.presented[id] = value
	if v, ok := tk.ints[id]; ok {
		return v
	}
	return value
}

func (tk *toolkit) SliderFloat(id string, value float64, min float64, max float64) float64 {
	tk.presented[id] = value
	if v, ok := tk.floats[id]; ok {
		return v
	}
	return value
}

func (tk *toolkit) Toggle(id string, caption string, value bool) bool {
	tk.presented[id] = value
	if v, ok := tk.bools[id]; ok {
		return v
	}
	return value
}

// state implements all three state holder interfaces and counts writes
type state struct {
	currency    int
	interactive bool
	volume      float64
	muted       bool
	writes      int
}

func (s *state) Currency() int { return s.currency }
func (s *state) SetCurrency(v int) { s.currency = v; s.writes++ }
func (s *state) InteractiveMode() bool { return s.interactive }
func (s *state) SetInteractiveMode(v bool) { s.interactive = v; s.writes++ }
func (s *state) MasterVolume() float64 { return s.volume }
func (s *state) SetMasterVolume(v float64) { s.volume = v; s.writes++ }
func (s *state) MasterMuted() bool { return s.muted }
func (s *state) SetMasterMuted(v bool) { s.muted = v; s.writes++ }

func newController(tk *toolkit, s *state) *overlay.Controller {
	return overlay.NewController(overlay.DefaultConfig(), tk, overlay.CheatControls(s, s, s)...)
}

func checkInside(t *testing.T, ctrl *overlay.Controller) {
	t.Helper()
	r := ctrl.Region()
	w := ctrl.Window()
	test.ExpectSuccess(t, w.X >= r.X, "left", w)
	test.ExpectSuccess(t, w.X <= r.Right()-w.W, "right", w)
	test.ExpectSuccess(t, w.Y >= r.Y, "top", w)
	test.ExpectSuccess(t, w.Y <= r.Bottom()-w.H, "bottom", w)
}

func TestScreenRegion(t *testing.T) {
	ctrl := newController(newToolkit(), &state{})

	for n := 0; n < 100; n++ {
		vp := overlay.Viewport{X: rand.Float64(), Y: rand.Float64(), W: rand.Float64(), H: rand.Float64()}
		dw := rand.Intn(4096) + 1
		dh := rand.Intn(4096) + 1
		ctrl.Initialize(vp, dw, dh)

		r := ctrl.Region()
		test.ExpectEquality(t, r.X, vp.X*float64(dw))
		test.ExpectEquality(t, r.Y, vp.Y*float64(dh))
		test.ExpectEquality(t, r.W, vp.W*float64(dw))
		test.ExpectEquality(t, r.H, vp.H*float64(dh))
	}
}

func TestInitialPlacement(t *testing.T) {
	ctrl := newController(newToolkit(), &state{})
	ctrl.Initialize(overlay.Viewport{X: 0.25, Y: 0.5, W: 0.5, H: 0.5}, 1920, 1080)

	r := ctrl.Region()
	w := ctrl.Window()
	test.ExpectEquality(t, r, overlay.Rect{X: 480, Y: 540, W: 960, H: 540})
	test.ExpectEquality(t, w.Right(), r.Right())
	test.ExpectEquality(t, w.Y, r.Y)
	test.ExpectEquality(t, w.W, 256.0)
	test.ExpectEquality(t, w.H, 192.0)
}

func TestDragClamp(t *testing.T) {
	tk := newToolkit()
	ctrl := newController(tk, &state{})
	ctrl.Initialize(overlay.FullViewport, 1920, 1080)
	test.ExpectEquality(t, ctrl.Window(), overlay.Rect{X: 1664, Y: 0, W: 256, H: 192})

	ctrl.Tick(true, overlay.Delta{X: 2000})
	test.ExpectEquality(t, ctrl.Window().X, 1664.0)

	ctrl.Tick(true, overlay.Delta{X: -2000})
	test.ExpectEquality(t, ctrl.Window().X, 0.0)

	ctrl.Tick(true, overlay.Delta{Y: 5000})
	test.ExpectEquality(t, ctrl.Window().Y, 1080.0-192.0)

	ctrl.Tick(true, overlay.Delta{X: 10, Y: -10})
	test.ExpectEquality(t, ctrl.Window(), overlay.Rect{X: 10, Y: 1080 - 192 - 10, W: 256, H: 192})

	// the toolkit is given the clamped window
	test.ExpectEquality(t, tk.window, ctrl.Window())
}

func TestNoDrag(t *testing.T) {
	test.ExpectSuccess(t, overlay.Delta{}.IsZero())
	test.ExpectFailure(t, overlay.Delta{X: -1}.IsZero())
	test.ExpectFailure(t, overlay.Delta{Y: 0.5}.IsZero())

	tk := newToolkit()
	ctrl := newController(tk, &state{})
	ctrl.Initialize(overlay.Viewport{X: 0.25, Y: 0.25, W: 0.5, H: 0.5}, 1920, 1080)
	ctrl.Tick(true, overlay.Delta{X: -100, Y: 50})
	before := ctrl.Window()

	// the window is drawn where it was left
	for n := 0; n < 3; n++ {
		ctrl.Tick(true, overlay.Delta{})
		test.ExpectEquality(t, ctrl.Window(), before)
		test.ExpectEquality(t, tk.window, before)
		checkInside(t, ctrl)
	}
	test.ExpectEquality(t, tk.windows, 4)
}

func TestDragSequence(t *testing.T) {
	ctrl := newController(newToolkit(), &state{})
	ctrl.Initialize(overlay.Viewport{X: 0.1, Y: 0.2, W: 0.6, H: 0.7}, 1280, 720)

	for i := 0; i < 1000; i++ {
		d := overlay.Delta{X: rand.Float64()*800 - 400, Y: rand.Float64()*800 - 400}
		ctrl.Tick(true, d)
		checkInside(t, ctrl)
		if t.Failed() {
			t.Fatalf("failed after %d ticks", i)
		}
	}
}

func TestNotVisible(t *testing.T) {
	tk := newToolkit()
	tk.ints["Currency"] = 999
	tk.bools["Master Muted"] = true

	s := &state{currency: 500, volume: 999.0}
	ctrl := newController(tk, s)
	ctrl.Initialize(overlay.FullViewport, 1920, 1080)

	before := ctrl.Window()
	ctrl.Tick(false, overlay.Delta{X: -100, Y: 100})

	test.ExpectEquality(t, ctrl.Window(), before)
	test.ExpectEquality(t, tk.windows, 0)
	test.ExpectEquality(t, s.writes, 0)
	test.ExpectEquality(t, s.currency, 500)
	test.ExpectEquality(t, s.volume, 999.0)
	test.ExpectEquality(t, s.muted, false)
}

func TestCurrencyWriteBack(t *testing.T) {
	tk := newToolkit()
	s := &state{currency: 500}
	ctrl := newController(tk, s)
	ctrl.Initialize(overlay.FullViewport, 1920, 1080)

	// slider left alone
	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, tk.presented["Currency"], any(500))
	test.ExpectEquality(t, s.currency, 500)
	test.ExpectEquality(t, s.writes, 0)

	// slider moved
	tk.ints["Currency"] = 750
	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, s.currency, 750)
	test.ExpectEquality(t, s.writes, 1)

	// value returned by the toolkit is clamped before writing
	tk.ints["Currency"] = 5000
	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, s.currency, 1000)
}

func TestVolumeClamp(t *testing.T) {
	tk := newToolkit()
	s := &state{volume: 999.0}
	ctrl := newController(tk, s)
	ctrl.Initialize(overlay.FullViewport, 1920, 1080)

	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, tk.presented["Master Volume"], any(20.0))
	test.ExpectEquality(t, s.volume, 20.0)

	s.volume = -200.0
	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, tk.presented["Master Volume"], any(-80.0))
	test.ExpectEquality(t, s.volume, -80.0)

	tk.floats["Master Volume"] = 100.0
	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, s.volume, 20.0)

	tk.floats["Master Volume"] = -12.5
	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, s.volume, -12.5)
}

func TestToggles(t *testing.T) {
	tk := newToolkit()
	s := &state{}
	ctrl := newController(tk, s)
	ctrl.Initialize(overlay.FullViewport, 800, 600)

	tk.bools["Interactive Mode"] = true
	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, s.interactive, true)
	test.ExpectEquality(t, s.muted, false)
	test.ExpectEquality(t, s.writes, 1)

	delete(tk.bools, "Interactive Mode")
	tk.bools["Master Muted"] = true
	ctrl.Tick(true, overlay.Delta{})
	test.ExpectEquality(t, s.interactive, true)
	test.ExpectEquality(t, s.muted, true)
	test.ExpectEquality(t, s.writes, 2)
}

func TestLayout(t *testing.T) {
	tk := newToolkit()
	ctrl := newController(tk, &state{})
	ctrl.Initialize(overlay.FullViewport, 1920, 1080)
	ctrl.Tick(true, overlay.Delta{})

	test.ExpectEquality(t, tk.windows, 1)
	test.ExpectEquality(t, tk.content, overlay.Rect{X: 8, Y: 16, W: 240, H: 168})
	test.ExpectEquality(t, fmt.Sprint(tk.labels), "[Currency Interactive Mode Master Volume Master Muted]")

	a := ctrl.DragArea()
	test.ExpectEquality(t, a, overlay.Rect{X: 1680, Y: 0, W: 224, H: 192})
	test.ExpectSuccess(t, a.Contains(1700, 100))
	test.ExpectFailure(t, a.Contains(1670, 100))
}

func TestDegenerate(t *testing.T) {
	ctrl := newController(newToolkit(), &state{})
	ctrl.Initialize(overlay.Viewport{}, 1920, 1080)

	test.ExpectEquality(t, ctrl.Region(), overlay.Rect{})
	test.ExpectEquality(t, ctrl.Window(), overlay.Rect{})

	ctrl.Tick(true, overlay.Delta{X: 50, Y: -50})
	test.ExpectEquality(t, ctrl.Window(), overlay.Rect{})

	// region smaller than the configured window
	ctrl.Initialize(overlay.FullViewport, 100, 1080)
	test.ExpectEquality(t, ctrl.Window().W, 100.0)
	test.ExpectEquality(t, ctrl.Window().H, 192.0)
	ctrl.Tick(true, overlay.Delta{X: 50})
	checkInside(t, ctrl)
}
