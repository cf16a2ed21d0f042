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

//go:build !release

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/izhv/cheatconsole/modalflag"
	"github.com/izhv/cheatconsole/prefs"
	"github.com/izhv/cheatconsole/resources"
	"github.com/izhv/cheatconsole/test"
	"github.com/izhv/cheatconsole/version"
)

func TestShowPrefs(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	test.DemandSuccess(t, err)

	var hotkey prefs.String
	test.DemandSuccess(t, hotkey.Set("F2"))
	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("overlay.hotkey", &hotkey))
	test.DemandSuccess(t, dsk.Save())

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"PREFS"})
	md.AddSubModes("RUN", "PREFS", "VERSION")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandEquality(t, md.Mode(), "PREFS")

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, showPrefs(md, w))
	test.ExpectEquality(t, w.String(), ".cheatconsole/preferences\noverlay.hotkey :: F2\n")
}

func TestShowVersion(t *testing.T) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"version"})
	md.AddSubModes("RUN", "PREFS", "VERSION")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, md.Mode(), "VERSION")

	w := &strings.Builder{}
	test.ExpectSuccess(t, showVersion(md, w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), version.Title()))
}

func TestLoadSample(t *testing.T) {
	_, err := loadSample("no such file.wav")
	test.ExpectFailure(t, err)
}

// gui stops running after a fixed number of calls to Service()
type stoppingGui struct {
	services  int
	stopAfter int
	destroyed bool
}

func (g *stoppingGui) Destroy(_ io.Writer) {
	g.destroyed = true
}

func (g *stoppingGui) Service() {
	g.services++
}

func (g *stoppingGui) Running() bool {
	return g.services < g.stopAfter
}

func TestServiceReady(t *testing.T) {
	sync := newMainSync()
	gui := &stoppingGui{stopAfter: 1}

	test.ExpectSuccess(t, sync.serviceReady(nil, false) == nil)
	test.ExpectSuccess(t, sync.serviceReady(gui, true) == nil)

	select {
	case <-sync.serviceReady(gui, false):
	default:
		t.Errorf("running gui is not ready for servicing")
	}
}

func TestMainLoop(t *testing.T) {
	sync := newMainSync()

	result := make(chan int)
	go func() {
		result <- sync.loop(make(chan os.Signal, 1))
	}()

	// a failed creation leaves the loop with nothing to service
	sync.creator <- func() (GuiCreator, error) {
		return nil, fmt.Errorf("no display")
	}
	test.ExpectFailure(t, <-sync.creationError)

	gui := &stoppingGui{stopAfter: 3}
	sync.creator <- func() (GuiCreator, error) {
		return gui, nil
	}
	<-sync.creation
	<-sync.guiQuit

	sync.state <- stateRequest{req: reqQuit, args: 5}
	test.ExpectEquality(t, <-result, 5)

	// the gui is not serviced after it has stopped running
	test.ExpectEquality(t, gui.services, 3)
	test.ExpectSuccess(t, gui.destroyed)
}
