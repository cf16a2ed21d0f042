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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/izhv/cheatconsole/game"
	"github.com/izhv/cheatconsole/gui/sdlaudio"
	"github.com/izhv/cheatconsole/gui/sdlimgui"
	"github.com/izhv/cheatconsole/inventory"
	"github.com/izhv/cheatconsole/logger"
	"github.com/izhv/cheatconsole/modalflag"
	"github.com/izhv/cheatconsole/overlay"
	"github.com/izhv/cheatconsole/prefs"
	"github.com/izhv/cheatconsole/resources"
	"github.com/izhv/cheatconsole/sound"
	"github.com/izhv/cheatconsole/statsview"
	"github.com/izhv/cheatconsole/version"
	"github.com/izhv/cheatconsole/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()

	// Running returns false once the gui has been asked to quit by the user
	Running() bool
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error

	// closed when the gui stops running
	guiQuit chan bool

	// always closed. see serviceReady()
	ready chan bool
}

func newMainSync() *mainSync {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
		guiQuit:       make(chan bool),
		ready:         make(chan bool),
	}
	close(sync.ready)
	return sync
}

// serviceReady returns a channel that is always ready if the gui should be
// serviced. otherwise a nil channel is returned, which is never ready
func (sync *mainSync) serviceReady(gui GuiCreator, stopped bool) <-chan bool {
	if gui == nil || stopped {
		return nil
	}
	return sync.ready
}

// #mainthread
func main() {
	sync := newMainSync()

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	exitVal := sync.loop(intChan)

	fmt.Print("\r")
	os.Exit(exitVal)
}

// loop until a quit request or an interrupt is received. every iteration of
// the loop we listen for:
//
//  1. interrupt signals
//  2. new gui creation functions
//  3. state requests
//  4. anything in the Service() function of the most recently created GUI
//
// when there is no gui to service the loop blocks until one of the other
// three events occurs. returns the value to use with os.Exit()
func (sync *mainSync) loop(intChan chan os.Signal) int {
	// can be changed with reqQuit stateRequest
	exitVal := 0

	done := false
	var gui GuiCreator
	var guiStopped bool
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// gui is a variable of type interface. make sure it is nil and
				// not a nil pointer of the concrete type
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		case <-sync.serviceReady(gui, guiStopped):
			gui.Service()
			if !gui.Running() {
				guiStopped = true
				close(sync.guiQuit)
			}
		}
	}

	return exitVal
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "PREFS":
		err = showPrefs(md, os.Stdout)

	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")
	verbose := md.AddBool("verbose", false, "log every change made with the cheat console")
	sample := md.AddString("sample", "", "wav or mp3 file to play in a loop")
	wav := md.AddString("wav", "", "record audio to wav file (requires -sample)")
	currency := md.AddInt("currency", 100, "initial currency")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	perm := logger.Verbose(*verbose)

	inv := inventory.NewInventory(&perm, *currency)
	gm := game.NewState(&perm)
	mixer := sound.NewMixer(&perm)

	var pcm sound.PCM
	var recorders []sdlaudio.Recorder
	if *sample != "" {
		pcm, err = loadSample(*sample)
		if err != nil {
			return err
		}

		// add wavwriter if wav argument has been specified
		if *wav != "" {
			aw, err := wavwriter.New(*wav, pcm.SampleRate)
			if err != nil {
				return err
			}
			recorders = append(recorders, aw)
		}
	} else if *wav != "" {
		return fmt.Errorf("-wav requires a -sample to play")
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		img, err := sdlimgui.NewSdlImgui(&perm, overlay.CheatControls(inv, gm, mixer)...)
		if err != nil {
			return nil, err
		}
		if *sample != "" {
			err = img.PlayAudio(pcm, mixer, recorders...)
			if err != nil {
				img.Destroy(os.Stderr)
				return nil, err
			}
		}
		return img, nil
	}

	// wait for creator result
	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	// wait for the gui to stop
	<-sync.guiQuit

	logger.Logf(logger.Allow, "cheatconsole", "final %s", inv)
	logger.Logf(logger.Allow, "cheatconsole", "final interactive mode: %v", gm.InteractiveMode())
	logger.Logf(logger.Allow, "cheatconsole", "final master volume: %.1fdB (muted: %v)", mixer.MasterVolume(), mixer.MasterMuted())

	return nil
}

func loadSample(filename string) (sound.PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return sound.PCM{}, err
	}
	defer f.Close()

	return sound.LoadPCM(f, filepath.Base(filename))
}

func showPrefs(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return err
	}

	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", dsk.Path())
	return dsk.Write(output)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(output, "%s\n", version.Title())
	fmt.Fprintf(output, "%s\n", version.Revision)

	return nil
}
