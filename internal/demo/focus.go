// Package demo is a small focus timer built on the game lifecycle.
package demo

//go:generate go run pdkit/cmd/pdmain -type FocusGame

import (
	"fmt"
	"time"

	"pdkit/game"
	"pdkit/playdate"
)

// Host keycodes the timer reacts to.
const (
	KeySpace = 32
	KeyR     = 'r'
)

const (
	DefaultFocus = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

type FocusState int

const (
	FocusIdle    FocusState = iota // Waiting to start
	FocusRunning                   // Timer ticking
	FocusBreak                     // Short break
)

// FocusGame counts down focus sessions. The zero value is ready for
// registration; settings are applied once launching finishes.
type FocusGame struct {
	game.Base

	State    FocusState
	Duration time.Duration
	Break    time.Duration
	TimeLeft time.Duration
	Sessions int

	lastUpdate time.Time
	frozen     bool
	shown      string
	now        func() time.Time
}

func (f *FocusGame) DidFinishLaunching() {
	if f.Duration == 0 {
		f.Duration = DefaultFocus
	}
	if f.Break == 0 {
		f.Break = DefaultBreak
	}
	if f.now == nil {
		f.now = time.Now
	}
	f.reset()
	playdate.System().LogToConsole("focus: ready, " + formatClock(f.TimeLeft))
}

// Update advances the countdown and asks for a refresh only when the
// displayed text changed.
func (f *FocusGame) Update() bool {
	now := f.clock()
	if f.State != FocusIdle && !f.frozen {
		f.TimeLeft -= now.Sub(f.lastUpdate)
		if f.TimeLeft <= 0 {
			f.advance()
		}
	}
	f.lastUpdate = now

	text := f.String()
	if text == f.shown {
		return false
	}
	f.shown = text
	return true
}

func (f *FocusGame) advance() {
	switch f.State {
	case FocusRunning:
		f.Sessions++
		f.State = FocusBreak
		f.TimeLeft = f.Break
		playdate.System().LogToConsole(fmt.Sprintf("focus: session %d done, take a break", f.Sessions))
	case FocusBreak:
		f.reset()
	}
}

func (f *FocusGame) KeyDown(code uint32) {
	switch code {
	case KeySpace:
		if f.State == FocusIdle {
			f.State = FocusRunning
			f.lastUpdate = f.clock()
			return
		}
		f.reset()
	case KeyR:
		f.reset()
	}
}

func (f *FocusGame) WillPause()       { f.frozen = true }
func (f *FocusGame) DeviceWillLock()  { f.frozen = true }
func (f *FocusGame) DidResume()       { f.thaw() }
func (f *FocusGame) DeviceDidUnlock() { f.thaw() }

func (f *FocusGame) DeviceWillSleep() {
	playdate.System().LogToConsole("focus: low battery, " + f.String())
}

func (f *FocusGame) WillTerminate() {
	playdate.System().LogToConsole(fmt.Sprintf("focus: exiting after %d sessions", f.Sessions))
}

func (f *FocusGame) String() string {
	var status string
	switch f.State {
	case FocusIdle:
		status = "PRESS SPACE TO FOCUS"
	case FocusRunning:
		status = "FOCUSED..."
	case FocusBreak:
		status = "TAKE A BREAK!"
	}
	if f.frozen {
		status += " (paused)"
	}
	return status + "\n" + formatClock(f.TimeLeft)
}

// thaw restarts the clock so time spent paused is not counted.
func (f *FocusGame) thaw() {
	f.frozen = false
	f.lastUpdate = f.clock()
}

func (f *FocusGame) reset() {
	f.State = FocusIdle
	f.TimeLeft = f.Duration
}

func (f *FocusGame) clock() time.Time {
	if f.now == nil {
		return time.Now()
	}
	return f.now()
}

// formatClock renders d as "mm:ss", rounding partial seconds up.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
