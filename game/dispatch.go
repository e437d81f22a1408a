package game

import (
	"log"
	"unsafe"

	"pdkit/system"
)

// Status codes returned to the OS.
const (
	Unhandled int32 = 0
	Handled   int32 = 1
)

// FrameRegistrar accepts the per-frame update callback.
type FrameRegistrar interface {
	SetUpdateCallback(fn func() bool)
}

// Dispatcher maps OS events onto the single game instance.
//
// Handle must be called from one thread only and never reentrantly; the
// dispatcher does no locking. Panics raised by delegate methods propagate to
// the caller untouched.
type Dispatcher struct {
	// New constructs the game. It is called once, on the first init event.
	New func() Delegate
	// Platform consumes the environment pointer of the init event.
	Platform func(env unsafe.Pointer)
	// Frames receives the update trampoline on every init event.
	Frames FrameRegistrar
	// Abort handles unrecoverable conditions. It defaults to log.Fatal and
	// is expected not to return.
	Abort func(err error)

	shared Delegate
}

// Shared returns the game instance, or nil before the first init event.
func (d *Dispatcher) Shared() Delegate {
	return d.shared
}

// Handle dispatches one event and reports whether it was handled. Exactly
// one delegate method is invoked for every recognized event; unrecognized
// codes are left to the OS.
func (d *Dispatcher) Handle(env unsafe.Pointer, event system.Event, arg uint32) int32 {
	switch event {
	case system.EventInit:
		return d.initialize(env)
	case system.EventInitLua:
		d.abort(ErrLuaUnsupported)
		return Unhandled
	}

	g := d.shared
	if g == nil {
		return Unhandled
	}
	switch event {
	case system.EventLock:
		g.DeviceWillLock()
	case system.EventUnlock:
		g.DeviceDidUnlock()
	case system.EventPause:
		g.WillPause()
	case system.EventResume:
		g.DidResume()
	case system.EventTerminate:
		g.WillTerminate()
	case system.EventKeyPressed:
		g.KeyDown(arg)
	case system.EventKeyReleased:
		g.KeyUp(arg)
	case system.EventLowPower:
		g.DeviceWillSleep()
	default:
		return Unhandled
	}
	return Handled
}

func (d *Dispatcher) initialize(env unsafe.Pointer) int32 {
	if d.shared == nil && d.New == nil {
		d.abort(ErrNoGame)
		return Unhandled
	}
	if d.Platform != nil {
		d.Platform(env)
	}
	if d.Frames != nil {
		d.Frames.SetUpdateCallback(d.update)
	}
	if d.shared == nil {
		g := d.New()
		if g == nil {
			d.abort(ErrNilGame)
			return Unhandled
		}
		d.shared = g
	}
	d.shared.DidFinishLaunching()
	return Handled
}

func (d *Dispatcher) update() bool {
	if d.shared == nil {
		return false
	}
	return d.shared.Update()
}

func (d *Dispatcher) abort(err error) {
	if d.Abort != nil {
		d.Abort(err)
		return
	}
	log.Fatal(err)
}
