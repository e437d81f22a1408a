package game

import (
	"unsafe"

	"pdkit/playdate"
	"pdkit/system"
)

var (
	driver = system.Default
	std    = &Dispatcher{
		Platform: playdate.Initialize,
		Frames:   driver,
	}
)

// Register installs the constructor of the process-wide game. It is normally
// called from code generated by pdmain and must be called exactly once,
// before the OS delivers the init event.
func Register(factory func() Delegate) {
	if factory == nil {
		panic("game: Register called with nil factory")
	}
	if std.New != nil {
		panic("game: Register called twice")
	}
	std.New = factory
}

// Shared returns the process-wide game, or nil before initialization.
func Shared() Delegate {
	return std.Shared()
}

// EventHandler is the OS entry point. It forwards to the process-wide
// dispatcher.
func EventHandler(env unsafe.Pointer, event system.Event, arg uint32) int32 {
	return std.Handle(env, event, arg)
}

// Frame runs one display frame through the update callback installed by the
// init event. It returns 1 when the display should be refreshed and 0
// otherwise, including before initialization.
func Frame() int32 {
	if driver.Step() {
		return 1
	}
	return 0
}
