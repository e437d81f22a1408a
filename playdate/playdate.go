// Package playdate binds the host environment handed over by the OS at
// initialization and exposes its services to the game.
package playdate

import (
	"log"
	"time"
	"unsafe"

	"pdkit/system"
)

// DisplayAPI is the subset of display services the binding uses.
type DisplayAPI interface {
	RefreshRate() float32
	SetRefreshRate(hz float32)
}

// SystemAPI is the subset of system services the binding uses.
type SystemAPI interface {
	CurrentTimeMillis() uint32
	LogToConsole(msg string)
}

// API is the environment a host build receives behind the opaque pointer of
// the init event.
type API struct {
	Display DisplayAPI
	System  SystemAPI
}

var (
	env     unsafe.Pointer
	current *API
)

// Initialize binds the environment pointer delivered with the init event.
// Calling it again rebinds.
func Initialize(pointer unsafe.Pointer) {
	env = pointer
	current = bind(pointer)
}

// Initialized reports whether Initialize has been called with a non-nil
// environment.
func Initialized() bool {
	return env != nil
}

// Pointer returns the raw environment pointer.
func Pointer() unsafe.Pointer {
	return env
}

// Display returns the bound display services, or a stand-in backed by the
// process-wide frame driver when the environment offers none.
func Display() DisplayAPI {
	if current != nil && current.Display != nil {
		return current.Display
	}
	return &fallback
}

// System returns the bound system services, or a stand-in backed by the
// process clock and the standard logger.
func System() SystemAPI {
	if current != nil && current.System != nil {
		return current.System
	}
	return &fallback
}

type fallbackAPI struct {
	frames *system.FrameDriver
	start  time.Time
}

var fallback = fallbackAPI{frames: system.Default, start: time.Now()}

func (f *fallbackAPI) RefreshRate() float32      { return f.frames.RefreshRate() }
func (f *fallbackAPI) SetRefreshRate(hz float32) { f.frames.SetRefreshRate(hz) }
func (f *fallbackAPI) CurrentTimeMillis() uint32 {
	return uint32(time.Since(f.start).Milliseconds())
}
func (f *fallbackAPI) LogToConsole(msg string) { log.Print(msg) }
