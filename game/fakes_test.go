package game

import (
	"fmt"
	"unsafe"
)

// recorder is a Delegate that logs every call it receives.
type recorder struct {
	Base
	calls   []string
	refresh bool
}

func (r *recorder) Update() bool        { r.calls = append(r.calls, "Update"); return r.refresh }
func (r *recorder) WillPause()          { r.calls = append(r.calls, "WillPause") }
func (r *recorder) DidResume()          { r.calls = append(r.calls, "DidResume") }
func (r *recorder) DidFinishLaunching() { r.calls = append(r.calls, "DidFinishLaunching") }
func (r *recorder) WillTerminate()      { r.calls = append(r.calls, "WillTerminate") }
func (r *recorder) DeviceWillSleep()    { r.calls = append(r.calls, "DeviceWillSleep") }
func (r *recorder) DeviceWillLock()     { r.calls = append(r.calls, "DeviceWillLock") }
func (r *recorder) DeviceDidUnlock()    { r.calls = append(r.calls, "DeviceDidUnlock") }
func (r *recorder) KeyDown(code uint32) { r.calls = append(r.calls, fmt.Sprintf("KeyDown(%d)", code)) }
func (r *recorder) KeyUp(code uint32)   { r.calls = append(r.calls, fmt.Sprintf("KeyUp(%d)", code)) }

func (r *recorder) reset() { r.calls = nil }

// frames records update callback registrations.
type frames struct {
	installs int
	fn       func() bool
}

func (f *frames) SetUpdateCallback(fn func() bool) {
	f.installs++
	f.fn = fn
}

// harness wires a Dispatcher to fakes. Abort panics with the error so tests
// can observe the fatal path.
type harness struct {
	d          *Dispatcher
	frames     *frames
	platform   []unsafe.Pointer
	game       *recorder
	constructs int
	aborts     []error
}

func newHarness() *harness {
	h := &harness{frames: &frames{}}
	h.d = &Dispatcher{
		New: func() Delegate {
			h.constructs++
			h.game = &recorder{}
			return h.game
		},
		Platform: func(env unsafe.Pointer) { h.platform = append(h.platform, env) },
		Frames:   h.frames,
		Abort: func(err error) {
			h.aborts = append(h.aborts, err)
			panic(err)
		},
	}
	return h
}
