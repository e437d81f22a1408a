// Package game defines the lifecycle contract a game implements and the
// dispatcher that routes OS events to it.
package game

// Delegate is the set of callbacks the OS drives over the life of a game.
// Embed Base to inherit no-op defaults and override only what you need.
type Delegate interface {
	// Update is called once per frame by the frame driver, not by the
	// dispatcher. Return true to have the display refreshed.
	Update() bool

	// WillPause is called before the system pauses the game, e.g. when the
	// menu button is pressed.
	WillPause()
	// DidResume is called before the system resumes the game.
	DidResume()

	// DidFinishLaunching is called once initialization has finished.
	DidFinishLaunching()
	// WillTerminate is called when the player exits the game. Save state
	// here; the process may exit right after it returns.
	WillTerminate()

	// DeviceWillSleep is called before low-power sleep due to low battery.
	DeviceWillSleep()
	// DeviceWillLock is called when the device is locked while running.
	DeviceWillLock()
	// DeviceDidUnlock is called when the device is unlocked.
	DeviceDidUnlock()

	// KeyDown and KeyUp carry host keyboard keycodes. Only the simulator
	// sends them; games must not depend on them.
	KeyDown(code uint32)
	KeyUp(code uint32)
}

// Base provides the default behavior for every Delegate method.
type Base struct{}

func (Base) Update() bool        { return false }
func (Base) WillPause()          {}
func (Base) DidResume()          {}
func (Base) DidFinishLaunching() {}
func (Base) WillTerminate()      {}
func (Base) DeviceWillSleep()    {}
func (Base) DeviceWillLock()     {}
func (Base) DeviceDidUnlock()    {}
func (Base) KeyDown(uint32)      {}
func (Base) KeyUp(uint32)        {}

var _ Delegate = Base{}
