// Package system holds the OS-facing vocabulary of the binding: the event
// codes the console hands to the game and the frame driver that calls the
// game's update function once per display frame.
package system

import "strconv"

// Event is a lifecycle event code delivered by the OS. The numeric values
// match the C ABI, so codes the binding does not know about can still be
// represented and passed through.
type Event uint32

const (
	EventInit Event = iota
	EventInitLua
	EventLock
	EventUnlock
	EventPause
	EventResume
	EventTerminate
	EventKeyPressed  // simulator only
	EventKeyReleased // simulator only
	EventLowPower
)

var eventNames = [...]string{
	EventInit:        "init",
	EventInitLua:     "initLua",
	EventLock:        "lock",
	EventUnlock:      "unlock",
	EventPause:       "pause",
	EventResume:      "resume",
	EventTerminate:   "terminate",
	EventKeyPressed:  "keyPressed",
	EventKeyReleased: "keyReleased",
	EventLowPower:    "lowPower",
}

// Known reports whether e is one of the events this binding recognizes.
func (e Event) Known() bool {
	return e < Event(len(eventNames))
}

func (e Event) String() string {
	if e.Known() {
		return eventNames[e]
	}
	return "event(" + strconv.FormatUint(uint64(e), 10) + ")"
}
