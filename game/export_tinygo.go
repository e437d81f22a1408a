//go:build tinygo

package game

import (
	"unsafe"

	"pdkit/system"
)

//export eventHandler
func eventHandler(env unsafe.Pointer, event uint32, arg uint32) int32 {
	return EventHandler(env, system.Event(event), arg)
}

// The device runtime calls update once per display frame after init.
//
//export update
func update() int32 {
	return Frame()
}
