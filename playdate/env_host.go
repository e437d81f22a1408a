//go:build !tinygo

package playdate

import "unsafe"

// On host builds the environment is a Go value owned by the simulator.
func bind(pointer unsafe.Pointer) *API {
	return (*API)(pointer)
}
