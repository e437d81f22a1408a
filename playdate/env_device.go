//go:build tinygo

package playdate

import "unsafe"

// On the device the pointer refers to the C PlaydateAPI table. Only the raw
// pointer is kept; services fall back to the process defaults.
func bind(pointer unsafe.Pointer) *API {
	return nil
}
