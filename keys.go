package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Arrow keys use the function-key range host keyboards report them in.
const (
	keyArrowUp    = 0xF700
	keyArrowDown  = 0xF701
	keyArrowLeft  = 0xF702
	keyArrowRight = 0xF703
)

var specialKeys = map[ebiten.Key]uint32{
	ebiten.KeyBackspace:  8,
	ebiten.KeyTab:        9,
	ebiten.KeyEnter:      13,
	ebiten.KeySpace:      ' ',
	ebiten.KeyComma:      ',',
	ebiten.KeyMinus:      '-',
	ebiten.KeyPeriod:     '.',
	ebiten.KeySlash:      '/',
	ebiten.KeySemicolon:  ';',
	ebiten.KeyEqual:      '=',
	ebiten.KeyDelete:     127,
	ebiten.KeyArrowUp:    keyArrowUp,
	ebiten.KeyArrowDown:  keyArrowDown,
	ebiten.KeyArrowLeft:  keyArrowLeft,
	ebiten.KeyArrowRight: keyArrowRight,
}

// keycode translates an ebiten key into the host keycode forwarded with
// keyPressed and keyReleased. Keys without a code are not forwarded.
func keycode(k ebiten.Key) (uint32, bool) {
	if code, ok := specialKeys[k]; ok {
		return code, true
	}
	name := k.String()
	switch {
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		return uint32(name[0] - 'A' + 'a'), true
	case len(name) == 6 && strings.HasPrefix(name, "Digit"):
		return uint32(name[5]), true
	}
	return 0, false
}
