package game

import "errors"

// UnsupportedError reports a runtime configuration the binding cannot serve.
// It is always fatal.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return e.Feature + " not supported"
}

// ErrLuaUnsupported is raised when the OS asks to initialize a Lua game.
var ErrLuaUnsupported = &UnsupportedError{Feature: "Lua initialization"}

// ErrNoGame is raised when the OS initializes the binding before a game was
// registered.
var ErrNoGame = errors.New("game: no game registered")

// ErrNilGame is raised when the registered factory returns no game.
var ErrNilGame = errors.New("game: factory returned nil")
