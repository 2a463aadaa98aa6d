// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package input

// KeyCode discriminates the key events a host delivers. Hosts translate their
// native events into these codes; anything they cannot map is KeyUnknown.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
)

var keyNames = map[KeyCode]string{
	KeyUnknown: "unknown",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyEnter:   "enter",
	KeyEscape:  "esc",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

type KeyEvent struct {
	Code KeyCode
}

// Key is shorthand for building an event from a code.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}
