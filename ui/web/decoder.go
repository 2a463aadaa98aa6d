// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package web

import (
	"github.com/termfolio/termfolio/internal/input"
)

const esc = 0x1b

// maxSequence bounds how far a CSI sequence is scanned for its final byte.
const maxSequence = 16

// Decoder turns raw terminal input bytes into key events. Sequences split
// across Feed calls are buffered until complete. A lone ESC stays pending
// until Flush, since it may start a sequence.
type Decoder struct {
	buf []byte
}

// Feed decodes data and returns the complete key events found.
func (d *Decoder) Feed(data []byte) []input.KeyEvent {
	d.buf = append(d.buf, data...)
	var events []input.KeyEvent

	i := 0
	for i < len(d.buf) {
		b := d.buf[i]
		if b != esc {
			if ev, ok := decodeByte(b); ok {
				events = append(events, ev)
			}
			i++
			continue
		}

		n, ev, ok := decodeEscape(d.buf[i:])
		if n == 0 {
			break // incomplete
		}
		if ok {
			events = append(events, ev)
		}
		i += n
	}

	d.buf = append(d.buf[:0], d.buf[i:]...)
	return events
}

// Pending reports whether undecoded bytes are buffered.
func (d *Decoder) Pending() bool {
	return len(d.buf) > 0
}

// Flush gives up on buffered bytes. A buffered ESC is reported as the
// Escape key, anything else is dropped.
func (d *Decoder) Flush() []input.KeyEvent {
	if len(d.buf) == 0 {
		return nil
	}
	lone := len(d.buf) == 1 && d.buf[0] == esc
	d.buf = d.buf[:0]
	if lone {
		return []input.KeyEvent{input.Key(input.KeyEscape)}
	}
	return nil
}

func decodeByte(b byte) (input.KeyEvent, bool) {
	switch b {
	case '\r', '\n':
		return input.Key(input.KeyEnter), true
	case 'h':
		return input.Key(input.KeyLeft), true
	case 'l':
		return input.Key(input.KeyRight), true
	case 'k':
		return input.Key(input.KeyUp), true
	case 'j':
		return input.Key(input.KeyDown), true
	}
	return input.KeyEvent{}, false
}

// decodeEscape decodes a sequence starting with ESC. It returns the bytes
// consumed, or 0 when the sequence is incomplete.
func decodeEscape(data []byte) (int, input.KeyEvent, bool) {
	if len(data) < 2 {
		return 0, input.KeyEvent{}, false
	}
	switch data[1] {
	case esc:
		// ESC ESC: the first one stands alone
		return 1, input.Key(input.KeyEscape), true
	case '[':
		return decodeCSI(data)
	case 'O':
		if len(data) < 3 {
			return 0, input.KeyEvent{}, false
		}
		ev, ok := arrow(data[2])
		return 3, ev, ok
	}
	// Alt+key, not bound
	return 2, input.KeyEvent{}, false
}

func decodeCSI(data []byte) (int, input.KeyEvent, bool) {
	for end := 2; end < len(data) && end < maxSequence; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			ev, ok := arrow(b)
			return end + 1, ev, ok
		}
		if b < 0x20 || b > 0x7e {
			// malformed, drop the introducer
			return 2, input.KeyEvent{}, false
		}
	}
	if len(data) >= maxSequence {
		return maxSequence, input.KeyEvent{}, false
	}
	return 0, input.KeyEvent{}, false
}

func arrow(final byte) (input.KeyEvent, bool) {
	switch final {
	case 'A':
		return input.Key(input.KeyUp), true
	case 'B':
		return input.Key(input.KeyDown), true
	case 'C':
		return input.Key(input.KeyRight), true
	case 'D':
		return input.Key(input.KeyLeft), true
	}
	return input.KeyEvent{}, false
}
