// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package web

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/termfolio/termfolio/internal/input"
	"github.com/termfolio/termfolio/internal/state"
	"github.com/termfolio/termfolio/ui/tui/render"
)

func codes(events []input.KeyEvent) []input.KeyCode {
	out := make([]input.KeyCode, len(events))
	for i, ev := range events {
		out[i] = ev.Code
	}
	return out
}

func equal(a, b []input.KeyCode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDecoder_Feed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []input.KeyCode
	}{
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []input.KeyCode{input.KeyUp, input.KeyDown, input.KeyRight, input.KeyLeft}},
		{"csi with modifiers", "\x1b[1;5C", []input.KeyCode{input.KeyRight}},
		{"ss3 arrows", "\x1bOA\x1bOD", []input.KeyCode{input.KeyUp, input.KeyLeft}},
		{"enter", "\r", []input.KeyCode{input.KeyEnter}},
		{"vim keys", "hjkl", []input.KeyCode{input.KeyLeft, input.KeyDown, input.KeyUp, input.KeyRight}},
		{"unknown csi", "\x1b[Z\x1b[3~", nil},
		{"plain text", "xyz", nil},
		{"double escape", "\x1b\x1b[A", []input.KeyCode{input.KeyEscape, input.KeyUp}},
		{"alt key", "\x1bx", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decoder
			got := codes(d.Feed([]byte(tt.in)))
			if !equal(got, tt.want) {
				t.Fatalf("Feed(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if d.Pending() {
				t.Fatalf("nothing should stay buffered")
			}
		})
	}
}

func TestDecoder_SplitSequence(t *testing.T) {
	var d Decoder
	if got := d.Feed([]byte("\x1b[")); len(got) != 0 || !d.Pending() {
		t.Fatalf("incomplete sequence must stay buffered, got %v", got)
	}
	got := codes(d.Feed([]byte("1;2")))
	if len(got) != 0 {
		t.Fatalf("still incomplete, got %v", got)
	}
	got = codes(d.Feed([]byte("D")))
	if !equal(got, []input.KeyCode{input.KeyLeft}) || d.Pending() {
		t.Fatalf("got %v", got)
	}
}

func TestDecoder_LoneEscape(t *testing.T) {
	var d Decoder
	if got := d.Feed([]byte{esc}); len(got) != 0 || !d.Pending() {
		t.Fatalf("lone ESC must wait")
	}
	if got := codes(d.Flush()); !equal(got, []input.KeyCode{input.KeyEscape}) {
		t.Fatalf("Flush = %v", got)
	}
	if d.Pending() || d.Flush() != nil {
		t.Fatalf("Flush must clear the buffer")
	}

	d.Feed([]byte("\x1b[1"))
	if got := d.Flush(); got != nil {
		t.Fatalf("partial sequence must be dropped, got %v", got)
	}
}

func TestDecoder_RunawaySequence(t *testing.T) {
	var d Decoder
	d.Feed([]byte("\x1b[" + strings.Repeat("1", 20)))
	if d.Pending() {
		t.Fatalf("oversized sequence must be dropped")
	}
}

func newState(t *testing.T) (*state.UiState, *input.Handler) {
	t.Helper()
	s, err := state.New([]string{"ABOUT ME", "CONTRIBUTIONS", "TECH BLOG", "BOOKS REVIEW", "SOCIAL"})
	if err != nil {
		t.Fatalf("state.New: %v", err)
	}
	return s, input.NewHandler(s)
}

func TestEncoder_Frame(t *testing.T) {
	s, _ := newState(t)
	frame := string(NewEncoder().Frame(s.Snapshot(), render.New(), 80, 12))

	if !strings.HasPrefix(frame, ansi.HideCursor+ansi.CursorHomePosition) {
		t.Fatalf("frame must start by homing the cursor: %q", frame[:12])
	}
	if !strings.Contains(frame, "38;2;181;137;0") {
		t.Fatalf("accent color missing from frame")
	}
	if !strings.Contains(frame, "48;2;7;54;66") {
		t.Fatalf("background color missing from frame")
	}
	rows := strings.Split(ansi.Strip(frame), "\r\n")
	if len(rows) != 12 {
		t.Fatalf("frame has %d rows, want 12", len(rows))
	}
	if !strings.Contains(rows[0], "ABOUT ME  |  CONTRIBUTIONS") {
		t.Fatalf("header row = %q", rows[0])
	}
}

type sink struct {
	mu     sync.Mutex
	frames []string
}

func (s *sink) write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, string(p))
}

func (s *sink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

func TestSession(t *testing.T) {
	s, h := newState(t)
	out := &sink{}
	session := NewSession(s, h, render.New(), out.write)
	defer session.Close()

	session.Resize(60, 10)
	if out.count() != 1 {
		t.Fatalf("resize must redraw")
	}

	session.Input([]byte("\x1b[C\x1b[C\x1b[D\x1b[B\x1b[B\x1b[B\x1b[A"))
	snap := s.Snapshot()
	if snap.CurrentLabel() != "CONTRIBUTIONS" || snap.ScrollOffset != 2 {
		t.Fatalf("unexpected state %+v", snap)
	}
	if out.count() != 2 {
		t.Fatalf("input must redraw once per chunk, got %d frames", out.count())
	}

	session.Input([]byte("x"))
	if out.count() != 2 {
		t.Fatalf("ignored input must not redraw")
	}
}

func TestSession_EscapeTimeout(t *testing.T) {
	s, h := newState(t)
	out := &sink{}
	session := NewSession(s, h, render.New(), out.write)
	defer session.Close()

	session.Input([]byte{esc})
	deadline := time.Now().Add(2 * time.Second)
	for out.count() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("lone ESC was never flushed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// ESC followed by the rest of a sequence in time is one key
	session.escWait = time.Hour
	session.Input([]byte{esc})
	session.Input([]byte("[C"))
	if got := s.Snapshot().CurrentTab; got != 1 {
		t.Fatalf("split arrow not decoded, tab = %d", got)
	}
}
