// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package web hosts the portfolio in a browser terminal. The platform part
// only moves bytes between JavaScript and a Session.
package web

import (
	"sync"
	"time"

	"github.com/termfolio/termfolio/internal/input"
	"github.com/termfolio/termfolio/internal/logging"
	"github.com/termfolio/termfolio/internal/state"
	"github.com/termfolio/termfolio/ui/tui/render"
)

// EscapeTimeout is how long a lone ESC waits for the rest of a sequence.
const EscapeTimeout = 10 * time.Millisecond

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Session connects terminal input and output to the portfolio core.
type Session struct {
	mu       sync.Mutex
	state    *state.UiState
	handler  *input.Handler
	renderer *render.Renderer
	decoder  Decoder
	encoder  *Encoder
	width    int
	height   int
	write    func([]byte)
	escTimer *time.Timer
	escWait  time.Duration
}

// NewSession creates a session writing frames with write.
func NewSession(s *state.UiState, h *input.Handler, r *render.Renderer, write func([]byte)) *Session {
	return &Session{
		state:    s,
		handler:  h,
		renderer: r,
		encoder:  NewEncoder(),
		width:    defaultWidth,
		height:   defaultHeight,
		write:    write,
		escWait:  EscapeTimeout,
	}
}

// Input feeds raw terminal bytes and redraws when a key was handled.
func (s *Session) Input(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.escTimer != nil {
		s.escTimer.Stop()
		s.escTimer = nil
	}
	events := s.decoder.Feed(data)
	if s.decoder.Pending() {
		s.escTimer = time.AfterFunc(s.escWait, s.flush)
	}
	if len(events) > 0 {
		s.handler.HandleAll(events...)
		s.drawLocked()
	}
}

func (s *Session) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.escTimer = nil
	if events := s.decoder.Flush(); len(events) > 0 {
		s.handler.HandleAll(events...)
		s.drawLocked()
	}
}

// Resize sets the terminal size and redraws.
func (s *Session) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.width, s.height = max(width, 0), max(height, 0)
	logging.Debugf("browser terminal resized to %dx%d", s.width, s.height)
	s.drawLocked()
}

func (s *Session) Draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawLocked()
}

func (s *Session) drawLocked() {
	s.write(s.encoder.Frame(s.state.Snapshot(), s.renderer, s.width, s.height))
}

// Close stops a pending escape timer.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.escTimer != nil {
		s.escTimer.Stop()
		s.escTimer = nil
	}
}
