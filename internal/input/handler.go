// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package input turns key events into UI state transitions. It performs no I/O
// of its own besides debug logging.
package input

import (
	"math"

	"github.com/termfolio/termfolio/internal/logging"
	"github.com/termfolio/termfolio/internal/state"
)

type Handler struct {
	state *state.UiState
}

func NewHandler(s *state.UiState) *Handler {
	return &Handler{state: s}
}

// Handle applies ev to the shared state. Tab selection wraps around on both
// ends and the scroll offset saturates at zero and at its maximum.
func (h *Handler) Handle(ev KeyEvent) {
	switch ev.Code {
	case KeyLeft:
		h.state.Update(func(c *state.Cursor, n int) {
			if c.Tab == 0 {
				c.Tab = n - 1
			} else {
				c.Tab--
			}
		})
	case KeyRight:
		h.state.Update(func(c *state.Cursor, n int) {
			if c.Tab == n-1 {
				c.Tab = 0
			} else {
				c.Tab++
			}
		})
	case KeyUp:
		h.state.Update(func(c *state.Cursor, _ int) {
			if c.Scroll > 0 {
				c.Scroll--
			}
		})
	case KeyDown:
		h.state.Update(func(c *state.Cursor, _ int) {
			if c.Scroll < math.MaxUint16 {
				c.Scroll++
			}
		})
	case KeyEnter, KeyEscape:
		// Reserved: drilling into a tab and navigating back are not defined yet.
		logging.Debugf("reserved key %s ignored", ev.Code)
	}
}

// HandleAll applies events in order.
func (h *Handler) HandleAll(events ...KeyEvent) {
	for _, ev := range events {
		h.Handle(ev)
	}
}
