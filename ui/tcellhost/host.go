// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tcellhost runs the portfolio directly on a tcell screen, without
// bubbletea.
package tcellhost

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/termfolio/termfolio/internal/input"
	"github.com/termfolio/termfolio/internal/logging"
	"github.com/termfolio/termfolio/internal/state"
	"github.com/termfolio/termfolio/ui/tui/render"
	"github.com/termfolio/termfolio/ui/tui/surface"
)

type Host struct {
	screen   tcell.Screen
	state    *state.UiState
	handler  *input.Handler
	renderer *render.Renderer
}

// New wraps an initialized screen. The caller keeps ownership of it.
func New(screen tcell.Screen, s *state.UiState, h *input.Handler, r *render.Renderer) *Host {
	return &Host{screen: screen, state: s, handler: h, renderer: r}
}

// Run opens the terminal screen, runs the event loop and restores the
// terminal on return.
func Run(ctx context.Context, s *state.UiState, h *input.Handler, r *render.Renderer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("could not initialize screen: %w", err)
	}
	defer screen.Fini()

	return New(screen, s, h, r).Run(ctx)
}

// Run draws the first frame and then handles events until a quit key, ctx
// cancellation or the screen shutting down.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := h.HandleEvent(ev); quit {
				return nil
			}
		}
	}
}

// HandleEvent applies one screen event and redraws. It reports whether the
// user asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev.Key(), ev.Rune()) {
			return true
		}
		if key, ok := MapKey(ev.Key(), ev.Rune()); ok {
			h.handler.Handle(key)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	h.Draw()
	return false
}

// Draw renders the current state into a canvas the size of the screen and
// copies it onto the screen.
func (h *Host) Draw() {
	width, height := h.screen.Size()
	canvas := surface.NewCanvas(width, height)
	h.renderer.Render(h.state.Snapshot(), canvas.Bounds(), canvas)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell, ok := canvas.Cell(x, y)
			if !ok || cell.Width == 0 {
				continue
			}
			h.screen.SetContent(x, y, cell.Rune, nil, Style(cell.Style))
		}
	}
	h.screen.Show()
}

// MapKey translates a tcell key to a portfolio key event.
func MapKey(k tcell.Key, r rune) (input.KeyEvent, bool) {
	switch k {
	case tcell.KeyLeft:
		return input.Key(input.KeyLeft), true
	case tcell.KeyRight:
		return input.Key(input.KeyRight), true
	case tcell.KeyUp:
		return input.Key(input.KeyUp), true
	case tcell.KeyDown:
		return input.Key(input.KeyDown), true
	case tcell.KeyEnter:
		return input.Key(input.KeyEnter), true
	case tcell.KeyEscape:
		return input.Key(input.KeyEscape), true
	case tcell.KeyRune:
		switch r {
		case 'h':
			return input.Key(input.KeyLeft), true
		case 'l':
			return input.Key(input.KeyRight), true
		case 'k':
			return input.Key(input.KeyUp), true
		case 'j':
			return input.Key(input.KeyDown), true
		}
	}
	logging.Debugf("unmapped tcell key %d %q", k, r)
	return input.KeyEvent{}, false
}

func isQuit(k tcell.Key, r rune) bool {
	return k == tcell.KeyCtrlC || (k == tcell.KeyRune && r == 'q')
}

// Style converts a surface style to a tcell style. Empty colors map to the
// terminal default.
func Style(s surface.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(s.Fg)).
		Background(Color(s.Bg)).
		Bold(s.Bold)
}

func Color(c lipgloss.Color) tcell.Color {
	if c == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(string(c))
}
