// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the bubbletea model hosting the portfolio frame.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/termfolio/termfolio/buildvars"
	"github.com/termfolio/termfolio/internal/input"
	"github.com/termfolio/termfolio/internal/logging"
	"github.com/termfolio/termfolio/internal/state"
	windowtitle "github.com/termfolio/termfolio/ui/tui/models/helpers/title"
	"github.com/termfolio/termfolio/ui/tui/render"
	"github.com/termfolio/termfolio/ui/tui/surface"
	"github.com/termfolio/termfolio/ui/tui/util"
)

const title string = "Termfolio"

// frameCacheSize bounds the number of rendered frames kept around.
const frameCacheSize = 64

type frameKey struct {
	tab    int
	scroll uint16
	width  int
	height int
}

type Model struct {
	state        *state.UiState
	handler      *input.Handler
	renderer     *render.Renderer
	keys         KeyMap
	size         util.Size
	frames       *lru.Cache[frameKey, string]
	titleHandler *windowtitle.TitleHandler
}

func New(s *state.UiState, h *input.Handler, r *render.Renderer) (*Model, error) {
	frames, err := lru.New[frameKey, string](frameCacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not create frame cache: %w", err)
	}

	return &Model{
		state:        s,
		handler:      h,
		renderer:     r,
		keys:         NewKeyMap(),
		frames:       frames,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | "),
	}, nil
}

func (m *Model) KeyMap() KeyMap { return m.keys }

func (m *Model) Init() tea.Cmd {
	return tea.Sequence(m.titleHandler.Init(), windowtitle.Set(m.state.Snapshot().CurrentLabel()))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		ev, ok := m.keys.Event(msg)
		if !ok {
			return m, nil
		}
		before := m.state.Snapshot().CurrentTab
		m.handler.Handle(ev)
		if snap := m.state.Snapshot(); snap.CurrentTab != before {
			logging.Debugf("tab %d selected", snap.CurrentTab)
			return m, windowtitle.Set(snap.CurrentLabel())
		}
		return m, nil
	}
	// handle window size messages
	if m.size.Update(msg) {
		return m, nil
	}
	// handle window title messages
	return m, m.titleHandler.Handle(msg)
}

// View renders the frame for the current state, reusing a cached frame when
// the same state and size were drawn before.
func (m *Model) View() string {
	area := m.size.Area()
	if area.Empty() {
		return ""
	}

	snap := m.state.Snapshot()
	k := frameKey{tab: snap.CurrentTab, scroll: snap.ScrollOffset, width: area.Width, height: area.Height}
	if frame, ok := m.frames.Get(k); ok {
		return frame
	}

	canvas := surface.NewCanvas(area.Width, area.Height)
	m.renderer.Render(snap, area, canvas)
	frame := canvas.String()
	m.frames.Add(k, frame)
	return frame
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
