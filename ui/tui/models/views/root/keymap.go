// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/termfolio/termfolio/internal/i18n"
	"github.com/termfolio/termfolio/internal/input"
)

type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Right, km.Down, km.Enter, km.Back, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right},
		{km.Up, km.Down},
		{km.Enter, km.Back, km.Quit},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap builds the bindings with help texts in the active language.
func NewKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", i18n.T("help.tabs")),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", i18n.T("help.tabs")),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", i18n.T("help.scroll")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", i18n.T("help.scroll")),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("help.select")),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("help.back")),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", i18n.T("help.quit")),
		),
	}
}

// Event maps a key press to a portfolio key event. ok is false for keys
// without a binding, including Quit which the host handles itself.
func (km KeyMap) Event(msg tea.KeyMsg) (ev input.KeyEvent, ok bool) {
	switch {
	case key.Matches(msg, km.Left):
		return input.Key(input.KeyLeft), true
	case key.Matches(msg, km.Right):
		return input.Key(input.KeyRight), true
	case key.Matches(msg, km.Up):
		return input.Key(input.KeyUp), true
	case key.Matches(msg, km.Down):
		return input.Key(input.KeyDown), true
	case key.Matches(msg, km.Enter):
		return input.Key(input.KeyEnter), true
	case key.Matches(msg, km.Back):
		return input.Key(input.KeyEscape), true
	}
	return input.KeyEvent{}, false
}
