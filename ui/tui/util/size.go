// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

type Size struct {
	Width  int
	Height int
}

func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = NonNegative(msg.Width), NonNegative(msg.Height)
		return true
	}
	return false
}

// Area returns the drawing area covering the whole size, anchored at the origin.
func (s Size) Area() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}
