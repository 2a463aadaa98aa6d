// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders key binding help fitted to a fixed width.
package keyhelp

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Short renders bindings on one line, separated like help.Model does, and
// cuts off with an ellipsis at m.Width.
func Short(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range enabled(bindings) {
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}
	return strings.Join(fit(m, items), "")
}

// Full renders one column per group, keys left of their descriptions.
// Groups without enabled bindings are skipped.
func Full(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		group = enabled(group)
		if len(group) == 0 {
			continue
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		keys := slices.Map(group, func(b key.Binding) string { return b.Help().Key })
		descriptions := slices.Map(group, func(b key.Binding) string { return b.Help().Desc })
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

func enabled(bindings []key.Binding) []key.Binding {
	var out []key.Binding
	for _, b := range bindings {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}

// fit keeps leading items while they fit in m.Width. When an item has to be
// dropped the ellipsis takes its place, if it still fits.
func fit(m help.Model, items []string) []string {
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var out []string
	used := 0
	for i, item := range items {
		itemLen := lipgloss.Width(item)
		reserve := tailLen
		if i == len(items)-1 {
			reserve = 0
		}
		if used+itemLen+reserve <= m.Width {
			used += itemLen
			out = append(out, item)
			continue
		}
		if used+tailLen <= m.Width {
			out = append(out, tail)
		}
		break
	}
	return out
}
