// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package surface defines the draw surface the frame renderer paints on, and
// two implementations: a cell grid Canvas that hosts turn into terminal
// output, and a Recorder that keeps the draw commands for inspection.
package surface

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/termfolio/termfolio/ui/tui/util"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Style is a partial cell style. Empty colors leave the underlying cell color
// untouched when patched.
type Style struct {
	Fg   lipgloss.Color
	Bg   lipgloss.Color
	Bold bool
}

// Patch returns s with every field set in o applied on top.
func (s Style) Patch(o Style) Style {
	if o.Fg != "" {
		s.Fg = o.Fg
	}
	if o.Bg != "" {
		s.Bg = o.Bg
	}
	s.Bold = s.Bold || o.Bold
	return s
}

// Lipgloss converts the style for the given renderer; nil uses the default one.
func (s Style) Lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := r.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(s.Fg)
	}
	if s.Bg != "" {
		st = st.Background(s.Bg)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}

// Span is a run of text drawn in one style.
type Span struct {
	Text  string
	Style Style
}

func Raw(text string) Span                 { return Span{Text: text} }
func Styled(text string, style Style) Span { return Span{Text: text, Style: style} }

// Line is a sequence of spans laid out left to right.
type Line []Span

// Width is the number of cells the line occupies.
func (l Line) Width() int {
	w := 0
	for _, span := range l {
		w += runewidth.StringWidth(span.Text)
	}
	return w
}

// TabStrip describes a horizontal row of labels with one of them selected.
type TabStrip struct {
	Labels    []string
	Divider   string
	Style     Style
	Highlight Style
	Selected  int
}

// Surface is everything the frame renderer needs from a host. Implementations
// clip every operation to their own bounds and must accept any area,
// including empty ones and ones lying partly or fully outside.
type Surface interface {
	// Fill sets the background color of every cell in area.
	Fill(area util.Rect, bg lipgloss.Color)
	// Border draws a box outline along the edges of area.
	Border(area util.Rect, style Style)
	// Text draws lines top to bottom inside area, one row each, aligned
	// horizontally and clipped at the area's right edge.
	Text(area util.Rect, align Alignment, lines ...Line)
	// Tabs draws a tab strip on the first row of area.
	Tabs(area util.Rect, strip TabStrip)
}
