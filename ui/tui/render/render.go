// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package render paints a whole Termfolio frame onto a surface.
package render

import (
	gslices "github.com/bobg/go-generics/v4/slices"
	"github.com/termfolio/termfolio/internal/i18n"
	"github.com/termfolio/termfolio/internal/state"
	"github.com/termfolio/termfolio/ui/tui/layout"
	"github.com/termfolio/termfolio/ui/tui/surface"
	"github.com/termfolio/termfolio/ui/tui/util"
)

// TabDivider separates tab labels in the header.
const TabDivider = " | "

// BodyRenderer draws the content of one tab into the body band.
type BodyRenderer interface {
	RenderBody(tab int, scroll uint16, area util.Rect, s surface.Surface)
}

// BodyFunc adapts a plain function to BodyRenderer.
type BodyFunc func(tab int, scroll uint16, area util.Rect, s surface.Surface)

func (f BodyFunc) RenderBody(tab int, scroll uint16, area util.Rect, s surface.Surface) {
	f(tab, scroll, area, s)
}

type Renderer struct {
	theme        Theme
	body         BodyRenderer
	instructions surface.Line
}

type Option func(r *Renderer)

func WithTheme(t Theme) Option {
	return func(r *Renderer) { r.theme = t }
}

// WithBody sets the tab content renderer. Without one the body stays empty.
func WithBody(b BodyRenderer) Option {
	return func(r *Renderer) { r.body = b }
}

// New builds a renderer. The footer text is resolved from the i18n catalog
// once, so i18n.Init must run before.
func New(opts ...Option) *Renderer {
	r := &Renderer{theme: DefaultTheme}
	for _, opt := range opts {
		opt(r)
	}
	r.instructions = instructions(r.theme)
	return r
}

func (r *Renderer) Theme() Theme { return r.theme }

// Render draws one frame. It reads snap only and never fails: areas too
// small for a band leave that band empty.
func (r *Renderer) Render(snap state.Snapshot, area util.Rect, s surface.Surface) {
	// base canvas
	s.Fill(area, r.theme.Background)
	s.Border(area, surface.Style{Bg: r.theme.Background})

	header, body, footer := layout.Bands(area)

	_, tabs := layout.HeaderColumns(header)
	s.Tabs(tabs, surface.TabStrip{
		Labels:    snap.Tabs,
		Divider:   TabDivider,
		Style:     surface.Style{Fg: r.theme.Neutral},
		Highlight: surface.Style{Fg: r.theme.Accent, Bold: true},
		Selected:  snap.CurrentTab,
	})

	if r.body != nil && !body.Empty() {
		r.body.RenderBody(snap.CurrentTab, snap.ScrollOffset, body, s)
	}

	_, center, _ := layout.FooterColumns(footer)
	s.Border(center, surface.Style{})
	s.Text(center.Inner(1), surface.AlignCenter, r.instructions)
}

type segment struct {
	id       string
	emphasis bool
}

var instructionSegments = []segment{
	{"footer.use", false},
	{"footer.tabs_keys", true},
	{"footer.tabs_action", false},
	{"footer.scroll_keys", true},
	{"footer.scroll_action", false},
	{"footer.enter_key", true},
	{"footer.enter_action", false},
	{"footer.esc_key", true},
	{"footer.esc_action", false},
}

func instructions(t Theme) surface.Line {
	emphasis := surface.Style{Fg: t.Accent, Bold: true}
	return gslices.Map(instructionSegments, func(seg segment) surface.Span {
		if seg.emphasis {
			return surface.Styled(i18n.T(seg.id), emphasis)
		}
		return surface.Raw(i18n.T(seg.id))
	})
}
