// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package web

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/termfolio/termfolio/internal/state"
	"github.com/termfolio/termfolio/ui/tui/render"
	"github.com/termfolio/termfolio/ui/tui/surface"
)

// Encoder renders frames as true color ANSI text for a browser terminal.
type Encoder struct {
	renderer *lipgloss.Renderer
}

func NewEncoder() *Encoder {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.TrueColor))
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return &Encoder{renderer: r}
}

// Frame draws snap at the given size and returns the bytes that repaint the
// whole terminal from the top left corner.
func (e *Encoder) Frame(snap state.Snapshot, r *render.Renderer, width, height int) []byte {
	canvas := surface.NewCanvas(width, height)
	r.Render(snap, canvas.Bounds(), canvas)

	var b strings.Builder
	b.WriteString(ansi.HideCursor)
	b.WriteString(ansi.CursorHomePosition)
	b.WriteString(strings.ReplaceAll(canvas.Render(e.renderer), "\n", "\r\n"))
	return []byte(b.String())
}
