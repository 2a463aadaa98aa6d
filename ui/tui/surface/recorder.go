// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package surface

import (
	"slices"

	gslices "github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/lipgloss"
	"github.com/termfolio/termfolio/ui/tui/util"
)

type Op string

const (
	OpFill   Op = "fill"
	OpBorder Op = "border"
	OpText   Op = "text"
	OpTabs   Op = "tabs"
)

// Command is one recorded draw call. Only the fields relevant to Op are set.
type Command struct {
	Op    Op
	Area  util.Rect
	Color lipgloss.Color
	Style Style
	Align Alignment
	Lines []Line
	Strip TabStrip
}

// Recorder is a Surface that records draw calls instead of painting them.
// Recorded data is deep copied, so callers may reuse their slices.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Fill(area util.Rect, bg lipgloss.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFill, Area: area, Color: bg})
}

func (r *Recorder) Border(area util.Rect, style Style) {
	r.Commands = append(r.Commands, Command{Op: OpBorder, Area: area, Style: style})
}

func (r *Recorder) Text(area util.Rect, align Alignment, lines ...Line) {
	r.Commands = append(r.Commands, Command{
		Op:    OpText,
		Area:  area,
		Align: align,
		Lines: gslices.Map(lines, func(l Line) Line { return slices.Clone(l) }),
	})
}

func (r *Recorder) Tabs(area util.Rect, strip TabStrip) {
	strip.Labels = slices.Clone(strip.Labels)
	r.Commands = append(r.Commands, Command{Op: OpTabs, Area: area, Strip: strip})
}

// Find returns the recorded commands with the given op, in order.
func (r *Recorder) Find(op Op) []Command {
	var out []Command
	for _, cmd := range r.Commands {
		if cmd.Op == op {
			out = append(out, cmd)
		}
	}
	return out
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

var (
	_ Surface = (*Canvas)(nil)
	_ Surface = (*Recorder)(nil)
)
