// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/termfolio/termfolio/ui/tui/util"
)

// Cell is one terminal cell. A double width rune occupies its own cell with
// Width 2 and the following cell with Width 0.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

var blank = Cell{Rune: ' ', Width: 1}

// Canvas is an in-memory grid of cells implementing Surface.
type Canvas struct {
	width  int
	height int
	cells  []Cell
	border lipgloss.Border
}

func NewCanvas(width, height int) *Canvas {
	width, height = util.NonNegative(width), util.NonNegative(height)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		border: lipgloss.NormalBorder(),
	}
	for i := range c.cells {
		c.cells[i] = blank
	}
	return c
}

func (c *Canvas) Bounds() util.Rect {
	return util.Rect{Width: c.width, Height: c.height}
}

// Cell returns the cell at x, y, or false when outside the canvas.
func (c *Canvas) Cell(x, y int) (Cell, bool) {
	if !c.Bounds().Contains(x, y) {
		return Cell{}, false
	}
	return c.cells[y*c.width+x], true
}

// Row returns the plain text of row y without styling.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cell := range c.cells[y*c.width : (y+1)*c.width] {
		if cell.Width > 0 {
			b.WriteRune(cell.Rune)
		}
	}
	return b.String()
}

func (c *Canvas) Fill(area util.Rect, bg lipgloss.Color) {
	area = c.Bounds().Intersect(area)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			cell := &c.cells[y*c.width+x]
			cell.Style.Bg = bg
		}
	}
}

func (c *Canvas) Border(area util.Rect, style Style) {
	if area.Empty() {
		return
	}
	b := c.border
	top, bottom := area.Y, area.Bottom()-1
	left, right := area.X, area.Right()-1

	for x := left; x <= right; x++ {
		c.put(x, top, first(b.Top), style, x+1)
		if bottom != top {
			c.put(x, bottom, first(b.Bottom), style, x+1)
		}
	}
	for y := top; y <= bottom; y++ {
		c.put(left, y, first(b.Left), style, left+1)
		if right != left {
			c.put(right, y, first(b.Right), style, right+1)
		}
	}
	if area.Width >= 2 && area.Height >= 2 {
		c.put(left, top, first(b.TopLeft), style, left+1)
		c.put(right, top, first(b.TopRight), style, right+1)
		c.put(left, bottom, first(b.BottomLeft), style, left+1)
		c.put(right, bottom, first(b.BottomRight), style, right+1)
	}
}

func (c *Canvas) Text(area util.Rect, align Alignment, lines ...Line) {
	if area.Empty() {
		return
	}
	for i, line := range lines {
		if i >= area.Height {
			return
		}
		x := area.X
		switch width := line.Width(); align {
		case AlignCenter:
			x += util.NonNegative(area.Width-width) / 2
		case AlignRight:
			x += util.NonNegative(area.Width - width)
		}
		for _, span := range line {
			x = c.putString(x, area.Y+i, span.Text, span.Style, area.Right())
		}
	}
}

func (c *Canvas) Tabs(area util.Rect, strip TabStrip) {
	if area.Empty() {
		return
	}
	c.patch(area, strip.Style)

	x, y, right := area.X, area.Y, area.Right()
	for i, label := range strip.Labels {
		if x >= right {
			return
		}
		if i > 0 {
			x = c.putString(x, y, strip.Divider, strip.Style, right)
		}
		x = c.putString(x, y, " ", strip.Style, right)
		style := strip.Style
		if i == strip.Selected {
			style = style.Patch(strip.Highlight)
		}
		x = c.putString(x, y, label, style, right)
		x = c.putString(x, y, " ", strip.Style, right)
	}
}

// patch applies style to every cell of area without touching its content.
func (c *Canvas) patch(area util.Rect, style Style) {
	area = c.Bounds().Intersect(area)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			cell := &c.cells[y*c.width+x]
			cell.Style = cell.Style.Patch(style)
		}
	}
}

// putString writes s from column x and returns the column after the last cell
// written. Escape sequences and control characters are dropped.
func (c *Canvas) putString(x, y int, s string, style Style, clipRight int) int {
	for _, r := range ansi.Strip(s) {
		if r < 0x20 || r == 0x7f || runewidth.RuneWidth(r) == 0 {
			continue
		}
		next := c.put(x, y, r, style, clipRight)
		if next == x {
			return x
		}
		x = next
	}
	return x
}

// put writes r at x, y and returns the next column, or x when r did not fit
// before clipRight. Positions outside the canvas are skipped but still advance.
func (c *Canvas) put(x, y int, r rune, style Style, clipRight int) int {
	w := runewidth.RuneWidth(r)
	if w == 0 || x+w > clipRight {
		return x
	}
	for i := 0; i < w; i++ {
		if !c.Bounds().Contains(x+i, y) {
			return x + w
		}
	}

	c.release(x, y)
	if w == 2 {
		c.release(x+1, y)
	}

	cell := &c.cells[y*c.width+x]
	cell.Rune, cell.Width = r, w
	cell.Style = cell.Style.Patch(style)
	if w == 2 {
		cont := &c.cells[y*c.width+x+1]
		cont.Rune, cont.Width = 0, 0
		cont.Style = cell.Style
	}
	return x + w
}

// release blanks the other half of a double width rune overlapping x, y.
func (c *Canvas) release(x, y int) {
	cell := c.cells[y*c.width+x]
	switch {
	case cell.Width == 0 && x > 0:
		prev := &c.cells[y*c.width+x-1]
		prev.Rune, prev.Width = ' ', 1
	case cell.Width == 2 && x+1 < c.width:
		next := &c.cells[y*c.width+x+1]
		next.Rune, next.Width = ' ', 1
	}
}

// String renders the canvas with the default lipgloss renderer.
func (c *Canvas) String() string {
	return c.Render(nil)
}

// Render joins the rows of the canvas, grouping runs of equally styled cells
// into one styled string each.
func (c *Canvas) Render(r *lipgloss.Renderer) string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var b, run strings.Builder
		var runStyle Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == (Style{}) {
				b.WriteString(run.String())
			} else {
				b.WriteString(runStyle.Lipgloss(r).Render(run.String()))
			}
			run.Reset()
		}
		for _, cell := range c.cells[y*c.width : (y+1)*c.width] {
			if cell.Width == 0 {
				continue
			}
			if cell.Style != runStyle {
				flush()
				runStyle = cell.Style
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func first(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
