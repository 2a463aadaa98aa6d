// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package surface

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/termfolio/termfolio/ui/tui/util"
)

func TestCanvasBorder(t *testing.T) {
	c := NewCanvas(4, 3)
	c.Border(c.Bounds(), Style{})

	want := []string{"┌──┐", "│  │", "└──┘"}
	for y, row := range want {
		if got := c.Row(y); got != row {
			t.Fatalf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestCanvasBorder_DegenerateSizes(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 4}, {5, 1}, {0, 3}} {
		c := NewCanvas(5, 5)
		c.Border(util.Rect{X: 1, Y: 1, Width: size[0], Height: size[1]}, Style{})
		if size[0] == 0 && c.Row(1) != "     " {
			t.Fatalf("empty border must not draw, got %q", c.Row(1))
		}
	}
}

func TestCanvasFill_KeepsContent(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Text(c.Bounds(), AlignLeft, Line{Raw("abc")})
	c.Fill(util.Rect{X: 1, Width: 5, Height: 1}, lipgloss.Color("#073642"))

	if c.Row(0) != "abc" {
		t.Fatalf("fill must not clear content, got %q", c.Row(0))
	}
	first, _ := c.Cell(0, 0)
	second, _ := c.Cell(1, 0)
	if first.Style.Bg != "" || second.Style.Bg != "#073642" {
		t.Fatalf("unexpected backgrounds %q %q", first.Style.Bg, second.Style.Bg)
	}
}

func TestCanvasText_Alignment(t *testing.T) {
	cases := []struct {
		align Alignment
		text  string
		width int
		want  string
	}{
		{AlignLeft, "abcd", 10, "abcd      "},
		{AlignCenter, "abcd", 10, "   abcd   "},
		{AlignRight, "abcd", 10, "      abcd"},
		{AlignCenter, "abcdef", 3, "abc"},
	}
	for _, tc := range cases {
		c := NewCanvas(tc.width, 1)
		c.Text(c.Bounds(), tc.align, Line{Raw(tc.text)})
		if got := c.Row(0); got != tc.want {
			t.Fatalf("align %d %q: got %q, want %q", tc.align, tc.text, got, tc.want)
		}
	}
}

func TestCanvasText_StylesAndClipping(t *testing.T) {
	bold := Style{Fg: "#b58900", Bold: true}
	c := NewCanvas(12, 2)
	c.Text(util.Rect{X: 2, Width: 6, Height: 1}, AlignLeft,
		Line{Raw("Use "), Styled("left", bold)},
		Line{Raw("second line is outside the area")},
	)

	if got := c.Row(0); got != "  Use le    " {
		t.Fatalf("row 0 = %q", got)
	}
	if got := c.Row(1); strings.TrimSpace(got) != "" {
		t.Fatalf("second line must be clipped by area height, got %q", got)
	}
	cell, _ := c.Cell(6, 0)
	if cell.Rune != 'l' || cell.Style != bold {
		t.Fatalf("unexpected cell %+v", cell)
	}
}

func TestCanvasText_StripsEscapes(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Text(c.Bounds(), AlignLeft, Line{Raw("\x1b[31mred\x1b[0m\n")})
	if got := c.Row(0); got != "red  " {
		t.Fatalf("got %q", got)
	}
}

func TestCanvas_WideRunes(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Text(util.Rect{Width: 5, Height: 1}, AlignLeft, Line{Raw("日本語")})
	if got := c.Row(0); got != "日本 " {
		t.Fatalf("got %q", got)
	}

	// overwriting the second half of a wide rune blanks the first half
	c.Text(util.Rect{X: 1, Width: 1, Height: 1}, AlignLeft, Line{Raw("x")})
	if got := c.Row(0); got != " x本 " {
		t.Fatalf("got %q", got)
	}
}

func TestCanvasTabs(t *testing.T) {
	neutral := Style{Fg: "#ffffff"}
	highlight := Style{Fg: "#b58900", Bold: true}
	c := NewCanvas(20, 1)
	c.Tabs(c.Bounds(), TabStrip{
		Labels:    []string{"A", "B", "C"},
		Divider:   " | ",
		Style:     neutral,
		Highlight: highlight,
		Selected:  1,
	})

	if got := c.Row(0); got != " A  |  B  |  C      " {
		t.Fatalf("got %q", got)
	}
	a, _ := c.Cell(1, 0)
	b, _ := c.Cell(7, 0)
	if a.Rune != 'A' || a.Style != neutral {
		t.Fatalf("unexpected unselected cell %+v", a)
	}
	if b.Rune != 'B' || b.Style != neutral.Patch(highlight) {
		t.Fatalf("unexpected selected cell %+v", b)
	}
}

func TestCanvasTabs_Clipped(t *testing.T) {
	c := NewCanvas(6, 1)
	c.Tabs(c.Bounds(), TabStrip{Labels: []string{"ABOUT", "ME"}, Divider: "|", Selected: 0})
	if got := c.Row(0); got != " ABOUT" {
		t.Fatalf("got %q", got)
	}
}

func TestCanvas_OutOfBoundsAreasAreClipped(t *testing.T) {
	c := NewCanvas(5, 5)
	huge := util.Rect{X: -5, Y: -5, Width: 100, Height: 100}
	c.Fill(huge, "#000000")
	c.Border(huge, Style{})
	c.Text(huge, AlignCenter, Line{Raw("hello")})
	c.Tabs(huge, TabStrip{Labels: []string{"x"}})

	empty := NewCanvas(0, 0)
	empty.Fill(huge, "#000000")
	empty.Border(huge, Style{})
	empty.Text(huge, AlignLeft, Line{Raw("x")})
	if empty.String() != "" {
		t.Fatalf("empty canvas must render nothing")
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(6, 2)
	c.Fill(c.Bounds(), "#073642")
	c.Text(c.Bounds(), AlignLeft, Line{Styled("hi", Style{Bold: true})})

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	out := c.Render(r)
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected escape sequences in true color output: %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}

	if got := ansi.Strip(out); got != "hi    \n      " {
		t.Fatalf("unexpected text content %q", got)
	}
}

func TestStylePatch(t *testing.T) {
	base := Style{Fg: "#ffffff", Bg: "#073642"}
	got := base.Patch(Style{Fg: "#b58900", Bold: true})
	if got != (Style{Fg: "#b58900", Bg: "#073642", Bold: true}) {
		t.Fatalf("unexpected patch %+v", got)
	}
	if base.Patch(Style{}) != base {
		t.Fatalf("empty patch must be a no-op")
	}
}
