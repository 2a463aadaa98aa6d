// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "fmt"

// Rect is an area in terminal cell coordinates. Width and Height are never
// negative for rects produced by this package.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: NonNegative(width), Height: NonNegative(height)}
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right is the first column after the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row after the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }

func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Inner shrinks the rect by margin cells on every side. The result keeps its
// origin inside r and degrades to a zero sized rect instead of going negative.
func (r Rect) Inner(margin int) Rect {
	margin = NonNegative(margin)
	w := NonNegative(r.Width - 2*margin)
	h := NonNegative(r.Height - 2*margin)
	return Rect{
		X:      r.X + min(margin, r.Width/2),
		Y:      r.Y + min(margin, r.Height/2),
		Width:  w,
		Height: h,
	}
}

// Intersect returns the overlap of r and o, or a zero sized rect at r's origin.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
