// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package layout partitions a drawing area into non-overlapping sub-areas
// along one axis. Sizes never exceed the axis length, and add up to it exactly
// whenever a Min or Percentage item takes part in the split.
package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/termfolio/termfolio/ui/tui/util"
)

type Direction bool

const (
	Vertical   Direction = true
	Horizontal Direction = false
)

// Constraint decides how much of the split axis an item receives. Items are
// sized in ascending priority; each receives at most what is left.
type Constraint interface {
	Priority() int
	Calculate(remaining int, total int) int
}

type length struct{ n int }
type percentage struct{ p int }
type fill struct {
	min    int
	weight int
}

// Length reserves exactly n cells if available.
func Length(n int) Constraint { return length{n: util.NonNegative(n)} }

// Percentage reserves p percent of the axis length, floored.
func Percentage(p int) Constraint { return percentage{p: util.Clamp(0, p, 100)} }

// Min takes whatever remains after the other items, shared evenly with other
// Min items. n is only a lower bound when enough space remains.
func Min(n int) Constraint { return fill{min: util.NonNegative(n), weight: 1} }

func (c length) Priority() int     { return 0 }
func (c percentage) Priority() int { return 1 }
func (c fill) Priority() int       { return math.MaxInt }

func (c length) Calculate(_ int, _ int) int { return c.n }

func (c percentage) Calculate(_ int, total int) int {
	return total * c.p / 100
}

func (c fill) Calculate(remaining int, _ int) int {
	return max(c.min, remaining)
}

// Sizes computes the size of every constraint for an axis of the given total
// length, in declaration order.
func Sizes(total int, constraints ...Constraint) []int {
	total = util.NonNegative(total)
	sizes := make([]int, len(constraints))

	order := make([]int, len(constraints))
	for i := range order {
		order[i] = i
	}
	// stable: equal priorities keep declaration order
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(constraints[a].Priority(), constraints[b].Priority())
	})

	// weight of the fill items not sized yet
	fillWeight := 0
	for _, c := range constraints {
		if f, ok := c.(fill); ok {
			fillWeight += f.weight
		}
	}
	hasFill := fillWeight > 0

	remaining := total
	lastPercentage := -1
	for _, i := range order {
		var size int
		switch c := constraints[i].(type) {
		case fill:
			// the last fill item divides by its own weight and takes the rest
			size = max(c.min, remaining*c.weight/fillWeight)
			fillWeight -= c.weight
		case percentage:
			lastPercentage = i
			size = c.Calculate(remaining, total)
		default:
			size = c.Calculate(remaining, total)
		}

		size = util.Clamp(0, size, remaining)
		remaining -= size
		sizes[i] = size
	}

	// floor rounding of percentages leaves a few cells over when nothing fills
	if remaining > 0 && lastPercentage >= 0 && !hasFill {
		sizes[lastPercentage] += remaining
	}
	return sizes
}

// Split partitions area along direction. The returned rects are contiguous,
// in declaration order, and span the full cross axis.
func Split(area util.Rect, direction Direction, constraints ...Constraint) []util.Rect {
	area = util.NewRect(area.X, area.Y, area.Width, area.Height)

	total := area.Width
	if direction == Vertical {
		total = area.Height
	}
	sizes := Sizes(total, constraints...)

	rects := make([]util.Rect, len(sizes))
	offset := 0
	for i, size := range sizes {
		if direction == Vertical {
			rects[i] = util.Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		} else {
			rects[i] = util.Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		}
		offset += size
	}
	return rects
}
