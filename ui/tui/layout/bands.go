// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package layout

import "github.com/termfolio/termfolio/ui/tui/util"

const (
	HeaderHeight = 3
	FooterHeight = 3
)

// Bands splits area into header, body and footer rows. Header and footer take
// their fixed height first; the body gets what is left, possibly nothing.
func Bands(area util.Rect) (header, body, footer util.Rect) {
	rows := Split(area, Vertical, Length(HeaderHeight), Min(0), Length(FooterHeight))
	return rows[0], rows[1], rows[2]
}

// HeaderColumns splits the header band into a 5% gutter and the 95% tab strip box.
func HeaderColumns(header util.Rect) (gutter, tabs util.Rect) {
	cols := Split(header, Horizontal, Percentage(5), Percentage(95))
	return cols[0], cols[1]
}

// FooterColumns splits the footer band 20/60/20 around the instruction box.
func FooterColumns(footer util.Rect) (left, center, right util.Rect) {
	cols := Split(footer, Horizontal, Percentage(20), Percentage(60), Percentage(20))
	return cols[0], cols[1], cols[2]
}
