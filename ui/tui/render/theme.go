// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package render

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid color")

// Theme holds the three colors a frame is painted with.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	Neutral    lipgloss.Color
}

var DefaultTheme = Theme{
	Background: "#073642",
	Accent:     "#b58900",
	Neutral:    "#ffffff",
}

// ParseTheme validates hex colors. Empty values keep the default color.
func ParseTheme(background, accent, neutral string) (Theme, error) {
	t := DefaultTheme
	for _, c := range []struct {
		name  string
		value string
		dst   *lipgloss.Color
	}{
		{"background", background, &t.Background},
		{"accent", accent, &t.Accent},
		{"neutral", neutral, &t.Neutral},
	} {
		if c.value == "" {
			continue
		}
		parsed, err := colorful.Hex(c.value)
		if err != nil {
			return DefaultTheme, fmt.Errorf("%w: %s %q", ErrInvalidColor, c.name, c.value)
		}
		*c.dst = lipgloss.Color(parsed.Hex())
	}
	return t, nil
}
