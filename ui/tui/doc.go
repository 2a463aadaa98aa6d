// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui hosts the portfolio in a bubbletea program. Drawing primitives
// live in surface, band arithmetic in layout and the frame itself in render.
package tui
