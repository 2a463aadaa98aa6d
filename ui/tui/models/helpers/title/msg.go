// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set asks the title handler to show section next to the base title.
func Set(section string) tea.Cmd {
	return func() tea.Msg { return titleMsg(section) }
}
