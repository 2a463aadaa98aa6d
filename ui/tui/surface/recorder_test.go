// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package surface

import (
	"testing"

	"github.com/termfolio/termfolio/ui/tui/util"
)

func TestRecorder_CopiesInputs(t *testing.T) {
	var r Recorder
	labels := []string{"a", "b"}
	line := Line{Raw("x")}

	r.Tabs(util.Rect{Width: 3, Height: 1}, TabStrip{Labels: labels})
	r.Text(util.Rect{Width: 3, Height: 1}, AlignCenter, line)
	labels[0] = "changed"
	line[0].Text = "changed"

	tabs := r.Find(OpTabs)
	if len(tabs) != 1 || tabs[0].Strip.Labels[0] != "a" {
		t.Fatalf("recorded labels aliased: %+v", tabs)
	}
	text := r.Find(OpText)
	if len(text) != 1 || text[0].Lines[0][0].Text != "x" {
		t.Fatalf("recorded lines aliased: %+v", text)
	}

	r.Reset()
	if len(r.Commands) != 0 {
		t.Fatalf("expected no commands after reset")
	}
}
