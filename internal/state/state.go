// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package state holds the process-wide UI state shared by the input handler
// and the frame renderer. The handler only writes through Update and the
// renderer only reads through Snapshot, so neither ever holds a copy that can
// drift from the other.
package state

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	ErrNoTabs        = errors.New("at least one tab is required")
	ErrTabOutOfRange = errors.New("tab index out of range")
)

// Cursor is the mutable part of the UI state.
type Cursor struct {
	Tab    int
	Scroll uint16
}

// Snapshot is a consistent copy of the UI state taken under a single lock.
type Snapshot struct {
	Tabs         []string
	CurrentTab   int
	ScrollOffset uint16
}

// CurrentLabel returns the label of the selected tab.
func (s Snapshot) CurrentLabel() string {
	if s.CurrentTab < 0 || s.CurrentTab >= len(s.Tabs) {
		return ""
	}
	return s.Tabs[s.CurrentTab]
}

type UiState struct {
	tabs []string

	mu     sync.RWMutex
	cursor Cursor
}

type Option = func(s *UiState) error

// WithCurrentTab selects the tab at index i on construction.
func WithCurrentTab(i int) Option {
	return func(s *UiState) error {
		if i < 0 || i >= len(s.tabs) {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrTabOutOfRange, i, len(s.tabs))
		}
		s.cursor.Tab = i
		return nil
	}
}

// WithScrollOffset sets the initial scroll offset.
func WithScrollOffset(n uint16) Option {
	return func(s *UiState) error {
		s.cursor.Scroll = n
		return nil
	}
}

// New creates the UI state for the given tab labels. The labels are copied and
// never change afterwards.
func New(tabs []string, opts ...Option) (*UiState, error) {
	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}
	s := &UiState{tabs: slices.Clone(tabs)}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Tabs returns a copy of the tab labels.
func (s *UiState) Tabs() []string {
	return slices.Clone(s.tabs)
}

func (s *UiState) TabCount() int {
	return len(s.tabs)
}

// IndexOf returns the index of the tab with the given label, compared case
// insensitively, or -1.
func (s *UiState) IndexOf(label string) int {
	return slices.IndexFunc(s.tabs, func(tab string) bool {
		return strings.EqualFold(strings.TrimSpace(tab), strings.TrimSpace(label))
	})
}

// Snapshot returns the current state. Tab labels are shared read-only with the
// state and must not be modified by the caller.
func (s *UiState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Tabs:         s.tabs,
		CurrentTab:   s.cursor.Tab,
		ScrollOffset: s.cursor.Scroll,
	}
}

// Update runs fn with exclusive access to the cursor. The tab index is wrapped
// back into range after fn returns.
func (s *UiState) Update(fn func(c *Cursor, tabCount int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.tabs)
	fn(&s.cursor, n)
	s.cursor.Tab = ((s.cursor.Tab % n) + n) % n
}
