// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package state

import (
	"errors"
	"sync"
	"testing"
)

var portfolioTabs = []string{"ABOUT ME", "CONTRIBUTIONS", "TECH BLOG", "BOOKS REVIEW", "SOCIAL"}

func TestNew_RequiresTabs(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoTabs) {
		t.Fatalf("expected ErrNoTabs, got %v", err)
	}
}

func TestNew_CopiesTabs(t *testing.T) {
	tabs := []string{"a", "b"}
	s, err := New(tabs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tabs[0] = "changed"
	if got := s.Tabs()[0]; got != "a" {
		t.Fatalf("state must own its tab labels, got %q", got)
	}
	s.Tabs()[1] = "changed"
	if got := s.Snapshot().Tabs[1]; got != "b" {
		t.Fatalf("Tabs() must return a copy, got %q", got)
	}
}

func TestNew_Options(t *testing.T) {
	s, err := New(portfolioTabs, WithCurrentTab(3), WithScrollOffset(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	snap := s.Snapshot()
	if snap.CurrentTab != 3 || snap.ScrollOffset != 7 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.CurrentLabel() != "BOOKS REVIEW" {
		t.Fatalf("unexpected label %q", snap.CurrentLabel())
	}

	if _, err := New(portfolioTabs, WithCurrentTab(5)); !errors.Is(err, ErrTabOutOfRange) {
		t.Fatalf("expected ErrTabOutOfRange, got %v", err)
	}
	if _, err := New(portfolioTabs, WithCurrentTab(-1)); !errors.Is(err, ErrTabOutOfRange) {
		t.Fatalf("expected ErrTabOutOfRange, got %v", err)
	}
}

func TestIndexOf(t *testing.T) {
	s, _ := New(portfolioTabs)
	if got := s.IndexOf("tech blog"); got != 2 {
		t.Fatalf("IndexOf(tech blog) = %d", got)
	}
	if got := s.IndexOf("missing"); got != -1 {
		t.Fatalf("IndexOf(missing) = %d", got)
	}
}

func TestUpdate_WrapsTabIndex(t *testing.T) {
	s, _ := New(portfolioTabs)
	s.Update(func(c *Cursor, n int) { c.Tab = -1 })
	if got := s.Snapshot().CurrentTab; got != 4 {
		t.Fatalf("expected wrap to 4, got %d", got)
	}
	s.Update(func(c *Cursor, n int) { c.Tab = n + 1 })
	if got := s.Snapshot().CurrentTab; got != 1 {
		t.Fatalf("expected wrap to 1, got %d", got)
	}
}

// TestConcurrentUpdateAndSnapshot exercises the guard with parallel writers and
// readers; run with -race to catch torn access.
func TestConcurrentUpdateAndSnapshot(t *testing.T) {
	s, _ := New(portfolioTabs)

	const workers = 8
	const iterations = 500

	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				s.Update(func(c *Cursor, n int) {
					c.Tab = (c.Tab + 1) % n
					c.Scroll++
				})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				snap := s.Snapshot()
				if snap.CurrentTab < 0 || snap.CurrentTab >= len(snap.Tabs) {
					t.Errorf("tab index out of range: %d", snap.CurrentTab)
					return
				}
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	if snap.ScrollOffset != workers*iterations {
		t.Fatalf("expected %d scroll updates, got %d", workers*iterations, snap.ScrollOffset)
	}
	if snap.CurrentTab != (workers*iterations)%len(portfolioTabs) {
		t.Fatalf("unexpected final tab %d", snap.CurrentTab)
	}
}
