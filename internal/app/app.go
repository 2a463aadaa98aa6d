// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package app assembles the portfolio core from a configuration. Hosts only
// deal with the resulting App.
package app

import (
	"fmt"
	"strings"

	"github.com/termfolio/termfolio/internal/config"
	"github.com/termfolio/termfolio/internal/i18n"
	"github.com/termfolio/termfolio/internal/input"
	"github.com/termfolio/termfolio/internal/logging"
	"github.com/termfolio/termfolio/internal/state"
	"github.com/termfolio/termfolio/ui/tui/render"
)

type App struct {
	State    *state.UiState
	Handler  *input.Handler
	Renderer *render.Renderer
}

type Option func(o *options)

type options struct {
	renderOpts []render.Option
}

// WithRenderOptions passes extra options, such as a body renderer, to the
// frame renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(o *options) { o.renderOpts = append(o.renderOpts, opts...) }
}

// New validates cfg and builds the state, input handler and renderer. An
// initial tab that names no configured tab is logged and ignored.
func New(cfg config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := i18n.Init(cfg.Language); err != nil {
		return nil, fmt.Errorf("could not load language %q: %w", cfg.Language, err)
	}
	theme, err := render.ParseTheme(cfg.Theme.Background, cfg.Theme.Accent, cfg.Theme.Neutral)
	if err != nil {
		return nil, err
	}

	s, err := state.New(cfg.Tabs)
	if err != nil {
		return nil, err
	}
	if label := strings.TrimSpace(cfg.InitialTab); label != "" {
		if i := s.IndexOf(label); i >= 0 {
			s.Update(func(c *state.Cursor, _ int) { c.Tab = i })
		} else {
			logging.Warnf("initial tab %q not found, starting at %q", label, cfg.Tabs[0])
		}
	}

	return &App{
		State:    s,
		Handler:  input.NewHandler(s),
		Renderer: render.New(append([]render.Option{render.WithTheme(theme)}, o.renderOpts...)...),
	}, nil
}
