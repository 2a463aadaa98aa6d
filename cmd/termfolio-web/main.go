// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build js && wasm

// Browser entrypoint for Termfolio. Build with GOOS=js GOARCH=wasm and load
// the result next to an xterm.js page defining goTerminalWrite.
package main

import (
	"context"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/termfolio/termfolio/internal/app"
	"github.com/termfolio/termfolio/internal/config"
	"github.com/termfolio/termfolio/ui/web"
)

func main() {
	a, err := app.New(config.Default())
	if err != nil {
		log.Error("termfolio", "err", err)
		os.Exit(1)
	}
	if err := web.Run(context.Background(), a.State, a.Handler, a.Renderer); err != nil {
		log.Error("termfolio", "err", err)
		os.Exit(1)
	}
}
