// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Termfolio.
//
// Usage:
//
//	go run . [flags]
//	./termfolio [flags]
//
// This launches the portfolio in the terminal. See --help for options.
package main

import (
	"os"

	log "github.com/charmbracelet/log"
	"github.com/termfolio/termfolio/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error("termfolio", "err", err)
		os.Exit(1)
	}
}
