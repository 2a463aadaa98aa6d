// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build js && wasm

package web

import (
	"context"
	"syscall/js"

	"github.com/termfolio/termfolio/internal/input"
	"github.com/termfolio/termfolio/internal/state"
	"github.com/termfolio/termfolio/ui/tui/render"
)

// Run exposes goTerminalInput and goTerminalResize to the page, writes frames
// through its goTerminalWrite function and blocks until ctx is done.
func Run(ctx context.Context, s *state.UiState, h *input.Handler, r *render.Renderer) error {
	session := NewSession(s, h, r, func(p []byte) {
		arr := js.Global().Get("Uint8Array").New(len(p))
		js.CopyBytesToJS(arr, p)
		js.Global().Call("goTerminalWrite", arr)
	})
	defer session.Close()

	inputCb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			data := make([]byte, args[0].Length())
			js.CopyBytesToGo(data, args[0])
			go session.Input(data)
		}
		return nil
	})
	defer inputCb.Release()

	resizeCb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) >= 2 {
			w, h := args[0].Int(), args[1].Int()
			go session.Resize(w, h)
		}
		return nil
	})
	defer resizeCb.Release()

	js.Global().Set("goTerminalInput", inputCb)
	js.Global().Set("goTerminalResize", resizeCb)
	defer js.Global().Delete("goTerminalInput")
	defer js.Global().Delete("goTerminalResize")

	if xterm := js.Global().Get("xterm"); !xterm.IsUndefined() {
		session.Resize(xterm.Get("cols").Int(), xterm.Get("rows").Int())
	} else {
		session.Draw()
	}

	<-ctx.Done()
	return nil
}
