//go:build js && wasm

package dom

import (
	"log/slog"
	"syscall/js"

	"canvashost/internal/logger"
)

// Lifecycle is the pair of handlers the page's events are bound to.
type Lifecycle interface {
	OnReady() error
	OnViewportChanged() error
}

// Bind registers lc on the window's load and resize events and returns a
// function that removes both listeners. If the page has already loaded,
// OnReady runs immediately instead of waiting for an event that will not come.
//
// A handler error reaches this point only without containment. It is handed
// to window.reportError, the browser's uncaught-error path, so the Go program
// keeps serving later events.
func Bind(d *Document, lc Lifecycle, log *slog.Logger) (release func()) {
	if log == nil {
		log = logger.L()
	}

	dispatch := func(event string, fn func() error) js.Func {
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			log.Debug("event", "type", event)
			if err := fn(); err != nil {
				d.reportError(err)
			}
			return nil
		})
	}

	onLoad := dispatch("load", lc.OnReady)
	onResize := dispatch("resize", lc.OnViewportChanged)

	d.win.Call("addEventListener", "resize", onResize, false)
	if d.Loaded() {
		onLoad.Invoke()
	} else {
		d.win.Call("addEventListener", "load", onLoad, false)
	}

	return func() {
		d.win.Call("removeEventListener", "load", onLoad, false)
		d.win.Call("removeEventListener", "resize", onResize, false)
		onLoad.Release()
		onResize.Release()
	}
}

func (d *Document) reportError(err error) {
	jsErr := js.Global().Get("Error").New(err.Error())
	if fn := d.win.Get("reportError"); fn.Type() == js.TypeFunction {
		d.win.Call("reportError", jsErr)
		return
	}
	js.Global().Get("console").Call("error", jsErr)
}
