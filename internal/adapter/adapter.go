// Package adapter bridges host lifecycle signals to surface sizing and render
// module invocation.
//
// A host integration binds its "ready" signal to [Adapter.OnReady] and its
// "viewport changed" signal to [Adapter.OnViewportChanged], once, at startup.
// Each call runs a full synchronous cycle: size the surface from the current
// host measurements, then invoke the configured exports in declared order.
// OnReady additionally starts the module's continuous loop, at most once per
// adapter lifetime. The loop then runs under the module's own scheduling;
// the adapter holds no handle to it.
//
// With Config.Contain set, every failure in a cycle is logged with the
// "contained" marker and swallowed, so the host never sees it. Without it the
// failure is returned to the caller.
//
// An Adapter is driven from the host's single event-dispatch goroutine and is
// NOT safe for concurrent use.
package adapter

import (
	"errors"
	"log/slog"
	"slices"

	"canvashost/internal/logger"
	"canvashost/internal/module"
	"canvashost/internal/surface"
)

// Marker is the value of the "marker" attribute on every contained failure.
const Marker = "contained"

// State is the adapter lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

// Config selects the surface, sizing policy and exports for one deployment.
type Config struct {
	SurfaceID string
	Policy    surface.Policy

	Module module.Module
	// Callbacks are export names invoked on every cycle, in order.
	Callbacks []string
	// Loop is the export that starts the continuous loop; empty for none.
	Loop string

	// Contain swallows and logs cycle failures instead of returning them.
	Contain bool

	Logger *slog.Logger
}

// Adapter is the canvas host adapter.
type Adapter struct {
	env surface.Environment
	cfg Config
	log *slog.Logger

	state       State
	loopStarted bool
}

// New creates an Adapter over env. A nil cfg.Logger selects logger.L().
func New(env surface.Environment, cfg Config) *Adapter {
	l := cfg.Logger
	if l == nil {
		l = logger.L()
	}
	a := &Adapter{
		env: env,
		cfg: cfg,
		log: l.With("surface", cfg.SurfaceID),
	}
	a.checkExports()
	return a
}

// checkExports warns about configured names the module does not export.
// Calling them still fails at signal time.
func (a *Adapter) checkExports() {
	ex, ok := a.cfg.Module.(module.Exporter)
	if !ok {
		return
	}
	exports := ex.Exports()
	a.log.Debug("module exports", "names", exports)

	names := a.cfg.Callbacks
	if a.cfg.Loop != "" {
		names = append(names[:len(names):len(names)], a.cfg.Loop)
	}
	for _, name := range names {
		if !slices.Contains(exports, name) {
			a.log.Warn("export not found in module", "name", name)
		}
	}
}

// State returns the current lifecycle state.
func (a *Adapter) State() State {
	return a.state
}

// LoopStarted reports whether the loop export has been invoked.
func (a *Adapter) LoopStarted() bool {
	return a.loopStarted
}

// OnReady handles the host's "initial content available" signal.
func (a *Adapter) OnReady() error {
	return a.guard("ready", func() error {
		if a.state == StateReady {
			a.log.Warn("ready signal delivered again")
		}
		if err := a.resize("ready"); err != nil {
			return err
		}
		a.state = StateReady
		if err := a.render("ready"); err != nil {
			return err
		}
		return a.startLoop()
	})
}

// OnViewportChanged handles the host's "viewport or container resized"
// signal. It never starts the loop. Before the first successful OnReady it
// only logs a warning.
func (a *Adapter) OnViewportChanged() error {
	if a.state != StateReady {
		a.log.Warn("viewport change before ready; ignored")
		return nil
	}
	return a.guard("viewport_changed", func() error {
		if err := a.resize("viewport_changed"); err != nil {
			return err
		}
		return a.render("viewport_changed")
	})
}

// --- Cycle steps ---

func (a *Adapter) resize(op string) error {
	a.log.Debug("resizing surface")

	var dims surface.Dimensions
	err := protect(func() error {
		var err error
		dims, err = surface.Apply(a.env, a.cfg.SurfaceID, a.cfg.Policy)
		return err
	})
	if err != nil {
		kind := KindSurfaceResize
		if errors.Is(err, surface.ErrSurfaceNotFound) {
			kind = KindSurfaceNotFound
		}
		return &Error{Op: op, Kind: kind, Name: a.cfg.SurfaceID, Err: err}
	}

	a.log.Debug("surface resized", "width", dims.Width, "height", dims.Height)
	return nil
}

func (a *Adapter) render(op string) error {
	for _, name := range a.cfg.Callbacks {
		res, err := a.call(name)
		if err != nil {
			return &Error{Op: op, Kind: KindRenderCallback, Name: name, Err: err}
		}
		a.log.Info("callback", "name", name, "result", res)
	}
	return nil
}

func (a *Adapter) startLoop() error {
	if a.cfg.Loop == "" || a.loopStarted {
		return nil
	}
	a.loopStarted = true

	res, err := a.call(a.cfg.Loop)
	if err != nil {
		return &Error{Op: "ready", Kind: KindLoopStart, Name: a.cfg.Loop, Err: err}
	}
	a.log.Info("loop started", "name", a.cfg.Loop, "result", res)
	return nil
}

func (a *Adapter) call(name string) (string, error) {
	if a.cfg.Module == nil {
		return "", module.ErrUnknownExport
	}
	var res string
	err := protect(func() error {
		var err error
		res, err = a.cfg.Module.Call(name)
		return err
	})
	return res, err
}

// --- Containment ---

// guard runs a cycle. With containment, failures are logged and dropped.
func (a *Adapter) guard(op string, cycle func() error) error {
	err := cycle()
	if err == nil || !a.cfg.Contain {
		return err
	}

	attrs := []any{"marker", Marker, "op", op, "err", err}
	var ae *Error
	if errors.As(err, &ae) {
		attrs = append(attrs, "kind", string(ae.Kind), "name", ae.Name)
	}
	a.log.Error("cycle failed", attrs...)
	return nil
}
