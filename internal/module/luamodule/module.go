// Package luamodule runs a render module written in Lua.
//
// Global Lua functions are the module's exports. Scripts draw through the
// canvas table, which targets the host's gg context, and drive a continuous
// loop with frame.request, whose callbacks run once on the next Tick.
package luamodule

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/gogpu/gg"
	glua "github.com/yuin/gopher-lua"

	"canvashost/internal/logger"
	"canvashost/internal/module"
)

// Target supplies the drawing context scripts render into. Width and Height
// report the surface size, which may be smaller than the context's pixmap.
type Target interface {
	Context() *gg.Context
	Width() int
	Height() int
}

// Module wraps a Lua VM holding one render module.
//
// Module is NOT safe for concurrent use; the host calls it from its event
// goroutine only.
type Module struct {
	L      *glua.LState
	target Target
	log    *slog.Logger
	start  time.Time

	// Callbacks queued by frame.request for the next Tick.
	pending []*glua.LFunction
}

var (
	_ module.Module   = (*Module)(nil)
	_ module.Ticker   = (*Module)(nil)
	_ module.Exporter = (*Module)(nil)
)

// New creates a Module drawing into target. target may be nil for modules
// that never touch the canvas.
func New(target Target, log *slog.Logger) *Module {
	if log == nil {
		log = logger.L()
	}
	m := &Module{
		L:      glua.NewState(),
		target: target,
		log:    log,
		start:  time.Now(),
	}
	m.registerAPIs()
	return m
}

// Close releases the Lua state.
func (m *Module) Close() {
	m.pending = nil
	if m.L != nil {
		m.L.Close()
		m.L = nil
	}
}

// LoadString executes a chunk of Lua source. name is used in stack traces.
func (m *Module) LoadString(name, code string) error {
	fn, err := m.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	m.L.Push(fn)
	return m.L.PCall(0, 0, nil)
}

// LoadFile executes a Lua file.
func (m *Module) LoadFile(path string) error {
	return m.L.DoFile(path)
}

// Exports returns the sorted names of the global Lua functions defined by
// loaded scripts. Go builtins are not exports.
func (m *Module) Exports() []string {
	var names []string
	m.L.G.Global.ForEach(func(k, v glua.LValue) {
		fn, ok := v.(*glua.LFunction)
		if !ok || fn.IsG || k.Type() != glua.LTString {
			return
		}
		names = append(names, k.String())
	})
	sort.Strings(names)
	return names
}

// Call invokes the global function name with no arguments and returns its
// first result as a string. A nil result yields "".
func (m *Module) Call(name string) (string, error) {
	fn, ok := m.L.GetGlobal(name).(*glua.LFunction)
	if !ok {
		return "", fmt.Errorf("%w: %q", module.ErrUnknownExport, name)
	}

	if err := m.L.CallByParam(glua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}); err != nil {
		return "", err
	}

	ret := m.L.Get(-1)
	m.L.Pop(1)
	if ret == glua.LNil {
		return "", nil
	}
	return ret.String(), nil
}

// Tick runs the callbacks requested since the previous Tick. Callbacks that
// request another frame are queued for the following Tick.
func (m *Module) Tick() error {
	if len(m.pending) == 0 {
		return nil
	}
	batch := m.pending
	m.pending = nil

	var errs []error
	for _, fn := range batch {
		m.L.Push(fn)
		if err := m.L.PCall(0, 0, nil); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Pending returns the number of callbacks waiting for the next Tick.
func (m *Module) Pending() int {
	return len(m.pending)
}
