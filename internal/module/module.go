// Package module defines the capability set of an external Render Module:
// exports invoked by name, with no arguments, each returning a loggable result.
package module

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownExport is returned when a module has no export with the requested name.
var ErrUnknownExport = errors.New("module: unknown export")

// Module is an opaque render module.
type Module interface {
	Call(name string) (string, error)
}

// Ticker is implemented by modules whose continuous loop runs on the host's
// frame clock. Hosts call Tick once per frame.
type Ticker interface {
	Tick() error
}

// Exporter is implemented by modules that can list their exports.
type Exporter interface {
	Exports() []string
}

// Func is a single Go-implemented export.
type Func func() (string, error)

// Funcs is a Module assembled from Go functions.
type Funcs map[string]Func

func (f Funcs) Call(name string) (string, error) {
	fn, ok := f[name]
	if !ok || fn == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownExport, name)
	}
	return fn()
}

// Exports returns the sorted export names.
func (f Funcs) Exports() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
