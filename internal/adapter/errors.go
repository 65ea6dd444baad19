package adapter

import (
	"errors"
	"fmt"
)

// Kind classifies a failure inside a sizing-and-render cycle.
type Kind string

const (
	KindSurfaceNotFound Kind = "surface_not_found"
	KindSurfaceResize   Kind = "surface_resize_failure"
	KindRenderCallback  Kind = "render_callback_failure"
	KindLoopStart       Kind = "loop_start_failure"
)

// Error wraps a cycle failure with the lifecycle operation, its kind and the
// surface id or export name involved.
type Error struct {
	Op   string
	Kind Kind
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("adapter.%s: %s", e.Op, e.Kind)
	if e.Name != "" {
		base += fmt.Sprintf(" (%s)", e.Name)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an adapter error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// PanicError carries a value recovered from a panicking collaborator.
type PanicError struct {
	Value any
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// protect runs fn and turns a panic into a returned *PanicError.
func protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return fn()
}
