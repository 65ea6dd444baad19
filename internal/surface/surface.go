// Package surface describes the drawing surface a host document exposes and
// the policy that maps host measurements onto its pixel size.
package surface

import (
	"errors"
	"fmt"
)

// ErrSurfaceNotFound is returned when no surface is registered under an id.
var ErrSurfaceNotFound = errors.New("surface: not found")

// Dimensions is a surface size in pixels. Both fields are non-negative.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Surface is a rectangular render target with mutable pixel dimensions,
// the equivalent of an HTML canvas element's width and height attributes.
type Surface interface {
	Width() int
	Height() int
	SetWidth(w int) error
	SetHeight(h int) error
}

// Resizer is implemented by surfaces that can change both dimensions in one
// step. Apply prefers it so a rejected size never leaves one axis updated.
type Resizer interface {
	Resize(w, h int) error
}

// Environment is the host document: it owns the surfaces and reports the
// measurements a sizing policy draws from. Each call reflects the host's
// current state.
type Environment interface {
	// Surface returns the surface registered under id, or an error wrapping
	// ErrSurfaceNotFound.
	Surface(id string) (Surface, error)

	// Viewport returns the current viewport size.
	Viewport() Dimensions

	// Container returns the content size of the element containing the
	// surface registered under id.
	Container(id string) Dimensions
}
