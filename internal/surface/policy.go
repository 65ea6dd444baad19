package surface

import (
	"fmt"
	"strings"
)

// Source selects the measurement an axis is derived from.
type Source int

const (
	SourceViewport  Source = iota // viewport extent minus margin
	SourceContainer               // containing element's content extent minus margin
	SourceNone                    // axis left untouched
)

var sourceNames = map[Source]string{
	SourceViewport:  "viewport",
	SourceContainer: "container",
	SourceNone:      "none",
}

func (s Source) String() string {
	if n, ok := sourceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// ParseSource maps a configuration name onto a Source.
func ParseSource(name string) (Source, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range sourceNames {
		if n == key {
			return s, nil
		}
	}
	return SourceNone, fmt.Errorf("surface: unknown sizing source %q", name)
}

// Axis is the sizing rule for one dimension.
type Axis struct {
	Source Source
	Margin int
}

// resolve returns the axis value for the given measurements, and false when
// the axis is not managed.
func (a Axis) resolve(viewport, container int) (int, bool) {
	var v int
	switch a.Source {
	case SourceViewport:
		v = viewport - a.Margin
	case SourceContainer:
		v = container - a.Margin
	default:
		return 0, false
	}
	return max(v, 0), true
}

// Policy maps host measurements to surface dimensions.
type Policy struct {
	Width  Axis
	Height Axis
}

// MarginPolicy sizes the surface to the viewport minus fixed margins.
func MarginPolicy(dx, dy int) Policy {
	return Policy{
		Width:  Axis{Source: SourceViewport, Margin: dx},
		Height: Axis{Source: SourceViewport, Margin: dy},
	}
}

// ContainerPolicy sizes the surface to its containing element.
func ContainerPolicy() Policy {
	return Policy{
		Width:  Axis{Source: SourceContainer},
		Height: Axis{Source: SourceContainer},
	}
}

func (p Policy) usesContainer() bool {
	return p.Width.Source == SourceContainer || p.Height.Source == SourceContainer
}

// Apply locates the surface id in env, derives its size from the current
// measurements and writes it. Axes with SourceNone keep their prior value.
// Both axes are resolved before either is written.
// The returned dimensions are read back from the surface.
func Apply(env Environment, id string, p Policy) (Dimensions, error) {
	s, err := env.Surface(id)
	if err != nil {
		return Dimensions{}, err
	}

	vp := env.Viewport()
	var ct Dimensions
	if p.usesContainer() {
		ct = env.Container(id)
	}

	w, setW := p.Width.resolve(vp.Width, ct.Width)
	h, setH := p.Height.resolve(vp.Height, ct.Height)
	if !setW {
		w = s.Width()
	}
	if !setH {
		h = s.Height()
	}

	if r, ok := s.(Resizer); ok {
		if setW || setH {
			if err := r.Resize(w, h); err != nil {
				return Dimensions{}, fmt.Errorf("surface %q: resize to %dx%d: %w", id, w, h, err)
			}
		}
	} else {
		if setW {
			if err := s.SetWidth(w); err != nil {
				return Dimensions{}, fmt.Errorf("surface %q: set width %d: %w", id, w, err)
			}
		}
		if setH {
			if err := s.SetHeight(h); err != nil {
				return Dimensions{}, fmt.Errorf("surface %q: set height %d: %w", id, h, err)
			}
		}
	}

	return Dimensions{Width: s.Width(), Height: s.Height()}, nil
}
