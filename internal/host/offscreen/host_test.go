package offscreen

import (
	"errors"
	"reflect"
	"testing"

	"canvashost/internal/adapter"
	"canvashost/internal/module"
	"canvashost/internal/surface"
)

func newHost(t *testing.T) (*Host, *surface.Canvas) {
	t.Helper()
	c, err := surface.NewCanvas(300, 150)
	if err != nil {
		t.Fatal(err)
	}
	h := New(surface.Dimensions{Width: 1000, Height: 800}, surface.Dimensions{Width: 640, Height: 480})
	h.Add("canvas", c)
	t.Cleanup(func() { _ = h.Close() })
	return h, c
}

func TestSurfaceLookup(t *testing.T) {
	h, c := newHost(t)

	s, err := h.Surface("canvas")
	if err != nil {
		t.Fatal(err)
	}
	if s != surface.Surface(c) {
		t.Error("Surface() returned a different canvas")
	}
	if _, err := h.Surface("other"); !errors.Is(err, surface.ErrSurfaceNotFound) {
		t.Errorf("Surface(other) error = %v", err)
	}
	if got := h.IDs(); !reflect.DeepEqual(got, []string{"canvas"}) {
		t.Errorf("IDs() = %v", got)
	}
}

func TestAdapterCycle(t *testing.T) {
	tests := []struct {
		name   string
		policy surface.Policy
		want   surface.Dimensions
	}{
		{"margin", surface.MarginPolicy(18, 100), surface.Dimensions{Width: 982, Height: 700}},
		{"container", surface.ContainerPolicy(), surface.Dimensions{Width: 640, Height: 480}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, c := newHost(t)
			var calls []string
			m := module.Funcs{
				"draw_hexes": func() (string, error) {
					calls = append(calls, "draw_hexes")
					return "Done!", nil
				},
			}
			a := adapter.New(h, adapter.Config{
				SurfaceID: "canvas",
				Policy:    tt.policy,
				Module:    m,
				Callbacks: []string{"draw_hexes"},
			})

			if err := a.OnReady(); err != nil {
				t.Fatal(err)
			}
			if got := c.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
			if len(calls) != 1 {
				t.Errorf("draw_hexes called %d times", len(calls))
			}
		})
	}
}

func TestViewportBelowMarginsThenGrown(t *testing.T) {
	h, c := newHost(t)
	h.SetViewport(surface.Dimensions{Width: 50, Height: 50})
	a := adapter.New(h, adapter.Config{
		SurfaceID: "canvas",
		Policy:    surface.MarginPolicy(18, 100),
		Module:    module.Funcs{},
		Contain:   false,
	})

	if err := a.OnReady(); err != nil {
		t.Fatalf("OnReady() error = %v", err)
	}
	if got := c.Size(); got != (surface.Dimensions{Width: 32, Height: 0}) {
		t.Fatalf("Size() = %v, want 32x0", got)
	}
	if a.State() != adapter.StateReady {
		t.Fatalf("state = %v, want ready", a.State())
	}

	h.SetViewport(surface.Dimensions{Width: 500, Height: 400})
	if err := a.OnViewportChanged(); err != nil {
		t.Fatalf("OnViewportChanged() error = %v", err)
	}
	if got := c.Size(); got != (surface.Dimensions{Width: 482, Height: 300}) {
		t.Errorf("Size() = %v, want 482x300", got)
	}
}
