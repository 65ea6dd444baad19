// Package offscreen is a headless host document. Its viewport and container
// measurements are set explicitly and its surfaces are in-memory canvases.
package offscreen

import (
	"fmt"
	"sort"

	"canvashost/internal/surface"
)

// Host is NOT safe for concurrent use.
type Host struct {
	viewport  surface.Dimensions
	container surface.Dimensions
	surfaces  map[string]*surface.Canvas
}

var _ surface.Environment = (*Host)(nil)

func New(viewport, container surface.Dimensions) *Host {
	return &Host{
		viewport:  viewport,
		container: container,
		surfaces:  make(map[string]*surface.Canvas),
	}
}

// Add registers c under id, replacing any previous surface.
func (h *Host) Add(id string, c *surface.Canvas) {
	h.surfaces[id] = c
}

// Canvas returns the canvas registered under id.
func (h *Host) Canvas(id string) (*surface.Canvas, bool) {
	c, ok := h.surfaces[id]
	return c, ok
}

// IDs returns the registered surface ids in order.
func (h *Host) IDs() []string {
	ids := make([]string, 0, len(h.surfaces))
	for id := range h.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetViewport changes the reported viewport. Callers deliver the matching
// viewport-changed signal themselves.
func (h *Host) SetViewport(d surface.Dimensions) {
	h.viewport = d
}

func (h *Host) SetContainer(d surface.Dimensions) {
	h.container = d
}

func (h *Host) Surface(id string) (surface.Surface, error) {
	c, ok := h.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", surface.ErrSurfaceNotFound, id)
	}
	return c, nil
}

func (h *Host) Viewport() surface.Dimensions { return h.viewport }

// Container reports the same content box for every surface.
func (h *Host) Container(string) surface.Dimensions { return h.container }

// Close releases every registered canvas.
func (h *Host) Close() error {
	var first error
	for id, c := range h.surfaces {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
		delete(h.surfaces, id)
	}
	return first
}
