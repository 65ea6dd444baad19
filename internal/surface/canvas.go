package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// ErrInvalidDimensions is returned for negative canvas sizes and for
// operations that need at least one pixel, such as encoding a PNG.
var ErrInvalidDimensions = errors.New("surface: invalid dimensions")

// Canvas is an in-memory Surface backed by a gg drawing context.
// Every resize clears its content, like a browser canvas does when its width
// or height attribute is assigned.
//
// A canvas may be 0 pixels along an axis. gg needs a non-empty pixmap, so the
// backing context never shrinks below 1x1; Width, Height and Pixels report
// the logical size.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx           *gg.Context
	width, height int
}

// NewCanvas creates a canvas of the given size.
func NewCanvas(width, height int) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		ctx:    gg.NewContext(max(width, 1), max(height, 1)),
		width:  width,
		height: height,
	}, nil
}

// Context returns the drawing context. The pointer stays valid across resizes.
func (c *Canvas) Context() *gg.Context {
	return c.ctx
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Size returns the current dimensions.
func (c *Canvas) Size() Dimensions {
	return Dimensions{Width: c.width, Height: c.height}
}

func (c *Canvas) SetWidth(w int) error {
	return c.Resize(w, c.height)
}

func (c *Canvas) SetHeight(h int) error {
	return c.Resize(c.width, h)
}

// Resize sets both dimensions at once. A rejected size leaves the canvas
// unchanged.
func (c *Canvas) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, w, h)
	}
	if err := c.ctx.Resize(max(w, 1), max(h, 1)); err != nil {
		return err
	}
	// gg keeps the pixmap when the size is unchanged.
	c.ctx.Clear()
	c.width, c.height = w, h
	return nil
}

// Empty reports whether the canvas has no pixels.
func (c *Canvas) Empty() bool {
	return c.width == 0 || c.height == 0
}

// Pixels returns the canvas content as tightly packed RGBA bytes. An empty
// canvas has no pixels.
func (c *Canvas) Pixels() []byte {
	if c.Empty() {
		return nil
	}
	return c.ctx.ResizeTarget().Data()
}

// SavePNG writes the canvas content to path.
func (c *Canvas) SavePNG(path string) error {
	if c.Empty() {
		return fmt.Errorf("%w: cannot encode %s", ErrInvalidDimensions, c.Size())
	}
	return c.ctx.SavePNG(path)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.ctx.Close()
}
