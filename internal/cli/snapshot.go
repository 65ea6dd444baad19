package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"canvashost/internal/adapter"
	"canvashost/internal/host/offscreen"
	"canvashost/internal/surface"
)

func snapshotCmd(opts *options) *cobra.Command {
	var (
		out       string
		frames    int
		viewport  string
		container string
		resizes   []string
	)

	c := &cobra.Command{
		Use:   "snapshot",
		Short: "Render headlessly and write the surface to a PNG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.load()
			if err != nil {
				return err
			}
			l, err := opts.setupLogger(cmd, d)
			if err != nil {
				return err
			}

			vp := d.Host.Viewport
			if viewport != "" {
				if vp, err = parseSize(viewport); err != nil {
					return fmt.Errorf("--viewport: %w", err)
				}
			}
			ct := d.Host.Container
			if container != "" {
				if ct, err = parseSize(container); err != nil {
					return fmt.Errorf("--container: %w", err)
				}
			}
			steps := make([]resizeStep, 0, len(resizes))
			for _, r := range resizes {
				s, err := parseResize(r)
				if err != nil {
					return fmt.Errorf("--resize: %w", err)
				}
				steps = append(steps, s)
			}

			host := offscreen.New(vp, ct)
			defer func() { _ = host.Close() }()

			canvas, err := surface.NewCanvas(initialWidth, initialHeight)
			if err != nil {
				return err
			}
			host.Add(d.Surface, canvas)

			mod, err := loadModule(d, canvas, l)
			if err != nil {
				return err
			}
			defer mod.Close()

			acfg := d.AdapterConfig()
			acfg.Module = mod
			acfg.Logger = l
			a := adapter.New(host, acfg)

			if err := a.OnReady(); err != nil {
				return err
			}
			tick := func() {
				for i := 0; i < frames; i++ {
					if err := mod.Tick(); err != nil {
						l.Warn("frame failed", "frame", i, "err", err)
					}
				}
			}
			tick()

			for _, s := range steps {
				host.SetViewport(s.viewport)
				if s.container != nil {
					host.SetContainer(*s.container)
				}
				if err := a.OnViewportChanged(); err != nil {
					return err
				}
				tick()
			}

			if err := canvas.SavePNG(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", out, canvas.Size())
			return nil
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "", "PNG file to write (required)")
	c.Flags().IntVar(&frames, "frames", 1, "Loop frames to tick after each signal")
	c.Flags().StringVar(&viewport, "viewport", "", "Viewport size WxH (default: from config)")
	c.Flags().StringVar(&container, "container", "", "Container size WxH (default: from config)")
	c.Flags().StringArrayVar(&resizes, "resize", nil, "Viewport change after ready: WxH, or WxH,CWxCH to also resize the container (repeatable)")
	_ = c.MarkFlagRequired("out")

	return c
}

// resizeStep is one viewport-changed signal. A nil container keeps the
// current container size.
type resizeStep struct {
	viewport  surface.Dimensions
	container *surface.Dimensions
}

// parseResize parses "WxH" or "WxH,CWxCH".
func parseResize(s string) (resizeStep, error) {
	vp, ct, hasContainer := strings.Cut(s, ",")
	v, err := parseSize(vp)
	if err != nil {
		return resizeStep{}, err
	}
	step := resizeStep{viewport: v}
	if hasContainer {
		c, err := parseSize(ct)
		if err != nil {
			return resizeStep{}, err
		}
		step.container = &c
	}
	return step, nil
}

// parseSize parses "WxH" into non-negative dimensions.
func parseSize(s string) (surface.Dimensions, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return surface.Dimensions{}, fmt.Errorf("size %q: want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return surface.Dimensions{}, fmt.Errorf("size %q: bad width", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return surface.Dimensions{}, fmt.Errorf("size %q: bad height", s)
	}
	if width < 0 || height < 0 {
		return surface.Dimensions{}, fmt.Errorf("size %q: negative", s)
	}
	return surface.Dimensions{Width: width, Height: height}, nil
}
