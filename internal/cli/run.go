package cli

import (
	"github.com/spf13/cobra"

	"canvashost/internal/host/ebitenhost"
	"canvashost/internal/surface"
)

// initialWidth and initialHeight match an HTML canvas element without
// width and height attributes.
const (
	initialWidth  = 300
	initialHeight = 150
)

func runCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open a window and drive the render module until it is closed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.load()
			if err != nil {
				return err
			}
			l, err := opts.setupLogger(cmd, d)
			if err != nil {
				return err
			}

			c, err := surface.NewCanvas(initialWidth, initialHeight)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			mod, err := loadModule(d, c, l)
			if err != nil {
				return err
			}
			defer mod.Close()

			acfg := d.AdapterConfig()
			acfg.Module = mod
			acfg.Logger = l

			game := ebitenhost.NewGame(c, acfg)
			err = ebitenhost.Run(game, ebitenhost.Options{
				Width:  d.Window.Width,
				Height: d.Window.Height,
				Title:  d.Window.Title,
			})
			a := game.Adapter()
			l.Info("window closed", "state", a.State().String(), "loop_started", a.LoopStarted(), "size", c.Size().String())
			return err
		},
	}
}
