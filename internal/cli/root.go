package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"canvashost/internal/assets"
	"canvashost/internal/config"
	"canvashost/internal/logger"
	"canvashost/internal/module/luamodule"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "canvashost",
		Short:        "canvashost — size a drawing surface and drive a render module",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Deployment file (default: built-in)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Override log format: text|json")

	cmd.AddCommand(runCmd(opts), snapshotCmd(opts), configCmd(opts))
	return cmd
}

// load reads --config, falling back to the built-in deployment.
func (o *options) load() (config.Deployment, error) {
	if o.configPath == "" {
		return config.Default()
	}
	return config.Load(o.configPath)
}

// setupLogger builds the logger for cmd from the deployment and the flags.
func (o *options) setupLogger(cmd *cobra.Command, d config.Deployment) (*slog.Logger, error) {
	lc := logger.Config{Level: d.Log.Level, Format: logger.Format(d.Log.Format)}
	if o.logLevel != "" {
		lc.Level = o.logLevel
	}
	if o.logFormat != "" {
		lc.Format = logger.Format(o.logFormat)
	}
	return logger.Setup(cmd.ErrOrStderr(), lc)
}

// loadModule creates the Lua render module of d drawing into target.
func loadModule(d config.Deployment, target luamodule.Target, l *slog.Logger) (*luamodule.Module, error) {
	m := luamodule.New(target, l.With("module", moduleName(d)))

	if d.Module.Script != "" {
		if err := m.LoadFile(d.Module.Script); err != nil {
			m.Close()
			return nil, err
		}
		return m, nil
	}

	src, err := assets.Script(assets.DemoScript)
	if err != nil {
		m.Close()
		return nil, err
	}
	if err := m.LoadString(assets.DemoScript, string(src)); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

func moduleName(d config.Deployment) string {
	if d.Module.Script != "" {
		return d.Module.Script
	}
	return assets.DemoScript
}
