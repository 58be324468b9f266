// Command rrr-tui browses a content-addressed record registry in the
// terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/registry"
	"github.com/rrr-registry/rrr-tui/internal/view"
)

type options struct {
	tickRate       float64
	frameRate      float64
	registryDir    string
	forceMaxWidth  int
	forceMaxHeight int
	logFile        string
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "rrr-tui",
		Short:         "Terminal browser for content-addressed record registries",
		Version:       view.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.tickRate, "tick-rate", 4.0, "ticks per second")
	flags.Float64Var(&opts.frameRate, "frame-rate", 60.0, "maximum frames per second")
	flags.StringVar(&opts.registryDir, "registry-directory", ".", "path to the registry directory")
	flags.IntVar(&opts.forceMaxWidth, "force-max-width", 0, "cap the rendered width (0 = terminal width)")
	flags.IntVar(&opts.forceMaxHeight, "force-max-height", 0, "cap the rendered height (0 = terminal height)")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path (default: user cache dir)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if err := setupLogging(opts.logFile); err != nil {
		return err
	}

	reg, err := registry.Open(opts.registryDir)
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	slog.Info("registry opened", "dir", reg.Dir(), "name", reg.Config().Name)

	main := view.NewMainView(reg)
	app, err := tui.NewApp(main,
		tui.WithTickRate(opts.tickRate),
		tui.WithFrameRate(opts.frameRate),
		tui.WithMaxSize(opts.forceMaxWidth, opts.forceMaxHeight),
	)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	main.SetPoster(app.Post)

	if err := app.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}

// setupLogging routes slog to a rotated file. Stdout belongs to the
// terminal renderer, so logs never go there.
func setupLogging(path string) error {
	if path == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("resolving log directory: %w", err)
		}
		path = filepath.Join(cacheDir, "rrr-tui", "rrr-tui.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	return nil
}
