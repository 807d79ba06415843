// Command hellocanvas opens a window and draws a fixed 2D scene into it
// with gg every frame.
//
// Usage:
//
//	hellocanvas [-config file.toml] [-width 400] [-height 400] [-font go]
//	            [-scale 0] [-message text] [-log-level info]
//	            [-snapshot out.png] [-quiet]
//
// Press Escape or close the window to quit. With -snapshot, one frame is
// rendered off-screen to a PNG file and no window is opened.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/gogpu/hellocanvas"
	"github.com/gogpu/hellocanvas/internal/canvas"
	"github.com/gogpu/hellocanvas/internal/config"
	"github.com/gogpu/hellocanvas/internal/fonts"
	"github.com/gogpu/hellocanvas/internal/loop"
	"github.com/gogpu/hellocanvas/internal/present"
	"github.com/gogpu/hellocanvas/internal/window"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "hellocanvas: %v\n", err)
		return 1
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	hellocanvas.SetLogger(log)

	faces, err := fonts.Load(cfg.Font)
	if err != nil {
		hellocanvas.LogError("fonts.Load", err)
		return 1
	}
	defer func() { _ = faces.Close() }()
	log.Debug("font loaded", "family", faces.Family(), "name", faces.Name())

	r := canvas.New(faces, canvas.WithMessage(cfg.Message))

	if cfg.Snapshot != "" {
		if err := snapshot(cfg, r); err != nil {
			hellocanvas.LogError("snapshot", err)
			return 1
		}
		log.Info("snapshot saved", "path", cfg.Snapshot, "width", cfg.Width, "height", cfg.Height)
		return 0
	}

	// The display scale is unknown until the window exists; the first frame
	// resizes the presenter to the real framebuffer.
	scale := cfg.ScaleFactor()
	p, err := present.New(int(float64(cfg.Width)*scale), int(float64(cfg.Height)*scale))
	if err != nil {
		hellocanvas.LogError("present.New", err)
		return 1
	}
	defer func() { _ = p.Close() }()

	win := window.New(cfg.Title, cfg.Width, cfg.Height, cfg.Scale)
	win.OnClose(func() { _ = p.Close() })

	var opts []loop.Option
	if !cfg.Quiet {
		out := termenv.NewOutput(os.Stdout)
		opts = append(opts,
			loop.WithStats(out),
			loop.WithStatsStyle(func(s string) string {
				return out.String(s).Faint().String()
			}),
		)
	}
	d := loop.New(win.Size(), p, r, opts...)

	if err := win.Run(context.Background(), d); err != nil {
		log.Error("stopped after failure", "err", err)
		return 1
	}
	return 0
}

// parseConfig builds the settings from defaults, an optional config file,
// and command-line flags, in increasing order of precedence.
func parseConfig(args []string) (config.Config, error) {
	def := config.Default()
	fs := flag.NewFlagSet("hellocanvas", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML config file")
		width      = fs.Int("width", def.Width, "window width")
		height     = fs.Int("height", def.Height, "window height")
		font       = fs.String("font", def.Font, fmt.Sprintf("font family %v", fonts.Families()))
		logLevel   = fs.String("log-level", def.LogLevel, "log level: debug, info, warn, error")
		snapshotTo = fs.String("snapshot", "", "render one frame to this PNG file and exit")
		quiet      = fs.Bool("quiet", false, "do not print frame timing")
		scale      = fs.Float64("scale", def.Scale, "override the display scale factor (0 follows the display)")
		message    = fs.String("message", def.Message, "text drawn on the canvas")
	)
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "font":
			cfg.Font = *font
		case "log-level":
			cfg.LogLevel = *logLevel
		case "snapshot":
			cfg.Snapshot = *snapshotTo
		case "quiet":
			cfg.Quiet = *quiet
		case "scale":
			cfg.Scale = *scale
		case "message":
			cfg.Message = *message
		}
	})
	return cfg, cfg.Validate()
}

// snapshot renders a single frame off-screen and writes it as PNG.
func snapshot(cfg config.Config, r *canvas.Renderer) error {
	scale := cfg.ScaleFactor()
	dc := loop.NewTarget(int(float64(cfg.Width)*scale), int(float64(cfg.Height)*scale), scale)
	defer func() { _ = dc.Close() }()

	if err := r.Draw(dc, float64(cfg.Width), float64(cfg.Height)); err != nil {
		return err
	}
	if err := dc.SavePNG(cfg.Snapshot); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Snapshot, err)
	}
	return nil
}
