// Command filledquads renders four diamond-shaped quads across two
// windows placed side by side, keeps them on screen for a while and closes
// everything down.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/prb616/starlight/pkg/geom"
	"github.com/prb616/starlight/pkg/gfx"
)

type options struct {
	width    int
	height   int
	delay    time.Duration
	headless bool
	outDir   string
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "filledquads",
		Short:        "Fill diamond quads on two windows",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return run(opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 600, "window width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 600, "window height in pixels")
	cmd.Flags().DurationVar(&opts.delay, "delay", 5*time.Second, "how long to keep the windows open")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "render in memory without a display server")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "directory to save PNG captures of both windows")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log window lifecycle to stderr")
	return cmd
}

func run(opts options) error {
	sx := float64(opts.width) / 600
	sy := float64(opts.height) / 600
	quad := func(x1, y1, x2, y2, x3, y3, x4, y4 float64) geom.Quad {
		return geom.QuadFrom(x1*sx, y1*sy, x2*sx, y2*sy, x3*sx, y3*sy, x4*sx, y4*sy)
	}

	// diamonds pointing up, right, down and left around the window center
	q1 := quad(400, 200, 300, 300, 300, 0, 200, 200)
	q2 := quad(400, 210, 310, 300, 600, 300, 400, 390)
	q3 := quad(200, 400, 300, 300, 300, 600, 400, 400)
	q4 := quad(200, 390, 290, 300, 0, 300, 200, 210)

	backend := gfx.BackendAuto
	if opts.headless {
		backend = gfx.BackendHeadless
	}

	window1, err := gfx.Open(gfx.WindowConfig{
		Title:   "Filled Diamond On Window 1",
		Width:   opts.width,
		Height:  opts.height,
		Backend: backend,
	})
	if err != nil {
		return err
	}
	defer gfx.CloseAll()

	window2, err := gfx.Open(gfx.WindowConfig{
		Title:   "Filled Diamond On Window 2",
		Width:   opts.width,
		Height:  opts.height,
		Backend: backend,
	})
	if err != nil {
		return err
	}

	// side by side
	window1.MoveTo(0, 0)
	window2.MoveTo(window1.Width(), 0)

	window1.Clear(gfx.White)
	window2.Clear(gfx.White)

	window1.FillQuad(gfx.Black, q1)
	window1.FillQuad(gfx.Green, q2)
	window2.FillQuad(gfx.Red, q3)
	window2.FillQuad(gfx.Blue, q4)

	if err := gfx.RefreshAll(); err != nil {
		return err
	}

	if opts.outDir != "" {
		if err := window1.SavePNG(filepath.Join(opts.outDir, "window1.png")); err != nil {
			return err
		}
		if err := window2.SavePNG(filepath.Join(opts.outDir, "window2.png")); err != nil {
			return err
		}
	}

	gfx.Delay(opts.delay)
	return nil
}
