// Package gfx opens windows and paints solid shapes onto their back
// buffers. Draw operations are immediate: they paint the window's RGBA
// back buffer and mark it dirty, and Refresh presents the dirty region to
// the display backend.
package gfx

import (
	"context"
	"image"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/go-errors/errors"

	"github.com/prb616/starlight/internal/platform"
)

type Backend = platform.Backend

const (
	BackendAuto     = platform.BackendAuto
	BackendX11      = platform.BackendX11
	BackendHeadless = platform.BackendHeadless
)

type WindowConfig struct {
	PositionX   int
	PositionY   int
	Width       int
	Height      int
	BorderWidth int
	Title       string
	Backend     Backend
}

func (c WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		PositionX:   c.PositionX,
		PositionY:   c.PositionY,
		Width:       c.Width,
		Height:      c.Height,
		BorderWidth: c.BorderWidth,
		Title:       c.Title,
		Backend:     c.Backend,
	}
}

type Window struct {
	mu                 sync.Mutex
	platformWinWrapper platform.PlatformWindowWrapper
	frame              platform.Surface
	dc                 *gg.Context
	dirty              image.Rectangle
	title              string
	width              int
	height             int
	refreshDelay       time.Duration
	closed             bool

	updates chan func()
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// Open creates a window, shows it and adds it to the package registry.
func Open(conf WindowConfig) (*Window, error) {
	if conf.Width <= 0 || conf.Height <= 0 {
		return nil, errors.Errorf("window %q needs a positive size, got %dx%d", conf.Title, conf.Width, conf.Height)
	}
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	frame := platform.NewRGBASurface(conf.Width, conf.Height)
	w := &Window{
		platformWinWrapper: wrapper,
		frame:              frame,
		dc:                 gg.NewContextForRGBA(frame.RGBA()),
		dirty:              frame.Bounds(),
		title:              conf.Title,
		width:              conf.Width,
		height:             conf.Height,
		updates:            make(chan func(), 1024),
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	wrapper.Show()
	register(w)
	logDebug("window opened", "title", conf.Title, "width", conf.Width, "height", conf.Height)
	return w, nil
}

func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *Window) Width() int {
	width, _ := w.Size()
	return width
}

func (w *Window) Height() int {
	_, height := w.Size()
	return height
}

func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.title = title
	w.platformWinWrapper.SetTitle(title)
}

func (w *Window) Position() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.platformWinWrapper.Position()
}

func (w *Window) MoveTo(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.platformWinWrapper.MoveTo(x, y)
}

// Clear fills the whole back buffer with one color.
func (w *Window) Clear(c color.Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.dc.SetColor(c)
	w.dc.Clear()
	w.dirty = w.frame.Bounds()
}

// Refresh presents the dirty part of the back buffer. Clean frames are
// skipped. The damage region survives a failed present, so the next
// Refresh retries it.
func (w *Window) Refresh() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.dirty.Empty() {
		return nil
	}
	if err := w.platformWinWrapper.Present(w.frame.RGBA(), w.dirty); err != nil {
		logError("present failed", "title", w.title, "err", err)
		return err
	}
	w.dirty = image.Rectangle{}
	return nil
}

// RefreshRate sets the target frame rate of the Run loop.
func (w *Window) RefreshRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	ms := int(math.Abs(float64(1000.0 / fps)))
	w.refreshDelay = time.Duration(ms) * time.Millisecond
}

// Stop cancels the Run loop and any running animations.
func (w *Window) Stop() {
	w.cancel()
}

func (w *Window) Close() {
	w.cancel()
	w.wg.Wait()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.platformWinWrapper.Close()
	w.mu.Unlock()

	deregister(w)
	logDebug("window closed", "title", w.Title())
}

func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// damage marks the whole frame dirty, forcing the next Refresh to present
// everything. Expose events land here.
func (w *Window) damage() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.dirty = w.frame.Bounds()
}

func (w *Window) markDirtyLocked(r image.Rectangle) {
	r = r.Intersect(w.frame.Bounds())
	if r.Empty() {
		return
	}
	w.dirty = w.dirty.Union(r)
}

// ----------------------------------------------------------------------------

var registry = struct {
	mu      sync.Mutex
	windows []*Window
}{}

func register(w *Window) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.windows = append(registry.windows, w)
}

func deregister(w *Window) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for i, other := range registry.windows {
		if other == w {
			registry.windows = append(registry.windows[:i], registry.windows[i+1:]...)
			return
		}
	}
}

func openWindows() []*Window {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	out := make([]*Window, len(registry.windows))
	copy(out, registry.windows)
	return out
}

// OpenWindows reports how many windows are currently open.
func OpenWindows() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.windows)
}

// CloseAll closes every open window.
func CloseAll() {
	for _, w := range openWindows() {
		w.Close()
	}
}

// RefreshAll presents every open window and returns the first error.
func RefreshAll() error {
	var firstErr error
	for _, w := range openWindows() {
		if err := w.Refresh(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
