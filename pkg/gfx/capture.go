package gfx

import (
	"image"
	"image/png"
	"os"

	"github.com/go-errors/errors"
	xdraw "golang.org/x/image/draw"
)

// Capture returns a copy of the back buffer.
func (w *Window) Capture() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frame.Clone()
}

// CaptureScaled resamples the back buffer to the given size.
func (w *Window) CaptureScaled(width, height int) *image.RGBA {
	src := w.Capture()
	if width <= 0 || height <= 0 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func (w *Window) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err)
	}
	defer f.Close()
	if err := png.Encode(f, w.Capture()); err != nil {
		return errors.New(err)
	}
	return nil
}
