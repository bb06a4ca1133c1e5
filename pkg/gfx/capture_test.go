package gfx_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prb616/starlight/pkg/gfx"
)

func TestCaptureIsACopy(t *testing.T) {
	w := openHeadless(t, 50, 50)
	w.Clear(gfx.Red)

	frame := w.Capture()
	w.Clear(gfx.Blue)

	assert.Equal(t, gfx.Red, frame.RGBAAt(25, 25))
	assert.Equal(t, gfx.Blue, w.Capture().RGBAAt(25, 25))
}

func TestCaptureScaled(t *testing.T) {
	w := openHeadless(t, 100, 100)
	w.Clear(gfx.Green)

	scaled := w.CaptureScaled(25, 40)
	assert.Equal(t, 25, scaled.Bounds().Dx())
	assert.Equal(t, 40, scaled.Bounds().Dy())
	assert.Equal(t, gfx.Green, scaled.RGBAAt(12, 20))

	// bad target sizes fall back to the original
	same := w.CaptureScaled(0, -3)
	assert.Equal(t, 100, same.Bounds().Dx())
}

func TestSavePNG(t *testing.T) {
	w := openHeadless(t, 32, 32)
	w.Clear(gfx.Magenta)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, w.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())
	r, g, b, a := decoded.At(16, 16).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0xffff, 0xffff}, []uint32{r, g, b, a})
}

func TestSavePNGBadPath(t *testing.T) {
	w := openHeadless(t, 16, 16)
	assert.Error(t, w.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")))
}
