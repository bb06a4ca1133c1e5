package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prb616/starlight/pkg/gfx"
)

func TestNamedColors(t *testing.T) {
	assert.Equal(t, gfx.Color{R: 255, G: 255, B: 255, A: 255}, gfx.White)
	assert.Equal(t, gfx.Color{A: 255}, gfx.Black)
	assert.Equal(t, gfx.Color{R: 255, A: 255}, gfx.Red)
	assert.Equal(t, gfx.Color{G: 255, A: 255}, gfx.Green)
	assert.Equal(t, gfx.Color{B: 255, A: 255}, gfx.Blue)
	assert.Equal(t, gfx.Color{}, gfx.Transparent)
}

func TestRGB(t *testing.T) {
	assert.Equal(t, gfx.Color{R: 1, G: 2, B: 3, A: 255}, gfx.RGB(1, 2, 3))
	assert.Equal(t, gfx.Color{R: 1, G: 2, B: 3, A: 4}, gfx.RGBA(1, 2, 3, 4))
}

func TestHex(t *testing.T) {
	c, err := gfx.Hex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, gfx.Red, c)

	c, err = gfx.Hex("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, gfx.Green, c)

	_, err = gfx.Hex("not-a-color")
	assert.Error(t, err)
}

func TestHSB(t *testing.T) {
	assert.Equal(t, gfx.Red, gfx.HSB(0, 1, 1))
	assert.Equal(t, gfx.Green, gfx.HSB(120, 1, 1))
	assert.Equal(t, gfx.Blue, gfx.HSB(240, 1, 1))
	assert.Equal(t, gfx.White, gfx.HSB(0, 0, 1))
	assert.Equal(t, gfx.Black, gfx.HSB(0, 0, 0))

	// saturation and brightness clamp to [0,1]
	assert.Equal(t, gfx.Red, gfx.HSB(0, 2, 5))
}
