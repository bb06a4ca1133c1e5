package gfx

import (
	"image/color"

	"github.com/go-errors/errors"
	"github.com/lucasb-eyer/go-colorful"
)

type Color = color.RGBA

var (
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Black       = Color{A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
	Yellow      = Color{R: 255, G: 255, A: 255}
	Magenta     = Color{R: 255, B: 255, A: 255}
	Cyan        = Color{G: 255, B: 255, A: 255}
	Gray        = Color{R: 128, G: 128, B: 128, A: 255}
	Transparent = Color{}
)

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses "#rrggbb" into an opaque color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.New(err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// HSB builds an opaque color from hue in degrees and saturation/brightness
// in [0,1].
func HSB(hue, saturation, brightness float64) Color {
	r, g, b := colorful.Hsv(hue, clamp01(saturation), clamp01(brightness)).Clamped().RGB255()
	return RGB(r, g, b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
