package platform

import (
	"image"
	"os"
)

// Backend selects how a window is realized.
type Backend int

const (
	// BackendAuto picks X11 when a display is reachable, headless otherwise.
	BackendAuto Backend = iota
	BackendX11
	BackendHeadless
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

// PlatformWindowWrapper is the boundary between the gfx layer and a
// concrete display backend. Present pushes the dirty part of the back
// buffer to the display; NextEventTimeout returns TimeoutEvent when no
// event arrives within timeoutMs.
type PlatformWindowWrapper interface {
	Show()
	Close()
	MoveTo(x, y int)
	SetTitle(title string)
	Position() (int, int)
	Present(img *image.RGBA, dirty image.Rectangle) error
	NextEventTimeout(timeoutMs int) Event
}

func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	switch conf.Backend {
	case BackendX11:
		return newX11WindowWrapper(conf)
	case BackendHeadless:
		return NewHeadlessWindowWrapper(conf), nil
	default:
		if os.Getenv("DISPLAY") != "" {
			return newX11WindowWrapper(conf)
		}
		return NewHeadlessWindowWrapper(conf), nil
	}
}
