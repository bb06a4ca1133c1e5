package gfx

import "github.com/prb616/starlight/internal/platform"

var Convert = convert

func Wrapper(w *Window) platform.PlatformWindowWrapper {
	return w.platformWinWrapper
}
