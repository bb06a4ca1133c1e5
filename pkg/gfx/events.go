package gfx

import "github.com/prb616/starlight/internal/platform"

type Event interface{}

type Expose struct{}
type KeyPress struct {
	Code uint64
}
type KeyRelease struct {
	Code uint64
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type EnterNotify struct{}
type LeaveNotify struct{}
// Configured reports the geometry the display server applied.
type Configured struct {
	X, Y          int
	Width, Height int
}
type DestroyNotify struct{}

// CloseRequested is the window manager asking for the window to go away.
type CloseRequested struct{}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	X, Y   int
}
type UnexpectedEvent struct{}

// convert maps platform events onto the public set. Timeouts convert to
// nil: they are flow control, not events.
func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.Expose:
		return Expose{}
	case platform.KeyPress:
		return KeyPress{Code: e.Code}
	case platform.KeyRelease:
		return KeyRelease{Code: e.Code}
	case platform.ButtonPress:
		return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
	case platform.ButtonRelease:
		return ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}
	case platform.MotionNotify:
		return MotionNotify{X: e.X, Y: e.Y}
	case platform.EnterNotify:
		return EnterNotify{}
	case platform.LeaveNotify:
		return LeaveNotify{}
	case platform.ConfigureNotify:
		return Configured{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
	case platform.DestroyNotify:
		return DestroyNotify{}
	case platform.ClientMessage:
		return CloseRequested{}
	case platform.MouseWheel:
		return MouseWheel{DeltaX: e.DeltaX, DeltaY: e.DeltaY, X: e.X, Y: e.Y}
	case platform.TimeoutEvent:
		return nil
	default:
		return UnexpectedEvent{}
	}
}
