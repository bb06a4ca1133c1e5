package platform

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

// ConfigureNotify reports the geometry the server actually applied.
type ConfigureNotify struct {
	X, Y          int
	Width, Height int
}
type DestroyNotify struct{}

// ClientMessage is the window manager asking for the window to close.
type ClientMessage struct{}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	X, Y   int
}
type UnexpectedEvent struct{}
type TimeoutEvent struct{}
