package platform

import (
	"image"
	"image/draw"
	"sync"
	"time"
)

// HeadlessWindow is an in-memory backend. It records geometry and presented
// frames and serves events from an injectable queue, which makes it the
// test target for everything above the platform boundary and a usable
// render target on machines without a display server.
type HeadlessWindow struct {
	mu       sync.Mutex
	posX     int
	posY     int
	width    int
	height   int
	title    string
	shown    bool
	closed   bool
	frame      *image.RGBA
	presents   int
	presentErr error
	events     chan Event
}

func NewHeadlessWindowWrapper(conf WindowConfig) *HeadlessWindow {
	return &HeadlessWindow{
		posX:   conf.PositionX,
		posY:   conf.PositionY,
		width:  conf.Width,
		height: conf.Height,
		title:  conf.Title,
		frame:  image.NewRGBA(image.Rect(0, 0, conf.Width, conf.Height)),
		events: make(chan Event, 64),
	}
}

func (w *HeadlessWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.shown = true
	}
}

func (w *HeadlessWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.shown = false
}

func (w *HeadlessWindow) MoveTo(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.posX, w.posY = x, y
}

func (w *HeadlessWindow) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.title = title
}

func (w *HeadlessWindow) Position() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.posX, w.posY
}

func (w *HeadlessWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *HeadlessWindow) Shown() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shown
}

func (w *HeadlessWindow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// SetPresentError makes subsequent presents fail with err until cleared
// with nil; frames are dropped while it is set.
func (w *HeadlessWindow) SetPresentError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.presentErr = err
}

func (w *HeadlessWindow) Present(img *image.RGBA, dirty image.Rectangle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || img == nil {
		return nil
	}
	if w.presentErr != nil {
		return w.presentErr
	}
	dirty = dirty.Intersect(img.Bounds()).Intersect(w.frame.Bounds())
	if dirty.Empty() {
		return nil
	}
	draw.Draw(w.frame, dirty, img, dirty.Min, draw.Src)
	w.presents++
	return nil
}

// Presents reports how many non-empty frames reached the backend.
func (w *HeadlessWindow) Presents() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presents
}

// Frame returns a copy of the last composed frame.
func (w *HeadlessWindow) Frame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := image.NewRGBA(w.frame.Bounds())
	draw.Draw(out, out.Bounds(), w.frame, w.frame.Bounds().Min, draw.Src)
	return out
}

// PushEvent queues an event for delivery; it is dropped when the queue is
// full, mirroring how the gfx layer treats overloaded event buffers.
func (w *HeadlessWindow) PushEvent(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

func (w *HeadlessWindow) NextEventTimeout(timeoutMs int) Event {
	if w.Closed() {
		return TimeoutEvent{}
	}
	if timeoutMs <= 0 {
		select {
		case ev := <-w.events:
			return ev
		default:
			return TimeoutEvent{}
		}
	}
	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case ev := <-w.events:
		return ev
	case <-timer.C:
		return TimeoutEvent{}
	}
}
