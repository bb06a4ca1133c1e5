package platform

import (
	"encoding/binary"
	"image"
	"sync"
	"time"

	"github.com/go-errors/errors"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const x11EventMask uint32 = xproto.EventMaskExposure |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskStructureNotify

// putImageHeaderLen is the fixed part of a PutImage request; the pixel
// payload has to fit the server's maximum request length alongside it.
const putImageHeaderLen = 28

type x11WindowWrapper struct {
	conn        *xgb.Conn
	screen      *xproto.ScreenInfo
	window      xproto.Window
	gc          xproto.Gcontext
	wmDelete    xproto.Atom
	maxReqBytes int

	mu         sync.Mutex
	posX, posY int
	closed     bool
}

func newX11WindowWrapper(conf WindowConfig) (*x11WindowWrapper, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.New(err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, errors.New(err)
	}
	err = xproto.CreateWindowChecked(conn, screen.RootDepth, wid, screen.Root,
		int16(conf.PositionX), int16(conf.PositionY),
		uint16(conf.Width), uint16(conf.Height), uint16(conf.BorderWidth),
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.WhitePixel, x11EventMask}).Check()
	if err != nil {
		conn.Close()
		return nil, errors.New(err)
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		conn.Close()
		return nil, errors.New(err)
	}
	if err := xproto.CreateGCChecked(conn, gc, xproto.Drawable(wid), 0, nil).Check(); err != nil {
		conn.Close()
		return nil, errors.New(err)
	}

	w := &x11WindowWrapper{
		conn:        conn,
		screen:      screen,
		window:      wid,
		gc:          gc,
		maxReqBytes: int(setup.MaximumRequestLength) * 4,
		posX:        conf.PositionX,
		posY:        conf.PositionY,
	}
	w.SetTitle(conf.Title)
	if err := w.registerCloseProtocol(); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// registerCloseProtocol opts into WM_DELETE_WINDOW so a window-manager
// close arrives as a ClientMessage instead of the connection being cut.
func (w *x11WindowWrapper) registerCloseProtocol() error {
	protocols, err := w.internAtom("WM_PROTOCOLS")
	if err != nil {
		return err
	}
	wmDelete, err := w.internAtom("WM_DELETE_WINDOW")
	if err != nil {
		return err
	}
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(wmDelete))
	err = xproto.ChangePropertyChecked(w.conn, xproto.PropModeReplace, w.window,
		protocols, xproto.AtomAtom, 32, 1, data).Check()
	if err != nil {
		return errors.New(err)
	}
	w.wmDelete = wmDelete
	return nil
}

func (w *x11WindowWrapper) internAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(w.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, errors.New(err)
	}
	return reply.Atom, nil
}

func (w *x11WindowWrapper) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *x11WindowWrapper) Show() {
	if w.isClosed() {
		return
	}
	xproto.MapWindow(w.conn, w.window)
}

func (w *x11WindowWrapper) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	xproto.DestroyWindow(w.conn, w.window)
	w.conn.Close()
}

func (w *x11WindowWrapper) MoveTo(x, y int) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.posX, w.posY = x, y
	w.mu.Unlock()

	xproto.ConfigureWindow(w.conn, w.window,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))})
}

func (w *x11WindowWrapper) SetTitle(title string) {
	if w.isClosed() {
		return
	}
	xproto.ChangeProperty(w.conn, xproto.PropModeReplace, w.window,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title))
}

func (w *x11WindowWrapper) Position() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.posX, w.posY
}

// Present uploads the dirty region as ZPixmap data, chunked row-wise so
// each PutImage request stays under the server's maximum request length.
func (w *x11WindowWrapper) Present(img *image.RGBA, dirty image.Rectangle) error {
	if w.isClosed() || img == nil {
		return nil
	}
	dirty = dirty.Intersect(img.Bounds())
	if dirty.Empty() {
		return nil
	}

	stride := dirty.Dx() * 4
	rowsPerChunk := (w.maxReqBytes - putImageHeaderLen) / stride
	if rowsPerChunk < 1 {
		rowsPerChunk = 1
	}

	for y := dirty.Min.Y; y < dirty.Max.Y; y += rowsPerChunk {
		rows := min(rowsPerChunk, dirty.Max.Y-y)
		data := make([]byte, rows*stride)
		for r := 0; r < rows; r++ {
			src := img.Pix[img.PixOffset(dirty.Min.X, y+r):]
			encodeBGRXRow(data[r*stride:(r+1)*stride], src[:stride])
		}
		err := xproto.PutImageChecked(w.conn, xproto.ImageFormatZPixmap,
			xproto.Drawable(w.window), w.gc,
			uint16(dirty.Dx()), uint16(rows),
			int16(dirty.Min.X), int16(y),
			0, w.screen.RootDepth, data).Check()
		if err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// encodeBGRXRow converts one row of RGBA pixels to the BGRX layout a
// little-endian 24-bit-depth ZPixmap expects. len(dst) == len(src) and both
// are multiples of 4.
func encodeBGRXRow(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = 0
	}
}

func (w *x11WindowWrapper) NextEventTimeout(timeoutMs int) Event {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	for {
		if w.isClosed() {
			return TimeoutEvent{}
		}
		ev, xerr := w.conn.PollForEvent()
		if xerr != nil {
			return UnexpectedEvent{}
		}
		if ev != nil {
			return w.convertEvent(ev)
		}
		if !time.Now().Before(deadline) {
			return TimeoutEvent{}
		}
		time.Sleep(time.Millisecond)
	}
}

func (w *x11WindowWrapper) convertEvent(ev xgb.Event) Event {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		return Expose{}
	case xproto.KeyPressEvent:
		return KeyPress{Code: uint64(e.Detail)}
	case xproto.KeyReleaseEvent:
		return KeyRelease{Code: uint64(e.Detail)}
	case xproto.ButtonPressEvent:
		switch e.Detail {
		case 4:
			return MouseWheel{DeltaY: 1, X: int(e.EventX), Y: int(e.EventY)}
		case 5:
			return MouseWheel{DeltaY: -1, X: int(e.EventX), Y: int(e.EventY)}
		case 6:
			return MouseWheel{DeltaX: -1, X: int(e.EventX), Y: int(e.EventY)}
		case 7:
			return MouseWheel{DeltaX: 1, X: int(e.EventX), Y: int(e.EventY)}
		}
		return ButtonPress{Button: uint32(e.Detail), X: int(e.EventX), Y: int(e.EventY)}
	case xproto.ButtonReleaseEvent:
		if e.Detail >= 4 && e.Detail <= 7 {
			return UnexpectedEvent{}
		}
		return ButtonRelease{Button: uint32(e.Detail), X: int(e.EventX), Y: int(e.EventY)}
	case xproto.MotionNotifyEvent:
		return MotionNotify{X: int(e.EventX), Y: int(e.EventY)}
	case xproto.EnterNotifyEvent:
		return EnterNotify{}
	case xproto.LeaveNotifyEvent:
		return LeaveNotify{}
	case xproto.ConfigureNotifyEvent:
		w.mu.Lock()
		w.posX, w.posY = int(e.X), int(e.Y)
		w.mu.Unlock()
		return ConfigureNotify{X: int(e.X), Y: int(e.Y), Width: int(e.Width), Height: int(e.Height)}
	case xproto.DestroyNotifyEvent:
		return DestroyNotify{}
	case xproto.ClientMessageEvent:
		if len(e.Data.Data32) > 0 && xproto.Atom(e.Data.Data32[0]) == w.wmDelete {
			return ClientMessage{}
		}
		return UnexpectedEvent{}
	default:
		return UnexpectedEvent{}
	}
}
