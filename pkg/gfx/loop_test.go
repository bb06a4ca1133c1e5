package gfx_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prb616/starlight/internal/platform"
	"github.com/prb616/starlight/pkg/gfx"
)

func TestDelayWaitsOutTheDuration(t *testing.T) {
	start := time.Now()
	gfx.Delay(50 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestDelayClosesWindowOnWMRequest(t *testing.T) {
	w := openHeadless(t, 50, 50)
	hw := headlessWrapper(t, w)

	hw.PushEvent(platform.ClientMessage{})
	gfx.Delay(100 * time.Millisecond)

	assert.True(t, w.Closed())
	assert.Equal(t, 0, gfx.OpenWindows())
}

func TestDelayRepresentsOnExpose(t *testing.T) {
	w := openHeadless(t, 50, 50)
	hw := headlessWrapper(t, w)

	w.Clear(gfx.Green)
	assert.NoError(t, w.Refresh())
	presented := hw.Presents()

	hw.PushEvent(platform.Expose{})
	gfx.Delay(100 * time.Millisecond)

	assert.Greater(t, hw.Presents(), presented)
	assert.Equal(t, gfx.Green, hw.Frame().RGBAAt(25, 25))
}

func TestAnimationEvolvesThroughRunLoop(t *testing.T) {
	w := openHeadless(t, 50, 50)
	hw := headlessWrapper(t, w)
	w.Clear(gfx.White)
	w.RefreshRate(200)

	var ticks atomic.Int32
	animation := gfx.NewAnimation(5*time.Millisecond, func(win *gfx.Window) {
		ticks.Add(1)
		win.FillRect(gfx.Red, 0, 0, 10, 10)
	})
	w.StartAnimation(animation)

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(nil)
	}()

	time.Sleep(150 * time.Millisecond)
	w.Close()
	<-done

	assert.GreaterOrEqual(t, ticks.Load(), int32(1))
	assert.Equal(t, gfx.Red, hw.Frame().RGBAAt(5, 5))
	assert.Equal(t, gfx.White, hw.Frame().RGBAAt(25, 25))
}

func TestProcessEventsDispatchesPending(t *testing.T) {
	w := openHeadless(t, 50, 50)
	hw := headlessWrapper(t, w)

	hw.PushEvent(platform.KeyPress{Code: 65307})
	hw.PushEvent(platform.MotionNotify{X: 3, Y: 4})

	var got []gfx.Event
	w.ProcessEvents(0, func(event gfx.Event) {
		got = append(got, event)
	})

	assert.Equal(t, []gfx.Event{
		gfx.KeyPress{Code: 65307},
		gfx.MotionNotify{X: 3, Y: 4},
	}, got)
}

func TestProcessEventsHonorsBudget(t *testing.T) {
	w := openHeadless(t, 50, 50)
	hw := headlessWrapper(t, w)

	hw.PushEvent(platform.KeyPress{Code: 1})
	hw.PushEvent(platform.KeyPress{Code: 2})
	hw.PushEvent(platform.KeyPress{Code: 3})

	var got []gfx.Event
	w.ProcessEvents(2, func(event gfx.Event) {
		got = append(got, event)
	})
	assert.Len(t, got, 2)

	// the rest is still queued for the next burst
	w.ProcessEvents(2, func(event gfx.Event) {
		got = append(got, event)
	})
	assert.Equal(t, []gfx.Event{
		gfx.KeyPress{Code: 1},
		gfx.KeyPress{Code: 2},
		gfx.KeyPress{Code: 3},
	}, got)
}

func TestRunStopsOnStop(t *testing.T) {
	w := openHeadless(t, 50, 50)

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(nil)
	}()

	w.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestRunDispatchesEvents(t *testing.T) {
	w := openHeadless(t, 50, 50)
	hw := headlessWrapper(t, w)

	got := make(chan gfx.Event, 1)
	go w.Run(func(event gfx.Event) {
		select {
		case got <- event:
		default:
		}
	})

	hw.PushEvent(platform.ButtonPress{Button: 1, X: 10, Y: 20})

	select {
	case event := <-got:
		assert.Equal(t, gfx.ButtonPress{Button: 1, X: 10, Y: 20}, event)
	case <-time.After(time.Second):
		t.Fatal("event was not dispatched")
	}
	w.Stop()
}
