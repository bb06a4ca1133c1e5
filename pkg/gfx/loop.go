package gfx

import (
	"runtime"
	"time"
)

const maxEventWait = 50 * time.Millisecond

// Run pumps events and presents frames until Stop or Close. Expose marks
// the frame damaged so the next present covers everything; the handler
// decides what to do with the rest, including CloseRequested.
func (w *Window) Run(handle func(Event)) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	delay := w.refreshDelay
	if delay == 0 {
		delay = time.Second / 60
	}
	nextRender := time.Now().Add(delay)

	for {
		select {
		case <-w.ctx.Done():
			w.wg.Wait()
			return
		default:
			timeout := time.Until(nextRender)
			if timeout < 0 {
				timeout = 0
			}
			if timeout > maxEventWait {
				timeout = maxEventWait
			}
			timeoutMs := int(timeout / time.Millisecond)
			if timeout > 0 && timeoutMs == 0 {
				timeoutMs = 1
			}

			platformEvent := w.platformWinWrapper.NextEventTimeout(timeoutMs)
			if event := convert(platformEvent); event != nil {
				if _, ok := event.(Expose); ok {
					w.damage()
				}
				if handle != nil {
					handle(event)
				}
			}

			if now := time.Now(); !now.Before(nextRender) {
				w.drainUpdates()
				if err := w.Refresh(); err != nil {
					logError("refresh failed", "title", w.Title(), "err", err)
				}
				nextRender = now.Add(delay)
			}
		}
	}
}

func (w *Window) drainUpdates() {
	for {
		select {
		case update := <-w.updates:
			update()
		default:
			return
		}
	}
}

const defaultEventBudget = 32

// ProcessEvents handles up to budget pending events without blocking;
// budget <= 0 means the default burst size. Exposes re-present the frame
// and close requests close the window; everything else goes to the
// handler, which may be nil.
func (w *Window) ProcessEvents(budget int, handle func(Event)) {
	if budget <= 0 {
		budget = defaultEventBudget
	}
	for i := 0; i < budget; i++ {
		if w.Closed() {
			return
		}
		event := convert(w.platformWinWrapper.NextEventTimeout(0))
		if event == nil {
			return
		}
		switch event.(type) {
		case Expose:
			w.damage()
			if err := w.Refresh(); err != nil {
				logError("refresh failed", "title", w.Title(), "err", err)
			}
		case CloseRequested, DestroyNotify:
			w.Close()
			return
		}
		if handle != nil {
			handle(event)
		}
	}
}

// Delay blocks for the given duration while keeping every open window
// responsive: events are pumped and queued updates applied the whole time.
func Delay(d time.Duration) {
	deadline := time.Now().Add(d)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		for _, w := range openWindows() {
			w.drainUpdates()
			w.ProcessEvents(0, nil)
		}
		nap := 10 * time.Millisecond
		if remaining < nap {
			nap = remaining
		}
		time.Sleep(nap)
	}
}
