package gfx

import (
	"context"
	"sync"
	"time"
)

// Animation runs Evolve on a fixed interval. Evolve is not called directly
// from the ticker goroutine; it is queued on the window's updates channel
// so mutations happen on the loop that owns the frame.
type Animation struct {
	Interval time.Duration
	Evolve   func(w *Window)

	mu      sync.Mutex
	running bool
}

func NewAnimation(interval time.Duration, evolve func(w *Window)) *Animation {
	return &Animation{
		Interval: interval,
		Evolve:   evolve,
	}
}

// run starts the ticker goroutine. It reports whether this call started it;
// at most one goroutine runs per Animation, later calls are no-ops.
func (a *Animation) run(ctx context.Context, w *Window, wg *sync.WaitGroup, updates chan<- func()) bool {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return false
	}
	a.running = true
	a.mu.Unlock()
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(a.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case updates <- func() {
					if a.Evolve != nil {
						a.Evolve(w)
					}
				}:
				default:
					// drop the tick if the queue is full
				}
			}
		}
	}()
	return true
}

func (w *Window) StartAnimation(animation *Animation) {
	if animation == nil || animation.Interval <= 0 {
		return
	}
	animation.run(w.ctx, w, &w.wg, w.updates)
}
