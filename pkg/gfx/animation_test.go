package gfx

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestAnimationRunStartsOnce(t *testing.T) {
	a := NewAnimation(time.Millisecond, func(w *Window) {})
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	updates := make(chan func(), 4)

	if !a.run(ctx, nil, &wg, updates) {
		t.Fatal("first run did not start the ticker")
	}
	if a.run(ctx, nil, &wg, updates) {
		t.Error("second run started a duplicate ticker")
	}

	cancel()
	wg.Wait()
}

func TestAnimationRunConcurrentStarts(t *testing.T) {
	a := NewAnimation(time.Millisecond, func(w *Window) {})
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	updates := make(chan func(), 4)

	var started atomic.Int32
	var starters sync.WaitGroup
	for i := 0; i < 8; i++ {
		starters.Add(1)
		go func() {
			defer starters.Done()
			if a.run(ctx, nil, &wg, updates) {
				started.Add(1)
			}
		}()
	}
	starters.Wait()

	if got := started.Load(); got != 1 {
		t.Errorf("started %d tickers, want 1", got)
	}

	cancel()
	wg.Wait()
}
