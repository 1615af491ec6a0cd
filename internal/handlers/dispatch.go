package handlers

import (
	"context"
	"sync"
	"time"
)

// Dispatcher runs handlers on a bounded number of goroutines. Work gets
// its own timeout and is not cancelled by the caller's context, so a
// shutdown can still drain accepted updates and flushed albums.
type Dispatcher struct {
	sem     chan struct{}
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(limit int, timeout time.Duration) *Dispatcher {
	if limit <= 0 {
		limit = 1
	}
	return &Dispatcher{
		sem:     make(chan struct{}, limit),
		timeout: timeout,
	}
}

// Go blocks for a free slot and then runs fn in the background. It
// returns false when ctx is done before a slot frees up.
func (d *Dispatcher) Go(ctx context.Context, fn func(ctx context.Context)) bool {
	select {
	case d.sem <- struct{}{}:
	case <-ctx.Done():
		return false
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() { <-d.sem }()

		workCtx := context.WithoutCancel(ctx)
		if d.timeout > 0 {
			var cancel context.CancelFunc
			workCtx, cancel = context.WithTimeout(workCtx, d.timeout)
			defer cancel()
		}
		fn(workCtx)
	}()
	return true
}

// Wait blocks until every accepted fn has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
