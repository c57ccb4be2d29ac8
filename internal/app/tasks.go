package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Tasks runs fire-and-forget host work, such as dialogs, so that menu and
// command callbacks return immediately. Shutdown waits for outstanding work.
type Tasks struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
	log    zerolog.Logger
}

// NewTasks returns an open task pool.
func NewTasks(log zerolog.Logger) *Tasks {
	return &Tasks{log: log}
}

// Go runs fn on its own goroutine. Work submitted after Close is dropped.
func (t *Tasks) Go(name string, fn func()) {
	// Add must not race a Wait that began after Close
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		t.log.Debug().Str("task", name).Msg("task dropped, pool closed")
		return
	}
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				t.log.Error().Str("task", name).Interface("panic", r).Msg("task panicked")
			}
		}()
		fn()
	}()
}

// Close stops accepting work.
func (t *Tasks) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
}

// Wait blocks until all tasks finish or timeout elapses. It reports whether
// every task finished.
func (t *Tasks) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
