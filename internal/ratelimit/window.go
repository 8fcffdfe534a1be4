package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/pixelpepes/holderbot/internal/adapter"
)

// window implements sliding-window admission: at most limit calls per
// rolling span. Admission requests append under the mutex, so concurrent
// callers can never push the window past the cap.
type window struct {
	mu    sync.Mutex
	limit int
	span  time.Duration
	calls []time.Time
	clock adapter.Clock
}

func newWindow(limit int, span time.Duration, clock adapter.Clock) *window {
	return &window{
		limit: limit,
		span:  span,
		clock: clock,
	}
}

// admit blocks until a call may proceed under the rolling-window quota.
// On each attempt it discards timestamps older than the span, admits when
// under quota, and otherwise sleeps until the oldest call ages out.
func (w *window) admit(ctx context.Context) error {
	for {
		w.mu.Lock()
		now := w.clock.Now()
		w.prune(now)

		if len(w.calls) < w.limit {
			w.calls = append(w.calls, now)
			w.mu.Unlock()
			return nil
		}

		wait := w.span - now.Sub(w.calls[0])
		w.mu.Unlock()

		// Clamp: the wait must never be negative
		if wait < 0 {
			wait = 0
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.clock.After(wait):
			// Re-check the quota
		}
	}
}

// prune drops timestamps older than the span from the window head.
// Caller must hold the mutex.
func (w *window) prune(now time.Time) {
	cutoff := now.Add(-w.span)
	i := 0
	for i < len(w.calls) && !w.calls[i].After(cutoff) {
		i++
	}
	w.calls = w.calls[i:]
}

// size returns the current number of admissions in the window
func (w *window) size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.prune(w.clock.Now())
	return len(w.calls)
}
