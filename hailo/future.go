package hailo

import (
	"context"

	"github.com/amikos-tech/pure-hailort/hailort"
)

// Future is the pending result of an asynchronous stream transfer. The
// buffer handed to the transfer must not be touched until Wait returns a
// completion.
type Future[T any] struct {
	ch     <-chan T
	status func(T) hailort.Status
	op     string

	// done is closed once val holds the completion.
	done chan struct{}
	val  T
}

func newFuture[T any](op string, ch <-chan T, status func(T) hailort.Status) *Future[T] {
	return &Future[T]{ch: ch, status: status, op: op, done: make(chan struct{})}
}

// Wait blocks until the transfer completes or ctx ends. A completion with
// a failure status is returned together with its *hailort.StatusError.
// Wait may be called again after a context error and from several
// goroutines at once. Once the transfer has completed every call returns
// the same result.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
	case v := <-f.ch:
		// The completion channel delivers once, so only this waiter gets here.
		f.val = v
		close(f.done)
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	return f.val, f.status(f.val).Err(f.op)
}

func writeStatus(c hailort.WriteCompletion) hailort.Status { return c.Status }

func readStatus(c hailort.ReadCompletion) hailort.Status { return c.Status }
