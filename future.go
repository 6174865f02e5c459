package veogo

import "context"

// Future is a single asynchronous result
type Future[T any] struct {
	done  chan struct{}
	value *T
	err   error
}

func goFuture[T any](fn func() (*T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}

// Done is closed once the result is available
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is done.
// Giving up on ctx does not cancel the request itself.
func (f *Future[T]) Wait(ctx context.Context) (*T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Get blocks until the result is available
func (f *Future[T]) Get() (*T, error) {
	<-f.done
	return f.value, f.err
}
