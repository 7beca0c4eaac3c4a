package download

import "fmt"

// Future represents an in-flight or completed background task.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go launches fn on a new goroutine and returns a Future for its result.
// fn runs exactly once. A panic inside fn is recovered and rejects the
// Future with ErrTaskFailed.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{
		done: make(chan struct{}),
	}

	go func() {
		defer close(f.done)
		defer func() {
			if rec := recover(); rec != nil {
				var zero T
				f.val = zero
				f.err = &Error{Err: ErrTaskFailed, Detail: fmt.Sprint(rec)}
			}
		}()

		f.val, f.err = fn()
	}()

	return f
}

// Done returns a channel that is closed when the task completes.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait blocks until the task completes and returns its value and error.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Err blocks until the task completes and returns its error.
func (f *Future[T]) Err() error {
	<-f.done
	return f.err
}
