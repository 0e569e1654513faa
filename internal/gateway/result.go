package gateway

// Result is the single success-or-failure outcome of one dispatched
// call.
type Result[T any] struct {
	Value T
	Err   error
}

// Collect runs fn on its own goroutine and delivers exactly one Result.
// The channel is buffered: a caller that has moved on and never reads
// the outcome does not leak the goroutine, the late result is simply
// dropped.
func Collect[T any](fn func() (T, error)) <-chan Result[T] {

	ch := make(chan Result[T], 1)

	go func() {
		value, err := fn()
		ch <- Result[T]{Value: value, Err: err}
		close(ch)
	}()

	return ch
}
