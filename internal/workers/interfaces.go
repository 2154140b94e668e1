// Package workers runs the long-lived background loops of the process.
// It defines the Worker interface and a Workers aggregate that starts every
// worker in its own goroutine and waits for all of them.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done or the worker
// fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
