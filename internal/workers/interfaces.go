// Package workers runs the long-lived loops of the bot and the keyed pool
// that handles Telegram updates.
//
// Updates of one user always go to the same lane of a [KeyedPool], so they
// are handled in arrival order, while different users are served in
// parallel.
package workers

import "context"

// Worker is a long-running loop. Run blocks until ctx is cancelled and the
// worker has finished its in-flight work.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Job is one unit of work submitted to a [KeyedPool].
type Job func()
