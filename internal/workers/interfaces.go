// Package workers runs the background maintenance jobs of the application:
// the meal pass expiry sweep and the stale order sweep. Each worker ticks on
// its own interval and stops when the context given to Run is cancelled.
package workers

import (
	"context"
	"time"
)

// Worker is implemented by every background job. Run is expected to spawn
// the job's loop and return; the loop exits when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Clock abstracts time.Now so sweep cutoffs are testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
