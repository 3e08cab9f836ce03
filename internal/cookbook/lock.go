package cookbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// ErrLocked reports that another process holds a conflicting lock.
var ErrLocked = errors.New("cookbook is locked by another recipebox process")

// acquireLock takes a shared or exclusive lock on path, retrying until
// timeout elapses. A zero timeout tries exactly once.
func acquireLock(ctx context.Context, path string, shared bool, timeout time.Duration) (*flock.Flock, error) {
	lock := flock.New(path)

	var (
		ok  bool
		err error
	)
	if timeout <= 0 {
		if shared {
			ok, err = lock.TryRLock()
		} else {
			ok, err = lock.TryLock()
		}
	} else {
		waitCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if shared {
			ok, err = lock.TryRLockContext(waitCtx, lockRetryDelay)
		} else {
			ok, err = lock.TryLockContext(waitCtx, lockRetryDelay)
		}
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file %s)", ErrLocked, path)
	}
	return lock, nil
}
