package dataview

import (
	"context"
	"time"

	"github.com/gofrs/flock"
)

// FileLock defines the interface for file locking operations. The loader
// takes a shared lock around artifact reads so that an upstream export
// rewriting the file cannot be observed mid-replace.
type FileLock interface {
	// TryRLockContext attempts to acquire a shared lock with retries
	TryRLockContext(ctx context.Context, retryInterval time.Duration) (bool, error)

	// Unlock releases the lock
	Unlock() error
}

// FileLockFactory creates FileLock instances
type FileLockFactory interface {
	// New creates a new FileLock for the given path
	New(path string) FileLock
}

// FlockWrapper wraps github.com/gofrs/flock for our interface
type FlockWrapper struct {
	flock *flock.Flock
}

// TryRLockContext implements FileLock.TryRLockContext
func (f *FlockWrapper) TryRLockContext(ctx context.Context, retryInterval time.Duration) (bool, error) {
	return f.flock.TryRLockContext(ctx, retryInterval)
}

// Unlock implements FileLock.Unlock
func (f *FlockWrapper) Unlock() error {
	return f.flock.Unlock()
}

// FlockFactory is the default factory implementation using flock
type FlockFactory struct{}

// New implements FileLockFactory.New
func (FlockFactory) New(path string) FileLock {
	return &FlockWrapper{
		flock: flock.New(path),
	}
}

// noopLock satisfies FileLock for tests that run against the mock file
// system, where cross-process locking is meaningless.
type noopLock struct{}

func (noopLock) TryRLockContext(context.Context, time.Duration) (bool, error) { return true, nil }
func (noopLock) Unlock() error                                                { return nil }

// NoopLockFactory produces locks that always succeed without touching disk.
type NoopLockFactory struct{}

// New implements FileLockFactory.New
func (NoopLockFactory) New(string) FileLock { return noopLock{} }
