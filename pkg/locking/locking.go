// Package locking guards rename runs with an advisory file lock so two
// renum invocations cannot interleave moves on the same machine.
package locking

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/arthur-debert/renum/pkg/errors"
)

// RunLock wraps a flock advisory lock on renum's run lock file.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// New creates a run lock for the given lock file path. The file is not
// touched until Acquire is called.
func New(path string) *RunLock {
	return &RunLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Acquire takes the lock without blocking. It returns an ErrLockHeld
// error when another process already holds the lock.
func (l *RunLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLockAcquire, "failed to create lock directory for %s", l.path)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return errors.Wrapf(err, errors.ErrLockAcquire, "failed to acquire lock on %s", l.path)
	}
	if !acquired {
		return errors.Newf(errors.ErrLockHeld, "another renum run appears to hold %s", l.path)
	}

	return nil
}

// Release drops the lock. The lock file itself is left in place.
func (l *RunLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to release lock on %s", l.path)
	}
	return nil
}

// Path returns the lock file path.
func (l *RunLock) Path() string {
	return l.path
}
