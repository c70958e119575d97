package importer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another import holds the catalog lock.
var ErrLocked = errors.New("another shellac import is already running")

// Lock serializes import runs that share one catalog database. It is an
// advisory file lock under the data directory; readers never take it.
type Lock struct {
	fl *flock.Flock
}

// NewLock creates a lock rooted in dataDir. The lock file is created on
// first acquire and left in place afterwards.
func NewLock(dataDir string) *Lock {
	return &Lock{fl: flock.New(filepath.Join(dataDir, "import.lock"))}
}

// Acquire takes the lock without blocking. ErrLocked is returned when a
// concurrent import holds it.
func (l *Lock) Acquire() error {
	locked, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquire import lock %s: %w", l.fl.Path(), err)
	}
	if !locked {
		return ErrLocked
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.fl.Path()
}
