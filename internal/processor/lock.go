package processor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/nguyentantai21042004/vidscribe/internal/errs"
)

// LockFileName is the advisory lock held in the output dir during a run.
const LockFileName = ".vidscribe.lock"

// ErrLocked means another run holds the output directory.
var ErrLocked = errors.New("output directory is in use by another run")

// AcquireLock creates outputDir if needed and takes its exclusive run lock
// without blocking. The returned func releases it.
func AcquireLock(outputDir string) (func() error, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errs.Write(outputDir, fmt.Errorf("create output dir: %w", err))
	}

	lockPath := filepath.Join(outputDir, LockFileName)
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errs.Write(lockPath, fmt.Errorf("acquire lock: %w", err))
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", outputDir, ErrLocked)
	}
	return lock.Unlock, nil
}
