package hailoutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

var (
	lockAcquireTimeout = 2 * time.Minute
	lockRetryInterval  = 100 * time.Millisecond
	lockLogInterval    = 5 * time.Second
)

// WithProcessFileLock runs fn while holding an exclusive advisory lock on
// lockPath. Other processes calling it with the same path wait, polling
// until the lock frees, ctx ends or the acquire timeout elapses.
func WithProcessFileLock(ctx context.Context, log *zap.Logger, lockPath string, fn func() error) (err error) {
	if fn == nil {
		return fmt.Errorf("lock callback is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return fmt.Errorf("failed to create lock directory for %q: %w", lockPath, err)
	}

	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open lock file %q: %w", lockPath, err)
	}

	if err := acquire(ctx, log, file, lockPath); err != nil {
		_ = file.Close()
		return err
	}

	defer func() {
		unlockErr := unlockFile(file)
		closeErr := file.Close()
		err = errors.Join(err, unlockErr, closeErr)
	}()

	return fn()
}

func acquire(ctx context.Context, log *zap.Logger, file *os.File, lockPath string) error {
	start := time.Now()
	deadline := start.Add(lockAcquireTimeout)
	lastLog := start
	for {
		err := lockFile(file)
		if err == nil {
			return nil
		}
		if !isLockWouldBlock(err) {
			return fmt.Errorf("failed to acquire lock %q: %w", lockPath, err)
		}

		now := time.Now()
		if now.After(deadline) {
			return fmt.Errorf("timed out acquiring lock %q after %s", lockPath, lockAcquireTimeout)
		}
		if now.Sub(lastLog) >= lockLogInterval {
			log.Info("waiting for lock held by another process",
				zap.String("path", lockPath), zap.Duration("waited", now.Sub(start)))
			lastLog = now
		}

		timer := time.NewTimer(lockRetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("waiting for lock %q: %w", lockPath, ctx.Err())
		case <-timer.C:
		}
	}
}
