// Package hailo wraps the raw handles of package hailort in owning types.
//
// Every type here owns exactly one library handle. Destroy releases it
// once, is safe to call repeatedly and on a nil receiver, and a finalizer
// releases handles that were never destroyed. A device, virtual device or
// network group refuses Destroy with ErrInUse while the groups, vstreams
// or activation created from it are open. A wrapper serializes the
// calls that mutate or stream through its handle; calls on different
// handles run concurrently, even when they address the same physical
// device.
//
// The library itself is loaded with hailort.Load or hailort.LoadResolved
// before any constructor in this package is used.
package hailo

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	// ErrDestroyed is returned by calls on a wrapper after Destroy.
	ErrDestroyed = errors.New("hailo: resource already destroyed")
	// ErrInUse is returned by Destroy while handles created from the
	// wrapper are still open.
	ErrInUse = errors.New("hailo: resource busy")
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package logger, a no-op logger unless SetLogger was
// called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger replaces the package logger. nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
