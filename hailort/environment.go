package hailort

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	mu             sync.Mutex
	refCount       int
	libHandle      uintptr
	libPath        string
	missingSymbols []string
)

// Load opens libhailort and registers every symbol. Calls are reference
// counted: each successful Load must be paired with an Unload.
//
// The library path comes from SetSharedLibraryPath, or ResolveSharedLibrary
// when none was set.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	if refCount > 0 {
		refCount++
		return nil
	}

	path := libPath
	if path == "" {
		resolved, err := ResolveSharedLibrary()
		if err != nil {
			return err
		}
		path = resolved
	}

	handle, err := loadLibrary(path)
	if err != nil {
		return fmt.Errorf("failed to load HailoRT library %q: %w", path, err)
	}
	if handle == 0 {
		return fmt.Errorf("failed to load HailoRT library %q", path)
	}

	a := &api{}
	missing, err := a.register(handle)
	if err != nil {
		return errors.Join(err, closeLibrary(handle))
	}

	swapAPI(a)
	libHandle = handle
	libPath = path
	missingSymbols = missing
	refCount = 1

	log := Logger()
	log.Info("loaded HailoRT library", zap.String("path", path))
	if len(missing) > 0 {
		log.Warn("HailoRT library lacks optional symbols", zap.Strings("symbols", missing))
	}
	return nil
}

// Unload drops one reference. On the last Unload new calls fail with
// StatusUninitialized at once, while Unload waits for the calls already
// running, abandons pending asynchronous requests and closes the library.
func Unload() error {
	mu.Lock()
	defer mu.Unlock()

	if refCount == 0 {
		return nil
	}
	refCount--
	if refCount > 0 {
		return nil
	}

	swapAPI(nil)
	abandonPending()

	err := closeLibrary(libHandle)
	libHandle = 0
	missingSymbols = nil
	if err != nil {
		return fmt.Errorf("failed to close HailoRT library: %w", err)
	}
	Logger().Info("unloaded HailoRT library", zap.String("path", libPath))
	return nil
}

// IsLoaded reports whether the library is currently loaded.
func IsLoaded() bool {
	mu.Lock()
	defer mu.Unlock()
	return refCount > 0
}

// SetSharedLibraryPath sets the library Load opens. It fails once the
// library is loaded.
func SetSharedLibraryPath(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if refCount > 0 {
		return fmt.Errorf("cannot change library path after the library is loaded")
	}
	libPath = path
	return nil
}

// SharedLibraryPath returns the configured or loaded library path.
func SharedLibraryPath() string {
	mu.Lock()
	defer mu.Unlock()
	return libPath
}

// MissingSymbols lists the optional symbols the loaded library does not
// export. Calling their wrappers returns StatusNotImplemented.
func MissingSymbols() []string {
	mu.Lock()
	defer mu.Unlock()
	return append([]string(nil), missingSymbols...)
}
