package hailort

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

var errSharedLibraryNotFound = errors.New("HailoRT shared library not found")

// ResolveOption configures ResolveSharedLibrary.
type ResolveOption func(*resolveConfig) error

type resolveConfig struct {
	libraryPath string
	searchDirs  []string
	goos        string
	goarch      string
}

// WithLibraryPath forces the resolver to use an existing library file.
func WithLibraryPath(path string) ResolveOption {
	return func(cfg *resolveConfig) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("library path cannot be empty")
		}
		cfg.libraryPath = path
		return nil
	}
}

// WithSearchDirs adds directories searched before the platform defaults.
func WithSearchDirs(dirs ...string) ResolveOption {
	return func(cfg *resolveConfig) error {
		for _, dir := range dirs {
			dir = strings.TrimSpace(dir)
			if dir == "" {
				return fmt.Errorf("search directory cannot be empty")
			}
			cfg.searchDirs = append(cfg.searchDirs, dir)
		}
		return nil
	}
}

func withPlatform(goos, goarch string) ResolveOption {
	return func(cfg *resolveConfig) error {
		cfg.goos, cfg.goarch = goos, goarch
		return nil
	}
}

// ResolveSharedLibrary locates libhailort and returns its absolute path.
//
// An explicit WithLibraryPath wins, then HAILORT_LIB_PATH. Otherwise the
// directories from WithSearchDirs, HAILORT_LIB_DIR and the platform
// defaults are searched in that order.
func ResolveSharedLibrary(opts ...ResolveOption) (string, error) {
	cfg := resolveConfig{
		libraryPath: strings.TrimSpace(os.Getenv("HAILORT_LIB_PATH")),
		goos:        runtime.GOOS,
		goarch:      runtime.GOARCH,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return "", err
		}
	}

	if cfg.libraryPath != "" {
		return validateLibraryFile(cfg.libraryPath)
	}

	dirs := cfg.searchDirs
	if dir := strings.TrimSpace(os.Getenv("HAILORT_LIB_DIR")); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, defaultSearchDirs(cfg.goos, cfg.goarch)...)

	var invalid []error
	for _, dir := range dirs {
		path, err := resolveLibraryInDir(dir, cfg.goos)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, errSharedLibraryNotFound) {
			invalid = append(invalid, err)
		}
	}
	if len(invalid) > 0 {
		return "", fmt.Errorf("found HailoRT library candidates but none are valid: %w", errors.Join(invalid...))
	}
	return "", fmt.Errorf("%w in %s", errSharedLibraryNotFound, strings.Join(dirs, string(os.PathListSeparator)))
}

// LoadResolved resolves the library with opts, sets it as the shared
// library path and loads it.
func LoadResolved(opts ...ResolveOption) error {
	path, err := ResolveSharedLibrary(opts...)
	if err != nil {
		return err
	}

	mu.Lock()
	loaded := refCount > 0
	currentPath := libPath
	mu.Unlock()

	if loaded && currentPath != path {
		return fmt.Errorf("cannot change library path after the library is loaded")
	}
	if !loaded {
		if err := SetSharedLibraryPath(path); err != nil {
			return err
		}
	}
	return Load()
}

func defaultSearchDirs(goos, goarch string) []string {
	switch goos {
	case "windows":
		dirs := make([]string, 0, 2)
		if pf := os.Getenv("ProgramFiles"); pf != "" {
			dirs = append(dirs, filepath.Join(pf, "HailoRT", "lib"), filepath.Join(pf, "HailoRT", "bin"))
		}
		return dirs
	case "darwin":
		return []string{"/usr/local/lib", "/opt/homebrew/lib"}
	}
	dirs := []string{"/usr/lib", "/usr/local/lib"}
	if triplet := multiarchTriplet(goarch); triplet != "" {
		dirs = append(dirs, filepath.Join("/usr/lib", triplet))
	}
	return dirs
}

func multiarchTriplet(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64-linux-gnu"
	case "arm64":
		return "aarch64-linux-gnu"
	}
	return ""
}

// libraryNames returns the exact file name to try first and a glob for
// versioned variants.
func libraryNames(goos string) (primary []string, glob string) {
	switch goos {
	case "windows":
		return []string{"hailort.dll", "libhailort.dll"}, ""
	case "darwin":
		return []string{"libhailort.dylib"}, "libhailort.*.dylib"
	}
	return []string{"libhailort.so"}, "libhailort.so.*"
}

func resolveLibraryInDir(dir, goos string) (string, error) {
	var invalidCandidates []error
	trackCandidateError := func(path string, validationErr error) {
		if errors.Is(validationErr, os.ErrNotExist) {
			return
		}
		invalidCandidates = append(invalidCandidates, fmt.Errorf("%s: %w", path, validationErr))
	}

	primary, glob := libraryNames(goos)
	for _, name := range primary {
		candidate := filepath.Join(dir, name)
		path, err := validateLibraryFile(candidate)
		if err == nil {
			return path, nil
		}
		trackCandidateError(candidate, err)
	}

	if glob != "" {
		matches, err := filepath.Glob(filepath.Join(dir, glob))
		if err != nil {
			return "", fmt.Errorf("failed to search %q: %w", dir, err)
		}
		sort.Strings(matches)
		for _, match := range matches {
			path, err := validateLibraryFile(match)
			if err == nil {
				return path, nil
			}
			trackCandidateError(match, err)
		}
	}

	if len(invalidCandidates) > 0 {
		return "", errors.Join(invalidCandidates...)
	}
	return "", errSharedLibraryNotFound
}

func validateLibraryFile(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("library path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to stat library file %q: %w", absPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("library path points to a directory: %q", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("library file is empty: %q", absPath)
	}

	return absPath, nil
}
