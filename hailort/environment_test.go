package hailort

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetEnvironmentForTest puts the package back into its unloaded state
// and restores that state when the test ends.
func resetEnvironmentForTest(t *testing.T) {
	t.Helper()
	reset := func() {
		mu.Lock()
		refCount = 0
		libHandle = 0
		libPath = ""
		missingSymbols = nil
		mu.Unlock()
		swapAPI(nil)
	}
	reset()
	t.Cleanup(reset)
}

func TestIsLoaded(t *testing.T) {
	resetEnvironmentForTest(t)

	if IsLoaded() {
		t.Fatal("expected library to not be loaded")
	}

	mu.Lock()
	refCount = 1
	mu.Unlock()

	if !IsLoaded() {
		t.Fatal("expected library to be loaded")
	}
}

func TestSetSharedLibraryPath(t *testing.T) {
	resetEnvironmentForTest(t)

	path := "/opt/hailo/lib/libhailort.so.4.20.0"
	if err := SetSharedLibraryPath(path); err != nil {
		t.Fatalf("unexpected error setting library path: %v", err)
	}
	if got := SharedLibraryPath(); got != path {
		t.Fatalf("SharedLibraryPath() = %q, want %q", got, path)
	}

	mu.Lock()
	refCount = 1
	mu.Unlock()

	if err := SetSharedLibraryPath("/different/libhailort.so"); err == nil {
		t.Fatal("expected error when setting library path after load")
	}
	if got := SharedLibraryPath(); got != path {
		t.Fatalf("path changed after load: %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	resetEnvironmentForTest(t)

	missing := filepath.Join(t.TempDir(), "libhailort.so")
	if err := SetSharedLibraryPath(missing); err != nil {
		t.Fatal(err)
	}
	err := Load()
	if err == nil {
		t.Fatal("expected error loading a nonexistent library")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("error %q does not name the path", err)
	}
	if IsLoaded() {
		t.Fatal("failed Load left the library marked loaded")
	}
}

func TestLoadRejectsNonLibraryFile(t *testing.T) {
	resetEnvironmentForTest(t)

	bogus := filepath.Join(t.TempDir(), "libhailort.so")
	if err := os.WriteFile(bogus, []byte("not an ELF file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := SetSharedLibraryPath(bogus); err != nil {
		t.Fatal(err)
	}
	if err := Load(); err == nil {
		t.Fatal("expected error loading a file that is not a shared library")
	}
	if IsLoaded() {
		t.Fatal("failed Load left the library marked loaded")
	}
}

func TestUnloadWithoutLoad(t *testing.T) {
	resetEnvironmentForTest(t)
	if err := Unload(); err != nil {
		t.Fatalf("Unload on an unloaded library: %v", err)
	}
}

func TestUnloadDropsReferencesInOrder(t *testing.T) {
	resetEnvironmentForTest(t)

	// Two references held: the first Unload must not close anything.
	mu.Lock()
	refCount = 2
	mu.Unlock()

	if err := Unload(); err != nil {
		t.Fatalf("Unload: %v", err)
	}
	if !IsLoaded() {
		t.Fatal("library unloaded while a reference remains")
	}
}

func TestCallsBeforeLoad(t *testing.T) {
	resetEnvironmentForTest(t)

	var v Version
	if s := GetLibraryVersion(&v); s != StatusUninitialized {
		t.Fatalf("GetLibraryVersion = %v", s)
	}
	var count uintptr
	if s := ScanDevices(NoScanParams, nil, &count); s != StatusUninitialized {
		t.Fatalf("ScanDevices = %v", s)
	}
	if s := ReleaseDevice(DeviceHandle(1)); s != StatusUninitialized {
		t.Fatalf("ReleaseDevice = %v", s)
	}
	if msg := StatusMessage(StatusTimeout); msg != "hailort library not loaded (status 4)" {
		t.Fatalf("StatusMessage = %q before Load", msg)
	}
	if _, err := LibraryVersion(); err == nil {
		t.Fatal("LibraryVersion succeeded without a library")
	}
}

func TestCallsToMissingOptionalSymbols(t *testing.T) {
	resetEnvironmentForTest(t)

	// A loaded table without the optional entry points, as produced by an
	// older library.
	swapAPI(&api{loaded: true})

	if s := SetPauseFrames(DeviceHandle(1), true); s != StatusNotImplemented {
		t.Fatalf("SetPauseFrames = %v", s)
	}
	var temp ChipTemperatureInfo
	if s := GetChipTemperature(DeviceHandle(1), &temp); s != StatusNotImplemented {
		t.Fatalf("GetChipTemperature = %v", s)
	}
	if _, s := InputStreamWriteAsync(InputStreamHandle(1), make([]byte, 4)); s != StatusNotImplemented {
		t.Fatalf("InputStreamWriteAsync = %v", s)
	}
}

func TestMissingSymbolsReturnsCopy(t *testing.T) {
	resetEnvironmentForTest(t)

	mu.Lock()
	missingSymbols = []string{"hailo_set_pause_frames"}
	mu.Unlock()

	got := MissingSymbols()
	got[0] = "mutated"
	if MissingSymbols()[0] != "hailo_set_pause_frames" {
		t.Fatal("MissingSymbols exposed internal state")
	}
}

func TestSymbolTable(t *testing.T) {
	names := SymbolNames()
	if len(names) == 0 {
		t.Fatal("empty symbol table")
	}
	seen := map[string]bool{}
	for _, name := range names {
		if !strings.HasPrefix(name, "hailo_") {
			t.Errorf("symbol %q lacks hailo_ prefix", name)
		}
		if seen[name] {
			t.Errorf("symbol %q listed twice", name)
		}
		seen[name] = true
	}

	required := 0
	for _, s := range (&api{}).symbols() {
		if s.required {
			required++
		}
	}
	if required != 2 {
		t.Fatalf("%d required symbols, want 2", required)
	}
	for _, name := range []string{"hailo_get_library_version", "hailo_get_status_message", "hailo_get_default_vstream_params"} {
		if !seen[name] {
			t.Errorf("symbol table lacks %s", name)
		}
	}
}

func TestVersionFormatting(t *testing.T) {
	v := Version{Major: 4, Minor: 20, Revision: 1}
	if v.String() != "4.20.1" {
		t.Fatalf("String() = %q", v.String())
	}
	if got := v.Semver().String(); got != "4.20.1" {
		t.Fatalf("Semver() = %q", got)
	}
	if got := (FirmwareVersion{Major: 4, Minor: 19, Revision: 0}).String(); got != "4.19.0" {
		t.Fatalf("FirmwareVersion.String() = %q", got)
	}
}

func TestCheckLibraryVersionRejectsBadConstraint(t *testing.T) {
	resetEnvironmentForTest(t)
	if _, err := CheckLibraryVersion("not a constraint"); err == nil {
		t.Fatal("expected error for malformed constraint")
	}
}
