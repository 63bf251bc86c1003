package hailort

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func clearResolverEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HAILORT_LIB_PATH", "")
	t.Setenv("HAILORT_LIB_DIR", "")
}

func writeLibrary(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write test library: %v", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatal(err)
	}
	return abs
}

func TestResolveSharedLibraryExplicitPath(t *testing.T) {
	clearResolverEnv(t)
	want := writeLibrary(t, t.TempDir(), "custom-hailort.so", []byte("hailort"))

	got, err := ResolveSharedLibrary(WithLibraryPath(want))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}

func TestResolveSharedLibraryEnvPath(t *testing.T) {
	clearResolverEnv(t)
	want := writeLibrary(t, t.TempDir(), "libhailort.so.4.20.0", []byte("hailort"))
	t.Setenv("HAILORT_LIB_PATH", want)

	got, err := ResolveSharedLibrary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
}

func TestResolveSharedLibraryOptionOverridesEnvPath(t *testing.T) {
	clearResolverEnv(t)
	dir := t.TempDir()
	envLib := writeLibrary(t, dir, "env.so", []byte("env"))
	optLib := writeLibrary(t, dir, "opt.so", []byte("opt"))
	t.Setenv("HAILORT_LIB_PATH", envLib)

	got, err := ResolveSharedLibrary(WithLibraryPath(optLib))
	if err != nil {
		t.Fatal(err)
	}
	if got != optLib {
		t.Fatalf("resolved %q, want %q", got, optLib)
	}
}

func TestResolveSharedLibraryInvalidExplicitPath(t *testing.T) {
	clearResolverEnv(t)
	empty := writeLibrary(t, t.TempDir(), "libhailort.so", nil)
	if _, err := ResolveSharedLibrary(WithLibraryPath(empty)); err == nil {
		t.Fatal("expected error for empty library file")
	}
}

func TestResolveSharedLibrarySearchOrder(t *testing.T) {
	clearResolverEnv(t)
	first, second, envDir := t.TempDir(), t.TempDir(), t.TempDir()
	writeLibrary(t, second, "libhailort.so", []byte("second"))
	envLib := writeLibrary(t, envDir, "libhailort.so", []byte("env"))
	t.Setenv("HAILORT_LIB_DIR", envDir)

	got, err := ResolveSharedLibrary(WithSearchDirs(first, second), withPlatform("linux", "amd64"))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(filepath.Join(second, "libhailort.so"))
	if got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}

	got, err = ResolveSharedLibrary(WithSearchDirs(first), withPlatform("linux", "amd64"))
	if err != nil {
		t.Fatal(err)
	}
	if got != envLib {
		t.Fatalf("resolved %q, want HAILORT_LIB_DIR library %q", got, envLib)
	}
}

func TestResolveSharedLibraryVersionedGlob(t *testing.T) {
	clearResolverEnv(t)
	dir := t.TempDir()
	writeLibrary(t, dir, "libhailort.so.4.20.0", []byte("v420"))
	writeLibrary(t, dir, "libhailort.so.4.19.0", []byte("v419"))

	got, err := ResolveSharedLibrary(WithSearchDirs(dir), withPlatform("linux", "arm64"))
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "libhailort.so.4.19.0" {
		t.Fatalf("resolved %q, want the first sorted versioned library", got)
	}
}

func TestResolveSharedLibraryPlatformNames(t *testing.T) {
	clearResolverEnv(t)
	t.Setenv("ProgramFiles", "")
	cases := []struct {
		goos, goarch, file string
	}{
		{"linux", "amd64", "libhailort.so"},
		{"darwin", "arm64", "libhailort.4.20.0.dylib"},
		{"windows", "amd64", "hailort.dll"},
		{"windows", "amd64", "libhailort.dll"},
	}
	for _, tc := range cases {
		t.Run(tc.goos+"/"+tc.file, func(t *testing.T) {
			dir := t.TempDir()
			want := writeLibrary(t, dir, tc.file, []byte("lib"))
			got, err := ResolveSharedLibrary(WithSearchDirs(dir), withPlatform(tc.goos, tc.goarch))
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("resolved %q, want %q", got, want)
			}
		})
	}
}

func TestResolveSharedLibraryDistinguishesInvalidCandidates(t *testing.T) {
	clearResolverEnv(t)
	t.Setenv("ProgramFiles", "")
	dir := t.TempDir()
	writeLibrary(t, dir, "hailort.dll", nil)
	writeLibrary(t, dir, "libhailort.dll", nil)

	_, err := ResolveSharedLibrary(WithSearchDirs(dir), withPlatform("windows", "amd64"))
	if err == nil {
		t.Fatal("expected invalid-candidate error")
	}
	if errors.Is(err, errSharedLibraryNotFound) {
		t.Fatalf("expected invalid-candidate error, got not-found: %v", err)
	}
	if !strings.Contains(err.Error(), "none are valid") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestResolveSharedLibraryNotFound(t *testing.T) {
	clearResolverEnv(t)
	t.Setenv("ProgramFiles", "")
	dir := t.TempDir()

	_, err := ResolveSharedLibrary(WithSearchDirs(dir), withPlatform("windows", "amd64"))
	if !errors.Is(err, errSharedLibraryNotFound) {
		t.Fatalf("expected not-found error, got: %v", err)
	}
	if !strings.Contains(err.Error(), dir) {
		t.Fatalf("error %q does not list the searched directory", err)
	}
}

func TestResolveOptionsRejectEmpty(t *testing.T) {
	var cfg resolveConfig
	if err := WithLibraryPath("   ")(&cfg); err == nil {
		t.Fatal("expected empty library path error")
	}
	if err := WithSearchDirs("/usr/lib", " ")(&cfg); err == nil {
		t.Fatal("expected empty search dir error")
	}
	if _, err := ResolveSharedLibrary(WithLibraryPath("")); err == nil {
		t.Fatal("ResolveSharedLibrary ignored an invalid option")
	}
}

func TestDefaultSearchDirs(t *testing.T) {
	t.Setenv("ProgramFiles", `C:\Program Files`)
	cases := []struct {
		goos, goarch string
		want         []string
	}{
		{"linux", "amd64", []string{"/usr/lib", "/usr/local/lib", filepath.Join("/usr/lib", "x86_64-linux-gnu")}},
		{"linux", "arm64", []string{"/usr/lib", "/usr/local/lib", filepath.Join("/usr/lib", "aarch64-linux-gnu")}},
		{"linux", "riscv64", []string{"/usr/lib", "/usr/local/lib"}},
		{"darwin", "arm64", []string{"/usr/local/lib", "/opt/homebrew/lib"}},
		{"windows", "amd64", []string{
			filepath.Join(`C:\Program Files`, "HailoRT", "lib"),
			filepath.Join(`C:\Program Files`, "HailoRT", "bin"),
		}},
	}
	for _, tc := range cases {
		if got := defaultSearchDirs(tc.goos, tc.goarch); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("defaultSearchDirs(%s, %s) = %v, want %v", tc.goos, tc.goarch, got, tc.want)
		}
	}
}

func TestValidateLibraryFile(t *testing.T) {
	if _, err := validateLibraryFile("   "); err == nil {
		t.Fatal("expected empty library path error")
	}

	dir := t.TempDir()
	if _, err := validateLibraryFile(dir); err == nil {
		t.Fatal("expected directory library path error")
	}

	zeroPath := writeLibrary(t, dir, "libhailort-empty.so", nil)
	if _, err := validateLibraryFile(zeroPath); err == nil {
		t.Fatal("expected zero-size library file error")
	}

	validPath := writeLibrary(t, dir, "libhailort.so", []byte("hailort"))
	resolved, err := validateLibraryFile(validPath)
	if err != nil {
		t.Fatalf("unexpected valid library file error: %v", err)
	}
	if resolved != validPath {
		t.Fatalf("unexpected resolved path: got %q, want %q", resolved, validPath)
	}
}

func TestLoadResolvedRefusesDifferentPathWhenLoaded(t *testing.T) {
	clearResolverEnv(t)
	resetEnvironmentForTest(t)

	dir := t.TempDir()
	current := writeLibrary(t, dir, "lib-current.so", []byte("current"))
	other := writeLibrary(t, dir, "lib-other.so", []byte("other"))

	mu.Lock()
	refCount = 1
	libPath = current
	mu.Unlock()

	err := LoadResolved(WithLibraryPath(other))
	if err == nil {
		t.Fatal("expected error for loaded library with different path")
	}
	if !strings.Contains(err.Error(), "cannot change library path") {
		t.Fatalf("unexpected error: %v", err)
	}
}
