package cabi

import (
	"fmt"
	"runtime"
)

// Target describes the ABI target triple and its pointer properties.
type Target struct {
	Triple   string // e.g. "x86_64-linux-gnu"
	PtrSize  int    // bytes
	PtrAlign int    // bytes
}

func X86_64LinuxGNU() Target {
	return Target{Triple: "x86_64-linux-gnu", PtrSize: 8, PtrAlign: 8}
}

func AArch64LinuxGNU() Target {
	return Target{Triple: "aarch64-linux-gnu", PtrSize: 8, PtrAlign: 8}
}

func AArch64Darwin() Target {
	return Target{Triple: "aarch64-apple-darwin", PtrSize: 8, PtrAlign: 8}
}

func X86_64WindowsMSVC() Target {
	return Target{Triple: "x86_64-pc-windows-msvc", PtrSize: 8, PtrAlign: 8}
}

// Host returns the target the current binary was built for.
func Host() (Target, error) {
	switch runtime.GOOS + "/" + runtime.GOARCH {
	case "linux/amd64":
		return X86_64LinuxGNU(), nil
	case "linux/arm64":
		return AArch64LinuxGNU(), nil
	case "darwin/arm64":
		return AArch64Darwin(), nil
	case "windows/amd64":
		return X86_64WindowsMSVC(), nil
	}
	return Target{}, fmt.Errorf("unsupported target %s/%s", runtime.GOOS, runtime.GOARCH)
}
