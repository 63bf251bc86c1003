package hailort

import (
	"os"
	"testing"
)

// setupLibrary loads the library named by HAILORT_LIB_PATH or skips.
func setupLibrary(t *testing.T) {
	t.Helper()
	if os.Getenv("HAILORT_LIB_PATH") == "" {
		t.Skip("set HAILORT_LIB_PATH to run tests against a real libhailort")
	}
	resetEnvironmentForTest(t)
	if err := LoadResolved(); err != nil {
		t.Fatalf("failed to load HailoRT: %v", err)
	}
	t.Cleanup(func() {
		if err := Unload(); err != nil {
			t.Errorf("Unload: %v", err)
		}
	})
}

func TestLibraryVersionAndMessages(t *testing.T) {
	setupLibrary(t)

	v, err := CheckLibraryVersion("")
	if err != nil {
		t.Fatalf("CheckLibraryVersion: %v", err)
	}
	t.Logf("libhailort %s, missing symbols %v", v, MissingSymbols())

	if StatusMessage(StatusInvalidArgument) == "" {
		t.Fatal("library returned no message for a named status")
	}
	if err := VerifyABI(); err != nil {
		t.Fatalf("VerifyABI: %v", err)
	}
}

func TestLoadIsReferenceCounted(t *testing.T) {
	setupLibrary(t)

	if err := Load(); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if err := Unload(); err != nil {
		t.Fatalf("Unload: %v", err)
	}
	if !IsLoaded() {
		t.Fatal("library closed while the first reference is held")
	}
}

func TestScanDevicesWithLibrary(t *testing.T) {
	setupLibrary(t)

	ids := make([]DeviceID, 8)
	count := uintptr(len(ids))
	s := ScanDevices(NoScanParams, &ids[0], &count)
	if !s.IsSuccess() {
		t.Skipf("device scan unavailable: %v", s.Err("hailo_scan_devices"))
	}
	for _, id := range ids[:count] {
		t.Logf("found device %s", id.String())
	}
}

func TestParsePCIeDeviceInfoRejectsGarbage(t *testing.T) {
	setupLibrary(t)

	var info PCIeDeviceInfo
	if s := ParsePCIeDeviceInfo(CString("not-a-bdf"), &info); s.IsSuccess() {
		t.Fatal("garbage BDF string parsed")
	}
}
