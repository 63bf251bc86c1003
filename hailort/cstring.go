package hailort

import (
	"bytes"
	"fmt"
	"unsafe"
)

// maxCStringLen bounds the NUL scan over library-owned strings. Status
// messages and identifiers returned by libhailort are far shorter.
const maxCStringLen = 1 << 16

// minValidAddress rejects pointers into the unmapped first page.
const minValidAddress = 4096

// CstringToGo copies a NUL-terminated string owned by the library. It
// returns "" for a null pointer.
func CstringToGo(ptr uintptr) string {
	if ptr < minValidAddress {
		return ""
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), maxCStringLen)
	n := bytes.IndexByte(raw, 0)
	if n < 0 {
		n = maxCStringLen
	}
	return string(raw[:n])
}

// GoToCstring returns a NUL-terminated copy of s and the address of its
// first byte. The slice must stay reachable until the call that reads the
// address returns.
func GoToCstring(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}

// CString returns a NUL-terminated copy of s for const char* parameters.
func CString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

// OptionalCString is CString, except "" maps to a null pointer. Calls such
// as HefGetStreamInfos treat null as "the only network group".
func OptionalCString(s string) *byte {
	if s == "" {
		return nil
	}
	return CString(s)
}

// GoString decodes a fixed-size char array up to its first NUL.
func GoString(b []byte) string {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return string(b)
}

// putName copies s into a fixed-size char array, keeping room for the
// terminator.
func putName(dst []byte, s string) error {
	if len(s) >= len(dst) {
		return fmt.Errorf("name %q exceeds %d bytes", s, len(dst)-1)
	}
	clear(dst)
	copy(dst, s)
	return nil
}

// BytePtr returns the address of the first element of b, or nil when b is
// empty.
func BytePtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func (id DeviceID) String() string { return GoString(id.ID[:]) }

// NewDeviceID builds a device id record such as "0000:01:00.0".
func NewDeviceID(s string) (DeviceID, error) {
	var id DeviceID
	if err := putName(id.ID[:], s); err != nil {
		return DeviceID{}, err
	}
	return id, nil
}

func (d *DeviceIdentity) BoardNameString() string {
	return lengthPrefixed(d.BoardName[:], d.BoardNameLength)
}

func (d *DeviceIdentity) SerialNumberString() string {
	return lengthPrefixed(d.SerialNumber[:], d.SerialNumberLength)
}

func (d *DeviceIdentity) PartNumberString() string {
	return lengthPrefixed(d.PartNumber[:], d.PartNumberLength)
}

func (d *DeviceIdentity) ProductNameString() string {
	return lengthPrefixed(d.ProductName[:], d.ProductNameLength)
}

// lengthPrefixed decodes identity strings, which carry an explicit length
// and are not guaranteed to be NUL-terminated.
func lengthPrefixed(b []byte, n uint8) string {
	if int(n) > len(b) {
		n = uint8(len(b))
	}
	return GoString(b[:n])
}

func (s *StreamInfo) NameString() string         { return GoString(s.Name[:]) }
func (v *VStreamInfo) NameString() string        { return GoString(v.Name[:]) }
func (v *VStreamInfo) NetworkNameString() string { return GoString(v.NetworkName[:]) }
func (n *NetworkGroupInfo) NameString() string   { return GoString(n.Name[:]) }
func (n *NetworkInfo) NameString() string        { return GoString(n.Name[:]) }
func (p *StreamParametersByName) NameString() string {
	return GoString(p.Name[:])
}

func (p *InputVStreamParamsByName) NameString() string  { return GoString(p.Name[:]) }
func (p *OutputVStreamParamsByName) NameString() string { return GoString(p.Name[:]) }

func (p *InputVStreamParamsByName) SetName(s string) error  { return putName(p.Name[:], s) }
func (p *OutputVStreamParamsByName) SetName(s string) error { return putName(p.Name[:], s) }
func (p *ConfigureNetworkGroupParams) NameString() string   { return GoString(p.Name[:]) }
