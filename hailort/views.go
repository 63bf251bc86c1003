package hailort

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Output buffers of the NMS-by-score formats hold a uint16 count followed
// by a trailing array whose length only that count describes. They are
// never Go values; the views below read them out of a byte slice whose
// length is the capacity the caller allocated.

const (
	detectionsHeaderSize         = 4
	byteMaskDetectionsHeaderSize = 8
)

// DetectionsView reads a HAILO_NMS_BY_SCORE output buffer.
type DetectionsView struct {
	buf []byte
}

// DetectionsBufferSize is the size of a HAILO_NMS_BY_SCORE buffer with
// room for n detections.
func DetectionsBufferSize(n int) int {
	return detectionsHeaderSize + n*int(unsafe.Sizeof(Detection{}))
}

// NewDetectionsView validates that buf can hold at least the header.
func NewDetectionsView(buf []byte) (DetectionsView, error) {
	if len(buf) < detectionsHeaderSize {
		return DetectionsView{}, fmt.Errorf("detections buffer of %d bytes is shorter than its header", len(buf))
	}
	return DetectionsView{buf: buf}, nil
}

// Count is the number of detections the library declared.
func (v DetectionsView) Count() int {
	return int(binary.NativeEndian.Uint16(v.buf))
}

// Capacity is the number of detections the buffer can physically hold.
func (v DetectionsView) Capacity() int {
	return (len(v.buf) - detectionsHeaderSize) / int(unsafe.Sizeof(Detection{}))
}

// Len is min(Count, Capacity).
func (v DetectionsView) Len() int {
	return min(v.Count(), v.Capacity())
}

// At returns detection i, or false when i is outside the declared count
// or the buffer.
func (v DetectionsView) At(i int) (Detection, bool) {
	if i < 0 || i >= v.Len() {
		return Detection{}, false
	}
	return readRecord[Detection](v.buf, detectionsHeaderSize, i), true
}

// All copies out the first Len detections.
func (v DetectionsView) All() []Detection {
	out := make([]Detection, v.Len())
	for i := range out {
		out[i] = readRecord[Detection](v.buf, detectionsHeaderSize, i)
	}
	return out
}

// ByteMaskDetectionsView reads a HAILO_NMS_WITH_BYTE_MASK output buffer.
// Mask bytes live in the same buffer at each detection's MaskOffset.
type ByteMaskDetectionsView struct {
	buf []byte
}

func NewByteMaskDetectionsView(buf []byte) (ByteMaskDetectionsView, error) {
	if len(buf) < byteMaskDetectionsHeaderSize {
		return ByteMaskDetectionsView{}, fmt.Errorf("byte-mask detections buffer of %d bytes is shorter than its header", len(buf))
	}
	return ByteMaskDetectionsView{buf: buf}, nil
}

func (v ByteMaskDetectionsView) Count() int {
	return int(binary.NativeEndian.Uint16(v.buf))
}

func (v ByteMaskDetectionsView) Capacity() int {
	return (len(v.buf) - byteMaskDetectionsHeaderSize) / int(unsafe.Sizeof(DetectionWithByteMask{}))
}

func (v ByteMaskDetectionsView) Len() int {
	return min(v.Count(), v.Capacity())
}

func (v ByteMaskDetectionsView) At(i int) (DetectionWithByteMask, bool) {
	if i < 0 || i >= v.Len() {
		return DetectionWithByteMask{}, false
	}
	return readRecord[DetectionWithByteMask](v.buf, byteMaskDetectionsHeaderSize, i), true
}

// Mask returns the mask bytes of detection i as a subslice of the buffer.
func (v ByteMaskDetectionsView) Mask(i int) ([]byte, error) {
	d, ok := v.At(i)
	if !ok {
		return nil, fmt.Errorf("detection %d out of range (len %d)", i, v.Len())
	}
	off, size := d.MaskOffset, d.MaskSize
	if off > uintptr(len(v.buf)) || size > uintptr(len(v.buf))-off {
		return nil, fmt.Errorf("mask of detection %d at [%d, +%d) exceeds buffer of %d bytes", i, off, size, len(v.buf))
	}
	return v.buf[off : off+size], nil
}

// readRecord copies the i-th T of a trailing array starting at header.
// The copy tolerates buffers without T's alignment.
func readRecord[T any](buf []byte, header, i int) T {
	var out T
	size := int(unsafe.Sizeof(out))
	start := header + i*size
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out)), size), buf[start:start+size])
	return out
}
