package hailort

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unsafe"
)

func putRecord[T any](buf []byte, header, i int, v T) {
	size := int(unsafe.Sizeof(v))
	start := header + i*size
	copy(buf[start:start+size], unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
}

func detectionsBuffer(count uint16, capacity int, dets ...Detection) []byte {
	buf := make([]byte, detectionsHeaderSize+capacity*int(unsafe.Sizeof(Detection{})))
	binary.NativeEndian.PutUint16(buf, count)
	for i, d := range dets {
		putRecord(buf, detectionsHeaderSize, i, d)
	}
	return buf
}

func TestDetectionsView(t *testing.T) {
	dets := []Detection{
		{YMin: 0.1, XMin: 0.2, YMax: 0.3, XMax: 0.4, Score: 0.9, ClassID: 1},
		{YMin: 0.5, XMin: 0.5, YMax: 0.6, XMax: 0.7, Score: 0.8, ClassID: 17},
	}
	v, err := NewDetectionsView(detectionsBuffer(2, 4, dets...))
	if err != nil {
		t.Fatal(err)
	}
	if v.Count() != 2 || v.Capacity() != 4 || v.Len() != 2 {
		t.Fatalf("count %d capacity %d len %d", v.Count(), v.Capacity(), v.Len())
	}
	for i, want := range dets {
		got, ok := v.At(i)
		if !ok || got != want {
			t.Fatalf("At(%d) = %+v, %v", i, got, ok)
		}
	}
	if _, ok := v.At(2); ok {
		t.Fatal("At read past the declared count")
	}
	if _, ok := v.At(-1); ok {
		t.Fatal("At accepted a negative index")
	}
	all := v.All()
	if len(all) != 2 || all[1] != dets[1] {
		t.Fatalf("All() = %+v", all)
	}
}

func TestDetectionsViewCountExceedsCapacity(t *testing.T) {
	v, err := NewDetectionsView(detectionsBuffer(500, 3))
	if err != nil {
		t.Fatal(err)
	}
	if v.Count() != 500 || v.Len() != 3 {
		t.Fatalf("count %d len %d", v.Count(), v.Len())
	}
	if _, ok := v.At(3); ok {
		t.Fatal("At read past the buffer")
	}
	if len(v.All()) != 3 {
		t.Fatal("All() not clamped to capacity")
	}
}

func TestDetectionsViewPartialTrailingRecord(t *testing.T) {
	buf := detectionsBuffer(2, 2)
	v, err := NewDetectionsView(buf[:len(buf)-1])
	if err != nil {
		t.Fatal(err)
	}
	if v.Capacity() != 1 || v.Len() != 1 {
		t.Fatalf("capacity %d len %d", v.Capacity(), v.Len())
	}
}

func TestDetectionsViewShortBuffer(t *testing.T) {
	if _, err := NewDetectionsView(make([]byte, 3)); err == nil {
		t.Fatal("expected error for buffer shorter than the header")
	}
	v, err := NewDetectionsView(make([]byte, detectionsHeaderSize))
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 0 || len(v.All()) != 0 {
		t.Fatal("header-only buffer should be empty")
	}
}

func TestDetectionsViewMisalignedBuffer(t *testing.T) {
	want := Detection{YMin: 1, XMin: 2, YMax: 3, XMax: 4, Score: 0.5, ClassID: 3}
	backing := make([]byte, 1+detectionsHeaderSize+int(unsafe.Sizeof(Detection{})))
	buf := backing[1:]
	binary.NativeEndian.PutUint16(buf, 1)
	putRecord(buf, detectionsHeaderSize, 0, want)

	v, err := NewDetectionsView(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := v.At(0); !ok || got != want {
		t.Fatalf("At(0) = %+v, %v", got, ok)
	}
}

func byteMaskBuffer(t *testing.T, masks ...[]byte) []byte {
	t.Helper()
	stride := int(unsafe.Sizeof(DetectionWithByteMask{}))
	records := byteMaskDetectionsHeaderSize + len(masks)*stride
	total := records
	for _, m := range masks {
		total += len(m)
	}
	buf := make([]byte, total)
	binary.NativeEndian.PutUint16(buf, uint16(len(masks)))
	off := records
	for i, m := range masks {
		d := DetectionWithByteMask{
			Box:        Rectangle{YMin: 0, XMin: 0, YMax: 1, XMax: 1},
			Score:      0.75,
			ClassID:    uint16(i),
			MaskSize:   uintptr(len(m)),
			MaskOffset: uintptr(off),
		}
		putRecord(buf, byteMaskDetectionsHeaderSize, i, d)
		copy(buf[off:], m)
		off += len(m)
	}
	return buf
}

func TestByteMaskDetectionsView(t *testing.T) {
	masks := [][]byte{{1, 1, 0, 0}, {0, 1, 1, 0, 1, 1}}
	v, err := NewByteMaskDetectionsView(byteMaskBuffer(t, masks...))
	if err != nil {
		t.Fatal(err)
	}
	if v.Count() != 2 || v.Len() != 2 {
		t.Fatalf("count %d len %d", v.Count(), v.Len())
	}
	for i, want := range masks {
		d, ok := v.At(i)
		if !ok || d.ClassID != uint16(i) {
			t.Fatalf("At(%d) = %+v, %v", i, d, ok)
		}
		got, err := v.Mask(i)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Mask(%d) = %v, want %v", i, got, want)
		}
	}
	if _, err := v.Mask(2); err == nil {
		t.Fatal("Mask accepted an index past the count")
	}
}

func TestByteMaskDetectionsViewMaskOutOfBounds(t *testing.T) {
	buf := byteMaskBuffer(t, []byte{1, 2, 3})
	d := readRecord[DetectionWithByteMask](buf, byteMaskDetectionsHeaderSize, 0)

	d.MaskSize = uintptr(len(buf))
	putRecord(buf, byteMaskDetectionsHeaderSize, 0, d)
	v, err := NewByteMaskDetectionsView(buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.Mask(0); err == nil {
		t.Fatal("Mask accepted a size past the end of the buffer")
	}

	d.MaskSize = 1
	d.MaskOffset = ^uintptr(0)
	putRecord(buf, byteMaskDetectionsHeaderSize, 0, d)
	if _, err := v.Mask(0); err == nil {
		t.Fatal("Mask accepted an offset past the end of the buffer")
	}
}

func TestByteMaskDetectionsViewShortBuffer(t *testing.T) {
	if _, err := NewByteMaskDetectionsView(make([]byte, byteMaskDetectionsHeaderSize-1)); err == nil {
		t.Fatal("expected error for buffer shorter than the header")
	}
	buf := make([]byte, byteMaskDetectionsHeaderSize+10)
	binary.NativeEndian.PutUint16(buf, 4)
	v, err := NewByteMaskDetectionsView(buf)
	if err != nil {
		t.Fatal(err)
	}
	if v.Capacity() != 0 || v.Len() != 0 {
		t.Fatalf("capacity %d len %d", v.Capacity(), v.Len())
	}
}

func TestDetectionsBufferSize(t *testing.T) {
	if got := DetectionsBufferSize(0); got != detectionsHeaderSize {
		t.Fatalf("DetectionsBufferSize(0) = %d", got)
	}
	v, err := NewDetectionsView(make([]byte, DetectionsBufferSize(5)))
	if err != nil {
		t.Fatal(err)
	}
	if v.Capacity() != 5 {
		t.Fatalf("capacity = %d, want 5", v.Capacity())
	}
}
