package cabi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarAndPointerLayouts(t *testing.T) {
	e := New(X86_64LinuxGNU())

	tests := []struct {
		name  string
		typ   *Type
		size  int
		align int
	}{
		{"bool", Bool, 1, 1},
		{"uint16", U16, 2, 2},
		{"enum", Enum, 4, 4},
		{"double", Double, 8, 8},
		{"pointer", Ptr(), 8, 8},
		{"size_t", SizeT(), 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := e.LayoutOf(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.size, l.Size)
			assert.Equal(t, tt.align, l.Align)
		})
	}
}

func TestStructPaddingAndTailRounding(t *testing.T) {
	e := New(X86_64LinuxGNU())

	// struct { uint8_t a; uint32_t b; uint16_t c; }
	s := Struct("padded", F("a", U8), F("b", U32), F("c", U16))
	l, err := e.LayoutOf(s)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 8}, l.FieldOffsets)
	assert.Equal(t, 12, l.Size)
	assert.Equal(t, 4, l.Align)
}

func TestThreeWordVersionRecord(t *testing.T) {
	e := New(AArch64LinuxGNU())
	version := Struct("hailo_version_t", F("major", U32), F("minor", U32), F("revision", U32))

	l, err := e.LayoutOf(version)
	require.NoError(t, err)
	assert.Equal(t, 12, l.Size)
	assert.Equal(t, 4, l.Align)
	assert.Equal(t, []int{0, 4, 8}, l.FieldOffsets)
}

func TestArrayStrideUsesPaddedElement(t *testing.T) {
	e := New(X86_64LinuxGNU())
	elem := Struct("elem", F("v", U32), F("b", U8))
	arr := Array(elem, 3)

	l, err := e.LayoutOf(arr)
	require.NoError(t, err)
	assert.Equal(t, 24, l.Size)
	assert.Equal(t, 4, l.Align)
}

func TestUnionSizedToLargestVariantRoundedToStrictestAlign(t *testing.T) {
	e := New(X86_64LinuxGNU())
	u := Union("u",
		F("twenty", Array(U32, 5)),
		F("wide", U64),
		F("small", U16),
	)

	l, err := e.LayoutOf(u)
	require.NoError(t, err)
	assert.Equal(t, 24, l.Size)
	assert.Equal(t, 8, l.Align)
	assert.Equal(t, []int{0, 0, 0}, l.FieldOffsets)
}

func TestUnionOfPointerAndInt(t *testing.T) {
	e := New(X86_64LinuxGNU())
	u := Union("plane_ptr", F("user_ptr", Ptr()), F("fd", Int))

	l, err := e.LayoutOf(u)
	require.NoError(t, err)
	assert.Equal(t, 8, l.Size)
	assert.Equal(t, 8, l.Align)
}

func TestFlexibleArrayMemberContributesAlignmentOnly(t *testing.T) {
	e := New(X86_64LinuxGNU())
	detection := Struct("detection",
		F("y_min", Float), F("x_min", Float), F("y_max", Float), F("x_max", Float),
		F("score", Float), F("class_id", U16),
	)
	detections := Struct("detections", F("count", U16), F("detections", FlexArray(detection)))

	l, err := e.LayoutOf(detections)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, l.FieldOffsets)
	assert.Equal(t, 4, l.Size)

	dl, err := e.LayoutOf(detection)
	require.NoError(t, err)
	assert.Equal(t, 24, dl.Size)
}

func TestFlexibleArrayMustBeLast(t *testing.T) {
	e := New(X86_64LinuxGNU())
	bad := Struct("bad", F("tail", FlexArray(U8)), F("count", U16))

	_, err := e.LayoutOf(bad)
	var layoutErr *LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, LayoutErrMisplacedFlexArray, layoutErr.Kind)
}

func TestNegativeArrayLength(t *testing.T) {
	e := New(X86_64LinuxGNU())
	_, err := e.LayoutOf(Array(U8, -1))

	var layoutErr *LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, LayoutErrNegativeLength, layoutErr.Kind)
	assert.Equal(t, int64(-1), layoutErr.Value)
}

func TestRecursiveStructReportsCycle(t *testing.T) {
	e := New(X86_64LinuxGNU())
	node := Struct("node", F("v", U32))
	node.Fields = append(node.Fields, F("next", node))

	_, err := e.LayoutOf(node)
	var layoutErr *LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, LayoutErrRecursiveUnsized, layoutErr.Kind)
	assert.Equal(t, []string{"node", "node"}, layoutErr.Cycle)
}

func TestInvalidScalarWidth(t *testing.T) {
	e := New(X86_64LinuxGNU())
	_, err := e.LayoutOf(Scalar("weird", 3))
	var layoutErr *LayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, LayoutErrInvalidScalar, layoutErr.Kind)
}

func TestLayoutIsCachedPerDescriptor(t *testing.T) {
	e := New(X86_64LinuxGNU())
	s := Struct("s", F("a", U8), F("b", Double))

	first, err := e.LayoutOf(s)
	require.NoError(t, err)
	second, err := e.LayoutOf(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	off, err := e.FieldOffset(s, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, off)
}

func TestNilEngine(t *testing.T) {
	var e *Engine
	l, err := e.LayoutOf(U32)
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 0, Align: 1}, l)
}

func TestRoundUp(t *testing.T) {
	assert.Equal(t, 4, RoundUp(2, 4))
	assert.Equal(t, 8, RoundUp(8, 8))
	assert.Equal(t, 3, RoundUp(3, 1))
	assert.Equal(t, 0, RoundUp(0, 8))
}
