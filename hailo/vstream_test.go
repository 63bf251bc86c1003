package hailo

import (
	"context"
	"testing"
	"time"

	"github.com/amikos-tech/pure-hailort/hailort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denseInfo(name string, h, w, f uint32) hailort.VStreamInfo {
	var info hailort.VStreamInfo
	copy(info.Name[:], name)
	info.Format = hailort.Format{Type: hailort.FormatTypeUint8, Order: hailort.FormatOrderNHWC}
	info.SetShape(hailort.ImageShape3D{Height: h, Width: w, Features: f})
	return info
}

func nmsInfo(order hailort.FormatOrder, shape hailort.NMSShape) hailort.VStreamInfo {
	var info hailort.VStreamInfo
	info.Format = hailort.Format{Type: hailort.FormatTypeFloat32, Order: order}
	info.SetNMSShape(shape)
	return info
}

func TestFrameSize(t *testing.T) {
	dense := denseInfo("input", 640, 640, 3)

	n, err := frameSize(dense, hailort.Format{Type: hailort.FormatTypeUint8})
	require.NoError(t, err)
	assert.Equal(t, 640*640*3, n)

	n, err = frameSize(dense, hailort.Format{Type: hailort.FormatTypeFloat32})
	require.NoError(t, err)
	assert.Equal(t, 640*640*3*4, n)

	// AUTO falls back to the hardware type.
	n, err = frameSize(dense, DefaultFormat)
	require.NoError(t, err)
	assert.Equal(t, 640*640*3, n)

	byClass := nmsInfo(hailort.FormatOrderHailoNMSByClass, hailort.NMSShape{NumberOfClasses: 80, MaxBboxesPerClass: 100})
	n, err = frameSize(byClass, hailort.Format{Type: hailort.FormatTypeFloat32})
	require.NoError(t, err)
	assert.Equal(t, 80*4+80*100*20, n)

	// A quantized NMS output counts and boxes in uint16.
	n, err = frameSize(byClass, hailort.Format{Type: hailort.FormatTypeUint16})
	require.NoError(t, err)
	assert.Equal(t, (80+80*100*5)*2, n)

	// AUTO keeps the hardware float32.
	n, err = frameSize(byClass, DefaultFormat)
	require.NoError(t, err)
	assert.Equal(t, 80*4+80*100*20, n)

	nmsTotal := nmsInfo(hailort.FormatOrderHailoNMS, hailort.NMSShape{NumberOfClasses: 2, MaxBboxesPerClass: 10, MaxBboxesTotal: 7})
	n, err = frameSize(nmsTotal, hailort.Format{Type: hailort.FormatTypeUint8})
	require.NoError(t, err)
	assert.Equal(t, 2+7*5, n)

	untyped := nmsInfo(hailort.FormatOrderHailoNMS, hailort.NMSShape{NumberOfClasses: 2, MaxBboxesPerClass: 10})
	untyped.Format.Type = hailort.FormatTypeAuto
	_, err = frameSize(untyped, hailort.Format{})
	assert.ErrorIs(t, err, errUnknownFrameSize)

	byScore := nmsInfo(hailort.FormatOrderHailoNMSByScore, hailort.NMSShape{NumberOfClasses: 80, MaxBboxesTotal: 300})
	n, err = frameSize(byScore, hailort.Format{Type: hailort.FormatTypeFloat32})
	require.NoError(t, err)
	assert.Equal(t, hailort.DetectionsBufferSize(300), n)

	onChip := nmsInfo(hailort.FormatOrderHailoNMSOnChip, hailort.NMSShape{NumberOfClasses: 1})
	_, err = frameSize(onChip, hailort.Format{})
	assert.ErrorIs(t, err, errUnknownFrameSize)

	var unknown hailort.VStreamInfo
	unknown.Format.Order = hailort.FormatOrderNHWC
	_, err = frameSize(unknown, hailort.Format{})
	assert.ErrorIs(t, err, errUnknownFrameSize)
}

func TestVStreamOptions(t *testing.T) {
	var p hailort.VStreamParams
	require.NoError(t, WithVStreamTimeout(2*time.Second)(&p))
	assert.Equal(t, uint32(2000), p.TimeoutMs)
	assert.Error(t, WithVStreamTimeout(-time.Second)(&p))

	require.NoError(t, WithVStreamQueueSize(8)(&p))
	assert.Equal(t, uint32(8), p.QueueSize)
	assert.Error(t, WithVStreamQueueSize(0)(&p))
}

func TestVStreamParamsWithoutLibrary(t *testing.T) {
	_, err := vstreamParams([]hailort.VStreamInfo{denseInfo("in", 1, 1, 1)}, DefaultFormat, hailort.H2DStream, nil)
	assert.ErrorIs(t, err, hailort.StatusUninitialized)
	assert.Contains(t, err.Error(), `"in"`)
}

func inputVStream(h hailort.InputVStreamHandle, info hailort.VStreamInfo) *InputVStream {
	return &InputVStream{vstream[hailort.InputVStreamHandle]{
		res:    newOwner(h, "hailo_release_input_vstream", nil),
		info:   info,
		format: hailort.Format{Type: hailort.FormatTypeUint8},
	}}
}

func outputVStream(h hailort.OutputVStreamHandle, info hailort.VStreamInfo) *OutputVStream {
	return &OutputVStream{vstream[hailort.OutputVStreamHandle]{
		res:    newOwner(h, "hailo_release_output_vstream", nil),
		info:   info,
		format: hailort.Format{Type: hailort.FormatTypeUint8},
	}}
}

func TestInferValidation(t *testing.T) {
	in := inputVStream(1, denseInfo("in", 2, 2, 3))
	out := outputVStream(2, denseInfo("out", 1, 1, 10))
	ctx := context.Background()

	cases := []struct {
		name    string
		inputs  []InputFrame
		outputs []OutputFrame
		want    string
	}{
		{"no inputs", nil, []OutputFrame{{out, make([]byte, 10)}}, "at least one input"},
		{"nil vstream", []InputFrame{{nil, make([]byte, 12)}}, []OutputFrame{{out, make([]byte, 10)}}, "has no vstream"},
		{"empty buffer", []InputFrame{{in, nil}}, []OutputFrame{{out, make([]byte, 10)}}, "is empty"},
		{"wrong size", []InputFrame{{in, make([]byte, 11)}}, []OutputFrame{{out, make([]byte, 10)}}, "frame is 12"},
		{"duplicate", []InputFrame{{in, make([]byte, 12)}, {in, make([]byte, 12)}}, []OutputFrame{{out, make([]byte, 10)}}, "used twice"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Infer(ctx, tc.inputs, tc.outputs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestInferCanceledContext(t *testing.T) {
	in := inputVStream(1, denseInfo("in", 1, 1, 4))
	out := outputVStream(2, denseInfo("out", 1, 1, 4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Infer(ctx, []InputFrame{{in, make([]byte, 4)}}, []OutputFrame{{out, make([]byte, 4)}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInferReportsStreamErrors(t *testing.T) {
	in := inputVStream(1, denseInfo("in", 1, 1, 4))
	out := outputVStream(2, denseInfo("out", 1, 1, 4))
	require.NoError(t, out.Destroy())

	err := Infer(context.Background(), []InputFrame{{in, make([]byte, 4)}}, []OutputFrame{{out, make([]byte, 4)}})
	require.Error(t, err)
	assert.True(t, errorIsAny(err, ErrDestroyed, hailort.StatusUninitialized))
}

func TestVStreamCallsAfterDestroy(t *testing.T) {
	in := inputVStream(1, denseInfo("in", 1, 1, 4))
	require.NoError(t, in.Destroy())
	assert.ErrorIs(t, in.Write(make([]byte, 4)), ErrDestroyed)
	assert.ErrorIs(t, in.Flush(), ErrDestroyed)
	assert.ErrorIs(t, in.Clear(), ErrDestroyed)
	_, err := in.Latency()
	assert.ErrorIs(t, err, ErrDestroyed)
	_, err = in.Info()
	assert.ErrorIs(t, err, ErrDestroyed)

	n, err := in.FrameSize()
	require.NoError(t, err, "frame size comes from the cached info")
	assert.Equal(t, 4, n)
}
