package hailo

import (
	"runtime"

	"github.com/amikos-tech/pure-hailort/hailort"
)

// InputTransformContext converts user frames into the hardware format of
// an input stream.
type InputTransformContext struct {
	res    owner[hailort.InputTransformContextHandle]
	stream *InputStream
}

// NewInputTransform creates a transform context for stream. The user
// buffer format in params describes the frames handed to Transform.
func NewInputTransform(stream *InputStream, params hailort.TransformParams) (*InputTransformContext, error) {
	var h hailort.InputTransformContextHandle
	err := stream.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		return hailort.CreateInputTransformContext(stream.handle, &params, &h).Err("hailo_create_input_transform_context")
	})
	if err != nil {
		return nil, err
	}
	t := &InputTransformContext{
		res:    newOwner(h, "hailo_release_input_transform_context", hailort.ReleaseInputTransformContext),
		stream: stream,
	}
	runtime.SetFinalizer(t, func(t *InputTransformContext) { _ = t.Destroy() })
	return t, nil
}

func (t *InputTransformContext) Transform(buf []byte) error {
	return t.res.exclusive(func(h hailort.InputTransformContextHandle) error {
		s := hailort.InputTransformContextWrite(h, hailort.BytePtr(buf), uintptr(len(buf)))
		runtime.KeepAlive(buf)
		return s.Err("hailo_input_transform_context_write")
	})
}

func (t *InputTransformContext) Destroy() error {
	if t == nil {
		return nil
	}
	runtime.SetFinalizer(t, nil)
	return t.res.destroy()
}

// OutputTransformContext converts hardware frames of an output stream
// into the user format.
type OutputTransformContext struct {
	res    owner[hailort.OutputTransformContextHandle]
	stream *OutputStream
}

func NewOutputTransform(stream *OutputStream, params hailort.TransformParams) (*OutputTransformContext, error) {
	var h hailort.OutputTransformContextHandle
	err := stream.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		return hailort.CreateOutputTransformContext(stream.handle, &params, &h).Err("hailo_create_output_transform_context")
	})
	if err != nil {
		return nil, err
	}
	t := &OutputTransformContext{
		res:    newOwner(h, "hailo_release_output_transform_context", hailort.ReleaseOutputTransformContext),
		stream: stream,
	}
	runtime.SetFinalizer(t, func(t *OutputTransformContext) { _ = t.Destroy() })
	return t, nil
}

func (t *OutputTransformContext) Transform(buf []byte) error {
	return t.res.exclusive(func(h hailort.OutputTransformContextHandle) error {
		s := hailort.OutputTransformContextRead(h, hailort.BytePtr(buf), uintptr(len(buf)))
		runtime.KeepAlive(buf)
		return s.Err("hailo_output_transform_context_read")
	})
}

func (t *OutputTransformContext) Destroy() error {
	if t == nil {
		return nil
	}
	runtime.SetFinalizer(t, nil)
	return t.res.destroy()
}

// OutputDemuxer splits a muxed output stream into its member streams.
type OutputDemuxer struct {
	res    owner[hailort.OutputDemuxerHandle]
	stream *OutputStream
}

func NewOutputDemuxer(stream *OutputStream) (*OutputDemuxer, error) {
	var h hailort.OutputDemuxerHandle
	err := stream.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		var params hailort.DemuxParams
		return hailort.CreateOutputDemuxer(stream.handle, &params, &h).Err("hailo_create_output_demuxer")
	})
	if err != nil {
		return nil, err
	}
	d := &OutputDemuxer{
		res:    newOwner(h, "hailo_release_output_demuxer", hailort.ReleaseOutputDemuxer),
		stream: stream,
	}
	runtime.SetFinalizer(d, func(d *OutputDemuxer) { _ = d.Destroy() })
	return d, nil
}

// Read fills buf with demuxed data and returns the number of bytes
// written.
func (d *OutputDemuxer) Read(buf []byte) (int, error) {
	var n uintptr
	err := d.res.exclusive(func(h hailort.OutputDemuxerHandle) error {
		s := hailort.OutputDemuxerRead(h, hailort.BytePtr(buf), uintptr(len(buf)), &n)
		runtime.KeepAlive(buf)
		return s.Err("hailo_output_demuxer_read")
	})
	return int(n), err
}

func (d *OutputDemuxer) Destroy() error {
	if d == nil {
		return nil
	}
	runtime.SetFinalizer(d, nil)
	return d.res.destroy()
}
