package hailo

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"fortio.org/safecast"
	"github.com/amikos-tech/pure-hailort/hailort"
	"go.uber.org/zap"
)

// VStreamOption adjusts the library's default parameters for a vstream.
type VStreamOption func(*hailort.VStreamParams) error

// WithVStreamTimeout bounds each blocking read or write.
func WithVStreamTimeout(d time.Duration) VStreamOption {
	return func(p *hailort.VStreamParams) error {
		ms, err := safecast.Conv[uint32](d.Milliseconds())
		if err != nil {
			return fmt.Errorf("invalid vstream timeout %s: %w", d, err)
		}
		p.TimeoutMs = ms
		return nil
	}
}

func WithVStreamQueueSize(n int) VStreamOption {
	return func(p *hailort.VStreamParams) error {
		size, err := safecast.Conv[uint32](n)
		if err != nil || size == 0 {
			return fmt.Errorf("invalid vstream queue size %d", n)
		}
		p.QueueSize = size
		return nil
	}
}

// DefaultFormat lets the library pick the user buffer format.
var DefaultFormat = hailort.Format{Type: hailort.FormatTypeAuto, Order: hailort.FormatOrderAuto}

// vstreamParams builds one params-by-name entry per info from the library
// defaults for format.
func vstreamParams(infos []hailort.VStreamInfo, format hailort.Format, dir hailort.StreamDirection,
	opts []VStreamOption) ([]hailort.VStreamParams, error) {
	out := make([]hailort.VStreamParams, len(infos))
	for i := range infos {
		err := hailort.GetDefaultVStreamParams(&infos[i], format, dir, &out[i]).Err("hailo_get_default_vstream_params")
		if err != nil {
			return nil, fmt.Errorf("vstream %q: %w", infos[i].NameString(), err)
		}
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(&out[i]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// CreateInputVStreams creates a vstream for every input of g. format is
// the layout of the frames the caller will write.
func (g *ConfiguredNetworkGroup) CreateInputVStreams(format hailort.Format, opts ...VStreamOption) ([]*InputVStream, error) {
	all, err := g.hef.VStreamInfos(g.name)
	if err != nil {
		return nil, err
	}
	infos, _ := splitByDirection(all)
	if len(infos) == 0 {
		return nil, fmt.Errorf("network group %q has no inputs", g.name)
	}
	params, err := vstreamParams(infos, format, hailort.H2DStream, opts)
	if err != nil {
		return nil, err
	}
	byName := make([]hailort.InputVStreamParamsByName, len(infos))
	for i := range infos {
		if err := byName[i].SetName(infos[i].NameString()); err != nil {
			return nil, err
		}
		byName[i].Params = params[i]
	}

	handles := make([]hailort.InputVStreamHandle, len(infos))
	err = g.res.exclusive(func(h hailort.ConfiguredNetworkGroupHandle) error {
		if err := hailort.CreateInputVStreams(h, &byName[0], uintptr(len(byName)), &handles[0]).Err("hailo_create_input_vstreams"); err != nil {
			return err
		}
		g.res.adopt(len(handles))
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*InputVStream, len(handles))
	for i, h := range handles {
		v := &InputVStream{vstream: vstream[hailort.InputVStreamHandle]{
			res:    newChildOwner(h, "hailo_release_input_vstream", hailort.ReleaseInputVStream, &g.res),
			group:  g,
			info:   infos[i],
			format: params[i].UserBufferFormat,
		}}
		runtime.SetFinalizer(v, func(v *InputVStream) { _ = v.Destroy() })
		out[i] = v
	}
	Logger().Debug("created input vstreams", zap.String("group", g.name), zap.Int("count", len(out)))
	return out, nil
}

// CreateOutputVStreams creates a vstream for every output of g. format is
// the layout the caller wants to read.
func (g *ConfiguredNetworkGroup) CreateOutputVStreams(format hailort.Format, opts ...VStreamOption) ([]*OutputVStream, error) {
	all, err := g.hef.VStreamInfos(g.name)
	if err != nil {
		return nil, err
	}
	_, infos := splitByDirection(all)
	if len(infos) == 0 {
		return nil, fmt.Errorf("network group %q has no outputs", g.name)
	}
	params, err := vstreamParams(infos, format, hailort.D2HStream, opts)
	if err != nil {
		return nil, err
	}
	byName := make([]hailort.OutputVStreamParamsByName, len(infos))
	for i := range infos {
		if err := byName[i].SetName(infos[i].NameString()); err != nil {
			return nil, err
		}
		byName[i].Params = params[i]
	}

	handles := make([]hailort.OutputVStreamHandle, len(infos))
	err = g.res.exclusive(func(h hailort.ConfiguredNetworkGroupHandle) error {
		if err := hailort.CreateOutputVStreams(h, &byName[0], uintptr(len(byName)), &handles[0]).Err("hailo_create_output_vstreams"); err != nil {
			return err
		}
		g.res.adopt(len(handles))
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*OutputVStream, len(handles))
	for i, h := range handles {
		v := &OutputVStream{vstream: vstream[hailort.OutputVStreamHandle]{
			res:    newChildOwner(h, "hailo_release_output_vstream", hailort.ReleaseOutputVStream, &g.res),
			group:  g,
			info:   infos[i],
			format: params[i].UserBufferFormat,
		}}
		runtime.SetFinalizer(v, func(v *OutputVStream) { _ = v.Destroy() })
		out[i] = v
	}
	Logger().Debug("created output vstreams", zap.String("group", g.name), zap.Int("count", len(out)))
	return out, nil
}

type vstream[H ~uintptr] struct {
	res    owner[H]
	group  *ConfiguredNetworkGroup
	info   hailort.VStreamInfo
	format hailort.Format
}

func (v *vstream[H]) Name() string { return v.info.NameString() }

// Format is the user buffer format the vstream was created with.
func (v *vstream[H]) Format() hailort.Format { return v.format }

// FrameSize is the size in bytes of one frame in the user buffer format.
func (v *vstream[H]) FrameSize() (int, error) {
	return frameSize(v.info, v.format)
}

func (v *vstream[H]) Handle() H { return v.res.raw() }

var errUnknownFrameSize = errors.New("frame size is not defined for this format")

// nmsBoxFields is the number of values in one NMS box: y_min, x_min,
// y_max, x_max and score.
const nmsBoxFields = 5

func frameSize(info hailort.VStreamInfo, format hailort.Format) (int, error) {
	elem := format.Type.ElementSize()
	if elem == 0 {
		elem = info.Format.Type.ElementSize()
	}
	if shape, ok := info.Shape(); ok {
		if elem == 0 {
			return 0, fmt.Errorf("%s: %w", format.Type, errUnknownFrameSize)
		}
		return int(shape.Height) * int(shape.Width) * int(shape.Features) * elem, nil
	}

	nms, _ := info.NMSShape()
	total := int(nms.MaxBboxesTotal)
	if total == 0 {
		total = int(nms.NumberOfClasses) * int(nms.MaxBboxesPerClass)
	}
	order := format.Order
	if order == hailort.FormatOrderAuto {
		order = info.Format.Order
	}
	switch order {
	case hailort.FormatOrderHailoNMS, hailort.FormatOrderHailoNMSByClass:
		// Per class: a count followed by its boxes, all in the user type.
		if elem == 0 {
			return 0, fmt.Errorf("%s: %w", format.Type, errUnknownFrameSize)
		}
		return (int(nms.NumberOfClasses) + total*nmsBoxFields) * elem, nil
	case hailort.FormatOrderHailoNMSByScore:
		return hailort.DetectionsBufferSize(total), nil
	}
	return 0, fmt.Errorf("%s: %w", order, errUnknownFrameSize)
}

// InputVStream owns an input virtual stream.
type InputVStream struct {
	vstream[hailort.InputVStreamHandle]
}

func (v *InputVStream) Destroy() error {
	if v == nil {
		return nil
	}
	runtime.SetFinalizer(v, nil)
	return v.res.destroy()
}

func (v *InputVStream) Info() (hailort.VStreamInfo, error) {
	return query(&v.res, "hailo_input_vstream_get_info", hailort.InputVStreamGetInfo)
}

// Write sends one frame in the vstream's user format.
func (v *InputVStream) Write(buf []byte) error {
	return v.res.exclusive(func(h hailort.InputVStreamHandle) error {
		s := hailort.InputVStreamWrite(h, hailort.BytePtr(buf), uintptr(len(buf)))
		runtime.KeepAlive(buf)
		return s.Err("hailo_input_vstream_write")
	})
}

// Flush blocks until every written frame has been sent to the device.
func (v *InputVStream) Flush() error {
	return v.res.exclusive(func(h hailort.InputVStreamHandle) error {
		return hailort.InputVStreamFlush(h).Err("hailo_input_vstream_flush")
	})
}

// Clear drops queued frames that have not reached the device.
func (v *InputVStream) Clear() error {
	return v.res.exclusive(func(h hailort.InputVStreamHandle) error {
		return hailort.InputVStreamClear(h).Err("hailo_input_vstream_clear")
	})
}

// Latency returns the average hardware latency. The network group must
// have been configured with latency measurement enabled.
func (v *InputVStream) Latency() (time.Duration, error) {
	r, err := query(&v.res, "hailo_input_vstream_get_latency_measurement", hailort.InputVStreamGetLatencyMeasurement)
	if err != nil {
		return 0, err
	}
	return time.Duration(r.AvgHWLatencyMs * float64(time.Millisecond)), nil
}

// OutputVStream owns an output virtual stream.
type OutputVStream struct {
	vstream[hailort.OutputVStreamHandle]
}

func (v *OutputVStream) Destroy() error {
	if v == nil {
		return nil
	}
	runtime.SetFinalizer(v, nil)
	return v.res.destroy()
}

func (v *OutputVStream) Info() (hailort.VStreamInfo, error) {
	return query(&v.res, "hailo_output_vstream_get_info", hailort.OutputVStreamGetInfo)
}

func (v *OutputVStream) QuantInfos() ([]hailort.QuantInfo, error) {
	var out []hailort.QuantInfo
	err := v.res.shared(func(h hailort.OutputVStreamHandle) error {
		var err error
		out, err = listInfos("hailo_get_output_vstream_quant_infos", 1,
			func(items *hailort.QuantInfo, count *uintptr) hailort.Status {
				return hailort.GetOutputVStreamQuantInfos(h, items, count)
			})
		return err
	})
	return out, err
}

// Read fills buf with one frame in the vstream's user format.
func (v *OutputVStream) Read(buf []byte) error {
	return v.res.exclusive(func(h hailort.OutputVStreamHandle) error {
		s := hailort.OutputVStreamRead(h, hailort.BytePtr(buf), uintptr(len(buf)))
		runtime.KeepAlive(buf)
		return s.Err("hailo_output_vstream_read")
	})
}
