package hailo

import (
	"runtime"

	"github.com/amikos-tech/pure-hailort/hailort"
)

// InputStream is a raw input stream of an activated network group. It
// has no release call of its own; it stops working when the group is
// deactivated, and Deactivate waits for calls in flight.
type InputStream struct {
	handle hailort.InputStreamHandle
	act    *ActivatedNetworkGroup
}

func (s *InputStream) Handle() hailort.InputStreamHandle { return s.handle }

func (s *InputStream) Info() (hailort.StreamInfo, error) {
	var info hailort.StreamInfo
	err := s.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		return retry("hailo_stream_get_info", func() hailort.Status {
			return hailort.StreamGetInfo(s.handle, &info)
		})
	})
	return info, err
}

// Write sends one frame in the device's hardware format.
func (s *InputStream) Write(buf []byte) error {
	return s.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		st := hailort.InputStreamWrite(s.handle, hailort.BytePtr(buf), uintptr(len(buf)))
		runtime.KeepAlive(buf)
		return st.Err("hailo_input_stream_write")
	})
}

// WriteAsync queues buf for transfer and returns at once.
func (s *InputStream) WriteAsync(buf []byte) (*Future[hailort.WriteCompletion], error) {
	var ch <-chan hailort.WriteCompletion
	err := s.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		var st hailort.Status
		ch, st = hailort.InputStreamWriteAsync(s.handle, buf)
		return st.Err("hailo_input_stream_write_async")
	})
	if err != nil {
		return nil, err
	}
	return newFuture("hailo_input_stream_write_async", ch, writeStatus), nil
}

// OutputStream is a raw output stream of an activated network group.
type OutputStream struct {
	handle hailort.OutputStreamHandle
	act    *ActivatedNetworkGroup
}

func (s *OutputStream) Handle() hailort.OutputStreamHandle { return s.handle }

func (s *OutputStream) Info() (hailort.StreamInfo, error) {
	var info hailort.StreamInfo
	err := s.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		return retry("hailo_output_stream_get_info", func() hailort.Status {
			return hailort.OutputStreamGetInfo(s.handle, &info)
		})
	})
	return info, err
}

// FrameSize is the size in bytes of one hardware frame.
func (s *OutputStream) FrameSize() (int, error) {
	info, err := s.Info()
	if err != nil {
		return 0, err
	}
	return int(info.HWFrameSize), nil
}

func (s *OutputStream) QuantInfos() ([]hailort.QuantInfo, error) {
	var out []hailort.QuantInfo
	err := s.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		var err error
		out, err = listInfos("hailo_get_output_stream_quant_infos", 1,
			func(items *hailort.QuantInfo, count *uintptr) hailort.Status {
				return hailort.GetOutputStreamQuantInfos(s.handle, items, count)
			})
		return err
	})
	return out, err
}

// Read fills buf with one frame in the device's hardware format.
func (s *OutputStream) Read(buf []byte) error {
	return s.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		st := hailort.OutputStreamRead(s.handle, hailort.BytePtr(buf), uintptr(len(buf)))
		runtime.KeepAlive(buf)
		return st.Err("hailo_output_stream_read")
	})
}

// ReadAsync queues buf to receive the next frame and returns at once.
func (s *OutputStream) ReadAsync(buf []byte) (*Future[hailort.ReadCompletion], error) {
	var ch <-chan hailort.ReadCompletion
	err := s.act.res.shared(func(hailort.ActivatedNetworkGroupHandle) error {
		var st hailort.Status
		ch, st = hailort.OutputStreamReadAsync(s.handle, buf)
		return st.Err("hailo_output_stream_read_async")
	})
	if err != nil {
		return nil, err
	}
	return newFuture("hailo_output_stream_read_async", ch, readStatus), nil
}
