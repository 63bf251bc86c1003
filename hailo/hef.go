package hailo

import (
	"errors"
	"runtime"

	"github.com/amikos-tech/pure-hailort/hailort"
	"go.uber.org/zap"
)

// Hef owns a parsed compiled model.
type Hef struct {
	res  owner[hailort.HefHandle]
	path string
}

// OpenHef parses the HEF file at path.
func OpenHef(path string) (*Hef, error) {
	if path == "" {
		return nil, errors.New("hef path is empty")
	}
	var h hailort.HefHandle
	if err := hailort.CreateHefFile(&h, hailort.CString(path)).Err("hailo_create_hef_file"); err != nil {
		return nil, err
	}
	Logger().Debug("loaded hef", zap.String("path", path))
	return newHef(h, path), nil
}

// NewHefFromBuffer parses a HEF held in memory. The library copies what it
// needs, so buf may be reused once this returns.
func NewHefFromBuffer(buf []byte) (*Hef, error) {
	if len(buf) == 0 {
		return nil, errors.New("hef buffer is empty")
	}
	var h hailort.HefHandle
	s := hailort.CreateHefBuffer(&h, &buf[0], uintptr(len(buf)))
	runtime.KeepAlive(buf)
	if err := s.Err("hailo_create_hef_buffer"); err != nil {
		return nil, err
	}
	return newHef(h, ""), nil
}

func newHef(h hailort.HefHandle, path string) *Hef {
	hef := &Hef{res: newOwner(h, "hailo_release_hef", hailort.ReleaseHef), path: path}
	runtime.SetFinalizer(hef, func(hef *Hef) { _ = hef.Destroy() })
	return hef
}

// Path is the file the HEF was read from, empty for buffers.
func (hef *Hef) Path() string { return hef.path }

func (hef *Hef) Handle() hailort.HefHandle {
	if hef == nil {
		return 0
	}
	return hef.res.raw()
}

func (hef *Hef) Destroy() error {
	if hef == nil {
		return nil
	}
	runtime.SetFinalizer(hef, nil)
	return hef.res.destroy()
}

func (hef *Hef) NetworkGroupInfos() ([]hailort.NetworkGroupInfo, error) {
	var out []hailort.NetworkGroupInfo
	err := hef.res.shared(func(h hailort.HefHandle) error {
		var err error
		out, err = listInfos("hailo_hef_get_network_group_infos", hailort.MaxNetworkGroups,
			func(items *hailort.NetworkGroupInfo, count *uintptr) hailort.Status {
				return hailort.HefGetNetworkGroupInfos(h, items, count)
			})
		return err
	})
	return out, err
}

// NetworkGroupNames lists the network groups in file order.
func (hef *Hef) NetworkGroupNames() ([]string, error) {
	infos, err := hef.NetworkGroupInfos()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i := range infos {
		names[i] = infos[i].NameString()
	}
	return names, nil
}

// The per-group queries below take an empty group name to mean the only
// network group in the file.

func (hef *Hef) NetworkInfos(group string) ([]hailort.NetworkInfo, error) {
	var out []hailort.NetworkInfo
	err := hef.res.shared(func(h hailort.HefHandle) error {
		name := hailort.OptionalCString(group)
		var err error
		out, err = listInfos("hailo_hef_get_network_infos", hailort.MaxNetworksInNetworkGroup,
			func(items *hailort.NetworkInfo, count *uintptr) hailort.Status {
				return hailort.HefGetNetworkInfos(h, name, items, count)
			})
		return err
	})
	return out, err
}

func (hef *Hef) StreamInfos(group string) ([]hailort.StreamInfo, error) {
	var out []hailort.StreamInfo
	err := hef.res.shared(func(h hailort.HefHandle) error {
		name := hailort.OptionalCString(group)
		var err error
		out, err = listInfos("hailo_hef_get_stream_infos", hailort.MaxStreamsCount,
			func(items *hailort.StreamInfo, count *uintptr) hailort.Status {
				return hailort.HefGetStreamInfos(h, name, items, count)
			})
		return err
	})
	return out, err
}

func (hef *Hef) VStreamInfos(group string) ([]hailort.VStreamInfo, error) {
	var out []hailort.VStreamInfo
	err := hef.res.shared(func(h hailort.HefHandle) error {
		name := hailort.OptionalCString(group)
		var err error
		out, err = listInfos("hailo_hef_get_vstream_infos", hailort.MaxStreamsCount,
			func(items *hailort.VStreamInfo, count *uintptr) hailort.Status {
				return hailort.HefGetVStreamInfos(h, name, items, count)
			})
		return err
	})
	return out, err
}

// splitByDirection partitions infos into inputs and outputs.
func splitByDirection(infos []hailort.VStreamInfo) (in, out []hailort.VStreamInfo) {
	for _, info := range infos {
		if info.Direction == hailort.H2DStream {
			in = append(in, info)
		} else {
			out = append(out, info)
		}
	}
	return in, out
}
