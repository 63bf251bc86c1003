package hailo

import (
	"fmt"
	"runtime"
	"unsafe"

	"fortio.org/safecast"
	"github.com/amikos-tech/pure-hailort/hailort"
	"go.uber.org/zap"
)

// VDevice owns a virtual device spanning one or more physical devices.
type VDevice struct {
	res owner[hailort.VDeviceHandle]
}

// VDeviceOption adjusts the parameters a VDevice is created with.
type VDeviceOption func(*vdeviceConfig) error

type vdeviceConfig struct {
	params    hailort.VDeviceParams
	deviceIDs []hailort.DeviceID
	groupID   string
}

// WithDeviceIDs builds the virtual device from exactly these devices.
func WithDeviceIDs(ids ...string) VDeviceOption {
	return func(cfg *vdeviceConfig) error {
		cfg.deviceIDs = cfg.deviceIDs[:0]
		for _, id := range ids {
			devID, err := hailort.NewDeviceID(id)
			if err != nil {
				return err
			}
			cfg.deviceIDs = append(cfg.deviceIDs, devID)
		}
		return nil
	}
}

// WithDeviceCount lets the library pick n devices.
func WithDeviceCount(n int) VDeviceOption {
	return func(cfg *vdeviceConfig) error {
		count, err := safecast.Conv[uint32](n)
		if err != nil || count == 0 {
			return fmt.Errorf("invalid device count %d", n)
		}
		cfg.params.DeviceCount = count
		return nil
	}
}

// WithScheduler selects the model scheduling algorithm.
func WithScheduler(alg hailort.SchedulingAlgorithm) VDeviceOption {
	return func(cfg *vdeviceConfig) error {
		cfg.params.SchedulingAlgorithm = alg
		return nil
	}
}

// WithGroupID shares the devices with other processes using the same id.
func WithGroupID(id string) VDeviceOption {
	return func(cfg *vdeviceConfig) error {
		cfg.groupID = id
		return nil
	}
}

// WithMultiProcessService routes the virtual device through hailort_service.
func WithMultiProcessService(enabled bool) VDeviceOption {
	return func(cfg *vdeviceConfig) error {
		cfg.params.MultiProcessService = enabled
		return nil
	}
}

// NewVDevice creates a virtual device from the library defaults adjusted
// by opts.
func NewVDevice(opts ...VDeviceOption) (*VDevice, error) {
	var cfg vdeviceConfig
	if err := hailort.InitVDeviceParams(&cfg.params).Err("hailo_init_vdevice_params"); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	// The params record carries addresses of Go memory, which stay pinned
	// for the duration of the call.
	var pinner runtime.Pinner
	defer pinner.Unpin()
	if len(cfg.deviceIDs) > 0 {
		count, err := safecast.Conv[uint32](len(cfg.deviceIDs))
		if err != nil {
			return nil, err
		}
		pinner.Pin(&cfg.deviceIDs[0])
		cfg.params.DeviceIDs = uintptr(unsafe.Pointer(&cfg.deviceIDs[0]))
		cfg.params.DeviceCount = count
	}
	if cfg.groupID != "" {
		group := hailort.CString(cfg.groupID)
		pinner.Pin(group)
		cfg.params.GroupID = uintptr(unsafe.Pointer(group))
	}

	var h hailort.VDeviceHandle
	if err := hailort.CreateVDevice(&cfg.params, &h).Err("hailo_create_vdevice"); err != nil {
		return nil, err
	}
	Logger().Debug("created vdevice",
		zap.Uint32("devices", cfg.params.DeviceCount), zap.String("group", cfg.groupID))

	v := &VDevice{res: newOwner(h, "hailo_release_vdevice", hailort.ReleaseVDevice)}
	runtime.SetFinalizer(v, func(v *VDevice) { _ = v.Destroy() })
	return v, nil
}

func (v *VDevice) Handle() hailort.VDeviceHandle {
	if v == nil {
		return 0
	}
	return v.res.raw()
}

// Destroy releases the virtual device. Network groups configured on it
// must be destroyed first.
func (v *VDevice) Destroy() error {
	if v == nil {
		return nil
	}
	if err := v.res.busy(); err != nil {
		return err
	}
	runtime.SetFinalizer(v, nil)
	return v.res.destroy()
}

// PhysicalDeviceIDs lists the ids of the devices behind v.
func (v *VDevice) PhysicalDeviceIDs() ([]string, error) {
	var ids []hailort.DeviceID
	err := v.res.shared(func(h hailort.VDeviceHandle) error {
		var err error
		ids, err = listInfos("hailo_vdevice_get_physical_devices_ids", scanCapacity,
			func(items *hailort.DeviceID, count *uintptr) hailort.Status {
				return hailort.VDeviceGetPhysicalDevicesIDs(h, items, count)
			})
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out, nil
}

// PhysicalDevices returns the raw handles of the devices behind v. They
// are owned by v and are valid until v is destroyed.
func (v *VDevice) PhysicalDevices() ([]hailort.DeviceHandle, error) {
	var out []hailort.DeviceHandle
	err := v.res.shared(func(h hailort.VDeviceHandle) error {
		var err error
		out, err = listInfos("hailo_get_physical_devices", scanCapacity,
			func(items *hailort.DeviceHandle, count *uintptr) hailort.Status {
				return hailort.GetPhysicalDevices(h, items, count)
			})
		return err
	})
	return out, err
}

// Configure loads every network group of hef onto v.
func (v *VDevice) Configure(hef *Hef, opts ...ConfigureOption) ([]*ConfiguredNetworkGroup, error) {
	var groups []*ConfiguredNetworkGroup
	err := v.res.exclusive(func(h hailort.VDeviceHandle) error {
		return hef.res.shared(func(hh hailort.HefHandle) error {
			var err error
			groups, err = configure(&v.res, hef, opts,
				func(p *hailort.ConfigureParams) hailort.Status {
					return hailort.InitConfigureParamsByVDevice(h, hh, p)
				},
				func(p *hailort.ConfigureParams, out *hailort.ConfiguredNetworkGroupHandle, n *uintptr) hailort.Status {
					return hailort.ConfigureVDevice(h, hh, p, out, n)
				})
			return err
		})
	})
	return groups, err
}
