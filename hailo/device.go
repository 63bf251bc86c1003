package hailo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"fortio.org/safecast"
	"github.com/amikos-tech/pure-hailort/hailort"
	"github.com/amikos-tech/pure-hailort/internal/hailoutil"
	"go.uber.org/zap"
)

// scanCapacity is the initial array size for device scans.
const scanCapacity = 8

// Device owns a physical device handle.
type Device struct {
	res  owner[hailort.DeviceHandle]
	subs subscriptions
}

func newDevice(h hailort.DeviceHandle) *Device {
	d := &Device{res: newOwner(h, "hailo_release_device", hailort.ReleaseDevice)}
	runtime.SetFinalizer(d, func(d *Device) { _ = d.Destroy() })
	return d
}

// ScanDevices returns the ids of every device the library can reach.
func ScanDevices() ([]hailort.DeviceID, error) {
	return listInfos("hailo_scan_devices", scanCapacity, func(ids *hailort.DeviceID, count *uintptr) hailort.Status {
		return hailort.ScanDevices(hailort.NoScanParams, ids, count)
	})
}

// ScanPCIeDevices lists the PCIe devices present on the host.
func ScanPCIeDevices() ([]hailort.PCIeDeviceInfo, error) {
	return scanPCIe(hailort.ScanPCIeDevices)
}

// scanPCIe adapts the PCIe scan, which takes its capacity by value and
// does not report the required size, to the list protocol. An array that
// is too small is doubled.
func scanPCIe(scan func(*hailort.PCIeDeviceInfo, uintptr, *uintptr) hailort.Status) ([]hailort.PCIeDeviceInfo, error) {
	return listInfos("hailo_scan_pcie_devices", scanCapacity, func(infos *hailort.PCIeDeviceInfo, count *uintptr) hailort.Status {
		capacity := *count
		var found uintptr
		s := scan(infos, capacity, &found)
		switch s {
		case hailort.StatusInsufficientBuffer:
			*count = max(found, capacity*2)
		case hailort.StatusSuccess:
			*count = found
		}
		return s
	})
}

// DeviceTypeOf reports the kind of device id names without opening it.
func DeviceTypeOf(id string) (hailort.DeviceType, error) {
	devID, err := hailort.NewDeviceID(id)
	if err != nil {
		return 0, err
	}
	var typ hailort.DeviceType
	err = retry("hailo_device_get_type_by_device_id", func() hailort.Status {
		return hailort.DeviceGetTypeByDeviceID(&devID, &typ)
	})
	return typ, err
}

// OpenDevice opens the device with the given id, or the only available
// device when id is empty.
func OpenDevice(id string) (*Device, error) {
	var idPtr *hailort.DeviceID
	if id != "" {
		devID, err := hailort.NewDeviceID(id)
		if err != nil {
			return nil, err
		}
		idPtr = &devID
	}
	var h hailort.DeviceHandle
	if err := hailort.CreateDeviceByID(idPtr, &h).Err("hailo_create_device_by_id"); err != nil {
		return nil, err
	}
	Logger().Debug("opened device", zap.String("id", id))
	return newDevice(h), nil
}

// OpenPCIeDevice opens the PCIe device at bdf ("0000:01:00.0"), or any
// PCIe device when bdf is empty.
func OpenPCIeDevice(bdf string) (*Device, error) {
	var infoPtr *hailort.PCIeDeviceInfo
	if bdf != "" {
		var info hailort.PCIeDeviceInfo
		if err := hailort.ParsePCIeDeviceInfo(hailort.CString(bdf), &info).Err("hailo_parse_pcie_device_info"); err != nil {
			return nil, err
		}
		infoPtr = &info
	}
	var h hailort.DeviceHandle
	if err := hailort.CreatePCIeDevice(infoPtr, &h).Err("hailo_create_pcie_device"); err != nil {
		return nil, err
	}
	return newDevice(h), nil
}

// Handle returns the raw handle, or 0 after Destroy.
func (d *Device) Handle() hailort.DeviceHandle {
	if d == nil {
		return 0
	}
	return d.res.raw()
}

// Destroy closes notification subscriptions and releases the device.
func (d *Device) Destroy() error {
	if d == nil {
		return nil
	}
	if err := d.res.busy(); err != nil {
		return err
	}
	runtime.SetFinalizer(d, nil)
	d.subs.closeAll()
	return d.res.destroy()
}

func query[H ~uintptr, T any](o *owner[H], op string, fn func(H, *T) hailort.Status) (T, error) {
	var out T
	err := o.shared(func(h H) error {
		return retry(op, func() hailort.Status { return fn(h, &out) })
	})
	return out, err
}

func (d *Device) Identify() (hailort.DeviceIdentity, error) {
	return query(&d.res, "hailo_identify", hailort.Identify)
}

func (d *Device) CoreIdentify() (hailort.CoreInformation, error) {
	return query(&d.res, "hailo_core_identify", hailort.CoreIdentify)
}

func (d *Device) ExtendedInformation() (hailort.ExtendedDeviceInformation, error) {
	return query(&d.res, "hailo_get_extended_device_information", hailort.GetExtendedDeviceInformation)
}

// ID returns the device id string.
func (d *Device) ID() (string, error) {
	id, err := query(&d.res, "hailo_get_device_id", hailort.GetDeviceID)
	return id.String(), err
}

func (d *Device) DriverVersion() (hailort.Version, error) {
	return query(&d.res, "hailo_get_driver_version", hailort.GetDriverVersion)
}

func (d *Device) ChipTemperature() (hailort.ChipTemperatureInfo, error) {
	return query(&d.res, "hailo_get_chip_temperature", hailort.GetChipTemperature)
}

func (d *Device) HealthInformation() (hailort.HealthInfo, error) {
	return query(&d.res, "hailo_get_health_information", hailort.GetHealthInformation)
}

func (d *Device) PerformanceStats() (hailort.PerformanceStats, error) {
	return query(&d.res, "hailo_get_performance_stats", hailort.GetPerformanceStats)
}

func (d *Device) HealthStats() (hailort.HealthStats, error) {
	return query(&d.res, "hailo_get_health_stats", hailort.GetHealthStats)
}

func (d *Device) Throttling() (bool, error) {
	return query(&d.res, "hailo_get_throttling_state", hailort.GetThrottlingState)
}

func (d *Device) PreviousSystemState(cpu hailort.CPUID) (uint32, error) {
	return query(&d.res, "hailo_get_previous_system_state", func(h hailort.DeviceHandle, state *uint32) hailort.Status {
		return hailort.GetPreviousSystemState(h, cpu, state)
	})
}

// control runs a state-changing call exactly once under the write lock.
func (d *Device) control(op string, fn func(hailort.DeviceHandle) hailort.Status) error {
	return d.res.exclusive(func(h hailort.DeviceHandle) error {
		return fn(h).Err(op)
	})
}

func (d *Device) SetThrottling(active bool) error {
	return d.control("hailo_set_throttling_state", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.SetThrottlingState(h, active)
	})
}

func (d *Device) SetFWLogger(level hailort.FWLoggerLevel, interfaces ...hailort.FWLoggerInterface) error {
	var mask uint32
	for _, i := range interfaces {
		mask |= 1 << uint32(i)
	}
	return d.control("hailo_set_fw_logger", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.SetFWLogger(h, level, mask)
	})
}

func (d *Device) SetPauseFrames(enable bool) error {
	return d.control("hailo_set_pause_frames", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.SetPauseFrames(h, enable)
	})
}

// Reset resets the device. The handle stays owned and must still be
// destroyed.
func (d *Device) Reset(mode hailort.ResetDeviceMode) error {
	return d.control("hailo_reset_device", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.ResetDevice(h, mode)
	})
}

func (d *Device) WatchdogEnable(cpu hailort.CPUID) error {
	return d.control("hailo_wd_enable", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.WDEnable(h, cpu)
	})
}

func (d *Device) WatchdogDisable(cpu hailort.CPUID) error {
	return d.control("hailo_wd_disable", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.WDDisable(h, cpu)
	})
}

func (d *Device) WatchdogConfig(cpu hailort.CPUID, cycles uint32, mode hailort.WatchdogMode) error {
	return d.control("hailo_wd_config", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.WDConfig(h, cpu, cycles, mode)
	})
}

// PowerMeasurement takes a single reading.
func (d *Device) PowerMeasurement(dvm hailort.DVMOptions, typ hailort.PowerMeasurementType) (float32, error) {
	var v float32
	err := d.control("hailo_power_measurement", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.PowerMeasurement(h, dvm, typ, &v)
	})
	return v, err
}

// StartPowerMeasurement configures buffer index with dvm and typ and starts
// periodic sampling. Read it with PowerMeasurementData and finish with
// StopPowerMeasurement.
func (d *Device) StartPowerMeasurement(index hailort.MeasurementBufferIndex, dvm hailort.DVMOptions,
	typ hailort.PowerMeasurementType, avg hailort.AveragingFactor, period hailort.SamplingPeriod) error {
	return d.res.exclusive(func(h hailort.DeviceHandle) error {
		if err := hailort.SetPowerMeasurement(h, index, dvm, typ).Err("hailo_set_power_measurement"); err != nil {
			return err
		}
		return hailort.StartPowerMeasurement(h, avg, period).Err("hailo_start_power_measurement")
	})
}

func (d *Device) PowerMeasurementData(index hailort.MeasurementBufferIndex, reset bool) (hailort.PowerMeasurementData, error) {
	var data hailort.PowerMeasurementData
	err := d.control("hailo_get_power_measurement", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.GetPowerMeasurement(h, index, reset, &data)
	})
	return data, err
}

func (d *Device) StopPowerMeasurement() error {
	return d.control("hailo_stop_power_measurement", hailort.StopPowerMeasurement)
}

// I2CRead reads len(buf) bytes from register of the slave described by cfg.
func (d *Device) I2CRead(cfg hailort.I2CSlaveConfig, register uint32, buf []byte) error {
	n, err := safecast.Conv[uint32](len(buf))
	if err != nil {
		return fmt.Errorf("i2c buffer of %d bytes: %w", len(buf), err)
	}
	return d.control("hailo_i2c_read", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.I2CRead(h, &cfg, register, hailort.BytePtr(buf), n)
	})
}

func (d *Device) I2CWrite(cfg hailort.I2CSlaveConfig, register uint32, data []byte) error {
	n, err := safecast.Conv[uint32](len(data))
	if err != nil {
		return fmt.Errorf("i2c buffer of %d bytes: %w", len(data), err)
	}
	return d.control("hailo_i2c_write", func(h hailort.DeviceHandle) hailort.Status {
		return hailort.I2CWrite(h, &cfg, register, hailort.BytePtr(data), n)
	})
}

// lockPath names the file that serializes firmware writes to one device
// across processes.
func lockPath(id string) string {
	return filepath.Join(os.TempDir(), "hailort-"+sanitizeID(id)+".lock")
}

func sanitizeID(id string) string {
	out := []byte(id)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '.':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

// UpdateFirmware writes a firmware image. Writers in other processes that
// target the same device wait on a lock file until this one finishes.
func (d *Device) UpdateFirmware(ctx context.Context, firmware []byte) error {
	return d.flash(ctx, "hailo_update_firmware", firmware, hailort.UpdateFirmware)
}

// UpdateSecondStage writes the second-stage boot loader image.
func (d *Device) UpdateSecondStage(ctx context.Context, image []byte) error {
	return d.flash(ctx, "hailo_update_second_stage", image, hailort.UpdateSecondStage)
}

func (d *Device) flash(ctx context.Context, op string, image []byte,
	fn func(hailort.DeviceHandle, *byte, uint32) hailort.Status) error {
	if len(image) == 0 {
		return fmt.Errorf("%s: empty image", op)
	}
	size, err := safecast.Conv[uint32](len(image))
	if err != nil {
		return fmt.Errorf("%s: image of %d bytes: %w", op, len(image), err)
	}
	id, err := d.ID()
	if err != nil {
		return err
	}
	return hailoutil.WithProcessFileLock(ctx, Logger(), lockPath(id), func() error {
		return d.control(op, func(h hailort.DeviceHandle) hailort.Status {
			Logger().Info("writing device image", zap.String("op", op), zap.String("device", id), zap.Int("bytes", len(image)))
			s := fn(h, &image[0], size)
			runtime.KeepAlive(image)
			return s
		})
	})
}

// Configure loads every network group of hef onto the single device d.
func (d *Device) Configure(hef *Hef, opts ...ConfigureOption) ([]*ConfiguredNetworkGroup, error) {
	var groups []*ConfiguredNetworkGroup
	err := d.res.exclusive(func(h hailort.DeviceHandle) error {
		return hef.res.shared(func(hh hailort.HefHandle) error {
			var err error
			groups, err = configure(&d.res, hef, opts,
				func(p *hailort.ConfigureParams) hailort.Status {
					return hailort.InitConfigureParamsByDevice(h, hh, p)
				},
				func(p *hailort.ConfigureParams, out *hailort.ConfiguredNetworkGroupHandle, n *uintptr) hailort.Status {
					return hailort.ConfigureDevice(h, hh, p, out, n)
				})
			return err
		})
	})
	return groups, err
}
