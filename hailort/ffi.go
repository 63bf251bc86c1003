package hailort

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"
)

// api holds one function variable per exported libhailort symbol. A fresh
// api is populated on every Load and published atomically, so a call never
// observes a half-registered table. Calls are counted per table and a
// retired table is only given up once its count drains, so the library is
// never closed under a running call.
type api struct {
	loaded bool
	calls  callGate

	getLibraryVersion func(*Version) Status
	getStatusMessage  func(Status) uintptr

	scanDevices             func(ScanDevicesParams, *DeviceID, *uintptr) Status
	createDeviceByID        func(*DeviceID, *DeviceHandle) Status
	scanPCIeDevices         func(*PCIeDeviceInfo, uintptr, *uintptr) Status
	parsePCIeDeviceInfo     func(*byte, *PCIeDeviceInfo) Status
	createPCIeDevice        func(*PCIeDeviceInfo, *DeviceHandle) Status
	releaseDevice           func(DeviceHandle) Status
	deviceGetTypeByDeviceID func(*DeviceID, *DeviceType) Status

	identify                     func(DeviceHandle, *DeviceIdentity) Status
	coreIdentify                 func(DeviceHandle, *CoreInformation) Status
	getExtendedDeviceInformation func(DeviceHandle, *ExtendedDeviceInformation) Status
	getDeviceID                  func(DeviceHandle, *DeviceID) Status
	getDriverVersion             func(DeviceHandle, *Version) Status

	setFWLogger            func(DeviceHandle, FWLoggerLevel, uint32) Status
	setThrottlingState     func(DeviceHandle, bool) Status
	getThrottlingState     func(DeviceHandle, *bool) Status
	wdEnable               func(DeviceHandle, CPUID) Status
	wdDisable              func(DeviceHandle, CPUID) Status
	wdConfig               func(DeviceHandle, CPUID, uint32, WatchdogMode) Status
	getPreviousSystemState func(DeviceHandle, CPUID, *uint32) Status
	setPauseFrames         func(DeviceHandle, bool) Status
	getChipTemperature     func(DeviceHandle, *ChipTemperatureInfo) Status
	resetDevice            func(DeviceHandle, ResetDeviceMode) Status
	updateFirmware         func(DeviceHandle, *byte, uint32) Status
	updateSecondStage      func(DeviceHandle, *byte, uint32) Status

	setNotificationCallback    func(DeviceHandle, uintptr, NotificationID, uintptr) Status
	removeNotificationCallback func(DeviceHandle, NotificationID) Status

	resetSensor          func(DeviceHandle, uint8) Status
	setSensorI2CBusIndex func(DeviceHandle, SensorType, uint8) Status
	loadAndStartSensor   func(DeviceHandle, uint8) Status
	dumpSensorConfig     func(DeviceHandle, uint8, *byte) Status
	storeSensorConfig    func(DeviceHandle, uint32, SensorType, uint32, uint16, uint16, uint16, *byte, *byte) Status
	storeISPConfig       func(DeviceHandle, uint32, uint16, uint16, uint16, *byte, *byte, *byte) Status

	i2cRead          func(DeviceHandle, *I2CSlaveConfig, uint32, *byte, uint32) Status
	i2cWrite         func(DeviceHandle, *I2CSlaveConfig, uint32, *byte, uint32) Status
	testChipMemories func(DeviceHandle) Status

	powerMeasurement      func(DeviceHandle, DVMOptions, PowerMeasurementType, *float32) Status
	startPowerMeasurement func(DeviceHandle, AveragingFactor, SamplingPeriod) Status
	setPowerMeasurement   func(DeviceHandle, MeasurementBufferIndex, DVMOptions, PowerMeasurementType) Status
	getPowerMeasurement   func(DeviceHandle, MeasurementBufferIndex, bool, *PowerMeasurementData) Status
	stopPowerMeasurement  func(DeviceHandle) Status

	getHealthInformation func(DeviceHandle, *HealthInfo) Status
	getPerformanceStats  func(DeviceHandle, *PerformanceStats) Status
	getHealthStats       func(DeviceHandle, *HealthStats) Status

	initVDeviceParams            func(*VDeviceParams) Status
	createVDevice                func(*VDeviceParams, *VDeviceHandle) Status
	configureVDevice             func(VDeviceHandle, HefHandle, *ConfigureParams, *ConfiguredNetworkGroupHandle, *uintptr) Status
	getPhysicalDevices           func(VDeviceHandle, *DeviceHandle, *uintptr) Status
	vdeviceGetPhysicalDevicesIDs func(VDeviceHandle, *DeviceID, *uintptr) Status
	releaseVDevice               func(VDeviceHandle) Status

	createHefFile           func(*HefHandle, *byte) Status
	createHefBuffer         func(*HefHandle, *byte, uintptr) Status
	releaseHef              func(HefHandle) Status
	hefGetStreamInfos       func(HefHandle, *byte, *StreamInfo, *uintptr) Status
	hefGetVStreamInfos      func(HefHandle, *byte, *VStreamInfo, *uintptr) Status
	hefGetNetworkGroupInfos func(HefHandle, *NetworkGroupInfo, *uintptr) Status
	hefGetNetworkInfos      func(HefHandle, *byte, *NetworkInfo, *uintptr) Status

	initConfigureParamsByDevice  func(DeviceHandle, HefHandle, *ConfigureParams) Status
	initConfigureParamsByVDevice func(VDeviceHandle, HefHandle, *ConfigureParams) Status
	configureDevice              func(DeviceHandle, HefHandle, *ConfigureParams, *ConfiguredNetworkGroupHandle, *uintptr) Status

	activateNetworkGroup   func(ConfiguredNetworkGroupHandle, *ActivateNetworkGroupParams, *ActivatedNetworkGroupHandle) Status
	deactivateNetworkGroup func(ActivatedNetworkGroupHandle) Status
	releaseNetworkGroup    func(ConfiguredNetworkGroupHandle) Status
	getNetworkGroupInfo    func(ConfiguredNetworkGroupHandle, *NetworkGroupInfo) Status

	getInputStreamsByNetwork  func(ActivatedNetworkGroupHandle, *byte, *InputStreamHandle, *uintptr) Status
	getOutputStreamsByNetwork func(ActivatedNetworkGroupHandle, *byte, *OutputStreamHandle, *uintptr) Status
	inputStreamWrite          func(InputStreamHandle, *byte, uintptr) Status
	outputStreamRead          func(OutputStreamHandle, *byte, uintptr) Status
	streamGetInfo             func(InputStreamHandle, *StreamInfo) Status
	outputStreamGetInfo       func(OutputStreamHandle, *StreamInfo) Status
	inputStreamWriteAsync     func(InputStreamHandle, *byte, uintptr, uintptr, uintptr) Status
	outputStreamReadAsync     func(OutputStreamHandle, *byte, uintptr, uintptr, uintptr) Status

	getOutputStreamQuantInfos  func(OutputStreamHandle, *QuantInfo, *uintptr) Status
	getOutputVStreamQuantInfos func(OutputVStreamHandle, *QuantInfo, *uintptr) Status

	createInputTransformContext   func(InputStreamHandle, *TransformParams, *InputTransformContextHandle) Status
	createOutputTransformContext  func(OutputStreamHandle, *TransformParams, *OutputTransformContextHandle) Status
	inputTransformContextWrite    func(InputTransformContextHandle, *byte, uintptr) Status
	outputTransformContextRead    func(OutputTransformContextHandle, *byte, uintptr) Status
	releaseInputTransformContext  func(InputTransformContextHandle) Status
	releaseOutputTransformContext func(OutputTransformContextHandle) Status

	createOutputDemuxer  func(OutputStreamHandle, *DemuxParams, *OutputDemuxerHandle) Status
	outputDemuxerRead    func(OutputDemuxerHandle, *byte, uintptr, *uintptr) Status
	releaseOutputDemuxer func(OutputDemuxerHandle) Status

	createInputVStreams     func(ConfiguredNetworkGroupHandle, *InputVStreamParamsByName, uintptr, *InputVStreamHandle) Status
	createOutputVStreams    func(ConfiguredNetworkGroupHandle, *OutputVStreamParamsByName, uintptr, *OutputVStreamHandle) Status
	releaseInputVStream     func(InputVStreamHandle) Status
	releaseOutputVStream    func(OutputVStreamHandle) Status
	inputVStreamWrite       func(InputVStreamHandle, *byte, uintptr) Status
	outputVStreamRead       func(OutputVStreamHandle, *byte, uintptr) Status
	inputVStreamGetInfo     func(InputVStreamHandle, *VStreamInfo) Status
	outputVStreamGetInfo    func(OutputVStreamHandle, *VStreamInfo) Status
	inputVStreamFlush       func(InputVStreamHandle) Status
	inputVStreamClear       func(InputVStreamHandle) Status
	getDefaultVStreamParams defaultVStreamParamsFunc
	inputVStreamGetLatency  func(InputVStreamHandle, *LatencyMeasurementResult) Status
}

type symbol struct {
	name     string
	fn       any
	required bool
}

func (a *api) symbols() []symbol {
	return []symbol{
		{"hailo_get_library_version", &a.getLibraryVersion, true},
		{"hailo_get_status_message", &a.getStatusMessage, true},

		{"hailo_scan_devices", &a.scanDevices, false},
		{"hailo_create_device_by_id", &a.createDeviceByID, false},
		{"hailo_scan_pcie_devices", &a.scanPCIeDevices, false},
		{"hailo_parse_pcie_device_info", &a.parsePCIeDeviceInfo, false},
		{"hailo_create_pcie_device", &a.createPCIeDevice, false},
		{"hailo_release_device", &a.releaseDevice, false},
		{"hailo_device_get_type_by_device_id", &a.deviceGetTypeByDeviceID, false},

		{"hailo_identify", &a.identify, false},
		{"hailo_core_identify", &a.coreIdentify, false},
		{"hailo_get_extended_device_information", &a.getExtendedDeviceInformation, false},
		{"hailo_get_device_id", &a.getDeviceID, false},
		{"hailo_get_driver_version", &a.getDriverVersion, false},

		{"hailo_set_fw_logger", &a.setFWLogger, false},
		{"hailo_set_throttling_state", &a.setThrottlingState, false},
		{"hailo_get_throttling_state", &a.getThrottlingState, false},
		{"hailo_wd_enable", &a.wdEnable, false},
		{"hailo_wd_disable", &a.wdDisable, false},
		{"hailo_wd_config", &a.wdConfig, false},
		{"hailo_get_previous_system_state", &a.getPreviousSystemState, false},
		{"hailo_set_pause_frames", &a.setPauseFrames, false},
		{"hailo_get_chip_temperature", &a.getChipTemperature, false},
		{"hailo_reset_device", &a.resetDevice, false},
		{"hailo_update_firmware", &a.updateFirmware, false},
		{"hailo_update_second_stage", &a.updateSecondStage, false},

		{"hailo_set_notification_callback", &a.setNotificationCallback, false},
		{"hailo_remove_notification_callback", &a.removeNotificationCallback, false},

		{"hailo_reset_sensor", &a.resetSensor, false},
		{"hailo_set_sensor_i2c_bus_index", &a.setSensorI2CBusIndex, false},
		{"hailo_load_and_start_sensor", &a.loadAndStartSensor, false},
		{"hailo_dump_sensor_config", &a.dumpSensorConfig, false},
		{"hailo_store_sensor_config", &a.storeSensorConfig, false},
		{"hailo_store_isp_config", &a.storeISPConfig, false},

		{"hailo_i2c_read", &a.i2cRead, false},
		{"hailo_i2c_write", &a.i2cWrite, false},
		{"hailo_test_chip_memories", &a.testChipMemories, false},

		{"hailo_power_measurement", &a.powerMeasurement, false},
		{"hailo_start_power_measurement", &a.startPowerMeasurement, false},
		{"hailo_set_power_measurement", &a.setPowerMeasurement, false},
		{"hailo_get_power_measurement", &a.getPowerMeasurement, false},
		{"hailo_stop_power_measurement", &a.stopPowerMeasurement, false},

		{"hailo_get_health_information", &a.getHealthInformation, false},
		{"hailo_get_performance_stats", &a.getPerformanceStats, false},
		{"hailo_get_health_stats", &a.getHealthStats, false},

		{"hailo_init_vdevice_params", &a.initVDeviceParams, false},
		{"hailo_create_vdevice", &a.createVDevice, false},
		{"hailo_configure_vdevice", &a.configureVDevice, false},
		{"hailo_get_physical_devices", &a.getPhysicalDevices, false},
		{"hailo_vdevice_get_physical_devices_ids", &a.vdeviceGetPhysicalDevicesIDs, false},
		{"hailo_release_vdevice", &a.releaseVDevice, false},

		{"hailo_create_hef_file", &a.createHefFile, false},
		{"hailo_create_hef_buffer", &a.createHefBuffer, false},
		{"hailo_release_hef", &a.releaseHef, false},
		{"hailo_hef_get_stream_infos", &a.hefGetStreamInfos, false},
		{"hailo_hef_get_vstream_infos", &a.hefGetVStreamInfos, false},
		{"hailo_hef_get_network_group_infos", &a.hefGetNetworkGroupInfos, false},
		{"hailo_hef_get_network_infos", &a.hefGetNetworkInfos, false},

		{"hailo_init_configure_params_by_device", &a.initConfigureParamsByDevice, false},
		{"hailo_init_configure_params_by_vdevice", &a.initConfigureParamsByVDevice, false},
		{"hailo_configure_device", &a.configureDevice, false},

		{"hailo_activate_network_group", &a.activateNetworkGroup, false},
		{"hailo_deactivate_network_group", &a.deactivateNetworkGroup, false},
		{"hailo_release_network_group", &a.releaseNetworkGroup, false},
		{"hailo_get_network_group_info", &a.getNetworkGroupInfo, false},

		{"hailo_get_input_streams_by_network", &a.getInputStreamsByNetwork, false},
		{"hailo_get_output_streams_by_network", &a.getOutputStreamsByNetwork, false},
		{"hailo_input_stream_write", &a.inputStreamWrite, false},
		{"hailo_output_stream_read", &a.outputStreamRead, false},
		{"hailo_stream_get_info", &a.streamGetInfo, false},
		{"hailo_output_stream_get_info", &a.outputStreamGetInfo, false},
		{"hailo_input_stream_write_async", &a.inputStreamWriteAsync, false},
		{"hailo_output_stream_read_async", &a.outputStreamReadAsync, false},

		{"hailo_get_output_stream_quant_infos", &a.getOutputStreamQuantInfos, false},
		{"hailo_get_output_vstream_quant_infos", &a.getOutputVStreamQuantInfos, false},

		{"hailo_create_input_transform_context", &a.createInputTransformContext, false},
		{"hailo_create_output_transform_context", &a.createOutputTransformContext, false},
		{"hailo_input_transform_context_write", &a.inputTransformContextWrite, false},
		{"hailo_output_transform_context_read", &a.outputTransformContextRead, false},
		{"hailo_release_input_transform_context", &a.releaseInputTransformContext, false},
		{"hailo_release_output_transform_context", &a.releaseOutputTransformContext, false},

		{"hailo_create_output_demuxer", &a.createOutputDemuxer, false},
		{"hailo_output_demuxer_read", &a.outputDemuxerRead, false},
		{"hailo_release_output_demuxer", &a.releaseOutputDemuxer, false},

		{"hailo_create_input_vstreams", &a.createInputVStreams, false},
		{"hailo_create_output_vstreams", &a.createOutputVStreams, false},
		{"hailo_release_input_vstream", &a.releaseInputVStream, false},
		{"hailo_release_output_vstream", &a.releaseOutputVStream, false},
		{"hailo_input_vstream_write", &a.inputVStreamWrite, false},
		{"hailo_output_vstream_read", &a.outputVStreamRead, false},
		{"hailo_input_vstream_get_info", &a.inputVStreamGetInfo, false},
		{"hailo_output_vstream_get_info", &a.outputVStreamGetInfo, false},
		{"hailo_input_vstream_flush", &a.inputVStreamFlush, false},
		{"hailo_input_vstream_clear", &a.inputVStreamClear, false},
		{"hailo_get_default_vstream_params", &a.getDefaultVStreamParams, false},
		{"hailo_input_vstream_get_latency_measurement", &a.inputVStreamGetLatency, false},
	}
}

// register resolves every symbol from lib. Missing optional symbols are
// returned by name and leave their function variable nil.
func (a *api) register(lib uintptr) (missing []string, err error) {
	for _, sym := range a.symbols() {
		addr, lookupErr := getSymbol(lib, sym.name)
		if lookupErr == nil && addr == 0 {
			lookupErr = fmt.Errorf("symbol %s resolved to a null address", sym.name)
		}
		if lookupErr != nil {
			if sym.required {
				return nil, fmt.Errorf("required symbol %s not found: %w", sym.name, lookupErr)
			}
			missing = append(missing, sym.name)
			continue
		}
		purego.RegisterFunc(sym.fn, addr)
	}
	a.loaded = true
	return missing, nil
}

// missing reports why a nil function variable cannot be called.
func (a *api) missing() Status {
	if !a.loaded {
		return StatusUninitialized
	}
	return StatusNotImplemented
}

// callGate counts the calls running against one api table. No lock is
// held across a foreign call: a blocking read must not stop the write on
// another goroutine that would complete it.
type callGate struct {
	n        atomic.Int64
	retiring atomic.Bool
	once     sync.Once
	drained  chan struct{}
}

func (g *callGate) init() {
	g.drained = make(chan struct{})
}

func (g *callGate) leave() {
	if g.n.Add(-1) == 0 && g.retiring.Load() {
		g.once.Do(func() { close(g.drained) })
	}
}

// drain waits until every call counted on the retired table has left.
func (g *callGate) drain() {
	g.retiring.Store(true)
	if g.n.Load() == 0 {
		g.once.Do(func() { close(g.drained) })
	}
	<-g.drained
}

var (
	current  atomic.Pointer[api]
	unloaded = &api{}
)

func nop() {}

// enter returns the table to call through and the func that ends the
// call. A caller that races with swapAPI either is counted before the
// table is retired or sees the new table.
func enter() (*api, func()) {
	for {
		a := current.Load()
		if a == nil {
			return unloaded, nop
		}
		a.calls.n.Add(1)
		if current.Load() == a {
			return a, a.calls.leave
		}
		a.calls.leave()
	}
}

// swapAPI publishes a and waits for the calls still running on the table
// it replaces. New calls go to a at once.
func swapAPI(a *api) {
	if a != nil {
		a.calls.init()
	}
	prev := current.Swap(a)
	if prev != nil && prev.calls.drained != nil {
		prev.calls.drain()
	}
}

// SymbolNames lists every libhailort symbol the binding resolves.
func SymbolNames() []string {
	syms := (&api{}).symbols()
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.name
	}
	return names
}
