package hailort

import "fmt"

// Thin wrappers over the registered symbols. Each one takes the C
// parameter list in Go types and returns the raw Status: no retries, no
// interpretation. A call made before Load returns StatusUninitialized; a
// call to a symbol the loaded library does not export returns
// StatusNotImplemented.
//
// Count parameters follow the library's in/out protocol: on entry they
// hold the capacity of the array, on return the number of entries
// written, or the required capacity alongside StatusInsufficientBuffer.

// Library version and status.

func GetLibraryVersion(v *Version) Status {
	a, done := enter()
	defer done()
	if a.getLibraryVersion == nil {
		return a.missing()
	}
	return a.getLibraryVersion(v)
}

// StatusMessage returns the library's description of s. Before Load it
// says so instead, keeping the numeric code.
func StatusMessage(s Status) string {
	a, done := enter()
	defer done()
	if a.getStatusMessage == nil {
		return fmt.Sprintf("hailort library not loaded (status %d)", int32(s))
	}
	return CstringToGo(a.getStatusMessage(s))
}

// Device discovery and creation.

// ScanDevices writes up to *count device ids. params must be NoScanParams.
func ScanDevices(params ScanDevicesParams, ids *DeviceID, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.scanDevices == nil {
		return a.missing()
	}
	return a.scanDevices(params, ids, count)
}

func CreateDeviceByID(id *DeviceID, device *DeviceHandle) Status {
	a, done := enter()
	defer done()
	if a.createDeviceByID == nil {
		return a.missing()
	}
	return a.createDeviceByID(id, device)
}

func ScanPCIeDevices(infos *PCIeDeviceInfo, length uintptr, found *uintptr) Status {
	a, done := enter()
	defer done()
	if a.scanPCIeDevices == nil {
		return a.missing()
	}
	return a.scanPCIeDevices(infos, length, found)
}

func ParsePCIeDeviceInfo(s *byte, info *PCIeDeviceInfo) Status {
	a, done := enter()
	defer done()
	if a.parsePCIeDeviceInfo == nil {
		return a.missing()
	}
	return a.parsePCIeDeviceInfo(s, info)
}

func CreatePCIeDevice(info *PCIeDeviceInfo, device *DeviceHandle) Status {
	a, done := enter()
	defer done()
	if a.createPCIeDevice == nil {
		return a.missing()
	}
	return a.createPCIeDevice(info, device)
}

// ReleaseDevice releases device and drops any notification callbacks
// registered for it. The handle is invalid afterwards whatever the status.
func ReleaseDevice(device DeviceHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseDevice == nil {
		return a.missing()
	}
	s := a.releaseDevice(device)
	notifications.forgetDevice(device)
	return s
}

func DeviceGetTypeByDeviceID(id *DeviceID, typ *DeviceType) Status {
	a, done := enter()
	defer done()
	if a.deviceGetTypeByDeviceID == nil {
		return a.missing()
	}
	return a.deviceGetTypeByDeviceID(id, typ)
}

// Device identification.

func Identify(device DeviceHandle, identity *DeviceIdentity) Status {
	a, done := enter()
	defer done()
	if a.identify == nil {
		return a.missing()
	}
	return a.identify(device, identity)
}

func CoreIdentify(device DeviceHandle, info *CoreInformation) Status {
	a, done := enter()
	defer done()
	if a.coreIdentify == nil {
		return a.missing()
	}
	return a.coreIdentify(device, info)
}

func GetExtendedDeviceInformation(device DeviceHandle, info *ExtendedDeviceInformation) Status {
	a, done := enter()
	defer done()
	if a.getExtendedDeviceInformation == nil {
		return a.missing()
	}
	return a.getExtendedDeviceInformation(device, info)
}

func GetDeviceID(device DeviceHandle, id *DeviceID) Status {
	a, done := enter()
	defer done()
	if a.getDeviceID == nil {
		return a.missing()
	}
	return a.getDeviceID(device, id)
}

func GetDriverVersion(device DeviceHandle, v *Version) Status {
	a, done := enter()
	defer done()
	if a.getDriverVersion == nil {
		return a.missing()
	}
	return a.getDriverVersion(device, v)
}

// Firmware and system control.

// SetFWLogger sets the firmware log level. interfaceMask is a bit set of
// 1<<FWLoggerInterface values.
func SetFWLogger(device DeviceHandle, level FWLoggerLevel, interfaceMask uint32) Status {
	a, done := enter()
	defer done()
	if a.setFWLogger == nil {
		return a.missing()
	}
	return a.setFWLogger(device, level, interfaceMask)
}

func SetThrottlingState(device DeviceHandle, active bool) Status {
	a, done := enter()
	defer done()
	if a.setThrottlingState == nil {
		return a.missing()
	}
	return a.setThrottlingState(device, active)
}

func GetThrottlingState(device DeviceHandle, active *bool) Status {
	a, done := enter()
	defer done()
	if a.getThrottlingState == nil {
		return a.missing()
	}
	return a.getThrottlingState(device, active)
}

func WDEnable(device DeviceHandle, cpu CPUID) Status {
	a, done := enter()
	defer done()
	if a.wdEnable == nil {
		return a.missing()
	}
	return a.wdEnable(device, cpu)
}

func WDDisable(device DeviceHandle, cpu CPUID) Status {
	a, done := enter()
	defer done()
	if a.wdDisable == nil {
		return a.missing()
	}
	return a.wdDisable(device, cpu)
}

func WDConfig(device DeviceHandle, cpu CPUID, cycles uint32, mode WatchdogMode) Status {
	a, done := enter()
	defer done()
	if a.wdConfig == nil {
		return a.missing()
	}
	return a.wdConfig(device, cpu, cycles, mode)
}

func GetPreviousSystemState(device DeviceHandle, cpu CPUID, state *uint32) Status {
	a, done := enter()
	defer done()
	if a.getPreviousSystemState == nil {
		return a.missing()
	}
	return a.getPreviousSystemState(device, cpu, state)
}

func SetPauseFrames(device DeviceHandle, enable bool) Status {
	a, done := enter()
	defer done()
	if a.setPauseFrames == nil {
		return a.missing()
	}
	return a.setPauseFrames(device, enable)
}

func GetChipTemperature(device DeviceHandle, info *ChipTemperatureInfo) Status {
	a, done := enter()
	defer done()
	if a.getChipTemperature == nil {
		return a.missing()
	}
	return a.getChipTemperature(device, info)
}

func ResetDevice(device DeviceHandle, mode ResetDeviceMode) Status {
	a, done := enter()
	defer done()
	if a.resetDevice == nil {
		return a.missing()
	}
	return a.resetDevice(device, mode)
}

func UpdateFirmware(device DeviceHandle, buf *byte, size uint32) Status {
	a, done := enter()
	defer done()
	if a.updateFirmware == nil {
		return a.missing()
	}
	return a.updateFirmware(device, buf, size)
}

func UpdateSecondStage(device DeviceHandle, buf *byte, size uint32) Status {
	a, done := enter()
	defer done()
	if a.updateSecondStage == nil {
		return a.missing()
	}
	return a.updateSecondStage(device, buf, size)
}

// Sensors and ISP.

func ResetSensor(device DeviceHandle, section uint8) Status {
	a, done := enter()
	defer done()
	if a.resetSensor == nil {
		return a.missing()
	}
	return a.resetSensor(device, section)
}

func SetSensorI2CBusIndex(device DeviceHandle, sensor SensorType, bus uint8) Status {
	a, done := enter()
	defer done()
	if a.setSensorI2CBusIndex == nil {
		return a.missing()
	}
	return a.setSensorI2CBusIndex(device, sensor, bus)
}

func LoadAndStartSensor(device DeviceHandle, section uint8) Status {
	a, done := enter()
	defer done()
	if a.loadAndStartSensor == nil {
		return a.missing()
	}
	return a.loadAndStartSensor(device, section)
}

func DumpSensorConfig(device DeviceHandle, section uint8, path *byte) Status {
	a, done := enter()
	defer done()
	if a.dumpSensorConfig == nil {
		return a.missing()
	}
	return a.dumpSensorConfig(device, section, path)
}

func StoreSensorConfig(device DeviceHandle, section uint32, sensor SensorType, resetConfigSize uint32,
	height, width, fps uint16, path, name *byte) Status {
	a, done := enter()
	defer done()
	if a.storeSensorConfig == nil {
		return a.missing()
	}
	return a.storeSensorConfig(device, section, sensor, resetConfigSize, height, width, fps, path, name)
}

func StoreISPConfig(device DeviceHandle, resetConfigSize uint32, height, width, fps uint16,
	staticPath, runtimePath, name *byte) Status {
	a, done := enter()
	defer done()
	if a.storeISPConfig == nil {
		return a.missing()
	}
	return a.storeISPConfig(device, resetConfigSize, height, width, fps, staticPath, runtimePath, name)
}

// I2C.

func I2CRead(device DeviceHandle, cfg *I2CSlaveConfig, register uint32, data *byte, length uint32) Status {
	a, done := enter()
	defer done()
	if a.i2cRead == nil {
		return a.missing()
	}
	return a.i2cRead(device, cfg, register, data, length)
}

func I2CWrite(device DeviceHandle, cfg *I2CSlaveConfig, register uint32, data *byte, length uint32) Status {
	a, done := enter()
	defer done()
	if a.i2cWrite == nil {
		return a.missing()
	}
	return a.i2cWrite(device, cfg, register, data, length)
}

func TestChipMemories(device DeviceHandle) Status {
	a, done := enter()
	defer done()
	if a.testChipMemories == nil {
		return a.missing()
	}
	return a.testChipMemories(device)
}

// Power measurement.

func PowerMeasurement(device DeviceHandle, dvm DVMOptions, typ PowerMeasurementType, value *float32) Status {
	a, done := enter()
	defer done()
	if a.powerMeasurement == nil {
		return a.missing()
	}
	return a.powerMeasurement(device, dvm, typ, value)
}

func StartPowerMeasurement(device DeviceHandle, avg AveragingFactor, period SamplingPeriod) Status {
	a, done := enter()
	defer done()
	if a.startPowerMeasurement == nil {
		return a.missing()
	}
	return a.startPowerMeasurement(device, avg, period)
}

func SetPowerMeasurement(device DeviceHandle, index MeasurementBufferIndex, dvm DVMOptions, typ PowerMeasurementType) Status {
	a, done := enter()
	defer done()
	if a.setPowerMeasurement == nil {
		return a.missing()
	}
	return a.setPowerMeasurement(device, index, dvm, typ)
}

func GetPowerMeasurement(device DeviceHandle, index MeasurementBufferIndex, shouldClear bool, data *PowerMeasurementData) Status {
	a, done := enter()
	defer done()
	if a.getPowerMeasurement == nil {
		return a.missing()
	}
	return a.getPowerMeasurement(device, index, shouldClear, data)
}

func StopPowerMeasurement(device DeviceHandle) Status {
	a, done := enter()
	defer done()
	if a.stopPowerMeasurement == nil {
		return a.missing()
	}
	return a.stopPowerMeasurement(device)
}

// Health.

func GetHealthInformation(device DeviceHandle, info *HealthInfo) Status {
	a, done := enter()
	defer done()
	if a.getHealthInformation == nil {
		return a.missing()
	}
	return a.getHealthInformation(device, info)
}

func GetPerformanceStats(device DeviceHandle, stats *PerformanceStats) Status {
	a, done := enter()
	defer done()
	if a.getPerformanceStats == nil {
		return a.missing()
	}
	return a.getPerformanceStats(device, stats)
}

func GetHealthStats(device DeviceHandle, stats *HealthStats) Status {
	a, done := enter()
	defer done()
	if a.getHealthStats == nil {
		return a.missing()
	}
	return a.getHealthStats(device, stats)
}

// VDevice.

func InitVDeviceParams(params *VDeviceParams) Status {
	a, done := enter()
	defer done()
	if a.initVDeviceParams == nil {
		return a.missing()
	}
	return a.initVDeviceParams(params)
}

func CreateVDevice(params *VDeviceParams, vdevice *VDeviceHandle) Status {
	a, done := enter()
	defer done()
	if a.createVDevice == nil {
		return a.missing()
	}
	return a.createVDevice(params, vdevice)
}

func ConfigureVDevice(vdevice VDeviceHandle, hef HefHandle, params *ConfigureParams,
	groups *ConfiguredNetworkGroupHandle, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.configureVDevice == nil {
		return a.missing()
	}
	return a.configureVDevice(vdevice, hef, params, groups, count)
}

func GetPhysicalDevices(vdevice VDeviceHandle, devices *DeviceHandle, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.getPhysicalDevices == nil {
		return a.missing()
	}
	return a.getPhysicalDevices(vdevice, devices, count)
}

func VDeviceGetPhysicalDevicesIDs(vdevice VDeviceHandle, ids *DeviceID, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.vdeviceGetPhysicalDevicesIDs == nil {
		return a.missing()
	}
	return a.vdeviceGetPhysicalDevicesIDs(vdevice, ids, count)
}

func ReleaseVDevice(vdevice VDeviceHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseVDevice == nil {
		return a.missing()
	}
	return a.releaseVDevice(vdevice)
}

// HEF.

func CreateHefFile(hef *HefHandle, path *byte) Status {
	a, done := enter()
	defer done()
	if a.createHefFile == nil {
		return a.missing()
	}
	return a.createHefFile(hef, path)
}

func CreateHefBuffer(hef *HefHandle, buf *byte, size uintptr) Status {
	a, done := enter()
	defer done()
	if a.createHefBuffer == nil {
		return a.missing()
	}
	return a.createHefBuffer(hef, buf, size)
}

func ReleaseHef(hef HefHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseHef == nil {
		return a.missing()
	}
	return a.releaseHef(hef)
}

// HefGetStreamInfos lists the raw streams of a network group. A nil name
// selects the only network group of the HEF.
func HefGetStreamInfos(hef HefHandle, name *byte, infos *StreamInfo, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.hefGetStreamInfos == nil {
		return a.missing()
	}
	return a.hefGetStreamInfos(hef, name, infos, count)
}

func HefGetVStreamInfos(hef HefHandle, name *byte, infos *VStreamInfo, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.hefGetVStreamInfos == nil {
		return a.missing()
	}
	return a.hefGetVStreamInfos(hef, name, infos, count)
}

func HefGetNetworkGroupInfos(hef HefHandle, infos *NetworkGroupInfo, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.hefGetNetworkGroupInfos == nil {
		return a.missing()
	}
	return a.hefGetNetworkGroupInfos(hef, infos, count)
}

func HefGetNetworkInfos(hef HefHandle, group *byte, infos *NetworkInfo, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.hefGetNetworkInfos == nil {
		return a.missing()
	}
	return a.hefGetNetworkInfos(hef, group, infos, count)
}

// Configuration.

func InitConfigureParamsByDevice(device DeviceHandle, hef HefHandle, params *ConfigureParams) Status {
	a, done := enter()
	defer done()
	if a.initConfigureParamsByDevice == nil {
		return a.missing()
	}
	return a.initConfigureParamsByDevice(device, hef, params)
}

func InitConfigureParamsByVDevice(vdevice VDeviceHandle, hef HefHandle, params *ConfigureParams) Status {
	a, done := enter()
	defer done()
	if a.initConfigureParamsByVDevice == nil {
		return a.missing()
	}
	return a.initConfigureParamsByVDevice(vdevice, hef, params)
}

func ConfigureDevice(device DeviceHandle, hef HefHandle, params *ConfigureParams,
	groups *ConfiguredNetworkGroupHandle, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.configureDevice == nil {
		return a.missing()
	}
	return a.configureDevice(device, hef, params, groups, count)
}

// Network group activation.

// ActivateNetworkGroup activates group. params may be nil.
func ActivateNetworkGroup(group ConfiguredNetworkGroupHandle, params *ActivateNetworkGroupParams,
	activated *ActivatedNetworkGroupHandle) Status {
	a, done := enter()
	defer done()
	if a.activateNetworkGroup == nil {
		return a.missing()
	}
	return a.activateNetworkGroup(group, params, activated)
}

func DeactivateNetworkGroup(activated ActivatedNetworkGroupHandle) Status {
	a, done := enter()
	defer done()
	if a.deactivateNetworkGroup == nil {
		return a.missing()
	}
	return a.deactivateNetworkGroup(activated)
}

func ReleaseNetworkGroup(group ConfiguredNetworkGroupHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseNetworkGroup == nil {
		return a.missing()
	}
	return a.releaseNetworkGroup(group)
}

func GetNetworkGroupInfo(group ConfiguredNetworkGroupHandle, info *NetworkGroupInfo) Status {
	a, done := enter()
	defer done()
	if a.getNetworkGroupInfo == nil {
		return a.missing()
	}
	return a.getNetworkGroupInfo(group, info)
}

// Synchronous stream I/O.

func GetInputStreamsByNetwork(activated ActivatedNetworkGroupHandle, network *byte,
	inputs *InputStreamHandle, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.getInputStreamsByNetwork == nil {
		return a.missing()
	}
	return a.getInputStreamsByNetwork(activated, network, inputs, count)
}

func GetOutputStreamsByNetwork(activated ActivatedNetworkGroupHandle, network *byte,
	outputs *OutputStreamHandle, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.getOutputStreamsByNetwork == nil {
		return a.missing()
	}
	return a.getOutputStreamsByNetwork(activated, network, outputs, count)
}

func InputStreamWrite(stream InputStreamHandle, buf *byte, size uintptr) Status {
	a, done := enter()
	defer done()
	if a.inputStreamWrite == nil {
		return a.missing()
	}
	return a.inputStreamWrite(stream, buf, size)
}

func OutputStreamRead(stream OutputStreamHandle, buf *byte, size uintptr) Status {
	a, done := enter()
	defer done()
	if a.outputStreamRead == nil {
		return a.missing()
	}
	return a.outputStreamRead(stream, buf, size)
}

// StreamGetInfo describes an input stream (C hailo_stream_get_info).
func StreamGetInfo(stream InputStreamHandle, info *StreamInfo) Status {
	a, done := enter()
	defer done()
	if a.streamGetInfo == nil {
		return a.missing()
	}
	return a.streamGetInfo(stream, info)
}

func OutputStreamGetInfo(stream OutputStreamHandle, info *StreamInfo) Status {
	a, done := enter()
	defer done()
	if a.outputStreamGetInfo == nil {
		return a.missing()
	}
	return a.outputStreamGetInfo(stream, info)
}

// Quantization.

func GetOutputStreamQuantInfos(stream OutputStreamHandle, infos *QuantInfo, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.getOutputStreamQuantInfos == nil {
		return a.missing()
	}
	return a.getOutputStreamQuantInfos(stream, infos, count)
}

func GetOutputVStreamQuantInfos(vstream OutputVStreamHandle, infos *QuantInfo, count *uintptr) Status {
	a, done := enter()
	defer done()
	if a.getOutputVStreamQuantInfos == nil {
		return a.missing()
	}
	return a.getOutputVStreamQuantInfos(vstream, infos, count)
}

// Transform contexts.

func CreateInputTransformContext(stream InputStreamHandle, params *TransformParams,
	ctx *InputTransformContextHandle) Status {
	a, done := enter()
	defer done()
	if a.createInputTransformContext == nil {
		return a.missing()
	}
	return a.createInputTransformContext(stream, params, ctx)
}

func CreateOutputTransformContext(stream OutputStreamHandle, params *TransformParams,
	ctx *OutputTransformContextHandle) Status {
	a, done := enter()
	defer done()
	if a.createOutputTransformContext == nil {
		return a.missing()
	}
	return a.createOutputTransformContext(stream, params, ctx)
}

func InputTransformContextWrite(ctx InputTransformContextHandle, buf *byte, size uintptr) Status {
	a, done := enter()
	defer done()
	if a.inputTransformContextWrite == nil {
		return a.missing()
	}
	return a.inputTransformContextWrite(ctx, buf, size)
}

func OutputTransformContextRead(ctx OutputTransformContextHandle, buf *byte, size uintptr) Status {
	a, done := enter()
	defer done()
	if a.outputTransformContextRead == nil {
		return a.missing()
	}
	return a.outputTransformContextRead(ctx, buf, size)
}

func ReleaseInputTransformContext(ctx InputTransformContextHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseInputTransformContext == nil {
		return a.missing()
	}
	return a.releaseInputTransformContext(ctx)
}

func ReleaseOutputTransformContext(ctx OutputTransformContextHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseOutputTransformContext == nil {
		return a.missing()
	}
	return a.releaseOutputTransformContext(ctx)
}

// Output demuxer.

func CreateOutputDemuxer(stream OutputStreamHandle, params *DemuxParams, demuxer *OutputDemuxerHandle) Status {
	a, done := enter()
	defer done()
	if a.createOutputDemuxer == nil {
		return a.missing()
	}
	return a.createOutputDemuxer(stream, params, demuxer)
}

func OutputDemuxerRead(demuxer OutputDemuxerHandle, buf *byte, size uintptr, actual *uintptr) Status {
	a, done := enter()
	defer done()
	if a.outputDemuxerRead == nil {
		return a.missing()
	}
	return a.outputDemuxerRead(demuxer, buf, size, actual)
}

func ReleaseOutputDemuxer(demuxer OutputDemuxerHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseOutputDemuxer == nil {
		return a.missing()
	}
	return a.releaseOutputDemuxer(demuxer)
}

// Virtual streams.

// CreateInputVStreams creates count vstreams, one per params entry, and
// writes their handles to the count-long array at vstreams.
func CreateInputVStreams(group ConfiguredNetworkGroupHandle, params *InputVStreamParamsByName, count uintptr,
	vstreams *InputVStreamHandle) Status {
	a, done := enter()
	defer done()
	if a.createInputVStreams == nil {
		return a.missing()
	}
	return a.createInputVStreams(group, params, count, vstreams)
}

func CreateOutputVStreams(group ConfiguredNetworkGroupHandle, params *OutputVStreamParamsByName, count uintptr,
	vstreams *OutputVStreamHandle) Status {
	a, done := enter()
	defer done()
	if a.createOutputVStreams == nil {
		return a.missing()
	}
	return a.createOutputVStreams(group, params, count, vstreams)
}

func ReleaseInputVStream(vstream InputVStreamHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseInputVStream == nil {
		return a.missing()
	}
	return a.releaseInputVStream(vstream)
}

func ReleaseOutputVStream(vstream OutputVStreamHandle) Status {
	a, done := enter()
	defer done()
	if a.releaseOutputVStream == nil {
		return a.missing()
	}
	return a.releaseOutputVStream(vstream)
}

func InputVStreamWrite(vstream InputVStreamHandle, buf *byte, size uintptr) Status {
	a, done := enter()
	defer done()
	if a.inputVStreamWrite == nil {
		return a.missing()
	}
	return a.inputVStreamWrite(vstream, buf, size)
}

func OutputVStreamRead(vstream OutputVStreamHandle, buf *byte, size uintptr) Status {
	a, done := enter()
	defer done()
	if a.outputVStreamRead == nil {
		return a.missing()
	}
	return a.outputVStreamRead(vstream, buf, size)
}

func InputVStreamGetInfo(vstream InputVStreamHandle, info *VStreamInfo) Status {
	a, done := enter()
	defer done()
	if a.inputVStreamGetInfo == nil {
		return a.missing()
	}
	return a.inputVStreamGetInfo(vstream, info)
}

func OutputVStreamGetInfo(vstream OutputVStreamHandle, info *VStreamInfo) Status {
	a, done := enter()
	defer done()
	if a.outputVStreamGetInfo == nil {
		return a.missing()
	}
	return a.outputVStreamGetInfo(vstream, info)
}

func InputVStreamFlush(vstream InputVStreamHandle) Status {
	a, done := enter()
	defer done()
	if a.inputVStreamFlush == nil {
		return a.missing()
	}
	return a.inputVStreamFlush(vstream)
}

func InputVStreamClear(vstream InputVStreamHandle) Status {
	a, done := enter()
	defer done()
	if a.inputVStreamClear == nil {
		return a.missing()
	}
	return a.inputVStreamClear(vstream)
}

// GetDefaultVStreamParams fills params with the library defaults for a
// vstream described by info, using format as the user buffer format.
func GetDefaultVStreamParams(info *VStreamInfo, format Format, dir StreamDirection, params *VStreamParams) Status {
	a, done := enter()
	defer done()
	if a.getDefaultVStreamParams == nil {
		return a.missing()
	}
	return callDefaultVStreamParams(a.getDefaultVStreamParams, info, format, dir, params)
}

func InputVStreamGetLatencyMeasurement(vstream InputVStreamHandle, result *LatencyMeasurementResult) Status {
	a, done := enter()
	defer done()
	if a.inputVStreamGetLatency == nil {
		return a.missing()
	}
	return a.inputVStreamGetLatency(vstream, result)
}
