package hailort

import (
	"fmt"
	"math"
)

// Every foreign enum is an open int32: a library newer than this binding may
// hand back a discriminant that has no name here, and it must still be
// representable and forwardable unchanged.

// autoValue is the discriminant HailoRT reserves for "let the library decide".
const autoValue = math.MaxInt32

type DVMOptions int32

const (
	DVMOptionsVDDCore               DVMOptions = 0
	DVMOptionsVDDIO                 DVMOptions = 1
	DVMOptionsMIPIAVDD              DVMOptions = 2
	DVMOptionsMIPIAVDDH             DVMOptions = 3
	DVMOptionsUSBAVDDIO             DVMOptions = 4
	DVMOptionsVDDTop                DVMOptions = 5
	DVMOptionsUSBAVDDIOHV           DVMOptions = 6
	DVMOptionsAVDDH                 DVMOptions = 7
	DVMOptionsSDIOVDDIO             DVMOptions = 8
	DVMOptionsOvercurrentProtection DVMOptions = 9
	DVMOptionsCount                 DVMOptions = 10
	DVMOptionsAuto                  DVMOptions = autoValue
)

type PowerMeasurementType int32

const (
	PowerMeasurementShuntVoltage PowerMeasurementType = 0
	PowerMeasurementBusVoltage   PowerMeasurementType = 1
	PowerMeasurementPower        PowerMeasurementType = 2
	PowerMeasurementCurrent      PowerMeasurementType = 3
	PowerMeasurementCount        PowerMeasurementType = 4
	PowerMeasurementAuto         PowerMeasurementType = autoValue
)

type SamplingPeriod int32

const (
	SamplingPeriod140us  SamplingPeriod = 0
	SamplingPeriod204us  SamplingPeriod = 1
	SamplingPeriod332us  SamplingPeriod = 2
	SamplingPeriod588us  SamplingPeriod = 3
	SamplingPeriod1100us SamplingPeriod = 4
	SamplingPeriod2116us SamplingPeriod = 5
	SamplingPeriod4156us SamplingPeriod = 6
	SamplingPeriod8244us SamplingPeriod = 7
)

type AveragingFactor int32

const (
	AverageFactor1    AveragingFactor = 0
	AverageFactor4    AveragingFactor = 1
	AverageFactor16   AveragingFactor = 2
	AverageFactor64   AveragingFactor = 3
	AverageFactor128  AveragingFactor = 4
	AverageFactor256  AveragingFactor = 5
	AverageFactor512  AveragingFactor = 6
	AverageFactor1024 AveragingFactor = 7
)

type MeasurementBufferIndex int32

const (
	MeasurementBufferIndex0 MeasurementBufferIndex = 0
	MeasurementBufferIndex1 MeasurementBufferIndex = 1
	MeasurementBufferIndex2 MeasurementBufferIndex = 2
	MeasurementBufferIndex3 MeasurementBufferIndex = 3
)

type PowerMode int32

const (
	PowerModePerformance      PowerMode = 0
	PowerModeUltraPerformance PowerMode = 1
)

type DeviceType int32

const (
	DeviceTypePCIe       DeviceType = 0
	DeviceTypeEth        DeviceType = 1
	DeviceTypeIntegrated DeviceType = 2
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypePCIe:
		return "PCIE"
	case DeviceTypeEth:
		return "ETH"
	case DeviceTypeIntegrated:
		return "INTEGRATED"
	}
	return fmt.Sprintf("DeviceType(%d)", int32(t))
}

type DeviceArchitecture int32

const (
	ArchHailo8A0 DeviceArchitecture = 0
	ArchHailo8   DeviceArchitecture = 1
	ArchHailo8L  DeviceArchitecture = 2
	ArchHailo15H DeviceArchitecture = 3
	ArchHailo15L DeviceArchitecture = 4
	ArchHailo15M DeviceArchitecture = 5
	ArchHailo10H DeviceArchitecture = 6
	ArchHailo12L DeviceArchitecture = 7
)

var deviceArchitectureNames = map[DeviceArchitecture]string{
	ArchHailo8A0: "HAILO8_A0",
	ArchHailo8:   "HAILO8",
	ArchHailo8L:  "HAILO8L",
	ArchHailo15H: "HAILO15H",
	ArchHailo15L: "HAILO15L",
	ArchHailo15M: "HAILO15M",
	ArchHailo10H: "HAILO10H",
	ArchHailo12L: "HAILO12L",
}

func (a DeviceArchitecture) String() string {
	if name, ok := deviceArchitectureNames[a]; ok {
		return name
	}
	return fmt.Sprintf("DeviceArchitecture(%d)", int32(a))
}

type DeviceBootSource int32

const (
	BootSourceInvalid DeviceBootSource = 0
	BootSourcePCIe    DeviceBootSource = 1
	BootSourceFlash   DeviceBootSource = 2
)

type CPUID int32

const (
	CPUID0 CPUID = 0
	CPUID1 CPUID = 1
)

type SchedulingAlgorithm int32

const (
	SchedulingAlgorithmNone       SchedulingAlgorithm = 0
	SchedulingAlgorithmRoundRobin SchedulingAlgorithm = 1
)

type ResetDeviceMode int32

const (
	ResetDeviceModeChip       ResetDeviceMode = 0
	ResetDeviceModeNNCore     ResetDeviceMode = 1
	ResetDeviceModeSoft       ResetDeviceMode = 2
	ResetDeviceModeForcedSoft ResetDeviceMode = 3
	ResetDeviceModeReboot     ResetDeviceMode = 4
)

type WatchdogMode int32

const (
	WatchdogModeHWSW   WatchdogMode = 0
	WatchdogModeHWOnly WatchdogMode = 1
)

type Endianness int32

const (
	BigEndian    Endianness = 0
	LittleEndian Endianness = 1
)

type FormatType int32

const (
	FormatTypeAuto    FormatType = 0
	FormatTypeUint8   FormatType = 1
	FormatTypeUint16  FormatType = 2
	FormatTypeFloat32 FormatType = 3
)

func (t FormatType) String() string {
	switch t {
	case FormatTypeAuto:
		return "AUTO"
	case FormatTypeUint8:
		return "UINT8"
	case FormatTypeUint16:
		return "UINT16"
	case FormatTypeFloat32:
		return "FLOAT32"
	}
	return fmt.Sprintf("FormatType(%d)", int32(t))
}

// ElementSize returns the byte width of one element, or 0 for AUTO and
// unnamed types.
func (t FormatType) ElementSize() int {
	switch t {
	case FormatTypeUint8:
		return 1
	case FormatTypeUint16:
		return 2
	case FormatTypeFloat32:
		return 4
	}
	return 0
}

type FormatOrder int32

const (
	FormatOrderAuto                 FormatOrder = 0
	FormatOrderNHWC                 FormatOrder = 1
	FormatOrderNHCW                 FormatOrder = 2
	FormatOrderFCR                  FormatOrder = 3
	FormatOrderF8CR                 FormatOrder = 4
	FormatOrderNHW                  FormatOrder = 5
	FormatOrderNC                   FormatOrder = 6
	FormatOrderBayerRGB             FormatOrder = 7
	FormatOrder12BitBayerRGB        FormatOrder = 8
	FormatOrderHailoNMS             FormatOrder = 9
	FormatOrderRGB888               FormatOrder = 10
	FormatOrderNCHW                 FormatOrder = 11
	FormatOrderYUY2                 FormatOrder = 12
	FormatOrderNV12                 FormatOrder = 13
	FormatOrderNV21                 FormatOrder = 14
	FormatOrderHailoYYUV            FormatOrder = 15
	FormatOrderHailoYYVU            FormatOrder = 16
	FormatOrderRGB4                 FormatOrder = 17
	FormatOrderI420                 FormatOrder = 18
	FormatOrderHailoYYYYUV          FormatOrder = 19
	FormatOrderHailoNMSWithByteMask FormatOrder = 20
	FormatOrderHailoNMSOnChip       FormatOrder = 21
	FormatOrderHailoNMSByClass      FormatOrder = 22
	FormatOrderHailoNMSByScore      FormatOrder = 23
)

var formatOrderNames = [...]string{
	"AUTO", "NHWC", "NHCW", "FCR", "F8CR", "NHW", "NC", "BAYER_RGB",
	"12_BIT_BAYER_RGB", "HAILO_NMS", "RGB888", "NCHW", "YUY2", "NV12", "NV21",
	"HAILO_YYUV", "HAILO_YYVU", "RGB4", "I420", "HAILO_YYYYUV",
	"HAILO_NMS_WITH_BYTE_MASK", "HAILO_NMS_ON_CHIP", "HAILO_NMS_BY_CLASS",
	"HAILO_NMS_BY_SCORE",
}

func (o FormatOrder) String() string {
	if o >= 0 && int(o) < len(formatOrderNames) {
		return formatOrderNames[o]
	}
	return fmt.Sprintf("FormatOrder(%d)", int32(o))
}

// IsNMS reports whether data in this order is an NMS result rather than a
// dense tensor. It selects the live variant of the shape unions in
// StreamInfo and VStreamInfo.
func (o FormatOrder) IsNMS() bool {
	switch o {
	case FormatOrderHailoNMS, FormatOrderHailoNMSWithByteMask, FormatOrderHailoNMSOnChip,
		FormatOrderHailoNMSByClass, FormatOrderHailoNMSByScore:
		return true
	}
	return false
}

type FormatFlags int32

const (
	FormatFlagsNone       FormatFlags = 0
	FormatFlagsQuantized  FormatFlags = 1
	FormatFlagsTransposed FormatFlags = 2
)

// Has reports whether every bit of flag is set.
func (f FormatFlags) Has(flag FormatFlags) bool {
	return f&flag == flag
}

type StreamTransformMode int32

const (
	StreamNoTransform   StreamTransformMode = 0
	StreamTransformCopy StreamTransformMode = 1
)

type StreamDirection int32

const (
	H2DStream StreamDirection = 0
	D2HStream StreamDirection = 1
)

func (d StreamDirection) String() string {
	switch d {
	case H2DStream:
		return "H2D"
	case D2HStream:
		return "D2H"
	}
	return fmt.Sprintf("StreamDirection(%d)", int32(d))
}

type StreamFlags int32

const (
	StreamFlagsNone  StreamFlags = 0
	StreamFlagsAsync StreamFlags = 1
)

func (f StreamFlags) Has(flag StreamFlags) bool {
	return f&flag == flag
}

type StreamInterface int32

const (
	StreamInterfacePCIe       StreamInterface = 0
	StreamInterfaceEth        StreamInterface = 1
	StreamInterfaceMIPI       StreamInterface = 2
	StreamInterfaceIntegrated StreamInterface = 3
)

func (i StreamInterface) String() string {
	switch i {
	case StreamInterfacePCIe:
		return "PCIE"
	case StreamInterfaceEth:
		return "ETH"
	case StreamInterfaceMIPI:
		return "MIPI"
	case StreamInterfaceIntegrated:
		return "INTEGRATED"
	}
	return fmt.Sprintf("StreamInterface(%d)", int32(i))
}

type LatencyMeasurementFlags int32

const (
	LatencyNone          LatencyMeasurementFlags = 0
	LatencyMeasure       LatencyMeasurementFlags = 1
	LatencyClearAfterGet LatencyMeasurementFlags = 2
)

func (f LatencyMeasurementFlags) Has(flag LatencyMeasurementFlags) bool {
	return f&flag == flag
}

type VStreamStatsFlags int32

const (
	VStreamStatsNone           VStreamStatsFlags = 0
	VStreamStatsMeasureFPS     VStreamStatsFlags = 1
	VStreamStatsMeasureLatency VStreamStatsFlags = 2
)

func (f VStreamStatsFlags) Has(flag VStreamStatsFlags) bool {
	return f&flag == flag
}

type PipelineElemStatsFlags int32

const (
	PipelineElemStatsNone             PipelineElemStatsFlags = 0
	PipelineElemStatsMeasureFPS       PipelineElemStatsFlags = 1
	PipelineElemStatsMeasureLatency   PipelineElemStatsFlags = 2
	PipelineElemStatsMeasureQueueSize PipelineElemStatsFlags = 4
)

func (f PipelineElemStatsFlags) Has(flag PipelineElemStatsFlags) bool {
	return f&flag == flag
}

type DMABufferDirection int32

const (
	DMABufferDirectionH2D  DMABufferDirection = 0
	DMABufferDirectionD2H  DMABufferDirection = 1
	DMABufferDirectionBoth DMABufferDirection = 2
)

// BufferFlags values are not bit flags despite the name.
type BufferFlags int32

const (
	BufferFlagsNone         BufferFlags = 0
	BufferFlagsDMA          BufferFlags = 1
	BufferFlagsContinuous   BufferFlags = 2
	BufferFlagsSharedMemory BufferFlags = 3
)

type PixBufferMemoryType int32

const (
	PixBufferMemoryTypeUserPtr PixBufferMemoryType = 0
	PixBufferMemoryTypeDMABuf  PixBufferMemoryType = 1
)

type NMSBurstType int32

const (
	BurstTypeH8BBox      NMSBurstType = 0
	BurstTypeH15BBox     NMSBurstType = 1
	BurstTypeH8PerClass  NMSBurstType = 2
	BurstTypeH15PerClass NMSBurstType = 3
	BurstTypeH15PerFrame NMSBurstType = 4
	BurstTypeCount       NMSBurstType = 5
)

type TemperatureZone int32

const (
	TemperatureZoneGreen  TemperatureZone = 0
	TemperatureZoneOrange TemperatureZone = 1
	TemperatureZoneRed    TemperatureZone = 2
)

type OvercurrentZone int32

const (
	OvercurrentZoneGreen OvercurrentZone = 0
	OvercurrentZoneRed   OvercurrentZone = 1
)

type ThrottlingState int32

const (
	ThrottlingStateNone        ThrottlingState = 0
	ThrottlingState0Light      ThrottlingState = 1
	ThrottlingState1Medium     ThrottlingState = 2
	ThrottlingState2Heavy      ThrottlingState = 3
	ThrottlingState3Severe     ThrottlingState = 4
	ThrottlingState4StreamsOff ThrottlingState = 5
	ThrottlingStateOverheat    ThrottlingState = 6
	ThrottlingStateCount       ThrottlingState = 7
)

type NotificationID int32

const (
	NotificationEthernetRxError                NotificationID = 0
	NotificationHealthMonitorTemperatureAlarm  NotificationID = 1
	NotificationHealthMonitorDataflowShutdown  NotificationID = 2
	NotificationHealthMonitorOvercurrentAlarm  NotificationID = 3
	NotificationLCUECCCorrectableError         NotificationID = 4
	NotificationLCUECCUncorrectableError       NotificationID = 5
	NotificationCPUECCError                    NotificationID = 6
	NotificationCPUECCFatal                    NotificationID = 7
	NotificationDebug                          NotificationID = 8
	NotificationContextSwitchBreakpointReached NotificationID = 9
	NotificationHealthMonitorClockChanged      NotificationID = 10
	NotificationHWInferManagerInferDone        NotificationID = 11
	NotificationContextSwitchRunTimeError      NotificationID = 12
	NotificationNNCoreCRCError                 NotificationID = 13
	NotificationThrottlingStateChange          NotificationID = 14
	NotificationCount                          NotificationID = 15
)

var notificationNames = [...]string{
	"ETHERNET_RX_ERROR",
	"HEALTH_MONITOR_TEMPERATURE_ALARM",
	"HEALTH_MONITOR_DATAFLOW_SHUTDOWN",
	"HEALTH_MONITOR_OVERCURRENT_ALARM",
	"LCU_ECC_CORRECTABLE_ERROR",
	"LCU_ECC_UNCORRECTABLE_ERROR",
	"CPU_ECC_ERROR",
	"CPU_ECC_FATAL",
	"DEBUG",
	"CONTEXT_SWITCH_BREAKPOINT_REACHED",
	"HEALTH_MONITOR_CLOCK_CHANGED_EVENT",
	"HW_INFER_MANAGER_INFER_DONE",
	"CONTEXT_SWITCH_RUN_TIME_ERROR_EVENT",
	"NN_CORE_CRC_ERROR_EVENT",
	"THROTTLING_STATE_CHANGE_EVENT",
}

func (id NotificationID) String() string {
	if id >= 0 && int(id) < len(notificationNames) {
		return notificationNames[id]
	}
	return fmt.Sprintf("NotificationID(%d)", int32(id))
}

type SensorType int32

const (
	SensorTypeGeneric        SensorType = 0
	SensorTypeOnsemiAR0220AT SensorType = 1
	SensorTypeRaspicam       SensorType = 2
	SensorTypeOnsemiAS0149AT SensorType = 3
	SensorTypeHailo8ISP      SensorType = 4
)

type FWLoggerInterface int32

const (
	FWLoggerInterfacePCIe FWLoggerInterface = 0
	FWLoggerInterfaceUART FWLoggerInterface = 1
)

type FWLoggerLevel int32

const (
	FWLoggerLevelTrace FWLoggerLevel = 0
	FWLoggerLevelDebug FWLoggerLevel = 1
	FWLoggerLevelInfo  FWLoggerLevel = 2
	FWLoggerLevelWarn  FWLoggerLevel = 3
	FWLoggerLevelError FWLoggerLevel = 4
	FWLoggerLevelFatal FWLoggerLevel = 5
)
