package hailort

// Records in this file mirror the structs of <hailo/hailort.h> field for
// field. Go lays out these primitive types exactly like C does on the
// supported 64-bit targets, so each type can be passed by pointer straight
// to the library. VerifyABI checks every one of them against the C rules.
//
// C char/uint8_t arrays are [N]byte, size_t and pointers the library reads
// during a call are uintptr, C enums are the open int32 types of enums.go.

type Version struct {
	Major    uint32
	Minor    uint32
	Revision uint32
}

type FirmwareVersion struct {
	Major    uint32
	Minor    uint32
	Revision uint32
}

type PCIeDeviceInfo struct {
	Domain uint32
	Bus    uint32
	Device uint32
	Func   uint32
}

type DeviceID struct {
	ID [MaxDeviceIDLength]byte
}

type DeviceIdentity struct {
	ProtocolVersion             uint32
	FWVersion                   FirmwareVersion
	LoggerVersion               uint32
	BoardNameLength             uint8
	BoardName                   [MaxBoardNameLength]byte
	IsRelease                   bool
	ExtendedContextSwitchBuffer bool
	ExtendedFWCheck             bool
	DeviceArchitecture          DeviceArchitecture
	SerialNumberLength          uint8
	SerialNumber                [MaxSerialNumberLength]byte
	PartNumberLength            uint8
	PartNumber                  [MaxPartNumberLength]byte
	ProductNameLength           uint8
	ProductName                 [MaxProductNameLength]byte
}

type CoreInformation struct {
	IsRelease                   bool
	ExtendedContextSwitchBuffer bool
	ExtendedFWCheck             bool
	FWVersion                   FirmwareVersion
}

type DeviceSupportedFeatures struct {
	Ethernet          bool
	MIPI              bool
	PCIe              bool
	CurrentMonitoring bool
	MDIO              bool
	PowerMeasurement  bool
}

type ExtendedDeviceInformation struct {
	NeuralNetworkCoreClockRate uint32
	SupportedFeatures          DeviceSupportedFeatures
	BootSource                 DeviceBootSource
	SocID                      [SocIDLength]byte
	LCS                        uint8
	EthMACAddress              [EthMACLength]byte
	UnitLevelTrackingID        [UnitLevelTrackingBytesLength]byte
	SocPMValues                [SocPMValuesBytesLength]byte
	GPIOMask                   uint16
}

type FWUserConfigInformation struct {
	Version    uint32
	EntryCount uint32
	TotalSize  uint32
}

// VDeviceParams points at caller memory: DeviceIDs at DeviceCount DeviceID
// records (0 lets the library pick) and GroupID at a NUL-terminated string
// (0 for the default group). Both must stay valid and pinned for the
// duration of CreateVDevice.
type VDeviceParams struct {
	DeviceCount         uint32
	DeviceIDs           uintptr
	SchedulingAlgorithm SchedulingAlgorithm
	GroupID             uintptr
	MultiProcessService bool
}

type Format struct {
	Type  FormatType
	Order FormatOrder
	Flags FormatFlags
}

type QuantInfo struct {
	QpZp       float32
	QpScale    float32
	LimvalsMin float32
	LimvalsMax float32
}

type TransformParams struct {
	TransformMode    StreamTransformMode
	UserBufferFormat Format
}

type DemuxParams struct {
	_ uint8
}

type PCIeInputStreamParams struct {
	_ uint8
}

type PCIeOutputStreamParams struct {
	_ uint8
}

type IntegratedInputStreamParams struct {
	_ uint8
}

type IntegratedOutputStreamParams struct {
	_ uint8
}

// StreamParameters carries an interface-specific union selected by
// StreamInterface and Direction; see the accessors in unions.go.
type StreamParameters struct {
	StreamInterface StreamInterface
	Direction       StreamDirection
	Flags           StreamFlags
	params          [1]uint8
}

type StreamParametersByName struct {
	Name         [MaxStreamNameSize]byte
	StreamParams StreamParameters
}

type VStreamParams struct {
	UserBufferFormat           Format
	TimeoutMs                  uint32
	QueueSize                  uint32
	VStreamStatsFlags          VStreamStatsFlags
	PipelineElementsStatsFlags PipelineElemStatsFlags
}

type InputVStreamParamsByName struct {
	Name   [MaxStreamNameSize]byte
	Params VStreamParams
}

type OutputVStreamParamsByName struct {
	Name   [MaxStreamNameSize]byte
	Params VStreamParams
}

type OutputVStreamNameByGroup struct {
	Name               [MaxStreamNameSize]byte
	PipelineGroupIndex uint8
}

type ImageShape3D struct {
	Height   uint32
	Width    uint32
	Features uint32
}

// PixBufferPlane holds a user pointer or a dmabuf fd depending on the
// enclosing PixBuffer's MemoryType.
type PixBufferPlane struct {
	BytesUsed uint32
	PlaneSize uint32
	ptr       [1]uint64
}

type PixBuffer struct {
	Index          uint32
	Planes         [MaxNumberOfPlanes]PixBufferPlane
	NumberOfPlanes uint32
	MemoryType     PixBufferMemoryType
}

type DMABuffer struct {
	FD   int32
	Size uintptr
}

type BufferParameters struct {
	Flags BufferFlags
}

type NMSDefuseInfo struct {
	ClassGroupIndex uint32
	OriginalName    [MaxStreamNameSize]byte
}

type NMSInfo struct {
	NumberOfClasses   uint32
	MaxBboxesPerClass uint32
	MaxBboxesTotal    uint32
	BboxSize          uint32
	ChunksPerFrame    uint32
	BurstSize         uint32
	IsDefused         bool
	DefuseInfo        NMSDefuseInfo
	BurstType         NMSBurstType
}

type NMSFuseInput struct {
	Buffer  uintptr
	Size    uintptr
	NMSInfo NMSInfo
}

type NMSShape struct {
	NumberOfClasses        uint32
	MaxBboxesPerClass      uint32
	MaxBboxesTotal         uint32
	MaxAccumulatedMaskSize uint32
}

type BBox struct {
	YMin  uint16
	XMin  uint16
	YMax  uint16
	XMax  uint16
	Score uint16
}

type BBoxFloat32 struct {
	YMin  float32
	XMin  float32
	YMax  float32
	XMax  float32
	Score float32
}

type Rectangle struct {
	YMin float32
	XMin float32
	YMax float32
	XMax float32
}

type Detection struct {
	YMin    float32
	XMin    float32
	YMax    float32
	XMax    float32
	Score   float32
	ClassID uint16
}

// DetectionWithByteMask describes one detection of a
// HAILO_NMS_WITH_BYTE_MASK output. Mask is deprecated upstream; use
// MaskOffset through ByteMaskDetectionsView.
type DetectionWithByteMask struct {
	Box        Rectangle
	Score      float32
	ClassID    uint16
	MaskSize   uintptr
	Mask       uintptr
	MaskOffset uintptr
}

type StreamWriteAsyncCompletionInfo struct {
	Status     Status
	BufferAddr uintptr
	BufferSize uintptr
	Opaque     uintptr
}

type StreamReadAsyncCompletionInfo struct {
	Status     Status
	BufferAddr uintptr
	BufferSize uintptr
	Opaque     uintptr
}

type RxErrorNotificationMessage struct {
	Error         uint32
	QueueNumber   uint32
	RxErrorsCount uint32
}

type DebugNotificationMessage struct {
	ConnectionStatus uint32
	ConnectionType   uint32
	VDMAIsActive     uint32
	HostPort         uint32
	HostIPAddr       uint32
}

type HealthMonitorDataflowShutdownNotificationMessage struct {
	TS0Temperature float32
	TS1Temperature float32
}

type HealthMonitorTemperatureAlarmNotificationMessage struct {
	TemperatureZone TemperatureZone
	AlarmTSID       uint32
	TS0Temperature  float32
	TS1Temperature  float32
}

type HealthMonitorOvercurrentAlertNotificationMessage struct {
	OvercurrentZone                   OvercurrentZone
	ExceededAlertThreshold            float32
	IsLastOvercurrentViolationReached bool
}

type HealthMonitorLCUECCErrorNotificationMessage struct {
	ClusterError uint16
}

type HealthMonitorCPUECCNotificationMessage struct {
	MemoryBitmap uint32
}

type ContextSwitchBreakpointReachedMessage struct {
	NetworkGroupIndex uint8
	BatchIndex        uint32
	ContextIndex      uint16
	ActionIndex       uint16
}

type HealthMonitorClockChangedNotificationMessage struct {
	PreviousClock uint32
	CurrentClock  uint32
}

type HWInferManagerInferDoneNotificationMessage struct {
	InferCycles uint32
}

type StartUpdateCacheOffsetNotificationMessage struct {
	CacheIDBitmask uint64
}

type ContextSwitchRunTimeErrorMessage struct {
	ExitStatus        uint32
	NetworkGroupIndex uint8
	BatchIndex        uint16
	ContextIndex      uint16
	ActionIndex       uint16
}

type ThrottlingStateChangeMessage struct {
	NewState uint16
}

// Notification is delivered to notification callbacks. Body is a union
// selected by ID; read it with Payload.
type Notification struct {
	ID       NotificationID
	Sequence uint32
	body     [3]uint64
}

type StreamInfoShapes struct {
	Shape   ImageShape3D
	HWShape ImageShape3D
}

// StreamInfo holds either tensor shapes or NMSInfo depending on
// Format.Order; see Shapes and NMSInfo.
type StreamInfo struct {
	shape       [41]uint32
	HWDataBytes uint32
	HWFrameSize uint32
	Format      Format
	Direction   StreamDirection
	Index       uint8
	Name        [MaxStreamNameSize]byte
	QuantInfo   QuantInfo
	IsMux       bool
}

// VStreamInfo holds either a 3D shape or an NMSShape depending on
// Format.Order; see Shape and NMSShape.
type VStreamInfo struct {
	Name        [MaxStreamNameSize]byte
	NetworkName [MaxNetworkNameSize]byte
	Direction   StreamDirection
	Format      Format
	shape       [4]uint32
	QuantInfo   QuantInfo
}

type PowerMeasurementData struct {
	AverageValue                 float32
	AverageTimeValueMilliseconds float32
	MinValue                     float32
	MaxValue                     float32
	TotalNumberOfSamples         uint32
}

type ChipTemperatureInfo struct {
	TS0Temperature float32
	TS1Temperature float32
	SampleCount    uint16
}

type ThrottlingLevel struct {
	TemperatureThreshold           float32
	HysteresisTemperatureThreshold float32
	ThrottlingNNClockFreq          uint32
}

type HealthInfo struct {
	OvercurrentProtectionActive          bool
	CurrentOvercurrentZone               uint8
	RedOvercurrentThreshold              float32
	OvercurrentThrottlingActive          bool
	TemperatureThrottlingActive          bool
	CurrentTemperatureZone               uint8
	CurrentTemperatureThrottlingLevel    int8
	TemperatureThrottlingLevels          [MaxTemperatureThrottlingLevelsNumber]ThrottlingLevel
	OrangeTemperatureThreshold           int32
	OrangeHysteresisTemperatureThreshold int32
	RedTemperatureThreshold              int32
	RedHysteresisTemperatureThreshold    int32
	RequestedOvercurrentClockFreq        uint32
	RequestedTemperatureClockFreq        uint32
}

type PerformanceStats struct {
	CPUUtilization          float32
	RAMSizeTotal            int64
	RAMSizeUsed             int64
	NNCUtilization          float32
	DDRNocTotalTransactions int32
	DSPUtilization          int32
}

type HealthStats struct {
	OnDieTemperature float32
	OnDieVoltage     int32
	BistFailureMask  int32
}

type NetworkParameters struct {
	BatchSize uint16
}

type NetworkParametersByName struct {
	Name          [MaxNetworkNameSize]byte
	NetworkParams NetworkParameters
}

type ConfigureNetworkGroupParams struct {
	Name                     [MaxNetworkGroupNameSize]byte
	BatchSize                uint16
	PowerMode                PowerMode
	Latency                  LatencyMeasurementFlags
	EnableKVCache            bool
	StreamParamsByNameCount  uintptr
	StreamParamsByName       [MaxStreamsCount]StreamParametersByName
	NetworkParamsByNameCount uintptr
	NetworkParamsByName      [MaxNetworksInNetworkGroup]NetworkParametersByName
}

// ConfigureParams is about 64KB; allocate it rather than keeping it on a
// hot goroutine stack.
type ConfigureParams struct {
	NetworkGroupParamsCount uintptr
	NetworkGroupParams      [MaxNetworkGroups]ConfigureNetworkGroupParams
}

type ActivateNetworkGroupParams struct {
	_ uint8
}

type NetworkGroupInfo struct {
	Name           [MaxNetworkGroupNameSize]byte
	IsMultiContext bool
}

type LayerName struct {
	Name [MaxStreamNameSize]byte
}

type NetworkInfo struct {
	Name [MaxNetworkNameSize]byte
}

type StreamRawBuffer struct {
	Buffer uintptr
	Size   uintptr
}

type StreamRawBufferByName struct {
	Name      [MaxStreamNameSize]byte
	RawBuffer StreamRawBuffer
}

type LatencyMeasurementResult struct {
	AvgHWLatencyMs float64
}

type RateLimit struct {
	StreamName [MaxStreamNameSize]byte
	Rate       uint32
}

type I2CSlaveConfig struct {
	Endianness          Endianness
	SlaveAddress        uint16
	RegisterAddressSize uint8
	BusIndex            uint8
	ShouldHoldBus       bool
}
