package hailort

import "math"

// Name and identifier capacities. These size the fixed char arrays in the
// records below, so changing one reshapes every record that embeds it.
const (
	MaxNameSize             = 128
	MaxStreamNameSize       = MaxNameSize
	MaxNetworkGroupNameSize = MaxNameSize
	// MaxNetworkNameSize holds "<network group>/<network>" plus the separator.
	MaxNetworkNameSize = MaxNetworkGroupNameSize + 1 + MaxNameSize

	MaxBoardNameLength    = 32
	MaxDeviceIDLength     = 32
	MaxSerialNumberLength = 16
	MaxPartNumberLength   = 16
	MaxProductNameLength  = 42
)

// Topology limits.
const (
	MaxStreamsCount           = 40
	MaxNetworkGroups          = 8
	MaxNetworksInNetworkGroup = 8
)

// Hardware identifier lengths.
const (
	SocIDLength                          = 32
	EthMACLength                         = 6
	UnitLevelTrackingBytesLength         = 12
	SocPMValuesBytesLength               = 24
	MaxTemperatureThrottlingLevelsNumber = 4
)

// Image buffer limits.
const (
	MaxNumberOfPlanes      = 4
	NumberOfPlanesNV12NV21 = 2
	NumberOfPlanesI420     = 3
)

// Sentinels.
const (
	Infinite      uint32 = math.MaxUint32
	PCIeAnyDomain uint32 = math.MaxUint32
	RandomSeed    uint32 = math.MaxUint32
)

// Library defaults.
const (
	DefaultBatchSize             uint16 = 0
	DefaultVStreamQueueSize      uint32 = 2
	DefaultVStreamTimeoutMs      uint32 = 10000
	DefaultAsyncInferTimeoutMs   uint32 = 10000
	DefaultAsyncInferQueueSize   uint32 = 2
	DefaultDeviceCount           uint32 = 1
	DefaultEthScanTimeoutMs      uint32 = 10000
	DefaultEthDevicePort         uint16 = 0
	DefaultEthMaxPayloadSize     uint32 = 1456
	DefaultEthMaxNumberOfRetries uint32 = 3
)

// Scheduler priority range.
const (
	SchedulerPriorityNormal uint8 = 16
	SchedulerPriorityMax    uint8 = 31
	SchedulerPriorityMin    uint8 = 0
)
