package hailort

import (
	"fmt"
	"strconv"
)

// Status is the return code of every HailoRT call (C hailo_status).
// Any int32 is a valid Status; values the binding does not name are
// failures of unknown kind.
type Status int32

const (
	StatusSuccess                           Status = 0
	StatusUninitialized                     Status = 1
	StatusInvalidArgument                   Status = 2
	StatusOutOfHostMemory                   Status = 3
	StatusTimeout                           Status = 4
	StatusInsufficientBuffer                Status = 5
	StatusInvalidOperation                  Status = 6
	StatusNotImplemented                    Status = 7
	StatusInternalFailure                   Status = 8
	StatusDataAlignmentFailure              Status = 9
	StatusChunkTooLarge                     Status = 10
	StatusInvalidLoggerLevel                Status = 11
	StatusCloseFailure                      Status = 12
	StatusOpenFileFailure                   Status = 13
	StatusFileOperationFailure              Status = 14
	StatusUnsupportedControlProtocolVersion Status = 15
	StatusUnsupportedFWVersion              Status = 16
	StatusInvalidControlResponse            Status = 17
	StatusFWControlFailure                  Status = 18
	StatusEthFailure                        Status = 19
	StatusEthInterfaceNotFound              Status = 20
	StatusEthRecvFailure                    Status = 21
	StatusEthSendFailure                    Status = 22
	StatusInvalidFirmware                   Status = 23
	StatusInvalidContextCount               Status = 24
	StatusInvalidFrame                      Status = 25
	StatusInvalidHEF                        Status = 26
	StatusPCIeNotSupportedOnPlatform        Status = 27
	StatusInterruptedBySignal               Status = 28
	StatusStartVDMAChannelFail              Status = 29
	StatusSyncVDMABufferFail                Status = 30
	StatusStopVDMAChannelFail               Status = 31
	StatusCloseVDMAChannelFail              Status = 32
	StatusATRTablesConfValidationFail       Status = 33
	StatusEventCreateFail                   Status = 34
	StatusReadEventFail                     Status = 35
	StatusDriverOperationFailed             Status = 36
	StatusInvalidFirmwareMagic              Status = 37
	StatusInvalidFirmwareCodeSize           Status = 38
	StatusInvalidKeyCertificateSize         Status = 39
	StatusInvalidContentCertificateSize     Status = 40
	StatusMismatchingFirmwareBufferSizes    Status = 41
	StatusInvalidFirmwareCPUID              Status = 42
	StatusControlResponseMD5Mismatch        Status = 43
	StatusGetControlResponseFail            Status = 44
	StatusGetD2HEventMessageFail            Status = 45
	StatusMutexInitFail                     Status = 46
	StatusOutOfDescriptors                  Status = 47
	StatusUnsupportedOpcode                 Status = 48
	StatusUserModeRateLimiterNotSupported   Status = 49
	StatusRateLimitMaximumBandwidthExceeded Status = 50
	StatusANSIToUTF16ConversionFailed       Status = 51
	StatusUTF16ToANSIConversionFailed       Status = 52
	StatusUnexpectedInterfaceInfoFailure    Status = 53
	StatusUnexpectedARPTableFailure         Status = 54
	StatusMACAddressNotFound                Status = 55
	StatusNoIPv4InterfacesFound             Status = 56
	StatusShutdownEventSignaled             Status = 57
	StatusThreadAlreadyActivated            Status = 58
	StatusThreadNotActivated                Status = 59
	StatusThreadNotJoinable                 Status = 60
	StatusNotFound                          Status = 61
	StatusCommunicationClosed               Status = 62
	StatusStreamAbort                       Status = 63
	StatusDriverNotInstalled                Status = 64
	StatusNotAvailable                      Status = 65
	StatusTrafficControlFailure             Status = 66
	StatusInvalidSecondStage                Status = 67
	StatusInvalidPipeline                   Status = 68
	StatusNetworkGroupNotActivated          Status = 69
	StatusVStreamPipelineNotActivated       Status = 70
	StatusOutOfFWMemory                     Status = 71
	StatusStreamNotActivated                Status = 72
	StatusDeviceInUse                       Status = 73
	StatusOutOfPhysicalDevices              Status = 74
	StatusInvalidDeviceArchitecture         Status = 75
	StatusInvalidDriverVersion              Status = 76
	StatusRPCFailed                         Status = 77
	StatusInvalidServiceVersion             Status = 78
	StatusNotSupported                      Status = 79
	StatusNMSBurstInvalidData               Status = 80
	StatusOutOfHostCMAMemory                Status = 81
	StatusQueueIsFull                       Status = 82
	StatusDMAMappingAlreadyExists           Status = 83
	StatusCantMeetBufferRequirements        Status = 84
	StatusDriverInvalidResponse             Status = 85
	StatusDriverInvalidIOCTL                Status = 86
	StatusDriverTimeout                     Status = 87
	StatusDriverInterrupted                 Status = 88
	StatusConnectionRefused                 Status = 89
	StatusDriverWaitCanceled                Status = 90
	StatusHEFFileCorrupted                  Status = 91
	StatusHEFNotSupported                   Status = 92
	StatusHEFNotCompatibleWithDevice        Status = 93
	StatusInvalidHEFUse                     Status = 94
	StatusOperationAborted                  Status = 95
	StatusDeviceNotConnected                Status = 96
	StatusDeviceTemporarilyUnavailable      Status = 97
)

// statusNames holds the C identifier of every named status, indexed by value.
var statusNames = [...]string{
	"HAILO_SUCCESS",
	"HAILO_UNINITIALIZED",
	"HAILO_INVALID_ARGUMENT",
	"HAILO_OUT_OF_HOST_MEMORY",
	"HAILO_TIMEOUT",
	"HAILO_INSUFFICIENT_BUFFER",
	"HAILO_INVALID_OPERATION",
	"HAILO_NOT_IMPLEMENTED",
	"HAILO_INTERNAL_FAILURE",
	"HAILO_DATA_ALIGNMENT_FAILURE",
	"HAILO_CHUNK_TOO_LARGE",
	"HAILO_INVALID_LOGGER_LEVEL",
	"HAILO_CLOSE_FAILURE",
	"HAILO_OPEN_FILE_FAILURE",
	"HAILO_FILE_OPERATION_FAILURE",
	"HAILO_UNSUPPORTED_CONTROL_PROTOCOL_VERSION",
	"HAILO_UNSUPPORTED_FW_VERSION",
	"HAILO_INVALID_CONTROL_RESPONSE",
	"HAILO_FW_CONTROL_FAILURE",
	"HAILO_ETH_FAILURE",
	"HAILO_ETH_INTERFACE_NOT_FOUND",
	"HAILO_ETH_RECV_FAILURE",
	"HAILO_ETH_SEND_FAILURE",
	"HAILO_INVALID_FIRMWARE",
	"HAILO_INVALID_CONTEXT_COUNT",
	"HAILO_INVALID_FRAME",
	"HAILO_INVALID_HEF",
	"HAILO_PCIE_NOT_SUPPORTED_ON_PLATFORM",
	"HAILO_INTERRUPTED_BY_SIGNAL",
	"HAILO_START_VDMA_CHANNEL_FAIL",
	"HAILO_SYNC_VDMA_BUFFER_FAIL",
	"HAILO_STOP_VDMA_CHANNEL_FAIL",
	"HAILO_CLOSE_VDMA_CHANNEL_FAIL",
	"HAILO_ATR_TABLES_CONF_VALIDATION_FAIL",
	"HAILO_EVENT_CREATE_FAIL",
	"HAILO_READ_EVENT_FAIL",
	"HAILO_DRIVER_OPERATION_FAILED",
	"HAILO_INVALID_FIRMWARE_MAGIC",
	"HAILO_INVALID_FIRMWARE_CODE_SIZE",
	"HAILO_INVALID_KEY_CERTIFICATE_SIZE",
	"HAILO_INVALID_CONTENT_CERTIFICATE_SIZE",
	"HAILO_MISMATCHING_FIRMWARE_BUFFER_SIZES",
	"HAILO_INVALID_FIRMWARE_CPU_ID",
	"HAILO_CONTROL_RESPONSE_MD5_MISMATCH",
	"HAILO_GET_CONTROL_RESPONSE_FAIL",
	"HAILO_GET_D2H_EVENT_MESSAGE_FAIL",
	"HAILO_MUTEX_INIT_FAIL",
	"HAILO_OUT_OF_DESCRIPTORS",
	"HAILO_UNSUPPORTED_OPCODE",
	"HAILO_USER_MODE_RATE_LIMITER_NOT_SUPPORTED",
	"HAILO_RATE_LIMIT_MAXIMUM_BANDWIDTH_EXCEEDED",
	"HAILO_ANSI_TO_UTF16_CONVERSION_FAILED",
	"HAILO_UTF16_TO_ANSI_CONVERSION_FAILED",
	"HAILO_UNEXPECTED_INTERFACE_INFO_FAILURE",
	"HAILO_UNEXPECTED_ARP_TABLE_FAILURE",
	"HAILO_MAC_ADDRESS_NOT_FOUND",
	"HAILO_NO_IPV4_INTERFACES_FOUND",
	"HAILO_SHUTDOWN_EVENT_SIGNALED",
	"HAILO_THREAD_ALREADY_ACTIVATED",
	"HAILO_THREAD_NOT_ACTIVATED",
	"HAILO_THREAD_NOT_JOINABLE",
	"HAILO_NOT_FOUND",
	"HAILO_COMMUNICATION_CLOSED",
	"HAILO_STREAM_ABORT",
	"HAILO_DRIVER_NOT_INSTALLED",
	"HAILO_NOT_AVAILABLE",
	"HAILO_TRAFFIC_CONTROL_FAILURE",
	"HAILO_INVALID_SECOND_STAGE",
	"HAILO_INVALID_PIPELINE",
	"HAILO_NETWORK_GROUP_NOT_ACTIVATED",
	"HAILO_VSTREAM_PIPELINE_NOT_ACTIVATED",
	"HAILO_OUT_OF_FW_MEMORY",
	"HAILO_STREAM_NOT_ACTIVATED",
	"HAILO_DEVICE_IN_USE",
	"HAILO_OUT_OF_PHYSICAL_DEVICES",
	"HAILO_INVALID_DEVICE_ARCHITECTURE",
	"HAILO_INVALID_DRIVER_VERSION",
	"HAILO_RPC_FAILED",
	"HAILO_INVALID_SERVICE_VERSION",
	"HAILO_NOT_SUPPORTED",
	"HAILO_NMS_BURST_INVALID_DATA",
	"HAILO_OUT_OF_HOST_CMA_MEMORY",
	"HAILO_QUEUE_IS_FULL",
	"HAILO_DMA_MAPPING_ALREADY_EXISTS",
	"HAILO_CANT_MEET_BUFFER_REQUIREMENTS",
	"HAILO_DRIVER_INVALID_RESPONSE",
	"HAILO_DRIVER_INVALID_IOCTL",
	"HAILO_DRIVER_TIMEOUT",
	"HAILO_DRIVER_INTERRUPTED",
	"HAILO_CONNECTION_REFUSED",
	"HAILO_DRIVER_WAIT_CANCELED",
	"HAILO_HEF_FILE_CORRUPTED",
	"HAILO_HEF_NOT_SUPPORTED",
	"HAILO_HEF_NOT_COMPATIBLE_WITH_DEVICE",
	"HAILO_INVALID_HEF_USE",
	"HAILO_OPERATION_ABORTED",
	"HAILO_DEVICE_NOT_CONNECTED",
	"HAILO_DEVICE_TEMPORARILY_UNAVAILABLE",
}

// Statuses returns every named status in ascending order.
func Statuses() []Status {
	out := make([]Status, len(statusNames))
	for i := range statusNames {
		out[i] = Status(i)
	}
	return out
}

// IsSuccess reports whether s is StatusSuccess.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsKnown reports whether the binding has a name for s.
func (s Status) IsKnown() bool {
	return s >= 0 && int(s) < len(statusNames)
}

// Name returns the C identifier for s, or HAILO_STATUS(<n>) when the value
// is not named by this binding.
func (s Status) Name() string {
	if s.IsKnown() {
		return statusNames[s]
	}
	return fmt.Sprintf("HAILO_STATUS(%d)", int32(s))
}

func (s Status) String() string {
	return s.Name()
}

// Message returns the library's own description of s.
func (s Status) Message() string {
	return StatusMessage(s)
}

// Err returns nil for StatusSuccess and a *StatusError otherwise.
func (s Status) Err(op string) error {
	if s == StatusSuccess {
		return nil
	}
	return &StatusError{Op: op, Status: s}
}

// StatusError carries a non-success Status returned by a HailoRT call.
type StatusError struct {
	Op     string
	Status Status
}

func (e *StatusError) Error() string {
	msg := StatusMessage(e.Status)
	if msg == "" {
		msg = "status " + strconv.Itoa(int(e.Status))
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Status.Name(), msg)
	}
	return fmt.Sprintf("%s failed: %s (%s)", e.Op, msg, e.Status.Name())
}

// Is lets errors.Is match a *StatusError against a bare Status or against
// another *StatusError with the same code.
func (e *StatusError) Is(target error) bool {
	switch t := target.(type) {
	case Status:
		return e.Status == t
	case *StatusError:
		return t != nil && e.Status == t.Status
	}
	return false
}

// Error makes Status usable as an errors.Is target.
func (s Status) Error() string {
	return s.Name()
}
