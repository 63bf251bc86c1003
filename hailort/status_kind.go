package hailort

// StatusKind groups statuses by how a caller is expected to react to them.
// The classification never changes the Status value itself.
type StatusKind uint8

const (
	KindNone StatusKind = iota
	// KindArgument: the caller violated a documented precondition.
	KindArgument
	// KindResourceState: the handle is in the wrong lifecycle state.
	KindResourceState
	// KindTransport: communication with the device or driver failed.
	KindTransport
	// KindCapacity: an output buffer or a hardware queue was too small.
	KindCapacity
	// KindUnsupported: the library build, firmware or platform lacks the operation.
	KindUnsupported
	// KindUnknown covers internal failures and unnamed statuses.
	KindUnknown
)

func (k StatusKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindArgument:
		return "argument"
	case KindResourceState:
		return "resource-state"
	case KindTransport:
		return "transport"
	case KindCapacity:
		return "capacity"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

var statusKinds = map[Status]StatusKind{
	StatusInvalidArgument:                KindArgument,
	StatusDataAlignmentFailure:           KindArgument,
	StatusChunkTooLarge:                  KindArgument,
	StatusInvalidLoggerLevel:             KindArgument,
	StatusInvalidFirmware:                KindArgument,
	StatusInvalidContextCount:            KindArgument,
	StatusInvalidFrame:                   KindArgument,
	StatusInvalidHEF:                     KindArgument,
	StatusInvalidFirmwareMagic:           KindArgument,
	StatusInvalidFirmwareCodeSize:        KindArgument,
	StatusInvalidKeyCertificateSize:      KindArgument,
	StatusInvalidContentCertificateSize:  KindArgument,
	StatusMismatchingFirmwareBufferSizes: KindArgument,
	StatusInvalidFirmwareCPUID:           KindArgument,
	StatusNotFound:                       KindArgument,
	StatusInvalidSecondStage:             KindArgument,
	StatusInvalidPipeline:                KindArgument,
	StatusNMSBurstInvalidData:            KindArgument,
	StatusHEFFileCorrupted:               KindArgument,
	StatusInvalidHEFUse:                  KindArgument,
	StatusOpenFileFailure:                KindArgument,

	StatusUninitialized:               KindResourceState,
	StatusInvalidOperation:            KindResourceState,
	StatusShutdownEventSignaled:       KindResourceState,
	StatusThreadAlreadyActivated:      KindResourceState,
	StatusThreadNotActivated:          KindResourceState,
	StatusThreadNotJoinable:           KindResourceState,
	StatusStreamAbort:                 KindResourceState,
	StatusNetworkGroupNotActivated:    KindResourceState,
	StatusVStreamPipelineNotActivated: KindResourceState,
	StatusStreamNotActivated:          KindResourceState,
	StatusDeviceInUse:                 KindResourceState,
	StatusDMAMappingAlreadyExists:     KindResourceState,
	StatusOperationAborted:            KindResourceState,

	StatusTimeout:                        KindTransport,
	StatusCloseFailure:                   KindTransport,
	StatusFileOperationFailure:           KindTransport,
	StatusInvalidControlResponse:         KindTransport,
	StatusFWControlFailure:               KindTransport,
	StatusEthFailure:                     KindTransport,
	StatusEthInterfaceNotFound:           KindTransport,
	StatusEthRecvFailure:                 KindTransport,
	StatusEthSendFailure:                 KindTransport,
	StatusInterruptedBySignal:            KindTransport,
	StatusStartVDMAChannelFail:           KindTransport,
	StatusSyncVDMABufferFail:             KindTransport,
	StatusStopVDMAChannelFail:            KindTransport,
	StatusCloseVDMAChannelFail:           KindTransport,
	StatusATRTablesConfValidationFail:    KindTransport,
	StatusEventCreateFail:                KindTransport,
	StatusReadEventFail:                  KindTransport,
	StatusDriverOperationFailed:          KindTransport,
	StatusControlResponseMD5Mismatch:     KindTransport,
	StatusGetControlResponseFail:         KindTransport,
	StatusGetD2HEventMessageFail:         KindTransport,
	StatusUnexpectedInterfaceInfoFailure: KindTransport,
	StatusUnexpectedARPTableFailure:      KindTransport,
	StatusMACAddressNotFound:             KindTransport,
	StatusNoIPv4InterfacesFound:          KindTransport,
	StatusCommunicationClosed:            KindTransport,
	StatusTrafficControlFailure:          KindTransport,
	StatusRPCFailed:                      KindTransport,
	StatusDriverInvalidResponse:          KindTransport,
	StatusDriverInvalidIOCTL:             KindTransport,
	StatusDriverTimeout:                  KindTransport,
	StatusDriverInterrupted:              KindTransport,
	StatusConnectionRefused:              KindTransport,
	StatusDriverWaitCanceled:             KindTransport,
	StatusDeviceNotConnected:             KindTransport,
	StatusDeviceTemporarilyUnavailable:   KindTransport,

	StatusOutOfHostMemory:                   KindCapacity,
	StatusInsufficientBuffer:                KindCapacity,
	StatusOutOfDescriptors:                  KindCapacity,
	StatusRateLimitMaximumBandwidthExceeded: KindCapacity,
	StatusOutOfFWMemory:                     KindCapacity,
	StatusOutOfPhysicalDevices:              KindCapacity,
	StatusOutOfHostCMAMemory:                KindCapacity,
	StatusQueueIsFull:                       KindCapacity,
	StatusCantMeetBufferRequirements:        KindCapacity,

	StatusNotImplemented:                    KindUnsupported,
	StatusUnsupportedControlProtocolVersion: KindUnsupported,
	StatusUnsupportedFWVersion:              KindUnsupported,
	StatusPCIeNotSupportedOnPlatform:        KindUnsupported,
	StatusUnsupportedOpcode:                 KindUnsupported,
	StatusUserModeRateLimiterNotSupported:   KindUnsupported,
	StatusDriverNotInstalled:                KindUnsupported,
	StatusNotAvailable:                      KindUnsupported,
	StatusInvalidDeviceArchitecture:         KindUnsupported,
	StatusInvalidDriverVersion:              KindUnsupported,
	StatusInvalidServiceVersion:             KindUnsupported,
	StatusNotSupported:                      KindUnsupported,
	StatusHEFNotSupported:                   KindUnsupported,
	StatusHEFNotCompatibleWithDevice:        KindUnsupported,
}

// Kind classifies s. Success maps to KindNone; anything not classified,
// including values this binding does not name, maps to KindUnknown.
func (s Status) Kind() StatusKind {
	if s == StatusSuccess {
		return KindNone
	}
	if k, ok := statusKinds[s]; ok {
		return k
	}
	return KindUnknown
}

// IsRetryable reports whether s is a transport failure, the only kind worth
// retrying and only for idempotent calls.
func (s Status) IsRetryable() bool {
	return s.Kind() == KindTransport
}
