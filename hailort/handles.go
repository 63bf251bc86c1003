package hailort

// Handles are opaque addresses of objects owned by libhailort. They can be
// copied, compared against zero and passed back to calls; Go code never
// dereferences them. A distinct type per resource kind turns passing the
// wrong handle into a compile error.
//
// A handle is invalid after its release or deactivate call returns, whatever
// that call's status. The owning wrappers in package hailo enforce this.

type DeviceHandle uintptr

func (h DeviceHandle) IsNil() bool { return h == 0 }

type VDeviceHandle uintptr

func (h VDeviceHandle) IsNil() bool { return h == 0 }

type HefHandle uintptr

func (h HefHandle) IsNil() bool { return h == 0 }

type InputStreamHandle uintptr

func (h InputStreamHandle) IsNil() bool { return h == 0 }

type OutputStreamHandle uintptr

func (h OutputStreamHandle) IsNil() bool { return h == 0 }

type ConfiguredNetworkGroupHandle uintptr

func (h ConfiguredNetworkGroupHandle) IsNil() bool { return h == 0 }

type ActivatedNetworkGroupHandle uintptr

func (h ActivatedNetworkGroupHandle) IsNil() bool { return h == 0 }

type InputTransformContextHandle uintptr

func (h InputTransformContextHandle) IsNil() bool { return h == 0 }

type OutputTransformContextHandle uintptr

func (h OutputTransformContextHandle) IsNil() bool { return h == 0 }

type OutputDemuxerHandle uintptr

func (h OutputDemuxerHandle) IsNil() bool { return h == 0 }

type InputVStreamHandle uintptr

func (h InputVStreamHandle) IsNil() bool { return h == 0 }

type OutputVStreamHandle uintptr

func (h OutputVStreamHandle) IsNil() bool { return h == 0 }

// ScanDevicesParams is opaque in the C header and the only accepted value
// is NoScanParams.
type ScanDevicesParams uintptr

const NoScanParams ScanDevicesParams = 0
