package hailort

import (
	"unsafe"
)

// The C unions are stored as correctly sized and aligned opaque words. The
// accessors below are the only way to read them: each one consults the
// discriminant of the enclosing record and reports ok=false when the
// requested variant is not the live one.

func loadUnion[T any](p unsafe.Pointer) T {
	return *(*T)(p)
}

func storeUnion[T any, S any](dst *S, v T) {
	if unsafe.Sizeof(v) > unsafe.Sizeof(*dst) {
		panic("hailort: union variant larger than its storage")
	}
	var zero S
	*dst = zero
	*(*T)(unsafe.Pointer(dst)) = v
}

// Shapes returns the tensor shapes of a non-NMS stream.
func (s *StreamInfo) Shapes() (StreamInfoShapes, bool) {
	if s.Format.Order.IsNMS() {
		return StreamInfoShapes{}, false
	}
	return loadUnion[StreamInfoShapes](unsafe.Pointer(&s.shape)), true
}

// NMSInfo returns the NMS description of an NMS stream.
func (s *StreamInfo) NMSInfo() (NMSInfo, bool) {
	if !s.Format.Order.IsNMS() {
		return NMSInfo{}, false
	}
	return loadUnion[NMSInfo](unsafe.Pointer(&s.shape)), true
}

// SetShapes stores tensor shapes. The caller keeps Format.Order non-NMS.
func (s *StreamInfo) SetShapes(v StreamInfoShapes) {
	storeUnion(&s.shape, v)
}

// SetNMSInfo stores an NMS description. The caller keeps Format.Order NMS.
func (s *StreamInfo) SetNMSInfo(v NMSInfo) {
	storeUnion(&s.shape, v)
}

func (v *VStreamInfo) Shape() (ImageShape3D, bool) {
	if v.Format.Order.IsNMS() {
		return ImageShape3D{}, false
	}
	return loadUnion[ImageShape3D](unsafe.Pointer(&v.shape)), true
}

func (v *VStreamInfo) NMSShape() (NMSShape, bool) {
	if !v.Format.Order.IsNMS() {
		return NMSShape{}, false
	}
	return loadUnion[NMSShape](unsafe.Pointer(&v.shape)), true
}

func (v *VStreamInfo) SetShape(s ImageShape3D) {
	storeUnion(&v.shape, s)
}

func (v *VStreamInfo) SetNMSShape(s NMSShape) {
	storeUnion(&v.shape, s)
}

func (p *StreamParameters) is(iface StreamInterface, dir StreamDirection) bool {
	return p.StreamInterface == iface && p.Direction == dir
}

func (p *StreamParameters) PCIeInput() (PCIeInputStreamParams, bool) {
	if !p.is(StreamInterfacePCIe, H2DStream) {
		return PCIeInputStreamParams{}, false
	}
	return loadUnion[PCIeInputStreamParams](unsafe.Pointer(&p.params)), true
}

func (p *StreamParameters) PCIeOutput() (PCIeOutputStreamParams, bool) {
	if !p.is(StreamInterfacePCIe, D2HStream) {
		return PCIeOutputStreamParams{}, false
	}
	return loadUnion[PCIeOutputStreamParams](unsafe.Pointer(&p.params)), true
}

func (p *StreamParameters) IntegratedInput() (IntegratedInputStreamParams, bool) {
	if !p.is(StreamInterfaceIntegrated, H2DStream) {
		return IntegratedInputStreamParams{}, false
	}
	return loadUnion[IntegratedInputStreamParams](unsafe.Pointer(&p.params)), true
}

func (p *StreamParameters) IntegratedOutput() (IntegratedOutputStreamParams, bool) {
	if !p.is(StreamInterfaceIntegrated, D2HStream) {
		return IntegratedOutputStreamParams{}, false
	}
	return loadUnion[IntegratedOutputStreamParams](unsafe.Pointer(&p.params)), true
}

// SetPCIeInput selects the PCIe host-to-device variant.
func (p *StreamParameters) SetPCIeInput(v PCIeInputStreamParams) {
	p.StreamInterface, p.Direction = StreamInterfacePCIe, H2DStream
	storeUnion(&p.params, v)
}

func (p *StreamParameters) SetPCIeOutput(v PCIeOutputStreamParams) {
	p.StreamInterface, p.Direction = StreamInterfacePCIe, D2HStream
	storeUnion(&p.params, v)
}

func (p *StreamParameters) SetIntegratedInput(v IntegratedInputStreamParams) {
	p.StreamInterface, p.Direction = StreamInterfaceIntegrated, H2DStream
	storeUnion(&p.params, v)
}

func (p *StreamParameters) SetIntegratedOutput(v IntegratedOutputStreamParams) {
	p.StreamInterface, p.Direction = StreamInterfaceIntegrated, D2HStream
	storeUnion(&p.params, v)
}

func (b *PixBuffer) plane(i int) *PixBufferPlane {
	if i < 0 || i >= len(b.Planes) || uint32(i) >= b.NumberOfPlanes {
		return nil
	}
	return &b.Planes[i]
}

// PlaneUserPtr returns the user pointer of plane i of a USERPTR buffer.
func (b *PixBuffer) PlaneUserPtr(i int) (uintptr, bool) {
	pl := b.plane(i)
	if pl == nil || b.MemoryType != PixBufferMemoryTypeUserPtr {
		return 0, false
	}
	return loadUnion[uintptr](unsafe.Pointer(&pl.ptr)), true
}

// PlaneFD returns the dmabuf descriptor of plane i of a DMABUF buffer.
func (b *PixBuffer) PlaneFD(i int) (int32, bool) {
	pl := b.plane(i)
	if pl == nil || b.MemoryType != PixBufferMemoryTypeDMABuf {
		return 0, false
	}
	return loadUnion[int32](unsafe.Pointer(&pl.ptr)), true
}

func (b *PixBuffer) SetPlaneUserPtr(i int, ptr uintptr) bool {
	pl := b.plane(i)
	if pl == nil || b.MemoryType != PixBufferMemoryTypeUserPtr {
		return false
	}
	storeUnion(&pl.ptr, ptr)
	return true
}

func (b *PixBuffer) SetPlaneFD(i int, fd int32) bool {
	pl := b.plane(i)
	if pl == nil || b.MemoryType != PixBufferMemoryTypeDMABuf {
		return false
	}
	storeUnion(&pl.ptr, fd)
	return true
}

// NotificationPayload is implemented by every notification message type.
type NotificationPayload interface {
	storeInto(body *[3]uint64)
}

// NoPayload is returned for notifications whose ID carries no body.
type NoPayload struct{}

// UnknownNotification is returned for IDs this binding does not name.
type UnknownNotification struct {
	ID  NotificationID
	Raw [24]byte
}

func (NoPayload) storeInto(body *[3]uint64) { *body = [3]uint64{} }

func (u UnknownNotification) storeInto(body *[3]uint64) { storeUnion(body, u.Raw) }

func (m RxErrorNotificationMessage) storeInto(body *[3]uint64)                       { storeUnion(body, m) }
func (m DebugNotificationMessage) storeInto(body *[3]uint64)                         { storeUnion(body, m) }
func (m HealthMonitorDataflowShutdownNotificationMessage) storeInto(body *[3]uint64) { storeUnion(body, m) }
func (m HealthMonitorTemperatureAlarmNotificationMessage) storeInto(body *[3]uint64) { storeUnion(body, m) }
func (m HealthMonitorOvercurrentAlertNotificationMessage) storeInto(body *[3]uint64) { storeUnion(body, m) }
func (m HealthMonitorLCUECCErrorNotificationMessage) storeInto(body *[3]uint64)      { storeUnion(body, m) }
func (m HealthMonitorCPUECCNotificationMessage) storeInto(body *[3]uint64)           { storeUnion(body, m) }
func (m ContextSwitchBreakpointReachedMessage) storeInto(body *[3]uint64)            { storeUnion(body, m) }
func (m HealthMonitorClockChangedNotificationMessage) storeInto(body *[3]uint64)     { storeUnion(body, m) }
func (m HWInferManagerInferDoneNotificationMessage) storeInto(body *[3]uint64)       { storeUnion(body, m) }
func (m StartUpdateCacheOffsetNotificationMessage) storeInto(body *[3]uint64)        { storeUnion(body, m) }
func (m ContextSwitchRunTimeErrorMessage) storeInto(body *[3]uint64)                 { storeUnion(body, m) }
func (m ThrottlingStateChangeMessage) storeInto(body *[3]uint64)                     { storeUnion(body, m) }

// Payload decodes the body selected by n.ID.
func (n *Notification) Payload() NotificationPayload {
	p := unsafe.Pointer(&n.body)
	switch n.ID {
	case NotificationEthernetRxError:
		return loadUnion[RxErrorNotificationMessage](p)
	case NotificationHealthMonitorTemperatureAlarm:
		return loadUnion[HealthMonitorTemperatureAlarmNotificationMessage](p)
	case NotificationHealthMonitorDataflowShutdown:
		return loadUnion[HealthMonitorDataflowShutdownNotificationMessage](p)
	case NotificationHealthMonitorOvercurrentAlarm:
		return loadUnion[HealthMonitorOvercurrentAlertNotificationMessage](p)
	case NotificationLCUECCCorrectableError, NotificationLCUECCUncorrectableError:
		return loadUnion[HealthMonitorLCUECCErrorNotificationMessage](p)
	case NotificationCPUECCError, NotificationCPUECCFatal:
		return loadUnion[HealthMonitorCPUECCNotificationMessage](p)
	case NotificationDebug:
		return loadUnion[DebugNotificationMessage](p)
	case NotificationContextSwitchBreakpointReached:
		return loadUnion[ContextSwitchBreakpointReachedMessage](p)
	case NotificationHealthMonitorClockChanged:
		return loadUnion[HealthMonitorClockChangedNotificationMessage](p)
	case NotificationHWInferManagerInferDone:
		return loadUnion[HWInferManagerInferDoneNotificationMessage](p)
	case NotificationContextSwitchRunTimeError:
		return loadUnion[ContextSwitchRunTimeErrorMessage](p)
	case NotificationNNCoreCRCError:
		return NoPayload{}
	case NotificationThrottlingStateChange:
		return loadUnion[ThrottlingStateChangeMessage](p)
	}
	return UnknownNotification{ID: n.ID, Raw: loadUnion[[24]byte](p)}
}

// SetPayload stores p as the body. The caller sets a matching ID.
func (n *Notification) SetPayload(p NotificationPayload) {
	if p == nil {
		n.body = [3]uint64{}
		return
	}
	p.storeInto(&n.body)
}
