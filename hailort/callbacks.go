package hailort

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// The library invokes completion and notification callbacks on its own
// threads. The opaque pointer it hands back is a token from nextToken,
// never a Go pointer; the token indexes a registry entry that owns the
// pinned buffer and the delivery channel.
//
// purego callbacks are a finite, never-freed resource, so exactly one C
// trampoline exists per callback signature.

// WriteCompletion reports the outcome of an asynchronous input write.
type WriteCompletion struct {
	Status     Status
	BufferSize int
}

// ReadCompletion reports the outcome of an asynchronous output read. The
// data is in the buffer passed to OutputStreamReadAsync.
type ReadCompletion struct {
	Status     Status
	BufferSize int
}

var nextToken atomic.Uintptr

func newToken() uintptr {
	return nextToken.Add(1)
}

type pending[T any] struct {
	pinner runtime.Pinner
	done   chan T
}

type registry[T any] struct {
	mu      sync.Mutex
	entries map[uintptr]*pending[T]
}

// add pins buf and returns the token identifying the request.
func (r *registry[T]) add(buf []byte) (uintptr, *pending[T]) {
	p := &pending[T]{done: make(chan T, 1)}
	p.pinner.Pin(&buf[0])
	token := newToken()

	r.mu.Lock()
	if r.entries == nil {
		r.entries = make(map[uintptr]*pending[T])
	}
	r.entries[token] = p
	r.mu.Unlock()
	return token, p
}

func (r *registry[T]) take(token uintptr) *pending[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.entries[token]
	if !ok {
		return nil
	}
	delete(r.entries, token)
	return p
}

// release drops a request the library never accepted.
func (r *registry[T]) release(token uintptr) {
	if p := r.take(token); p != nil {
		p.pinner.Unpin()
	}
}

// complete delivers v for token at most once. Unknown tokens are ignored.
func (r *registry[T]) complete(token uintptr, v T) bool {
	p := r.take(token)
	if p == nil {
		return false
	}
	p.pinner.Unpin()
	p.done <- v
	return true
}

// drain completes every pending request with the value from fn.
func (r *registry[T]) drain(fn func() T) int {
	r.mu.Lock()
	entries := r.entries
	r.entries = nil
	r.mu.Unlock()

	for _, p := range entries {
		p.pinner.Unpin()
		p.done <- fn()
	}
	return len(entries)
}

func (r *registry[T]) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

var (
	writes registry[WriteCompletion]
	reads  registry[ReadCompletion]
)

var (
	writeCallbackOnce sync.Once
	writeCallback     uintptr
	readCallbackOnce  sync.Once
	readCallback      uintptr
	notifyOnce        sync.Once
	notifyCallback    uintptr
)

func writeTrampoline() uintptr {
	writeCallbackOnce.Do(func() { writeCallback = purego.NewCallback(onWriteComplete) })
	return writeCallback
}

func readTrampoline() uintptr {
	readCallbackOnce.Do(func() { readCallback = purego.NewCallback(onReadComplete) })
	return readCallback
}

func notifyTrampoline() uintptr {
	notifyOnce.Do(func() { notifyCallback = purego.NewCallback(onNotification) })
	return notifyCallback
}

func onWriteComplete(info uintptr) uintptr {
	if info == 0 {
		return 0
	}
	ci := *(*StreamWriteAsyncCompletionInfo)(unsafe.Pointer(info))
	writes.complete(ci.Opaque, WriteCompletion{Status: ci.Status, BufferSize: int(ci.BufferSize)})
	return 0
}

func onReadComplete(info uintptr) uintptr {
	if info == 0 {
		return 0
	}
	ci := *(*StreamReadAsyncCompletionInfo)(unsafe.Pointer(info))
	reads.complete(ci.Opaque, ReadCompletion{Status: ci.Status, BufferSize: int(ci.BufferSize)})
	return 0
}

// InputStreamWriteAsync queues buf for transfer. buf is pinned and must
// not be modified until the returned channel yields its single value. A
// non-success Status means the request was rejected and no completion
// will be delivered.
func InputStreamWriteAsync(stream InputStreamHandle, buf []byte) (<-chan WriteCompletion, Status) {
	a, done := enter()
	defer done()
	if a.inputStreamWriteAsync == nil {
		return nil, a.missing()
	}
	if len(buf) == 0 {
		return nil, StatusInvalidArgument
	}
	token, p := writes.add(buf)
	s := a.inputStreamWriteAsync(stream, &buf[0], uintptr(len(buf)), writeTrampoline(), token)
	if !s.IsSuccess() {
		writes.release(token)
		return nil, s
	}
	return p.done, StatusSuccess
}

// OutputStreamReadAsync queues buf to be filled by the next frame. The
// same delivery rules as InputStreamWriteAsync apply.
func OutputStreamReadAsync(stream OutputStreamHandle, buf []byte) (<-chan ReadCompletion, Status) {
	a, done := enter()
	defer done()
	if a.outputStreamReadAsync == nil {
		return nil, a.missing()
	}
	if len(buf) == 0 {
		return nil, StatusInvalidArgument
	}
	token, p := reads.add(buf)
	s := a.outputStreamReadAsync(stream, &buf[0], uintptr(len(buf)), readTrampoline(), token)
	if !s.IsSuccess() {
		reads.release(token)
		return nil, s
	}
	return p.done, StatusSuccess
}

// PendingAsync reports the number of accepted requests whose completion
// has not yet been delivered.
func PendingAsync() int {
	return writes.size() + reads.size()
}

// abandonPending completes every outstanding request with
// StatusStreamAbort once the library is gone.
func abandonPending() {
	n := writes.drain(func() WriteCompletion { return WriteCompletion{Status: StatusStreamAbort} })
	n += reads.drain(func() ReadCompletion { return ReadCompletion{Status: StatusStreamAbort} })
	notifications.reset()
	if n > 0 {
		Logger().Warn("abandoned pending asynchronous requests", zap.Int("count", n))
	}
}

type notificationKey struct {
	device DeviceHandle
	id     NotificationID
}

type notificationEntry struct {
	key notificationKey
	fn  func(Notification)
}

type notificationRegistry struct {
	mu      sync.Mutex
	byKey   map[notificationKey]uintptr
	byToken map[uintptr]notificationEntry
}

var notifications notificationRegistry

func (r *notificationRegistry) put(key notificationKey, fn func(Notification)) (token, previous uintptr) {
	token = newToken()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byKey == nil {
		r.byKey = make(map[notificationKey]uintptr)
		r.byToken = make(map[uintptr]notificationEntry)
	}
	previous = r.byKey[key]
	r.byKey[key] = token
	r.byToken[token] = notificationEntry{key: key, fn: fn}
	return token, previous
}

func (r *notificationRegistry) dropToken(token uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byToken[token]
	if !ok {
		return
	}
	delete(r.byToken, token)
	if r.byKey[e.key] == token {
		delete(r.byKey, e.key)
	}
}

// restore undoes a put whose registration the library rejected.
func (r *notificationRegistry) restore(key notificationKey, token, previous uintptr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byToken, token)
	if previous != 0 {
		r.byKey[key] = previous
	} else if r.byKey[key] == token {
		delete(r.byKey, key)
	}
}

func (r *notificationRegistry) dropKey(key notificationKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token, ok := r.byKey[key]; ok {
		delete(r.byKey, key)
		delete(r.byToken, token)
	}
}

func (r *notificationRegistry) forgetDevice(device DeviceHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, token := range r.byKey {
		if key.device == device {
			delete(r.byKey, key)
			delete(r.byToken, token)
		}
	}
}

func (r *notificationRegistry) lookup(token uintptr) (func(Notification), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byToken[token]
	return e.fn, ok
}

func (r *notificationRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey = nil
	r.byToken = nil
}

func onNotification(device, notification, opaque uintptr) uintptr {
	fn, ok := notifications.lookup(opaque)
	if !ok || notification == 0 {
		return 0
	}
	n := *(*Notification)(unsafe.Pointer(notification))
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("notification callback panicked",
				zap.Uintptr("device", device),
				zap.Stringer("id", n.ID),
				zap.String("panic", fmt.Sprint(r)))
		}
	}()
	fn(n)
	return 0
}

// SetNotificationCallback registers fn for notifications of id from
// device, replacing any earlier registration for the pair. fn runs on a
// library thread, possibly concurrently with other callbacks, until
// RemoveNotificationCallback or ReleaseDevice.
func SetNotificationCallback(device DeviceHandle, id NotificationID, fn func(Notification)) Status {
	if fn == nil {
		return StatusInvalidArgument
	}
	a, done := enter()
	defer done()
	if a.setNotificationCallback == nil {
		return a.missing()
	}
	key := notificationKey{device: device, id: id}
	token, previous := notifications.put(key, fn)
	s := a.setNotificationCallback(device, notifyTrampoline(), id, token)
	if !s.IsSuccess() {
		notifications.restore(key, token, previous)
		return s
	}
	if previous != 0 {
		notifications.dropToken(previous)
	}
	return StatusSuccess
}

// RemoveNotificationCallback unregisters the callback for (device, id).
func RemoveNotificationCallback(device DeviceHandle, id NotificationID) Status {
	a, done := enter()
	defer done()
	if a.removeNotificationCallback == nil {
		return a.missing()
	}
	s := a.removeNotificationCallback(device, id)
	if s.IsSuccess() {
		notifications.dropKey(notificationKey{device: device, id: id})
	}
	return s
}
