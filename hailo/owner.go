package hailo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/amikos-tech/pure-hailort/hailort"
)

// owner holds a single handle and the call that releases it. The handle is
// cleared before the release call runs, so a handle is released at most
// once whatever that call returns.
//
// Handles created from this one are counted as children, and destroy
// refuses with ErrInUse until every child has been released.
type owner[H ~uintptr] struct {
	mu        sync.RWMutex
	handle    H
	release   func(H) hailort.Status
	releaseOp string

	children atomic.Int64
	parent   dependent
}

// dependent is the side of an owner its children report to.
type dependent interface {
	// adopt counts n new children. The caller holds the parent exclusively.
	adopt(n int)
	drop()
}

func newOwner[H ~uintptr](h H, op string, release func(H) hailort.Status) owner[H] {
	return owner[H]{handle: h, release: release, releaseOp: op}
}

// newChildOwner is newOwner for a handle already adopted by parent.
func newChildOwner[H ~uintptr](h H, op string, release func(H) hailort.Status, parent dependent) owner[H] {
	return owner[H]{handle: h, release: release, releaseOp: op, parent: parent}
}

func (o *owner[H]) adopt(n int) { o.children.Add(int64(n)) }

func (o *owner[H]) drop() { o.children.Add(-1) }

// busy reports ErrInUse while children of a live handle remain.
func (o *owner[H]) busy() error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.busyLocked()
}

func (o *owner[H]) busyLocked() error {
	if o.handle == 0 {
		return nil
	}
	if n := o.children.Load(); n > 0 {
		return fmt.Errorf("%s: %w (%d open)", o.releaseOp, ErrInUse, n)
	}
	return nil
}

// exclusive runs fn with the handle while no other call on it is running.
func (o *owner[H]) exclusive(fn func(H) error) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.handle == 0 {
		return ErrDestroyed
	}
	return fn(o.handle)
}

// shared runs fn with the handle alongside other shared calls.
func (o *owner[H]) shared(fn func(H) error) error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.handle == 0 {
		return ErrDestroyed
	}
	return fn(o.handle)
}

func (o *owner[H]) alive() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.handle != 0
}

func (o *owner[H]) raw() H {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.handle
}

func (o *owner[H]) destroy() error {
	o.mu.Lock()
	if err := o.busyLocked(); err != nil {
		o.mu.Unlock()
		return err
	}
	h := o.handle
	parent := o.parent
	o.handle, o.parent = 0, nil
	o.mu.Unlock()

	if h == 0 {
		return nil
	}
	var err error
	if o.release != nil {
		err = o.release(h).Err(o.releaseOp)
	}
	if parent != nil {
		parent.drop()
	}
	return err
}
