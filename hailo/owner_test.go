package hailo

import (
	"errors"
	"sync"
	"testing"

	"github.com/amikos-tech/pure-hailort/hailort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle uintptr

func TestOwnerReleasesOnce(t *testing.T) {
	var released []fakeHandle
	o := newOwner(fakeHandle(7), "fake_release", func(h fakeHandle) hailort.Status {
		released = append(released, h)
		return hailort.StatusSuccess
	})

	require.True(t, o.alive())
	require.NoError(t, o.destroy())
	require.NoError(t, o.destroy())
	assert.Equal(t, []fakeHandle{7}, released)
	assert.False(t, o.alive())
	assert.Zero(t, o.raw())
}

func TestOwnerClearsHandleEvenWhenReleaseFails(t *testing.T) {
	calls := 0
	o := newOwner(fakeHandle(3), "fake_release", func(fakeHandle) hailort.Status {
		calls++
		return hailort.StatusInternalFailure
	})

	err := o.destroy()
	require.Error(t, err)
	assert.ErrorIs(t, err, hailort.StatusInternalFailure)
	require.NoError(t, o.destroy())
	assert.Equal(t, 1, calls)
}

func TestOwnerRefusesDestroyWithChildren(t *testing.T) {
	var released []fakeHandle
	release := func(h fakeHandle) hailort.Status {
		released = append(released, h)
		return hailort.StatusSuccess
	}
	parent := newOwner(fakeHandle(1), "fake_release", release)
	require.NoError(t, parent.exclusive(func(fakeHandle) error {
		parent.adopt(1)
		return nil
	}))
	child := newChildOwner(fakeHandle(2), "fake_release_child", release, &parent)

	require.ErrorIs(t, parent.busy(), ErrInUse)
	err := parent.destroy()
	require.ErrorIs(t, err, ErrInUse)
	assert.Contains(t, err.Error(), "fake_release")
	assert.True(t, parent.alive())
	assert.Empty(t, released)

	require.NoError(t, child.destroy())
	require.NoError(t, child.destroy(), "second destroy drops nothing")
	assert.Zero(t, parent.children.Load())
	require.NoError(t, parent.busy())
	require.NoError(t, parent.destroy())
	assert.Equal(t, []fakeHandle{2, 1}, released)
}

func TestOwnerChildDropsEvenWhenReleaseFails(t *testing.T) {
	parent := newOwner(fakeHandle(1), "fake_release", nil)
	parent.adopt(1)
	child := newChildOwner(fakeHandle(2), "fake_release_child", func(fakeHandle) hailort.Status {
		return hailort.StatusInternalFailure
	}, &parent)

	assert.ErrorIs(t, child.destroy(), hailort.StatusInternalFailure)
	assert.NoError(t, parent.destroy())
}

func TestOwnerCallsAfterDestroy(t *testing.T) {
	o := newOwner(fakeHandle(1), "fake_release", func(fakeHandle) hailort.Status { return hailort.StatusSuccess })
	require.NoError(t, o.destroy())

	called := false
	err := o.exclusive(func(fakeHandle) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrDestroyed)
	err = o.shared(func(fakeHandle) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.False(t, called)
}

func TestOwnerPassesHandleAndError(t *testing.T) {
	o := newOwner(fakeHandle(42), "fake_release", nil)
	sentinel := errors.New("call failed")

	err := o.shared(func(h fakeHandle) error {
		assert.Equal(t, fakeHandle(42), h)
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	require.NoError(t, o.destroy(), "nil release func")
}

func TestOwnerExclusiveSerializes(t *testing.T) {
	o := newOwner(fakeHandle(1), "fake_release", nil)
	var mu sync.Mutex
	inside, peak := 0, 0

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = o.exclusive(func(fakeHandle) error {
				mu.Lock()
				inside++
				peak = max(peak, inside)
				mu.Unlock()

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, peak)
}

func TestNilWrappersDestroy(t *testing.T) {
	assert.NoError(t, (*Device)(nil).Destroy())
	assert.NoError(t, (*VDevice)(nil).Destroy())
	assert.NoError(t, (*Hef)(nil).Destroy())
	assert.NoError(t, (*ConfiguredNetworkGroup)(nil).Destroy())
	assert.NoError(t, (*ActivatedNetworkGroup)(nil).Deactivate())
	assert.NoError(t, (*InputVStream)(nil).Destroy())
	assert.NoError(t, (*OutputVStream)(nil).Destroy())
	assert.NoError(t, (*InputTransformContext)(nil).Destroy())
	assert.NoError(t, (*OutputTransformContext)(nil).Destroy())
	assert.NoError(t, (*OutputDemuxer)(nil).Destroy())

	assert.Zero(t, (*Device)(nil).Handle())
	assert.Zero(t, (*Hef)(nil).Handle())
}

func TestDestroyWithoutLibraryReportsOnce(t *testing.T) {
	require.False(t, hailort.IsLoaded(), "tests in this package run without libhailort")

	d := newDevice(hailort.DeviceHandle(0x1000))
	err := d.Destroy()
	require.Error(t, err)
	assert.ErrorIs(t, err, hailort.StatusUninitialized)
	assert.NoError(t, d.Destroy())
	assert.Zero(t, d.Handle())

	_, err = d.Identify()
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.ErrorIs(t, d.SetThrottling(true), ErrDestroyed)
}
