package hailo

import (
	"testing"

	"github.com/amikos-tech/pure-hailort/hailort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoGroupParams(t *testing.T) *hailort.ConfigureParams {
	t.Helper()
	p := new(hailort.ConfigureParams)
	p.NetworkGroupParamsCount = 2
	copy(p.NetworkGroupParams[0].Name[:], "yolov8")
	copy(p.NetworkGroupParams[1].Name[:], "resnet")
	return p
}

func TestConfigureOptions(t *testing.T) {
	p := twoGroupParams(t)
	require.NoError(t, WithBatchSize(4)(p))
	require.NoError(t, WithPowerMode(hailort.PowerModeUltraPerformance)(p))
	require.NoError(t, WithLatencyMeasurement(hailort.LatencyMeasure)(p))
	for i := range 2 {
		assert.Equal(t, uint16(4), p.NetworkGroupParams[i].BatchSize)
		assert.Equal(t, hailort.PowerModeUltraPerformance, p.NetworkGroupParams[i].PowerMode)
		assert.Equal(t, hailort.LatencyMeasure, p.NetworkGroupParams[i].Latency)
	}
	// Entries past the count are left alone.
	assert.Zero(t, p.NetworkGroupParams[2].BatchSize)

	assert.Error(t, WithBatchSize(70000)(p))
	assert.Error(t, WithBatchSize(-1)(p))

	require.NoError(t, WithNetworkGroupParams("resnet", func(g *hailort.ConfigureNetworkGroupParams) {
		g.BatchSize = 1
	})(p))
	assert.Equal(t, uint16(1), p.NetworkGroupParams[1].BatchSize)
	assert.Error(t, WithNetworkGroupParams("missing", func(*hailort.ConfigureNetworkGroupParams) {})(p))
}

func TestConfiguredGroupsClampsCount(t *testing.T) {
	p := new(hailort.ConfigureParams)
	p.NetworkGroupParamsCount = 1000
	assert.Equal(t, hailort.MaxNetworkGroups, configuredGroups(p))
}

func TestConfigureBuildsGroups(t *testing.T) {
	parent := newOwner(hailort.DeviceHandle(0x10), "hailo_release_device", nil)
	hef := &Hef{}
	groups, err := configure(&parent, hef, []ConfigureOption{nil, WithBatchSize(2)},
		func(p *hailort.ConfigureParams) hailort.Status {
			*p = *twoGroupParams(t)
			return hailort.StatusSuccess
		},
		func(p *hailort.ConfigureParams, out *hailort.ConfiguredNetworkGroupHandle, n *uintptr) hailort.Status {
			assert.Equal(t, uint16(2), p.NetworkGroupParams[0].BatchSize)
			assert.Equal(t, uintptr(hailort.MaxNetworkGroups), *n)
			handles := unsafeSlice(out, int(*n))
			handles[0], handles[1] = 0x100, 0x200
			*n = 2
			return hailort.StatusSuccess
		})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "yolov8", groups[0].Name())
	assert.Equal(t, "resnet", groups[1].Name())
	assert.Equal(t, hailort.ConfiguredNetworkGroupHandle(0x200), groups[1].Handle())
	assert.Same(t, hef, groups[0].hef)
	assert.Equal(t, int64(2), parent.children.Load())

	// Release goes to the library, which is not loaded here.
	for _, g := range groups {
		assert.ErrorIs(t, g.Destroy(), hailort.StatusUninitialized)
		assert.NoError(t, g.Destroy())
	}
	assert.Zero(t, parent.children.Load())
}

func fakeConfigure(t *testing.T, parent dependent, n int) []*ConfiguredNetworkGroup {
	t.Helper()
	groups, err := configure(parent, &Hef{}, nil,
		func(*hailort.ConfigureParams) hailort.Status { return hailort.StatusSuccess },
		func(_ *hailort.ConfigureParams, out *hailort.ConfiguredNetworkGroupHandle, count *uintptr) hailort.Status {
			handles := unsafeSlice(out, int(*count))
			for i := range n {
				handles[i] = hailort.ConfiguredNetworkGroupHandle(0x100 + i)
			}
			*count = uintptr(n)
			return hailort.StatusSuccess
		})
	require.NoError(t, err)
	return groups
}

func TestDeviceDestroyRefusedWhileGroupsOpen(t *testing.T) {
	d := newDevice(hailort.DeviceHandle(0x1000))
	groups := fakeConfigure(t, &d.res, 2)

	err := d.Destroy()
	assert.ErrorIs(t, err, ErrInUse)
	assert.Contains(t, err.Error(), "2 open")
	assert.Equal(t, hailort.DeviceHandle(0x1000), d.Handle(), "handle kept after a refused Destroy")

	assert.ErrorIs(t, groups[0].Destroy(), hailort.StatusUninitialized)
	assert.ErrorIs(t, d.Destroy(), ErrInUse)
	assert.ErrorIs(t, groups[1].Destroy(), hailort.StatusUninitialized)

	assert.ErrorIs(t, d.Destroy(), hailort.StatusUninitialized)
	assert.Zero(t, d.Handle())
}

func TestVDeviceDestroyRefusedWhileGroupsOpen(t *testing.T) {
	v := &VDevice{res: newOwner(hailort.VDeviceHandle(0x2000), "hailo_release_vdevice", nil)}
	groups := fakeConfigure(t, &v.res, 1)

	assert.ErrorIs(t, v.Destroy(), ErrInUse)
	assert.ErrorIs(t, groups[0].Destroy(), hailort.StatusUninitialized)
	assert.NoError(t, v.Destroy())
}

func TestGroupDestroyRefusedWhileActiveOrStreaming(t *testing.T) {
	g := &ConfiguredNetworkGroup{res: newOwner(hailort.ConfiguredNetworkGroupHandle(0x30), "hailo_release_network_group", nil)}

	g.res.adopt(2)
	act := &ActivatedNetworkGroup{
		res:   newChildOwner(hailort.ActivatedNetworkGroupHandle(0x31), "hailo_deactivate_network_group", nil, &g.res),
		group: g,
	}
	in := &InputVStream{vstream: vstream[hailort.InputVStreamHandle]{
		res:   newChildOwner(hailort.InputVStreamHandle(0x32), "hailo_release_input_vstream", nil, &g.res),
		group: g,
	}}

	assert.ErrorIs(t, g.Destroy(), ErrInUse)
	require.NoError(t, act.Deactivate())
	assert.ErrorIs(t, g.Destroy(), ErrInUse)
	require.NoError(t, in.Destroy())
	require.NoError(t, g.Destroy())
	assert.Zero(t, g.Handle())
}

func TestConfigureStopsOnInitFailure(t *testing.T) {
	applied := false
	_, err := configure(nil, nil, nil,
		func(*hailort.ConfigureParams) hailort.Status { return hailort.StatusInvalidHEF },
		func(*hailort.ConfigureParams, *hailort.ConfiguredNetworkGroupHandle, *uintptr) hailort.Status {
			applied = true
			return hailort.StatusSuccess
		})
	assert.ErrorIs(t, err, hailort.StatusInvalidHEF)
	assert.False(t, applied)
}

func TestConfigureRejectsOverreportedCount(t *testing.T) {
	_, err := configure(nil, nil, nil,
		func(*hailort.ConfigureParams) hailort.Status { return hailort.StatusSuccess },
		func(_ *hailort.ConfigureParams, _ *hailort.ConfiguredNetworkGroupHandle, n *uintptr) hailort.Status {
			*n = hailort.MaxNetworkGroups + 1
			return hailort.StatusSuccess
		})
	assert.Error(t, err)
}

func TestSplitByDirection(t *testing.T) {
	infos := make([]hailort.VStreamInfo, 3)
	infos[0].Direction = hailort.H2DStream
	infos[1].Direction = hailort.D2HStream
	infos[2].Direction = hailort.D2HStream
	in, out := splitByDirection(infos)
	assert.Len(t, in, 1)
	assert.Len(t, out, 2)
}
