package hailo

import (
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"github.com/amikos-tech/pure-hailort/hailort"
	"go.uber.org/zap"
)

// ConfigureOption adjusts the configure parameters the library proposed
// for a HEF before they are applied.
type ConfigureOption func(*hailort.ConfigureParams) error

// WithBatchSize sets the batch size of every network group.
func WithBatchSize(n int) ConfigureOption {
	return func(p *hailort.ConfigureParams) error {
		size, err := safecast.Conv[uint16](n)
		if err != nil {
			return fmt.Errorf("invalid batch size %d: %w", n, err)
		}
		for i := range configuredGroups(p) {
			p.NetworkGroupParams[i].BatchSize = size
		}
		return nil
	}
}

func WithPowerMode(mode hailort.PowerMode) ConfigureOption {
	return func(p *hailort.ConfigureParams) error {
		for i := range configuredGroups(p) {
			p.NetworkGroupParams[i].PowerMode = mode
		}
		return nil
	}
}

// WithLatencyMeasurement enables latency collection on every network group.
func WithLatencyMeasurement(flags hailort.LatencyMeasurementFlags) ConfigureOption {
	return func(p *hailort.ConfigureParams) error {
		for i := range configuredGroups(p) {
			p.NetworkGroupParams[i].Latency = flags
		}
		return nil
	}
}

// WithNetworkGroupParams edits the parameters of the named network group.
func WithNetworkGroupParams(name string, fn func(*hailort.ConfigureNetworkGroupParams)) ConfigureOption {
	return func(p *hailort.ConfigureParams) error {
		for i := range configuredGroups(p) {
			if p.NetworkGroupParams[i].NameString() == name {
				fn(&p.NetworkGroupParams[i])
				return nil
			}
		}
		return fmt.Errorf("network group %q is not in the configure parameters", name)
	}
}

func configuredGroups(p *hailort.ConfigureParams) int {
	return min(int(p.NetworkGroupParamsCount), len(p.NetworkGroupParams))
}

// configure runs the init-then-configure sequence shared by devices and
// virtual devices. The caller holds parent exclusively. Every returned
// group is a child of parent and keeps it and hef reachable.
func configure(parent dependent, hef *Hef, opts []ConfigureOption,
	initParams func(*hailort.ConfigureParams) hailort.Status,
	apply func(*hailort.ConfigureParams, *hailort.ConfiguredNetworkGroupHandle, *uintptr) hailort.Status,
) ([]*ConfiguredNetworkGroup, error) {
	params := new(hailort.ConfigureParams)
	if err := initParams(params).Err("hailo_init_configure_params"); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(params); err != nil {
			return nil, err
		}
	}
	names := make([]string, configuredGroups(params))
	for i := range names {
		names[i] = params.NetworkGroupParams[i].NameString()
	}

	handles := make([]hailort.ConfiguredNetworkGroupHandle, hailort.MaxNetworkGroups)
	count := uintptr(len(handles))
	if err := apply(params, &handles[0], &count).Err("hailo_configure"); err != nil {
		return nil, err
	}
	if int(count) > len(handles) {
		return nil, fmt.Errorf("configure reported %d network groups for an array of %d", count, len(handles))
	}

	parent.adopt(int(count))
	groups := make([]*ConfiguredNetworkGroup, count)
	for i, h := range handles[:count] {
		g := &ConfiguredNetworkGroup{
			res: newChildOwner(h, "hailo_release_network_group", hailort.ReleaseNetworkGroup, parent),
			hef: hef,
		}
		if i < len(names) {
			g.name = names[i]
		}
		runtime.SetFinalizer(g, func(g *ConfiguredNetworkGroup) { _ = g.Destroy() })
		groups[i] = g
	}
	Logger().Debug("configured network groups", zap.Strings("names", names))
	return groups, nil
}

// ConfiguredNetworkGroup owns a network group loaded onto a device. It
// keeps the device or virtual device it was configured on reachable until
// it is destroyed.
type ConfiguredNetworkGroup struct {
	res  owner[hailort.ConfiguredNetworkGroupHandle]
	hef  *Hef
	name string
}

// Name is the network group name taken from the configure parameters.
func (g *ConfiguredNetworkGroup) Name() string { return g.name }

func (g *ConfiguredNetworkGroup) Handle() hailort.ConfiguredNetworkGroupHandle {
	if g == nil {
		return 0
	}
	return g.res.raw()
}

func (g *ConfiguredNetworkGroup) Destroy() error {
	if g == nil {
		return nil
	}
	if err := g.res.busy(); err != nil {
		return err
	}
	runtime.SetFinalizer(g, nil)
	return g.res.destroy()
}

func (g *ConfiguredNetworkGroup) Info() (hailort.NetworkGroupInfo, error) {
	return query(&g.res, "hailo_get_network_group_info", hailort.GetNetworkGroupInfo)
}

// Activate makes g the running network group of its device.
func (g *ConfiguredNetworkGroup) Activate() (*ActivatedNetworkGroup, error) {
	var a hailort.ActivatedNetworkGroupHandle
	err := g.res.exclusive(func(h hailort.ConfiguredNetworkGroupHandle) error {
		if err := hailort.ActivateNetworkGroup(h, nil, &a).Err("hailo_activate_network_group"); err != nil {
			return err
		}
		g.res.adopt(1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	act := &ActivatedNetworkGroup{
		res:   newChildOwner(a, "hailo_deactivate_network_group", hailort.DeactivateNetworkGroup, &g.res),
		group: g,
	}
	runtime.SetFinalizer(act, func(act *ActivatedNetworkGroup) { _ = act.Deactivate() })
	Logger().Debug("activated network group", zap.String("name", g.name))
	return act, nil
}

// ActivatedNetworkGroup is an active network group. Its raw streams are
// valid until Deactivate.
type ActivatedNetworkGroup struct {
	res   owner[hailort.ActivatedNetworkGroupHandle]
	group *ConfiguredNetworkGroup
}

func (a *ActivatedNetworkGroup) Group() *ConfiguredNetworkGroup { return a.group }

func (a *ActivatedNetworkGroup) Handle() hailort.ActivatedNetworkGroupHandle {
	if a == nil {
		return 0
	}
	return a.res.raw()
}

// Destroy is Deactivate, for use with hailoutil.DestroyAll.
func (a *ActivatedNetworkGroup) Destroy() error { return a.Deactivate() }

func (a *ActivatedNetworkGroup) Deactivate() error {
	if a == nil {
		return nil
	}
	runtime.SetFinalizer(a, nil)
	return a.res.destroy()
}

// InputStreams lists the input streams of network, or of every network
// when network is empty.
func (a *ActivatedNetworkGroup) InputStreams(network string) ([]*InputStream, error) {
	var handles []hailort.InputStreamHandle
	err := a.res.shared(func(h hailort.ActivatedNetworkGroupHandle) error {
		name := hailort.OptionalCString(network)
		var err error
		handles, err = listInfos("hailo_get_input_streams_by_network", hailort.MaxStreamsCount,
			func(items *hailort.InputStreamHandle, count *uintptr) hailort.Status {
				return hailort.GetInputStreamsByNetwork(h, name, items, count)
			})
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]*InputStream, len(handles))
	for i, h := range handles {
		out[i] = &InputStream{handle: h, act: a}
	}
	return out, nil
}

// OutputStreams lists the output streams of network, or of every network
// when network is empty.
func (a *ActivatedNetworkGroup) OutputStreams(network string) ([]*OutputStream, error) {
	var handles []hailort.OutputStreamHandle
	err := a.res.shared(func(h hailort.ActivatedNetworkGroupHandle) error {
		name := hailort.OptionalCString(network)
		var err error
		handles, err = listInfos("hailo_get_output_streams_by_network", hailort.MaxStreamsCount,
			func(items *hailort.OutputStreamHandle, count *uintptr) hailort.Status {
				return hailort.GetOutputStreamsByNetwork(h, name, items, count)
			})
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]*OutputStream, len(handles))
	for i, h := range handles {
		out[i] = &OutputStream{handle: h, act: a}
	}
	return out, nil
}
