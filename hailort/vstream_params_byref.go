//go:build windows && amd64

package hailort

// The Windows x64 convention passes records larger than eight bytes by
// reference to a caller-owned copy.
type defaultVStreamParamsFunc func(info *VStreamInfo, format *Format, dir StreamDirection, params *VStreamParams) Status

func callDefaultVStreamParams(fn defaultVStreamParamsFunc, info *VStreamInfo, format Format, dir StreamDirection, params *VStreamParams) Status {
	tmp := format
	return fn(info, &tmp, dir, params)
}
