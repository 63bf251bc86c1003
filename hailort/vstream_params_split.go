//go:build !(windows && amd64)

package hailort

// hailo_get_default_vstream_params takes hailo_format_t (three int32, 12
// bytes) by value. The SysV x86-64 and AAPCS64 conventions pass such a
// record in two consecutive integer registers, so it is handed to the
// library as two 64-bit words.
type defaultVStreamParamsFunc func(info *VStreamInfo, lo, hi uint64, dir StreamDirection, params *VStreamParams) Status

func (f Format) words() (lo, hi uint64) {
	lo = uint64(uint32(f.Type)) | uint64(uint32(f.Order))<<32
	hi = uint64(uint32(f.Flags))
	return lo, hi
}

func callDefaultVStreamParams(fn defaultVStreamParamsFunc, info *VStreamInfo, format Format, dir StreamDirection, params *VStreamParams) Status {
	lo, hi := format.words()
	return fn(info, lo, hi, dir, params)
}
