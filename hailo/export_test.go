package hailo

import (
	"errors"
	"unsafe"
)

func unsafeSlice[T any](p *T, n int) []T {
	return unsafe.Slice(p, n)
}

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
