package hailo

import (
	"fmt"

	"github.com/amikos-tech/pure-hailort/hailort"
)

// maxListGrowth bounds how often a list call may report a larger count.
const maxListGrowth = 4

// listInfos runs the library's list protocol: the call receives the
// capacity in *count and, when the array is too small, fails with
// StatusInsufficientBuffer and writes the required count back. The array
// is then grown and the call repeated.
func listInfos[T any](op string, capacity int, fn func(items *T, count *uintptr) hailort.Status) ([]T, error) {
	for range maxListGrowth {
		items := make([]T, capacity)
		count := uintptr(capacity)
		var first *T
		if capacity > 0 {
			first = &items[0]
		}
		var s hailort.Status
		err := retry(op, func() hailort.Status {
			count = uintptr(capacity)
			s = fn(first, &count)
			return s
		})
		if s == hailort.StatusInsufficientBuffer && int(count) > capacity {
			capacity = int(count)
			continue
		}
		if err != nil {
			return nil, err
		}
		if int(count) > capacity {
			return nil, fmt.Errorf("%s reported %d entries for an array of %d", op, count, capacity)
		}
		return items[:count], nil
	}
	return nil, fmt.Errorf("%s: required count kept growing", op)
}
