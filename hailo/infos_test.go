package hailo

import (
	"testing"

	"github.com/amikos-tech/pure-hailort/hailort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInfosGrowsToReportedCount(t *testing.T) {
	withRetryPolicy(t, NoRetry)

	var capacities []uintptr
	got, err := listInfos("hailo_scan_devices", 2, func(items *int, count *uintptr) hailort.Status {
		capacities = append(capacities, *count)
		if *count < 5 {
			*count = 5
			return hailort.StatusInsufficientBuffer
		}
		out := unsafeSlice(items, int(*count))
		for i := range 5 {
			out[i] = i * 10
		}
		*count = 5
		return hailort.StatusSuccess
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20, 30, 40}, got)
	assert.Equal(t, []uintptr{2, 5}, capacities)
}

func TestListInfosTrimsToCount(t *testing.T) {
	got, err := listInfos("op", 8, func(items *int, count *uintptr) hailort.Status {
		*count = 3
		return hailort.StatusSuccess
	})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestListInfosInsufficientWithoutGrowthFails(t *testing.T) {
	_, err := listInfos("op", 4, func(items *int, count *uintptr) hailort.Status {
		return hailort.StatusInsufficientBuffer
	})
	assert.ErrorIs(t, err, hailort.StatusInsufficientBuffer)
}

func TestListInfosRejectsOverreportedSuccess(t *testing.T) {
	_, err := listInfos("op", 2, func(items *int, count *uintptr) hailort.Status {
		*count = 9
		return hailort.StatusSuccess
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reported 9 entries")
}

func TestListInfosStopsWhenCountKeepsGrowing(t *testing.T) {
	calls := 0
	_, err := listInfos("op", 1, func(items *int, count *uintptr) hailort.Status {
		calls++
		*count *= 2
		return hailort.StatusInsufficientBuffer
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kept growing")
	assert.Equal(t, maxListGrowth, calls)
}

func TestListInfosZeroCapacity(t *testing.T) {
	got, err := listInfos("op", 0, func(items *int, count *uintptr) hailort.Status {
		assert.Nil(t, items)
		*count = 0
		return hailort.StatusSuccess
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}
