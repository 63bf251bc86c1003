// Package main cross-checks the Go tables in package hailort against a
// hailort.h header.
//
// The header is scanned with regular expressions, not a C parser. It
// understands the HAILO_STATUS__X table, simple #define constants and
// HAILORTAPI function declarations, which is all the binding mirrors by
// hand.
//
// Usage:
//
//	go run ./tools /usr/include/hailo/hailort.h
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/amikos-tech/pure-hailort/hailort"
)

var (
	statusPattern   = regexp.MustCompile(`HAILO_STATUS__X\(\s*(\d+)\s*,\s*(HAILO_\w+)`)
	definePattern   = regexp.MustCompile(`^#define\s+(HAILO_\w+)\s+\(?\s*([\w]+)\s*\)?\s*(?:/[/*].*)?$`)
	functionPattern = regexp.MustCompile(`^HAILORTAPI\s+[\w\s\*]*?\b(hailo_\w+)\s*\(`)
)

type header struct {
	statuses  map[string]int64
	defines   map[string]string
	functions []string
}

func parseHeader(r io.Reader) (*header, error) {
	h := &header{statuses: map[string]int64{}, defines: map[string]string{}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	seen := map[string]bool{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if m := statusPattern.FindStringSubmatch(line); m != nil {
			code, err := strconv.ParseInt(m[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: status %s: %w", lineNum, m[2], err)
			}
			if _, dup := h.statuses[m[2]]; dup {
				return nil, fmt.Errorf("line %d: status %s listed twice", lineNum, m[2])
			}
			h.statuses[m[2]] = code
			continue
		}
		if m := definePattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			h.defines[m[1]] = m[2]
			continue
		}
		if m := functionPattern.FindStringSubmatch(line); m != nil && !seen[m[1]] {
			seen[m[1]] = true
			h.functions = append(h.functions, m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(h.statuses) == 0 {
		return nil, fmt.Errorf("no HAILO_STATUS__X entries found; parser may be broken")
	}
	return h, nil
}

// constant follows #define aliases until it reaches a number.
func (h *header) constant(name string) (int64, bool) {
	for range 8 {
		v, ok := h.defines[name]
		if !ok {
			return 0, false
		}
		if n, err := strconv.ParseInt(strings.TrimRight(v, "uUlL"), 0, 64); err == nil {
			return n, true
		}
		name = v
	}
	return 0, false
}

// mirrored lists the header constants the binding copies by hand.
var mirrored = map[string]int64{
	"HAILO_MAX_NAME_SIZE":                            hailort.MaxNameSize,
	"HAILO_MAX_STREAM_NAME_SIZE":                     hailort.MaxStreamNameSize,
	"HAILO_MAX_NETWORK_GROUP_NAME_SIZE":              hailort.MaxNetworkGroupNameSize,
	"HAILO_MAX_BOARD_NAME_LENGTH":                    hailort.MaxBoardNameLength,
	"HAILO_MAX_DEVICE_ID_LENGTH":                     hailort.MaxDeviceIDLength,
	"HAILO_MAX_SERIAL_NUMBER_LENGTH":                 hailort.MaxSerialNumberLength,
	"HAILO_MAX_PART_NUMBER_LENGTH":                   hailort.MaxPartNumberLength,
	"HAILO_MAX_PRODUCT_NAME_LENGTH":                  hailort.MaxProductNameLength,
	"HAILO_MAX_STREAMS_COUNT":                        hailort.MaxStreamsCount,
	"HAILO_MAX_NETWORK_GROUPS":                       hailort.MaxNetworkGroups,
	"HAILO_MAX_NETWORKS_IN_NETWORK_GROUP":            hailort.MaxNetworksInNetworkGroup,
	"HAILO_SOC_ID_LENGTH":                            hailort.SocIDLength,
	"HAILO_ETH_MAC_LENGTH":                           hailort.EthMACLength,
	"HAILO_UNIT_LEVEL_TRACKING_BYTES_LENGTH":         hailort.UnitLevelTrackingBytesLength,
	"HAILO_SOC_PM_VALUES_BYTES_LENGTH":               hailort.SocPMValuesBytesLength,
	"HAILO_MAX_TEMPERATURE_THROTTLING_LEVELS_NUMBER": hailort.MaxTemperatureThrottlingLevelsNumber,
	"HAILO_MAX_NUMBER_OF_PLANES":                     hailort.MaxNumberOfPlanes,
	"HAILO_DEFAULT_VSTREAM_QUEUE_SIZE":               int64(hailort.DefaultVStreamQueueSize),
	"HAILO_DEFAULT_VSTREAM_TIMEOUT_MS":               int64(hailort.DefaultVStreamTimeoutMs),
	"HAILO_DEFAULT_BATCH_SIZE":                       int64(hailort.DefaultBatchSize),
	"HAILO_SCHEDULER_PRIORITY_NORMAL":                int64(hailort.SchedulerPriorityNormal),
	"HAILO_SCHEDULER_PRIORITY_MAX":                   int64(hailort.SchedulerPriorityMax),
	"HAILO_SCHEDULER_PRIORITY_MIN":                   int64(hailort.SchedulerPriorityMin),
}

type report struct {
	mismatches []string
	unbound    []string
}

func compare(h *header) report {
	var r report

	bound := map[string]bool{}
	for _, s := range hailort.Statuses() {
		bound[s.Name()] = true
		code, ok := h.statuses[s.Name()]
		switch {
		case !ok:
			r.mismatches = append(r.mismatches, fmt.Sprintf("status %s is not in the header", s.Name()))
		case code != int64(s):
			r.mismatches = append(r.mismatches, fmt.Sprintf("status %s is %d in the header, %d in Go", s.Name(), code, int32(s)))
		}
	}
	for name, code := range h.statuses {
		if !bound[name] {
			r.mismatches = append(r.mismatches, fmt.Sprintf("status %s (%d) has no Go name", name, code))
		}
	}

	for name, want := range mirrored {
		got, ok := h.constant(name)
		if ok && got != want {
			r.mismatches = append(r.mismatches, fmt.Sprintf("%s is %d in the header, %d in Go", name, got, want))
		}
	}

	declared := map[string]bool{}
	for _, fn := range h.functions {
		declared[fn] = true
	}
	symbols := map[string]bool{}
	for _, name := range hailort.SymbolNames() {
		symbols[name] = true
		if len(h.functions) > 0 && !declared[name] {
			r.mismatches = append(r.mismatches, fmt.Sprintf("symbol %s is not declared in the header", name))
		}
	}
	for _, fn := range h.functions {
		if !symbols[fn] {
			r.unbound = append(r.unbound, fn)
		}
	}

	sort.Strings(r.mismatches)
	return r
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <path-to-hailort.h>\n", os.Args[0])
		os.Exit(1)
	}

	headerPath := os.Args[1]
	file, err := os.Open(headerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open header file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	h, err := parseHeader(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", headerPath, err)
		os.Exit(1)
	}
	fmt.Printf("Parsed %d statuses, %d defines, %d functions from %s\n",
		len(h.statuses), len(h.defines), len(h.functions), headerPath)

	r := compare(h)
	if len(r.unbound) > 0 {
		fmt.Printf("%d header functions are not bound:\n", len(r.unbound))
		for _, fn := range r.unbound {
			fmt.Printf("  %s\n", fn)
		}
	}
	if len(r.mismatches) > 0 {
		fmt.Fprintf(os.Stderr, "%d mismatches:\n", len(r.mismatches))
		for _, m := range r.mismatches {
			fmt.Fprintf(os.Stderr, "  %s\n", m)
		}
		os.Exit(1)
	}
	fmt.Println("Go tables match the header")
}
