package hailort

import (
	"testing"
	"time"
)

// pairedVStreams returns a table whose output read blocks until released,
// as a real read does until the matching input frame is written.
func pairedVStreams() (a *api, reading, release chan struct{}) {
	reading = make(chan struct{})
	release = make(chan struct{})
	a = &api{loaded: true}
	a.outputVStreamRead = func(OutputVStreamHandle, *byte, uintptr) Status {
		close(reading)
		<-release
		return StatusSuccess
	}
	return a, reading, release
}

func TestWriteServedWhileReadBlocks(t *testing.T) {
	resetEnvironmentForTest(t)

	a, reading, release := pairedVStreams()
	a.inputVStreamWrite = func(InputVStreamHandle, *byte, uintptr) Status {
		close(release)
		return StatusSuccess
	}
	swapAPI(a)

	buf := make([]byte, 8)
	readDone := make(chan Status, 1)
	go func() { readDone <- OutputVStreamRead(OutputVStreamHandle(2), &buf[0], 8) }()
	receive(t, reading)

	writeDone := make(chan Status, 1)
	go func() { writeDone <- InputVStreamWrite(InputVStreamHandle(1), &buf[0], 8) }()
	if s := receive(t, writeDone); s != StatusSuccess {
		t.Fatalf("InputVStreamWrite = %v", s)
	}
	if s := receive(t, readDone); s != StatusSuccess {
		t.Fatalf("OutputVStreamRead = %v", s)
	}
}

func TestUnloadTurnsAwayCallsWhileDraining(t *testing.T) {
	resetEnvironmentForTest(t)

	a, reading, release := pairedVStreams()
	swapAPI(a)

	buf := make([]byte, 8)
	readDone := make(chan Status, 1)
	go func() { readDone <- OutputVStreamRead(OutputVStreamHandle(2), &buf[0], 8) }()
	receive(t, reading)

	swapped := make(chan struct{})
	go func() {
		swapAPI(nil)
		close(swapped)
	}()
	deadline := time.Now().Add(2 * time.Second)
	for current.Load() != nil {
		if time.Now().After(deadline) {
			t.Fatal("table was not retired")
		}
		time.Sleep(time.Millisecond)
	}

	// A call arriving while the read is still running must not queue
	// behind the retiring swap.
	writeDone := make(chan Status, 1)
	go func() { writeDone <- InputVStreamWrite(InputVStreamHandle(1), &buf[0], 8) }()
	if s := receive(t, writeDone); s != StatusUninitialized {
		t.Fatalf("InputVStreamWrite = %v during unload", s)
	}

	select {
	case <-swapped:
		t.Fatal("swap finished while a call was still running")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	if s := receive(t, readDone); s != StatusSuccess {
		t.Fatalf("OutputVStreamRead = %v", s)
	}
	receive(t, swapped)
}

func TestEnterCountsCalls(t *testing.T) {
	resetEnvironmentForTest(t)

	got, done := enter()
	if got != unloaded {
		t.Fatal("enter before Load did not return the unloaded table")
	}
	done()

	a := &api{loaded: true}
	swapAPI(a)
	got, done = enter()
	if got != a || a.calls.n.Load() != 1 {
		t.Fatalf("enter = %p, in flight = %d", got, a.calls.n.Load())
	}
	done()
	if n := a.calls.n.Load(); n != 0 {
		t.Fatalf("in flight = %d after done", n)
	}

	// Nothing in flight, so retiring the table returns at once.
	finished := make(chan struct{})
	go func() {
		swapAPI(nil)
		close(finished)
	}()
	receive(t, finished)
}
