package com

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
)

var errClosed = errors.New("backend is closed")

// apartment runs functions on a single goroutine locked to its OS thread
type apartment struct {
	calls  chan func()
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
}

// startApartment starts the thread and runs setup on it. teardown runs on
// the same thread after stop. setup and teardown may be nil.
func startApartment(setup func() error, teardown func(), timeout time.Duration) (*apartment, error) {
	a := &apartment{
		calls: make(chan func()),
		done:  make(chan struct{}),
	}

	ready := make(chan error, 1)
	go a.run(setup, teardown, ready)

	select {
	case err := <-ready:
		if err != nil {
			return nil, err
		}
	case <-time.After(timeout):
		return nil, fmt.Errorf("COM thread did not start within %s", timeout)
	}

	return a, nil
}

func (a *apartment) run(setup func() error, teardown func(), ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(a.done)

	if setup != nil {
		if err := setup(); err != nil {
			ready <- err
			return
		}
	}

	ready <- nil

	for f := range a.calls {
		f()
	}

	if teardown != nil {
		teardown()
	}
}

// do runs f on the apartment thread and waits for it. A panic in f is
// re-raised in the caller.
func (a *apartment) do(f func()) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return errClosed
	}

	var recovered any
	finished := make(chan struct{})

	a.calls <- func() {
		defer close(finished)
		defer func() { recovered = recover() }()
		f()
	}

	<-finished

	if recovered != nil {
		panic(recovered)
	}

	return nil
}

// stop waits for in-flight calls, runs teardown and ends the thread
func (a *apartment) stop() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}

	a.closed = true
	close(a.calls)
	a.mu.Unlock()

	<-a.done
}
