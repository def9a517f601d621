//go:build windows

package console

import (
	"sync"
	"syscall"
)

var (
	kernel32DLL           = syscall.NewLazyDLL("kernel32.dll")
	setConsoleCtrlHandler = kernel32DLL.NewProc("SetConsoleCtrlHandler")

	// Windows callbacks are never freed, so one is registered for the
	// process and dispatches to whatever handler is current.
	registerOnce sync.Once
	registerErr  error

	mu      sync.Mutex
	current Handler
)

// Notify routes console control events to h until the returned stop func is called
func Notify(h Handler) (stop func(), err error) {
	registerOnce.Do(func() {
		ret, _, callErr := setConsoleCtrlHandler.Call(syscall.NewCallback(dispatch), 1)
		if ret == 0 {
			registerErr = callErr
		}
	})

	if registerErr != nil {
		return func() {}, registerErr
	}

	mu.Lock()
	current = h
	mu.Unlock()

	return func() {
		mu.Lock()
		current = nil
		mu.Unlock()
	}, nil
}

func dispatch(ctrlType uint32) uintptr {
	mu.Lock()
	h := current
	mu.Unlock()

	if h != nil && h(Event(ctrlType)) {
		return 1
	}

	return 0 // let the default handler run
}
