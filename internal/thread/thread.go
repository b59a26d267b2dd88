// SPDX-License-Identifier: Unlicense OR MIT

// Package thread confines rendering context work to a single OS
// thread. An EGL context is current per OS thread, not per goroutine.
// See: https://github.com/golang/go/wiki/LockOSThread
package thread

import (
	"runtime"

	"github.com/faiface/mainthread"
)

// Locked runs f on a new goroutine locked to its OS thread and
// returns f's error.
func Locked(f func() error) error {
	errCh := make(chan error)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		errCh <- f()
	}()
	return <-errCh
}

// Run runs main with the process main thread reserved for Main. It
// must be called from the program's main function.
func Run(main func()) {
	mainthread.Run(main)
}

// Main runs f on the main thread. It must be called from within Run.
func Main(f func() error) error {
	return mainthread.CallErr(f)
}
