// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows && !linux && !freebsd

package platform

import "github.com/gpureplay/eglplatform/internal/egl"

// No native window system is bound on this platform; only off-screen
// contexts are available.
const nativeSystem = Unknown

func nativeWindow(w WindowingData) (egl.NativeWindowType, error) {
	if w.System == Unknown {
		return 0, nil
	}
	return 0, unsupported(w.System)
}
