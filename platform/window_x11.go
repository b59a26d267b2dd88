// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android) || freebsd

package platform

import "github.com/gpureplay/eglplatform/internal/egl"

const nativeSystem = Xlib

func nativeWindow(w WindowingData) (egl.NativeWindowType, error) {
	switch w.System {
	case Xlib:
		return egl.NativeWindowType(w.Window), nil
	case Unknown:
		return 0, nil
	}
	return 0, unsupported(w.System)
}
