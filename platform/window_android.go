// SPDX-License-Identifier: Unlicense OR MIT

//go:build android

package platform

import "github.com/gpureplay/eglplatform/internal/egl"

const nativeSystem = Android

func nativeWindow(w WindowingData) (egl.NativeWindowType, error) {
	switch w.System {
	case Android:
		return egl.NativeWindowType(w.Window), nil
	case Unknown:
		return 0, nil
	}
	return 0, unsupported(w.System)
}
