// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "github.com/gpureplay/eglplatform/internal/egl"

const nativeSystem = Win32

func nativeWindow(w WindowingData) (egl.NativeWindowType, error) {
	switch w.System {
	case Win32:
		return egl.NativeWindowType(w.Window), nil
	case Unknown:
		// Window-less context.
		return 0, nil
	}
	return 0, unsupported(w.System)
}
