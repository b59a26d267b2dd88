// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"fmt"
	"strings"

	"github.com/gpureplay/eglplatform/internal/egl"
)

// WindowingSystem tags the native handle in WindowingData.
type WindowingSystem uint32

const (
	// Unknown requests a window-less context.
	Unknown WindowingSystem = iota
	Win32
	Xlib
	XCB
	Android
	Wayland
)

var systemNames = [...]string{
	Unknown: "unknown",
	Win32:   "win32",
	Xlib:    "xlib",
	XCB:     "xcb",
	Android: "android",
	Wayland: "wayland",
}

func (s WindowingSystem) String() string {
	if int(s) < len(systemNames) {
		return systemNames[s]
	}
	return fmt.Sprintf("WindowingSystem(%d)", uint32(s))
}

// ParseWindowingSystem returns the system named by s, as returned by
// String.
func ParseWindowingSystem(s string) (WindowingSystem, error) {
	for i, n := range systemNames {
		if strings.EqualFold(s, n) {
			return WindowingSystem(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnsupportedWindowing, s)
}

// WindowingData describes the caller's output window. The handles are
// not owned by this package.
type WindowingData struct {
	System WindowingSystem
	// Display is the native display connection, if the system has one
	// (Xlib, XCB, Wayland).
	Display uintptr
	// Window is the HWND, ANativeWindow*, X11 Window or wl_surface*.
	Window uintptr
}

// Version is a requested OpenGL ES capability tier.
type Version struct {
	Major, Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// GLWindowingData is a display, context and surface triple. Context
// and Surface are both set for a usable record; a record returned with
// a surface creation error has only Context set. The caller owns the
// record and must delete it exactly once.
type GLWindowingData struct {
	Display egl.Display
	Context egl.Context
	Surface egl.Surface

	// Version is the negotiated tier. Legacy reports that the context
	// was created with EGL_CONTEXT_CLIENT_VERSION instead of an
	// explicit major and minor version.
	Version Version
	Legacy  bool
}

func (d GLWindowingData) HasContext() bool {
	return d.Context != egl.NO_CONTEXT
}

func (d GLWindowingData) HasSurface() bool {
	return d.Surface != egl.NO_SURFACE
}

// Valid reports whether both the context and the surface exist.
func (d GLWindowingData) Valid() bool {
	return d.HasContext() && d.HasSurface()
}
