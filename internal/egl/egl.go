// SPDX-License-Identifier: Unlicense OR MIT

// Package egl resolves the EGL driver entry points at runtime and exposes
// them as a Driver. The driver library is loaded dynamically so that a
// missing or partial libEGL degrades into reported errors rather than a
// link failure.
package egl

type (
	Int               int32
	Enum              uint32
	Display           uintptr
	Config            uintptr
	Context           uintptr
	Surface           uintptr
	NativeDisplayType uintptr
	NativeWindowType  uintptr
)

const (
	DEFAULT_DISPLAY NativeDisplayType = 0

	NO_DISPLAY Display = 0
	NO_CONTEXT Context = 0
	NO_SURFACE Surface = 0
)

const (
	FALSE = 0

	BLUE_SIZE         = 0x3022
	GREEN_SIZE        = 0x3023
	RED_SIZE          = 0x3024
	DEPTH_SIZE        = 0x3025
	CONFIG_CAVEAT     = 0x3027
	NATIVE_VISUAL_ID  = 0x302e
	SURFACE_TYPE      = 0x3033
	NONE              = 0x3038
	COLOR_BUFFER_TYPE = 0x303f
	RENDERABLE_TYPE   = 0x3040
	CONFORMANT        = 0x3042

	VENDOR      = 0x3053
	VERSION     = 0x3054
	EXTENSIONS  = 0x3055
	CLIENT_APIS = 0x308d

	HEIGHT = 0x3056
	WIDTH  = 0x3057
	READ   = 0x305a

	RGB_BUFFER = 0x308e

	PBUFFER_BIT        = 0x0001
	WINDOW_BIT         = 0x0004
	OPENGL_ES3_BIT_KHR = 0x0040

	OPENGL_ES_API = 0x30a0

	CONTEXT_CLIENT_VERSION       = 0x3098
	CONTEXT_MAJOR_VERSION_KHR    = 0x3098
	CONTEXT_MINOR_VERSION_KHR    = 0x30fb
	CONTEXT_FLAGS_KHR            = 0x30fc
	CONTEXT_OPENGL_DEBUG_BIT_KHR = 0x0001
)

// Driver is the subset of EGL used to create, bind and destroy
// rendering contexts. Calls to entry points that were not resolved
// return zero values and false rather than faulting; Has reports
// whether an entry point is available.
type Driver interface {
	Has(s Symbol) bool

	BindAPI(api Enum) bool
	ChooseConfig(disp Display, attribs []Int) (cfg Config, numConfigs Int, ok bool)
	CreateContext(disp Display, cfg Config, share Context, attribs []Int) Context
	CreatePbufferSurface(disp Display, cfg Config, attribs []Int) Surface
	CreateWindowSurface(disp Display, cfg Config, win NativeWindowType, attribs []Int) Surface
	DestroyContext(disp Display, ctx Context) bool
	DestroySurface(disp Display, surf Surface) bool
	GetConfigAttrib(disp Display, cfg Config, attr Int) (Int, bool)
	GetCurrentContext() Context
	GetCurrentDisplay() Display
	GetCurrentSurface(readdraw Int) Surface
	GetDisplay(disp NativeDisplayType) Display
	GetError() Error
	GetProcAddress(name string) uintptr
	Initialize(disp Display) (major, minor Int, ok bool)
	MakeCurrent(disp Display, draw, read Surface, ctx Context) bool
	QueryString(disp Display, name Int) string
	QuerySurface(disp Display, surf Surface, attr Int) (Int, bool)
	SwapBuffers(disp Display, surf Surface) bool
	Terminate(disp Display) bool

	// Extension entry points; check Has before relying on the result.
	SwapInterval(disp Display, interval Int) bool
	ReleaseThread() bool
}
