// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"fmt"

	"github.com/gpureplay/eglplatform/internal/egl"
)

type binding struct {
	disp egl.Display
	draw egl.Surface
	read egl.Surface
	ctx  egl.Context
}

// fakeDriver is a scriptable EGL driver. It tracks the calling
// thread's current binding and records every call.
type fakeDriver struct {
	missing map[egl.Symbol]bool

	display  egl.Display
	noConfig bool
	// accept reports whether a context request is honored.
	accept        func(attribs []egl.Int) bool
	failSurface   bool
	failQuery     bool
	width, height egl.Int
	procs         map[string]uintptr
	libSyms       map[string]uintptr
	exts          string
	strs          map[egl.Int]string

	current  binding
	calls    []string
	configs  [][]egl.Int
	requests [][]egl.Int
	queries  map[egl.Int]int
	attribs  []egl.Int
	pbuffer  []egl.Int
	windows  []egl.NativeWindowType

	nextHandle uintptr
	contexts   map[egl.Context]bool
	surfaces   map[egl.Surface]bool
	destroyed  []uintptr
	lastError  egl.Error
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		display:    0xd15,
		accept:     func([]egl.Int) bool { return true },
		width:      640,
		height:     480,
		procs:      map[string]uintptr{},
		libSyms:    map[string]uintptr{},
		exts:       "EGL_KHR_create_context EGL_KHR_surfaceless_context",
		strs: map[egl.Int]string{
			egl.VENDOR:      "Mesa Project",
			egl.VERSION:     "1.5",
			egl.CLIENT_APIS: "OpenGL OpenGL_ES",
		},
		queries:    map[egl.Int]int{},
		nextHandle: 0x100,
		contexts:   map[egl.Context]bool{},
		surfaces:   map[egl.Surface]bool{},
		lastError:  egl.SUCCESS,
	}
}

func (f *fakeDriver) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeDriver) handle() uintptr {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeDriver) Has(s egl.Symbol) bool { return !f.missing[s] }

func (f *fakeDriver) BindAPI(api egl.Enum) bool {
	f.record("BindAPI(0x%x)", api)
	return true
}

func (f *fakeDriver) ChooseConfig(disp egl.Display, attribs []egl.Int) (egl.Config, egl.Int, bool) {
	f.record("ChooseConfig")
	f.configs = append(f.configs, append([]egl.Int(nil), attribs...))
	if f.noConfig {
		f.lastError = egl.BAD_ATTRIBUTE
		return 0, 0, true
	}
	return 0xc0f, 1, true
}

func (f *fakeDriver) CreateContext(disp egl.Display, cfg egl.Config, share egl.Context, attribs []egl.Int) egl.Context {
	f.record("CreateContext(share=0x%x)", share)
	f.requests = append(f.requests, append([]egl.Int(nil), attribs...))
	if !f.accept(attribs) {
		f.lastError = egl.BAD_MATCH
		return egl.NO_CONTEXT
	}
	c := egl.Context(f.handle())
	f.contexts[c] = true
	return c
}

func (f *fakeDriver) CreatePbufferSurface(disp egl.Display, cfg egl.Config, attribs []egl.Int) egl.Surface {
	f.record("CreatePbufferSurface")
	f.pbuffer = append([]egl.Int(nil), attribs...)
	return f.newSurface()
}

func (f *fakeDriver) CreateWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindowType, attribs []egl.Int) egl.Surface {
	f.record("CreateWindowSurface(0x%x)", win)
	f.windows = append(f.windows, win)
	return f.newSurface()
}

func (f *fakeDriver) newSurface() egl.Surface {
	if f.failSurface {
		f.lastError = egl.BAD_ALLOC
		return egl.NO_SURFACE
	}
	s := egl.Surface(f.handle())
	f.surfaces[s] = true
	return s
}

func (f *fakeDriver) DestroyContext(disp egl.Display, ctx egl.Context) bool {
	f.record("DestroyContext(0x%x)", ctx)
	if ctx == egl.NO_CONTEXT {
		panic("eglDestroyContext on EGL_NO_CONTEXT")
	}
	if !f.contexts[ctx] {
		return false
	}
	delete(f.contexts, ctx)
	f.destroyed = append(f.destroyed, uintptr(ctx))
	return true
}

func (f *fakeDriver) DestroySurface(disp egl.Display, surf egl.Surface) bool {
	f.record("DestroySurface(0x%x)", surf)
	if surf == egl.NO_SURFACE {
		panic("eglDestroySurface on EGL_NO_SURFACE")
	}
	if !f.surfaces[surf] {
		return false
	}
	delete(f.surfaces, surf)
	f.destroyed = append(f.destroyed, uintptr(surf))
	return true
}

func (f *fakeDriver) GetConfigAttrib(disp egl.Display, cfg egl.Config, attr egl.Int) (egl.Int, bool) {
	f.attribs = append(f.attribs, attr)
	if attr == egl.NATIVE_VISUAL_ID {
		return 0x21, true
	}
	return 0, true
}

func (f *fakeDriver) GetCurrentContext() egl.Context { return f.current.ctx }
func (f *fakeDriver) GetCurrentDisplay() egl.Display { return f.current.disp }

func (f *fakeDriver) GetCurrentSurface(readdraw egl.Int) egl.Surface {
	if readdraw == egl.READ {
		return f.current.read
	}
	return f.current.draw
}

func (f *fakeDriver) GetDisplay(disp egl.NativeDisplayType) egl.Display {
	f.record("GetDisplay")
	return f.display
}

func (f *fakeDriver) GetError() egl.Error {
	e := f.lastError
	f.lastError = egl.SUCCESS
	return e
}

func (f *fakeDriver) GetProcAddress(name string) uintptr { return f.procs[name] }

func (f *fakeDriver) Lookup(name string) uintptr { return f.libSyms[name] }

func (f *fakeDriver) Initialize(disp egl.Display) (egl.Int, egl.Int, bool) {
	f.record("Initialize")
	return 1, 5, true
}

func (f *fakeDriver) MakeCurrent(disp egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	f.record("MakeCurrent(ctx=0x%x)", ctx)
	if ctx == egl.NO_CONTEXT {
		f.current = binding{}
		return true
	}
	f.current = binding{disp: disp, draw: draw, read: read, ctx: ctx}
	return true
}

func (f *fakeDriver) QueryString(disp egl.Display, name egl.Int) string {
	f.queries[name]++
	if name == egl.EXTENSIONS {
		return f.exts
	}
	return f.strs[name]
}

func (f *fakeDriver) QuerySurface(disp egl.Display, surf egl.Surface, attr egl.Int) (egl.Int, bool) {
	f.record("QuerySurface(0x%x)", attr)
	if f.failQuery || !f.surfaces[surf] {
		f.lastError = egl.BAD_SURFACE
		return 0, false
	}
	switch attr {
	case egl.WIDTH:
		return f.width, true
	case egl.HEIGHT:
		return f.height, true
	}
	return 0, false
}

func (f *fakeDriver) SwapBuffers(disp egl.Display, surf egl.Surface) bool {
	f.record("SwapBuffers(0x%x)", surf)
	return f.surfaces[surf]
}

func (f *fakeDriver) Terminate(disp egl.Display) bool {
	f.record("Terminate")
	return true
}

func (f *fakeDriver) SwapInterval(disp egl.Display, interval egl.Int) bool {
	f.record("SwapInterval(%d)", interval)
	return true
}

func (f *fakeDriver) ReleaseThread() bool {
	f.record("ReleaseThread")
	return true
}

// attrib returns the value of key in an EGL_NONE terminated list.
func attrib(attribs []egl.Int, key egl.Int) (egl.Int, bool) {
	for i := 0; i+1 < len(attribs); i += 2 {
		if attribs[i] == key {
			return attribs[i+1], true
		}
	}
	return 0, false
}

// requestedVersion decodes a context request. Legacy requests carry
// only EGL_CONTEXT_CLIENT_VERSION.
func requestedVersion(attribs []egl.Int) (v Version, legacy bool) {
	major, _ := attrib(attribs, egl.CONTEXT_MAJOR_VERSION_KHR)
	minor, ok := attrib(attribs, egl.CONTEXT_MINOR_VERSION_KHR)
	return Version{int(major), int(minor)}, !ok
}

func acceptUpTo(top Version) func([]egl.Int) bool {
	return func(attribs []egl.Int) bool {
		v, legacy := requestedVersion(attribs)
		if legacy {
			return false
		}
		return v.Major < top.Major || v.Major == top.Major && v.Minor <= top.Minor
	}
}
