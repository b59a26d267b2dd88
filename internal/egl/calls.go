// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

var _ Driver = (*Table)(nil)

// call invokes the entry point s. It reports false without calling
// anything if s is unresolved.
func (t *Table) call(s Symbol, args ...uintptr) (uintptr, bool) {
	fn := t.Addr(s)
	if fn == 0 {
		return 0, false
	}
	r, _, _ := purego.SyscallN(fn, args...)
	return r, true
}

// callBool invokes an entry point returning EGLBoolean. Only the low
// 32 bits of the return register are defined.
func (t *Table) callBool(s Symbol, args ...uintptr) bool {
	r, ok := t.call(s, args...)
	return ok && uint32(r) != FALSE
}

// attribList returns a pointer to the first attribute, or nil for an
// empty list.
func attribList(attribs []Int) *Int {
	if len(attribs) == 0 {
		return nil
	}
	return &attribs[0]
}

func (t *Table) BindAPI(api Enum) bool {
	return t.callBool(SymBindAPI, uintptr(api))
}

func (t *Table) ChooseConfig(disp Display, attribs []Int) (Config, Int, bool) {
	cfg := new(Config)
	n := new(Int)
	a := attribList(attribs)
	ok := t.callBool(SymChooseConfig, uintptr(disp), uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(cfg)), 1, uintptr(unsafe.Pointer(n)))
	runtime.KeepAlive(attribs)
	return *cfg, *n, ok
}

func (t *Table) CreateContext(disp Display, cfg Config, share Context, attribs []Int) Context {
	a := attribList(attribs)
	c, _ := t.call(SymCreateContext, uintptr(disp), uintptr(cfg), uintptr(share), uintptr(unsafe.Pointer(a)))
	runtime.KeepAlive(attribs)
	return Context(c)
}

func (t *Table) CreatePbufferSurface(disp Display, cfg Config, attribs []Int) Surface {
	a := attribList(attribs)
	s, _ := t.call(SymCreatePbufferSurface, uintptr(disp), uintptr(cfg), uintptr(unsafe.Pointer(a)))
	runtime.KeepAlive(attribs)
	return Surface(s)
}

func (t *Table) CreateWindowSurface(disp Display, cfg Config, win NativeWindowType, attribs []Int) Surface {
	a := attribList(attribs)
	s, _ := t.call(SymCreateWindowSurface, uintptr(disp), uintptr(cfg), uintptr(win), uintptr(unsafe.Pointer(a)))
	runtime.KeepAlive(attribs)
	return Surface(s)
}

func (t *Table) DestroyContext(disp Display, ctx Context) bool {
	return t.callBool(SymDestroyContext, uintptr(disp), uintptr(ctx))
}

func (t *Table) DestroySurface(disp Display, surf Surface) bool {
	return t.callBool(SymDestroySurface, uintptr(disp), uintptr(surf))
}

func (t *Table) GetConfigAttrib(disp Display, cfg Config, attr Int) (Int, bool) {
	val := new(Int)
	ok := t.callBool(SymGetConfigAttrib, uintptr(disp), uintptr(cfg), uintptr(attr), uintptr(unsafe.Pointer(val)))
	return *val, ok
}

func (t *Table) GetCurrentContext() Context {
	c, _ := t.call(SymGetCurrentContext)
	return Context(c)
}

func (t *Table) GetCurrentDisplay() Display {
	d, _ := t.call(SymGetCurrentDisplay)
	return Display(d)
}

func (t *Table) GetCurrentSurface(readdraw Int) Surface {
	s, _ := t.call(SymGetCurrentSurface, uintptr(readdraw))
	return Surface(s)
}

func (t *Table) GetDisplay(disp NativeDisplayType) Display {
	d, _ := t.call(SymGetDisplay, uintptr(disp))
	return Display(d)
}

func (t *Table) GetError() Error {
	e, ok := t.call(SymGetError)
	if !ok {
		return NOT_INITIALIZED
	}
	return Error(int32(e))
}

func (t *Table) GetProcAddress(name string) uintptr {
	fn := t.Addr(SymGetProcAddress)
	if fn == 0 {
		return 0
	}
	return t.procAddress(fn, name)
}

// callProcAddress calls the eglGetProcAddress entry point at fn.
func callProcAddress(fn uintptr, name string) uintptr {
	cname, err := bytePtrFromString(name)
	if err != nil {
		return 0
	}
	r, _, _ := purego.SyscallN(fn, uintptr(unsafe.Pointer(cname)))
	runtime.KeepAlive(cname)
	return r
}

func (t *Table) Initialize(disp Display) (Int, Int, bool) {
	major, minor := new(Int), new(Int)
	ok := t.callBool(SymInitialize, uintptr(disp), uintptr(unsafe.Pointer(major)), uintptr(unsafe.Pointer(minor)))
	return *major, *minor, ok
}

func (t *Table) MakeCurrent(disp Display, draw, read Surface, ctx Context) bool {
	return t.callBool(SymMakeCurrent, uintptr(disp), uintptr(draw), uintptr(read), uintptr(ctx))
}

func (t *Table) QueryString(disp Display, name Int) string {
	r, ok := t.call(SymQueryString, uintptr(disp), uintptr(name))
	if !ok {
		return ""
	}
	return goString(r)
}

// goString copies the NUL terminated string at p. The memory is owned
// by the driver and stays valid for the lifetime of the display.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return bytePtrToString(*(**byte)(unsafe.Pointer(&p)))
}

func (t *Table) QuerySurface(disp Display, surf Surface, attr Int) (Int, bool) {
	val := new(Int)
	ok := t.callBool(SymQuerySurface, uintptr(disp), uintptr(surf), uintptr(attr), uintptr(unsafe.Pointer(val)))
	return *val, ok
}

func (t *Table) SwapBuffers(disp Display, surf Surface) bool {
	return t.callBool(SymSwapBuffers, uintptr(disp), uintptr(surf))
}

func (t *Table) Terminate(disp Display) bool {
	return t.callBool(SymTerminate, uintptr(disp))
}

func (t *Table) SwapInterval(disp Display, interval Int) bool {
	return t.callBool(SymSwapInterval, uintptr(disp), uintptr(interval))
}

func (t *Table) ReleaseThread() bool {
	return t.callBool(SymReleaseThread)
}
