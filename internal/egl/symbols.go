// SPDX-License-Identifier: Unlicense OR MIT

package egl

// Symbol identifies an EGL entry point known to the Table.
type Symbol int

const (
	SymBindAPI Symbol = iota
	SymChooseConfig
	SymCreateContext
	SymCreatePbufferSurface
	SymCreateWindowSurface
	SymDestroyContext
	SymDestroySurface
	SymGetConfigAttrib
	SymGetCurrentContext
	SymGetCurrentDisplay
	SymGetCurrentSurface
	SymGetDisplay
	SymGetError
	SymGetProcAddress
	SymInitialize
	SymMakeCurrent
	SymQueryString
	SymQuerySurface
	SymSwapBuffers
	SymTerminate

	// Optional entry points. They are resolved after SymGetProcAddress
	// so that the extension query can be used as a fallback.
	SymSwapInterval
	SymReleaseThread

	numSymbols
)

type symbolDesc struct {
	name     string
	optional bool
}

var symbols = [numSymbols]symbolDesc{
	SymBindAPI:              {name: "eglBindAPI"},
	SymChooseConfig:         {name: "eglChooseConfig"},
	SymCreateContext:        {name: "eglCreateContext"},
	SymCreatePbufferSurface: {name: "eglCreatePbufferSurface"},
	SymCreateWindowSurface:  {name: "eglCreateWindowSurface"},
	SymDestroyContext:       {name: "eglDestroyContext"},
	SymDestroySurface:       {name: "eglDestroySurface"},
	SymGetConfigAttrib:      {name: "eglGetConfigAttrib"},
	SymGetCurrentContext:    {name: "eglGetCurrentContext"},
	SymGetCurrentDisplay:    {name: "eglGetCurrentDisplay"},
	SymGetCurrentSurface:    {name: "eglGetCurrentSurface"},
	SymGetDisplay:           {name: "eglGetDisplay"},
	SymGetError:             {name: "eglGetError"},
	SymGetProcAddress:       {name: "eglGetProcAddress"},
	SymInitialize:           {name: "eglInitialize"},
	SymMakeCurrent:          {name: "eglMakeCurrent"},
	SymQueryString:          {name: "eglQueryString"},
	SymQuerySurface:         {name: "eglQuerySurface"},
	SymSwapBuffers:          {name: "eglSwapBuffers"},
	SymTerminate:            {name: "eglTerminate"},

	SymSwapInterval:  {name: "eglSwapInterval", optional: true},
	SymReleaseThread: {name: "eglReleaseThread", optional: true},
}

// Name returns the exported name of the entry point, for example
// "eglCreateContext".
func (s Symbol) Name() string {
	if s < 0 || s >= numSymbols {
		return "eglUnknown"
	}
	return symbols[s].name
}

// Optional reports whether the entry point may be absent without
// failing population.
func (s Symbol) Optional() bool {
	if s < 0 || s >= numSymbols {
		return false
	}
	return symbols[s].optional
}

func (s Symbol) String() string {
	return s.Name()
}
