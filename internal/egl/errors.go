// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSymbolResolution is matched by every failure to bind the
	// mandatory entry points, including failure to load the library.
	ErrSymbolResolution = errors.New("egl: symbol resolution failed")
	ErrLibraryNotFound  = errors.New("can't load libEGL")
)

// MissingSymbolsError lists every mandatory entry point that could not
// be resolved in a single population pass.
type MissingSymbolsError struct {
	Lib   string
	Names []string
}

func (e *MissingSymbolsError) Error() string {
	return fmt.Sprintf("%v: %s is missing %s", ErrSymbolResolution, e.Lib, strings.Join(e.Names, ", "))
}

func (e *MissingSymbolsError) Is(target error) bool {
	return target == ErrSymbolResolution
}

// Error is an EGL error code as returned by eglGetError.
type Error Int

const (
	SUCCESS             Error = 0x3000
	NOT_INITIALIZED     Error = 0x3001
	BAD_ACCESS          Error = 0x3002
	BAD_ALLOC           Error = 0x3003
	BAD_ATTRIBUTE       Error = 0x3004
	BAD_CONFIG          Error = 0x3005
	BAD_CONTEXT         Error = 0x3006
	BAD_CURRENT_SURFACE Error = 0x3007
	BAD_DISPLAY         Error = 0x3008
	BAD_MATCH           Error = 0x3009
	BAD_NATIVE_PIXMAP   Error = 0x300a
	BAD_NATIVE_WINDOW   Error = 0x300b
	BAD_PARAMETER       Error = 0x300c
	BAD_SURFACE         Error = 0x300d
	CONTEXT_LOST        Error = 0x300e
)

var errorNames = map[Error]string{
	SUCCESS:             "EGL_SUCCESS",
	NOT_INITIALIZED:     "EGL_NOT_INITIALIZED",
	BAD_ACCESS:          "EGL_BAD_ACCESS",
	BAD_ALLOC:           "EGL_BAD_ALLOC",
	BAD_ATTRIBUTE:       "EGL_BAD_ATTRIBUTE",
	BAD_CONFIG:          "EGL_BAD_CONFIG",
	BAD_CONTEXT:         "EGL_BAD_CONTEXT",
	BAD_CURRENT_SURFACE: "EGL_BAD_CURRENT_SURFACE",
	BAD_DISPLAY:         "EGL_BAD_DISPLAY",
	BAD_MATCH:           "EGL_BAD_MATCH",
	BAD_NATIVE_PIXMAP:   "EGL_BAD_NATIVE_PIXMAP",
	BAD_NATIVE_WINDOW:   "EGL_BAD_NATIVE_WINDOW",
	BAD_PARAMETER:       "EGL_BAD_PARAMETER",
	BAD_SURFACE:         "EGL_BAD_SURFACE",
	CONTEXT_LOST:        "EGL_CONTEXT_LOST",
}

// String returns the symbolic name of the code, for example
// "EGL_BAD_MATCH".
func (e Error) String() string {
	if n, ok := errorNames[e]; ok {
		return n
	}
	return fmt.Sprintf("EGL_UNKNOWN_ERROR(0x%x)", int32(e))
}

func (e Error) Error() string {
	return fmt.Sprintf("egl: %s (0x%x)", e.String(), int32(e))
}
