// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"errors"
	"fmt"

	"github.com/gpureplay/eglplatform/internal/egl"
)

var (
	ErrSymbolResolution     = egl.ErrSymbolResolution
	ErrNoDisplay            = errors.New("couldn't open default EGL display")
	ErrNoConfig             = errors.New("couldn't find a suitable EGL config")
	ErrContextCreation      = errors.New("couldn't create GL ES context")
	ErrSurfaceCreation      = errors.New("couldn't create surface")
	ErrQuery                = errors.New("unable to query the surface size")
	ErrUnsupportedWindowing = errors.New("unexpected window system")
)

// Error describes a failed driver operation. Kind is one of the Err
// values above and is matched by errors.Is.
type Error struct {
	Op   string
	Kind error
	// Code is the eglGetError value after the failure, if queried.
	Code egl.Error
}

func (e *Error) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s (0x%x)", e.Op, e.Kind, e.Code.String(), int32(e.Code))
}

func (e *Error) Unwrap() error {
	return e.Kind
}
