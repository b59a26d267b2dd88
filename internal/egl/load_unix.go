// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || freebsd || linux

package egl

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

type systemLoader struct{}

type sharedObject struct {
	name   string
	handle uintptr
}

func (systemLoader) Open(name string) (Library, error) {
	h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("egl: failed to load %s: %w", name, err)
	}
	return &sharedObject{name: name, handle: h}, nil
}

func (so *sharedObject) Name() string {
	return so.name
}

func (so *sharedObject) Lookup(name string) uintptr {
	sym, err := purego.Dlsym(so.handle, name)
	if err != nil {
		return 0
	}
	return sym
}

func defaultCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libEGL.dylib"}
	case "android":
		return []string{"libEGL.so"}
	}
	return []string{"libEGL.so", "libEGL.so.1"}
}

func bytePtrFromString(s string) (*byte, error) {
	return unix.BytePtrFromString(s)
}

func bytePtrToString(p *byte) string {
	return unix.BytePtrToString(p)
}
