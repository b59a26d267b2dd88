// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"

	syscall "golang.org/x/sys/windows"
)

type systemLoader struct{}

type dll struct {
	name   string
	handle syscall.Handle
}

func (systemLoader) Open(name string) (Library, error) {
	handle, err := syscall.LoadLibraryEx(name, 0, syscall.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return nil, fmt.Errorf("egl: failed to load %s: %v", name, err)
	}
	return &dll{name: name, handle: handle}, nil
}

func (d *dll) Name() string {
	return d.name
}

func (d *dll) Lookup(name string) uintptr {
	p, err := syscall.GetProcAddress(d.handle, name)
	if err != nil {
		return 0
	}
	return p
}

func defaultCandidates() []string {
	return []string{"libEGL.dll"}
}

func bytePtrFromString(s string) (*byte, error) {
	return syscall.BytePtrFromString(s)
}

func bytePtrToString(p *byte) string {
	return syscall.BytePtrToString(p)
}
