// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Library is a loaded native module.
type Library interface {
	// Name is the candidate name the library was opened with.
	Name() string
	// Lookup returns the address of the exported symbol, or 0.
	Lookup(name string) uintptr
}

// Loader opens native modules by name or path.
type Loader interface {
	Open(name string) (Library, error)
}

// Table binds the EGL entry points of a dynamically loaded driver.
//
// A Table is populated once, during single-threaded initialization,
// and is safe for concurrent reads afterwards. The loaded library is
// never unloaded.
type Table struct {
	loader     Loader
	candidates []string
	log        *zerolog.Logger

	lib   Library
	addrs [numSymbols]uintptr
	// procAddress invokes eglGetProcAddress at fn.
	procAddress func(fn uintptr, name string) uintptr
}

// NewTable returns an unpopulated table. A nil loader selects the
// system dynamic loader and empty candidates select the platform's
// default libEGL names.
func NewTable(loader Loader, candidates []string, log *zerolog.Logger) *Table {
	if loader == nil {
		loader = systemLoader{}
	}
	if len(candidates) == 0 {
		candidates = defaultCandidates()
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Table{
		loader:      loader,
		candidates:  slices.Compact(slices.Clone(candidates)),
		log:         log,
		procAddress: callProcAddress,
	}
}

// Populate loads the driver library and resolves every known entry
// point. Optional entry points missing from the library's export table
// are queried through eglGetProcAddress. Resolution continues past
// missing mandatory entry points so that all of them are reported at
// once; Populate fails if any of them is unresolved.
//
// Calling Populate again only resolves what is still missing, using
// the library opened by the first call.
func (t *Table) Populate() error {
	if t.lib == nil {
		lib, err := t.open()
		if err != nil {
			t.log.Error().Err(err).Msg("can't load libEGL")
			return err
		}
		t.lib = lib
	}
	t.log.Debug().Str("lib", t.lib.Name()).Msg("initialising EGL function pointers")

	var missing []string
	for i, desc := range symbols {
		s := Symbol(i)
		if t.addrs[s] == 0 {
			t.addrs[s] = t.lib.Lookup(desc.name)
		}
		if t.addrs[s] == 0 && desc.optional {
			t.addrs[s] = t.extProc(desc.name)
		}
		if t.addrs[s] == 0 && !desc.optional {
			t.log.Warn().Str("symbol", desc.name).Msg("unable to load")
			missing = append(missing, desc.name)
		}
	}
	if len(missing) > 0 {
		return &MissingSymbolsError{Lib: t.lib.Name(), Names: missing}
	}
	return nil
}

func (t *Table) open() (Library, error) {
	for _, name := range t.candidates {
		lib, err := t.loader.Open(name)
		if err == nil {
			return lib, nil
		}
		t.log.Debug().Str("lib", name).Err(err).Msg("candidate not loaded")
	}
	return nil, fmt.Errorf("%w: %w (tried %s)", ErrSymbolResolution, ErrLibraryNotFound, strings.Join(t.candidates, ", "))
}

func (t *Table) extProc(name string) uintptr {
	fn := t.addrs[SymGetProcAddress]
	if fn == 0 {
		return 0
	}
	return t.procAddress(fn, name)
}

// Has reports whether the entry point is resolved.
func (t *Table) Has(s Symbol) bool {
	return t.Addr(s) != 0
}

// Addr returns the resolved address of the entry point, or 0.
func (t *Table) Addr(s Symbol) uintptr {
	if s < 0 || s >= numSymbols {
		return 0
	}
	return t.addrs[s]
}

// Missing returns the names of the mandatory entry points that are
// currently unresolved.
func (t *Table) Missing() []string {
	var names []string
	for i, desc := range symbols {
		if !desc.optional && t.addrs[i] == 0 {
			names = append(names, desc.name)
		}
	}
	return names
}

// Lookup resolves name directly in the loaded library, bypassing
// eglGetProcAddress. It returns 0 before a library is loaded.
func (t *Table) Lookup(name string) uintptr {
	if t.lib == nil {
		return 0
	}
	return t.lib.Lookup(name)
}

// LibraryName returns the name of the loaded library, or "" if none is
// loaded.
func (t *Table) LibraryName() string {
	if t.lib == nil {
		return ""
	}
	return t.lib.Name()
}
