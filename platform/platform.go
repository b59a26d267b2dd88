// SPDX-License-Identifier: Unlicense OR MIT

// Package platform creates, shares and destroys OpenGL ES contexts
// through EGL for replay. It negotiates the richest context the driver
// accepts and tolerates partial drivers.
//
// A context is current per OS thread. All calls involving a given
// GLWindowingData must come from one goroutine locked to its thread,
// see runtime.LockOSThread.
package platform

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gpureplay/eglplatform/internal/config"
	"github.com/gpureplay/eglplatform/internal/egl"
)

// ReplayStatus is the outcome of InitialiseAPI.
type ReplayStatus uint8

const (
	Succeeded ReplayStatus = iota
	APIInitFailed
	// APIHardwareUnsupported reports a working EGL that can't provide
	// an OpenGL ES 3.x context.
	APIHardwareUnsupported
)

func (s ReplayStatus) String() string {
	switch s {
	case Succeeded:
		return "Succeeded"
	case APIInitFailed:
		return "APIInitFailed"
	case APIHardwareUnsupported:
		return "APIHardwareUnsupported"
	}
	return fmt.Sprintf("ReplayStatus(%d)", uint8(s))
}

// Platform is the EGL replay platform. It does no locking; see the
// package documentation.
type Platform struct {
	egl egl.Driver
	log *zerolog.Logger

	// exts caches the extension list of each initialized display.
	exts map[egl.Display][]string
}

type Option func(p *Platform)

func WithLogger(l *zerolog.Logger) Option {
	return func(p *Platform) {
		if l != nil {
			p.log = l
		}
	}
}

// symbolLookup is implemented by drivers that can resolve symbols
// directly in the driver library.
type symbolLookup interface {
	Lookup(name string) uintptr
}

type populator interface {
	Populate() error
}

// New returns a Platform calling d.
func New(d egl.Driver, opts ...Option) *Platform {
	nop := zerolog.Nop()
	p := &Platform{egl: d, log: &nop, exts: make(map[egl.Display][]string)}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Open loads the system EGL library and resolves its entry points.
func Open(c config.Library, opts ...Option) (*Platform, error) {
	p := New(nil, opts...)
	t := egl.NewTable(nil, c.Candidates, p.log)
	p.egl = t
	if err := p.PopulateForReplay(); err != nil {
		return nil, err
	}
	p.log.Debug().Str("lib", t.LibraryName()).Msg("EGL entry points resolved")
	return p, nil
}

// PopulateForReplay resolves the driver entry points, if the driver
// needs it. It is safe to call more than once.
func (p *Platform) PopulateForReplay() error {
	if t, ok := p.egl.(populator); ok {
		return t.Populate()
	}
	return nil
}

// InitialiseAPI opens and initializes the default display and creates
// the off-screen replay context. A driver that can't provide an
// OpenGL ES 3.x context is reported as APIHardwareUnsupported.
func (p *Platform) InitialiseAPI() (GLWindowingData, ReplayStatus, error) {
	p.egl.BindAPI(egl.OPENGL_ES_API)

	disp := p.egl.GetDisplay(egl.DEFAULT_DISPLAY)
	if disp == egl.NO_DISPLAY {
		p.log.Error().Msg("couldn't open default EGL display")
		return GLWindowingData{}, APIInitFailed, &Error{Op: "eglGetDisplay", Kind: ErrNoDisplay, Code: p.egl.GetError()}
	}
	major, minor, ok := p.egl.Initialize(disp)
	if ok {
		p.log.Debug().Int32("major", int32(major)).Int32("minor", int32(minor)).Msg("EGL display initialized")
		exts := p.extensions(disp)
		if e := p.log.Debug(); e.Enabled() {
			e.Str("vendor", p.egl.QueryString(disp, egl.VENDOR)).
				Str("version", p.egl.QueryString(disp, egl.VERSION)).
				Str("apis", p.egl.QueryString(disp, egl.CLIENT_APIS)).
				Int("extensions", len(exts)).
				Msg("EGL driver")
		}
	} else {
		p.log.Warn().Stringer("code", p.egl.GetError()).Msg("eglInitialize failed")
	}

	base := GLWindowingData{Display: disp, Context: egl.NO_CONTEXT}
	ctx, err := p.MakeContext(base)
	if !ctx.Valid() {
		p.log.Error().Err(err).Msg("couldn't create OpenGL ES 3.x replay context - required for replay")
		p.DeleteContext(ctx)
		return GLWindowingData{}, APIHardwareUnsupported, fmt.Errorf("replay requires OpenGL ES 3.x: %w", err)
	}
	return ctx, Succeeded, nil
}

// extensions returns the extension list of disp, querying the driver
// once per display.
func (p *Platform) extensions(disp egl.Display) []string {
	if exts, ok := p.exts[disp]; ok {
		return exts
	}
	exts := egl.Extensions(p.egl, disp)
	p.exts[disp] = exts
	return exts
}

// GetReplayFunction returns the address of a client API function,
// asking eglGetProcAddress first and the driver library second.
func (p *Platform) GetReplayFunction(name string) uintptr {
	if fn := p.egl.GetProcAddress(name); fn != 0 {
		return fn
	}
	if l, ok := p.egl.(symbolLookup); ok {
		return l.Lookup(name)
	}
	return 0
}

// Shutdown destroys the replay context and terminates its display.
func (p *Platform) Shutdown(replay GLWindowingData) {
	p.DeleteReplayContext(replay)
	if replay.Display != egl.NO_DISPLAY {
		p.egl.Terminate(replay.Display)
		delete(p.exts, replay.Display)
	}
	if p.egl.Has(egl.SymReleaseThread) {
		p.egl.ReleaseThread()
	}
}
