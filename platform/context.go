// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"github.com/gpureplay/eglplatform/internal/egl"
)

// versionLadder lists the OpenGL ES tiers to request, richest first.
// Drivers reject unsupported minor versions instead of negotiating
// down.
var versionLadder = []Version{
	{3, 2}, {3, 1}, {3, 0},
}

// legacyVersion is reported for contexts created through
// EGL_CONTEXT_CLIENT_VERSION.
var legacyVersion = Version{3, 0}

const pbufferSize = 32

// MakeContext creates a context sharing objects with share, on share's
// display, backed by a small pbuffer.
func (p *Platform) MakeContext(share GLWindowingData) (GLWindowingData, error) {
	for _, s := range []egl.Symbol{egl.SymCreateContext, egl.SymChooseConfig, egl.SymCreatePbufferSurface} {
		if !p.egl.Has(s) {
			return GLWindowingData{}, &Error{Op: s.Name(), Kind: ErrSymbolResolution}
		}
	}
	return p.CreateWindowingData(share.Display, share.Context, 0)
}

// MakeOutputWindow creates a context sharing objects with share and a
// surface on window, on the default display. An Unknown window system
// creates an off-screen context. The depth flag is ignored.
func (p *Platform) MakeOutputWindow(window WindowingData, depth bool, share GLWindowingData) (GLWindowingData, error) {
	win, err := nativeWindow(window)
	if err != nil {
		// Carry on with a window-less context.
		p.log.Error().Err(err).Stringer("system", window.System).Msg("unexpected window system")
	}
	disp := p.egl.GetDisplay(egl.DEFAULT_DISPLAY)
	if disp == egl.NO_DISPLAY {
		p.log.Error().Msg("couldn't open default EGL display")
		return GLWindowingData{}, &Error{Op: "eglGetDisplay", Kind: ErrNoDisplay, Code: p.egl.GetError()}
	}
	ret, cerr := p.CreateWindowingData(disp, share.Context, win)
	if cerr != nil {
		return ret, cerr
	}
	return ret, err
}

// CreateWindowingData chooses a config, negotiates a context and
// creates its surface: a window surface if win is set, a pbuffer
// otherwise.
//
// If surface creation fails the returned record still holds the
// context and the error matches ErrSurfaceCreation; the caller must
// delete the record.
func (p *Platform) CreateWindowingData(disp egl.Display, share egl.Context, win egl.NativeWindowType) (GLWindowingData, error) {
	ret := GLWindowingData{Display: disp}

	surfaceType := egl.Int(egl.PBUFFER_BIT)
	if win != 0 {
		surfaceType = egl.WINDOW_BIT
	}
	attribs := []egl.Int{
		egl.RED_SIZE, 8,
		egl.GREEN_SIZE, 8,
		egl.BLUE_SIZE, 8,
		egl.RENDERABLE_TYPE, egl.OPENGL_ES3_BIT_KHR,
		egl.CONFORMANT, egl.OPENGL_ES3_BIT_KHR,
		egl.SURFACE_TYPE, surfaceType,
		egl.COLOR_BUFFER_TYPE, egl.RGB_BUFFER,
		egl.NONE,
	}
	cfg, n, ok := p.egl.ChooseConfig(disp, attribs)
	if !ok || n < 1 {
		code := p.egl.GetError()
		p.log.Error().Stringer("code", code).Msg("couldn't find a suitable EGL config")
		return ret, &Error{Op: "eglChooseConfig", Kind: ErrNoConfig, Code: code}
	}

	p.logConfig(disp, cfg)
	if !egl.HasExtension(p.extensions(disp), "EGL_KHR_create_context") {
		p.log.Debug().Msg("EGL_KHR_create_context not advertised, versioned context requests may fail")
	}

	ctx, ver, legacy := p.createContext(disp, cfg, share)
	if ctx == egl.NO_CONTEXT {
		code := p.egl.GetError()
		p.log.Error().Stringer("code", code).Msg("couldn't create GL ES context")
		return ret, &Error{Op: "eglCreateContext", Kind: ErrContextCreation, Code: code}
	}
	ret.Context = ctx
	ret.Version = ver
	ret.Legacy = legacy

	if win != 0 {
		ret.Surface = p.egl.CreateWindowSurface(disp, cfg, win, []egl.Int{egl.NONE})
		if ret.Surface == egl.NO_SURFACE {
			code := p.egl.GetError()
			p.log.Error().Stringer("code", code).Msg("couldn't create surface for window")
			return ret, &Error{Op: "eglCreateWindowSurface", Kind: ErrSurfaceCreation, Code: code}
		}
		return ret, nil
	}
	pbAttribs := []egl.Int{
		egl.WIDTH, pbufferSize,
		egl.HEIGHT, pbufferSize,
		egl.NONE,
	}
	ret.Surface = p.egl.CreatePbufferSurface(disp, cfg, pbAttribs)
	if ret.Surface == egl.NO_SURFACE {
		code := p.egl.GetError()
		p.log.Error().Stringer("code", code).Msg("couldn't create a suitable PBuffer")
		return ret, &Error{Op: "eglCreatePbufferSurface", Kind: ErrSurfaceCreation, Code: code}
	}
	return ret, nil
}

func (p *Platform) logConfig(disp egl.Display, cfg egl.Config) {
	if e := p.log.Debug(); e.Enabled() {
		caveat, _ := p.egl.GetConfigAttrib(disp, cfg, egl.CONFIG_CAVEAT)
		visual, _ := p.egl.GetConfigAttrib(disp, cfg, egl.NATIVE_VISUAL_ID)
		depth, _ := p.egl.GetConfigAttrib(disp, cfg, egl.DEPTH_SIZE)
		e.Int32("caveat", int32(caveat)).Int32("visual", int32(visual)).Int32("depth", int32(depth)).Msg("EGL config chosen")
	}
}

// createContext walks versionLadder and falls back to requesting
// client version 3. Every request asks for a debug context.
func (p *Platform) createContext(disp egl.Display, cfg egl.Config, share egl.Context) (egl.Context, Version, bool) {
	for _, v := range versionLadder {
		attribs := []egl.Int{
			egl.CONTEXT_MAJOR_VERSION_KHR, egl.Int(v.Major),
			egl.CONTEXT_MINOR_VERSION_KHR, egl.Int(v.Minor),
			egl.CONTEXT_FLAGS_KHR, egl.CONTEXT_OPENGL_DEBUG_BIT_KHR,
			egl.NONE,
		}
		if ctx := p.egl.CreateContext(disp, cfg, share, attribs); ctx != egl.NO_CONTEXT {
			p.log.Debug().Int("major", v.Major).Int("minor", v.Minor).Msg("created GL ES context")
			return ctx, v, false
		}
		p.log.Debug().Int("major", v.Major).Int("minor", v.Minor).Stringer("code", p.egl.GetError()).Msg("GL ES version rejected")
	}
	attribs := []egl.Int{
		egl.CONTEXT_CLIENT_VERSION, 3,
		egl.CONTEXT_FLAGS_KHR, egl.CONTEXT_OPENGL_DEBUG_BIT_KHR,
		egl.NONE,
	}
	ctx := p.egl.CreateContext(disp, cfg, share, attribs)
	if ctx != egl.NO_CONTEXT {
		p.log.Debug().Msg("created GL ES context with client version 3")
	}
	return ctx, legacyVersion, true
}
