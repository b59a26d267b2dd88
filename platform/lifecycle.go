// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"github.com/gpureplay/eglplatform/internal/egl"
)

// MakeContextCurrent binds d to the calling thread, using its surface
// for both drawing and reading.
func (p *Platform) MakeContextCurrent(d GLWindowingData) bool {
	if !p.egl.Has(egl.SymMakeCurrent) {
		return false
	}
	return p.egl.MakeCurrent(d.Display, d.Surface, d.Surface, d.Context)
}

// ReleaseCurrent unbinds the calling thread's context on disp.
func (p *Platform) ReleaseCurrent(disp egl.Display) bool {
	if !p.egl.Has(egl.SymMakeCurrent) {
		return false
	}
	return p.egl.MakeCurrent(disp, egl.NO_SURFACE, egl.NO_SURFACE, egl.NO_CONTEXT)
}

// DeleteContext destroys the surface and the context of d, whichever
// exist. The display is left alone.
func (p *Platform) DeleteContext(d GLWindowingData) {
	if d.HasSurface() && p.egl.Has(egl.SymDestroySurface) {
		p.egl.DestroySurface(d.Display, d.Surface)
	}
	if d.HasContext() && p.egl.Has(egl.SymDestroyContext) {
		p.egl.DestroyContext(d.Display, d.Context)
	}
}

// DeleteReplayContext unbinds the current context before destroying
// d, so no destroyed context is left current.
func (p *Platform) DeleteReplayContext(d GLWindowingData) {
	if !p.egl.Has(egl.SymDestroyContext) {
		return
	}
	p.ReleaseCurrent(d.Display)
	p.DeleteContext(d)
}

// SwapBuffers presents the surface of d. The result is driver defined
// if d has no surface.
func (p *Platform) SwapBuffers(d GLWindowingData) bool {
	return p.egl.SwapBuffers(d.Display, d.Surface)
}

// SetSwapInterval sets the swap interval of the current surface on d's
// display. It reports false if the driver lacks eglSwapInterval.
func (p *Platform) SetSwapInterval(d GLWindowingData, interval int) bool {
	if !p.egl.Has(egl.SymSwapInterval) {
		return false
	}
	return p.egl.SwapInterval(d.Display, egl.Int(interval))
}

// GetOutputWindowDimensions returns the size of d's surface.
//
// Some drivers tie surface state to the current context, so d is made
// current for the query. The previously current binding is restored
// before returning, whether or not the query succeeded.
func (p *Platform) GetOutputWindowDimensions(d GLWindowingData) (width, height int32, err error) {
	prev := GLWindowingData{
		Context: p.egl.GetCurrentContext(),
		Display: p.egl.GetCurrentDisplay(),
		Surface: p.egl.GetCurrentSurface(egl.READ),
	}
	defer p.restoreCurrent(prev, d.Display)
	p.MakeContextCurrent(d)

	w, wok := p.egl.QuerySurface(d.Display, d.Surface, egl.WIDTH)
	h, hok := p.egl.QuerySurface(d.Display, d.Surface, egl.HEIGHT)
	if !wok || !hok {
		code := p.egl.GetError()
		p.log.Warn().Stringer("code", code).Msg("unable to query the surface size")
		err = &Error{Op: "eglQuerySurface", Kind: ErrQuery, Code: code}
	}
	return int32(w), int32(h), err
}

// restoreCurrent makes prev current again. With no display current on
// entry, nothing was bound, so the binding on disp is released.
func (p *Platform) restoreCurrent(prev GLWindowingData, disp egl.Display) {
	if prev.Display == egl.NO_DISPLAY {
		p.ReleaseCurrent(disp)
		return
	}
	p.MakeContextCurrent(prev)
}

// IsOutputWindowVisible always reports true; window visibility is not
// tracked.
func (p *Platform) IsOutputWindowVisible(d GLWindowingData) bool {
	return true
}
