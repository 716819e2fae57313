// Package framebuffer provides an offscreen color+depth render target.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen render target with an RGBA color texture and
// a depth renderbuffer. The scene pass renders into it and the postprocess
// pass samples the color texture.
type Framebuffer struct {
	fbo      uint32
	colorTex uint32
	depthRBO uint32
	width    int32
	height   int32
}

// New creates a framebuffer of the given size.
func New(width, height int32) (*Framebuffer, error) {
	f := &Framebuffer{width: width, height: height}

	gl.GenFramebuffers(1, &f.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)

	gl.GenTextures(1, &f.colorTex)
	gl.BindTexture(gl.TEXTURE_2D, f.colorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, f.colorTex, 0)

	gl.GenRenderbuffers(1, &f.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, f.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, f.depthRBO)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		f.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f, nil
}

// Bind targets the framebuffer and sets the viewport to its size.
func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	gl.Viewport(0, 0, f.width, f.height)
}

// Unbind restores the default framebuffer. The caller resets the viewport.
func (f *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ColorTexture returns the GL name of the color attachment.
func (f *Framebuffer) ColorTexture() uint32 {
	return f.colorTex
}

// Size returns the framebuffer dimensions.
func (f *Framebuffer) Size() (int32, int32) {
	return f.width, f.height
}

// Resize recreates the attachments at a new size.
func (f *Framebuffer) Resize(width, height int32) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height

	gl.BindTexture(gl.TEXTURE_2D, f.colorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, f.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Destroy releases all GL resources. Safe to call more than once.
func (f *Framebuffer) Destroy() {
	if f.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &f.depthRBO)
		f.depthRBO = 0
	}
	if f.colorTex != 0 {
		gl.DeleteTextures(1, &f.colorTex)
		f.colorTex = 0
	}
	if f.fbo != 0 {
		gl.DeleteFramebuffers(1, &f.fbo)
		f.fbo = 0
	}
}
