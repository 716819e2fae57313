// Package shadow implements the depth-only shadow map pass.
package shadow

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/prestream/prestream/pkg/math"
)

// Map is a persistent depth-only framebuffer the scene is rendered into
// from the light's point of view. It is created once and reused every frame.
type Map struct {
	fbo        uint32
	depthTex   uint32
	resolution int32

	// saved viewport, restored on Unbind
	viewport [4]int32
}

// New creates a shadow map with a square depth texture of the given
// resolution.
func New(resolution int32) (*Map, error) {
	m := &Map{resolution: resolution}

	gl.GenTextures(1, &m.depthTex)
	gl.BindTexture(gl.TEXTURE_2D, m.depthTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, resolution, resolution, 0,
		gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	// Fragments outside the light's frustum sample the border and count
	// as lit rather than shadowed.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	border := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.GenFramebuffers(1, &m.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, m.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, m.depthTex, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		m.Destroy()
		return nil, fmt.Errorf("shadow framebuffer incomplete: 0x%x", status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return m, nil
}

// Bind targets the shadow framebuffer, clears its depth and sets the
// viewport to the shadow resolution. The previous viewport is restored by
// Unbind.
func (m *Map) Bind() {
	gl.GetIntegerv(gl.VIEWPORT, &m.viewport[0])
	gl.BindFramebuffer(gl.FRAMEBUFFER, m.fbo)
	gl.Viewport(0, 0, m.resolution, m.resolution)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// Unbind restores the default framebuffer and the saved viewport.
func (m *Map) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(m.viewport[0], m.viewport[1], m.viewport[2], m.viewport[3])
}

// BindTexture binds the depth texture to the given texture unit for
// sampling in the lit pass.
func (m *Map) BindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, m.depthTex)
}

// Destroy releases the framebuffer and depth texture.
func (m *Map) Destroy() {
	if m.fbo != 0 {
		gl.DeleteFramebuffers(1, &m.fbo)
		m.fbo = 0
	}
	if m.depthTex != 0 {
		gl.DeleteTextures(1, &m.depthTex)
		m.depthTex = 0
	}
}

// LightTransform builds the world-to-light-clip matrix for a directional
// light: orient the world so the light looks down lightDir, then squash
// depth and height into the unit cube the orthographic shadow pass uses.
func LightTransform(lightDir math.Vec3) math.Mat4 {
	view := math.LookAt(math.Vec3{}, lightDir, math.Vec3{Y: 1})
	return math.Scale(1, 0.5, 0.1).Mul(view)
}
