// Package post applies the fullscreen CRT-style postprocess pass.
package post

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/prestream/prestream/internal/engine/shader"
)

// Renderer samples the offscreen scene texture onto a fullscreen triangle
// pair, applying the time-animated screen effect.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	uniTex    int32
	uniTime   int32
	uniAspect int32
}

// NewRenderer compiles the postprocess shader and uploads the fullscreen
// quad.
func NewRenderer(vertexSrc, fragmentSrc string) (*Renderer, error) {
	program, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("postprocess shader: %w", err)
	}

	r := &Renderer{
		program:   program,
		uniTex:    shader.GetUniform(program, "screen_tex"),
		uniTime:   shader.GetUniform(program, "time"),
		uniAspect: shader.GetUniform(program, "aspect_ratio"),
	}

	// Fullscreen quad in NDC with matching texture coordinates.
	verts := [24]float32{
		-1, -1, 0, 0,
		1, -1, 1, 0,
		1, 1, 1, 1,

		-1, -1, 0, 0,
		1, 1, 1, 1,
		-1, 1, 0, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.BindVertexArray(0)

	return r, nil
}

// Draw renders the scene texture to the bound framebuffer with the screen
// effect. time is seconds since startup.
func (r *Renderer) Draw(sceneTex uint32, time, aspect float32) {
	gl.UseProgram(r.program)
	gl.Uniform1i(r.uniTex, 0)
	gl.Uniform1f(r.uniTime, time)
	gl.Uniform1f(r.uniAspect, aspect)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sceneTex)

	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy releases the shader program and quad buffers.
func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
