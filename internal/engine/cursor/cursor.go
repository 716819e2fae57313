// Package cursor renders the blinking text cursor quad.
package cursor

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/prestream/prestream/internal/engine/shader"
)

// Renderer draws a solid rectangle at the text pen position. Blink timing
// is the caller's concern; the renderer only draws when asked.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	uniAspect int32
}

// NewRenderer compiles the cursor shader and prepares the quad buffer.
func NewRenderer(vertexSrc, fragmentSrc string) (*Renderer, error) {
	program, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("cursor shader: %w", err)
	}

	r := &Renderer{
		program:   program,
		uniAspect: shader.GetUniform(program, "aspect_ratio"),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	gl.BindVertexArray(0)

	return r, nil
}

// Draw renders the cursor with its bottom-left corner at (x, y) in
// pre-aspect clip space.
func (r *Renderer) Draw(x, y, width, height, aspect float32) {
	verts := [12]float32{
		x, y,
		x + width, y,
		x + width, y + height,

		x, y,
		x + width, y + height,
		x, y + height,
	}

	gl.UseProgram(r.program)
	gl.Uniform1f(r.uniAspect, aspect)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
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
