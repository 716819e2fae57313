package glyph

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/prestream/prestream/internal/engine/shader"
)

const (
	// rightEdge is where a line wraps, in pre-aspect clip space.
	rightEdge = 0.95

	// lineHeightFactor scales the rasterization size into the vertical
	// distance between baselines.
	lineHeightFactor = 400.0
)

// Renderer draws cached glyphs as textured quads in clip space. The quad
// vertex buffer is rebuilt per glyph; the text on screen is a few dozen
// characters, so the renderer favors simplicity over batching.
type Renderer struct {
	cache   *Cache
	program uint32
	vao     uint32
	vbo     uint32

	uniAspect int32
	uniTex    int32

	scale      float32
	lineHeight float32
}

// NewRenderer compiles the glyph shader and prepares the shared quad
// buffer.
func NewRenderer(cache *Cache, vertexSrc, fragmentSrc string) (*Renderer, error) {
	program, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("glyph shader: %w", err)
	}

	scale := 1.0 / 32.0 / float32(cache.PixelSize())

	r := &Renderer{
		cache:      cache,
		program:    program,
		uniAspect:  shader.GetUniform(program, "aspect_ratio"),
		uniTex:     shader.GetUniform(program, "glyph_tex"),
		scale:      scale,
		lineHeight: lineHeightFactor * scale,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	// 6 vertices, 4 floats each (pos2 + uv2), rewritten per glyph.
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.BindVertexArray(0)

	return r, nil
}

// LineHeight returns the baseline-to-baseline distance in clip space.
func (r *Renderer) LineHeight() float32 {
	return r.lineHeight
}

// RenderString draws text starting at pen position (x, y) in pre-aspect
// clip space and returns the final pen position. Newlines reset the pen to
// the starting column one line down. A glyph that would cross the right
// edge wraps to the next line first; if it still does not fit at the line
// origin it is drawn anyway so the pen always makes forward progress.
func (r *Renderer) RenderString(text string, x, y, aspect float32) (float32, float32) {
	gl.UseProgram(r.program)
	gl.Uniform1f(r.uniAspect, aspect)
	gl.Uniform1i(r.uniTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.vao)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	originX := x
	for _, c := range text {
		if c == '\n' {
			x = originX
			y -= r.lineHeight
			continue
		}

		g, ok := r.cache.Get(c)
		if !ok {
			continue
		}

		if x+g.Advance*r.scale > rightEdge {
			if x > originX {
				x = originX
				y -= r.lineHeight
			}
			// Still too wide at the line origin: draw anyway.
		}

		r.drawGlyph(g, x, y)
		x += g.Advance * r.scale
	}

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)

	return x, y
}

// drawGlyph uploads one quad for the glyph at pen position (x, y) and
// draws it.
func (r *Renderer) drawGlyph(g *Glyph, x, y float32) {
	x0 := x + float32(g.Left)*r.scale
	y1 := y + float32(g.Top)*r.scale
	x1 := x0 + float32(g.Width)*r.scale
	y0 := y1 - float32(g.Height)*r.scale

	verts := [24]float32{
		x0, y0, 0, 1,
		x1, y0, 1, 1,
		x1, y1, 1, 0,

		x0, y0, 0, 1,
		x1, y1, 1, 0,
		x0, y1, 0, 0,
	}

	gl.BindTexture(gl.TEXTURE_2D, g.TexID)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
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
