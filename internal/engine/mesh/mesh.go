// Package mesh renders textured, shadow-receiving meshes.
package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/prestream/prestream/internal/engine/shader"
	"github.com/prestream/prestream/pkg/math"
	"github.com/prestream/prestream/pkg/obj"
)

// GpuMesh is a mesh uploaded to the GPU, paired with the texture it is
// drawn with. The texture is borrowed: Destroy does not free it.
type GpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	texture    uint32
}

// Destroy releases the vertex buffers. The borrowed texture stays alive.
func (m *GpuMesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}

// Renderer owns the lit mesh shader program and its uniforms. One renderer
// draws all scene meshes; per-mesh state is the model transform and the
// mesh's own buffers.
type Renderer struct {
	program uint32

	uniModel       int32
	uniView        int32
	uniViewToLight int32
	uniLightDir    int32
	uniLightColor  int32
	uniTex         int32
	uniShadowMap   int32

	attrVert int32
	attrUV   int32
	attrNorm int32
}

// NewRenderer compiles the mesh shader program.
func NewRenderer(vertexSrc, fragmentSrc string) (*Renderer, error) {
	program, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	r := &Renderer{
		program:        program,
		uniModel:       shader.GetUniform(program, "model"),
		uniView:        shader.GetUniform(program, "view"),
		uniViewToLight: shader.GetUniform(program, "view_to_light"),
		uniLightDir:    shader.GetUniform(program, "light_dir"),
		uniLightColor:  shader.GetUniform(program, "light_color"),
		uniTex:         shader.GetUniform(program, "tex"),
		uniShadowMap:   shader.GetUniform(program, "shadow_map"),
		attrVert:       shader.GetAttrib(program, "in_vert"),
		attrUV:         shader.GetAttrib(program, "in_uv"),
		attrNorm:       shader.GetAttrib(program, "in_norm"),
	}

	return r, nil
}

// Upload creates GPU buffers for a parsed mesh. The depth-only shadow pass
// shares the same vertex layout, so one upload serves both passes.
func (r *Renderer) Upload(m *obj.Mesh, texture uint32) (*GpuMesh, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("mesh has no geometry")
	}

	gm := &GpuMesh{
		indexCount: int32(len(m.Indices)),
		texture:    texture,
	}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	packed := packVertices(m.Vertices)
	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(packed), gl.Ptr(packed), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	// A pass's program may not declare every attribute; bind only the
	// locations that resolved.
	if r.attrVert >= 0 {
		gl.EnableVertexAttribArray(uint32(r.attrVert))
		gl.VertexAttribPointerWithOffset(uint32(r.attrVert), 4, gl.FLOAT, false, VertexStride, offsetPosition)
	}
	if r.attrUV >= 0 {
		gl.EnableVertexAttribArray(uint32(r.attrUV))
		gl.VertexAttribPointerWithOffset(uint32(r.attrUV), 2, gl.FLOAT, false, VertexStride, offsetTexCoord)
	}
	if r.attrNorm >= 0 {
		gl.EnableVertexAttribArray(uint32(r.attrNorm))
		gl.VertexAttribPointerWithOffset(uint32(r.attrNorm), 3, gl.FLOAT, false, VertexStride, offsetNormal)
	}

	gl.BindVertexArray(0)

	return gm, nil
}

// SetCameraTransform sets the world-to-clip matrix.
func (r *Renderer) SetCameraTransform(m math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniView, 1, false, m.Ptr())
}

// SetModelTransform sets the model-to-world matrix.
func (r *Renderer) SetModelTransform(m math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniModel, 1, false, m.Ptr())
}

// SetViewToLight sets the clip-to-light-clip matrix used for the shadow
// lookup.
func (r *Renderer) SetViewToLight(m math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniViewToLight, 1, false, m.Ptr())
}

// SetLightDir sets the directional light direction.
func (r *Renderer) SetLightDir(dir math.Vec3) {
	gl.UseProgram(r.program)
	gl.Uniform3f(r.uniLightDir, dir.X, dir.Y, dir.Z)
}

// SetLightColor sets the directional light color.
func (r *Renderer) SetLightColor(color math.Vec3) {
	gl.UseProgram(r.program)
	gl.Uniform3f(r.uniLightColor, color.X, color.Y, color.Z)
}

// SetShadowMapUnit tells the shader which texture unit holds the shadow
// map depth texture.
func (r *Renderer) SetShadowMapUnit(unit int32) {
	gl.UseProgram(r.program)
	gl.Uniform1i(r.uniShadowMap, unit)
}

// Draw renders the mesh with its texture on unit 0.
func (r *Renderer) Draw(m *GpuMesh) {
	gl.UseProgram(r.program)
	gl.Uniform1i(r.uniTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, m.texture)

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases the shader program.
func (r *Renderer) Destroy() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
