package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/prestream/prestream/internal/engine/shader"
	"github.com/prestream/prestream/pkg/math"
)

// DepthRenderer draws meshes into the shadow map with a depth-only program.
// It shares GpuMesh buffers with Renderer; both programs declare the same
// explicit attribute locations, so one VAO serves both passes.
type DepthRenderer struct {
	program  uint32
	uniModel int32
	uniLight int32
}

// NewDepthRenderer compiles the depth-only shadow program.
func NewDepthRenderer(vertexSrc, fragmentSrc string) (*DepthRenderer, error) {
	program, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("depth shader: %w", err)
	}

	return &DepthRenderer{
		program:  program,
		uniModel: shader.GetUniform(program, "model"),
		uniLight: shader.GetUniform(program, "light_transform"),
	}, nil
}

// SetLightTransform sets the world-to-light-clip matrix.
func (r *DepthRenderer) SetLightTransform(m math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniLight, 1, false, m.Ptr())
}

// SetModelTransform sets the model-to-world matrix.
func (r *DepthRenderer) SetModelTransform(m math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniModel, 1, false, m.Ptr())
}

// Draw renders the mesh geometry, depth only.
func (r *DepthRenderer) Draw(m *GpuMesh) {
	gl.UseProgram(r.program)
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases the shader program.
func (r *DepthRenderer) Destroy() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
