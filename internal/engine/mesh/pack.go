package mesh

import (
	"encoding/binary"
	stdmath "math"

	"github.com/prestream/prestream/pkg/obj"
)

// VertexStride is the byte size of one packed vertex: position (4 floats),
// texture coordinate (2 floats), normal (3 floats), little-endian.
const VertexStride = 9 * 4

// Attribute byte offsets within a packed vertex.
const (
	offsetPosition = 0
	offsetTexCoord = 4 * 4
	offsetNormal   = 6 * 4
)

// packVertices serializes mesh vertices into the interleaved byte layout
// the vertex attributes below describe.
func packVertices(vertices []obj.Vertex) []byte {
	buf := make([]byte, 0, len(vertices)*VertexStride)
	for _, v := range vertices {
		for _, f := range v.Pos {
			buf = appendFloat32(buf, f)
		}
		for _, f := range v.UV {
			buf = appendFloat32(buf, f)
		}
		for _, f := range v.Normal {
			buf = appendFloat32(buf, f)
		}
	}
	return buf
}

func appendFloat32(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, stdmath.Float32bits(f))
}
