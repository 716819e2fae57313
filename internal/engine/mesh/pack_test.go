package mesh

import (
	"encoding/binary"
	stdmath "math"
	"testing"

	"github.com/prestream/prestream/pkg/obj"
)

func TestPackVerticesLayout(t *testing.T) {
	verts := []obj.Vertex{
		{
			Pos:    [4]float32{1, 2, 3, 1},
			UV:     [2]float32{0.25, 0.75},
			Normal: [3]float32{0, 1, 0},
		},
		{
			Pos:    [4]float32{-1, -2, -3, 1},
			UV:     [2]float32{0, 1},
			Normal: [3]float32{0, 0, -1},
		},
	}

	buf := packVertices(verts)
	if len(buf) != 2*VertexStride {
		t.Fatalf("packed size = %d, want %d", len(buf), 2*VertexStride)
	}

	readFloat := func(off int) float32 {
		return stdmath.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
	}

	// Second vertex, attribute offsets relative to its stride base.
	base := VertexStride
	if got := readFloat(base + offsetPosition); got != -1 {
		t.Errorf("pos.x = %v, want -1", got)
	}
	if got := readFloat(base + offsetPosition + 12); got != 1 {
		t.Errorf("pos.w = %v, want 1", got)
	}
	if got := readFloat(base + offsetTexCoord + 4); got != 1 {
		t.Errorf("uv.y = %v, want 1", got)
	}
	if got := readFloat(base + offsetNormal + 8); got != -1 {
		t.Errorf("normal.z = %v, want -1", got)
	}

	// First vertex UV sits right after the 4-float position.
	if got := readFloat(offsetTexCoord); got != 0.25 {
		t.Errorf("uv.x = %v, want 0.25", got)
	}
}

func TestPackVerticesEmpty(t *testing.T) {
	if buf := packVertices(nil); len(buf) != 0 {
		t.Errorf("packed empty mesh has %d bytes, want 0", len(buf))
	}
}
