package obj

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const cubePositions = `v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
`

// flatCube returns a cube with per-face normals: every corner participates in
// three faces with three different normals.
func flatCube() string {
	var b strings.Builder
	b.WriteString(cubePositions)
	b.WriteString("vt 0 0\nvt 1 0\nvt 1 1\nvt 0 1\n")
	b.WriteString("vn 0 0 1\nvn 0 0 -1\nvn 1 0 0\nvn -1 0 0\nvn 0 1 0\nvn 0 -1 0\n")

	quads := []struct {
		corners [4]int
		normal  int
	}{
		{[4]int{5, 6, 7, 8}, 1},
		{[4]int{2, 1, 4, 3}, 2},
		{[4]int{6, 2, 3, 7}, 3},
		{[4]int{1, 5, 8, 4}, 4},
		{[4]int{8, 7, 3, 4}, 5},
		{[4]int{1, 2, 6, 5}, 6},
	}
	for _, q := range quads {
		c, n := q.corners, q.normal
		fmt.Fprintf(&b, "f %d/1/%d %d/2/%d %d/3/%d\n", c[0], n, c[1], n, c[2], n)
		fmt.Fprintf(&b, "f %d/1/%d %d/3/%d %d/4/%d\n", c[0], n, c[2], n, c[3], n)
	}
	return b.String()
}

// smoothCube returns a cube where every corner shares one uv and one normal
// across all faces, so corners deduplicate fully.
func smoothCube() string {
	var b strings.Builder
	b.WriteString(cubePositions)
	b.WriteString("vt 0 0\n")
	// One normal per corner, indexed identically to the position.
	for i := 0; i < 8; i++ {
		b.WriteString("vn 0 1 0\n")
	}

	quads := [][4]int{
		{5, 6, 7, 8},
		{2, 1, 4, 3},
		{6, 2, 3, 7},
		{1, 5, 8, 4},
		{8, 7, 3, 4},
		{1, 2, 6, 5},
	}
	for _, c := range quads {
		fmt.Fprintf(&b, "f %d/1/%d %d/1/%d %d/1/%d\n", c[0], c[0], c[1], c[1], c[2], c[2])
		fmt.Fprintf(&b, "f %d/1/%d %d/1/%d %d/1/%d\n", c[0], c[0], c[2], c[2], c[3], c[3])
	}
	return b.String()
}

func TestFlatCubeDeduplication(t *testing.T) {
	mesh, err := Parse(strings.NewReader(flatCube()))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(mesh.Vertices) != 24 {
		t.Errorf("flat-shaded cube should merge to 24 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 36 {
		t.Errorf("cube should produce 36 indices, got %d", len(mesh.Indices))
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(mesh.Vertices))
		}
	}
}

func TestSmoothCubeDeduplication(t *testing.T) {
	mesh, err := Parse(strings.NewReader(smoothCube()))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(mesh.Vertices) != 8 {
		t.Errorf("corner-shared cube should merge to 8 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 36 {
		t.Errorf("cube should produce 36 indices, got %d", len(mesh.Indices))
	}
}

func TestVertexWDefault(t *testing.T) {
	mesh, err := Parse(strings.NewReader("v 1.0 2.0 3.0\nv 1.0 2.0 3.0 2.5\nvt 0 0\nvn 0 1 0\nf 1/1/1 2/1/1 1/1/1\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := mesh.Vertices[0].Pos; got != [4]float32{1, 2, 3, 1} {
		t.Errorf("w should default to 1.0, got %v", got)
	}
	if got := mesh.Vertices[1].Pos; got != [4]float32{1, 2, 3, 2.5} {
		t.Errorf("explicit w should be kept, got %v", got)
	}
}

func TestSkippedTypes(t *testing.T) {
	src := "o cube\nusemtl wood\nv 0 0 0\nusemtl wood\n"
	mesh, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []string{"o", "usemtl"}
	if len(mesh.SkippedTypes) != len(want) {
		t.Fatalf("SkippedTypes = %v, want %v", mesh.SkippedTypes, want)
	}
	for i := range want {
		if mesh.SkippedTypes[i] != want[i] {
			t.Errorf("SkippedTypes[%d] = %q, want %q", i, mesh.SkippedTypes[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"blank line", "v 0 0 0\n\n", KindMissingType},
		{"short vertex", "v 1.0 2.0\n", KindMissingVertex},
		{"non-float vertex", "v a b c\n", KindNonFloatVertex},
		{"non-float w", "v 1 2 3 x\n", KindNonFloatVertex},
		{"short normal", "vn 1.0\n", KindMissingVertex},
		{"short tex coord", "vt 1.0\n", KindMissingTexCoord},
		{"non-float tex coord", "vt a b\n", KindNonFloatTexCoord},
		{"two face verts", "f 1/1/1 2/2/2\n", KindMissingFaceVert},
		{"four face verts", "f 1/1/1 2/2/2 3/3/3 4/4/4\n", KindMissingFaceVert},
		{"float face vert", "f 1.1/1/1 2/2/2 3/3/3\n", KindInvalidFaceVert},
		{"float face uv", "f 1/1.2/1 2/2/2 3/3/3\n", KindInvalidFaceUV},
		{"float face normal", "f 1/1/1.3 2/2/2 3/3/3\n", KindInvalidFaceNormal},
		{"missing uv component", "f 1 2 3\n", KindInvalidFaceUV},
		{"missing normal component", "f 1/1 2/2 3/3\n", KindInvalidFaceNormal},
		{"zero index", "f 0/1/1 2/2/2 3/3/3\n", KindInvalidFaceVert},
		{"out of range position", "v 0 0 0\nvt 0 0\nvn 0 1 0\nf 2/1/1 1/1/1 1/1/1\n", KindInvalidFaceVert},
		{"out of range normal", "v 0 0 0\nvt 0 0\nvn 0 1 0\nf 1/1/2 1/1/1 1/1/1\n", KindInvalidFaceNormal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src))
			if err == nil {
				t.Fatal("expected parse error, got none")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if perr.Kind != tc.kind {
				t.Errorf("kind = %v, want %v", perr.Kind, tc.kind)
			}
		})
	}
}
