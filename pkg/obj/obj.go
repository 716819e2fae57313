// Package obj parses a triangulated subset of the Wavefront OBJ text format
// into deduplicated vertex and index buffers ready for GPU upload.
//
// Supported line types: "v x y z [w]" (w defaults to 1.0), "vt u v",
// "vn x y z" and "f a/b/c a/b/c a/b/c" with exactly three vertices per face.
// Indices are 1-based in the source and converted to 0-based. Unrecognized
// line types are skipped and reported via Mesh.SkippedTypes so the caller can
// log them.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrorKind identifies the category of a malformed token.
type ErrorKind int

const (
	// KindFileRead indicates the underlying reader failed.
	KindFileRead ErrorKind = iota + 1
	// KindMissingType indicates a line with no leading type token.
	KindMissingType
	// KindMissingVertex indicates a "v" or "vn" line with too few components.
	KindMissingVertex
	// KindNonFloatVertex indicates a non-numeric vertex component.
	KindNonFloatVertex
	// KindMissingTexCoord indicates a "vt" line with too few components.
	KindMissingTexCoord
	// KindNonFloatTexCoord indicates a non-numeric texture coordinate.
	KindNonFloatTexCoord
	// KindMissingFaceVert indicates a face with fewer than three vertices.
	KindMissingFaceVert
	// KindInvalidFaceVert indicates a malformed face position index.
	KindInvalidFaceVert
	// KindInvalidFaceUV indicates a malformed face texture index.
	KindInvalidFaceUV
	// KindInvalidFaceNormal indicates a malformed face normal index.
	KindInvalidFaceNormal
)

func (k ErrorKind) String() string {
	switch k {
	case KindFileRead:
		return "file read"
	case KindMissingType:
		return "missing type token"
	case KindMissingVertex:
		return "missing vertex component"
	case KindNonFloatVertex:
		return "non-float vertex component"
	case KindMissingTexCoord:
		return "missing texture coordinate"
	case KindNonFloatTexCoord:
		return "non-float texture coordinate"
	case KindMissingFaceVert:
		return "missing face vertex"
	case KindInvalidFaceVert:
		return "invalid face vertex index"
	case KindInvalidFaceUV:
		return "invalid face uv index"
	case KindInvalidFaceNormal:
		return "invalid face normal index"
	default:
		return "unknown"
	}
}

// ParseError is returned for any malformed OBJ input. All parse errors are
// fatal to the load; there is no partial recovery.
type ParseError struct {
	Kind ErrorKind
	Line int // 1-based source line, 0 if not tied to a line
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("obj parse error at line %d: %s", e.Line, e.Kind)
	}
	return fmt.Sprintf("obj parse error: %s", e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Vertex is a merged output vertex: one unique (position, uv, normal)
// combination from the source face list.
type Vertex struct {
	Pos    [4]float32
	UV     [2]float32
	Normal [3]float32
}

// Mesh is CPU-side deduplicated vertex data plus a triangle index list.
// Indices come in groups of three, one group per face.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32

	// SkippedTypes lists unrecognized line type tokens in first-seen order.
	SkippedTypes []string
}

// faceIndex identifies a face vertex by its (position, uv, normal) source
// index triple. Used as the deduplication key.
type faceIndex struct {
	vert, uv, norm uint32
}

// Parse reads OBJ text and builds a deduplicated mesh.
func Parse(r io.Reader) (*Mesh, error) {
	var (
		positions [][4]float32
		uvs       [][2]float32
		normals   [][3]float32
		faces     [][3]faceIndex
	)
	skipped := map[string]bool{}
	var skippedOrder []string

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, &ParseError{Kind: KindMissingType, Line: line}
		}

		typ, rest := fields[0], fields[1:]
		switch typ {
		case "v":
			v, err := parsePosition(rest)
			if err != nil {
				return nil, atLine(err, line)
			}
			positions = append(positions, v)
		case "vt":
			uv, err := parseTexCoord(rest)
			if err != nil {
				return nil, atLine(err, line)
			}
			uvs = append(uvs, uv)
		case "vn":
			n, err := parseNormal(rest)
			if err != nil {
				return nil, atLine(err, line)
			}
			normals = append(normals, n)
		case "f":
			f, err := parseFace(rest)
			if err != nil {
				return nil, atLine(err, line)
			}
			faces = append(faces, f)
		default:
			if !skipped[typ] {
				skipped[typ] = true
				skippedOrder = append(skippedOrder, typ)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Kind: KindFileRead, Err: err}
	}

	mesh, err := mergeVertices(positions, uvs, normals, faces)
	if err != nil {
		return nil, err
	}
	mesh.SkippedTypes = skippedOrder
	return mesh, nil
}

// atLine stamps a parse error with the source line it came from.
func atLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Line = line
	}
	return err
}

// parsePosition parses "x y z [w]"; w defaults to 1.0 when absent.
func parsePosition(fields []string) ([4]float32, error) {
	var out [4]float32
	if len(fields) < 3 {
		return out, &ParseError{Kind: KindMissingVertex}
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, &ParseError{Kind: KindNonFloatVertex, Err: err}
		}
		out[i] = float32(v)
	}
	out[3] = 1.0
	if len(fields) > 3 {
		w, err := strconv.ParseFloat(fields[3], 32)
		if err != nil {
			return out, &ParseError{Kind: KindNonFloatVertex, Err: err}
		}
		out[3] = float32(w)
	}
	return out, nil
}

func parseNormal(fields []string) ([3]float32, error) {
	var out [3]float32
	if len(fields) < 3 {
		return out, &ParseError{Kind: KindMissingVertex}
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, &ParseError{Kind: KindNonFloatVertex, Err: err}
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseTexCoord(fields []string) ([2]float32, error) {
	var out [2]float32
	if len(fields) < 2 {
		return out, &ParseError{Kind: KindMissingTexCoord}
	}
	for i := 0; i < 2; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, &ParseError{Kind: KindNonFloatTexCoord, Err: err}
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseFace parses exactly three "pos/uv/norm" triples. Non-triangular faces
// are unsupported: a fourth vertex is rejected the same way a missing one is.
func parseFace(fields []string) ([3]faceIndex, error) {
	var out [3]faceIndex
	if len(fields) != 3 {
		return out, &ParseError{Kind: KindMissingFaceVert}
	}
	for i, tok := range fields {
		parts := strings.Split(tok, "/")

		vert, err := parseIndex(parts, 0, KindInvalidFaceVert)
		if err != nil {
			return out, err
		}
		uv, err := parseIndex(parts, 1, KindInvalidFaceUV)
		if err != nil {
			return out, err
		}
		norm, err := parseIndex(parts, 2, KindInvalidFaceNormal)
		if err != nil {
			return out, err
		}
		out[i] = faceIndex{vert: vert, uv: uv, norm: norm}
	}
	return out, nil
}

// parseIndex parses the n-th component of a face triple, converting the
// 1-based source index to 0-based.
func parseIndex(parts []string, n int, kind ErrorKind) (uint32, error) {
	if n >= len(parts) {
		return 0, &ParseError{Kind: kind}
	}
	v, err := strconv.ParseUint(parts[n], 10, 32)
	if err != nil || v == 0 {
		return 0, &ParseError{Kind: kind, Err: err}
	}
	return uint32(v - 1), nil
}

// mergeVertices deduplicates face vertices by their (position, uv, normal)
// index triple. The first occurrence of a triple allocates a merged vertex;
// later occurrences reuse its index. One GPU vertex per unique combination.
func mergeVertices(positions [][4]float32, uvs [][2]float32, normals [][3]float32, faces [][3]faceIndex) (*Mesh, error) {
	mapping := make(map[faceIndex]uint32)
	mesh := &Mesh{}

	for _, face := range faces {
		for _, fi := range face {
			merged, ok := mapping[fi]
			if !ok {
				if int(fi.vert) >= len(positions) {
					return nil, &ParseError{Kind: KindInvalidFaceVert}
				}
				if int(fi.uv) >= len(uvs) {
					return nil, &ParseError{Kind: KindInvalidFaceUV}
				}
				if int(fi.norm) >= len(normals) {
					return nil, &ParseError{Kind: KindInvalidFaceNormal}
				}
				merged = uint32(len(mesh.Vertices))
				mesh.Vertices = append(mesh.Vertices, Vertex{
					Pos:    positions[fi.vert],
					UV:     uvs[fi.uv],
					Normal: normals[fi.norm],
				})
				mapping[fi] = merged
			}
			mesh.Indices = append(mesh.Indices, merged)
		}
	}

	return mesh, nil
}
