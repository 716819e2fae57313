// Package assets provides embedded shaders, models and textures.
package assets

import _ "embed"

// MeshVertexShader is the vertex shader for lit scene meshes.
//
//go:embed shaders/mesh.vert
var MeshVertexShader string

// MeshFragmentShader is the fragment shader for lit scene meshes.
//
//go:embed shaders/mesh.frag
var MeshFragmentShader string

// DepthVertexShader is the vertex shader for the shadow map pass.
//
//go:embed shaders/depth.vert
var DepthVertexShader string

// DepthFragmentShader is the fragment shader for the shadow map pass.
//
//go:embed shaders/depth.frag
var DepthFragmentShader string

// GlyphVertexShader is the vertex shader for text rendering.
//
//go:embed shaders/glyph.vert
var GlyphVertexShader string

// GlyphFragmentShader is the fragment shader for text rendering.
//
//go:embed shaders/glyph.frag
var GlyphFragmentShader string

// CursorVertexShader is the vertex shader for the text cursor.
//
//go:embed shaders/cursor.vert
var CursorVertexShader string

// CursorFragmentShader is the fragment shader for the text cursor.
//
//go:embed shaders/cursor.frag
var CursorFragmentShader string

// PostVertexShader is the vertex shader for the fullscreen postprocess
// pass.
//
//go:embed shaders/post.vert
var PostVertexShader string

// PostFragmentShader is the fragment shader for the fullscreen postprocess
// pass.
//
//go:embed shaders/post.frag
var PostFragmentShader string

// TableOBJ is the desk model.
//
//go:embed models/table.obj
var TableOBJ []byte

// MonitorOBJ is the monitor body model.
//
//go:embed models/monitor.obj
var MonitorOBJ []byte

// ScreenOBJ is the monitor screen panel model.
//
//go:embed models/screen.obj
var ScreenOBJ []byte

// TablePNG is the desk texture.
//
//go:embed textures/table.png
var TablePNG []byte

// MonitorPNG is the monitor body texture.
//
//go:embed textures/monitor.png
var MonitorPNG []byte

// ScreenPNG is the screen panel texture.
//
//go:embed textures/screen.png
var ScreenPNG []byte
