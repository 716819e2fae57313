// Package glyph rasterizes font glyphs and renders text quads.
package glyph

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/prestream/prestream/internal/logger"
)

// Glyph is a rasterized character uploaded as a single-channel texture,
// with the metrics needed to place it on the baseline. All pixel metrics
// are at the cache's rasterization size.
type Glyph struct {
	TexID   uint32
	Width   int32
	Height  int32
	Left    int32   // bearing from pen to left edge of bitmap
	Top     int32   // bearing from baseline up to top edge of bitmap
	Advance float32 // pen advance in pixels
}

// Cache lazily rasterizes and uploads glyphs. Entries are never evicted;
// the character set of the start screen is small and stable.
type Cache struct {
	face      font.Face
	pixelSize int
	glyphs    map[rune]*Glyph
}

// NewCache parses TTF font data and prepares a face at the given pixel
// size.
func NewCache(fontData []byte, pixelSize int) (*Cache, error) {
	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return &Cache{
		face:      face,
		pixelSize: pixelSize,
		glyphs:    make(map[rune]*Glyph),
	}, nil
}

// PixelSize returns the rasterization size in pixels.
func (c *Cache) PixelSize() int {
	return c.pixelSize
}

// Get returns the glyph for r, rasterizing and uploading it on first use.
// A rune the font cannot render logs a warning once and returns ok=false;
// callers skip it and keep going.
func (c *Cache) Get(r rune) (*Glyph, bool) {
	if g, hit := c.glyphs[r]; hit {
		return g, g != nil
	}

	bitmap, ok := rasterize(c.face, r)
	if !ok {
		logger.Warn("font has no glyph for rune, skipping", zap.String("rune", string(r)))
		c.glyphs[r] = nil
		return nil, false
	}

	g := &Glyph{
		Width:   int32(bitmap.bounds.Dx()),
		Height:  int32(bitmap.bounds.Dy()),
		Left:    int32(bitmap.bounds.Min.X),
		Top:     int32(-bitmap.bounds.Min.Y),
		Advance: float32(bitmap.advance) / 64.0,
	}
	g.TexID = upload(bitmap.alpha)

	c.glyphs[r] = g
	return g, true
}

// Destroy releases every uploaded glyph texture.
func (c *Cache) Destroy() {
	for _, g := range c.glyphs {
		if g != nil && g.TexID != 0 {
			gl.DeleteTextures(1, &g.TexID)
		}
	}
	c.glyphs = make(map[rune]*Glyph)
}

// bitmap is a rasterized glyph before GPU upload.
type bitmap struct {
	alpha   *image.Alpha
	bounds  image.Rectangle // relative to the pen dot, y down
	advance fixed.Int26_6
}

// rasterize renders a single rune with the face. GL-free so the coverage
// output is unit-testable.
func rasterize(face font.Face, r rune) (*bitmap, bool) {
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, false
	}

	alpha := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(alpha, alpha.Bounds(), mask, maskp, draw.Src)

	return &bitmap{alpha: alpha, bounds: dr, advance: advance}, true
}

// upload creates a single-channel RED texture from glyph coverage.
func upload(alpha *image.Alpha) uint32 {
	width := int32(alpha.Bounds().Dx())
	height := int32(alpha.Bounds().Dy())

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	// Coverage rows are tightly packed single bytes.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if len(alpha.Pix) > 0 {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, width, height, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(alpha.Pix))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, width, height, 0, gl.RED, gl.UNSIGNED_BYTE, nil)
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
