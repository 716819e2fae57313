package glyph

import (
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

func testFace(t *testing.T, pixelSize int) font.Face {
	t.Helper()
	parsed, err := opentype.Parse(gomono.TTF)
	if err != nil {
		t.Fatalf("parse font: %v", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		t.Fatalf("create face: %v", err)
	}
	return face
}

func TestRasterizeVisibleGlyph(t *testing.T) {
	face := testFace(t, 64)

	bm, ok := rasterize(face, 'A')
	if !ok {
		t.Fatal("face has no glyph for 'A'")
	}
	if bm.bounds.Dx() <= 0 || bm.bounds.Dy() <= 0 {
		t.Fatalf("glyph bounds %v, want positive area", bm.bounds)
	}
	if bm.advance <= 0 {
		t.Fatalf("advance = %v, want positive", bm.advance)
	}

	var covered int
	for _, p := range bm.alpha.Pix {
		if p > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("rasterized 'A' has no covered pixels")
	}
}

func TestRasterizeSpaceHasAdvance(t *testing.T) {
	face := testFace(t, 64)

	bm, ok := rasterize(face, ' ')
	if !ok {
		t.Fatal("face has no glyph for space")
	}
	if bm.advance <= 0 {
		t.Errorf("space advance = %v, want positive", bm.advance)
	}
}

func TestRasterizeMonospaceAdvances(t *testing.T) {
	face := testFace(t, 64)

	a, _ := rasterize(face, 'i')
	b, _ := rasterize(face, 'W')
	if a.advance != b.advance {
		t.Errorf("monospace advances differ: 'i'=%v 'W'=%v", a.advance, b.advance)
	}
}
