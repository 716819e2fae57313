package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestConvertGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(1, 0, color.Gray{Y: 200})

	pixels, internalFormat, format, err := convert(img)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if internalFormat != gl.RED || format != gl.RED {
		t.Errorf("gray image should convert to RED, got %d/%d", internalFormat, format)
	}
	if len(pixels) != 6 {
		t.Fatalf("pixel buffer length = %d, want 6", len(pixels))
	}
	if pixels[1] != 200 {
		t.Errorf("pixels[1] = %d, want 200", pixels[1])
	}
}

func TestConvertGray16KeepsHighByte(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0xABCD})

	pixels, _, _, err := convert(img)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if pixels[0] != 0xAB {
		t.Errorf("pixels[0] = 0x%02x, want 0xAB", pixels[0])
	}
}

func TestConvertNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	pixels, internalFormat, _, err := convert(img)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if internalFormat != gl.RGBA {
		t.Errorf("color image should convert to RGBA, got %d", internalFormat)
	}
	if len(pixels) != 16 {
		t.Fatalf("pixel buffer length = %d, want 16", len(pixels))
	}
	if pixels[0] != 10 || pixels[1] != 20 || pixels[2] != 30 || pixels[3] != 255 {
		t.Errorf("first pixel = %v, want [10 20 30 255]", pixels[:4])
	}
}

func TestConvertRejectsPaletted(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	if _, _, _, err := convert(img); err == nil {
		t.Error("indexed-color image should be rejected")
	}
}

func TestConvertRejectsUnknownType(t *testing.T) {
	img := image.NewCMYK(image.Rect(0, 0, 2, 2))
	if _, _, _, err := convert(img); err == nil {
		t.Error("unsupported color model should be rejected")
	}
}
