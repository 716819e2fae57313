// Package texture handles decoding PNG images and uploading them as
// OpenGL textures.
package texture

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture wraps an OpenGL 2D texture.
type Texture struct {
	ID     uint32
	Width  int32
	Height int32
}

// Load decodes a PNG stream and uploads it as a 2D texture. The internal
// format follows the source image: color images upload as RGBA, grayscale
// images as single-channel RED. Indexed-color images are rejected.
func Load(r io.Reader) (*Texture, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return FromImage(img)
}

// FromImage uploads a decoded image as a 2D texture.
func FromImage(img image.Image) (*Texture, error) {
	pixels, internalFormat, format, err := convert(img)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := int32(bounds.Dx())
	height := int32(bounds.Dy())

	tex := &Texture{Width: width, Height: height}
	gl.GenTextures(1, &tex.ID)
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)

	// Single-channel rows are not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex, nil
}

// convert flattens a decoded image into a tightly packed byte buffer and
// picks the matching GL formats. Unsupported color models fail here, before
// any GL resource is created.
func convert(img image.Image) ([]uint8, int32, uint32, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		pixels := make([]uint8, width*height)
		for y := 0; y < height; y++ {
			copy(pixels[y*width:(y+1)*width], src.Pix[y*src.Stride:y*src.Stride+width])
		}
		return pixels, gl.RED, gl.RED, nil

	case *image.Gray16:
		// 16-bit grayscale keeps only the high byte; the scene does not
		// need the extra depth.
		pixels := make([]uint8, width*height)
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels[i] = uint8(src.Gray16At(x, y).Y >> 8)
				i++
			}
		}
		return pixels, gl.RED, gl.RED, nil

	case *image.Paletted:
		return nil, 0, 0, fmt.Errorf("indexed-color png not supported")

	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		pixels := make([]uint8, width*height*4)
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, a := img.At(x, y).RGBA()
				pixels[i] = uint8(r >> 8)
				pixels[i+1] = uint8(g >> 8)
				pixels[i+2] = uint8(b >> 8)
				pixels[i+3] = uint8(a >> 8)
				i += 4
			}
		}
		return pixels, gl.RGBA, gl.RGBA, nil

	default:
		return nil, 0, 0, fmt.Errorf("unsupported image format %T", img)
	}
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Destroy releases the GL texture.
func (t *Texture) Destroy() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
