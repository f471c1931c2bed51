package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// ErrUnsupported is returned for files that are not a decodable image.
var ErrUnsupported = errors.New("texture: unsupported file type")

// LoadTexture reads a TGA, PNG, JPEG, BMP or WebP file and returns an NRGBA image.
func LoadTexture(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := Decode(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes raw image bytes. TGA has no magic number, so ext ".tga"
// selects it directly; everything else is sniffed from the content.
func Decode(raw []byte, ext string) (*image.NRGBA, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnsupported)
	}

	var decode func(r *bytes.Reader) (image.Image, error)
	kind, _ := filetype.Match(raw)
	switch {
	case strings.EqualFold(ext, ".tga"):
		decode = func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) }
	case kind == filetype.Unknown:
		return nil, fmt.Errorf("%w: unrecognized %s data", ErrUnsupported, ext)
	case kind.Extension == "png":
		decode = func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) }
	case kind.Extension == "jpg":
		decode = func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) }
	case kind.Extension == "bmp":
		decode = func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) }
	case kind.Extension == "webp":
		decode = func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind.MIME.Value)
	}

	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrUnsupported)
	}

	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA format with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	// Check if source has alpha
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha — draw and set alpha to 255
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
			}
		}
	}
	return dst
}
