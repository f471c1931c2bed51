package postprocess

import (
	"image"

	"github.com/disintegration/gift"
)

// Thumbnail scales img so its longer side is size pixels, keeping the aspect
// ratio. Images already within size are returned unchanged.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	b := img.Bounds()
	if size <= 0 || (b.Dx() <= size && b.Dy() <= size) {
		if n, ok := img.(*image.NRGBA); ok {
			return n
		}
		size = max(b.Dx(), b.Dy())
	}

	g := gift.New(gift.ResizeToFit(size, size, gift.LanczosResampling))
	dst := image.NewNRGBA(g.Bounds(b))
	g.Draw(dst, img)
	return dst
}
