package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/tiff"
)

// Encode writes img in a raster format.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case PNG:
		err = png.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q is not a raster format", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("output: %s encode: %w", f, err)
	}
	return nil
}

// EncodeAnimation writes frames as one looping animated WebP, each frame shown
// for delay.
func EncodeAnimation(w io.Writer, frames []image.Image, delay time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("output: animation has no frames")
	}
	ms := uint(delay / time.Millisecond)
	if ms == 0 {
		ms = 1
	}
	ani := &nativewebp.Animation{
		Images:    frames,
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	for i := range ani.Durations {
		ani.Durations[i] = ms
	}
	if err := nativewebp.EncodeAll(w, ani, nil); err != nil {
		return fmt.Errorf("output: webp animation: %w", err)
	}
	return nil
}
