package raster

import (
	"image"
	"image/color"
	"math"
)

// SampleTexture returns the bilinear blend of the four texels around (u, v).
// Coordinates wrap into [0, 1) and v runs top to bottom. An empty texture
// samples as transparent black.
func SampleTexture(tex *image.NRGBA, u, v float64) color.NRGBA {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	if w == 0 || h == 0 {
		return color.NRGBA{}
	}

	fx := wrapUnit(u) * float64(w-1)
	fy := wrapUnit(v) * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := (x0+1)%w, (y0+1)%h
	dx, dy := fx-float64(x0), fy-float64(y0)

	offsets := [4]int{
		y0*tex.Stride + x0*4,
		y0*tex.Stride + x1*4,
		y1*tex.Stride + x0*4,
		y1*tex.Stride + x1*4,
	}
	weights := [4]float64{
		(1 - dx) * (1 - dy),
		dx * (1 - dy),
		(1 - dx) * dy,
		dx * dy,
	}

	var acc [4]float64
	for i, off := range offsets {
		px := tex.Pix[off : off+4 : off+4]
		for c := range acc {
			acc[c] += float64(px[c]) * weights[i]
		}
	}
	return color.NRGBA{
		R: uint8(acc[0] + 0.5),
		G: uint8(acc[1] + 0.5),
		B: uint8(acc[2] + 0.5),
		A: uint8(acc[3] + 0.5),
	}
}

func wrapUnit(t float64) float64 {
	return t - math.Floor(t)
}
