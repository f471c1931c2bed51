package raster

import (
	"image"
	"image/color"
	"math"
)

// Vertex is a triangle corner in screen space: pixel X/Y, depth Z (larger is
// nearer) and texture coordinates.
type Vertex struct {
	X, Y, Z float64
	U, V    float64
}

// Fill describes how a triangle is colored.
type Fill struct {
	Color   color.NRGBA
	Texture *image.NRGBA // optional; texels are modulated by Color
	Shade   float64      // only used with Light
	Light   *LightConfig // nil draws flat unlit color
}

// RasterizeTriangle scan-converts one triangle into fb with a z-buffer test.
//
// This is the HOT PATH — no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, v [3]Vertex, f *Fill) {
	x0, y0, z0 := v[0].X, v[0].Y, v[0].Z
	x1, y1, z1 := v[1].X, v[1].Y, v[1].Z
	x2, y2, z2 := v[2].X, v[2].Y, v[2].Z

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	tex := f.Texture
	baseR, baseG, baseB, baseA := f.Color.R, f.Color.G, f.Color.B, f.Color.A

	// Pixel centres sit at +0.5.
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := baseR, baseG, baseB, baseA
			if tex != nil {
				u := w0*v[0].U + w1*v[1].U + w2*v[2].U
				vv := w0*v[0].V + w1*v[1].V + w2*v[2].V
				tc := SampleTexture(tex, u, vv)
				cr, cg, cb, ca = modulate(tc.R, baseR), modulate(tc.G, baseG), modulate(tc.B, baseB), modulate(tc.A, baseA)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			if f.Light != nil {
				cr, cg, cb = f.Light.Shade(cr, cg, cb, f.Shade)
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = ca
		}
	}
}

func modulate(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
