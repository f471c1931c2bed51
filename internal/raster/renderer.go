package raster

import (
	"image"
	"image/color"

	"rotlab/internal/mathutil"
	"rotlab/internal/scene"
)

// Options control one headless render of a scene.Geometry.
type Options struct {
	Width       int
	Height      int
	Supersample int
	FOV         float32 // vertical, degrees
	Near        float32
	Far         float32
	Background  color.NRGBA
	Texture     *image.NRGBA
	Light       *LightConfig // nil renders unlit, like glColor3f
}

// DefaultOptions is an 800×600 target with a 45° fov, near 1, far 500 and a
// black clear color.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Supersample: 1,
		FOV:         mathutil.DefaultFOV,
		Near:        mathutil.DefaultNear,
		Far:         mathutil.DefaultFar,
		Background:  color.NRGBA{0, 0, 0, 255},
	}
}

// Projection returns the perspective matrix for the options' aspect ratio.
func (o Options) Projection() mathutil.Mat4 {
	aspect := float32(1)
	if o.Height > 0 {
		aspect = float32(o.Width) / float32(o.Height)
	}
	return mathutil.Perspective(o.FOV, aspect, o.Near, o.Far)
}

// ModelViewProjection maps scene coordinates to clip space for a geometry
// translated by offset.
func (o Options) ModelViewProjection(offset mathutil.Vec3) mathutil.Mat4 {
	return mathutil.Mat4Mul(o.Projection(), mathutil.Translate(offset))
}

// ScreenPoint is a projected vertex in pixels of a w×h target.
type ScreenPoint struct {
	X, Y  float64
	Depth float64 // larger is nearer
}

// ProjectTriangle projects one triangle through mvp onto a w×h target. ok is
// false when any corner lies behind the eye or outside the
// near/far range.
func ProjectTriangle(mvp mathutil.Mat4, tri [3]mathutil.Vec3, w, h int) (pts [3]ScreenPoint, ok bool) {
	for k := 0; k < 3; k++ {
		ndc, cw := mvp.Project(tri[k])
		if cw <= 0 || ndc[2] < -1 || ndc[2] > 1 {
			return pts, false
		}
		pts[k] = ScreenPoint{
			X:     float64(ndc[0]+1) * 0.5 * float64(w),
			Y:     float64(1-ndc[1]) * 0.5 * float64(h),
			Depth: -float64(ndc[2]),
		}
	}
	return pts, true
}

// RenderGeometry rasterizes g and returns an image of
// (Width*Supersample)×(Height*Supersample) pixels. Callers downsample.
func RenderGeometry(g scene.Geometry, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := opts.Width*ss, opts.Height*ss

	fb := NewFrameBuffer(w, h)
	fb.Clear(opts.Background)

	mvp := opts.ModelViewProjection(g.Offset)

	for _, tri := range g.Triangles {
		pts, ok := ProjectTriangle(mvp, tri.V, w, h)
		if !ok {
			continue
		}

		fill := Fill{Color: tri.Color, Texture: opts.Texture, Light: opts.Light}
		if opts.Light != nil {
			// The offset is a pure translation, so model-space normals are eye-space normals.
			n := tri.V[1].Sub(tri.V[0]).Cross(tri.V[2].Sub(tri.V[0]))
			if n.LenSquared() == 0 {
				continue
			}
			fill.Shade = opts.Light.ComputeShade(n.Normalized())
		}

		var verts [3]Vertex
		for k := 0; k < 3; k++ {
			verts[k] = Vertex{
				X: pts[k].X,
				Y: pts[k].Y,
				Z: pts[k].Depth,
				U: float64(tri.UV[k][0]),
				V: float64(tri.UV[k][1]),
			}
		}
		RasterizeTriangle(fb, verts, &fill)
	}

	return fb.Image()
}
