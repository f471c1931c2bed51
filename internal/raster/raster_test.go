package raster

import (
	"image"
	"image/color"
	"testing"

	"rotlab/internal/mathutil"
	"rotlab/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTriangleScene(t *testing.T) {
	g := scene.NewTriangle().Geometry()
	img := RenderGeometry(g, DefaultOptions())

	require.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
	// Centroid (0, -2/3, -5) lands near (400, 397).
	assert.Equal(t, scene.Blue, img.NRGBAAt(400, 397))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(5, 5))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(795, 300))
}

func TestRenderSupersampleScalesTarget(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height, opts.Supersample = 80, 60, 3
	img := RenderGeometry(scene.NewTriangle().Geometry(), opts)
	assert.Equal(t, image.Rect(0, 0, 240, 180), img.Bounds())
}

func TestRenderLitCube(t *testing.T) {
	s := scene.NewCube()
	s.Apply(scene.RotateLeft)
	lc := DefaultLightConfig()
	opts := DefaultOptions()
	opts.Width, opts.Height = 160, 120
	opts.Light = &lc

	img := RenderGeometry(s.Geometry(), opts)
	c := img.NRGBAAt(80, 60)
	assert.Equal(t, uint8(255), c.A)
	assert.NotEqual(t, color.NRGBA{0, 0, 0, 255}, c)
}

func TestProjectTriangleRejectsBehindEye(t *testing.T) {
	proj := mathutil.Perspective(mathutil.DefaultFOV, 1, mathutil.DefaultNear, mathutil.DefaultFar)
	_, ok := ProjectTriangle(proj, [3]mathutil.Vec3{{0, 0, -5}, {1, 0, -5}, {0, 1, 2}}, 100, 100)
	assert.False(t, ok)

	pts, ok := ProjectTriangle(proj, [3]mathutil.Vec3{{0, 0, -5}, {1, 0, -5}, {0, 1, -5}}, 100, 100)
	require.True(t, ok)
	assert.InDelta(t, 50, pts[0].X, 1e-4)
	assert.InDelta(t, 50, pts[0].Y, 1e-4)
	assert.Greater(t, pts[1].X, pts[0].X)
	assert.Less(t, pts[2].Y, pts[0].Y)
}

func TestModelViewProjectionAppliesOffset(t *testing.T) {
	opts := DefaultOptions()
	offset := mathutil.Vec3{0, 0, -5}
	tri := [3]mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	got, ok := ProjectTriangle(opts.ModelViewProjection(offset), tri, 800, 600)
	require.True(t, ok)
	var eye [3]mathutil.Vec3
	for k := range tri {
		eye[k] = tri[k].Add(offset)
	}
	want, ok := ProjectTriangle(opts.Projection(), eye, 800, 600)
	require.True(t, ok)
	for k := range got {
		assert.InDelta(t, want[k].X, got[k].X, 1e-3)
		assert.InDelta(t, want[k].Y, got[k].Y, 1e-3)
		assert.InDelta(t, want[k].Depth, got[k].Depth, 1e-5)
	}
	assert.InDelta(t, 400, got[0].X, 1e-3)
}

func TestZBufferKeepsNearest(t *testing.T) {
	near := [3]Vertex{{X: 0, Y: 0, Z: 0.5}, {X: 10, Y: 0, Z: 0.5}, {X: 0, Y: 10, Z: 0.5}}
	far := [3]Vertex{{X: 0, Y: 0, Z: -0.5}, {X: 10, Y: 0, Z: -0.5}, {X: 0, Y: 10, Z: -0.5}}
	red := Fill{Color: scene.Red}
	green := Fill{Color: scene.Green}

	for _, order := range [][2]int{{0, 1}, {1, 0}} {
		fb := NewFrameBuffer(10, 10)
		tris := [2][3]Vertex{near, far}
		fills := [2]*Fill{&red, &green}
		for _, i := range order {
			RasterizeTriangle(fb, tris[i], fills[i])
		}
		assert.Equal(t, scene.Red, fb.Image().NRGBAAt(2, 2))
	}
}

func TestTextureModulatesColor(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(tex.Pix); i += 4 {
		tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3] = 200, 100, 50, 255
	}
	fb := NewFrameBuffer(8, 8)
	tri := [3]Vertex{{X: 0, Y: 0}, {X: 8, Y: 0, U: 1}, {X: 0, Y: 8, V: 1}}
	RasterizeTriangle(fb, tri, &Fill{Color: scene.White, Texture: tex})
	assert.Equal(t, color.NRGBA{200, 100, 50, 255}, fb.Image().NRGBAAt(1, 1))

	fb = NewFrameBuffer(8, 8)
	RasterizeTriangle(fb, tri, &Fill{Color: scene.Red, Texture: tex})
	assert.Equal(t, color.NRGBA{200, 0, 0, 255}, fb.Image().NRGBAAt(1, 1))
}

func TestDegenerateTriangleDrawsNothing(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	RasterizeTriangle(fb, [3]Vertex{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}, &Fill{Color: scene.Red})
	for _, b := range fb.Color {
		assert.Zero(t, b)
	}
}

func TestSampleTexture(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	tex.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	tex.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	tex.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})

	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, SampleTexture(tex, 0, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, SampleTexture(tex, 1, 2), "wraps")
	assert.Equal(t, SampleTexture(tex, 0.25, 0.75), SampleTexture(tex, -0.75, -0.25))
	assert.Equal(t, color.NRGBA{128, 128, 0, 255}, SampleTexture(tex, 0.5, 0))
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, SampleTexture(tex, 0.5, 0.5))

	assert.Equal(t, color.NRGBA{}, SampleTexture(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 0.3, 0.3))
}
