package raster

import (
	"math"

	"rotlab/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir  mathutil.Vec3
	RimDir    mathutil.Vec3
	ViewDir   mathutil.Vec3
	HalfMain  mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient   float64
	Hemi      float64
	Direct    float64
	Rim       float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

// DefaultLightConfig returns a key light from the upper right and a rim light
// from behind, tuned for the eye looking down -Z.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{0.4, 0.6, 0.7}.Normalized()
	rimDir := mathutil.Vec3{-0.5, 0.4, -0.6}.Normalized()
	viewDir := mathutil.Vec3{0, 0, 1}

	halfMain := lightDir.Add(viewDir).Normalized()

	return LightConfig{
		LightDir:  lightDir,
		RimDir:    rimDir,
		ViewDir:   viewDir,
		HalfMain:  halfMain,
		Ambient:   0.35,
		Hemi:      0.30,
		Direct:    0.90,
		Rim:       0.35,
		SpecInt:   0.25,
		SpecPow:   12.0,
		Exposure:  1.0,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(float64(normal.Dot(lc.LightDir)))
	ndlRim := math.Abs(float64(normal.Dot(lc.RimDir)))

	// Hemisphere fill
	hemi := (1.0-math.Abs(float64(normal[1])))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := math.Abs(float64(normal.Dot(lc.HalfMain)))
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Shade applies the lit color pipeline to one sRGB texel:
// sRGB decode, shade, ACES tone map, sRGB encode.
func (lc *LightConfig) Shade(r, g, b uint8, shade float64) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	return clamp255(math.Pow(ACESTonemap(srgbToLinear[r]*k), lc.InvGamma) * 255),
		clamp255(math.Pow(ACESTonemap(srgbToLinear[g]*k), lc.InvGamma) * 255),
		clamp255(math.Pow(ACESTonemap(srgbToLinear[b]*k), lc.InvGamma) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
