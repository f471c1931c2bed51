package scene

import (
	"image/color"

	"rotlab/internal/mathutil"
)

// Input is one discrete spin request, the equivalent of a left/right arrow press.
type Input int

const (
	NoInput Input = iota
	RotateLeft
	RotateRight
)

func (in Input) String() string {
	switch in {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	}
	return "none"
}

// Triangle is one retained draw primitive.
type Triangle struct {
	V     [3]mathutil.Vec3
	UV    [3][2]float32
	Color color.NRGBA
}

// Geometry is the retained draw list handed to a renderer. A Geometry is never
// modified after Scene.Geometry returns it, so it may be rendered concurrently
// with further scene mutations.
type Geometry struct {
	Triangles []Triangle
	Offset    mathutil.Vec3 // model-to-eye translation
	Angle     float32       // accumulated spin in degrees, [0, 360)
	Version   int
}

var (
	Blue   = color.NRGBA{0, 0, 255, 255}
	Green  = color.NRGBA{0, 255, 0, 255}
	Pink   = color.NRGBA{255, 0, 255, 255}
	White  = color.NRGBA{255, 255, 255, 255}
	Yellow = color.NRGBA{255, 255, 0, 255}
	Red    = color.NRGBA{255, 0, 0, 255}
)
