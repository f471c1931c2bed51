package mathutil

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component single-precision vector (value type, stack-allocated).
type Vec3 [3]float32

func Vec3Zero() Vec3 {
	return Vec3{}
}

// Vec3Unit returns (1, 1, 1).
func Vec3Unit() Vec3 {
	return Vec3{1, 1, 1}
}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

// Equals compares component-wise with no epsilon. Two rotations that should
// land on the same point rarely compare equal; use a tolerance for those.
func Equals(a, b Vec3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSquared())))
}

// LenSquared skips the square root; use it for comparisons.
func (v Vec3) LenSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize scales v to unit length in place. A zero vector is left unchanged.
func (v *Vec3) Normalize() {
	l := v.Len()
	if l > 0 {
		v[0] /= l
		v[1] /= l
		v[2] /= l
	}
}

// Normalized returns a unit-length copy of v.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.7f, %.7f, %.7f)", v[0], v[1], v[2])
}
