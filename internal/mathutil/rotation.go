package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in degrees.
func RotX(deg float32) Mat3 {
	c, s := cosSin(deg)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
// The sine terms sit in the (cos, 0, -sin) / (sin, 0, cos) layout, so a positive
// angle turns +X toward +Z.
func RotY(deg float32) Mat3 {
	c, s := cosSin(deg)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(deg float32) Mat3 {
	c, s := cosSin(deg)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * (math.Pi / 180)
}

// WrapDegrees maps any angle into [0, 360).
func WrapDegrees(d float32) float32 {
	w := float32(math.Mod(float64(d), 360))
	if w < 0 {
		w += 360
	}
	if w >= 360 {
		w = 0
	}
	return w
}

func cosSin(deg float32) (float32, float32) {
	r := float64(Deg2Rad(deg))
	return float32(math.Cos(r)), float32(math.Sin(r))
}
