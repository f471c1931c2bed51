package mathutil

import "math"

// Mat4 is a 4×4 matrix stored row-major. Used for the camera projection.
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Perspective builds the same matrix as gluPerspective. fovY in degrees.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(Deg2Rad(fovY))/2))
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Translate returns an affine translation by t.
func Translate(t Vec3) Mat4 {
	return FromMat3Translation(Mat3Identity(), t)
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix, ignoring the w row.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// Project transforms v (w=1) into clip space and returns the normalized device
// coordinates with the clip w. When w is not positive the point is behind the
// eye and ndc is left in clip space.
func (m Mat4) Project(v Vec3) (Vec3, float32) {
	clip := m.MulPoint(v)
	w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]
	if w <= 0 {
		return clip, w
	}
	return clip.Scale(1 / w), w
}
