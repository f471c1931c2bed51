package mathutil

import "math"

// Quat represents a quaternion laid out as (w, x, y, z).
type Quat [4]float32

// QuatZero returns (0, 0, 0, 0). It is not a rotation; see QuatIdentity.
func QuatZero() Quat {
	return Quat{}
}

func QuatIdentity() Quat {
	return Quat{1, 0, 0, 0}
}

func NewQuat(w, x, y, z float32) Quat {
	return Quat{w, x, y, z}
}

// QuatFromAxisAngle returns the unit rotation quaternion for the given axis.
// Angle in degrees. A zero axis yields the identity.
func QuatFromAxisAngle(axis Vec3, deg float32) Quat {
	axis.Normalize()
	if axis.LenSquared() == 0 {
		return QuatIdentity()
	}
	half := float64(Deg2Rad(deg)) / 2
	c, s := float32(math.Cos(half)), float32(math.Sin(half))
	return Quat{c, s * axis[0], s * axis[1], s * axis[2]}
}

func (q Quat) W() float32 { return q[0] }
func (q Quat) X() float32 { return q[1] }
func (q Quat) Y() float32 { return q[2] }
func (q Quat) Z() float32 { return q[3] }

// Vec returns the vector part (x, y, z).
func (q Quat) Vec() Vec3 {
	return Vec3{q[1], q[2], q[3]}
}

// Mul returns the Hamilton product q × p. Order matters.
func (q Quat) Mul(p Quat) Quat {
	w1, x1, y1, z1 := q[0], q[1], q[2], q[3]
	w2, x2, y2, z2 := p[0], p[1], p[2], p[3]
	return Quat{
		w1*w2 - x1*x2 - y1*y2 - z1*z2,
		w1*x2 + x1*w2 + y1*z2 - z1*y2,
		w1*y2 + y1*w2 + z1*x2 - x1*z2,
		w1*z2 + z1*w2 + x1*y2 - y1*x2,
	}
}

func (q Quat) Conjugate() Quat {
	return Quat{q[0], -q[1], -q[2], -q[3]}
}

func (q Quat) Len() float32 {
	return float32(math.Sqrt(float64(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])))
}

// Normalize returns q scaled to unit length. When the squared magnitude is
// 0.001 or less the identity quaternion is returned instead.
func (q Quat) Normalize() Quat {
	m := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	if m <= 0.001 {
		return QuatIdentity()
	}
	l := float32(math.Sqrt(float64(m)))
	return Quat{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

// RotateVec3 rotates v by deg degrees around the axis held in the vector part
// of axis, using the sandwich product r·v·r*. axis is normalized first.
// A nil axis or v returns the zero vector.
func RotateVec3(axis *Quat, v *Vec3, deg float32) Vec3 {
	if axis == nil || v == nil {
		return Vec3{}
	}
	a := axis.Normalize()

	half := float64(Deg2Rad(deg)) / 2
	c, s := float32(math.Cos(half)), float32(math.Sin(half))
	rot := Quat{c, s * a[1], s * a[2], s * a[3]}

	pure := Quat{0, v[0], v[1], v[2]}
	return rot.Mul(pure).Mul(rot.Conjugate()).Vec()
}

// Rotate is the value form of RotateVec3.
func (q Quat) Rotate(v Vec3, deg float32) Vec3 {
	return RotateVec3(&q, &v, deg)
}

// Mat3 converts a unit quaternion to a 3×3 rotation matrix.
func (q Quat) Mat3() Mat3 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}
