package mathutil

// Mat3 is a 3×3 matrix stored row-major: [A11, A12, A13, A21, ...].
// Value type for zero heap allocation.
type Mat3 [9]float32

func Mat3Zero() Mat3 {
	return Mat3{}
}

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Mat3FromRows(r1, r2, r3 Vec3) Mat3 {
	return Mat3{
		r1[0], r1[1], r1[2],
		r2[0], r2[1], r2[2],
		r3[0], r3[1], r3[2],
	}
}

func Mat3FromValues(a11, a12, a13, a21, a22, a23, a31, a32, a33 float32) Mat3 {
	return Mat3{a11, a12, a13, a21, a22, a23, a31, a32, a33}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Row returns row i (0..2). Any other index yields the zero vector.
func (m Mat3) Row(i int) Vec3 {
	if i < 0 || i > 2 {
		return Vec3{}
	}
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Col returns column i (0..2). Any other index yields the zero vector.
func (m Mat3) Col(i int) Vec3 {
	if i < 0 || i > 2 {
		return Vec3{}
	}
	return Vec3{m[i], m[3+i], m[6+i]}
}

func (m Mat3) Det() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
