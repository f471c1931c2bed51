package mathutil

import (
	"fmt"
	"math"
	"strings"
)

// Axis names a principal rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// ParseAxis accepts "x", "y" or "z" (any case).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("mathutil: unknown axis %q", s)
}

// Matrix returns the rotation matrix for deg degrees around the axis.
func (a Axis) Matrix(deg float32) Mat3 {
	switch a {
	case AxisX:
		return RotX(deg)
	case AxisY:
		return RotY(deg)
	default:
		return RotZ(deg)
	}
}

// Quat returns the axis quaternion whose RotateVec3 result matches Matrix.
// RotY turns +X toward +Z, which is a right-handed turn about -Y.
func (a Axis) Quat() Quat {
	switch a {
	case AxisX:
		return Quat{0, 1, 0, 0}
	case AxisY:
		return Quat{0, 0, -1, 0}
	default:
		return Quat{0, 0, 0, 1}
	}
}

// MismatchError reports a matrix and quaternion rotation that disagree.
type MismatchError struct {
	Axis    Axis
	Degrees float32
	Matrix  Vec3
	Quat    Vec3
	Delta   float32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mathutil: %s-axis rotation by %.4f°: matrix %v, quaternion %v (delta %g)",
		e.Axis, e.Degrees, e.Matrix, e.Quat, e.Delta)
}

// CheckAgreement rotates v by deg degrees around axis with both the rotation
// matrix and the quaternion sandwich product. It returns the matrix result, and
// a *MismatchError when any component differs by more than tol.
func CheckAgreement(axis Axis, v Vec3, deg, tol float32) (Vec3, error) {
	byMatrix := axis.Matrix(deg).MulVec3(v)
	q := axis.Quat()
	byQuat := RotateVec3(&q, &v, deg)

	var delta float32
	for i := 0; i < 3; i++ {
		d := float32(math.Abs(float64(byMatrix[i] - byQuat[i])))
		if d > delta {
			delta = d
		}
	}
	if delta > tol {
		return byMatrix, &MismatchError{
			Axis:    axis,
			Degrees: deg,
			Matrix:  byMatrix,
			Quat:    byQuat,
			Delta:   delta,
		}
	}
	return byMatrix, nil
}
