package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestRotZKnownValues(t *testing.T) {
	v := NewVec3(2, -2, -5)
	assertVecInDelta(t, Vec3{2.6263378, -1.0499284, -5}, RotZ(23.21).MulVec3(v), 1e-6)
	assertVecInDelta(t, Vec3{2.1667008, -1.8180779, -5}, RotZ(5).MulVec3(v), 1e-6)
}

func TestRotationForms(t *testing.T) {
	assertVecInDelta(t, Vec3{0, 0, 1}, RotX(90).MulVec3(Vec3{0, 1, 0}), 1e-6)
	assertVecInDelta(t, Vec3{0, 0, 1}, RotY(90).MulVec3(Vec3{1, 0, 0}), 1e-6)
	assertVecInDelta(t, Vec3{0, 1, 0}, RotZ(90).MulVec3(Vec3{1, 0, 0}), 1e-6)
}

func TestInverseRotationRoundTrip(t *testing.T) {
	v := NewVec3(2, -2, -5)
	for _, deg := range []float32{0, 1, 5, 23.21, 90, 179, -33, 720} {
		for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
			back := axis.Matrix(-deg).MulVec3(axis.Matrix(deg).MulVec3(v))
			assertVecInDelta(t, v, back, 1e-5)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	cases := []struct{ in, want float32 }{
		{0, 0}, {5, 5}, {360, 0}, {365, 5}, {-5, 355}, {-725, 355},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, WrapDegrees(c.in), 1e-4, "wrap %v", c.in)
	}
}
