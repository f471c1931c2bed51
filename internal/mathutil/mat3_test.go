package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat3Constructors(t *testing.T) {
	assert.Equal(t, Mat3{}, Mat3Zero())
	m := Mat3FromRows(Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 9})
	assert.Equal(t, Mat3FromValues(1, 2, 3, 4, 5, 6, 7, 8, 9), m)
}

func TestMat3RowCol(t *testing.T) {
	m := Mat3FromValues(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, Vec3{4, 5, 6}, m.Row(1))
	assert.Equal(t, Vec3{3, 6, 9}, m.Col(2))
	assert.Equal(t, m.Transpose().Row(0), m.Col(0))

	for _, i := range []int{-1, 3, 42} {
		assert.Equal(t, Vec3Zero(), m.Row(i), "row %d", i)
		assert.Equal(t, Vec3Zero(), m.Col(i), "col %d", i)
	}
}

func TestMat3MulVec3(t *testing.T) {
	m := Mat3FromValues(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, Vec3{14, 32, 50}, m.MulVec3(Vec3{1, 2, 3}))
	assert.Equal(t, Vec3{1, 2, 3}, Mat3Identity().MulVec3(Vec3{1, 2, 3}))
}

func TestMat3Mul(t *testing.T) {
	a := RotZ(30)
	b := RotZ(60)
	ab := Mat3Mul(a, b)
	want := RotZ(90)
	for i := range ab {
		assert.InDelta(t, want[i], ab[i], 1e-6)
	}
}

func TestRotationMatricesAreOrthonormal(t *testing.T) {
	for _, deg := range []float32{0, 5, 23.21, 90, 135, -47, 360} {
		for _, m := range []Mat3{RotX(deg), RotY(deg), RotZ(deg)} {
			assert.InDelta(t, 1, m.Det(), 1e-6)
			for i := 0; i < 3; i++ {
				assert.InDelta(t, 1, m.Row(i).Len(), 1e-6)
				assert.InDelta(t, 1, m.Col(i).Len(), 1e-6)
			}
		}
	}
}
