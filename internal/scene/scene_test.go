package scene

import (
	"testing"

	"rotlab/internal/mathutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func assertVerticesInDelta(t *testing.T, want, got []mathutil.Vec3, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, want[i][k], got[i][k], delta, "vertex %d component %d", i, k)
		}
	}
}

func TestTriangleInitialState(t *testing.T) {
	s := NewTriangle()
	assert.Equal(t, "triangle", s.Name())
	assert.Equal(t, mathutil.AxisZ, s.Axis())
	assert.Equal(t, DefaultStep, s.Step())
	assert.Equal(t, []mathutil.Vec3{{0, 2, -5}, {-2, -2, -5}, {2, -2, -5}}, s.Vertices())

	g := s.Geometry()
	require.Len(t, g.Triangles, 1)
	assert.Equal(t, Blue, g.Triangles[0].Color)
	assert.Equal(t, 1, g.Version)
}

func TestApplyRotatesEveryVertex(t *testing.T) {
	s := NewTriangle()
	before := s.Vertices()

	require.True(t, s.Apply(RotateLeft))

	m := mathutil.RotZ(5)
	want := make([]mathutil.Vec3, len(before))
	for i, v := range before {
		want[i] = m.MulVec3(v)
	}
	assertVerticesInDelta(t, want, s.Vertices(), 1e-6)
	assert.InDelta(t, 5, s.Angle(), 1e-6)

	// (2,-2,-5) after one left step.
	assert.InDelta(t, 2.1667008, s.Vertices()[2][0], 1e-6)
	assert.InDelta(t, -1.8180779, s.Vertices()[2][1], 1e-6)
}

func TestLeftThenRightRestores(t *testing.T) {
	s := NewTriangle()
	start := s.Vertices()
	for i := 0; i < 10; i++ {
		s.Apply(RotateLeft)
	}
	for i := 0; i < 10; i++ {
		s.Apply(RotateRight)
	}
	assertVerticesInDelta(t, start, s.Vertices(), 1e-5)
	a := s.Angle()
	assert.True(t, a < 1e-3 || a > 360-1e-3, "angle %v", a)
}

func TestNoInputLeavesGeometry(t *testing.T) {
	s := NewTriangle()
	g := s.Geometry()
	assert.False(t, s.Apply(NoInput))
	assert.False(t, s.ApplyAll([]Input{NoInput, NoInput}))
	assert.Equal(t, g.Version, s.Geometry().Version)
	assert.Equal(t, 1, s.Rebuilds())
}

func TestGeometryRebuiltLazily(t *testing.T) {
	s := NewTriangle()
	s.Geometry()
	s.Geometry()
	assert.Equal(t, 1, s.Rebuilds())

	old := s.Geometry()
	s.Apply(RotateLeft)
	s.Apply(RotateLeft)
	g := s.Geometry()
	assert.Equal(t, 2, s.Rebuilds())
	assert.InDelta(t, 10, g.Angle, 1e-5)

	// Earlier snapshots are not disturbed by later rotations.
	assert.Equal(t, mathutil.Vec3{0, 2, -5}, old.Triangles[0].V[0])
}

func TestApplyAllMatchesSequential(t *testing.T) {
	inputs := []Input{RotateLeft, RotateLeft, NoInput, RotateRight, RotateLeft}

	seq := NewCube()
	for _, in := range inputs {
		seq.Apply(in)
	}
	batched := NewCube()
	require.True(t, batched.ApplyAll(inputs))

	assertVerticesInDelta(t, seq.Vertices(), batched.Vertices(), 1e-5)
	assert.InDelta(t, seq.Angle(), batched.Angle(), 1e-5)
	batched.Geometry()
	assert.Equal(t, 1, batched.Rebuilds())
}

func TestCube(t *testing.T) {
	s := NewCube()
	g := s.Geometry()
	assert.Len(t, g.Triangles, 12)
	assert.Equal(t, mathutil.Vec3{0, 0, -3}, g.Offset)
	assert.Equal(t, mathutil.AxisY, s.Axis())

	// Rotation about the centre keeps every corner at the same distance.
	for i := 0; i < 9; i++ {
		s.Apply(RotateLeft)
	}
	for _, v := range s.Vertices() {
		assert.InDelta(t, 0.75, v.LenSquared(), 1e-5)
	}
}

func TestResetAndSetters(t *testing.T) {
	s := NewTriangle()
	s.SetAxis(mathutil.AxisX)
	s.SetStep(15)
	s.SetStep(-1)
	assert.Equal(t, float32(15), s.Step())
	s.Apply(RotateRight)
	assert.InDelta(t, 345, s.Angle(), 1e-4)
	assert.Equal(t, float32(2), s.Vertices()[1][0]*-1)

	s.Reset()
	assert.Equal(t, float32(0), s.Angle())
	assert.Equal(t, []mathutil.Vec3{{0, 2, -5}, {-2, -2, -5}, {2, -2, -5}}, s.Vertices())
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "triangle", "cube"} {
		s, err := ByName(name)
		require.NoError(t, err)
		assert.NotNil(t, s)
	}
	_, err := ByName("teapot")
	assert.Error(t, err)
}

func TestRotationIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewTriangle()
	s.SetLogger(zap.New(core))
	s.Apply(RotateLeft)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "left", fields["input"])
	assert.Equal(t, "triangle", fields["scene"])
}
