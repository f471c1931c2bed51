package scene

import (
	"fmt"
	"image/color"

	"rotlab/internal/logging"
	"rotlab/internal/mathutil"

	"go.uber.org/zap"
)

// DefaultStep is the rotation applied per input, in degrees.
const DefaultStep float32 = 5

// Scene owns a set of triangles (consecutive vertex triples) and spins them
// around one principal axis. Vertices are rotated in place on every input.
type Scene struct {
	name    string
	initial []mathutil.Vec3
	verts   []mathutil.Vec3
	uvs     [][2]float32
	colors  []color.NRGBA // one per triangle
	offset  mathutil.Vec3
	axis    mathutil.Axis
	step    float32
	angle   float32

	geom     Geometry
	dirty    bool
	rebuilds int

	log *zap.Logger
}

func newScene(name string, verts []mathutil.Vec3, uvs [][2]float32, colors []color.NRGBA, axis mathutil.Axis) *Scene {
	initial := make([]mathutil.Vec3, len(verts))
	copy(initial, verts)
	return &Scene{
		name:    name,
		initial: initial,
		verts:   verts,
		uvs:     uvs,
		colors:  colors,
		axis:    axis,
		step:    DefaultStep,
		dirty:   true,
		log:     logging.Root().Named("scene"),
	}
}

// NewTriangle returns the single blue triangle spun around Z.
func NewTriangle() *Scene {
	verts := []mathutil.Vec3{
		{0, 2, -5},
		{-2, -2, -5},
		{2, -2, -5},
	}
	uvs := [][2]float32{{0.5, 0}, {0, 1}, {1, 1}}
	return newScene("triangle", verts, uvs, []color.NRGBA{Blue}, mathutil.AxisZ)
}

// NewCube returns a unit cube centered on the origin, pushed 3 units in front
// of the eye and spun around Y.
func NewCube() *Scene {
	const h = 0.5
	p := [8]mathutil.Vec3{
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}, // front
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h}, // back
	}
	faces := []struct {
		a, b, c, d int
		col        color.NRGBA
	}{
		{0, 1, 2, 3, Blue},   // front
		{5, 4, 7, 6, Green},  // back
		{1, 5, 6, 2, Pink},   // right
		{4, 0, 3, 7, White},  // left
		{4, 5, 1, 0, Yellow}, // bottom
		{3, 2, 6, 7, Red},    // top
	}

	var (
		verts  []mathutil.Vec3
		uvs    [][2]float32
		colors []color.NRGBA
	)
	for _, f := range faces {
		verts = append(verts, p[f.a], p[f.b], p[f.c], p[f.a], p[f.c], p[f.d])
		uvs = append(uvs, [2]float32{0, 1}, [2]float32{1, 1}, [2]float32{1, 0},
			[2]float32{0, 1}, [2]float32{1, 0}, [2]float32{0, 0})
		colors = append(colors, f.col, f.col)
	}

	s := newScene("cube", verts, uvs, colors, mathutil.AxisY)
	s.offset = mathutil.Vec3{0, 0, -3}
	return s
}

// ByName returns a preset scene: "triangle" or "cube".
func ByName(name string) (*Scene, error) {
	switch name {
	case "", "triangle":
		return NewTriangle(), nil
	case "cube":
		return NewCube(), nil
	}
	return nil, fmt.Errorf("scene: unknown scene %q", name)
}

func (s *Scene) Name() string        { return s.name }
func (s *Scene) Axis() mathutil.Axis { return s.axis }
func (s *Scene) Step() float32       { return s.step }

// Angle is the accumulated spin in degrees, wrapped to [0, 360).
func (s *Scene) Angle() float32 { return s.angle }

// Rebuilds counts how many times the retained geometry was regenerated.
func (s *Scene) Rebuilds() int { return s.rebuilds }

func (s *Scene) SetAxis(a mathutil.Axis) { s.axis = a }

// SetStep changes the per-input rotation. Non-positive values are ignored.
func (s *Scene) SetStep(deg float32) {
	if deg > 0 {
		s.step = deg
	}
}

func (s *Scene) SetLogger(l *zap.Logger) {
	if l != nil {
		s.log = l
	}
}

// Vertices returns a copy of the current vertices.
func (s *Scene) Vertices() []mathutil.Vec3 {
	out := make([]mathutil.Vec3, len(s.verts))
	copy(out, s.verts)
	return out
}

func (s *Scene) delta(in Input) float32 {
	switch in {
	case RotateLeft:
		return s.step
	case RotateRight:
		return -s.step
	}
	return 0
}

// Apply rotates every vertex by one step for the given input. It reports
// whether the scene changed.
func (s *Scene) Apply(in Input) bool {
	d := s.delta(in)
	if d == 0 {
		return false
	}
	s.rotate(s.axis.Matrix(d), d, in.String())
	return true
}

// ApplyAll folds a burst of inputs into one rotation matrix, so the vertices
// are touched and the geometry rebuilt once.
func (s *Scene) ApplyAll(inputs []Input) bool {
	m := mathutil.Mat3Identity()
	var total float32
	changed := false
	for _, in := range inputs {
		d := s.delta(in)
		if d == 0 {
			continue
		}
		m = mathutil.Mat3Mul(s.axis.Matrix(d), m)
		total += d
		changed = true
	}
	if !changed {
		return false
	}
	s.rotate(m, total, "batch")
	return true
}

func (s *Scene) rotate(m mathutil.Mat3, deg float32, reason string) {
	for i := range s.verts {
		s.verts[i] = m.MulVec3(s.verts[i])
	}
	s.angle = mathutil.WrapDegrees(s.angle + deg)
	s.dirty = true

	if ce := s.log.Check(zap.DebugLevel, "Scene rotated"); ce != nil {
		ce.Write(
			zap.String("scene", s.name),
			zap.String("input", reason),
			zap.Float32("degrees", deg),
			zap.Float32("angle", s.angle),
			zap.String("vertices", fmt.Sprint(s.verts[:min(3, len(s.verts))])),
		)
	}
}

// Reset restores the initial vertices and zeroes the angle.
func (s *Scene) Reset() {
	copy(s.verts, s.initial)
	s.angle = 0
	s.dirty = true
}

// Geometry returns the retained draw list, regenerating it only when the
// vertices changed since the last call.
func (s *Scene) Geometry() Geometry {
	if !s.dirty {
		return s.geom
	}
	tris := make([]Triangle, 0, len(s.verts)/3)
	for t := 0; t+2 < len(s.verts); t += 3 {
		tri := Triangle{Color: White}
		if n := t / 3; n < len(s.colors) {
			tri.Color = s.colors[n]
		}
		for k := 0; k < 3; k++ {
			tri.V[k] = s.verts[t+k]
			if len(s.uvs) == len(s.verts) {
				tri.UV[k] = s.uvs[t+k]
			}
		}
		tris = append(tris, tri)
	}
	s.rebuilds++
	s.geom = Geometry{
		Triangles: tris,
		Offset:    s.offset,
		Angle:     s.angle,
		Version:   s.rebuilds,
	}
	s.dirty = false
	return s.geom
}
