package mathutil

// Camera defaults: a gluPerspective(45, 4:3, 1, 500) view.
const (
	DefaultFOV  float32 = 45
	DefaultNear float32 = 1
	DefaultFar  float32 = 500
)
