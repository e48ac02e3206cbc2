package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up vector.
var Up = mgl32.Vec3{0, 1, 0}

// Normalize returns v scaled to unit length. Unlike mgl32.Vec3.Normalize, a zero (or non-finite) length vector
// returns the zero vector instead of NaN components.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || !IsFinite(l) {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Div divides every component of v by s. Dividing by zero returns the zero vector.
func Div(v mgl32.Vec3, s float32) mgl32.Vec3 {
	if s == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Distance returns the straight line distance between a and b.
func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}

// IsFinite returns false for NaN and +-Inf.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// IsFiniteVec returns true if every component of v is finite.
func IsFiniteVec(v mgl32.Vec3) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// AbsVec32 will return the given vector, but all the values of it are switched to their absolute values.
func AbsVec32(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec.X()), math32.Abs(vec.Y()), math32.Abs(vec.Z())}
}

// Sign returns 1 for values >= 0 and -1 otherwise.
func Sign(f float32) float32 {
	if f >= 0 {
		return 1
	}
	return -1
}
