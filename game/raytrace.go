package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// RayIntersectBox runs the slab test of a ray starting at origin with the normalized direction dir against bb.
// It returns the distance along the ray at which the ray enters the box, and false if the box is missed or
// lies (partly) behind the origin.
func RayIntersectBox(origin, dir mgl32.Vec3, bb cube.BBox) (float32, bool) {
	near, far := math32.Inf(-1), math32.Inf(1)
	min, max := bb.Min(), bb.Max()

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			// A ray parallel to the slab is inside it everywhere or nowhere.
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, false
			}
			continue
		}

		t0 := (min[i] - origin[i]) / dir[i]
		t1 := (max[i] - origin[i]) / dir[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		near = math32.Max(near, t0)
		far = math32.Min(far, t1)
		if near > far {
			return 0, false
		}
	}

	if near < 0 {
		return 0, false
	}
	return near, true
}
