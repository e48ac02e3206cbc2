package simulation

import (
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
)

// RaycastResult is the nearest obstacle hit by a ray. Hit is false if nothing was hit, in which case the other
// fields are zero.
type RaycastResult struct {
	Hit      bool
	Distance float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Object   *CollisionObject
}

// Raycast casts a ray from origin along dir against every obstacle and returns the nearest hit that is at most
// maxDistance away. Bodies are never hit. A non-positive maxDistance uses the configured RaycastDistance.
// Unless FaceNormals is enabled the reported normal is always the up vector.
func (s *Simulation) Raycast(origin, dir mgl32.Vec3, maxDistance float32) RaycastResult {
	if !(maxDistance > 0) {
		maxDistance = s.conf.RaycastDistance
	}
	dir = game.Normalize(dir)
	if dir == (mgl32.Vec3{}) || !game.IsFiniteVec(origin) {
		return RaycastResult{}
	}

	var res RaycastResult
	for el := s.obstacles.Front(); el != nil; el = el.Next() {
		dist, ok := game.RayIntersectBox(origin, dir, el.Value.BBox)
		if !ok || dist > maxDistance || (res.Hit && dist >= res.Distance) {
			continue
		}
		res = RaycastResult{
			Hit:      true,
			Distance: dist,
			Point:    origin.Add(dir.Mul(dist)),
			Object:   el.Value,
		}
	}

	if res.Hit {
		res.Normal = s.hitNormal(origin, dir, res)
	}
	return res
}

// hitNormal returns the normal reported for a hit.
func (s *Simulation) hitNormal(origin, dir mgl32.Vec3, res RaycastResult) mgl32.Vec3 {
	if !s.conf.FaceNormals {
		return game.Up
	}
	// Extend the segment a little past the hit so the entered face is always crossed.
	end := origin.Add(dir.Mul(res.Distance + 1))
	hit, ok := trace.BBoxIntercept(res.Object.BBox, origin, end)
	if !ok {
		return game.Up
	}
	return game.FaceNormal(hit.Face())
}
