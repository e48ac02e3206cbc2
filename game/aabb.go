package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxAround returns a cube of half size r centered on pos.
func BoxAround(pos mgl32.Vec3, r float32) cube.BBox {
	return cube.Box(
		pos[0]-r, pos[1]-r, pos[2]-r,
		pos[0]+r, pos[1]+r, pos[2]+r,
	)
}

// Intersects reports whether a and b overlap on every axis. The intervals are closed, so boxes that only touch
// on a face, edge or corner intersect. cube.BBox.IntersectsWith is not used here since it requires a strictly
// positive overlap.
func Intersects(a, b cube.BBox) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMin[0] <= bMax[0] && aMax[0] >= bMin[0] &&
		aMin[1] <= bMax[1] && aMax[1] >= bMin[1] &&
		aMin[2] <= bMax[2] && aMax[2] >= bMin[2]
}

// ContainsPoint reports whether p lies within bb, boundary included.
func ContainsPoint(bb cube.BBox, p mgl32.Vec3) bool {
	min, max := bb.Min(), bb.Max()
	return min[0] <= p[0] && p[0] <= max[0] &&
		min[1] <= p[1] && p[1] <= max[1] &&
		min[2] <= p[2] && p[2] <= max[2]
}

// Center returns the center point of bb.
func Center(bb cube.BBox) mgl32.Vec3 {
	min, max := bb.Min(), bb.Max()
	return mgl32.Vec3{
		(min[0] + max[0]) / 2,
		(min[1] + max[1]) / 2,
		(min[2] + max[2]) / 2,
	}
}

// Size returns the extent of bb along every axis.
func Size(bb cube.BBox) mgl32.Vec3 {
	return bb.Max().Sub(bb.Min())
}

// Ordered reports whether bb has min <= max on every axis and only finite bounds.
func Ordered(bb cube.BBox) bool {
	min, max := bb.Min(), bb.Max()
	return IsFiniteVec(min) && IsFiniteVec(max) && min[0] <= max[0] && min[1] <= max[1] && min[2] <= max[2]
}

// FaceNormal returns the outward unit normal of face f of a box.
func FaceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return Up
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl32.Vec3{1, 0, 0}
	}
	return Up
}
