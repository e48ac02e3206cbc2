package simulation

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
)

// resolveCollisions pushes every non-static body out of the obstacles it intersects and then separates it from
// the other bodies it intersects. Pairs of bodies are visited from both sides; after the first visit the pair
// usually no longer intersects.
func (s *Simulation) resolveCollisions() {
	for el := s.bodies.Front(); el != nil; el = el.Next() {
		b := el.Value
		if b.Static {
			continue
		}

		for obj := s.obstacles.Front(); obj != nil; obj = obj.Next() {
			if game.Intersects(b.BBox, obj.Value.BBox) {
				s.resolveStatic(b, obj.Value)
			}
		}

		for other := s.bodies.Front(); other != nil; other = other.Next() {
			if other.Key == el.Key || other.Value.Static {
				continue
			}
			if game.Intersects(b.BBox, other.Value.BBox) {
				s.resolveDynamic(b, other.Value)
			}
		}
	}
}

// resolveStatic moves b out of obj along the axis of least penetration, and removes part of the velocity
// pointing into obj. Ties between axes go to x, then y, then z.
func (s *Simulation) resolveStatic(b *Body, obj *CollisionObject) {
	separation := game.Center(b.BBox).Sub(game.Center(obj.BBox))
	bodySize, objSize := game.Size(b.BBox), game.Size(obj.BBox)

	overlap := bodySize.Add(objSize).Mul(0.5).Sub(game.AbsVec32(separation))

	axis, minOverlap := 0, math32.Abs(overlap[0])
	for i := 1; i < 3; i++ {
		if o := math32.Abs(overlap[i]); o < minOverlap {
			axis, minOverlap = i, o
		}
	}

	var normal mgl32.Vec3
	normal[axis] = game.Sign(separation[axis])
	b.Position = b.Position.Add(normal.Mul(minOverlap + s.conf.SkinWidth))

	if dot := b.Velocity.Dot(normal); dot < 0 {
		b.Velocity = b.Velocity.Sub(normal.Mul(dot * b.Friction))
	}
	s.recomputeBBox(b)
}

// resolveDynamic separates a and b along the line between their centers, each moving half of the required
// distance, and exchanges an impulse between them if they are moving towards each other.
func (s *Simulation) resolveDynamic(a, b *Body) {
	separation := game.Center(a.BBox).Sub(game.Center(b.BBox))
	dist := separation.Len()
	if dist <= 0 || !game.IsFinite(dist) {
		// Coincident centers have no direction to separate along.
		return
	}
	normal := game.Normalize(separation)

	push := (a.CollisionRadius + b.CollisionRadius - dist + s.conf.SkinWidth) / 2
	a.Position = a.Position.Add(normal.Mul(push))
	b.Position = b.Position.Sub(normal.Mul(push))

	if velAlongNormal := a.Velocity.Sub(b.Velocity).Dot(normal); velAlongNormal < 0 {
		restitution := math32.Min(a.Restitution, b.Restitution)
		impulse := normal.Mul((1 + restitution) * velAlongNormal / (a.Mass + b.Mass))

		a.Velocity = a.Velocity.Sub(impulse.Mul(b.Mass))
		b.Velocity = b.Velocity.Add(impulse.Mul(a.Mass))
	}

	s.recomputeBBox(a)
	s.recomputeBBox(b)
}
