package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/sirupsen/logrus"
)

// integrate advances a single body by dt seconds. The order of the steps is part of the engine's behaviour:
// velocity is damped after acceleration is applied and before the position is moved.
func (s *Simulation) integrate(id string, b *Body, dt float32) {
	lastPos := b.Position

	if b.UseGravity {
		b.Acceleration = b.Acceleration.Add(s.conf.Gravity)
	}
	b.Velocity = b.Velocity.Add(b.Acceleration.Mul(dt))
	b.Velocity = b.Velocity.Mul(b.Damping)
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	floor := s.conf.GroundLevel + b.CollisionRadius
	if b.Position[1] <= floor {
		b.Position[1] = floor
		if b.Velocity[1] < 0 {
			b.Velocity[1] = 0
			b.OnGround = true
		}
	} else {
		b.OnGround = false
	}
	b.Acceleration = mgl32.Vec3{}

	if !game.IsFiniteVec(b.Position) || !game.IsFiniteVec(b.Velocity) {
		s.log.WithFields(logrus.Fields{
			"body": id,
			"pos":  b.Position,
			"vel":  b.Velocity,
		}).Warn("integration produced a non-finite state, body was reset to its last position")
		b.Position, b.Velocity = lastPos, mgl32.Vec3{}
	}
	s.recomputeBBox(b)
}
