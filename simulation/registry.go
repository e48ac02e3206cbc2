package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/assert"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/oerror"
	"github.com/sirupsen/logrus"
)

// CreateBody creates a body at pos and registers it under id, replacing any body already registered under it.
// Options that would make the simulation produce infinities, such as a non-positive mass or collision radius,
// are rejected with an error wrapping oerror.ErrInvalidConfiguration.
func (s *Simulation) CreateBody(id string, pos mgl32.Vec3, opts BodyOptions) (*Body, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !game.IsFiniteVec(pos) {
		return nil, oerror.Invalid("body %q has a non-finite position %v", id, pos)
	}

	b := &Body{
		Position:        pos,
		Mass:            opts.Mass,
		Damping:         opts.Damping,
		Friction:        opts.Friction,
		Restitution:     opts.Restitution,
		CollisionRadius: opts.CollisionRadius,
		UseGravity:      opts.UseGravity,
		Static:          opts.Static,
		Trigger:         opts.Trigger,
		Kind:            opts.Kind,
	}
	s.recomputeBBox(b)

	if _, replaced := s.bodies.Get(id); replaced {
		s.log.WithField("body", id).Debug("replacing existing body")
	}
	s.bodies.Set(id, b)
	s.log.WithFields(logrus.Fields{"body": id, "pos": pos, "kind": opts.Kind}).Debug("created body")
	return b, nil
}

// Body returns the body registered under id.
func (s *Simulation) Body(id string) (*Body, error) {
	b, ok := s.bodies.Get(id)
	if !ok {
		return nil, oerror.NotFound("body", id)
	}
	return b, nil
}

// Bodies returns the ids of all bodies in the order they were first created.
func (s *Simulation) Bodies() []string {
	return s.bodies.Keys()
}

// Snapshot returns the mirrored state of the body registered under id.
func (s *Simulation) Snapshot(id string) (BodySnapshot, error) {
	b, err := s.Body(id)
	if err != nil {
		return BodySnapshot{}, err
	}
	return b.Snapshot(), nil
}

// ApplyForce accumulates force/mass into the acceleration the body is integrated with on the next tick.
// Static bodies ignore forces.
func (s *Simulation) ApplyForce(id string, force mgl32.Vec3) error {
	b, err := s.Body(id)
	if err != nil {
		return err
	}
	if !game.IsFiniteVec(force) {
		return oerror.Invalid("force %v applied to %q is not finite", force, id)
	}
	if b.Static {
		return nil
	}
	b.Acceleration = b.Acceleration.Add(game.Div(force, b.Mass))
	return nil
}

// ApplyImpulse changes the velocity of the body by impulse/mass immediately. Static bodies ignore impulses.
func (s *Simulation) ApplyImpulse(id string, impulse mgl32.Vec3) error {
	b, err := s.Body(id)
	if err != nil {
		return err
	}
	if !game.IsFiniteVec(impulse) {
		return oerror.Invalid("impulse %v applied to %q is not finite", impulse, id)
	}
	if b.Static {
		return nil
	}
	b.Velocity = b.Velocity.Add(game.Div(impulse, b.Mass))
	return nil
}

// recomputeBBox rebuilds the bounding box of b from its position. It must run after every position change and
// before any collision test involving b.
func (s *Simulation) recomputeBBox(b *Body) {
	b.BBox = game.BoxAround(b.Position, b.CollisionRadius)
	assert.IsTrue(game.Ordered(b.BBox), "body bounding box %v-%v is not ordered", b.BBox.Min(), b.BBox.Max())
}
