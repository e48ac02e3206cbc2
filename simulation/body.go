package simulation

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/oerror"
)

// CollisionKind tags the role of an entry for hosts. Collision resolution only skips static bodies.
type CollisionKind uint8

const (
	CollisionNone CollisionKind = iota
	CollisionStatic
	CollisionDynamic
	CollisionTrigger
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionStatic:
		return "static"
	case CollisionDynamic:
		return "dynamic"
	case CollisionTrigger:
		return "trigger"
	}
	return "unknown"
}

// Body is a simulated entity. Bodies are owned by the Simulation they were created in and are identified by the
// key they were created with.
type Body struct {
	Position     mgl32.Vec3
	Velocity     mgl32.Vec3
	Acceleration mgl32.Vec3

	Mass            float32
	Damping         float32
	Friction        float32
	Restitution     float32
	CollisionRadius float32

	UseGravity bool
	Static     bool
	Trigger    bool
	OnGround   bool

	Kind CollisionKind
	BBox cube.BBox
}

// Snapshot returns the part of the body's state that is mirrored to clients.
func (b *Body) Snapshot() BodySnapshot {
	return BodySnapshot{
		Position: [3]float32(b.Position),
		Velocity: [3]float32(b.Velocity),
		OnGround: b.OnGround,
		Mass:     b.Mass,
	}
}

// BodyOptions configure a body when it is created.
type BodyOptions struct {
	Mass            float32
	Damping         float32
	Friction        float32
	Restitution     float32
	CollisionRadius float32

	UseGravity bool
	Static     bool
	Trigger    bool

	Kind CollisionKind
}

// DefaultBodyOptions returns the options a player sized dynamic body is created with.
func DefaultBodyOptions() BodyOptions {
	return BodyOptions{
		Mass:            game.DefaultMass,
		Damping:         game.DefaultDamping,
		Friction:        game.DefaultFriction,
		Restitution:     game.DefaultRestitution,
		CollisionRadius: game.DefaultCollisionRadius,
		UseGravity:      true,
		Kind:            CollisionDynamic,
	}
}

// validate rejects options that the integrator or the collision resolver could turn into infinities. Values
// are never clamped.
func (o BodyOptions) validate() error {
	if !game.IsFinite(o.Mass) || o.Mass <= 0 {
		return oerror.Invalid("mass must be positive, got %v", o.Mass)
	}
	if !game.IsFinite(o.CollisionRadius) || o.CollisionRadius <= 0 {
		return oerror.Invalid("collision radius must be positive, got %v", o.CollisionRadius)
	}
	if !(o.Damping > 0 && o.Damping <= 1) {
		return oerror.Invalid("damping must be in (0, 1], got %v", o.Damping)
	}
	if !(o.Friction >= 0 && o.Friction <= 1) {
		return oerror.Invalid("friction must be in [0, 1], got %v", o.Friction)
	}
	if !(o.Restitution >= 0 && o.Restitution <= 1) {
		return oerror.Invalid("restitution must be in [0, 1], got %v", o.Restitution)
	}
	if o.Kind > CollisionTrigger {
		return oerror.Invalid("unknown collision kind %d", o.Kind)
	}
	return nil
}
