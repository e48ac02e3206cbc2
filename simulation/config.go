package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/oerror"
)

// Config holds the values shared by every body of one simulation. Two simulations in the same process never
// share any of it.
type Config struct {
	// Gravity is added to the acceleration of every body that has UseGravity set.
	Gravity mgl32.Vec3
	// GroundLevel is the height of the infinite ground plane bodies are clamped above.
	GroundLevel float32
	// SkinWidth is the extra distance bodies are pushed apart by when resolving a collision.
	SkinWidth float32
	// MaxDeltaTime is the upper bound a tick's delta time is clamped to.
	MaxDeltaTime float32
	// RaycastDistance is used when Raycast is called without a positive max distance.
	RaycastDistance float32
	// FaceNormals makes Raycast report the normal of the face that was hit instead of the up vector.
	FaceNormals bool

	// ConsumableTypes are interactable types that are collected once when a body comes in range.
	ConsumableTypes []string
	// TriggerTypes are interactable types that fire an event every tick a body is in range.
	TriggerTypes []string
}

// DefaultConfig returns the configuration the engine was tuned with.
func DefaultConfig() Config {
	return Config{
		Gravity:         mgl32.Vec3{0, game.DefaultGravity, 0},
		GroundLevel:     game.DefaultGroundLevel,
		SkinWidth:       game.DefaultSkinWidth,
		MaxDeltaTime:    game.DefaultMaxDeltaTime,
		RaycastDistance: game.DefaultRaycastDistance,
		ConsumableTypes: []string{TypeHealthPotion, TypeWeapon},
		TriggerTypes:    []string{TypeTrigger},
	}
}

// Validate returns an error wrapping oerror.ErrInvalidConfiguration if any value of the config would make the
// engine produce non-finite state.
func (c Config) Validate() error {
	if !game.IsFiniteVec(c.Gravity) {
		return oerror.Invalid("gravity %v is not finite", c.Gravity)
	}
	if !game.IsFinite(c.GroundLevel) {
		return oerror.Invalid("ground level %v is not finite", c.GroundLevel)
	}
	if !game.IsFinite(c.SkinWidth) || c.SkinWidth < 0 {
		return oerror.Invalid("skin width must be a non-negative number, got %v", c.SkinWidth)
	}
	if !game.IsFinite(c.MaxDeltaTime) || c.MaxDeltaTime <= 0 {
		return oerror.Invalid("max delta time must be positive, got %v", c.MaxDeltaTime)
	}
	if !game.IsFinite(c.RaycastDistance) || c.RaycastDistance <= 0 {
		return oerror.Invalid("raycast distance must be positive, got %v", c.RaycastDistance)
	}
	return nil
}
