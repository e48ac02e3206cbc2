package game

const (
	DefaultMass            = float32(1.0)
	DefaultDamping         = float32(0.95)
	DefaultFriction        = float32(0.8)
	DefaultRestitution     = float32(0.5)
	DefaultCollisionRadius = float32(0.5)

	DefaultGravity         = float32(-9.81)
	DefaultGroundLevel     = float32(0)
	DefaultSkinWidth       = float32(0.1)
	DefaultMaxDeltaTime    = float32(1.0 / 30.0)
	DefaultRaycastDistance = float32(10.0)

	DefaultInteractionRange = float32(2.0)
	// InteractableHalfExtent is the half size of the box placed around an interactable.
	InteractableHalfExtent = float32(0.5)
)
