package simulation

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/oerror"
)

const (
	TypeObstacle     = "obstacle"
	TypeItem         = "item"
	TypeHealthPotion = "health_potion"
	TypeWeapon       = "weapon"
	TypeTrigger      = "trigger"
)

// CollisionObject is a piece of static scenery. It never moves once added.
type CollisionObject struct {
	ID       string
	Type     string
	Position mgl32.Vec3
	BBox     cube.BBox
	Kind     CollisionKind
}

// InteractableObject is an object bodies interact with by coming within Range of its position.
type InteractableObject struct {
	ID       string
	Type     string
	Position mgl32.Vec3
	BBox     cube.BBox
	Range    float32
	// Collected is set once a consumable has been picked up and is never reset.
	Collected bool
	Data      *orderedmap.OrderedMap[string, any]
}

// InteractableOptions configure an interactable when it is added.
type InteractableOptions struct {
	Type  string
	Range float32
	Data  *orderedmap.OrderedMap[string, any]
}

// DefaultInteractableOptions ...
func DefaultInteractableOptions() InteractableOptions {
	return InteractableOptions{Type: TypeItem, Range: game.DefaultInteractionRange}
}

// AddObstacle adds static scenery with the given bounding box, replacing any obstacle with the same id.
func (s *Simulation) AddObstacle(id, typ string, bb cube.BBox) (*CollisionObject, error) {
	if !game.Ordered(bb) {
		return nil, oerror.Invalid("obstacle %q has an invalid bounding box %v-%v", id, bb.Min(), bb.Max())
	}
	if typ == "" {
		typ = TypeObstacle
	}

	obj := &CollisionObject{
		ID:       id,
		Type:     typ,
		Position: game.Center(bb),
		BBox:     bb,
		Kind:     CollisionStatic,
	}
	s.obstacles.Set(id, obj)
	s.log.WithField("obstacle", id).Debugf("added %s spanning %v-%v", typ, bb.Min(), bb.Max())
	return obj, nil
}

// Obstacle returns the obstacle with the given id.
func (s *Simulation) Obstacle(id string) (*CollisionObject, error) {
	obj, ok := s.obstacles.Get(id)
	if !ok {
		return nil, oerror.NotFound("obstacle", id)
	}
	return obj, nil
}

// Obstacles returns all obstacles in the order they were added.
func (s *Simulation) Obstacles() []*CollisionObject {
	objs := make([]*CollisionObject, 0, s.obstacles.Len())
	for el := s.obstacles.Front(); el != nil; el = el.Next() {
		objs = append(objs, el.Value)
	}
	return objs
}

// AddInteractable adds an interactable at pos, replacing any interactable with the same id.
func (s *Simulation) AddInteractable(id string, pos mgl32.Vec3, opts InteractableOptions) (*InteractableObject, error) {
	if !game.IsFiniteVec(pos) {
		return nil, oerror.Invalid("interactable %q has a non-finite position %v", id, pos)
	}
	if !game.IsFinite(opts.Range) || opts.Range <= 0 {
		return nil, oerror.Invalid("interaction range must be positive, got %v", opts.Range)
	}
	if opts.Type == "" {
		opts.Type = TypeItem
	}
	if opts.Data == nil {
		opts.Data = orderedmap.NewOrderedMap[string, any]()
	}

	obj := &InteractableObject{
		ID:       id,
		Type:     opts.Type,
		Position: pos,
		BBox:     game.BoxAround(pos, game.InteractableHalfExtent),
		Range:    opts.Range,
		Data:     opts.Data,
	}
	s.interactables.Set(id, obj)
	s.log.WithField("interactable", id).Debugf("added %s at %v", opts.Type, pos)
	return obj, nil
}

// Interactable returns the interactable with the given id.
func (s *Simulation) Interactable(id string) (*InteractableObject, error) {
	obj, ok := s.interactables.Get(id)
	if !ok {
		return nil, oerror.NotFound("interactable", id)
	}
	return obj, nil
}

// Interactables returns all interactables, collected ones included, in the order they were added.
func (s *Simulation) Interactables() []*InteractableObject {
	objs := make([]*InteractableObject, 0, s.interactables.Len())
	for el := s.interactables.Front(); el != nil; el = el.Next() {
		objs = append(objs, el.Value)
	}
	return objs
}
