package simulation

import (
	"io"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/physim/event"
	"github.com/sirupsen/logrus"
)

// Simulation is a physics world: it owns every body, obstacle and interactable and advances them with Tick.
// A Simulation is not safe for concurrent use; hosts that call it from several goroutines must serialise
// every call themselves (see physim.Server).
type Simulation struct {
	conf Config
	log  logrus.FieldLogger

	bodies        *orderedmap.OrderedMap[string, *Body]
	obstacles     *orderedmap.OrderedMap[string, *CollisionObject]
	interactables *orderedmap.OrderedMap[string, *InteractableObject]

	consumables map[string]struct{}
	triggers    map[string]struct{}

	currentTick uint64
}

// New returns an empty simulation using the given config. A nil logger discards all output.
func New(conf Config, log logrus.FieldLogger) (*Simulation, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	s := &Simulation{
		conf:          conf,
		log:           log,
		bodies:        orderedmap.NewOrderedMap[string, *Body](),
		obstacles:     orderedmap.NewOrderedMap[string, *CollisionObject](),
		interactables: orderedmap.NewOrderedMap[string, *InteractableObject](),
		consumables:   make(map[string]struct{}, len(conf.ConsumableTypes)),
		triggers:      make(map[string]struct{}, len(conf.TriggerTypes)),
	}
	for _, t := range conf.ConsumableTypes {
		s.consumables[t] = struct{}{}
	}
	for _, t := range conf.TriggerTypes {
		s.triggers[t] = struct{}{}
	}
	return s, nil
}

// Config returns the config the simulation was created with.
func (s *Simulation) Config() Config {
	return s.conf
}

// CurrentTick returns the number of ticks that advanced the simulation so far.
func (s *Simulation) CurrentTick() uint64 {
	return s.currentTick
}

// Tick advances the simulation by dt seconds: every non-static body is integrated, then collisions against
// obstacles and between bodies are resolved, then interactions are checked. dt is clamped to the configured
// MaxDeltaTime. A dt that is zero, negative or NaN leaves the simulation untouched.
func (s *Simulation) Tick(dt float32) []event.Event {
	if !(dt > 0) {
		return nil
	}
	dt = math32.Min(dt, s.conf.MaxDeltaTime)
	s.currentTick++

	for el := s.bodies.Front(); el != nil; el = el.Next() {
		if !el.Value.Static {
			s.integrate(el.Key, el.Value, dt)
		}
	}
	s.resolveCollisions()

	var events []event.Event
	for el := s.bodies.Front(); el != nil; el = el.Next() {
		if !el.Value.Static {
			events = append(events, s.interact(el.Key, el.Value)...)
		}
	}
	return events
}
