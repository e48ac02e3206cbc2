package physim

import (
	"slices"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/event"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/oerror"
	"github.com/oomph-ac/physim/simulation"
	"github.com/oomph-ac/physim/utils"
	"github.com/oomph-ac/physim/worker"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// tickHistory is the amount of tick durations kept for the periodic timing summary.
const tickHistory = 200

var errClosed = oerror.New("server closed")

// Server hosts a simulation for embedders that call into it from multiple goroutines. Every call is serialized
// behind a single lock, and events produced by ticks are handed to the Handler on a worker goroutine.
type Server struct {
	log *logrus.Logger

	mu        deadlock.Mutex
	sim       *simulation.Simulation
	tickRate  int
	tickTimes *utils.CircularQueue[time.Duration]

	hMutex deadlock.RWMutex
	h      Handler

	closing chan struct{}
	closed  atomic.Bool
}

// New returns a server hosting sim. StartTicking ticks it tickRate times a second.
func New(log *logrus.Logger, sim *simulation.Simulation, tickRate int) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Server{
		log:       log,
		sim:       sim,
		tickRate:  tickRate,
		tickTimes: utils.NewCircularQueue[time.Duration](tickHistory),
		h:         NopHandler{},
		closing:   make(chan struct{}),
	}
}

// Handle sets the handler of the server. Passing nil resets it to a NopHandler.
func (s *Server) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	s.hMutex.Lock()
	s.h = h
	s.hMutex.Unlock()
}

func (s *Server) handler() Handler {
	s.hMutex.RLock()
	defer s.hMutex.RUnlock()
	return s.h
}

// CreateBody creates a body and returns a copy of it.
func (s *Server) CreateBody(id string, pos mgl32.Vec3, opts simulation.BodyOptions) (simulation.Body, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.sim.CreateBody(id, pos, opts)
	if err != nil {
		return simulation.Body{}, err
	}
	return *b, nil
}

// Body returns a copy of the body registered under id.
func (s *Server) Body(id string) (simulation.Body, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.sim.Body(id)
	if err != nil {
		return simulation.Body{}, err
	}
	return *b, nil
}

// Bodies returns the ids of all bodies in creation order.
func (s *Server) Bodies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Bodies()
}

// Snapshot ...
func (s *Server) Snapshot(id string) (simulation.BodySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Snapshot(id)
}

// ApplyForce ...
func (s *Server) ApplyForce(id string, force mgl32.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.ApplyForce(id, force)
}

// ApplyImpulse ...
func (s *Server) ApplyImpulse(id string, impulse mgl32.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.ApplyImpulse(id, impulse)
}

// Raycast ...
func (s *Server) Raycast(origin, dir mgl32.Vec3, maxDistance float32) simulation.RaycastResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Raycast(origin, dir, maxDistance)
}

// AddObstacle adds static scenery to the simulation.
func (s *Server) AddObstacle(id, typ string, bb cube.BBox) (*simulation.CollisionObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.AddObstacle(id, typ, bb)
}

// AddInteractable adds an interactable to the simulation and returns a copy of it.
func (s *Server) AddInteractable(id string, pos mgl32.Vec3, opts simulation.InteractableOptions) (simulation.InteractableObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, err := s.sim.AddInteractable(id, pos, opts)
	if err != nil {
		return simulation.InteractableObject{}, err
	}
	return *obj, nil
}

// Obstacles returns the obstacles of the simulation. Obstacles are never modified, so they are not copied.
func (s *Server) Obstacles() []*simulation.CollisionObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Obstacles()
}

// Interactables returns copies of the interactable objects of the simulation.
func (s *Server) Interactables() []simulation.InteractableObject {
	s.mu.Lock()
	defer s.mu.Unlock()

	objs := s.sim.Interactables()
	list := make([]simulation.InteractableObject, 0, len(objs))
	for _, obj := range objs {
		list = append(list, *obj)
	}
	return list
}

// Interact runs interaction detection for a single body and delivers the resulting events to the handler.
func (s *Server) Interact(id string) ([]event.Event, error) {
	s.mu.Lock()
	events, err := s.sim.Interact(id)
	tick := s.sim.CurrentTick()
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	s.dispatch(tick, events)
	return events, nil
}

// Tick advances the simulation by dt seconds. Ticks after Close are ignored.
func (s *Server) Tick(dt float32) []event.Event {
	if s.closed.Load() {
		return nil
	}

	start := time.Now()
	s.mu.Lock()
	events := s.sim.Tick(dt)
	tick := s.sim.CurrentTick()
	s.mu.Unlock()

	s.recordTickTime(tick, time.Since(start))
	s.dispatch(tick, events)
	return events
}

// StartTicking ticks the simulation at the tick rate of the server until Close is called. The time elapsed
// between two ticks is passed as the delta time, which the simulation clamps.
func (s *Server) StartTicking() {
	defer sentry.Recover()

	s.mu.Lock()
	conf := s.sim.Config()
	s.mu.Unlock()
	s.log.WithFields(logrus.Fields{
		"tps":          s.tickRate,
		"gravity":      conf.Gravity,
		"ground":       conf.GroundLevel,
		"maxDeltaTime": conf.MaxDeltaTime,
	}).Debug("physics server ticking")

	t := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-s.closing:
			return
		case now := <-t.C:
			dt := now.Sub(last)
			last = now
			s.Tick(float32(dt.Seconds()))
		}
	}
}

// TickTimes returns the most recent tick durations, oldest first.
func (s *Server) TickTimes() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	times := make([]time.Duration, 0, s.tickTimes.Len())
	for d := range s.tickTimes.Iter() {
		times = append(times, d)
	}
	return times
}

// Close stops the ticking loop. Calls other than Tick keep working on the final state.
func (s *Server) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return errClosed
	}
	close(s.closing)
	s.log.Debug("physics server closed")
	return nil
}

func (s *Server) recordTickTime(tick uint64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tickTimes.Append(d); err != nil {
		s.log.Errorf("unable to record tick time: %v", err)
		return
	}
	if tick%uint64(s.tickRate*10) != 0 || !s.tickTimes.Full() {
		return
	}

	millis := make([]float64, 0, s.tickTimes.Len())
	for d := range s.tickTimes.Iter() {
		millis = append(millis, float64(d.Microseconds())/1000)
	}
	s.log.WithFields(logrus.Fields{
		"tick":   tick,
		"mean":   game.Mean(millis),
		"stddev": game.StandardDeviation(millis),
		"max":    slices.Max(millis),
	}).Debug("tick timings (ms)")
}

// dispatch hands events to the handler without holding the simulation lock.
func (s *Server) dispatch(tick uint64, events []event.Event) {
	if len(events) == 0 {
		return
	}
	h := s.handler()
	worker.Submit(func() {
		h.HandleEvents(tick, events)
	})
}
