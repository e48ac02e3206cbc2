package physim

import "github.com/oomph-ac/physim/event"

// Handler handles the events produced by a Server.
type Handler interface {
	// HandleEvents is called with the interaction events produced during a tick. It runs on a worker goroutine,
	// so calls for different ticks may overlap.
	HandleEvents(tick uint64, events []event.Event)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(tick uint64, events []event.Event)

// HandleEvents ...
func (f HandlerFunc) HandleEvents(tick uint64, events []event.Event) {
	f(tick, events)
}

// NopHandler is a Handler that does nothing.
type NopHandler struct{}

// HandleEvents ...
func (NopHandler) HandleEvents(uint64, []event.Event) {}
