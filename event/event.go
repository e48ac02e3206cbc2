package event

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	"github.com/oomph-ac/physim/oerror"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	EventIDItemCollected byte = iota
	EventIDTriggerActivated
)

// Event is something that happened to a body during a tick that the host may want to forward.
type Event interface {
	ID() byte
	// Tick is the simulation tick the event happened in.
	Tick() uint64
	// Body is the id of the body that caused the event.
	Body() string
}

// NopEvent holds the fields shared by every event.
type NopEvent struct {
	UUID   uuid.UUID
	EvTick uint64
	BodyID string
}

func (n NopEvent) Tick() uint64 {
	return n.EvTick
}

func (n NopEvent) Body() string {
	return n.BodyID
}

// New returns the shared part of an event caused by body in the given tick.
func New(tick uint64, body string) NopEvent {
	return NopEvent{UUID: uuid.New(), EvTick: tick, BodyID: body}
}

// ItemCollected is emitted once when a body picks up a consumable.
type ItemCollected struct {
	NopEvent

	ItemID   string
	ItemType string
	Data     *orderedmap.OrderedMap[string, any]
}

func (ItemCollected) ID() byte {
	return EventIDItemCollected
}

// TriggerActivated is emitted every tick a body is within range of a trigger.
type TriggerActivated struct {
	NopEvent

	TriggerID   string
	TriggerType string
}

func (TriggerActivated) ID() byte {
	return EventIDTriggerActivated
}

// field is a single key/value pair of an event payload. Payloads are encoded as a list to keep their order.
type field struct {
	Key   string `msgpack:"k"`
	Value any    `msgpack:"v"`
}

type wireEvent struct {
	ID          byte    `msgpack:"id"`
	UUID        string  `msgpack:"uuid"`
	Tick        uint64  `msgpack:"tick"`
	Body        string  `msgpack:"body"`
	Subject     string  `msgpack:"subject"`
	SubjectType string  `msgpack:"subject_type"`
	Data        []field `msgpack:"data,omitempty"`
}

// Encode encodes an event with msgpack.
func Encode(ev Event) ([]byte, error) {
	w := wireEvent{ID: ev.ID(), Tick: ev.Tick(), Body: ev.Body()}
	switch ev := ev.(type) {
	case ItemCollected:
		w.UUID = ev.UUID.String()
		w.Subject, w.SubjectType = ev.ItemID, ev.ItemType
		if ev.Data != nil {
			for el := ev.Data.Front(); el != nil; el = el.Next() {
				w.Data = append(w.Data, field{Key: el.Key, Value: el.Value})
			}
		}
	case TriggerActivated:
		w.UUID = ev.UUID.String()
		w.Subject, w.SubjectType = ev.TriggerID, ev.TriggerType
	default:
		return nil, oerror.New("cannot encode event of type %T", ev)
	}
	return msgpack.Marshal(w)
}

// Decode decodes an event encoded with Encode.
func Decode(data []byte) (Event, error) {
	var w wireEvent
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, oerror.New("error decoding event: %v", err)
	}
	id, err := uuid.Parse(w.UUID)
	if err != nil {
		return nil, oerror.New("error decoding event uuid: %v", err)
	}
	base := NopEvent{UUID: id, EvTick: w.Tick, BodyID: w.Body}

	switch w.ID {
	case EventIDItemCollected:
		dat := orderedmap.NewOrderedMap[string, any]()
		for _, f := range w.Data {
			dat.Set(f.Key, f.Value)
		}
		return ItemCollected{NopEvent: base, ItemID: w.Subject, ItemType: w.SubjectType, Data: dat}, nil
	case EventIDTriggerActivated:
		return TriggerActivated{NopEvent: base, TriggerID: w.Subject, TriggerType: w.SubjectType}, nil
	}
	return nil, oerror.New("unknown event id %d", w.ID)
}
