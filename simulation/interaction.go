package simulation

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/physim/event"
	"github.com/oomph-ac/physim/game"
)

type payloadDefault struct {
	key   string
	value any
}

// consumableDefaults are filled into the event payload of a collected consumable when its own payload lacks them.
var consumableDefaults = map[string][]payloadDefault{
	TypeHealthPotion: {{"value", 25}},
	TypeWeapon:       {{"weapon_type", "sword"}, {"damage", 10}},
}

const defaultTriggerType = "switch"

// Interact checks the body registered under id against every interactable that has not been collected yet and
// returns the events produced. Static bodies never interact.
func (s *Simulation) Interact(id string) ([]event.Event, error) {
	b, err := s.Body(id)
	if err != nil {
		return nil, err
	}
	if b.Static {
		return nil, nil
	}
	return s.interact(id, b), nil
}

func (s *Simulation) interact(id string, b *Body) []event.Event {
	var events []event.Event
	for el := s.interactables.Front(); el != nil; el = el.Next() {
		obj := el.Value
		if obj.Collected || game.Distance(b.Position, obj.Position) > obj.Range {
			continue
		}
		if ev, ok := s.handleInteraction(id, obj); ok {
			events = append(events, ev)
		}
	}
	return events
}

// handleInteraction dispatches on the type of obj. Consumables are collected at most once; triggers fire every
// time. Other types are ignored.
func (s *Simulation) handleInteraction(id string, obj *InteractableObject) (event.Event, bool) {
	if _, ok := s.consumables[obj.Type]; ok {
		if obj.Collected {
			return nil, false
		}
		obj.Collected = true
		s.log.WithField("body", id).Debugf("collected %s %s", obj.Type, obj.ID)

		return event.ItemCollected{
			NopEvent: event.New(s.currentTick, id),
			ItemID:   obj.ID,
			ItemType: obj.Type,
			Data:     collectedPayload(obj),
		}, true
	}
	if _, ok := s.triggers[obj.Type]; ok {
		triggerType := defaultTriggerType
		if t, ok := obj.Data.Get("trigger_type"); ok {
			if str, ok := t.(string); ok {
				triggerType = str
			}
		}
		return event.TriggerActivated{
			NopEvent:    event.New(s.currentTick, id),
			TriggerID:   obj.ID,
			TriggerType: triggerType,
		}, true
	}
	return nil, false
}

// collectedPayload copies the payload of obj and fills in the defaults of its type.
func collectedPayload(obj *InteractableObject) *orderedmap.OrderedMap[string, any] {
	dat := orderedmap.NewOrderedMap[string, any]()
	for el := obj.Data.Front(); el != nil; el = el.Next() {
		dat.Set(el.Key, el.Value)
	}
	for _, d := range consumableDefaults[obj.Type] {
		if _, ok := dat.Get(d.key); !ok {
			dat.Set(d.key, d.value)
		}
	}
	return dat
}
