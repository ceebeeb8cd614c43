package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries every lifecycle step a gesture.Manager emits.
// Each gesture arrives as one begin event, zero or more update events and
// one end event, all sharing a SessionID; only update events carry deltas.
// Events queue in the world until events.ProcessAllEvents or
// GestureEventType.ProcessEvents runs.
var GestureEventType = events.NewEventType[gesture.GestureEvent]()

type donburiSink struct {
	world donburi.World
	kinds [gesture.KindShove + 1]bool
	all   bool
}

// NewDonburiSink returns a gesture.EventSink that publishes to
// GestureEventType in world. With no kinds every move, rotate, scale and
// shove event is published; otherwise only events of the listed kinds are.
func NewDonburiSink(world donburi.World, kinds ...gesture.Kind) gesture.EventSink {
	s := &donburiSink{world: world, all: len(kinds) == 0}
	for _, k := range kinds {
		if int(k) < len(s.kinds) {
			s.kinds[k] = true
		}
	}
	return s
}

func (s *donburiSink) EmitEvent(event gesture.GestureEvent) {
	if !s.all && (int(event.Kind) >= len(s.kinds) || !s.kinds[event.Kind]) {
		return
	}
	GestureEventType.Publish(s.world, event)
}
