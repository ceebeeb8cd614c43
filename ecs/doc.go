// Package ecs provides ECS adapters for gesture's event stream.
//
// The primary adapter is [NewDonburiSink], which bridges gesture events
// (move, rotate, scale, shove) into a [Donburi] world as typed events.
// Subscribe to [GestureEventType] in your ECS systems to receive them, or
// pass kinds to publish only those gestures:
//
//	manager.SetEventSink(ecs.NewDonburiSink(world))
//	manager.SetEventSink(ecs.NewDonburiSink(world, gesture.KindRotate, gesture.KindScale))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
