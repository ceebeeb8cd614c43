// Package gesture recognizes multi-touch gestures from a stream of pointer
// samples and turns them into camera motion for [Ebitengine] games and maps.
//
// # Detectors
//
// Four detectors share one state machine over immutable [Snapshot] values:
//
//   - [MoveDetector] tracks the centroid of any number of fingers (pan).
//   - [RotateDetector] tracks the angle between the first two fingers.
//   - [ScaleDetector] tracks the distance between the first two fingers.
//   - [ShoveDetector] tracks two side-by-side fingers dragging vertically.
//
// Each detector reports to a listener with begin, update and end callbacks.
// Begin may veto a gesture; update returns a [Continuation] telling the
// detector whether the current sample becomes the new reference:
//
//	d := gesture.NewRotateDetector(gesture.RotateFuncs{
//		Rotate: func(d *gesture.RotateDetector) gesture.Continuation {
//			angle += d.RotationDegreesDelta()
//			return gesture.Advance
//		},
//	}, gesture.DefaultConfig())
//	d.SubmitEvent(snapshot)
//
// Rotate and scale begin only after the fingers have turned or spread past
// a threshold since placement ([Config.RotateAngleThreshold],
// [Config.ScaleSpanThreshold]). Two-finger detectors ignore placements that
// start within [Config.EdgeSlop] of the screen edge until the fingers move
// clear of it; the right and bottom edges need [Config.Screen] or
// SetScreen. All detectors drop samples whose pressure falls sharply, and
// the move detector reports no delta for the sample on which the pointer
// count changed.
//
// # Manager and camera
//
// [Manager] runs one detector of each kind, suspends panning while a shove is
// running, makes rotate and scale harder to start while the other runs, and
// fans events out to callbacks registered with [Manager.OnGesture] and to an
// optional [EventSink]:
//
//	m := gesture.NewManager(cfg)
//	m.SetScreen(gesture.Rect{Width: 640, Height: 480})
//	cam := gesture.NewCamera(gesture.Rect{Width: 640, Height: 480})
//	gesture.NewCameraController(cam, m, cfg)
//
// [CameraController] pans, zooms, rotates and tilts a [Camera] and continues
// fast gestures with eased inertia animations after the fingers lift.
//
// # Input
//
// [EbitenSource] polls Ebitengine's touch and mouse state once per tick and
// [MobileSource] converts golang.org/x/mobile touch events. [LoadScript]
// parses JSON gesture scripts for tests and the gesturereplay command.
//
// # Logging
//
// The package logs through [log/slog] and is silent until [SetLogger] is
// called.
//
// [Ebitengine]: https://ebitengine.org
package gesture
