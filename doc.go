// Package gesture turns raw per-frame touch and mouse input into gesture
// events for [Ebitengine] games: TouchDown, Drag, TouchUp, and pinch Zoom.
//
// # Quick start
//
// [System] wires an input [Source], a [Recognizer], and a [Dispatcher]
// together. Call it from your game loop:
//
//	sys, err := gesture.NewSystem(gesture.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	sys.Dispatcher().OnDrag(func(e gesture.DragEvent) {
//		if !e.IsStartOverUI {
//			player.X += e.Delta.X
//		}
//	})
//
//	func (g *Game) Update() error            { g.sys.Update(); return nil }
//	func (g *Game) Layout(w, h int) (int, int) { g.sys.Layout(w, h); return w, h }
//
// # Recognition rules
//
// At most one pointer is tracked at a time. A touch is accepted only if it
// begins inside the configured [ActivationArea] (normalized screen
// coordinates); touches that begin elsewhere are ignored for their whole
// lifetime. Whether the touch started over UI is asked once, when it begins,
// and reported unchanged on every later Drag and TouchUp.
//
// While two or more pointers are down, only Zoom events are produced. A
// tracked pointer that vanishes without an Ended phase is closed with a
// synthesized TouchUp at its last known position.
//
// On desktop, [ModeMouse] maps the left mouse button to a single touch and
// the scroll wheel to Zoom. The mode is fixed when the Recognizer is built.
//
// # Configuration
//
// [Config] can be loaded from TOML with [LoadConfig]:
//
//	mode = "touch"
//
//	[activation_area]
//	min = { x = 0.5, y = 0.0 }
//	max = { x = 1.0, y = 1.0 }
//
// # ECS
//
// The gesture/ecs package publishes every event into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gesture
