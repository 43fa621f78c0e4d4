package gesture

import "fmt"

// System wires a Source, a Recognizer, and a Dispatcher into a per-frame
// update. Call Update from your ebiten.Game's Update and Layout from its
// Layout.
type System struct {
	source     Source
	recognizer *Recognizer
	dispatcher *Dispatcher
	ui         UIHitTester
	debug      bool

	screenW, screenH float64

	injectQueue []FrameInput
	injectSeq   int
	testRunner  *TestRunner
	stats       frameStats
}

// NewSystem validates cfg and builds a System reading from the ebiten
// source for cfg.Mode.
func NewSystem(cfg Config) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new system: %w", err)
	}
	return &System{
		source:     NewSource(cfg.Mode),
		recognizer: NewRecognizer(cfg),
		dispatcher: NewDispatcher(),
		debug:      cfg.Debug,
	}, nil
}

// Recognizer returns the system's recognizer.
func (s *System) Recognizer() *Recognizer {
	return s.recognizer
}

// Dispatcher returns the system's dispatcher for registering callbacks.
func (s *System) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// SetSource replaces the input source.
func (s *System) SetSource(src Source) {
	s.source = src
}

// SetUIHitTester sets the UI hit-test service. nil means no UI layer.
func (s *System) SetUIHitTester(ui UIHitTester) {
	s.ui = ui
}

// SetEntityStore sets the optional ECS bridge on the dispatcher.
func (s *System) SetEntityStore(store EntityStore) {
	s.dispatcher.SetEntityStore(store)
}

// SetDebugMode enables or disables per-frame logging to stderr.
func (s *System) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Layout records the logical screen size used for activation area tests.
// Pass through the values your ebiten.Game.Layout returns.
func (s *System) Layout(width, height int) {
	s.screenW = float64(width)
	s.screenH = float64(height)
}

// Update reads one frame of input, advances the recognizer, and dispatches
// the resulting events. Injected frames take precedence over the source.
// It returns the events dispatched this frame; the slice is reused.
func (s *System) Update() []Event {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	frame, ok := s.popInjected()
	if !ok {
		if s.source == nil {
			frame = FrameInput{}
		} else {
			frame = s.source.Poll()
		}
	}
	if frame.ScreenWidth == 0 && frame.ScreenHeight == 0 {
		frame.ScreenWidth, frame.ScreenHeight = s.screenW, s.screenH
	}
	if frame.UI == nil {
		frame.UI = s.ui
	}

	events := s.recognizer.Advance(frame)
	if s.debug {
		s.logFrame(frame, events)
	}
	s.dispatcher.Dispatch(events)
	return events
}
