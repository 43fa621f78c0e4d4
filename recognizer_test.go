package gesture

import (
	"math/rand/v2"
	"testing"
)

// --- Helpers ---

func newTouchRecognizer(area ActivationArea) *Recognizer {
	return NewRecognizer(Config{ActivationArea: area, Mode: ModeTouch})
}

func touch(id PointerID, x, y float64, phase Phase) PointerSample {
	return PointerSample{ID: id, Position: Vec2{x, y}, Phase: phase}
}

func moved(id PointerID, x, y, dx, dy float64) PointerSample {
	return PointerSample{ID: id, Position: Vec2{x, y}, Delta: Vec2{dx, dy}, Phase: PhaseMoved}
}

func frame(ps ...PointerSample) FrameInput {
	return FrameInput{Pointers: ps, ScreenWidth: 1000, ScreenHeight: 1000}
}

// advance copies the result since Advance reuses its slice.
func advance(r *Recognizer, f FrameInput) []Event {
	return append([]Event(nil), r.Advance(f)...)
}

func expectTypes(t *testing.T, got []Event, want ...EventType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %d events: %+v", want, len(got), got)
	}
	for i := range want {
		if got[i].Type != want[i] {
			t.Fatalf("event %d: expected %v, got %v", i, want[i], got[i].Type)
		}
	}
}

// --- Construction ---

func TestNewRecognizer_Defaults(t *testing.T) {
	r := NewRecognizer(Config{})
	if r.ActivationArea() != FullScreen {
		t.Errorf("unset area should default to full screen, got %+v", r.ActivationArea())
	}
	if r.zoomScale != defaultZoomScale {
		t.Errorf("zoomScale = %v, want %v", r.zoomScale, defaultZoomScale)
	}
	if _, ok := r.Tracking(); ok {
		t.Error("new recognizer should be idle")
	}
	if r.Zooming() {
		t.Error("new recognizer should not be zooming")
	}

	// An explicit all-zero area is indistinguishable from an unset one.
	r = NewRecognizer(Config{ActivationArea: ActivationArea{Min: Vec2{0, 0}, Max: Vec2{0, 0}}})
	if r.ActivationArea() != FullScreen {
		t.Errorf("all-zero area should mean full screen, got %+v", r.ActivationArea())
	}
}

func TestAdvance_NoPointersIdle(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	for i := 0; i < 3; i++ {
		expectTypes(t, advance(r, frame()))
	}
}

// --- Scenarios ---

func TestScenario_TapDragRelease(t *testing.T) {
	r := newTouchRecognizer(FullScreen)

	got := advance(r, frame(touch(1, 100, 100, PhaseBegan)))
	expectTypes(t, got, EventTouchDown)
	if got[0].Position != (Vec2{100, 100}) {
		t.Errorf("TouchDown position = %v", got[0].Position)
	}
	if got[0].Pointer.ID != 1 || got[0].Pointer.Phase != PhaseBegan {
		t.Errorf("TouchDown pointer = %+v", got[0].Pointer)
	}

	got = advance(r, frame(moved(1, 150, 100, 50, 0)))
	expectTypes(t, got, EventDrag)
	d := got[0].Drag()
	if d.Delta != (Vec2{50, 0}) || d.StartPosition != (Vec2{100, 100}) || d.Position != (Vec2{150, 100}) {
		t.Errorf("Drag = %+v", d)
	}

	got = advance(r, frame(touch(1, 150, 100, PhaseEnded)))
	expectTypes(t, got, EventTouchUp)
	u := got[0].TouchUp()
	if u.StartPosition != (Vec2{100, 100}) || u.Position != (Vec2{150, 100}) {
		t.Errorf("TouchUp = %+v", u)
	}
	if _, ok := r.Tracking(); ok {
		t.Error("tracking should be cleared after TouchUp")
	}
}

func TestScenario_ActivationFilter(t *testing.T) {
	r := newTouchRecognizer(ActivationArea{Min: Vec2{0.5, 0}, Max: Vec2{1, 1}})

	expectTypes(t, advance(r, frame(touch(1, 100, 50, PhaseBegan))))
	// Moving into the area later does not make the touch eligible.
	expectTypes(t, advance(r, frame(moved(1, 600, 50, 500, 0))))
	expectTypes(t, advance(r, frame(touch(1, 600, 50, PhaseStationary))))
	expectTypes(t, advance(r, frame(touch(1, 600, 50, PhaseEnded))))
	expectTypes(t, advance(r, frame()))

	// A new touch inside the area is accepted.
	expectTypes(t, advance(r, frame(touch(2, 600, 50, PhaseBegan))), EventTouchDown)
}

func TestScenario_PinchZoom(t *testing.T) {
	r := newTouchRecognizer(FullScreen)

	got := advance(r, frame(
		touch(0, 0, 0, PhaseBegan),
		touch(1, 100, 0, PhaseBegan),
	))
	expectTypes(t, got, EventZoom)
	if got[0].ChangeAmount != 0 {
		t.Errorf("first zoom = %v, want 0", got[0].ChangeAmount)
	}
	if !r.Zooming() {
		t.Error("should be zooming")
	}

	got = advance(r, frame(
		touch(0, 0, 0, PhaseStationary),
		moved(1, 150, 0, 50, 0),
	))
	expectTypes(t, got, EventZoom)
	if got[0].ChangeAmount != 50 {
		t.Errorf("zoom = %v, want 50", got[0].ChangeAmount)
	}

	// Pointers approaching each other zoom out.
	got = advance(r, frame(
		moved(0, 25, 0, 25, 0),
		moved(1, 125, 0, -25, 0),
	))
	expectTypes(t, got, EventZoom)
	if got[0].ChangeAmount != -50 {
		t.Errorf("zoom = %v, want -50", got[0].ChangeAmount)
	}
}

func TestScenario_PointerLoss(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))
	advance(r, frame(moved(1, 20, 20, 10, 10)))

	got := advance(r, frame())
	expectTypes(t, got, EventTouchUp)
	if got[0].StartPosition != (Vec2{10, 10}) || got[0].Position != (Vec2{20, 20}) {
		t.Errorf("TouchUp = %+v", got[0])
	}
	if _, ok := r.Tracking(); ok {
		t.Error("tracking should be cleared after loss")
	}
	expectTypes(t, advance(r, frame()))
}

func TestPointerLoss_EmittedAloneBeforeAcquisition(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))

	// Tracked pointer vanished and a new one began in the same frame.
	got := advance(r, frame(touch(2, 50, 50, PhaseBegan)))
	expectTypes(t, got, EventTouchUp)
	if got[0].Position != (Vec2{10, 10}) {
		t.Errorf("closure should use last known position, got %v", got[0].Position)
	}

	// The new touch is picked up on the next frame at its current position.
	got = advance(r, frame(moved(2, 55, 50, 5, 0)))
	expectTypes(t, got, EventTouchDown)
	if got[0].Pointer.ID != 2 || got[0].Position != (Vec2{55, 50}) {
		t.Errorf("TouchDown = %+v", got[0])
	}
	got = advance(r, frame(moved(2, 60, 50, 5, 0)))
	expectTypes(t, got, EventDrag)
	if got[0].StartPosition != (Vec2{55, 50}) {
		t.Errorf("Drag start = %v", got[0].StartPosition)
	}
	expectTypes(t, advance(r, frame(touch(2, 60, 50, PhaseEnded))), EventTouchUp)
}

func TestPointerLoss_DeferredTouchOutsideAreaIgnored(t *testing.T) {
	r := newTouchRecognizer(ActivationArea{Min: Vec2{0.5, 0}, Max: Vec2{1, 1}})
	advance(r, frame(touch(1, 600, 10, PhaseBegan)))

	expectTypes(t, advance(r, frame(touch(2, 100, 10, PhaseBegan))), EventTouchUp)
	expectTypes(t, advance(r, frame(moved(2, 700, 10, 600, 0))))
	if _, ok := r.Tracking(); ok {
		t.Error("a touch that began outside the area must not be tracked")
	}
}

func TestPointerLoss_DeferredTouchLiftedBeforeAcquisition(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))
	advance(r, frame(touch(2, 50, 50, PhaseBegan)))

	expectTypes(t, advance(r, frame(touch(2, 50, 50, PhaseEnded))))
	expectTypes(t, advance(r, frame()))
}

// --- UI flag ---

func TestFrozenUIFlag(t *testing.T) {
	overUI := true
	ui := UIHitTesterFunc(func(Vec2) bool { return overUI })
	r := newTouchRecognizer(FullScreen)

	f := frame(touch(1, 10, 10, PhaseBegan))
	f.UI = ui
	got := advance(r, f)
	expectTypes(t, got, EventTouchDown)
	if !got[0].IsOverUI {
		t.Error("TouchDown should report over UI")
	}

	overUI = false
	f = frame(moved(1, 30, 10, 20, 0))
	f.UI = ui
	got = advance(r, f)
	expectTypes(t, got, EventDrag)
	if !got[0].Drag().IsStartOverUI {
		t.Error("Drag should keep the flag captured at TouchDown")
	}

	f = frame(touch(1, 30, 10, PhaseEnded))
	f.UI = ui
	got = advance(r, f)
	expectTypes(t, got, EventTouchUp)
	if !got[0].TouchUp().IsStartOverUI {
		t.Error("TouchUp should keep the flag captured at TouchDown")
	}
}

func TestUIFlag_QueriedOncePerGesture(t *testing.T) {
	calls := 0
	ui := UIHitTesterFunc(func(Vec2) bool { calls++; return false })
	r := newTouchRecognizer(FullScreen)

	for _, p := range []PointerSample{
		touch(1, 10, 10, PhaseBegan),
		moved(1, 20, 10, 10, 0),
		touch(1, 20, 10, PhaseStationary),
		touch(1, 20, 10, PhaseEnded),
	} {
		f := frame(p)
		f.UI = ui
		r.Advance(f)
	}
	if calls != 1 {
		t.Errorf("UI queried %d times, want 1", calls)
	}
}

func TestUIFlag_NilUIFailsOpen(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	got := advance(r, frame(touch(1, 10, 10, PhaseBegan)))
	expectTypes(t, got, EventTouchDown)
	if got[0].IsOverUI {
		t.Error("nil UI should resolve to not over UI")
	}
}

// --- Phases ---

func TestStationaryEmitsDrag(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))

	for i := 0; i < 3; i++ {
		got := advance(r, frame(touch(1, 10, 10, PhaseStationary)))
		expectTypes(t, got, EventDrag)
		if got[0].Delta != (Vec2{}) {
			t.Errorf("stationary delta = %v", got[0].Delta)
		}
	}
}

func TestIgnoreStationary(t *testing.T) {
	r := NewRecognizer(Config{Mode: ModeTouch, IgnoreStationary: true})
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))

	expectTypes(t, advance(r, frame(touch(1, 10, 10, PhaseStationary))))
	expectTypes(t, advance(r, frame(moved(1, 12, 10, 2, 0))), EventDrag)
}

func TestPhaseClosesGesture(t *testing.T) {
	tests := []struct {
		name  string
		phase Phase
	}{
		{"ended", PhaseEnded},
		{"canceled", PhaseCanceled},
		{"unknown", Phase(42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTouchRecognizer(FullScreen)
			advance(r, frame(touch(1, 10, 10, PhaseBegan)))
			got := advance(r, frame(touch(1, 40, 10, tt.phase)))
			expectTypes(t, got, EventTouchUp)
			if got[0].Position != (Vec2{40, 10}) {
				t.Errorf("TouchUp position = %v", got[0].Position)
			}
			if _, ok := r.Tracking(); ok {
				t.Error("tracking should be cleared")
			}
		})
	}
}

func TestNonBeganPointerNotAcquired(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	expectTypes(t, advance(r, frame(moved(1, 10, 10, 1, 1))))
	if _, ok := r.Tracking(); ok {
		t.Error("a pointer first seen mid-gesture should not be tracked")
	}
}

// --- Activation area ---

func TestActivationArea_Contains(t *testing.T) {
	a := ActivationArea{Min: Vec2{0.25, 0.5}, Max: Vec2{0.75, 1}}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", Vec2{0.5, 0.75}, true},
		{"min corner", Vec2{0.25, 0.5}, true},
		{"max corner", Vec2{0.75, 1}, true},
		{"left", Vec2{0.2, 0.75}, false},
		{"right", Vec2{0.8, 0.75}, false},
		{"above", Vec2{0.5, 0.4}, false},
		{"below", Vec2{0.5, 1.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestActivationArea_Valid(t *testing.T) {
	tests := []struct {
		name string
		a    ActivationArea
		want bool
	}{
		{"full screen", FullScreen, true},
		{"right half", ActivationArea{Min: Vec2{0.5, 0}, Max: Vec2{1, 1}}, true},
		{"degenerate line", ActivationArea{Min: Vec2{0.5, 0}, Max: Vec2{0.5, 1}}, true},
		{"inverted", ActivationArea{Min: Vec2{0.6, 0}, Max: Vec2{0.4, 1}}, false},
		{"negative", ActivationArea{Min: Vec2{-0.1, 0}, Max: Vec2{1, 1}}, false},
		{"over one", ActivationArea{Min: Vec2{0, 0}, Max: Vec2{1, 1.5}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActivation_EdgeInclusive(t *testing.T) {
	r := newTouchRecognizer(ActivationArea{Min: Vec2{0.5, 0}, Max: Vec2{1, 1}})
	expectTypes(t, advance(r, frame(touch(1, 500, 0, PhaseBegan))), EventTouchDown)

	r = newTouchRecognizer(ActivationArea{Min: Vec2{0.5, 0}, Max: Vec2{1, 1}})
	expectTypes(t, advance(r, frame(touch(1, 1000, 1000, PhaseBegan))), EventTouchDown)
}

func TestActivation_NormalizesByScreenSize(t *testing.T) {
	r := newTouchRecognizer(ActivationArea{Min: Vec2{0.5, 0.5}, Max: Vec2{1, 1}})
	f := FrameInput{
		Pointers:    []PointerSample{touch(1, 300, 200, PhaseBegan)},
		ScreenWidth: 400, ScreenHeight: 300,
	}
	// (0.75, 0.667) is inside.
	expectTypes(t, advance(r, f), EventTouchDown)
}

func TestActivation_UnknownScreenSizeAccepts(t *testing.T) {
	r := newTouchRecognizer(ActivationArea{Min: Vec2{0.5, 0.5}, Max: Vec2{1, 1}})
	f := FrameInput{Pointers: []PointerSample{touch(1, 10, 10, PhaseBegan)}}
	expectTypes(t, advance(r, f), EventTouchDown)
}

func TestRevalidate_ClosesWhenLeavingArea(t *testing.T) {
	r := NewRecognizer(Config{
		Mode:           ModeTouch,
		ActivationArea: ActivationArea{Min: Vec2{0, 0}, Max: Vec2{0.5, 1}},
		Revalidate:     true,
	})
	advance(r, frame(touch(1, 100, 100, PhaseBegan)))
	expectTypes(t, advance(r, frame(moved(1, 400, 100, 300, 0))), EventDrag)

	got := advance(r, frame(moved(1, 800, 100, 400, 0)))
	expectTypes(t, got, EventTouchUp)
	if got[0].Position != (Vec2{800, 100}) {
		t.Errorf("TouchUp position = %v", got[0].Position)
	}
	// The pointer is not picked up again while it stays down.
	expectTypes(t, advance(r, frame(moved(1, 300, 100, -500, 0))))
}

func TestNoRevalidate_KeepsTrackingOutsideArea(t *testing.T) {
	r := newTouchRecognizer(ActivationArea{Min: Vec2{0, 0}, Max: Vec2{0.5, 1}})
	advance(r, frame(touch(1, 100, 100, PhaseBegan)))
	expectTypes(t, advance(r, frame(moved(1, 900, 100, 800, 0))), EventDrag)
}

// --- Pinch ---

func TestPinch_SuppressesSingleTouch(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 100, 100, PhaseBegan)))

	got := advance(r, frame(moved(1, 110, 100, 10, 0), touch(2, 300, 100, PhaseBegan)))
	expectTypes(t, got, EventZoom)

	got = advance(r, frame(moved(1, 120, 100, 10, 0), touch(2, 300, 100, PhaseEnded)))
	expectTypes(t, got, EventZoom)

	// Hysteresis frame: zooming clears, nothing else happens.
	got = advance(r, frame(touch(1, 120, 100, PhaseStationary)))
	expectTypes(t, got)
	if r.Zooming() {
		t.Error("zooming should clear once fewer than two pointers remain")
	}

	// The first touch resumes.
	got = advance(r, frame(moved(1, 130, 100, 10, 0)))
	expectTypes(t, got, EventDrag)
	if got[0].StartPosition != (Vec2{100, 100}) {
		t.Errorf("Drag start = %v", got[0].StartPosition)
	}
}

func TestPinch_RemainingFingerNotReinterpretedAsBegan(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 100, 100, PhaseBegan), touch(2, 200, 100, PhaseBegan)))

	expectTypes(t, advance(r, frame(touch(2, 200, 100, PhaseBegan))))
	if _, ok := r.Tracking(); ok {
		t.Error("hysteresis frame should not acquire a pointer")
	}
	expectTypes(t, advance(r, frame(moved(2, 210, 100, 10, 0))))
	if _, ok := r.Tracking(); ok {
		t.Error("a pinch finger should not start a single-touch gesture")
	}
}

func TestPinch_TrackedPointerLostDuringPinch(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))
	advance(r, frame(moved(1, 20, 10, 10, 0), touch(2, 200, 10, PhaseBegan)))

	// Tracked pointer disappears while two others pinch.
	got := advance(r, frame(touch(2, 200, 10, PhaseStationary), touch(3, 400, 10, PhaseBegan)))
	expectTypes(t, got, EventZoom)

	got = advance(r, frame())
	expectTypes(t, got, EventTouchUp)
	if got[0].Position != (Vec2{20, 10}) {
		t.Errorf("closure should use the last observed position, got %v", got[0].Position)
	}
}

func TestPinch_TrackedPointerEndsOnHysteresisFrame(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))
	advance(r, frame(moved(1, 50, 50, 40, 40), touch(2, 300, 10, PhaseBegan)))
	advance(r, frame(moved(1, 50, 50, 0, 0), touch(2, 300, 10, PhaseEnded)))

	got := advance(r, frame(touch(1, 60, 60, PhaseEnded)))
	expectTypes(t, got, EventTouchUp)
	if got[0].Position != (Vec2{60, 60}) || got[0].StartPosition != (Vec2{10, 10}) {
		t.Errorf("TouchUp = %+v", got[0])
	}
	if _, ok := r.Tracking(); ok {
		t.Error("tracking should clear when the pointer lifts")
	}
	expectTypes(t, advance(r, frame()))
}

func TestPinch_TrackedPointerLostOnHysteresisFrame(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))
	advance(r, frame(moved(1, 50, 50, 40, 40), touch(2, 300, 10, PhaseBegan)))

	got := advance(r, frame(touch(2, 300, 10, PhaseStationary)))
	expectTypes(t, got, EventTouchUp)
	if got[0].Position != (Vec2{50, 50}) {
		t.Errorf("closure should use the last observed position, got %v", got[0].Position)
	}
}

func TestPinch_TouchBeganOnHysteresisFrame(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 100, 100, PhaseBegan), touch(2, 200, 100, PhaseBegan)))
	advance(r, frame(touch(1, 100, 100, PhaseEnded), touch(2, 200, 100, PhaseEnded)))

	// A fresh touch lands on the hysteresis frame.
	expectTypes(t, advance(r, frame(touch(3, 400, 400, PhaseBegan))))
	if r.Zooming() {
		t.Error("zooming should clear on the hysteresis frame")
	}

	got := advance(r, frame(moved(3, 410, 400, 10, 0)))
	expectTypes(t, got, EventTouchDown)
	if got[0].Pointer.ID != 3 || got[0].Position != (Vec2{410, 400}) {
		t.Errorf("TouchDown = %+v", got[0])
	}
	expectTypes(t, advance(r, frame(touch(3, 410, 400, PhaseEnded))), EventTouchUp)
}

func TestPinch_UsesFirstTwoPointers(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	got := advance(r, frame(
		touch(1, 0, 0, PhaseStationary),
		moved(2, 0, 30, 0, 10),
		moved(3, 900, 900, 500, 500),
	))
	expectTypes(t, got, EventZoom)
	if got[0].ChangeAmount != 10 {
		t.Errorf("zoom = %v, want 10", got[0].ChangeAmount)
	}
}

// --- Reset ---

func TestReset(t *testing.T) {
	r := newTouchRecognizer(FullScreen)
	advance(r, frame(touch(1, 10, 10, PhaseBegan)))
	r.Reset()
	if _, ok := r.Tracking(); ok {
		t.Error("Reset should clear tracking")
	}
	// No synthesized TouchUp after a reset.
	expectTypes(t, advance(r, frame()))
}

// --- Properties over random input ---

// simPointer is a pointer in the random input simulation.
type simPointer struct {
	id    PointerID
	pos   Vec2
	ended bool
}

func TestRandomSequences_GestureInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	area := ActivationArea{Min: Vec2{0.2, 0.2}, Max: Vec2{0.8, 0.8}}

	for run := 0; run < 50; run++ {
		r := newTouchRecognizer(area)
		var active []simPointer
		var nextID PointerID
		open := false
		var openStartOverUI bool
		var downPos Vec2
		downs := map[PointerID]bool{}
		var candidate PointerID
		watching := false

		for step := 0; step < 200; step++ {
			overUI := rng.IntN(2) == 0
			var samples []PointerSample
			var keep []simPointer

			for _, p := range active {
				if p.ended {
					continue // lifted last frame
				}
				switch rng.IntN(10) {
				case 0: // vanish without an Ended phase
					continue
				case 1:
					p.ended = true
					samples = append(samples, touch(p.id, p.pos.X, p.pos.Y, PhaseEnded))
				case 2:
					samples = append(samples, touch(p.id, p.pos.X, p.pos.Y, PhaseStationary))
				default:
					d := Vec2{float64(rng.IntN(41) - 20), float64(rng.IntN(41) - 20)}
					p.pos = p.pos.Add(d)
					samples = append(samples, PointerSample{ID: p.id, Position: p.pos, Delta: d, Phase: PhaseMoved})
				}
				keep = append(keep, p)
			}
			if len(keep) < 3 && rng.IntN(4) == 0 {
				nextID++
				p := simPointer{id: nextID, pos: Vec2{float64(rng.IntN(1000)), float64(rng.IntN(1000))}}
				samples = append(samples, touch(p.id, p.pos.X, p.pos.Y, PhaseBegan))
				keep = append(keep, p)
			}
			active = keep

			f := frame(samples...)
			f.UI = UIHitTesterFunc(func(Vec2) bool { return overUI })
			events := advance(r, f)

			if len(events) > 1 {
				t.Fatalf("run %d step %d: more than one event in a frame: %+v", run, step, events)
			}
			for _, e := range events {
				switch e.Type {
				case EventTouchDown:
					if open {
						t.Fatalf("run %d step %d: TouchDown while a gesture is open", run, step)
					}
					n, _ := f.normalize(e.Position)
					if !area.Contains(n) {
						t.Fatalf("run %d step %d: TouchDown outside activation area at %v", run, step, e.Position)
					}
					open, openStartOverUI, downPos = true, e.IsOverUI, e.Position
				case EventDrag, EventTouchUp:
					if !open {
						t.Fatalf("run %d step %d: %v without an open gesture", run, step, e.Type)
					}
					if e.IsOverUI != openStartOverUI || e.StartPosition != downPos {
						t.Fatalf("run %d step %d: %v changed frozen gesture state: %+v", run, step, e.Type, e)
					}
					if e.Type == EventTouchUp {
						open = false
					}
				case EventZoom:
					if len(samples) < 2 {
						t.Fatalf("run %d step %d: Zoom with %d pointers", run, step, len(samples))
					}
				}
				if e.Type != EventZoom && len(samples) >= 2 {
					t.Fatalf("run %d step %d: single-touch %v with %d pointers", run, step, e.Type, len(samples))
				}
			}
			if _, tracking := r.Tracking(); tracking != open {
				t.Fatalf("run %d step %d: tracking=%v open=%v", run, step, tracking, open)
			}

			// A touch that begins alone inside the area, and is still alone
			// and inside on the next frame, has opened a gesture by then.
			for _, e := range events {
				if e.Type == EventTouchDown {
					downs[e.Pointer.ID] = true
				}
			}
			if watching && len(samples) == 1 && samples[0].ID == candidate &&
				samples[0].Phase.held() && insideNormalized(f, area, samples[0].Position) &&
				!downs[candidate] {
				t.Fatalf("run %d step %d: pointer %d began inside the area but never opened a gesture", run, step, candidate)
			}
			watching = false
			if len(samples) == 1 && samples[0].Phase == PhaseBegan && insideNormalized(f, area, samples[0].Position) {
				candidate, watching = samples[0].ID, true
			}
		}
	}
}

func insideNormalized(f FrameInput, area ActivationArea, p Vec2) bool {
	n, _ := f.normalize(p)
	return area.Contains(n)
}
