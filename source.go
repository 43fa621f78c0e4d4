package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source produces one FrameInput per frame from a platform input API.
// Screen size and UI are filled in by System.
type Source interface {
	Poll() FrameInput
}

// NewSource returns the ebiten source matching mode.
func NewSource(mode Mode) Source {
	if mode == ModeMouse {
		return &MouseSource{}
	}
	return &TouchSource{}
}

// --- Touch ---

// TouchSource reads ebiten touches. Phases and deltas are derived from
// inpututil's just-pressed/just-released sets and previous-tick positions.
type TouchSource struct {
	ids          []ebiten.TouchID
	justPressed  []ebiten.TouchID
	justReleased []ebiten.TouchID
	samples      []PointerSample
}

// Poll implements Source. Touches released this tick are reported once with
// PhaseEnded at their last position. The returned Pointers slice is reused.
func (s *TouchSource) Poll() FrameInput {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	s.justPressed = inpututil.AppendJustPressedTouchIDs(s.justPressed[:0])
	s.justReleased = inpututil.AppendJustReleasedTouchIDs(s.justReleased[:0])
	s.samples = s.samples[:0]

	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		pos := Vec2{float64(x), float64(y)}
		sample := PointerSample{ID: PointerID(id), Position: pos}
		if containsTouchID(s.justPressed, id) {
			sample.Phase = PhaseBegan
		} else {
			px, py := inpututil.TouchPositionInPreviousTick(id)
			sample.Delta = pos.Sub(Vec2{float64(px), float64(py)})
			if sample.Delta == (Vec2{}) {
				sample.Phase = PhaseStationary
			} else {
				sample.Phase = PhaseMoved
			}
		}
		s.samples = append(s.samples, sample)
	}

	for _, id := range s.justReleased {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.samples = append(s.samples, PointerSample{
			ID:       PointerID(id),
			Position: Vec2{float64(x), float64(y)},
			Phase:    PhaseEnded,
		})
	}

	return FrameInput{Pointers: s.samples}
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// --- Mouse ---

// MouseSource reads the left mouse button, cursor, and wheel from ebiten for
// desktop testing of touch gestures.
type MouseSource struct{}

// Poll implements Source.
func (s *MouseSource) Poll() FrameInput {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	return FrameInput{Mouse: MouseState{
		Position:     Vec2{float64(mx), float64(my)},
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Scroll:       Vec2{wx, wy},
	}}
}
