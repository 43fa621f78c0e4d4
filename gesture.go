package gesture

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for positions, deltas, and normalized coordinates
// throughout the API.
type Vec2 struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// PointerID identifies a physical touch for its whole lifetime.
type PointerID int

// MousePointerID is the id reported for the emulated mouse pointer.
const MousePointerID PointerID = -1

// Phase is the per-frame lifecycle stage of a pointer.
type Phase uint8

const (
	PhaseBegan      Phase = iota // pointer appeared this frame
	PhaseMoved                   // pointer moved since the previous frame
	PhaseStationary              // pointer is held without movement
	PhaseEnded                   // pointer was lifted this frame
	PhaseCanceled                // platform canceled the pointer (focus loss, palm rejection)
)

var phaseNames = [...]string{"Began", "Moved", "Stationary", "Ended", "Canceled"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// held reports whether the pointer is still down.
func (p Phase) held() bool {
	return p == PhaseBegan || p == PhaseMoved || p == PhaseStationary
}

// PointerSample is one pointer observed in the current frame.
type PointerSample struct {
	ID PointerID
	// Position is the screen-space position in pixels.
	Position Vec2
	// Delta is the displacement since the previous frame. Sources derive it
	// when the platform does not report it.
	Delta Vec2
	Phase Phase
}

// MouseState is the pointer-emulation input for one frame: primary button,
// cursor position, and wheel or trackpad scroll.
type MouseState struct {
	Position     Vec2
	Pressed      bool // primary button held this frame
	JustPressed  bool // primary button went down this frame
	JustReleased bool // primary button went up this frame
	Scroll       Vec2
}

// FrameInput is everything the Recognizer needs for one frame.
type FrameInput struct {
	// Pointers are the active touches in platform report order.
	Pointers []PointerSample
	// Mouse is only read when the Recognizer runs in ModeMouse.
	Mouse MouseState
	// ScreenWidth and ScreenHeight convert positions to normalized
	// coordinates for the activation area test.
	ScreenWidth, ScreenHeight float64
	// UI answers whether a screen point is over an interactive UI element.
	// A nil UI is treated as "never over UI".
	UI UIHitTester
}

// pointer returns the sample with the given id, if reported this frame.
func (f *FrameInput) pointer(id PointerID) (PointerSample, bool) {
	for _, p := range f.Pointers {
		if p.ID == id {
			return p, true
		}
	}
	return PointerSample{}, false
}

// isOverUI evaluates the frame's UI predicate, failing open when no UI exists.
func (f *FrameInput) isOverUI(p Vec2) bool {
	if f.UI == nil {
		return false
	}
	return f.UI.IsOverUI(p)
}

// normalize converts a pixel position to [0, 1] screen space. ok is false
// when the screen size is unknown.
func (f *FrameInput) normalize(p Vec2) (n Vec2, ok bool) {
	if f.ScreenWidth <= 0 || f.ScreenHeight <= 0 {
		return Vec2{}, false
	}
	return Vec2{p.X / f.ScreenWidth, p.Y / f.ScreenHeight}, true
}

// ActivationArea is a normalized screen rectangle in which a new gesture may
// be accepted. Each component is in [0, 1] of the screen extent.
type ActivationArea struct {
	Min Vec2 `toml:"min"`
	Max Vec2 `toml:"max"`
}

// FullScreen accepts touches anywhere on screen.
var FullScreen = ActivationArea{Min: Vec2{0, 0}, Max: Vec2{1, 1}}

// Contains reports whether the normalized point p lies inside the area.
// Points on the edge are considered inside.
func (a ActivationArea) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// IsZero reports whether the area is all zero. Config treats that as unset
// and substitutes FullScreen.
func (a ActivationArea) IsZero() bool {
	return a == ActivationArea{}
}

// Valid reports whether both corners lie in [0, 1] and Min <= Max per axis.
func (a ActivationArea) Valid() bool {
	in01 := func(v float64) bool { return v >= 0 && v <= 1 }
	return in01(a.Min.X) && in01(a.Min.Y) && in01(a.Max.X) && in01(a.Max.Y) &&
		a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventTouchDown EventType = iota // a tracked touch was accepted
	EventDrag                       // the tracked touch is held or moving
	EventTouchUp                    // the tracked touch ended, was canceled, or was lost
	EventZoom                       // two-finger pinch or scroll-wheel zoom
)

var eventNames = [...]string{"TouchDown", "Drag", "TouchUp", "Zoom"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// Event is a single gesture event produced by Recognizer.Advance. Fields not
// relevant to Type are zero.
type Event struct {
	Type EventType
	// Position is the current pointer position (TouchDown, Drag, TouchUp).
	Position Vec2
	// StartPosition is where the gesture was accepted (Drag, TouchUp).
	StartPosition Vec2
	// Delta is the per-frame displacement (Drag).
	Delta Vec2
	// IsOverUI is the UI flag: current for TouchDown, frozen at acceptance
	// for Drag and TouchUp.
	IsOverUI bool
	// Pointer is the raw sample that opened the gesture (TouchDown).
	Pointer PointerSample
	// ChangeAmount is the change in pinch distance, positive when zooming in (Zoom).
	ChangeAmount float64
}

// TouchDownEvent is delivered to OnTouchDown handlers.
type TouchDownEvent struct {
	Position Vec2
	Pointer  PointerSample
	IsOverUI bool
}

// DragEvent is delivered to OnDrag handlers.
type DragEvent struct {
	Position      Vec2
	StartPosition Vec2
	Delta         Vec2
	IsStartOverUI bool
}

// TouchUpEvent is delivered to OnTouchUp handlers.
type TouchUpEvent struct {
	StartPosition Vec2
	Position      Vec2
	IsStartOverUI bool
}

// ZoomEvent is delivered to OnZoom handlers.
type ZoomEvent struct {
	ChangeAmount float64
}

// TouchDown returns the TouchDown payload of e.
func (e Event) TouchDown() TouchDownEvent {
	return TouchDownEvent{Position: e.Position, Pointer: e.Pointer, IsOverUI: e.IsOverUI}
}

// Drag returns the Drag payload of e.
func (e Event) Drag() DragEvent {
	return DragEvent{Position: e.Position, StartPosition: e.StartPosition, Delta: e.Delta, IsStartOverUI: e.IsOverUI}
}

// TouchUp returns the TouchUp payload of e.
func (e Event) TouchUp() TouchUpEvent {
	return TouchUpEvent{StartPosition: e.StartPosition, Position: e.Position, IsStartOverUI: e.IsOverUI}
}

// Zoom returns the Zoom payload of e.
func (e Event) Zoom() ZoomEvent {
	return ZoomEvent{ChangeAmount: e.ChangeAmount}
}

// Mode selects which input path the Recognizer runs. It is fixed at
// construction.
type Mode uint8

const (
	ModeTouch Mode = iota // native multi-touch input
	ModeMouse             // primary mouse button and wheel emulate a touch
)

func (m Mode) String() string {
	switch m {
	case ModeTouch:
		return "touch"
	case ModeMouse:
		return "mouse"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses "touch" or "mouse".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "touch":
		return ModeTouch, nil
	case "mouse":
		return ModeMouse, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeTouch && m != ModeMouse {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
