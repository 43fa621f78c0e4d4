package gesture

// --- Constants ---

const (
	defaultZoomScale = 50.0 // zoom change per unit of wheel scroll
	defaultEventCap  = 4
)

// --- Tracking state ---

// trackedPointer is the pointer currently followed for single-touch
// gestures. ok is false while idle.
type trackedPointer struct {
	id PointerID
	ok bool
}

// Recognizer turns per-frame pointer snapshots into gesture events.
//
// It follows at most one pointer at a time for TouchDown/Drag/TouchUp and
// reports two-pointer pinches as Zoom. It is not safe for concurrent use;
// Advance must be called once per frame from the game loop.
type Recognizer struct {
	area             ActivationArea
	mode             Mode
	zoomScale        float64
	revalidate       bool
	ignoreStationary bool

	tracked     trackedPointer
	startPos    Vec2
	lastPos     Vec2
	startOverUI bool
	zooming     bool

	// deferred holds pointers that began inside the activation area on a
	// frame that skipped acquisition. They stay eligible while reported.
	deferred []PointerID
	// pinched holds pointers seen in a pinch. They never start a
	// single-touch gesture.
	pinched []PointerID

	events []Event
}

// NewRecognizer creates an idle recognizer. An unset activation area means
// the whole screen and a non-positive zoom scale falls back to 50.
// NewRecognizer does not validate cfg; System does that before building one.
func NewRecognizer(cfg Config) *Recognizer {
	area := cfg.ActivationArea
	if area.IsZero() {
		area = FullScreen
	}
	scale := cfg.ZoomScale
	if scale <= 0 {
		scale = defaultZoomScale
	}
	return &Recognizer{
		area:             area,
		mode:             cfg.Mode,
		zoomScale:        scale,
		revalidate:       cfg.Revalidate,
		ignoreStationary: cfg.IgnoreStationary,
		events:           make([]Event, 0, defaultEventCap),
	}
}

// Mode reports the input path selected at construction.
func (r *Recognizer) Mode() Mode {
	return r.mode
}

// ActivationArea returns the area new gestures must start in.
func (r *Recognizer) ActivationArea() ActivationArea {
	return r.area
}

// Tracking reports the id of the pointer currently followed, if any.
func (r *Recognizer) Tracking() (PointerID, bool) {
	return r.tracked.id, r.tracked.ok
}

// Zooming reports whether a pinch is in progress.
func (r *Recognizer) Zooming() bool {
	return r.zooming
}

// Reset drops all tracking state without emitting events.
func (r *Recognizer) Reset() {
	r.tracked = trackedPointer{}
	r.startPos = Vec2{}
	r.lastPos = Vec2{}
	r.startOverUI = false
	r.zooming = false
	r.deferred = r.deferred[:0]
	r.pinched = r.pinched[:0]
}

// Advance consumes one frame of input and returns the gesture events it
// produced, in emission order. The returned slice is reused by the next call.
func (r *Recognizer) Advance(frame FrameInput) []Event {
	r.events = r.events[:0]
	switch r.mode {
	case ModeMouse:
		r.advanceMouse(&frame)
	default:
		r.advanceTouch(&frame)
	}
	return r.events
}

// --- Touch path ---

func (r *Recognizer) advanceTouch(f *FrameInput) {
	r.deferred = keepReported(r.deferred, f)
	r.pinched = keepReported(r.pinched, f)

	// Pinch runs first and excludes every single-touch event.
	if len(f.Pointers) >= 2 {
		r.observeTracked(f)
		for _, p := range f.Pointers {
			r.pinched = appendID(r.pinched, p.ID)
		}
		r.deferred = r.deferred[:0]
		r.detectPinch(f)
		return
	}

	if r.zooming {
		// One frame of hysteresis after a pinch: the remaining finger is not
		// reinterpreted as a new touch. A tracked pointer that is lost or
		// lifted on this frame still closes.
		r.zooming = false
		r.observeTracked(f)
		if !r.closeIfLost(f) && r.tracked.ok {
			if p, _ := f.pointer(r.tracked.id); !p.Phase.held() {
				r.processTracked(f, p)
			}
			return
		}
		r.deferBegan(f)
		return
	}

	if !r.tracked.ok && len(f.Pointers) == 0 {
		return
	}

	if r.closeIfLost(f) {
		r.deferBegan(f)
		return
	}

	if !r.tracked.ok {
		p, ok := r.acquire(f)
		if !ok {
			return
		}
		r.begin(f, p)
		return
	}

	p, _ := f.pointer(r.tracked.id)
	r.processTracked(f, p)
}

// observeTracked keeps the last known position current while single-touch
// emission is suppressed, so a later loss closes at the right place.
func (r *Recognizer) observeTracked(f *FrameInput) {
	if !r.tracked.ok {
		return
	}
	if p, found := f.pointer(r.tracked.id); found {
		r.lastPos = p.Position
	}
}

// closeIfLost synthesizes a TouchUp when the tracked pointer is no longer
// reported. Returns true if it did.
func (r *Recognizer) closeIfLost(f *FrameInput) bool {
	if !r.tracked.ok {
		return false
	}
	if _, found := f.pointer(r.tracked.id); found {
		return false
	}
	r.emitTouchUp(r.lastPos)
	return true
}

// acquire picks the first pointer, in report order, that is eligible and
// inside the activation area. A pointer is eligible on the frame it begins,
// or later if its Began landed on a frame that skipped acquisition.
// Pointers that began outside the area are never picked up later.
func (r *Recognizer) acquire(f *FrameInput) (PointerSample, bool) {
	for _, p := range f.Pointers {
		if containsID(r.pinched, p.ID) {
			continue
		}
		eligible := p.Phase == PhaseBegan ||
			(p.Phase.held() && containsID(r.deferred, p.ID))
		if !eligible || !r.insideArea(f, p.Position) {
			continue
		}
		r.tracked = trackedPointer{id: p.ID, ok: true}
		r.deferred = removeID(r.deferred, p.ID)
		return p, true
	}
	return PointerSample{}, false
}

// deferBegan remembers pointers beginning inside the area on a frame that
// cannot acquire them.
func (r *Recognizer) deferBegan(f *FrameInput) {
	for _, p := range f.Pointers {
		if p.Phase != PhaseBegan || containsID(r.pinched, p.ID) {
			continue
		}
		if r.insideArea(f, p.Position) {
			r.deferred = appendID(r.deferred, p.ID)
		}
	}
}

// insideArea tests a pixel position against the activation area. An unknown
// screen size accepts every position.
func (r *Recognizer) insideArea(f *FrameInput, pos Vec2) bool {
	n, ok := f.normalize(pos)
	if !ok {
		return true
	}
	return r.area.Contains(n)
}

// begin opens a gesture on p and emits TouchDown. The UI flag is captured
// here and frozen until the gesture closes.
func (r *Recognizer) begin(f *FrameInput, p PointerSample) {
	r.startPos = p.Position
	r.lastPos = p.Position
	r.startOverUI = f.isOverUI(p.Position)
	r.events = append(r.events, Event{
		Type:     EventTouchDown,
		Position: p.Position,
		Pointer:  p,
		IsOverUI: r.startOverUI,
	})
}

// processTracked classifies the tracked pointer by phase.
func (r *Recognizer) processTracked(f *FrameInput, p PointerSample) {
	switch p.Phase {
	case PhaseBegan:
		r.begin(f, p)

	case PhaseMoved, PhaseStationary:
		r.lastPos = p.Position
		if r.revalidate && !r.insideArea(f, p.Position) {
			r.emitTouchUp(p.Position)
			return
		}
		if p.Phase == PhaseStationary && r.ignoreStationary {
			return
		}
		r.emitDrag(p.Position, p.Delta)

	default:
		// Ended, Canceled, and anything unrecognized close the gesture.
		r.lastPos = p.Position
		r.emitTouchUp(p.Position)
	}
}

// --- Pointer id sets ---

func containsID(ids []PointerID, id PointerID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func appendID(ids []PointerID, id PointerID) []PointerID {
	if containsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

func removeID(ids []PointerID, id PointerID) []PointerID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// keepReported drops ids the frame no longer reports.
func keepReported(ids []PointerID, f *FrameInput) []PointerID {
	out := ids[:0]
	for _, v := range ids {
		if _, found := f.pointer(v); found {
			out = append(out, v)
		}
	}
	return out
}

// --- Pinch detection ---

// detectPinch reports the change in distance between the first two pointers
// since the previous frame.
func (r *Recognizer) detectPinch(f *FrameInput) {
	a, b := f.Pointers[0], f.Pointers[1]

	prev := a.Position.Sub(a.Delta).Sub(b.Position.Sub(b.Delta)).Len()
	cur := a.Position.Sub(b.Position).Len()

	r.zooming = true
	r.events = append(r.events, Event{Type: EventZoom, ChangeAmount: cur - prev})
}

// --- Emission ---

func (r *Recognizer) emitDrag(pos, delta Vec2) {
	r.events = append(r.events, Event{
		Type:          EventDrag,
		Position:      pos,
		StartPosition: r.startPos,
		Delta:         delta,
		IsOverUI:      r.startOverUI,
	})
}

// emitTouchUp closes the open gesture and clears tracking.
func (r *Recognizer) emitTouchUp(pos Vec2) {
	r.events = append(r.events, Event{
		Type:          EventTouchUp,
		Position:      pos,
		StartPosition: r.startPos,
		IsOverUI:      r.startOverUI,
	})
	r.tracked = trackedPointer{}
}
