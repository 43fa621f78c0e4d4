package gesture

// injectPointerBase is the first pointer id used for synthetic touches, well
// above anything a platform reports.
const injectPointerBase PointerID = 1 << 20

// InjectFrame queues a raw frame. Queued frames are consumed one per Update
// and replace the source's input for that frame.
func (s *System) InjectFrame(frame FrameInput) {
	s.injectQueue = append(s.injectQueue, frame)
}

// InjectTap queues a press and a release at the same screen position.
// Consumes two frames.
func (s *System) InjectTap(x, y float64) {
	s.InjectDrag(x, y, x, y, 2)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release). In ModeMouse the frames
// carry button state instead of touches.
func (s *System) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	id := s.nextInjectID()
	last := Vec2{fromX, fromY}
	s.injectPointer(id, last, Vec2{}, PhaseBegan)

	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		pos := Vec2{fromX + (toX-fromX)*t, fromY + (toY-fromY)*t}
		s.injectPointer(id, pos, pos.Sub(last), PhaseMoved)
		last = pos
	}
	to := Vec2{toX, toY}
	s.injectPointer(id, to, to.Sub(last), PhaseEnded)
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy)
// whose finger distance goes from fromDist to toDist over frames frames.
// In ModeMouse it queues a single scroll frame of equivalent zoom instead.
func (s *System) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if s.recognizer.Mode() == ModeMouse {
		s.InjectScroll((toDist - fromDist) / s.recognizer.zoomScale)
		return
	}
	if frames < 2 {
		frames = 2
	}
	a, b := s.nextInjectID(), s.nextInjectID()
	prevDist := fromDist
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		dist := fromDist + (toDist-fromDist)*t
		phase := PhaseMoved
		switch i {
		case 0:
			phase = PhaseBegan
		case frames - 1:
			phase = PhaseEnded
		}
		half := (dist - prevDist) / 2
		s.InjectFrame(FrameInput{Pointers: []PointerSample{
			{ID: a, Position: Vec2{cx - dist/2, cy}, Delta: Vec2{-half, 0}, Phase: phase},
			{ID: b, Position: Vec2{cx + dist/2, cy}, Delta: Vec2{half, 0}, Phase: phase},
		}})
		prevDist = dist
	}
}

// InjectScroll queues one frame of mouse wheel scroll. Only a ModeMouse
// recognizer reacts to it.
func (s *System) InjectScroll(dy float64) {
	s.InjectFrame(FrameInput{Mouse: MouseState{Scroll: Vec2{0, dy}}})
}

// Pending returns the number of injected frames not yet consumed.
func (s *System) Pending() int {
	return len(s.injectQueue)
}

// injectPointer queues one frame for a single synthetic pointer, as a touch
// or as mouse button state depending on the recognizer mode.
func (s *System) injectPointer(id PointerID, pos, delta Vec2, phase Phase) {
	if s.recognizer.Mode() == ModeMouse {
		s.InjectFrame(FrameInput{Mouse: MouseState{
			Position:     pos,
			Pressed:      phase != PhaseEnded,
			JustPressed:  phase == PhaseBegan,
			JustReleased: phase == PhaseEnded,
		}})
		return
	}
	s.InjectFrame(FrameInput{Pointers: []PointerSample{
		{ID: id, Position: pos, Delta: delta, Phase: phase},
	}})
}

func (s *System) nextInjectID() PointerID {
	s.injectSeq++
	return injectPointerBase + PointerID(s.injectSeq)
}

// popInjected removes and returns the oldest injected frame.
func (s *System) popInjected() (FrameInput, bool) {
	if len(s.injectQueue) == 0 {
		return FrameInput{}, false
	}
	frame := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue[len(s.injectQueue)-1] = FrameInput{}
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return frame, true
}
