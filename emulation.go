package gesture

// advanceMouse runs the pointer-emulation path: the primary button stands in
// for a single touch and the scroll wheel stands in for a pinch.
//
// It shares the tracked pointer, start position, and start-over-UI flag with
// the touch path, using MousePointerID as the tracked id.
func (r *Recognizer) advanceMouse(f *FrameInput) {
	m := f.Mouse
	pos := m.Position

	switch {
	case m.JustPressed:
		if r.tracked.ok {
			// Missed the previous release. The closure goes out alone and
			// this press is dropped.
			r.emitTouchUp(r.lastPos)
			break
		}
		if !r.insideArea(f, pos) {
			break
		}
		r.tracked = trackedPointer{id: MousePointerID, ok: true}
		r.startPos = pos
		r.lastPos = pos
		r.startOverUI = f.isOverUI(pos)
		r.events = append(r.events, Event{
			Type:     EventTouchDown,
			Position: pos,
			Pointer:  PointerSample{ID: MousePointerID, Position: pos, Phase: PhaseBegan},
			IsOverUI: r.startOverUI,
		})

	case m.JustReleased:
		if !r.tracked.ok {
			break
		}
		r.lastPos = pos
		r.emitTouchUp(pos)

	case m.Pressed:
		if !r.tracked.ok {
			break
		}
		delta := pos.Sub(r.lastPos)
		r.lastPos = pos
		if r.revalidate && !r.insideArea(f, pos) {
			r.emitTouchUp(pos)
			break
		}
		if delta == (Vec2{}) && r.ignoreStationary {
			break
		}
		r.emitDrag(pos, delta)

	default:
		if r.tracked.ok {
			// Button is up but no release edge was seen (focus change).
			r.emitTouchUp(r.lastPos)
		}
	}

	if len(r.events) == 0 && m.Scroll.Y != 0 {
		r.events = append(r.events, Event{Type: EventZoom, ChangeAmount: m.Scroll.Y * r.zoomScale})
	}
}
