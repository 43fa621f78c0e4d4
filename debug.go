package gesture

import (
	"fmt"
	"os"
)

// frameStats accumulates event counts while debug mode is on.
type frameStats struct {
	frames  int
	byType  [4]int
	touches int
}

// logFrame prints every event of the frame to stderr, plus a running
// summary every 60 frames.
func (s *System) logFrame(frame FrameInput, events []Event) {
	if !s.debug {
		return
	}
	s.stats.frames++
	s.stats.touches = len(frame.Pointers)

	for i := range events {
		e := &events[i]
		if int(e.Type) < len(s.stats.byType) {
			s.stats.byType[e.Type]++
		}
		_, _ = fmt.Fprintf(os.Stderr, "[gesture] %s\n", describeEvent(e))
	}

	if s.stats.frames%60 == 0 {
		id, tracking := s.recognizer.Tracking()
		_, _ = fmt.Fprintf(os.Stderr,
			"[gesture] frames: %d | pointers: %d | tracking: %v (id %d) | zooming: %v\n",
			s.stats.frames, s.stats.touches, tracking, id, s.recognizer.Zooming())
		_, _ = fmt.Fprintf(os.Stderr,
			"[gesture] down: %d | drag: %d | up: %d | zoom: %d\n",
			s.stats.byType[EventTouchDown], s.stats.byType[EventDrag],
			s.stats.byType[EventTouchUp], s.stats.byType[EventZoom])
	}
}

// describeEvent formats e for debug output.
func describeEvent(e *Event) string {
	switch e.Type {
	case EventTouchDown:
		return fmt.Sprintf("touch down id=%d at (%.1f, %.1f) overUI=%v",
			e.Pointer.ID, e.Position.X, e.Position.Y, e.IsOverUI)
	case EventDrag:
		return fmt.Sprintf("drag at (%.1f, %.1f) delta (%.1f, %.1f) from (%.1f, %.1f) startOverUI=%v",
			e.Position.X, e.Position.Y, e.Delta.X, e.Delta.Y,
			e.StartPosition.X, e.StartPosition.Y, e.IsOverUI)
	case EventTouchUp:
		return fmt.Sprintf("touch up at (%.1f, %.1f) from (%.1f, %.1f) startOverUI=%v",
			e.Position.X, e.Position.Y, e.StartPosition.X, e.StartPosition.Y, e.IsOverUI)
	case EventZoom:
		return fmt.Sprintf("zoom %+.2f", e.ChangeAmount)
	default:
		return e.Type.String()
	}
}
