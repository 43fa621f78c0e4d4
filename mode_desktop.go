//go:build !android && !ios

package gesture

// DefaultMode returns the input path for this platform. Desktop builds
// emulate touch with the mouse.
func DefaultMode() Mode {
	return ModeMouse
}
