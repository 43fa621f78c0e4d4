//go:build android || ios

package gesture

// DefaultMode returns the input path for this platform.
func DefaultMode() Mode {
	return ModeTouch
}
