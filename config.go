package gesture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidActivationArea is returned when an activation area corner is
	// outside [0, 1] or Min exceeds Max.
	ErrInvalidActivationArea = errors.New("gesture: invalid activation area")
	// ErrInvalidZoomScale is returned for a negative zoom scale.
	ErrInvalidZoomScale = errors.New("gesture: invalid zoom scale")
	// ErrUnknownMode is returned for a mode other than "touch" or "mouse".
	ErrUnknownMode = errors.New("gesture: unknown mode")
)

// Config configures a Recognizer and the System around it.
//
// A config file looks like:
//
//	mode = "touch"
//	zoom_scale = 50.0
//
//	[activation_area]
//	min = { x = 0.5, y = 0.0 }
//	max = { x = 1.0, y = 1.0 }
type Config struct {
	// ActivationArea is where new gestures may start. The zero value, which
	// includes an explicit {0,0}-{0,0}, means the whole screen; a degenerate
	// area cannot be expressed.
	ActivationArea ActivationArea `toml:"activation_area"`
	// Mode selects native touch or mouse emulation.
	Mode Mode `toml:"mode"`
	// ZoomScale multiplies the wheel scroll in mouse mode. Zero means 50.
	ZoomScale float64 `toml:"zoom_scale"`
	// Revalidate closes a tracked gesture as soon as it leaves the
	// activation area. Off by default: the area is only checked at acceptance.
	Revalidate bool `toml:"revalidate"`
	// IgnoreStationary suppresses Drag events for held, unmoving pointers.
	IgnoreStationary bool `toml:"ignore_stationary"`
	// Debug enables per-frame logging to stderr.
	Debug bool `toml:"debug"`
}

// DefaultConfig returns the full-screen configuration for the current platform.
func DefaultConfig() Config {
	return Config{
		ActivationArea: FullScreen,
		Mode:           DefaultMode(),
		ZoomScale:      defaultZoomScale,
	}
}

// Validate reports the first problem with c, if any.
func (c Config) Validate() error {
	if !c.ActivationArea.IsZero() && !c.ActivationArea.Valid() {
		return fmt.Errorf("%w: min=%v max=%v", ErrInvalidActivationArea,
			c.ActivationArea.Min, c.ActivationArea.Max)
	}
	if c.ZoomScale < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidZoomScale, c.ZoomScale)
	}
	if c.Mode != ModeTouch && c.Mode != ModeMouse {
		return fmt.Errorf("%w: %d", ErrUnknownMode, uint8(c.Mode))
	}
	return nil
}

// DecodeConfig parses TOML text on top of DefaultConfig and validates the result.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return DecodeConfig(string(data))
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
