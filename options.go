package panzoom

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// MinimapOptions controls the overview widget.
type MinimapOptions struct {
	// Show enables the minimap widget.
	Show bool `toml:"show"`
	// Size is the widget size as a fraction of the container (0–1).
	Size float64 `toml:"size"`
}

// Options configures an Engine. The zero value is not usable; start from
// DefaultOptions and override fields, or load a file with LoadOptions.
// All durations and throttle intervals are in seconds.
type Options struct {
	// MaxZoom and MinZoom bound the scale after any controller runs.
	MaxZoom float64 `toml:"max_zoom"`
	MinZoom float64 `toml:"min_zoom"`

	// PanSpeed and ZoomSpeed are gesture sensitivity multipliers.
	PanSpeed  float64 `toml:"pan_speed"`
	ZoomSpeed float64 `toml:"zoom_speed"`

	// ClampPosition keeps the committed position within the range derived
	// from the initial fit rectangle (see ClampPosition).
	ClampPosition bool `toml:"clamp_position"`

	// ZoomAnimationDuration is the tween length for animated zoom resets
	// and zoom-to-element calls.
	ZoomAnimationDuration float64 `toml:"zoom_animation_duration"`

	// ZoomPanTransitionDelay is the cooldown after a zoom gesture during
	// which ambiguous wheel events are discarded instead of panning.
	ZoomPanTransitionDelay float64 `toml:"zoom_pan_transition_delay"`

	// Throttle intervals for the observable outputs. Zero disables
	// throttling for that channel (every change notifies immediately).
	PositionThrottle    float64 `toml:"position_throttle"`
	ZoomThrottle        float64 `toml:"zoom_throttle"`
	BoundsThrottle      float64 `toml:"bounds_throttle"`
	VisibleRectThrottle float64 `toml:"visible_rect_throttle"`

	// MinimapThrottle limits how often the minimap snapshot is
	// re-rasterized.
	MinimapThrottle float64 `toml:"minimap_throttle"`

	// BoundsWidth and BoundsHeight override the measured content bounds
	// when non-zero (manual bounds).
	BoundsWidth  float64 `toml:"bounds_width"`
	BoundsHeight float64 `toml:"bounds_height"`

	Minimap MinimapOptions `toml:"minimap"`
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		MaxZoom:                10,
		MinZoom:                0.1,
		PanSpeed:               1,
		ZoomSpeed:              25,
		ClampPosition:          true,
		ZoomAnimationDuration:  0.3,
		ZoomPanTransitionDelay: 0.1,
		PositionThrottle:       0.05,
		ZoomThrottle:           0.05,
		BoundsThrottle:         0.05,
		VisibleRectThrottle:    0.05,
		MinimapThrottle:        0.25,
		Minimap:                MinimapOptions{Show: false, Size: 0.2},
	}
}

// LoadOptions reads a TOML options file and applies it on top of
// DefaultOptions. Fields absent from the file keep their defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read options %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options %s: %w", path, err)
	}
	return opts, nil
}
