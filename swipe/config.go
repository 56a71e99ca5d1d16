package swipe

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultMinSwipeLength is the shortest travel, in % of the surface width, that commits a swipe
	DefaultMinSwipeLength = 20.0

	// DefaultSnapPosition is how far, in % of the surface width, a committed swipe moves the surface.
	// At 100 the surface leaves the viewport completely.
	DefaultSnapPosition = 85.0

	DefaultAnimationDuration = 350 * time.Millisecond
	DefaultEasing            = "easeOutQuint"
)

// ErrInvalidConfig is returned when a tracker configuration is rejected
var ErrInvalidConfig = errors.New("invalid swipe configuration")

// knownEasings lists the easing names a host is expected to understand
var knownEasings = map[string]bool{
	"linear":       true,
	"swing":        true,
	"easeOutCubic": true,
	"easeOutQuint": true,
}

// Config is fixed for the lifetime of a tracker
type Config struct {
	MinSwipeLength    float64       `json:"minSwipeLength"`
	SnapPosition      float64       `json:"snapPosition"`
	AnimationDuration time.Duration `json:"animationDuration"`
	Easing            string        `json:"easing"`
}

// DefaultConfig returns the stock 20% / 85% configuration
func DefaultConfig() Config {
	return Config{
		MinSwipeLength:    DefaultMinSwipeLength,
		SnapPosition:      DefaultSnapPosition,
		AnimationDuration: DefaultAnimationDuration,
		Easing:            DefaultEasing,
	}
}

// Validate rejects non-positive percentages, negative durations and unknown
// easings. A minimum swipe length of 100% or more is accepted but reported as
// a warning, since no swipe can ever reach it.
func (c Config) Validate() ([]string, error) {
	if c.MinSwipeLength <= 0 {
		return nil, fmt.Errorf("%w: minSwipeLength must be > 0, got %v", ErrInvalidConfig, c.MinSwipeLength)
	}

	if c.SnapPosition <= 0 {
		return nil, fmt.Errorf("%w: snapPosition must be > 0, got %v", ErrInvalidConfig, c.SnapPosition)
	}

	if c.AnimationDuration < 0 {
		return nil, fmt.Errorf("%w: animation duration must not be negative, got %s", ErrInvalidConfig, c.AnimationDuration)
	}

	if c.Easing != "" && !knownEasings[c.Easing] {
		return nil, fmt.Errorf("%w: unknown easing '%s'", ErrInvalidConfig, c.Easing)
	}

	var warnings []string
	if c.MinSwipeLength >= 100 {
		warnings = append(warnings, fmt.Sprintf("minSwipeLength %v%% is not reachable, every gesture will snap back", c.MinSwipeLength))
	}

	return warnings, nil
}

// IsKnownEasing reports whether name is one of the supported easing functions
func IsKnownEasing(name string) bool {
	return knownEasings[name]
}
