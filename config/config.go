package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mobile-next/pageswipe/surface"
	"github.com/mobile-next/pageswipe/swipe"
	"gopkg.in/ini.v1"
)

const (
	DefaultListen      = "localhost:12100"
	DefaultMaxSurfaces = 256

	dirName  = ".pageswipe"
	fileName = "config.ini"
)

// Config is the on-disk configuration
type Config struct {
	MinSwipeLength float64
	SnapPosition   float64

	AnimationDuration time.Duration
	Easing            string
	FrameInterval     time.Duration

	Listen      string
	CORS        bool
	MaxSurfaces int
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		MinSwipeLength:    swipe.DefaultMinSwipeLength,
		SnapPosition:      swipe.DefaultSnapPosition,
		AnimationDuration: swipe.DefaultAnimationDuration,
		Easing:            swipe.DefaultEasing,
		FrameInterval:     surface.DefaultFrameInterval,
		Listen:            DefaultListen,
		MaxSurfaces:       DefaultMaxSurfaces,
	}
}

// DefaultPath returns $HOME/.pageswipe/config.ini
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	sw := file.Section("swipe")
	if sw.HasKey("min_swipe_length") {
		if cfg.MinSwipeLength, err = sw.Key("min_swipe_length").Float64(); err != nil {
			return nil, fmt.Errorf("invalid swipe.min_swipe_length: %w", err)
		}
	}
	if sw.HasKey("snap_position") {
		if cfg.SnapPosition, err = sw.Key("snap_position").Float64(); err != nil {
			return nil, fmt.Errorf("invalid swipe.snap_position: %w", err)
		}
	}

	anim := file.Section("animation")
	if anim.HasKey("duration") {
		if cfg.AnimationDuration, err = anim.Key("duration").Duration(); err != nil {
			return nil, fmt.Errorf("invalid animation.duration: %w", err)
		}
	}
	if anim.HasKey("frame_interval") {
		if cfg.FrameInterval, err = anim.Key("frame_interval").Duration(); err != nil {
			return nil, fmt.Errorf("invalid animation.frame_interval: %w", err)
		}
	}
	cfg.Easing = anim.Key("easing").MustString(swipe.DefaultEasing)

	srv := file.Section("server")
	cfg.Listen = srv.Key("listen").MustString(DefaultListen)
	cfg.CORS = srv.Key("cors").MustBool(false)
	if srv.HasKey("max_surfaces") {
		if cfg.MaxSurfaces, err = srv.Key("max_surfaces").Int(); err != nil {
			return nil, fmt.Errorf("invalid server.max_surfaces: %w", err)
		}
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed
func (c *Config) Save(path string) error {
	file := ini.Empty()

	sw := file.Section("swipe")
	sw.Key("min_swipe_length").SetValue(fmt.Sprintf("%g", c.MinSwipeLength))
	sw.Key("snap_position").SetValue(fmt.Sprintf("%g", c.SnapPosition))

	anim := file.Section("animation")
	anim.Key("duration").SetValue(c.AnimationDuration.String())
	anim.Key("easing").SetValue(c.Easing)
	anim.Key("frame_interval").SetValue(c.FrameInterval.String())

	srv := file.Section("server")
	srv.Key("listen").SetValue(c.Listen)
	srv.Key("cors").SetValue(fmt.Sprintf("%t", c.CORS))
	srv.Key("max_surfaces").SetValue(fmt.Sprintf("%d", c.MaxSurfaces))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save config %s: %w", path, err)
	}

	return nil
}

// Swipe returns the tracker configuration
func (c *Config) Swipe() swipe.Config {
	return swipe.Config{
		MinSwipeLength:    c.MinSwipeLength,
		SnapPosition:      c.SnapPosition,
		AnimationDuration: c.AnimationDuration,
		Easing:            c.Easing,
	}
}

// Validate checks the tracker settings and the server settings
func (c *Config) Validate() ([]string, error) {
	warnings, err := c.Swipe().Validate()
	if err != nil {
		return nil, err
	}

	if c.FrameInterval <= 0 {
		return nil, fmt.Errorf("animation.frame_interval must be > 0, got %s", c.FrameInterval)
	}

	if c.MaxSurfaces <= 0 {
		return nil, fmt.Errorf("server.max_surfaces must be > 0, got %d", c.MaxSurfaces)
	}

	return warnings, nil
}
