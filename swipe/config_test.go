package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantErr  bool
		warnings int
	}{
		{"defaults", func(c *Config) {}, false, 0},
		{"zero min swipe length", func(c *Config) { c.MinSwipeLength = 0 }, true, 0},
		{"negative min swipe length", func(c *Config) { c.MinSwipeLength = -5 }, true, 0},
		{"zero snap position", func(c *Config) { c.SnapPosition = 0 }, true, 0},
		{"negative duration", func(c *Config) { c.AnimationDuration = -time.Second }, true, 0},
		{"unknown easing", func(c *Config) { c.Easing = "bounce" }, true, 0},
		{"empty easing allowed", func(c *Config) { c.Easing = "" }, false, 0},
		{"unreachable min swipe length", func(c *Config) { c.MinSwipeLength = 150 }, false, 1},
		{"full page snap", func(c *Config) { c.SnapPosition = 100 }, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			warnings, err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}

			require.NoError(t, err)
			assert.Len(t, warnings, tt.warnings)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 20.0, cfg.MinSwipeLength)
	assert.Equal(t, 85.0, cfg.SnapPosition)
	assert.Equal(t, 350*time.Millisecond, cfg.AnimationDuration)
	assert.True(t, IsKnownEasing(cfg.Easing))
}
