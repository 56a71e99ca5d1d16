package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEase_Endpoints(t *testing.T) {
	for _, name := range []string{"linear", "swing", "easeOutCubic", "easeOutQuint", "unknown"} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0.0, Ease(name, 0))
			assert.Equal(t, 1.0, Ease(name, 1))
			assert.Equal(t, 0.0, Ease(name, -1))
			assert.Equal(t, 1.0, Ease(name, 2))
		})
	}
}

func TestEase_Shapes(t *testing.T) {
	assert.InDelta(t, 0.5, Ease("linear", 0.5), 1e-9)
	assert.InDelta(t, 0.5, Ease("swing", 0.5), 1e-9)
	assert.InDelta(t, 0.875, Ease("easeOutCubic", 0.5), 1e-9)
	assert.InDelta(t, 0.96875, Ease("easeOutQuint", 0.5), 1e-9)
	assert.InDelta(t, 0.3, Ease("bounce", 0.3), 1e-9, "unknown easings are linear")
}

func TestEase_Monotonic(t *testing.T) {
	for name := range easings {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := Ease(name, float64(i)/100)
			assert.GreaterOrEqual(t, v, prev, "%s must not move backwards", name)
			prev = v
		}
	}
}
