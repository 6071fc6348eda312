package choreography

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackEval(t *testing.T) {
	track := Track{{At: 0.2, Value: 0}, {At: 0.4, Value: 1}, {At: 0.6, Value: 1}, {At: 0.8, Value: 0}}

	t.Run("clamps before first keyframe", func(t *testing.T) {
		assert.Equal(t, 0.0, track.Eval(0, Linear))
		assert.Equal(t, 0.0, track.Eval(-5, Linear))
	})

	t.Run("clamps after last keyframe", func(t *testing.T) {
		assert.Equal(t, 0.0, track.Eval(1, Linear))
		assert.Equal(t, 0.0, track.Eval(7, Linear))
	})

	t.Run("interpolates linearly", func(t *testing.T) {
		assert.InDelta(t, 0.5, track.Eval(0.3, Linear), 1e-12)
		assert.InDelta(t, 0.25, track.Eval(0.75, Linear), 1e-12)
	})

	t.Run("flat segment holds", func(t *testing.T) {
		assert.Equal(t, 1.0, track.Eval(0.5, Linear))
	})

	t.Run("easing bends the segment", func(t *testing.T) {
		assert.InDelta(t, 0.5, track.Eval(0.3, InOutCubic), 1e-12)
		assert.InDelta(t, 4*0.25*0.25*0.25, track.Eval(0.25, InOutCubic), 1e-12)
	})

	t.Run("zero width segment jumps", func(t *testing.T) {
		step := Track{{At: 0.5, Value: 0}, {At: 0.5, Value: 1}}
		assert.Equal(t, 0.0, step.Eval(0.4, Linear))
		assert.Equal(t, 1.0, step.Eval(0.6, Linear))
	})

	t.Run("empty track", func(t *testing.T) {
		assert.Equal(t, 0.0, Track{}.Eval(0.5, Linear))
	})
}

func TestEasingsHitEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		t.Run(name, func(t *testing.T) {
			ease, err := LookupEasing(name)
			assert.NoError(t, err)
			assert.InDelta(t, 0, ease(0), 1e-12)
			assert.InDelta(t, 1, ease(1), 1e-12)

			prev := ease(0)
			for i := 1; i <= 100; i++ {
				v := ease(float64(i) / 100)
				assert.GreaterOrEqual(t, v, prev-1e-12, "easing %s must not reverse", name)
				prev = v
			}
		})
	}
}

func TestLookupEasingUnknown(t *testing.T) {
	_, err := LookupEasing("bounce")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
