package opts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/sheetmerge/pkg/config"
)

func TestResetDelay(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
		want  time.Duration
	}{
		{name: "zero_skips_reset", delay: 0, want: -1},
		{name: "positive_passes_through", delay: 2 * time.Second, want: 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.ProgressResetDelay = tt.delay
			o := &RootOpts{Config: cfg}

			assert.Equal(t, tt.want, o.ResetDelay(), "reset delay should match")
		})
	}
}

func TestAnimationFollowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Animation = config.Animation{Steps: 4, Interval: time.Millisecond, Ceiling: 70}
	o := &RootOpts{Config: cfg}

	got := o.Animation()
	assert.Equal(t, 4, got.Steps, "steps should match")
	assert.Equal(t, time.Millisecond, got.Interval, "interval should match")
	assert.Equal(t, 70, got.Ceiling, "ceiling should match")
}
