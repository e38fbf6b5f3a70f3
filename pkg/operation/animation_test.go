package operation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sheetmerge/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// progressLog is a concurrency safe ProgressFunc target
type progressLog struct {
	mu     sync.Mutex
	values []int
}

func (p *progressLog) report(percent int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = append(p.values, percent)
}

func (p *progressLog) snapshot() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.values...)
}

func TestAnimationRunsToCeiling(t *testing.T) {
	log := &progressLog{}
	anim := Animation{Steps: 5, Interval: time.Millisecond, Ceiling: 90}

	anim.Run(context.Background(), log.report)

	assert.Equal(t, []int{18, 36, 54, 72, 90}, log.snapshot(), "steps should climb evenly to the ceiling")
}

func TestDefaultAnimation(t *testing.T) {
	assert.Equal(t, 20, DefaultAnimation.Steps)
	assert.Equal(t, 200*time.Millisecond, DefaultAnimation.Interval)
	assert.Equal(t, 90, DefaultAnimation.Ceiling)
}

func TestAnimationStopsWhenCancelled(t *testing.T) {
	log := &progressLog{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	Animation{Steps: 10, Interval: time.Millisecond, Ceiling: 90}.Run(ctx, log.report)

	assert.Empty(t, log.snapshot(), "a cancelled animation writes nothing")
}

func TestAnimationWithoutSteps(t *testing.T) {
	log := &progressLog{}
	Animation{}.Run(context.Background(), log.report)
	assert.Empty(t, log.snapshot(), "zero steps writes nothing")
}

func TestWithAnimationSnapsToHundred(t *testing.T) {
	tests := []struct {
		name     string
		anim     Animation
		workTime time.Duration
	}{
		{
			name:     "work_finishes_first",
			anim:     Animation{Steps: 1000, Interval: time.Millisecond, Ceiling: 90},
			workTime: 15 * time.Millisecond,
		},
		{
			name:     "animation_finishes_first",
			anim:     Animation{Steps: 3, Interval: time.Millisecond, Ceiling: 90},
			workTime: 30 * time.Millisecond,
		},
		{
			name:     "instant_work",
			anim:     Animation{Steps: 10, Interval: 50 * time.Millisecond, Ceiling: 90},
			workTime: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &progressLog{}
			work := WithAnimation(tt.anim, func(ctx context.Context, progress ProgressFunc) error {
				time.Sleep(tt.workTime)
				return nil
			})

			require.NoError(t, work(context.Background(), log.report), "work should succeed")

			// give a misbehaving animation the chance to write late
			time.Sleep(10 * time.Millisecond)

			values := log.snapshot()
			require.NotEmpty(t, values, "at least the final value expected")
			assert.Equal(t, 100, values[len(values)-1], "progress should end at exactly 100")
			for _, v := range values[:len(values)-1] {
				assert.LessOrEqual(t, v, tt.anim.Ceiling, "animation never passes its ceiling")
			}
		})
	}
}

func TestWithAnimationFailureSkipsSnap(t *testing.T) {
	log := &progressLog{}
	work := WithAnimation(Animation{Steps: 100, Interval: time.Millisecond, Ceiling: 90}, func(ctx context.Context, progress ProgressFunc) error {
		time.Sleep(5 * time.Millisecond)
		return errors.New("sort failed")
	})

	err := work(context.Background(), log.report)
	require.Error(t, err, "work error should come back")
	assert.Contains(t, err.Error(), "sort failed", "error should be the work's")

	for _, v := range log.snapshot() {
		assert.NotEqual(t, 100, v, "failed work never reaches 100")
	}
}

func TestWithAnimationRecoversPanic(t *testing.T) {
	work := WithAnimation(Animation{Steps: 1, Interval: time.Millisecond, Ceiling: 90}, func(ctx context.Context, progress ProgressFunc) error {
		panic("engine exploded")
	})

	err := work(context.Background(), func(int) {})
	require.Error(t, err, "panic should become an error")
	assert.Contains(t, err.Error(), "engine exploded", "panic value should be kept")
}

func TestSortScenarioEndsAtHundred(t *testing.T) {
	o, rec := newTestOrchestrator(t, nil, -1)

	err := o.Run(context.Background(), Sort, WithAnimation(
		Animation{Steps: 50, Interval: time.Millisecond, Ceiling: 90},
		func(ctx context.Context, progress ProgressFunc) error {
			time.Sleep(20 * time.Millisecond)
			return nil
		},
	))
	require.NoError(t, err, "sort should be accepted")

	values := rec.ProgressValues()
	require.NotEmpty(t, values, "progress expected")
	assert.Equal(t, 0, values[0], "progress starts at zero")
	assert.Equal(t, 100, values[len(values)-1], "final displayed value is 100")

	events := rec.Events()
	lastProgress := -1
	for i, e := range events {
		if e.Type == status.SignalProgress {
			lastProgress = i
		}
	}
	completion := -1
	for i, e := range events {
		if e.Type == status.SignalCompletion {
			completion = i
		}
	}
	assert.Less(t, lastProgress, completion, "no progress is written after completion")
}
