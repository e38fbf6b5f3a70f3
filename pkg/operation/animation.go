package operation

import (
	"context"
	"sync"
	"time"

	"github.com/walteh/sheetmerge/pkg/status"
	"golang.org/x/sync/errgroup"
)

// 🎞️ Animation fakes progress for work that reports none: Steps writes of
// Ceiling*i/Steps, one per Interval
type Animation struct {
	Steps    int
	Interval time.Duration
	Ceiling  int
}

// DefaultAnimation climbs to 90% over four seconds
var DefaultAnimation = Animation{
	Steps:    20,
	Interval: 200 * time.Millisecond,
	Ceiling:  90,
}

// Run writes the animation to progress until it completes or ctx is done.
// Cancellation is a normal exit and is never reported as an error.
func (a Animation) Run(ctx context.Context, progress ProgressFunc) {
	if a.Steps <= 0 {
		return
	}
	timer := time.NewTimer(a.Interval)
	defer timer.Stop()

	for i := 1; i <= a.Steps; i++ {
		if ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return
		}
		progress(a.Ceiling * i / a.Steps)
		timer.Reset(a.Interval)
	}
}

// gate forwards progress until it is closed; once close returns no further
// value gets through
type gate struct {
	mu       sync.Mutex
	closed   bool
	progress ProgressFunc
}

func (g *gate) emit(percent int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.progress(percent)
}

func (g *gate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

// 🎬 WithAnimation runs anim alongside work. When work returns, the animation
// is cancelled and, on success, progress snaps to 100.
func WithAnimation(anim Animation, work Work) Work {
	return func(ctx context.Context, progress ProgressFunc) error {
		animCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		g := &gate{progress: progress}
		stop := func() {
			g.close()
			cancel()
		}

		var group errgroup.Group
		group.Go(func() error {
			anim.Run(animCtx, g.emit)
			return nil
		})
		group.Go(func() error {
			defer stop()
			return invoke(ctx, work, progress)
		})

		if err := group.Wait(); err != nil {
			return err
		}
		progress(status.MaxProgress)
		return nil
	}
}
