// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/sheetmerge/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// DefaultResetDelay is how long the final progress stays visible
const DefaultResetDelay = 3 * time.Second

// 📈 ProgressFunc reports a percentage for the running operation
type ProgressFunc func(percent int)

// 🏃 Work is the unit an operation runs. It must not return before the
// underlying engine call has finished.
type Work func(ctx context.Context, progress ProgressFunc) error

// 🧹 TargetClearer is cleared after a successful merge
type TargetClearer interface {
	ClearTargets()
}

// 🔧 Options contains configuration for the orchestrator
type Options struct {
	// Signals receives every UI signal; wrap it with status.Dispatch to
	// deliver on a foreground context. An unwrapped sink may call Running
	// but must not call Start.
	Signals status.Sink
	// Targets is cleared after a successful merge; optional
	Targets TargetClearer
	// ResetDelay defaults to DefaultResetDelay; negative disables the reset
	ResetDelay time.Duration
	// Logger defaults to the global zerolog logger
	Logger *zerolog.Logger
}

// 🎮 Orchestrator is the single flight guard for one session.
//
// It is either idle or running exactly one Kind. Signals are emitted in the
// order of the state changes they describe, so a new run can never announce
// itself before the previous run has announced its end. Emission happens
// outside the guard: a sink may call Running, but it must not call Start
// synchronously. Wrap the sink with status.Dispatch over a status.Loop to
// start operations from signal handlers.
type Orchestrator struct {
	signals    status.Sink
	targets    TargetClearer
	resetDelay time.Duration
	logger     zerolog.Logger

	mu         sync.Mutex
	emitMu     sync.Mutex
	running    bool
	current    Kind
	generation uint64
	resetTimer *time.Timer

	wg     sync.WaitGroup
	resets sync.WaitGroup
}

// 🏭 NewOrchestrator creates an idle orchestrator
func NewOrchestrator(opts Options) (*Orchestrator, error) {
	if opts.Signals == nil {
		return nil, errors.Errorf("signals sink is required")
	}
	delay := opts.ResetDelay
	if delay == 0 {
		delay = DefaultResetDelay
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Orchestrator{
		signals:    opts.Signals,
		targets:    opts.Targets,
		resetDelay: delay,
		logger:     logger.With().Str("component", "orchestrator").Logger(),
		current:    None,
	}, nil
}

// Running returns the kind in flight, if any
func (o *Orchestrator) Running() (Kind, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current, o.running
}

// Start accepts or rejects kind. On acceptance work runs on a background
// goroutine and Start returns nil; work failures are reported through the
// sink only. A rejection emits one error completion and returns
// ErrAlreadyRunning. An unknown kind returns ErrInvalidKind without touching
// state or emitting anything.
//
// Cancelling ctx does not abort work once accepted.
func (o *Orchestrator) Start(ctx context.Context, kind Kind, work Work) error {
	rec, err := Lookup(kind)
	if err != nil {
		return errors.Errorf("starting operation: %w", err)
	}
	if work == nil {
		return errors.Errorf("starting %s: work is required", kind)
	}

	o.mu.Lock()

	if o.running {
		current := o.current
		running := MustLookup(current)
		o.unlockAndEmit(func() {
			o.signals.CompletionStatus(RejectionMessage(rec, running), true)
		})
		o.logger.Warn().
			Stringer("requested", kind).
			Stringer("running", current).
			Msg("operation rejected")
		return errors.Errorf("%w: cannot start %s while %s runs", ErrAlreadyRunning, kind, current)
	}

	o.running = true
	o.current = kind
	o.generation++
	gen := o.generation
	o.stopResetLocked()
	o.wg.Add(1)

	o.unlockAndEmit(func() {
		o.signals.LockUI(true)
		o.signals.OngoingStatus(rec.OngoingMessage)
		o.signals.Progress(status.MinProgress)
	})
	o.logger.Info().Stringer("kind", kind).Msg("operation started")

	go o.execute(context.WithoutCancel(ctx), rec, work, gen)

	return nil
}

// Run starts kind and waits for it to finish
func (o *Orchestrator) Run(ctx context.Context, kind Kind, work Work) error {
	if err := o.Start(ctx, kind, work); err != nil {
		return err
	}
	o.Wait()
	return nil
}

// Wait blocks until no accepted work is left running
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// WaitReset blocks until a scheduled progress reset has been emitted or
// cancelled. Call it after Wait.
func (o *Orchestrator) WaitReset() {
	o.resets.Wait()
}

// Close cancels a pending progress reset
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopResetLocked()
}

func (o *Orchestrator) stopResetLocked() {
	if o.resetTimer == nil {
		return
	}
	if o.resetTimer.Stop() {
		o.resets.Done()
	}
	o.resetTimer = nil
}

func (o *Orchestrator) execute(ctx context.Context, rec Record, work Work, gen uint64) {
	defer o.wg.Done()

	start := time.Now()
	err := invoke(ctx, work, o.progressFor(gen))

	o.mu.Lock()
	if err != nil {
		o.logger.Error().Err(err).Stringer("kind", rec.Kind).Dur("elapsed", time.Since(start)).Msg("operation failed")
		o.unlockAndEmit(func() {
			o.signals.CompletionStatus(FailureMessage(rec, err), true)
		})
	} else {
		o.logger.Info().Stringer("kind", rec.Kind).Dur("elapsed", time.Since(start)).Msg("operation completed")
		o.unlockAndEmit(func() {
			o.signals.CompletionStatus(rec.CompletedMessage, false)
		})
		if rec.Kind == Merge && o.targets != nil {
			o.targets.ClearTargets()
		}
	}

	o.finish(gen)
}

func (o *Orchestrator) finish(gen uint64) {
	o.mu.Lock()

	o.running = false
	o.current = None

	if o.resetDelay >= 0 {
		o.resets.Add(1)
		o.resetTimer = time.AfterFunc(o.resetDelay, func() {
			defer o.resets.Done()
			o.mu.Lock()
			// a newer run owns the progress bar now
			if o.generation != gen || o.running {
				o.mu.Unlock()
				return
			}
			o.unlockAndEmit(func() {
				o.signals.Progress(status.MinProgress)
			})
		})
	}

	o.unlockAndEmit(func() {
		o.signals.LockUI(false)
		o.signals.OngoingStatus(StandbyMessage)
	})
}

// progressFor returns the progress reporter of run gen. Reports arriving
// after that run has finished are dropped.
func (o *Orchestrator) progressFor(gen uint64) ProgressFunc {
	return func(percent int) {
		o.mu.Lock()
		if !o.running || o.generation != gen {
			o.mu.Unlock()
			return
		}
		o.unlockAndEmit(func() {
			o.signals.Progress(status.ClampProgress(percent))
		})
	}
}

// unlockAndEmit hands over from mu to emitMu and runs emit. Emissions come
// out in the order mu was acquired, and sinks may call Running while they
// run. Callers hold mu; it is released on return.
func (o *Orchestrator) unlockAndEmit(emit func()) {
	o.emitMu.Lock()
	o.mu.Unlock()
	defer o.emitMu.Unlock()
	emit()
}

// invoke runs work and turns a panic into an error
func invoke(ctx context.Context, work Work, progress ProgressFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return work(ctx, progress)
}
