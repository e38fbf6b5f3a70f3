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

// Package session ties one selection state, one orchestrator and an engine
// together into the commands a front end invokes.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/sheetmerge/pkg/engine"
	"github.com/walteh/sheetmerge/pkg/operation"
	"github.com/walteh/sheetmerge/pkg/selection"
	"github.com/walteh/sheetmerge/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrNotReady is returned when the selection does not allow the command
var ErrNotReady = errors.Base("selection not ready")

// 🔧 Options contains configuration for a session
type Options struct {
	Engine engine.Engine
	// Signals is called with the orchestrator's emit lock held; a sink may
	// read Running but must go through status.Dispatch to start commands
	Signals status.Sink
	// Poster delivers selection notifications; defaults to status.Immediate
	Poster status.Poster
	// Animation drives progress for sort; the zero value means
	// operation.DefaultAnimation
	Animation  operation.Animation
	ResetDelay time.Duration
	Logger     *zerolog.Logger
}

// 🪟 Session is one window's worth of state
type Session struct {
	engine    engine.Engine
	selection *selection.State
	runner    *operation.Orchestrator
	animation operation.Animation
	logger    zerolog.Logger

	mu sync.Mutex
	// placeholders holds created workbooks that still carry their
	// placeholder sheet
	placeholders map[string]bool
}

// 🏭 New creates a session with an empty selection
func New(opts Options) (*Session, error) {
	if opts.Engine == nil {
		return nil, errors.Errorf("engine is required")
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	sel := selection.New(opts.Poster)
	runner, err := operation.NewOrchestrator(operation.Options{
		Signals:    opts.Signals,
		Targets:    sel,
		ResetDelay: opts.ResetDelay,
		Logger:     &logger,
	})
	if err != nil {
		return nil, errors.Errorf("creating orchestrator: %w", err)
	}

	anim := opts.Animation
	if anim == (operation.Animation{}) {
		anim = operation.DefaultAnimation
	}

	return &Session{
		engine:       opts.Engine,
		selection:    sel,
		runner:       runner,
		animation:    anim,
		logger:       logger.With().Str("component", "session").Logger(),
		placeholders: map[string]bool{},
	}, nil
}

// Selection returns the state the front end edits
func (s *Session) Selection() *selection.State {
	return s.selection
}

// Running reports the operation in flight, if any
func (s *Session) Running() (operation.Kind, bool) {
	return s.runner.Running()
}

// Merge starts merging the selected targets into the base. In CreateNewBase
// mode the base is created first and becomes the selected existing base.
func (s *Session) Merge(ctx context.Context) error {
	if snap := s.selection.Snapshot(); !snap.CanMerge {
		return errors.Errorf("%w: merge needs a base and at least one target", ErrNotReady)
	}
	return s.runner.Start(s.withLogger(ctx), operation.Merge, s.merge)
}

func (s *Session) merge(ctx context.Context, progress operation.ProgressFunc) error {
	snap := s.selection.Snapshot()
	base := snap.ExistingBasePath

	if snap.Mode == selection.CreateNewBase {
		path, err := s.create(ctx, snap.BaseDirectory, snap.BaseFilename)
		if err != nil {
			return err
		}
		base = path
	}

	if err := s.engine.Merge(ctx, base, snap.TargetPaths, engine.ProgressFunc(progress)); err != nil {
		return errors.Errorf("merging into %s: %w", base, err)
	}

	return s.removePlaceholder(ctx, base)
}

// create makes the workbook, selects it and remembers that it still carries
// a placeholder sheet. A merge that fails afterwards leaves it pending so the
// next successful merge into the same file removes it.
func (s *Session) create(ctx context.Context, directory, filename string) (string, error) {
	path, err := s.engine.CreateNew(ctx, directory, filename)
	if err != nil {
		return "", errors.Errorf("creating base: %w", err)
	}
	s.mu.Lock()
	s.placeholders[path] = true
	s.mu.Unlock()
	s.selectCreated(path)
	return path, nil
}

func (s *Session) removePlaceholder(ctx context.Context, base string) error {
	s.mu.Lock()
	pending := s.placeholders[base]
	s.mu.Unlock()
	if !pending {
		return nil
	}

	if err := s.engine.RemovePlaceholderSheets(ctx, base); err != nil {
		return errors.Errorf("cleaning %s: %w", base, err)
	}

	s.mu.Lock()
	delete(s.placeholders, base)
	s.mu.Unlock()
	return nil
}

// Sort starts sorting the sheets of the selected base
func (s *Session) Sort(ctx context.Context) error {
	snap := s.selection.Snapshot()
	if !snap.HasValidBaseFile {
		return errors.Errorf("%w: sort needs an existing base", ErrNotReady)
	}
	base := snap.ExistingBasePath
	return s.runner.Start(s.withLogger(ctx), operation.Sort, operation.WithAnimation(s.animation,
		func(ctx context.Context, _ operation.ProgressFunc) error {
			if err := s.engine.SortSheets(ctx, base); err != nil {
				return errors.Errorf("sorting %s: %w", base, err)
			}
			return nil
		}))
}

// CreateNew starts creating the pending base file and selects it as the
// existing base once it exists
func (s *Session) CreateNew(ctx context.Context) error {
	snap := s.selection.Snapshot()
	if snap.Mode != selection.CreateNewBase || snap.NewBasePath() == "" {
		return errors.Errorf("%w: create needs a directory and a filename", ErrNotReady)
	}
	return s.runner.Start(s.withLogger(ctx), operation.CreateNewFile, func(ctx context.Context, _ operation.ProgressFunc) error {
		_, err := s.create(ctx, snap.BaseDirectory, snap.BaseFilename)
		return err
	})
}

// Reset clears the selection
func (s *Session) Reset() {
	s.selection.Reset()
}

// Wait blocks until the running operation, if any, has finished
func (s *Session) Wait() {
	s.runner.Wait()
}

// Settle waits for the running operation and then for the progress reset
// that follows it
func (s *Session) Settle() {
	s.runner.Wait()
	s.runner.WaitReset()
}

// Close waits for running work and cancels the pending progress reset
func (s *Session) Close() {
	s.runner.Wait()
	s.runner.Close()
}

func (s *Session) selectCreated(path string) {
	s.logger.Debug().Str("path", path).Msg("selecting created base")
	s.selection.SelectExisting(path)
}

func (s *Session) withLogger(ctx context.Context) context.Context {
	if zerolog.Ctx(ctx).GetLevel() != zerolog.Disabled {
		return ctx
	}
	return s.logger.WithContext(ctx)
}
