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

package status

import (
	"context"
	"sync"
)

// 📈 Progress bounds
const (
	MinProgress = 0
	MaxProgress = 100
)

// 📡 Sink receives the signals emitted by the orchestrator
type Sink interface {
	// LockUI disables (true) or re-enables (false) user commands
	LockUI(locked bool)
	// Progress reports a percentage in [MinProgress, MaxProgress]
	Progress(percent int)
	// OngoingStatus reports what is currently happening
	OngoingStatus(text string)
	// CompletionStatus reports how the last request ended
	CompletionStatus(text string, isError bool)
}

// 📮 Poster runs callbacks on the foreground context
type Poster interface {
	Post(fn func())
}

// ClampProgress bounds percent to [MinProgress, MaxProgress]
func ClampProgress(percent int) int {
	if percent < MinProgress {
		return MinProgress
	}
	if percent > MaxProgress {
		return MaxProgress
	}
	return percent
}

// ⚡ Immediate runs posted callbacks inline on the caller's goroutine.
// Useful when the caller already is the foreground context, and in tests.
type Immediate struct{}

func (Immediate) Post(fn func()) {
	fn()
}

// 🔁 Loop is the foreground queue. Callbacks run one at a time, in the order
// they were posted, on the goroutine that calls Run. Post never blocks.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	wake   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// 🏭 NewLoop creates an empty loop
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post enqueues fn; it is dropped once the loop has been closed
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run drains the queue until ctx is done or Close is called. Callbacks that
// were already queued when Close is called still run.
func (l *Loop) Run(ctx context.Context) {
	for {
		l.drain()
		select {
		case <-l.wake:
		case <-ctx.Done():
			return
		case <-l.done:
			l.drain()
			return
		}
	}
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()
		fn()
	}
}

// Close stops the loop; it is safe to call more than once
func (l *Loop) Close() {
	l.once.Do(func() {
		l.mu.Lock()
		l.closed = true
		l.mu.Unlock()
		close(l.done)
	})
}

// dispatcher forwards every signal through a Poster
type dispatcher struct {
	poster Poster
	sink   Sink
}

// 🔀 Dispatch returns a Sink that marshals each call onto poster before
// handing it to sink
func Dispatch(poster Poster, sink Sink) Sink {
	return &dispatcher{poster: poster, sink: sink}
}

func (d *dispatcher) LockUI(locked bool) {
	d.poster.Post(func() { d.sink.LockUI(locked) })
}

func (d *dispatcher) Progress(percent int) {
	d.poster.Post(func() { d.sink.Progress(percent) })
}

func (d *dispatcher) OngoingStatus(text string) {
	d.poster.Post(func() { d.sink.OngoingStatus(text) })
}

func (d *dispatcher) CompletionStatus(text string, isError bool) {
	d.poster.Post(func() { d.sink.CompletionStatus(text, isError) })
}

// 🧩 Multi fans each signal out to every sink, in order
type Multi []Sink

func (m Multi) LockUI(locked bool) {
	for _, s := range m {
		s.LockUI(locked)
	}
}

func (m Multi) Progress(percent int) {
	for _, s := range m {
		s.Progress(percent)
	}
}

func (m Multi) OngoingStatus(text string) {
	for _, s := range m {
		s.OngoingStatus(text)
	}
}

func (m Multi) CompletionStatus(text string, isError bool) {
	for _, s := range m {
		s.CompletionStatus(text, isError)
	}
}
