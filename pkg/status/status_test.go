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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampProgress(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "below_range", in: -5, want: 0},
		{name: "lower_bound", in: 0, want: 0},
		{name: "inside_range", in: 42, want: 42},
		{name: "upper_bound", in: 100, want: 100},
		{name: "above_range", in: 250, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampProgress(tt.in), "clamped value should match")
		})
	}
}

func TestDispatchMarshalsOntoLoop(t *testing.T) {
	loop := NewLoop()
	rec := NewRecorder()
	sink := Dispatch(loop, rec)

	var callers sync.WaitGroup
	callers.Add(1)
	go func() {
		defer callers.Done()
		sink.LockUI(true)
		sink.OngoingStatus("working")
		sink.Progress(50)
		sink.CompletionStatus("done", false)
	}()
	callers.Wait()

	assert.Empty(t, rec.Events(), "nothing should be delivered before the loop runs")

	loop.Close()
	loop.Run(context.Background())

	require.Equal(t, []Event{
		{Type: SignalLock, Locked: true},
		{Type: SignalOngoing, Text: "working"},
		{Type: SignalProgress, Percent: 50},
		{Type: SignalCompletion, Text: "done"},
	}, rec.Events(), "events should arrive in post order")
}

func TestLoopRunsOnSingleGoroutine(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	var mu sync.Mutex
	var order []int
	var posters sync.WaitGroup
	for i := 0; i < 10; i++ {
		posters.Add(1)
		loop.Post(func() {
			defer posters.Done()
			mu.Lock()
			order = append(order, len(order))
			mu.Unlock()
		})
	}
	posters.Wait()
	loop.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after Close")
	}

	assert.Len(t, order, 10, "every posted callback should run")
}

func TestLoopDropsAfterClose(t *testing.T) {
	loop := NewLoop()
	loop.Close()
	loop.Close()

	ran := false
	loop.Post(func() { ran = true })
	loop.Run(context.Background())

	assert.False(t, ran, "callbacks posted after Close should be dropped")
}

func TestImmediateRunsInline(t *testing.T) {
	rec := NewRecorder()
	sink := Dispatch(Immediate{}, rec)

	sink.Progress(10)

	assert.Equal(t, []int{10}, rec.ProgressValues(), "progress should be delivered inline")
	assert.Equal(t, 10, rec.LastProgress(), "last progress should match")
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	sink := Multi{a, b}

	sink.CompletionStatus("oops", true)

	for _, rec := range []*Recorder{a, b} {
		require.Len(t, rec.Of(SignalCompletion), 1, "each sink should see the completion")
		assert.True(t, rec.Of(SignalCompletion)[0].IsError, "error flag should be kept")
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	assert.Equal(t, -1, rec.LastProgress(), "empty recorder has no progress")

	rec.Progress(3)
	rec.Reset()

	assert.Empty(t, rec.Events(), "reset should forget events")
}
