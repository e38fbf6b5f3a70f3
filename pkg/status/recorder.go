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

import "sync"

// 🏷️ SignalType identifies which Sink method produced an Event
type SignalType int

const (
	SignalLock SignalType = iota
	SignalProgress
	SignalOngoing
	SignalCompletion
)

// String returns a string representation of SignalType
func (t SignalType) String() string {
	switch t {
	case SignalLock:
		return "lock"
	case SignalProgress:
		return "progress"
	case SignalOngoing:
		return "ongoing"
	case SignalCompletion:
		return "completion"
	default:
		return "unknown"
	}
}

// 📼 Event is one recorded signal
type Event struct {
	Type    SignalType
	Locked  bool
	Percent int
	Text    string
	IsError bool
}

// 📼 Recorder is a Sink that keeps every signal it receives
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) LockUI(locked bool) {
	r.record(Event{Type: SignalLock, Locked: locked})
}

func (r *Recorder) Progress(percent int) {
	r.record(Event{Type: SignalProgress, Percent: percent})
}

func (r *Recorder) OngoingStatus(text string) {
	r.record(Event{Type: SignalOngoing, Text: text})
}

func (r *Recorder) CompletionStatus(text string, isError bool) {
	r.record(Event{Type: SignalCompletion, Text: text, IsError: isError})
}

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Of returns the recorded events of one type
func (r *Recorder) Of(t SignalType) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// ProgressValues returns every recorded percentage in order
func (r *Recorder) ProgressValues() []int {
	var out []int
	for _, e := range r.Of(SignalProgress) {
		out = append(out, e.Percent)
	}
	return out
}

// LastProgress returns the most recent percentage, or -1 if none was recorded
func (r *Recorder) LastProgress() int {
	values := r.ProgressValues()
	if len(values) == 0 {
		return -1
	}
	return values[len(values)-1]
}

// Reset forgets everything recorded so far
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
