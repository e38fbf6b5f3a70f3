// Package selection holds the user's base and target workbook choices and
// derives which commands are currently possible.
package selection

import (
	"path/filepath"
	"sync"

	"github.com/walteh/sheetmerge/pkg/status"
)

// 📣 Listener is called with a fresh snapshot after every mutation
type Listener func(Snapshot)

// 🗂️ State is the selection for one session. Every mutation recomputes the
// derived flags and notifies listeners exactly once, in mutation order.
//
// Listeners run through the configured Poster; with an inline poster they
// must not mutate the State they are observing.
type State struct {
	mu sync.Mutex

	mode             Mode
	existingBasePath string
	baseDirectory    string
	baseFilename     string
	targetPaths      []string

	// notifyMu keeps notifications in the same order as mutations without
	// holding mu while listeners run
	notifyMu  sync.Mutex
	poster    status.Poster
	listeners map[int]Listener
	nextID    int
}

// 🏭 New creates an empty selection in UseExistingBase mode. A nil poster
// delivers notifications inline.
func New(poster status.Poster) *State {
	if poster == nil {
		poster = status.Immediate{}
	}
	return &State{
		poster:    poster,
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers fn and returns a function that removes it
func (s *State) Subscribe(fn Listener) func() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		delete(s.listeners, id)
	}
}

// Snapshot returns the current selection and derived flags
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Mode returns the current selection mode
func (s *State) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches mode. Switching always clears the base path, directory and
// filename; targets are kept.
func (s *State) SetMode(mode Mode) {
	s.mutate(func() {
		s.mode = mode
		s.existingBasePath = ""
		s.baseDirectory = ""
		s.baseFilename = ""
	})
}

// SetExistingBase selects an existing base workbook. The pending directory
// is left alone; Snapshot.BaseFolder follows the chosen file.
func (s *State) SetExistingBase(path string) {
	s.mutate(func() {
		s.existingBasePath = path
	})
}

// SelectExisting switches to UseExistingBase and selects path in a single
// mutation. Pending directory and filename are cleared, targets are kept.
func (s *State) SelectExisting(path string) {
	s.mutate(func() {
		s.mode = UseExistingBase
		s.existingBasePath = path
		s.baseDirectory = ""
		s.baseFilename = ""
	})
}

// SetBaseDirectory sets the directory a new base file will be created in
func (s *State) SetBaseDirectory(dir string) {
	s.mutate(func() {
		s.baseDirectory = dir
	})
}

// SetBaseFilename sets the name of the base file to create
func (s *State) SetBaseFilename(name string) {
	s.mutate(func() {
		s.baseFilename = name
	})
}

// ReplaceTargets clears the targets and assigns paths in the given order.
// Duplicates are kept.
func (s *State) ReplaceTargets(paths []string) {
	s.mutate(func() {
		s.targetPaths = append(make([]string, 0, len(paths)), paths...)
	})
}

// ClearTargets removes every target
func (s *State) ClearTargets() {
	s.mutate(func() {
		s.targetPaths = nil
	})
}

// Reset clears every field except the mode
func (s *State) Reset() {
	s.mutate(func() {
		s.existingBasePath = ""
		s.baseDirectory = ""
		s.baseFilename = ""
		s.targetPaths = nil
	})
}

// mutate applies fn and delivers one notification carrying the resulting
// snapshot
func (s *State) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, l := range s.sortedListeners() {
		l := l
		s.poster.Post(func() { l(snap) })
	}
}

// sortedListeners returns listeners in subscription order; notifyMu is held
func (s *State) sortedListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		Mode:             s.mode,
		ExistingBasePath: s.existingBasePath,
		BaseDirectory:    s.baseDirectory,
		BaseFilename:     s.baseFilename,
		TargetPaths:      append([]string(nil), s.targetPaths...),
	}
	snap.HasValidBaseFile = !isBlank(snap.ExistingBasePath)
	if snap.HasValidBaseFile {
		snap.BaseFolder = filepath.Dir(snap.ExistingBasePath)
	}
	snap.HasDirectoryPath = !isBlank(snap.BaseDirectory)
	snap.CanMerge = len(snap.TargetPaths) > 0 &&
		(snap.HasValidBaseFile || (!isBlank(snap.BaseFilename) && snap.HasDirectoryPath))
	return snap
}
