package selection

import (
	"fmt"
	"path/filepath"
	"strings"
)

// 🔀 Mode selects where the base file comes from
type Mode int

const (
	UseExistingBase Mode = iota // pick an existing workbook
	CreateNewBase               // name a workbook that does not exist yet
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case UseExistingBase:
		return "existing"
	case CreateNewBase:
		return "new"
	default:
		return "unknown"
	}
}

// NewFileExtension is appended to new base filenames that lack it
const NewFileExtension = ".xlsx"

// 📸 Snapshot is an immutable copy of the selection together with the flags
// derived from it
type Snapshot struct {
	Mode             Mode
	ExistingBasePath string
	BaseDirectory    string
	BaseFilename     string
	TargetPaths      []string

	// BaseFolder is the folder of ExistingBasePath, for display
	BaseFolder string

	HasValidBaseFile bool
	HasDirectoryPath bool
	CanMerge         bool
}

// NewBasePath returns where a new base file would be created, or "" when the
// directory or the filename is missing
func (s Snapshot) NewBasePath() string {
	if isBlank(s.BaseDirectory) || isBlank(s.BaseFilename) {
		return ""
	}
	return filepath.Join(s.BaseDirectory, WithExtension(s.BaseFilename))
}

// TargetNames renders the targets as quoted, comma separated file names
func (s Snapshot) TargetNames() string {
	quoted := make([]string, 0, len(s.TargetPaths))
	for _, p := range s.TargetPaths {
		quoted = append(quoted, fmt.Sprintf("%q", filepath.Base(p)))
	}
	return strings.Join(quoted, ", ")
}

// WithExtension appends NewFileExtension unless name already ends with it
func WithExtension(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(strings.ToLower(name), NewFileExtension) {
		return name
	}
	return name + NewFileExtension
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
