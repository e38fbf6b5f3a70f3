// Package engine defines the workbook operations the orchestrator drives
package engine

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// ErrFormat marks input that is not a readable workbook
var ErrFormat = errors.Base("malformed workbook")

// 📈 ProgressFunc receives real merge progress as a percentage
type ProgressFunc func(percent int)

// 📊 Engine performs the actual workbook work
type Engine interface {
	// Merge appends the sheets of every target to base, in target order
	Merge(ctx context.Context, basePath string, targetPaths []string, onProgress ProgressFunc) error
	// SortSheets reorders the sheets of base
	SortSheets(ctx context.Context, basePath string) error
	// CreateNew creates an empty workbook and returns its path
	CreateNew(ctx context.Context, directory, filename string) (string, error)
	// RemovePlaceholderSheets drops the sheet CreateNew had to add; it is a
	// no-op when there is none
	RemovePlaceholderSheets(ctx context.Context, basePath string) error
}
