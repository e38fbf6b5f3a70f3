// Package excel implements engine.Engine on top of excelize. Sheets are
// copied by value; styles and formulas are not carried over.
package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/sheetmerge/pkg/engine"
	"github.com/walteh/sheetmerge/pkg/selection"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

const (
	// PlaceholderSheet is the sheet a new workbook carries until something
	// is merged into it
	PlaceholderSheet = "__placeholder__"

	// maxSheetName is the Excel limit on sheet name length
	maxSheetName = 31
)

var _ engine.Engine = (*Engine)(nil)

// 📗 Engine is the excelize backed engine
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Merge copies every sheet of every target into base
func (e *Engine) Merge(ctx context.Context, basePath string, targetPaths []string, onProgress engine.ProgressFunc) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("base", basePath).Int("targets", len(targetPaths)).Msg("merging workbooks")

	base, err := open(basePath)
	if err != nil {
		return err
	}
	defer base.Close()

	for i, target := range targetPaths {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("merging %s: %w", target, err)
		}
		if err := mergeOne(ctx, base, target); err != nil {
			return err
		}
		if onProgress != nil {
			onProgress((i + 1) * 100 / len(targetPaths))
		}
	}

	if err := base.Save(); err != nil {
		return errors.Errorf("saving %s: %w", basePath, err)
	}
	return nil
}

func mergeOne(ctx context.Context, base *excelize.File, targetPath string) error {
	src, err := open(targetPath)
	if err != nil {
		return err
	}
	defer src.Close()

	stem := strings.TrimSuffix(filepath.Base(targetPath), filepath.Ext(targetPath))
	for _, sheet := range src.GetSheetList() {
		name := uniqueSheetName(base, stem+" "+sheet)
		zerolog.Ctx(ctx).Debug().Str("from", targetPath).Str("sheet", sheet).Str("as", name).Msg("copying sheet")
		if err := copySheet(src, sheet, base, name); err != nil {
			return errors.Errorf("copying %s from %s: %w", sheet, targetPath, err)
		}
	}
	return nil
}

// SortSheets orders the sheets of base by name, case insensitively
func (e *Engine) SortSheets(ctx context.Context, basePath string) error {
	zerolog.Ctx(ctx).Debug().Str("base", basePath).Msg("sorting sheets")

	src, err := open(basePath)
	if err != nil {
		return err
	}
	defer src.Close()

	names := src.GetSheetList()
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})

	dst := excelize.NewFile()
	defer dst.Close()

	const scratch = "__sorting__"
	if err := dst.SetSheetName(dst.GetSheetName(0), scratch); err != nil {
		return errors.Errorf("preparing sorted workbook: %w", err)
	}
	for _, name := range sorted {
		if err := copySheet(src, name, dst, name); err != nil {
			return errors.Errorf("copying %s: %w", name, err)
		}
	}
	if err := dst.DeleteSheet(scratch); err != nil {
		return errors.Errorf("removing scratch sheet: %w", err)
	}
	dst.SetActiveSheet(0)

	if err := dst.SaveAs(basePath); err != nil {
		return errors.Errorf("saving %s: %w", basePath, err)
	}
	return nil
}

// CreateNew creates directory/filename with a single placeholder sheet.
// The .xlsx extension is added when missing.
func (e *Engine) CreateNew(ctx context.Context, directory, filename string) (string, error) {
	if strings.TrimSpace(directory) == "" || strings.TrimSpace(filename) == "" {
		return "", errors.Errorf("directory and filename are required")
	}
	path := filepath.Join(directory, selection.WithExtension(filename))
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("creating workbook")

	if _, err := os.Stat(path); err == nil {
		return "", errors.Errorf("creating %s: file already exists", path)
	}
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", errors.Errorf("creating directory %s: %w", directory, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), PlaceholderSheet); err != nil {
		return "", errors.Errorf("naming placeholder sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", errors.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}

// RemovePlaceholderSheets deletes the placeholder sheet when the workbook has
// other sheets to keep
func (e *Engine) RemovePlaceholderSheets(ctx context.Context, basePath string) error {
	f, err := open(basePath)
	if err != nil {
		return err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(PlaceholderSheet)
	if err != nil {
		return errors.Errorf("looking up placeholder: %w", err)
	}
	if idx < 0 || len(f.GetSheetList()) <= 1 {
		return nil
	}

	zerolog.Ctx(ctx).Debug().Str("base", basePath).Msg("removing placeholder sheet")
	if err := f.DeleteSheet(PlaceholderSheet); err != nil {
		return errors.Errorf("removing placeholder: %w", err)
	}
	f.SetActiveSheet(0)
	if err := f.Save(); err != nil {
		return errors.Errorf("saving %s: %w", basePath, err)
	}
	return nil
}

func open(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Errorf("opening %s: %w", path, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %v", engine.ErrFormat, path, err)
	}
	return f, nil
}

func copySheet(src *excelize.File, from string, dst *excelize.File, to string) error {
	rows, err := src.GetRows(from)
	if err != nil {
		return errors.Errorf("reading rows: %w", err)
	}
	if _, err := dst.NewSheet(to); err != nil {
		return errors.Errorf("creating sheet: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Errorf("addressing row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := dst.SetSheetRow(to, cell, &values); err != nil {
			return errors.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return nil
}

// uniqueSheetName trims name to the Excel limit and adds a counter until it
// does not clash with an existing sheet
func uniqueSheetName(f *excelize.File, name string) string {
	name = sanitizeSheetName(name)
	existing := map[string]bool{}
	for _, s := range f.GetSheetList() {
		existing[strings.ToLower(s)] = true
	}
	candidate := truncate(name, maxSheetName)
	for n := 2; existing[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncate(name, maxSheetName-len(suffix)) + suffix
	}
	return candidate
}

func sanitizeSheetName(name string) string {
	return strings.NewReplacer(
		":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
	).Replace(strings.TrimSpace(name))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
