package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sheetmerge/pkg/engine"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

// writeWorkbook creates a workbook whose sheets hold a single A1 value equal
// to the sheet name
func writeWorkbook(t *testing.T, path string, sheets ...string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for i, name := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(first, name), "renaming first sheet")
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err, "creating sheet")
		}
		require.NoError(t, f.SetCellValue(name, "A1", name), "writing cell")
	}
	require.NoError(t, f.SaveAs(path), "saving workbook")
}

func sheetsOf(t *testing.T, path string) []string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err, "opening workbook")
	defer f.Close()
	return f.GetSheetList()
}

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func TestCreateNew(t *testing.T) {
	dir := t.TempDir()
	e := New()

	path, err := e.CreateNew(testContext(), dir, "report")
	require.NoError(t, err, "CreateNew should succeed")
	assert.Equal(t, filepath.Join(dir, "report.xlsx"), path, "extension should be added")
	assert.Equal(t, []string{PlaceholderSheet}, sheetsOf(t, path), "new workbook holds the placeholder")

	_, err = e.CreateNew(testContext(), dir, "report.xlsx")
	require.Error(t, err, "existing file must not be overwritten")

	_, err = e.CreateNew(testContext(), "", "report")
	require.Error(t, err, "directory is required")
}

func TestMergeReportsProgressAndCopiesSheets(t *testing.T) {
	dir := t.TempDir()
	e := New()

	base := filepath.Join(dir, "base.xlsx")
	writeWorkbook(t, base, "Summary")
	one := filepath.Join(dir, "one.xlsx")
	writeWorkbook(t, one, "Data")
	two := filepath.Join(dir, "two.xlsx")
	writeWorkbook(t, two, "Data", "Notes")

	var progress []int
	err := e.Merge(testContext(), base, []string{one, two, one}, func(p int) {
		progress = append(progress, p)
	})
	require.NoError(t, err, "Merge should succeed")

	assert.Equal(t, []int{33, 66, 100}, progress, "one progress report per target")
	assert.Equal(t, []string{"Summary", "one Data", "two Data", "two Notes", "one Data (2)"}, sheetsOf(t, base), "sheets appended in target order")

	f, err := excelize.OpenFile(base)
	require.NoError(t, err, "opening merged workbook")
	defer f.Close()
	v, err := f.GetCellValue("two Notes", "A1")
	require.NoError(t, err, "reading merged cell")
	assert.Equal(t, "Notes", v, "cell values are copied")
}

func TestMergeMalformedTarget(t *testing.T) {
	dir := t.TempDir()
	e := New()

	base := filepath.Join(dir, "base.xlsx")
	writeWorkbook(t, base, "Summary")
	bad := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0o644), "writing bad file")

	err := e.Merge(testContext(), base, []string{bad}, nil)
	require.Error(t, err, "malformed target should fail")
	assert.True(t, errors.Is(err, engine.ErrFormat), "error should be ErrFormat")

	err = e.Merge(testContext(), filepath.Join(dir, "missing.xlsx"), nil, nil)
	require.Error(t, err, "missing base should fail")
	assert.False(t, errors.Is(err, engine.ErrFormat), "missing file is an I/O error")
}

func TestSortSheets(t *testing.T) {
	dir := t.TempDir()
	e := New()

	base := filepath.Join(dir, "base.xlsx")
	writeWorkbook(t, base, "beta", "Alpha", "gamma")

	require.NoError(t, e.SortSheets(testContext(), base), "SortSheets should succeed")
	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, sheetsOf(t, base), "sheets sorted case insensitively")
}

func TestRemovePlaceholderSheets(t *testing.T) {
	dir := t.TempDir()
	e := New()

	base, err := e.CreateNew(testContext(), dir, "merged")
	require.NoError(t, err, "CreateNew should succeed")

	require.NoError(t, e.RemovePlaceholderSheets(testContext(), base), "only sheet stays")
	assert.Equal(t, []string{PlaceholderSheet}, sheetsOf(t, base), "a lone placeholder is kept")

	target := filepath.Join(dir, "t.xlsx")
	writeWorkbook(t, target, "Data")
	require.NoError(t, e.Merge(testContext(), base, []string{target}, nil), "Merge should succeed")

	require.NoError(t, e.RemovePlaceholderSheets(testContext(), base), "removal should succeed")
	assert.Equal(t, []string{"t Data"}, sheetsOf(t, base), "placeholder removed")

	require.NoError(t, e.RemovePlaceholderSheets(testContext(), base), "removal is idempotent")
	assert.Equal(t, []string{"t Data"}, sheetsOf(t, base), "nothing else removed")
}

func TestUniqueSheetName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Data")
	require.NoError(t, err, "creating sheet")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "free_name", in: "Other", want: "Other"},
		{name: "clash_case_insensitive", in: "data", want: "data (2)"},
		{name: "invalid_characters", in: "a/b:c", want: "a_b_c"},
		{name: "too_long", in: "abcdefghijklmnopqrstuvwxyz0123456789", want: "abcdefghijklmnopqrstuvwxyz01234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uniqueSheetName(f, tt.in), "sheet name should match")
		})
	}
}
