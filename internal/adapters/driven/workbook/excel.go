// Package workbook exports report tables as Excel workbooks.
package workbook

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.WorkbookWriter = (*Writer)(nil)

// maxSheetName is Excel's sheet name length limit.
const maxSheetName = 31

// defaultSheet is the sheet excelize creates with every new file.
const defaultSheet = "Sheet1"

// Writer writes single-sheet .xlsx workbooks.
type Writer struct{}

// NewWriter creates a new workbook writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteWorkbook writes header and rows into a sheet named after sheet.
func (w *Writer) WriteWorkbook(ctx context.Context, path, sheet string, header []string, rows [][]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := SanitizeSheetName(sheet)
	if name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("name sheet %q: %w", name, err)
		}
	}

	if err := setRow(f, name, 1, toAny(header)); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// SanitizeSheetName replaces characters Excel forbids in sheet names
// and truncates to 31 characters.
func SanitizeSheetName(name string) string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		default:
			return r
		}
	}, strings.TrimSpace(name))
	s = strings.Trim(s, "'")
	if s == "" {
		return defaultSheet
	}
	if r := []rune(s); len(r) > maxSheetName {
		s = string(r[:maxSheetName])
	}
	return s
}
