package delimited

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.TableWriter = (*Writer)(nil)

// Writer persists delimited tables with a header row.
type Writer struct {
	comma rune
}

// NewWriter creates a writer for the given delimiter.
func NewWriter(comma rune) *Writer {
	return &Writer{comma: comma}
}

// NewTSVWriter creates a tab-separated writer.
func NewTSVWriter() *Writer {
	return NewWriter('\t')
}

// NewCSVWriter creates a comma-separated writer.
func NewCSVWriter() *Writer {
	return NewWriter(',')
}

// WriteTable writes header and rows to path, replacing any existing file.
func (w *Writer) WriteTable(ctx context.Context, path string, header []string, rows [][]string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()

	cw := csv.NewWriter(f)
	cw.Comma = w.comma
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", filepath.Base(path), err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
