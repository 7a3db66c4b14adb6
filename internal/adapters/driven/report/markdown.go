// Package report persists and previews Markdown reports.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
)

// Ensure FileWriter implements the interface.
var _ driven.ReportWriter = (*FileWriter)(nil)

// FileWriter writes Markdown reports to the local filesystem.
type FileWriter struct{}

// NewFileWriter creates a new report file writer.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// WriteReport writes content to path, replacing any existing file.
func (w *FileWriter) WriteReport(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
