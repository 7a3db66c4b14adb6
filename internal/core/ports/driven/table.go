package driven

import (
	"context"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// TableReader loads a delimited table into memory.
type TableReader interface {
	// ReadTable reads the header row and all data rows.
	// All cells are returned as text. Malformed input returns an
	// error wrapping domain.ErrFormat.
	ReadTable(ctx context.Context, path string) (*domain.Table, error)
}

// TableWriter persists a delimited table.
type TableWriter interface {
	// WriteTable writes header followed by rows to path, replacing any
	// existing file.
	WriteTable(ctx context.Context, path string, header []string, rows [][]string) error
}
