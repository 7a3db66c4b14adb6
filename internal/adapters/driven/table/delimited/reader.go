package delimited

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.TableReader = (*Reader)(nil)

// utf8BOM is stripped from the first header cell when present.
const utf8BOM = "\ufeff"

// Reader loads delimited tables with a header row.
type Reader struct {
	comma rune
}

// NewReader creates a reader for the given delimiter.
func NewReader(comma rune) *Reader {
	return &Reader{comma: comma}
}

// NewTSVReader creates a tab-separated reader.
func NewTSVReader() *Reader {
	return NewReader('\t')
}

// ReadTable reads the header and every data row of path.
// Short rows are padded with empty strings and surplus cells are dropped.
// An empty file yields an empty table.
func (r *Reader) ReadTable(ctx context.Context, path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	return r.read(ctx, f, filepath.Base(path))
}

func (r *Reader) read(ctx context.Context, src io.Reader, name string) (*domain.Table, error) {
	reader := csv.NewReader(src)
	reader.Comma = r.comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &domain.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w: %w", name, domain.ErrFormat, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	table := &domain.Table{Header: header}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w: %w", name, domain.ErrFormat, err)
		}
		rec := make(domain.RawRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		table.Rows = append(table.Rows, rec)
	}
	return table, nil
}
