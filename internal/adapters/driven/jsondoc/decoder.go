// Package jsondoc decodes opaque JSON documents into raw records.
package jsondoc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.DocumentDecoder = (*Decoder)(nil)

// Decoder parses JSON documents, keeping numbers as json.Number so
// their source text survives into output tables.
type Decoder struct{}

// New creates a new JSON decoder.
func New() *Decoder {
	return &Decoder{}
}

// DecodeFile parses the JSON object stored at path.
func (d *Decoder) DecodeFile(ctx context.Context, path string) (domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	return d.Decode(bufio.NewReader(f), filepath.Base(path))
}

// Decode parses one JSON object from r. Trailing data after the object
// is rejected.
func (d *Decoder) Decode(r io.Reader, name string) (domain.RawRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", name, domain.ErrFormat, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w: trailing data after document", name, domain.ErrFormat)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode %s: %w: top-level value is %T, want object", name, domain.ErrFormat, v)
	}
	return domain.RawRecord(obj), nil
}
