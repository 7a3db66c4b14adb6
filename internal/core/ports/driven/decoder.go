package driven

import (
	"context"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// DocumentDecoder parses one JSON document whose schema varies by producer.
type DocumentDecoder interface {
	// DecodeFile reads and parses the document at path.
	// The top-level value must be an object; anything else, or malformed
	// input, returns an error wrapping domain.ErrFormat.
	DecodeFile(ctx context.Context, path string) (domain.RawRecord, error)
}
