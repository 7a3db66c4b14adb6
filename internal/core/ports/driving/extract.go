package driving

import (
	"context"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// ExtractService flattens an Exomiser JSON document into one typed table.
type ExtractService interface {
	// Extract reads the JSON document at jsonPath and writes the gene and
	// variant projections to outPath. Gene rows precede variant rows and
	// collection order is preserved.
	Extract(ctx context.Context, jsonPath, outPath string) (domain.Outcome, error)
}
