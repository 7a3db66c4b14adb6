package driving

import (
	"context"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// FilterRequest configures one run of the gene filter.
type FilterRequest struct {
	// InputPath is the variants TSV.
	InputPath string

	// OutDir receives the table, chart and Markdown files.
	OutDir string

	// Gene is the target gene symbol. Empty uses the configured default.
	Gene string
}

// FilterService filters a variants table to one gene and ranks it by score.
type FilterService interface {
	// Filter writes the gene's variants ordered by Exomiser variant score.
	// Zero matching rows yields an Empty outcome and writes nothing.
	Filter(ctx context.Context, req FilterRequest) (domain.Outcome, error)
}
