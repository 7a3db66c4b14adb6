package driving

import (
	"context"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// MergeRequest configures one run of the gene-centric merger.
type MergeRequest struct {
	// Gene is the target gene symbol. Empty uses the configured default.
	Gene string

	// VariantsPath is the Exomiser variants TSV.
	VariantsPath string

	// GenesPath is the Exomiser genes TSV.
	GenesPath string

	// OutDir receives the report. Empty uses the configured default.
	OutDir string

	// Workbook additionally exports the ranked variants as .xlsx.
	Workbook bool
}

// MergeService combines gene and variant rankings into one gene-centric report.
type MergeService interface {
	// Merge writes the Markdown report and, when variants matched, the
	// ranked variant table. The outcome is Empty when no variant matched.
	Merge(ctx context.Context, req MergeRequest) (domain.Outcome, error)
}
