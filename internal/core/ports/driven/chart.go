package driven

import (
	"context"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// ChartRenderer renders charts to image files.
// The byte format is chosen by the implementation.
type ChartRenderer interface {
	// RenderBarChart draws chart and saves it at path.
	RenderBarChart(ctx context.Context, path string, chart domain.BarChart) error
}
