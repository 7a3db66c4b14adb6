package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
	"github.com/custodia-labs/exoreport/internal/logger"
	"github.com/custodia-labs/exoreport/internal/normalisers/exomiser"
)

// Ensure ExtractService implements the interface.
var _ driving.ExtractService = (*ExtractService)(nil)

// ExtractService flattens Exomiser JSON results into a typed table.
type ExtractService struct {
	decoder driven.DocumentDecoder
	writer  driven.TableWriter
}

// NewExtractService creates a new extract service.
func NewExtractService(decoder driven.DocumentDecoder, writer driven.TableWriter) *ExtractService {
	return &ExtractService{
		decoder: decoder,
		writer:  writer,
	}
}

// Extract decodes jsonPath and writes gene rows followed by variant rows to outPath.
func (s *ExtractService) Extract(ctx context.Context, jsonPath, outPath string) (domain.Outcome, error) {
	logger.Section("Extract")
	logger.Debugw("extract started", "run_id", uuid.NewString(), "input", jsonPath, "output", outPath)

	doc, err := s.decoder.DecodeFile(ctx, jsonPath)
	if err != nil {
		return domain.Outcome{}, err
	}

	genes, skipped := exomiser.Collection(doc, exomiser.GeneCollectionKeys)
	if skipped > 0 {
		logger.Warn("Skipped %d gene entries that are not objects", skipped)
	}
	variants, skipped := exomiser.Collection(doc, exomiser.VariantCollectionKeys)
	if skipped > 0 {
		logger.Warn("Skipped %d variant entries that are not objects", skipped)
	}
	logger.Debug("Genes: %d, Variants: %d", len(genes), len(variants))

	rows := make([][]string, 0, len(genes)+len(variants))
	for _, g := range genes {
		rows = append(rows, exomiser.NormaliseGene(g).Row())
	}
	for _, v := range variants {
		rows = append(rows, exomiser.NormaliseVariant(v).Row())
	}

	if err := s.writer.WriteTable(ctx, outPath, domain.ExtractColumns, rows); err != nil {
		return domain.Outcome{}, fmt.Errorf("write extracted table: %w", err)
	}
	return domain.Written(outPath), nil
}
