package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
	"github.com/custodia-labs/exoreport/internal/logger"
	"github.com/custodia-labs/exoreport/internal/normalisers/exomiser"
)

// Ensure MergeService implements the interface.
var _ driving.MergeService = (*MergeService)(nil)

// MergeService joins one gene's ranking with its variants into a report.
type MergeService struct {
	reader   driven.TableReader
	writer   driven.TableWriter
	reports  driven.ReportWriter
	workbook driven.WorkbookWriter
	settings driving.SettingsService
}

// NewMergeService creates a new merge service.
// workbook may be nil when spreadsheet export is not available.
func NewMergeService(
	reader driven.TableReader,
	writer driven.TableWriter,
	reports driven.ReportWriter,
	workbook driven.WorkbookWriter,
	settings driving.SettingsService,
) *MergeService {
	return &MergeService{
		reader:   reader,
		writer:   writer,
		reports:  reports,
		workbook: workbook,
		settings: settings,
	}
}

// Merge writes <gene>_report.md and, when variants matched, <gene>_variants.tsv.
func (s *MergeService) Merge(ctx context.Context, req driving.MergeRequest) (domain.Outcome, error) {
	cfg := s.settings.Get()
	gene := req.Gene
	if gene == "" {
		gene = cfg.Gene
	}
	outDir := req.OutDir
	if outDir == "" {
		outDir = cfg.OutDir
	}
	matcher := exomiser.NewSymbolMatcher(gene)
	symbol := matcher.Target()

	logger.Section("Merge")
	logger.Debugw("merge started",
		"run_id", uuid.NewString(),
		"gene", symbol,
		"variants", req.VariantsPath,
		"genes", req.GenesPath,
	)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return domain.Outcome{}, fmt.Errorf("create output directory: %w", err)
	}

	summary, err := s.findGene(ctx, req.GenesPath, matcher)
	if err != nil {
		return domain.Outcome{}, err
	}

	rows, err := s.collectVariants(ctx, req.VariantsPath, matcher)
	if err != nil {
		return domain.Outcome{}, err
	}
	RankGeneCentricRows(rows)
	logger.Debug("Gene found: %t, variants: %d", summary != nil, len(rows))

	base := strings.ToLower(symbol)
	tsvPath := filepath.Join(outDir, base+"_variants.tsv")
	mdPath := filepath.Join(outDir, base+"_report.md")
	var written []string

	if len(rows) > 0 {
		values := make([][]string, len(rows))
		for i, r := range rows {
			values[i] = r.Values()
		}
		if err := s.writer.WriteTable(ctx, tsvPath, domain.GeneCentricColumns, values); err != nil {
			return domain.Outcome{}, fmt.Errorf("write variants table: %w", err)
		}
		written = append(written, tsvPath)

		if req.Workbook {
			xlsxPath, err := s.writeWorkbook(ctx, outDir, base, symbol, rows)
			if err != nil {
				return domain.Outcome{}, err
			}
			written = append(written, xlsxPath)
		}
	}

	md := renderMergeReport(symbol, summary, headN(rows, cfg.TopN), filepath.Base(tsvPath))
	if err := s.reports.WriteReport(ctx, mdPath, md); err != nil {
		return domain.Outcome{}, fmt.Errorf("write report: %w", err)
	}

	if len(rows) == 0 {
		return domain.Empty(fmt.Sprintf("no variants for %s", symbol), mdPath), nil
	}
	return domain.Written(append([]string{mdPath}, written...)...), nil
}

// findGene returns the first gene row matching the target, or nil.
func (s *MergeService) findGene(ctx context.Context, path string, matcher *exomiser.SymbolMatcher) (*domain.GeneSummary, error) {
	table, err := s.reader.ReadTable(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read genes table: %w", err)
	}
	for _, rec := range table.Rows {
		if matcher.Match(rec.Text(exomiser.ColGeneSymbol)) {
			summary := exomiser.NormaliseGeneSummary(rec)
			return &summary, nil
		}
	}
	return nil, nil
}

// collectVariants projects every matching variant row in scan order.
func (s *MergeService) collectVariants(ctx context.Context, path string, matcher *exomiser.SymbolMatcher) ([]domain.GeneCentricRow, error) {
	table, err := s.reader.ReadTable(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read variants table: %w", err)
	}
	var rows []domain.GeneCentricRow
	for _, rec := range table.Rows {
		if matcher.Match(rec.Text(exomiser.ColGeneSymbol)) {
			rows = append(rows, exomiser.NormaliseGeneCentric(rec))
		}
	}
	return rows, nil
}

func (s *MergeService) writeWorkbook(ctx context.Context, outDir, base, symbol string, rows []domain.GeneCentricRow) (string, error) {
	if s.workbook == nil {
		return "", fmt.Errorf("workbook export: %w", domain.ErrInvalidInput)
	}
	cells := make([][]any, len(rows))
	for i, r := range rows {
		values := r.Values()
		row := make([]any, len(values))
		for j, v := range values {
			row[j] = v
		}
		if r.PathScore.Valid {
			row[len(row)-1] = r.PathScore.Value
		}
		cells[i] = row
	}
	path := filepath.Join(outDir, base+"_variants.xlsx")
	if err := s.workbook.WriteWorkbook(ctx, path, symbol, domain.GeneCentricColumns, cells); err != nil {
		return "", fmt.Errorf("write workbook: %w", err)
	}
	return path, nil
}

func renderMergeReport(symbol string, summary *domain.GeneSummary, rows []domain.GeneCentricRow, tableName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s gene-centric report\n\n", symbol)

	if summary != nil {
		b.WriteString("## Gene summary\n")
		fmt.Fprintf(&b, "- Exomiser combined gene score: **%s**\n", summary.CombinedScore)
		fmt.Fprintf(&b, "- Phenotype score: **%s**\n", summary.PhenotypeScore)
		fmt.Fprintf(&b, "- Variant score: **%s**\n", summary.VariantScore)
		fmt.Fprintf(&b, "- OMIM linked: **%s**\n\n", summary.OMIMScore)
	} else {
		b.WriteString("_Gene not present in gene ranking table._\n\n")
	}

	b.WriteString("## Top variants (tab-separated table also saved)\n\n")
	if len(rows) == 0 {
		b.WriteString("_No variants for this gene in the Exomiser variants TSV._\n")
		return b.String()
	}
	values := make([][]string, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}
	b.WriteString(markdownTable(domain.GeneCentricColumns, values))
	fmt.Fprintf(&b, "\nFull table: `%s`\n", tableName)
	return b.String()
}
