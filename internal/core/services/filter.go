package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
	"github.com/custodia-labs/exoreport/internal/logger"
	"github.com/custodia-labs/exoreport/internal/normalisers/exomiser"
)

// Ensure FilterService implements the interface.
var _ driving.FilterService = (*FilterService)(nil)

// filteredRow is a matching variant and its coerced score.
type filteredRow struct {
	rec   domain.RawRecord
	score domain.Score
}

// FilterService selects one gene's variants and ranks them by Exomiser variant score.
type FilterService struct {
	reader   driven.TableReader
	writer   driven.TableWriter
	reports  driven.ReportWriter
	charts   driven.ChartRenderer
	settings driving.SettingsService
}

// NewFilterService creates a new filter service.
// charts may be nil, in which case no chart image is produced.
func NewFilterService(
	reader driven.TableReader,
	writer driven.TableWriter,
	reports driven.ReportWriter,
	charts driven.ChartRenderer,
	settings driving.SettingsService,
) *FilterService {
	return &FilterService{
		reader:   reader,
		writer:   writer,
		reports:  reports,
		charts:   charts,
		settings: settings,
	}
}

// Filter writes the gene's variants as <gene>_top.csv, a bar chart of the
// top rows as <gene>_top.png and a Markdown summary as <gene>.md.
func (s *FilterService) Filter(ctx context.Context, req driving.FilterRequest) (domain.Outcome, error) {
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

	logger.Section("Filter")
	logger.Debugw("filter started", "run_id", uuid.NewString(), "input", req.InputPath, "gene", symbol)

	table, err := s.reader.ReadTable(ctx, req.InputPath)
	if err != nil {
		return domain.Outcome{}, err
	}

	hasScore := table.HasColumn(exomiser.ColVariantScore)
	rows := s.selectRows(table, matcher, hasScore)
	if len(rows) == 0 {
		return domain.Empty(fmt.Sprintf("No %s variants found in: %s", symbol, req.InputPath)), nil
	}
	logger.Debug("Matched %d of %d rows", len(rows), len(table.Rows))

	if hasScore {
		slices.SortStableFunc(rows, func(a, b filteredRow) int {
			return a.score.Compare(b.score)
		})
	}

	if err := ctx.Err(); err != nil {
		return domain.Outcome{}, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return domain.Outcome{}, fmt.Errorf("create output directory: %w", err)
	}

	columns := exomiser.PresentColumns(table, exomiser.TopVariantColumns)
	projected := projectFiltered(rows, columns)
	base := strings.ToLower(symbol)
	var paths []string

	csvPath := filepath.Join(outDir, base+"_top.csv")
	if err := s.writer.WriteTable(ctx, csvPath, columns, projected); err != nil {
		return domain.Outcome{}, fmt.Errorf("write filtered table: %w", err)
	}
	paths = append(paths, csvPath)

	if hasScore && s.charts != nil {
		pngPath := filepath.Join(outDir, base+"_top.png")
		chart := buildScoreChart(symbol, headN(rows, cfg.TopN), cfg.LabelWidth)
		if err := s.charts.RenderBarChart(ctx, pngPath, chart); err != nil {
			return domain.Outcome{}, fmt.Errorf("render chart: %w", err)
		}
		paths = append(paths, pngPath)
	}

	mdPath := filepath.Join(outDir, base+".md")
	md := renderFilterReport(symbol, columns, headN(projected, cfg.TopN), cfg.TopN)
	if err := s.reports.WriteReport(ctx, mdPath, md); err != nil {
		return domain.Outcome{}, fmt.Errorf("write report: %w", err)
	}
	paths = append(paths, mdPath)

	return domain.Written(paths...), nil
}

// selectRows keeps rows of the target gene and coerces their scores.
func (s *FilterService) selectRows(table *domain.Table, matcher *exomiser.SymbolMatcher, hasScore bool) []filteredRow {
	var rows []filteredRow
	for _, rec := range table.Rows {
		if !matcher.Match(rec.Text(exomiser.ColGeneSymbol)) {
			continue
		}
		row := filteredRow{rec: rec}
		if hasScore {
			raw := rec.Text(exomiser.ColVariantScore)
			row.score = domain.ParseScore(raw)
			if !row.score.Valid && strings.TrimSpace(raw) != "" {
				logger.Debug("Score %q is not numeric, ranking last", raw)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// projectFiltered renders rows onto columns. The score column is written
// from its coerced value so unparseable cells become empty.
func projectFiltered(rows []filteredRow, columns []string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(columns))
		for j, col := range columns {
			if col == exomiser.ColVariantScore {
				if row.score.Valid {
					cells[j] = formatNumber(row.score.Value)
				}
				continue
			}
			cells[j] = row.rec.Text(col)
		}
		out[i] = cells
	}
	return out
}

// buildScoreChart labels each bar with its HGVS notation, falling back to rank.
func buildScoreChart(symbol string, rows []filteredRow, labelWidth int) domain.BarChart {
	chart := domain.BarChart{
		Title:  fmt.Sprintf("Top %s variants", symbol),
		YLabel: "Exomiser Variant Score",
		Labels: make([]string, len(rows)),
		Values: make([]float64, len(rows)),
	}
	for i, row := range rows {
		label := row.rec.Text(exomiser.ColHGVS)
		if label == "" {
			label = row.rec.Text(exomiser.ColRank)
		}
		chart.Labels[i] = truncateRunes(label, labelWidth)
		if row.score.Valid {
			chart.Values[i] = row.score.Value
		}
	}
	return chart
}

func renderFilterReport(symbol string, columns []string, rows [][]string, topN int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s top variants\n\n", symbol)
	fmt.Fprintf(&b, "## Top %d by Exomiser variant score\n\n", topN)
	b.WriteString(markdownTable(columns, rows))
	return b.String()
}
