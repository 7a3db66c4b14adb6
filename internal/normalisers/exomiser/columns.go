package exomiser

import "github.com/custodia-labs/exoreport/internal/core/domain"

// Exomiser TSV column names.
const (
	ColRank               = "RANK"
	ColGeneSymbol         = "GENE_SYMBOL"
	ColContig             = "CONTIG"
	ColStart              = "START"
	ColRef                = "REF"
	ColAlt                = "ALT"
	ColGenotype           = "GENOTYPE"
	ColFunctionalClass    = "FUNCTIONAL_CLASS"
	ColHGVS               = "HGVS"
	ColMaxFreqSource      = "MAX_FREQ_SOURCE"
	ColMaxFreq            = "MAX_FREQ"
	ColACMGClassification = "EXOMISER_ACMG_CLASSIFICATION"
	ColACMGEvidence       = "EXOMISER_ACMG_EVIDENCE"
	ColVariantScore       = "EXOMISER_VARIANT_SCORE"
	ColMaxPath            = "MAX_PATH"
	ColMaxPathSource      = "MAX_PATH_SOURCE"
	ColGeneVariantScore   = "EXOMISER_GENE_VARIANT_SCORE"
	ColGeneCombinedScore  = "EXOMISER_GENE_COMBINED_SCORE"
	ColGenePhenotypeScore = "EXOMISER_GENE_PHENO_SCORE"
	ColOMIMScore          = "OMIM_SCORE"
)

// PathScoreColumns are probed, in this order, for a variant's path score.
// The order has not been confirmed against a published schema.
var PathScoreColumns = []string{ColVariantScore, ColMaxPath, ColGeneVariantScore}

// TopVariantColumns is the allow-list projected by the gene filter.
// Only columns present in the input are emitted.
var TopVariantColumns = []string{
	ColRank,
	ColGeneSymbol,
	ColContig,
	ColStart,
	ColRef,
	ColAlt,
	ColHGVS,
	ColVariantScore,
	ColACMGClassification,
	ColMaxPath,
	ColMaxPathSource,
}

// PresentColumns returns the columns of allow that exist in table, in allow order.
func PresentColumns(table *domain.Table, allow []string) []string {
	cols := make([]string, 0, len(allow))
	for _, c := range allow {
		if table.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// PathScore returns the largest of the path score columns that parse as
// finite numbers. Unparseable cells are ignored.
func PathScore(rec domain.RawRecord) domain.Score {
	scores := make([]domain.Score, 0, len(PathScoreColumns))
	for _, col := range PathScoreColumns {
		scores = append(scores, domain.ParseScore(rec.Text(col)))
	}
	return domain.MaxScore(scores...)
}

// NormaliseGeneCentric projects a variants TSV row onto the report shape.
func NormaliseGeneCentric(rec domain.RawRecord) domain.GeneCentricRow {
	return domain.GeneCentricRow{
		Rank:      rec.Text(ColRank),
		Contig:    rec.Text(ColContig),
		Pos:       rec.Text(ColStart),
		Ref:       rec.Text(ColRef),
		Alt:       rec.Text(ColAlt),
		Genotype:  rec.Text(ColGenotype),
		Func:      rec.Text(ColFunctionalClass),
		HGVS:      rec.Text(ColHGVS),
		AFMaxSrc:  rec.Text(ColMaxFreqSource),
		AFMax:     rec.Text(ColMaxFreq),
		ACMGClass: rec.Text(ColACMGClassification),
		ACMGEvid:  rec.Text(ColACMGEvidence),
		PathScore: PathScore(rec),
	}
}

// NormaliseGeneSummary projects a genes TSV row onto the summary shape.
func NormaliseGeneSummary(rec domain.RawRecord) domain.GeneSummary {
	return domain.GeneSummary{
		CombinedScore:  rec.Text(ColGeneCombinedScore),
		PhenotypeScore: rec.Text(ColGenePhenotypeScore),
		VariantScore:   rec.Text(ColGeneVariantScore),
		OMIMScore:      rec.Text(ColOMIMScore),
	}
}
