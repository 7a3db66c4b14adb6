package domain

// Cell is a nullable text value produced by field resolution.
// A zero Cell is null and renders as an empty string.
type Cell struct {
	Value string
	Valid bool
}

// NewCell returns a valid cell holding v.
func NewCell(v string) Cell {
	return Cell{Value: v, Valid: true}
}

// String renders the cell, with null as "".
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// RecordType tags a row of the extractor table.
type RecordType string

// Record types emitted in the leading "type" column.
const (
	RecordTypeGene    RecordType = "gene"
	RecordTypeVariant RecordType = "variant"
)

// GeneRecord is the fixed projection of one gene-ranking entry.
type GeneRecord struct {
	Rank           Cell
	GeneSymbol     Cell
	CombinedScore  Cell
	PhenotypeScore Cell
	VariantScore   Cell
}

// VariantRecord is the fixed projection of one variant-ranking entry.
type VariantRecord struct {
	Rank            Cell
	GeneSymbol      Cell
	Contig          Cell
	Start           Cell
	End             Cell
	Ref             Cell
	Alt             Cell
	FunctionalClass Cell
}

// ExtractColumns is the header of the extractor table.
// Gene rows leave the variant-only columns empty and variant rows
// leave the gene-only score columns empty, so every row is the same width.
var ExtractColumns = []string{
	"type",
	"rank",
	"geneSymbol",
	"combinedScore",
	"phenotypeScore",
	"variantScore",
	"contig",
	"start",
	"end",
	"ref",
	"alt",
	"functionalClass",
}

// Row renders a gene record as an extractor table row.
func (g GeneRecord) Row() []string {
	return []string{
		string(RecordTypeGene),
		g.Rank.String(),
		g.GeneSymbol.String(),
		g.CombinedScore.String(),
		g.PhenotypeScore.String(),
		g.VariantScore.String(),
		"", "", "", "", "", "",
	}
}

// Row renders a variant record as an extractor table row.
func (v VariantRecord) Row() []string {
	return []string{
		string(RecordTypeVariant),
		v.Rank.String(),
		v.GeneSymbol.String(),
		"", "", "",
		v.Contig.String(),
		v.Start.String(),
		v.End.String(),
		v.Ref.String(),
		v.Alt.String(),
		v.FunctionalClass.String(),
	}
}

// GeneCentricColumns is the fixed column order of the merger report.
var GeneCentricColumns = []string{
	"RANK",
	"CONTIG",
	"POS",
	"REF",
	"ALT",
	"GENOTYPE",
	"FUNC",
	"HGVS",
	"AF_MAX_SRC",
	"AF_MAX",
	"ACMG_CLASS",
	"ACMG_EVID",
	"PATH_SCORE",
}

// GeneCentricRow is one variant of the target gene in report shape.
// Absent source values are empty strings, never missing fields.
type GeneCentricRow struct {
	Rank      string
	Contig    string
	Pos       string
	Ref       string
	Alt       string
	Genotype  string
	Func      string
	HGVS      string
	AFMaxSrc  string
	AFMax     string
	ACMGClass string
	ACMGEvid  string
	PathScore Score
}

// Values returns the row's cells in GeneCentricColumns order.
func (r GeneCentricRow) Values() []string {
	return []string{
		r.Rank,
		r.Contig,
		r.Pos,
		r.Ref,
		r.Alt,
		r.Genotype,
		r.Func,
		r.HGVS,
		r.AFMaxSrc,
		r.AFMax,
		r.ACMGClass,
		r.ACMGEvid,
		r.PathScore.Format(),
	}
}

// ParsedRank parses the row's RANK field.
func (r GeneCentricRow) ParsedRank() Rank {
	return ParseRank(r.Rank)
}

// GeneSummary holds the gene-level scores shown above the variant table.
type GeneSummary struct {
	CombinedScore  string
	PhenotypeScore string
	VariantScore   string
	OMIMScore      string
}
