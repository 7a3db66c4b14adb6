package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_String(t *testing.T) {
	assert.Equal(t, "", Cell{}.String())
	assert.Equal(t, "", Cell{Value: "stale"}.String())
	assert.Equal(t, "0", NewCell("0").String())
}

func TestGeneRecord_Row_MatchesHeaderWidth(t *testing.T) {
	g := GeneRecord{
		Rank:          NewCell("1"),
		GeneSymbol:    NewCell("SCN1A"),
		CombinedScore: NewCell("0.98"),
	}

	row := g.Row()

	assert.Len(t, row, len(ExtractColumns))
	assert.Equal(t, []string{"gene", "1", "SCN1A", "0.98", "", "", "", "", "", "", "", ""}, row)
}

func TestVariantRecord_Row_MatchesHeaderWidth(t *testing.T) {
	v := VariantRecord{
		Rank:            NewCell("3"),
		GeneSymbol:      NewCell("SCN1A"),
		Contig:          NewCell("2"),
		Start:           NewCell("166848000"),
		End:             NewCell("166848000"),
		Ref:             NewCell("C"),
		Alt:             NewCell("T"),
		FunctionalClass: NewCell("missense_variant"),
	}

	row := v.Row()

	assert.Len(t, row, len(ExtractColumns))
	assert.Equal(t, "variant", row[0])
	assert.Equal(t, "", row[3])
	assert.Equal(t, "2", row[6])
	assert.Equal(t, "missense_variant", row[11])
}

func TestGeneCentricRow_Values(t *testing.T) {
	row := GeneCentricRow{
		Rank:      "1",
		Pos:       "166848000",
		HGVS:      "c.4A>G",
		PathScore: NewScore(0.5),
	}

	values := row.Values()

	assert.Len(t, values, len(GeneCentricColumns))
	assert.Equal(t, "1", values[0])
	assert.Equal(t, "166848000", values[2])
	assert.Equal(t, "c.4A>G", values[7])
	assert.Equal(t, "0.500", values[12])
}

func TestGeneCentricRow_Values_EmptyScore(t *testing.T) {
	values := GeneCentricRow{}.Values()

	assert.Len(t, values, len(GeneCentricColumns))
	for _, v := range values {
		assert.Equal(t, "", v)
	}
}
