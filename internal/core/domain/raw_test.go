package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_HasColumn(t *testing.T) {
	table := &Table{Header: []string{"RANK", "GENE_SYMBOL"}}

	assert.True(t, table.HasColumn("GENE_SYMBOL"))
	assert.False(t, table.HasColumn("gene_symbol"))
	assert.False(t, table.HasColumn("HGVS"))
}

func TestRawRecord_Text(t *testing.T) {
	rec := RawRecord{
		"GENE_SYMBOL": "SCN1A",
		"RANK":        json.Number("1"),
		"HGVS":        nil,
	}

	assert.Equal(t, "SCN1A", rec.Text("GENE_SYMBOL"))
	assert.Equal(t, "", rec.Text("RANK"), "non-string values are not text")
	assert.Equal(t, "", rec.Text("HGVS"))
	assert.Equal(t, "", rec.Text("MISSING"))
}
