package services

import (
	"slices"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

// CompareGeneCentricRows orders rows by path score descending, then by
// numeric rank ascending. Missing scores and non-numeric ranks sort last.
func CompareGeneCentricRows(a, b domain.GeneCentricRow) int {
	if c := a.PathScore.Compare(b.PathScore); c != 0 {
		return c
	}
	return a.ParsedRank().Compare(b.ParsedRank())
}

// RankGeneCentricRows sorts rows in place. Exact ties keep scan order.
func RankGeneCentricRows(rows []domain.GeneCentricRow) {
	slices.SortStableFunc(rows, CompareGeneCentricRows)
}
