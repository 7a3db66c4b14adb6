// Package exomiser normalises Exomiser gene and variant records.
//
// Exomiser renamed fields between releases (rank/geneRank,
// combinedScore/exomiserGeneCombinedScore, ...). Every target field is
// therefore described by an ordered list of candidate source keys, and
// ResolveField picks the first present, truthy value.
package exomiser
