// Package domain defines the core entities for exoreport.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: One upstream row whose field names are not guaranteed
//   - Cell: A nullable text value produced by normalisation
//   - GeneRecord / VariantRecord: Fixed projections of extractor input
//   - GeneCentricRow: One ranked variant row of the merger report
//   - Score / Rank: Optional numeric sort keys
//   - Outcome: Whether a pipeline wrote its artifacts or found nothing
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
