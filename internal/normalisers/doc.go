// Package normalisers provides record normalisers for upstream tool output.
// Each normaliser knows how to project one producer's records, whose field
// names drift between versions, onto the fixed domain record shapes.
package normalisers
