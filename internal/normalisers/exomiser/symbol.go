package exomiser

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SymbolMatcher compares gene symbols case-insensitively and exactly.
// Symbols are folded with full Unicode upper-casing.
type SymbolMatcher struct {
	caser  cases.Caser
	target string
}

// NewSymbolMatcher creates a matcher for the given gene symbol.
func NewSymbolMatcher(gene string) *SymbolMatcher {
	m := &SymbolMatcher{caser: cases.Upper(language.Und)}
	m.target = m.caser.String(gene)
	return m
}

// Match reports whether symbol names the target gene.
func (m *SymbolMatcher) Match(symbol string) bool {
	return m.caser.String(symbol) == m.target
}

// Target returns the upper-cased target symbol.
func (m *SymbolMatcher) Target() string {
	return m.target
}
