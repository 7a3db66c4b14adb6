package exomiser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolMatcher_CaseInsensitive(t *testing.T) {
	m := NewSymbolMatcher("SCN1A")

	assert.True(t, m.Match("SCN1A"))
	assert.True(t, m.Match("scn1a"))
	assert.True(t, m.Match("Scn1a"))
}

func TestSymbolMatcher_Exact(t *testing.T) {
	m := NewSymbolMatcher("scn1a")

	assert.False(t, m.Match("SCN1A2"))
	assert.False(t, m.Match("SCN1"))
	assert.False(t, m.Match(" SCN1A"))
	assert.False(t, m.Match(""))
}

func TestSymbolMatcher_Target(t *testing.T) {
	assert.Equal(t, "SCN1A", NewSymbolMatcher("Scn1a").Target())
}

func TestSymbolMatcher_FullUnicodeUpper(t *testing.T) {
	m := NewSymbolMatcher("straße")

	assert.True(t, m.Match("STRASSE"))
}
