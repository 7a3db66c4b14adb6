package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultReportSettings(t *testing.T) {
	s := DefaultReportSettings()

	assert.Equal(t, "SCN1A", s.Gene)
	assert.Equal(t, "docs", s.OutDir)
	assert.Equal(t, 10, s.TopN)
	assert.Equal(t, 30, s.LabelWidth)
}
