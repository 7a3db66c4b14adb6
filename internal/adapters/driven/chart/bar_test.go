package chart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderer_RenderBarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top.png")
	chart := domain.BarChart{
		Title:  "Top SCN1A variants",
		YLabel: "Exomiser Variant Score",
		Labels: []string{"c.1A>G", "2"},
		Values: []float64{0.95, 0.8},
	}

	err := NewRenderer().RenderBarChart(context.Background(), path, chart)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "output should be a PNG")
}

func TestRenderer_EmptyChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := NewRenderer().RenderBarChart(context.Background(), path, domain.BarChart{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoFileExists(t, path)
}

func TestRenderer_LabelCountMismatch(t *testing.T) {
	chart := domain.BarChart{Labels: []string{"a"}, Values: []float64{1, 2}}

	err := NewRenderer().RenderBarChart(context.Background(), filepath.Join(t.TempDir(), "x.png"), chart)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
