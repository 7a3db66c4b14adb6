package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/exoreport/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exoreport.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigStore_Success(t *testing.T) {
	path := writeConfig(t, "[report]\ngene = \"KCNQ2\"\ntop_n = 5\n")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, "KCNQ2", store.GetString("report.gene"))
	assert.Equal(t, 5, store.GetInt("report.top_n"))
}

func TestNewConfigStore_EmptyPath(t *testing.T) {
	store, err := NewConfigStore("")

	require.NoError(t, err)
	_, ok := store.Get("report.gene")
	assert.False(t, ok)
}

func TestNewConfigStore_MissingFile(t *testing.T) {
	store, err := NewConfigStore(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Equal(t, "", store.GetString("report.gene"))
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[report\ngene = ")

	_, err := NewConfigStore(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormat)
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	path := writeConfig(t, "[report]\ngene = 42\ntop_n = \"ten\"\n")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, "", store.GetString("report.gene"))
	assert.Equal(t, 0, store.GetInt("report.top_n"))
}

func TestConfigStore_LoadRereadsFile(t *testing.T) {
	path := writeConfig(t, "[report]\ngene = \"SCN1A\"\n")
	store, err := NewConfigStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[report]\ngene = \"SCN2A\"\n"), 0o600))
	require.NoError(t, store.Load())

	assert.Equal(t, "SCN2A", store.GetString("report.gene"))
}

func TestFlattenMap(t *testing.T) {
	flat := flattenMap(map[string]any{
		"report": map[string]any{"gene": "SCN1A", "chart": map[string]any{"width": int64(30)}},
		"top":    true,
	}, "")

	assert.Equal(t, map[string]any{
		"report.gene":        "SCN1A",
		"report.chart.width": int64(30),
		"top":                true,
	}, flat)
}
