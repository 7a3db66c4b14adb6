package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
)

func TestFilterCmd_Use(t *testing.T) {
	assert.Equal(t, "filter <variants.tsv> <outdir>", filterCmd.Use)
}

func TestFilterCmd_HasGeneFlag(t *testing.T) {
	flag := filterCmd.Flags().Lookup("gene")
	require.NotNil(t, flag, "gene flag should exist")
	assert.Equal(t, "g", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestFilterCmd_RequiresTwoArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"filter", "variants.tsv"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg(s)")
}

func TestFilterCmd_Executes(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.filter.outcome = domain.Written("out/scn1a_top.csv", "out/scn1a_top.png", "out/scn1a.md")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"filter", "--gene", "kcnq2", "variants.tsv", "out"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.Len(t, ts.filter.requests, 1)
	assert.Equal(t, driving.FilterRequest{InputPath: "variants.tsv", OutDir: "out", Gene: "kcnq2"}, ts.filter.requests[0])
	assert.Contains(t, buf.String(), "out/scn1a_top.csv")
	assert.Contains(t, buf.String(), "out/scn1a_top.png")
	assert.Contains(t, buf.String(), "out/scn1a.md")
}

func TestFilterCmd_EmptyResultExitsCleanly(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.filter.outcome = domain.Empty("No SCN1A variants found in: variants.tsv")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"filter", "variants.tsv", "out"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No SCN1A variants found in: variants.tsv")
	assert.NotContains(t, buf.String(), "Wrote:")
}
