package cli

import (
	"context"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
)

type mockExtractService struct {
	calls [][2]string
	err   error
}

func (m *mockExtractService) Extract(_ context.Context, jsonPath, outPath string) (domain.Outcome, error) {
	m.calls = append(m.calls, [2]string{jsonPath, outPath})
	if m.err != nil {
		return domain.Outcome{}, m.err
	}
	return domain.Written(outPath), nil
}

type mockFilterService struct {
	requests []driving.FilterRequest
	outcome  domain.Outcome
	err      error
}

func (m *mockFilterService) Filter(_ context.Context, req driving.FilterRequest) (domain.Outcome, error) {
	m.requests = append(m.requests, req)
	return m.outcome, m.err
}

type mockMergeService struct {
	requests []driving.MergeRequest
	outcome  domain.Outcome
	err      error
}

func (m *mockMergeService) Merge(_ context.Context, req driving.MergeRequest) (domain.Outcome, error) {
	m.requests = append(m.requests, req)
	return m.outcome, m.err
}

type mockPreviewer struct {
	input string
}

func (m *mockPreviewer) Render(markdown string) (string, error) {
	m.input = markdown
	return "RENDERED\n", nil
}

type testServices struct {
	extract   *mockExtractService
	filter    *mockFilterService
	merge     *mockMergeService
	previewer *mockPreviewer
}

// setupTestServices installs mock services and returns them with a cleanup func.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		extract:   &mockExtractService{},
		filter:    &mockFilterService{},
		merge:     &mockMergeService{},
		previewer: &mockPreviewer{},
	}
	SetServices(&Services{
		Extract:   ts.extract,
		Filter:    ts.filter,
		Merge:     ts.merge,
		Previewer: ts.previewer,
	})
	return ts, func() {
		settingsService = nil
		extractService = nil
		filterService = nil
		mergeService = nil
		reportPreviewer = nil
		filterGene = ""
		resetMergeFlags()
	}
}

// resetMergeFlags clears merge flag values and their changed state.
func resetMergeFlags() {
	mergeGene, mergeVariants, mergeGenes, mergeOutDir = "", "", "", ""
	mergeWorkbook, mergePreview = false, false
	for _, name := range []string{"gene", "variants", "genes", "outdir", "xlsx", "preview"} {
		if f := mergeCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
	if f := filterCmd.Flags().Lookup("gene"); f != nil {
		f.Changed = false
	}
}
