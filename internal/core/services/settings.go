package services

import (
	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Configuration keys.
const (
	keyReportGene       = "report.gene"
	keyReportOutDir     = "report.outdir"
	keyReportTopN       = "report.top_n"
	keyReportLabelWidth = "report.label_width"
)

// SettingsService layers stored configuration over default report settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
// A nil store yields the defaults.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the effective report settings.
// Empty strings and non-positive numbers in the store fall back to defaults.
func (s *SettingsService) Get() *domain.ReportSettings {
	settings := domain.DefaultReportSettings()
	if s.configStore == nil {
		return settings
	}

	if gene := s.configStore.GetString(keyReportGene); gene != "" {
		settings.Gene = gene
	}
	if outDir := s.configStore.GetString(keyReportOutDir); outDir != "" {
		settings.OutDir = outDir
	}
	if n := s.configStore.GetInt(keyReportTopN); n > 0 {
		settings.TopN = n
	}
	if w := s.configStore.GetInt(keyReportLabelWidth); w > 0 {
		settings.LabelWidth = w
	}
	return settings
}
