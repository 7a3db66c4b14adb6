package driving

import "github.com/custodia-labs/exoreport/internal/core/domain"

// SettingsService resolves report settings from configuration.
type SettingsService interface {
	// Get returns settings with stored values layered over defaults.
	Get() *domain.ReportSettings
}
