package domain

// Default report settings.
const (
	DefaultGene       = "SCN1A"
	DefaultOutDir     = "docs"
	DefaultTopN       = 10
	DefaultLabelWidth = 30
)

// ReportSettings holds user-tunable report options.
type ReportSettings struct {
	// Gene is the target gene symbol.
	Gene string

	// OutDir is the merger's default output directory.
	OutDir string

	// TopN caps the rows shown in Markdown tables and charts.
	TopN int

	// LabelWidth caps chart label length in characters.
	LabelWidth int
}

// DefaultReportSettings returns settings with default values.
func DefaultReportSettings() *ReportSettings {
	return &ReportSettings{
		Gene:       DefaultGene,
		OutDir:     DefaultOutDir,
		TopN:       DefaultTopN,
		LabelWidth: DefaultLabelWidth,
	}
}
