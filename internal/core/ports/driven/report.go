package driven

import "context"

// ReportWriter persists a rendered Markdown report.
type ReportWriter interface {
	// WriteReport writes content to path, replacing any existing file.
	WriteReport(ctx context.Context, path, content string) error
}

// ReportPreviewer renders Markdown for display in a terminal.
type ReportPreviewer interface {
	// Render returns the terminal representation of markdown.
	Render(markdown string) (string, error)
}
