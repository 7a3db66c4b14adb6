package report

import (
	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
)

// Ensure Previewer implements the interface.
var _ driven.ReportPreviewer = (*Previewer)(nil)

// previewWrap is the word-wrap width for terminal previews.
const previewWrap = 100

// Previewer renders Markdown for the terminal with glamour.
type Previewer struct {
	style string
}

// NewPreviewer creates a previewer using the named glamour style.
// An empty style uses "auto", which follows the terminal background.
func NewPreviewer(style string) *Previewer {
	if style == "" {
		style = "auto"
	}
	return &Previewer{style: style}
}

// Render returns markdown styled for terminal display.
func (p *Previewer) Render(markdown string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(previewWrap)}
	if p.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(p.style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
