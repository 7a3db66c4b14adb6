// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentDecoder: Parses an opaque JSON document
//   - TableReader: Loads a delimited table with all cells as text
//   - TableWriter: Writes a delimited table with a header row
//   - ReportWriter: Persists a Markdown narrative
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ChartRenderer: Bar chart images. Without it no image is written.
//   - WorkbookWriter: Excel export. Without it no workbook is written.
//   - ReportPreviewer: Terminal rendering of the Markdown report.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
