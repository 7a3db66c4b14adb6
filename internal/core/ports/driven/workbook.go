package driven

import "context"

// WorkbookWriter exports a table as a spreadsheet workbook.
type WorkbookWriter interface {
	// WriteWorkbook writes one sheet holding header and rows to path.
	// Row values may be string or float64; floats are stored as numbers.
	WriteWorkbook(ctx context.Context, path, sheet string, header []string, rows [][]any) error
}
