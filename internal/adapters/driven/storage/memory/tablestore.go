package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
)

// Ensure TableStore implements the table ports.
var (
	_ driven.TableReader  = (*TableStore)(nil)
	_ driven.TableWriter  = (*TableStore)(nil)
	_ driven.ReportWriter = (*TableStore)(nil)
)

// WrittenTable is a table captured by TableStore.
type WrittenTable struct {
	Header []string
	Rows   [][]string
}

// TableStore is an in-memory table and report store for testing.
// Tables are keyed by path.
type TableStore struct {
	mu      sync.RWMutex
	inputs  map[string]*domain.Table
	tables  map[string]WrittenTable
	reports map[string]string
}

// NewTableStore creates a new in-memory table store.
func NewTableStore() *TableStore {
	return &TableStore{
		inputs:  make(map[string]*domain.Table),
		tables:  make(map[string]WrittenTable),
		reports: make(map[string]string),
	}
}

// PutTable registers an input table at path.
func (s *TableStore) PutTable(path string, table *domain.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[path] = table
}

// ReadTable returns the table registered at path.
func (s *TableStore) ReadTable(_ context.Context, path string) (*domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.inputs[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, domain.ErrNotFound)
	}
	return table, nil
}

// WriteTable captures a written table.
func (s *TableStore) WriteTable(_ context.Context, path string, header []string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[path] = WrittenTable{Header: header, Rows: rows}
	return nil
}

// WriteReport captures a written report.
func (s *TableStore) WriteReport(_ context.Context, path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[path] = content
	return nil
}

// Written returns the table written at path.
func (s *TableStore) Written(path string) (WrittenTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[path]
	return t, ok
}

// Report returns the report written at path.
func (s *TableStore) Report(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[path]
	return r, ok
}
