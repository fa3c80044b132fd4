package store

import (
	"context"
	"fmt"

	"github.com/enetx/automaton"
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// Memory implements Store in memory. Documents are kept encoded, so callers
// never share a document with the store. Safe for concurrent use.
type Memory struct {
	data *g.MapSafe[string, []byte]
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: g.NewMapSafe[string, []byte]()}
}

// Save stores an encoded copy of doc.
func (m *Memory) Save(ctx context.Context, name string, doc *automaton.Document) error {
	data, err := encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	m.data.Set(name, data)
	return nil
}

// Load decodes a fresh copy of the stored document.
func (m *Memory) Load(ctx context.Context, name string) (*automaton.Document, error) {
	data := m.data.Get(name)
	if data.IsNone() {
		return nil, ErrNotFound
	}

	return decode(data.Some())
}

// Delete removes the document.
func (m *Memory) Delete(ctx context.Context, name string) error {
	m.data.Delete(name)
	return nil
}

// List returns the stored names.
func (m *Memory) List(ctx context.Context) ([]string, error) {
	names := m.data.Keys()
	names.SortBy(cmp.Cmp)

	return names, nil
}
