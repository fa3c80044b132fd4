// Package store keeps named automaton documents: the flat record of an
// automaton plus the bulk tests saved with it.
package store

import (
	"context"
	"errors"

	"github.com/enetx/automaton"
)

// ErrNotFound is returned by Load when no document is stored under a name.
var ErrNotFound = errors.New("store: document not found")

// Store persists automaton documents by name.
type Store interface {
	// Save stores doc under name, replacing any previous document.
	Save(ctx context.Context, name string, doc *automaton.Document) error

	// Load retrieves the document stored under name.
	// Returns ErrNotFound if there is none.
	Load(ctx context.Context, name string) (*automaton.Document, error)

	// Delete removes the document stored under name. Deleting a missing
	// name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)
}

func encode(doc *automaton.Document) ([]byte, error) {
	return doc.Encode(automaton.EncodingJSON)
}

func decode(data []byte) (*automaton.Document, error) {
	return automaton.ParseDocument(data, automaton.EncodingJSON)
}
