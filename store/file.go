package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/enetx/automaton"
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ErrInvalidName is returned for names that cannot be used as file names.
var ErrInvalidName = errors.New("store: invalid document name")

const fileExt = ".json"

// File implements Store on the local filesystem, one JSON document per file
// in a directory.
type File struct {
	Dir string
}

// NewFile creates a File store rooted at dir. The directory is created on
// the first Save.
func NewFile(dir string) *File {
	return &File{Dir: dir}
}

func (f *File) path(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, ".") || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return filepath.Join(f.Dir, name+fileExt), nil
}

// Save writes doc to a temporary file and renames it over the previous one.
func (f *File) Save(ctx context.Context, name string, doc *automaton.Document) error {
	dest, err := f.path(name)
	if err != nil {
		return err
	}

	data, err := encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(f.Dir, ".tmp-*"+fileExt)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}

	return nil
}

// Load reads and decodes the document file.
func (f *File) Load(ctx context.Context, name string) (*automaton.Document, error) {
	path, err := f.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %q: %w", name, err)
	}

	return doc, nil
}

// Delete removes the document file.
func (f *File) Delete(ctx context.Context, name string) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// List returns the names of the document files. A missing directory holds
// no documents.
func (f *File) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	names := g.NewSlice[string]()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, fileExt) {
			continue
		}

		names.Push(strings.TrimSuffix(name, fileExt))
	}

	names.SortBy(cmp.Cmp)

	return names, nil
}
