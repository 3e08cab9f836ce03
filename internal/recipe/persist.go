package recipe

import (
	"fmt"
	"os"

	"recipebox/internal/fileutil"
)

// SaveFile writes the whole collection to path as a JSON array, replacing
// any existing content. The next identifier is not persisted; LoadFile
// derives it from the stored ids. Missing parent directories are an error.
func (s *Store) SaveFile(path string) error {
	data, err := encodeJSON(s.All())
	if err != nil {
		return fmt.Errorf("%w: encode recipes: %w", ErrFormat, err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrIO, path, err)
	}
	return nil
}

// LoadFile reads path and replaces the whole collection with its contents.
// The store is left untouched when reading or decoding fails.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: load %s: %w", ErrIO, path, err)
	}
	records, err := decodeJSON(data)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := s.Replace(records); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
