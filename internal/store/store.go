// Package store persists pet records as a JSON array in a single file.
// Every read goes back to disk and every write rewrites the whole file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DefaultPath is where the data file lives when nothing else is configured.
var DefaultPath = filepath.Join(".", "data", "db.json")

// Store reads and writes the record collection at Path.
type Store struct {
	path string
	gen  *Generator
}

// New returns a store backed by the file at path. A nil generator falls
// back to NewGenerator.
func New(path string, gen *Generator) *Store {
	if gen == nil {
		gen = NewGenerator()
	}
	return &Store{path: path, gen: gen}
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates an empty collection file when none exists yet.
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return &StorageError{Op: "stat", Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &StorageError{Op: "create", Path: s.path, Err: err}
	}
	log.Printf("[store] creating empty collection at %s", s.path)
	return s.write(nil)
}

// Lock takes an exclusive advisory lock next to the data file so a second
// instance cannot write the same file. The returned func releases it.
func (s *Store) Lock() (func() error, error) {
	lock := flock.New(s.path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, &StorageError{Op: "lock", Path: s.path, Err: err}
	}
	if !ok {
		return nil, &StorageError{Op: "lock", Path: s.path, Err: ErrLocked}
	}
	return lock.Unlock, nil
}

// LoadAll decodes the whole collection. A whitespace-only file is an empty
// collection; anything else that is not a JSON array of records fails.
func (s *Store) LoadAll() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Record{}, nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &StorageError{Op: "decode", Path: s.path, Err: err}
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// AppendRandom adds one generated record to the end of the collection and
// returns the updated sequence.
func (s *Store) AppendRandom() ([]Record, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	record := s.gen.Record()
	records = append(records, record)
	if err := s.write(records); err != nil {
		return nil, err
	}
	log.Printf("[store] appended id=%d name=%s category=%s (total=%d)", record.ID, record.Name, record.Category, len(records))
	return records, nil
}

// RemoveAt deletes the record at index. An index outside the collection
// returns *IndexError and leaves the file untouched.
func (s *Store) RemoveAt(index int) error {
	records, err := s.LoadAll()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return &IndexError{Index: index, Len: len(records)}
	}
	removed := records[index]
	records = append(records[:index], records[index+1:]...)
	if err := s.write(records); err != nil {
		return err
	}
	log.Printf("[store] removed index=%d id=%d (total=%d)", index, removed.ID, len(records))
	return nil
}

func (s *Store) write(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
