package store

import (
	"errors"
	"fmt"
)

// ErrLocked reports that another process already holds the store lock.
var ErrLocked = errors.New("store is in use by another process")

// StorageError reports a data file that is missing, unreadable, unwritable
// or malformed.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IndexError reports a positional operation outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("store: index %d out of range [0, %d)", e.Index, e.Len)
}
