package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "db.json")
	clock := func() time.Time { return time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC) }
	s := New(path, NewSeededGenerator(1, 2).WithClock(clock))
	if err := s.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	return s
}

func seed(t *testing.T, s *Store, n int) []Record {
	t.Helper()
	var records []Record
	for i := 0; i < n; i++ {
		var err error
		records, err = s.AppendRandom()
		if err != nil {
			t.Fatalf("AppendRandom() error = %v", err)
		}
	}
	return records
}

func TestEnsureCreatesEmptyCollection(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(got))
	}

	// A second call must not truncate existing data.
	seed(t, s, 2)
	if err := s.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	got, err = s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Ensure clobbered data: got %d records", len(got))
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "nope.json"), nil)
	_, err := s.LoadAll()
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected *StorageError, got %T (%v)", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadAllMalformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{name: "garbage", content: "not json"},
		{name: "object", content: `{"id": 1}`},
		{name: "wrong field type", content: `[{"id": "one"}]`},
		{name: "truncated", content: `[{"id": 1, "name": "x"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "db.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}
			_, err := New(path, nil).LoadAll()
			var storageErr *StorageError
			if !errors.As(err, &storageErr) {
				t.Fatalf("expected *StorageError, got %T (%v)", err, err)
			}
			if storageErr.Op != "decode" {
				t.Fatalf("op mismatch: got %q want %q", storageErr.Op, "decode")
			}
		})
	}
}

func TestAppendRandomRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	before := seed(t, s, 3)

	returned, err := s.AppendRandom()
	if err != nil {
		t.Fatalf("AppendRandom() error = %v", err)
	}
	loaded, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(loaded) != len(before)+1 || len(returned) != len(loaded) {
		t.Fatalf("length mismatch: before=%d returned=%d loaded=%d", len(before), len(returned), len(loaded))
	}
	for i := range before {
		if !loaded[i].CreatedAt.Equal(before[i].CreatedAt) || loaded[i].ID != before[i].ID || loaded[i].Name != before[i].Name {
			t.Fatalf("record %d changed: got %+v want %+v", i, loaded[i], before[i])
		}
	}

	last := loaded[len(loaded)-1]
	if last.Category != CategoryCats && last.Category != CategoryDogs {
		t.Fatalf("unexpected category %q", last.Category)
	}
	if len(last.Name) != 10 {
		t.Fatalf("name length: got %d want 10 (%q)", len(last.Name), last.Name)
	}
	if last.Age < DefaultMinAge || last.Age >= DefaultMaxAge {
		t.Fatalf("age %d outside [%d, %d)", last.Age, DefaultMinAge, DefaultMaxAge)
	}
	if last.ID < 0 || last.ID >= DefaultMaxID {
		t.Fatalf("id %d outside [0, %d)", last.ID, DefaultMaxID)
	}
}

func TestGeneratorBounds(t *testing.T) {
	t.Parallel()

	g := NewSeededGenerator(42, 7)
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		r := g.Record()
		seen[r.Category] = true
		if r.Age < g.MinAge || r.Age >= g.MaxAge {
			t.Fatalf("age %d outside [%d, %d)", r.Age, g.MinAge, g.MaxAge)
		}
		for _, c := range r.Name {
			if !bytes.ContainsRune([]byte(nameAlphabet), c) {
				t.Fatalf("name %q has non-alphanumeric rune %q", r.Name, c)
			}
		}
	}
	if !seen[CategoryCats] || !seen[CategoryDogs] {
		t.Fatalf("expected both categories to be generated, got %v", seen)
	}
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	t.Parallel()

	for _, idx := range []int{0, 2, 4} {
		s := newTestStore(t)
		before := seed(t, s, 5)
		if err := s.RemoveAt(idx); err != nil {
			t.Fatalf("RemoveAt(%d) error = %v", idx, err)
		}
		after, err := s.LoadAll()
		if err != nil {
			t.Fatalf("LoadAll() error = %v", err)
		}
		if len(after) != len(before)-1 {
			t.Fatalf("length: got %d want %d", len(after), len(before)-1)
		}
		want := append(append([]Record{}, before[:idx]...), before[idx+1:]...)
		for i := range want {
			if after[i].ID != want[i].ID || after[i].Name != want[i].Name {
				t.Fatalf("RemoveAt(%d): position %d got %+v want %+v", idx, i, after[i], want[i])
			}
		}
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	seed(t, s, 2)
	original, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}

	for _, idx := range []int{2, 3, -1} {
		err := s.RemoveAt(idx)
		var indexErr *IndexError
		if !errors.As(err, &indexErr) {
			t.Fatalf("RemoveAt(%d): expected *IndexError, got %T (%v)", idx, err, err)
		}
		if indexErr.Index != idx || indexErr.Len != 2 {
			t.Fatalf("unexpected error payload: %+v", indexErr)
		}
	}

	current, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	if !bytes.Equal(original, current) {
		t.Fatal("data file changed after rejected removal")
	}
}

func TestRemoveAtEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	var indexErr *IndexError
	if err := s.RemoveAt(0); !errors.As(err, &indexErr) {
		t.Fatalf("expected *IndexError on empty store, got %v", err)
	}
}

func TestLockIsExclusive(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	unlock, err := s.Lock()
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}

	other := New(s.Path(), nil)
	if _, err := other.Lock(); !errors.Is(err, ErrLocked) {
		t.Fatalf("second Lock() should fail with ErrLocked, got %v", err)
	}

	if err := unlock(); err != nil {
		t.Fatalf("unlock error = %v", err)
	}
	unlockAgain, err := other.Lock()
	if err != nil {
		t.Fatalf("Lock() after release error = %v", err)
	}
	_ = unlockAgain()
}
