package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/goodnatureofminers/staleblocks/internal/model"
	"github.com/goodnatureofminers/staleblocks/pkg/atomicfile"
)

// Change describes the effect of an Upsert.
type Change int

const (
	// Unchanged means the store already held the same information.
	Unchanged Change = iota
	// Added means the hash was new.
	Added
	// HeaderFilled means a known hash without header received one.
	HeaderFilled
)

// Store is the deduplicated set of dataset records keyed by hash.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]model.Record
}

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[string]model.Record)}
}

// Load parses a table. Every malformed row, order violation and duplicate hash
// is collected into the returned error; the store holds the rows that passed.
func Load(r io.Reader) (*Store, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}

	s := New()
	entries, errs := Check(rows)
	for _, entry := range entries {
		if !entry.Valid() {
			continue
		}
		s.records[entry.Record.Hash] = entry.Record
	}
	return s, errors.Join(errs...)
}

// LoadFile loads the table at path. A missing file yields an empty store.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

// Upsert merges r into the store keyed by hash. Records violating the record
// invariants are rejected. A height conflict leaves the stored record as is.
func (s *Store) Upsert(r model.Record) (Change, error) {
	if err := CheckRecord(r); err != nil {
		return Unchanged, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[r.Hash]
	if !ok {
		s.records[r.Hash] = r
		return Added, nil
	}
	merged, err := model.Merge(&existing, r)
	if err != nil {
		return Unchanged, err
	}
	s.records[r.Hash] = merged
	if !existing.HasHeader() && merged.HasHeader() {
		return HeaderFilled, nil
	}
	return Unchanged, nil
}

// Get returns the record for hash.
func (s *Store) Get(hash string) (model.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[hash]
	return r, ok
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Records returns all records ordered by height descending, then hash descending.
func (s *Store) Records() []model.Record {
	s.mu.RLock()
	out := make([]model.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Height != out[j].Height {
			return out[i].Height > out[j].Height
		}
		return out[i].Hash > out[j].Hash
	})
	return out
}

// Serialize writes the canonical table.
func (s *Store) Serialize(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Label); err != nil {
		return fmt.Errorf("write label: %w", err)
	}
	for _, r := range s.Records() {
		if err := cw.Write([]string{strconv.FormatUint(r.Height, 10), r.Hash, r.Header}); err != nil {
			return fmt.Errorf("write record %s: %w", r.Hash, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save atomically replaces the table at path with the serialized store. It
// reports whether the file content changed; an identical file is not rewritten.
func (s *Store) Save(path string) (bool, error) {
	var buf bytes.Buffer
	if err := s.Serialize(&buf); err != nil {
		return false, err
	}

	current, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(current, buf.Bytes()):
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("read dataset: %w", err)
	}

	if err := atomicfile.Write(path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("save dataset: %w", err)
	}
	return true, nil
}
