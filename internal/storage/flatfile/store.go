package flatfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	CollectionUsers     = "users"
	CollectionBookings  = "bookings"
	CollectionResources = "resources"
	CollectionAdmins    = "admins"
)

// Record is one row of a collection, keyed by column name.
type Record map[string]string

// schemas fixes the column set of every collection. Save always writes
// exactly these columns in this order, so a collection that round-trips
// through zero records keeps a stable header.
var schemas = map[string][]string{
	CollectionUsers:     {"id", "name", "department", "role", "email"},
	CollectionBookings:  {"id", "resource", "date", "startTime", "endTime", "user", "department", "type", "purpose", "invitees"},
	CollectionResources: {"id", "name", "type"},
	CollectionAdmins:    {"username", "password", "name"},
}

// Store keeps each collection in a CSV file under dir. One RWMutex per
// collection serializes the whole load-mutate-save cycle, so two
// concurrent writers cannot silently drop each other's rows.
type Store struct {
	dir string
	mu  map[string]*sync.RWMutex
}

func New(dir string) *Store {
	mu := make(map[string]*sync.RWMutex, len(schemas))
	for name := range schemas {
		mu[name] = &sync.RWMutex{}
	}
	return &Store{dir: dir, mu: mu}
}

// Initialize creates the data directory and seeds every collection file
// that does not exist yet. Safe to call on every start; existing files
// are never touched.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	for name := range schemas {
		if _, err := os.Stat(s.path(name)); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", name, err)
		}
		if err := s.Save(name, seeds[name]); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}

	return nil
}

// Load reads the whole collection in file order. A missing file is an
// empty collection, not an error. The first row names the fields.
func (s *Store) Load(name string) ([]Record, error) {
	mu, err := s.lock(name)
	if err != nil {
		return nil, err
	}
	mu.RLock()
	defer mu.RUnlock()

	return s.load(name)
}

// Save rewrites the whole collection file. An empty record set leaves
// only the canonical header. Every declared column is written for every
// record; fields a record lacks come out empty.
func (s *Store) Save(name string, records []Record) error {
	mu, err := s.lock(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()

	return s.save(name, records)
}

// Update runs one load-mutate-save cycle under the collection's write
// lock. fn gets the current records and returns the full replacement
// set; returning an error aborts the cycle without writing.
func (s *Store) Update(name string, fn func(records []Record) ([]Record, error)) error {
	mu, err := s.lock(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()

	records, err := s.load(name)
	if err != nil {
		return err
	}
	records, err = fn(records)
	if err != nil {
		return err
	}

	return s.save(name, records)
}

func (s *Store) lock(name string) (*sync.RWMutex, error) {
	mu, ok := s.mu[name]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", name)
	}
	return mu, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".csv")
}

func (s *Store) load(name string) ([]Record, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, field := range header {
			rec[field] = row[i]
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *Store) save(name string, records []Record) error {
	header := schemas[name]

	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	w := csv.NewWriter(f)
	if err = w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write %s header: %w", name, err)
	}
	row := make([]string, len(header))
	for _, rec := range records {
		for i, field := range header {
			row[i] = rec[field]
		}
		if err = w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s row: %w", name, err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	return nil
}
