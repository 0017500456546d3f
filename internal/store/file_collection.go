package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-wallet-tracker/internal/logger"
)

// jsonCollection persists one entity kind as a single JSON-encoded list file.
// Every read loads the entire file and every write rewrites it; the mutex
// serialises the read-modify-write sequence so two concurrent writers cannot
// clobber each other's changes.
//
// Reads fail open: a missing or corrupt file degrades to an empty collection
// instead of propagating an error, trading strict correctness for
// availability. Writes create the parent directory on demand.
type jsonCollection[T any] struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

func newJSONCollection[T any](path string, logger *logger.Logger) *jsonCollection[T] {
	return &jsonCollection[T]{path: path, logger: logger}
}

// init creates an empty collection file if none exists yet.
func (c *jsonCollection[T]) init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.path); err == nil {
		return nil
	}

	return c.write([]T{})
}

// load reads the whole collection. The caller must hold c.mu.
func (c *jsonCollection[T]) load(ctx context.Context) []T {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Err(err).Str("path", c.path).Msg("error reading collection file, treating as empty")
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Err(err).Str("path", c.path).Msg("corrupt collection file, treating as empty")
		return []T{}
	}

	return records
}

// write persists the whole collection. The caller must hold c.mu.
func (c *jsonCollection[T]) write(records []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		c.logger.Err(err).Str("path", c.path).Msg("error creating collection directory")
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		c.logger.Err(err).Str("path", c.path).Msg("error writing collection file")
		return err
	}

	return nil
}

// jsonTable persists a string-to-string mapping as a single JSON object file,
// with the same whole-file read/write discipline as jsonCollection.
type jsonTable struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

func newJSONTable(path string, logger *logger.Logger) *jsonTable {
	return &jsonTable{path: path, logger: logger}
}

func (t *jsonTable) init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := os.Stat(t.path); err == nil {
		return nil
	}

	return t.write(map[string]string{})
}

// load reads the whole mapping. The caller must hold t.mu.
func (t *jsonTable) load(ctx context.Context) map[string]string {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(t.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Err(err).Str("path", t.path).Msg("error reading table file, treating as empty")
		}
		return map[string]string{}
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Err(err).Str("path", t.path).Msg("corrupt table file, treating as empty")
		return map[string]string{}
	}
	if entries == nil {
		entries = map[string]string{}
	}

	return entries
}

// write persists the whole mapping. The caller must hold t.mu.
func (t *jsonTable) write(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o750); err != nil {
		t.logger.Err(err).Str("path", t.path).Msg("error creating table directory")
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		t.logger.Err(err).Str("path", t.path).Msg("error writing table file")
		return err
	}

	return nil
}
