// Package store provides flat-file JSON persistence for CMS content.
//
// Each record collection lives in a single JSON file that is the sole
// source of truth: every operation re-reads the file, applies its change
// in memory, and rewrites the whole file. Writes go through a temp file
// and rename so a crash mid-write never leaves a half-written document,
// and a per-collection mutex serializes concurrent mutations.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when no record matches the requested identifier.
var ErrNotFound = errors.New("store: record not found")

// ValidationError reports a record that is missing required fields.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validationf builds a *ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Collection is a JSON-array-backed record store. It is parameterized by
// the file path, an identifier extractor, an optional default seed written
// when the file does not exist yet, and an optional validator run before
// every insert.
type Collection[T any] struct {
	Path     string
	Key      func(T) string
	Seed     []T
	Validate func(T) error

	mu sync.Mutex
}

// Ensure creates the collection file with the seed value if it is absent.
// It is called implicitly by every other operation.
func (c *Collection[T]) Ensure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ensure()
}

func (c *Collection[T]) ensure() error {
	if _, err := os.Stat(c.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", c.Path, err)
	}
	seed := c.Seed
	if seed == nil {
		seed = []T{}
	}
	return c.write(seed)
}

// All returns every record in the collection, in file order.
func (c *Collection[T]) All() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Get returns the record whose identifier matches id.
func (c *Collection[T]) Get(id string) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, err := c.load()
	if err != nil {
		return zero, err
	}
	for _, r := range recs {
		if c.Key(r) == id {
			return r, nil
		}
	}
	return zero, ErrNotFound
}

// Append validates rec and adds it to the end of the collection.
func (c *Collection[T]) Append(rec T) (T, error) {
	return c.insert(rec, false)
}

// Prepend validates rec and adds it to the front of the collection, so
// the newest record lists first.
func (c *Collection[T]) Prepend(rec T) (T, error) {
	return c.insert(rec, true)
}

func (c *Collection[T]) insert(rec T, front bool) (T, error) {
	var zero T
	if c.Validate != nil {
		if err := c.Validate(rec); err != nil {
			return zero, err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, err := c.load()
	if err != nil {
		return zero, err
	}
	id := c.Key(rec)
	for _, r := range recs {
		if c.Key(r) == id {
			return zero, fmt.Errorf("store: duplicate identifier %q in %s", id, c.Path)
		}
	}
	if front {
		recs = append([]T{rec}, recs...)
	} else {
		recs = append(recs, rec)
	}
	if err := c.write(recs); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update locates the record with the given id, applies the patch to it in
// place, and rewrites the file. Fields the patch does not touch keep their
// existing values. Returns ErrNotFound if no record matches; an update is
// never a silent insert.
func (c *Collection[T]) Update(id string, patch func(*T)) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, err := c.load()
	if err != nil {
		return zero, err
	}
	for i := range recs {
		if c.Key(recs[i]) == id {
			patch(&recs[i])
			if err := c.write(recs); err != nil {
				return zero, err
			}
			return recs[i], nil
		}
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given id and returns it, so callers
// can clean up derived assets such as uploaded images. Returns ErrNotFound
// if no record matches.
func (c *Collection[T]) Delete(id string) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	recs, err := c.load()
	if err != nil {
		return zero, err
	}
	for i := range recs {
		if c.Key(recs[i]) == id {
			removed := recs[i]
			recs = append(recs[:i], recs[i+1:]...)
			if err := c.write(recs); err != nil {
				return zero, err
			}
			return removed, nil
		}
	}
	return zero, ErrNotFound
}

func (c *Collection[T]) load() ([]T, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.Path, err)
	}
	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.Path, err)
	}
	return recs, nil
}

func (c *Collection[T]) write(recs []T) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Path, err)
	}
	return WriteFileAtomic(c.Path, data)
}

// Document is a single-object JSON store used for singleton documents
// such as site settings and the keyed services map.
type Document[T any] struct {
	Path string
	Seed T

	mu sync.Mutex
}

// Ensure creates the document file with the seed value if it is absent.
func (d *Document[T]) Ensure() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ensure()
}

func (d *Document[T]) ensure() error {
	if _, err := os.Stat(d.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", d.Path, err)
	}
	return d.write(d.Seed)
}

// Load reads and decodes the document.
func (d *Document[T]) Load() (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()
}

// Save replaces the whole document.
func (d *Document[T]) Save(doc T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.write(doc)
}

// Update applies the patch to the current document under the lock and
// rewrites it, so concurrent updates cannot interleave.
func (d *Document[T]) Update(patch func(*T)) (T, error) {
	var zero T
	d.mu.Lock()
	defer d.mu.Unlock()
	doc, err := d.load()
	if err != nil {
		return zero, err
	}
	patch(&doc)
	if err := d.write(doc); err != nil {
		return zero, err
	}
	return doc, nil
}

func (d *Document[T]) load() (T, error) {
	var doc T
	if err := d.ensure(); err != nil {
		return doc, err
	}
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", d.Path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse %s: %w", d.Path, err)
	}
	return doc, nil
}

func (d *Document[T]) write(doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.Path, err)
	}
	return WriteFileAtomic(d.Path, data)
}

// WriteFileAtomic writes data to a temp file in the target directory and
// renames it over path, creating parent directories as needed. Rename is
// atomic on POSIX filesystems, so readers never observe a partial write.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
