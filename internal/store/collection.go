// AngelaMos | 2026
// collection.go

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/angelamos/frontdesk/internal/core"
)

// Entity is anything a Collection can hold.
type Entity interface {
	EntityID() string
}

// Collection is a typed repository over one named blob in the store. Every
// mutation is a read-modify-write of the whole collection; see the package
// doc for the concurrency caveat that carries.
type Collection[T Entity] struct {
	store *Store
	name  string
}

func NewCollection[T Entity](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// All returns every record in the collection. A missing key is an empty
// collection. A blob that fails to decode is also treated as empty: the data
// is non-critical cache-grade state and the caller must never see a parse
// failure, but the loss is logged because it is silent otherwise.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	data, err := c.store.kv.Get(ctx, c.store.Key(c.name))
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", c.name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("collection blob corrupt, treating as empty",
			"collection", c.name,
			"error", err,
		)
		return []T{}, nil
	}

	if records == nil {
		records = []T{}
	}

	return records, nil
}

// Exists reports whether the collection key has ever been written. Used by
// the seeders, which only run on a blank namespace.
func (c *Collection[T]) Exists(ctx context.Context) (bool, error) {
	_, err := c.store.kv.Get(ctx, c.store.Key(c.name))
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("probe collection %s: %w", c.name, err)
	}
	return true, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	records, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].EntityID() == id {
			return &records[i], nil
		}
	}

	return nil, fmt.Errorf("get %s %q: %w", c.name, id, core.ErrNotFound)
}

func (c *Collection[T]) Find(
	ctx context.Context,
	pred func(T) bool,
) ([]T, error) {
	records, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	matches := []T{}
	for _, record := range records {
		if pred(record) {
			matches = append(matches, record)
		}
	}

	return matches, nil
}

func (c *Collection[T]) First(
	ctx context.Context,
	pred func(T) bool,
) (*T, error) {
	records, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if pred(records[i]) {
			return &records[i], nil
		}
	}

	return nil, fmt.Errorf("find in %s: %w", c.name, core.ErrNotFound)
}

func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	records, err := c.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Insert appends the record and writes the collection back.
func (c *Collection[T]) Insert(ctx context.Context, record T) error {
	records, err := c.All(ctx)
	if err != nil {
		return err
	}

	records = append(records, record)
	return c.ReplaceAll(ctx, records)
}

// Replace swaps the stored record carrying the same id for the given one.
// The collection is left untouched when the id is absent.
func (c *Collection[T]) Replace(ctx context.Context, record T) error {
	records, err := c.All(ctx)
	if err != nil {
		return err
	}

	id := record.EntityID()
	for i := range records {
		if records[i].EntityID() == id {
			records[i] = record
			return c.ReplaceAll(ctx, records)
		}
	}

	return fmt.Errorf("replace %s %q: %w", c.name, id, core.ErrNotFound)
}

// Delete rewrites the collection without the matching record. Deleting an
// absent id is a no-op, so the operation is idempotent.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	records, err := c.All(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, record := range records {
		if record.EntityID() != id {
			kept = append(kept, record)
		}
	}

	return c.ReplaceAll(ctx, kept)
}

// ReplaceAll overwrites the whole collection blob.
func (c *Collection[T]) ReplaceAll(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.name, err)
	}

	if err := c.store.kv.Set(ctx, c.store.Key(c.name), data); err != nil {
		return fmt.Errorf("write collection %s: %w", c.name, err)
	}

	return nil
}
