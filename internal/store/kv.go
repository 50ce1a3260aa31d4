// AngelaMos | 2026
// kv.go

// Package store persists named collections of JSON records on top of a
// pluggable key-value backend. Every collection lives in a single value:
// reads fetch the whole blob, writes overwrite it wholesale. Two concurrent
// writers to the same collection therefore race, and the last whole-blob
// write wins; per-record changes based on a stale read are silently lost.
// That mirrors the storage model this service reproduces and is a documented
// limitation, not something the backends try to repair.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrKeyNotFound is returned by KV.Get when the key has never been written.
var ErrKeyNotFound = errors.New("store: key not found")

// KV is the minimal contract a backend has to satisfy. Values are opaque
// byte blobs; encoding belongs to the layer above.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Store namespaces collection names onto a KV backend.
type Store struct {
	kv        KV
	namespace string
}

func New(kv KV, namespace string) *Store {
	return &Store{kv: kv, namespace: namespace}
}

// Key returns the backend key for a collection name, "<namespace>:<name>".
func (s *Store) Key(name string) string {
	return s.namespace + ":" + name
}

func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

// NewID generates a collection-record identifier. UUIDs stay unique across
// concurrent sessions without coordination.
func NewID() string {
	return uuid.New().String()
}
