// Package store defines the keyed document store the rest of the service
// persists into: named collections of schema-less documents, addressed by ID
// and queryable with at most one equality predicate and one sort key.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrConflict is returned when a document or uniqueness claim already exists.
	ErrConflict = errors.New("document already exists")
)

// Document is one stored record with its collection-scoped ID.
type Document struct {
	ID     string
	Fields map[string]any
}

// Filter is a single-field equality predicate. The underlying stores do not
// support compound queries; anything richer is filtered in process by the
// caller.
type Filter struct {
	Field string
	Value any
}

// Store is the persistence collaborator. All operations round-trip to the
// backing service; there is no local caching.
type Store interface {
	// Get returns the document with the given ID, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Put inserts a document under a store-assigned ID and returns it.
	Put(ctx context.Context, collection string, fields map[string]any) (string, error)

	// PutUnique inserts a document under a store-assigned ID after claiming
	// fields[uniqueField] for the collection. Returns ErrConflict when the
	// value is already claimed. The claim is released when the document is
	// deleted.
	PutUnique(ctx context.Context, collection, uniqueField string, fields map[string]any) (string, error)

	// Set writes a document under a caller-chosen ID, replacing any existing
	// content. When ifAbsent is true and the ID exists, returns ErrConflict.
	Set(ctx context.Context, collection, id string, fields map[string]any, ifAbsent bool) error

	// Update merges partial fields into an existing document, or ErrNotFound.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes a document, or ErrNotFound.
	Delete(ctx context.Context, collection, id string) error

	// Query returns documents matching the optional equality filter, sorted
	// descending by orderDesc when it is non-empty.
	Query(ctx context.Context, collection string, eq *Filter, orderDesc string) ([]Document, error)

	// StreamAll returns every document in the collection, unordered.
	StreamAll(ctx context.Context, collection string) ([]Document, error)

	// Ping verifies connectivity to the backing service.
	Ping(ctx context.Context) error
}
