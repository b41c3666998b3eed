// Package docstore defines the persistence port of the schedule backend.
//
// All durable data lives in named collections of JSON documents scoped by
// a user id. The ledgers only ever read a whole document, overwrite a
// whole document or delete it by key, so the port stays small enough to
// back with any managed document store.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names. They match the collection paths of the hosted
// document store the mobile client writes to.
const (
	CollectionRateProfiles = "rateProfiles"
	CollectionRevenues     = "revenues"
	CollectionNotes        = "notes"
)

// ErrNotFound is returned when no document exists for a key.
var ErrNotFound = errors.New("document not found")

// Document is one stored JSON value together with its key.
type Document struct {
	Key  string
	Data json.RawMessage
}

// Store is the persistence port. Implementations must make Set a full
// overwrite of the document and Delete of a missing key a no-op.
type Store interface {
	// All returns every document in the collection for the user.
	All(ctx context.Context, userID, collection string) ([]Document, error)

	// Get returns the document for the key, or ErrNotFound.
	Get(ctx context.Context, userID, collection, key string) (json.RawMessage, error)

	// Set overwrites the document for the key.
	Set(ctx context.Context, userID, collection, key string, data json.RawMessage) error

	// Delete removes the document for the key.
	Delete(ctx context.Context, userID, collection, key string) error

	// Keys returns the keys in the collection matching a glob pattern.
	Keys(ctx context.Context, userID, collection, pattern string) ([]string, error)

	// Ping verifies that the backing store is reachable.
	Ping(ctx context.Context) error
}
