package account

import (
	"context"
	"errors"
	"fmt"

	"authsrv/kvstore"
	"authsrv/secret"
)

// ErrCorruptRecord marks a present record that failed to decode. It is
// non-retryable: the record is not repaired and the failure is surfaced
// separately from absence and from store failure.
var ErrCorruptRecord = errors.New("corrupt account record")

// DefaultKeyPrefix is the store namespace for account records.
const DefaultKeyPrefix = "accounts:"

// Repository builds store keys, applies the record codec, and implements
// "create account iff absent" on top of the store's atomic insert.
//
// Repository is safe for concurrent use.
type Repository struct {
	store  *kvstore.Client
	prefix string
}

// NewRepository creates a [Repository]. An empty prefix selects
// [DefaultKeyPrefix].
func NewRepository(store *kvstore.Client, prefix string) *Repository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Repository{store: store, prefix: prefix}
}

func (r *Repository) key(identity string) string {
	return r.prefix + identity
}

// Create writes a new account record iff no record exists for identity.
// It returns true when this call created the record and false when an
// account already existed; an existing record is never overwritten.
func (r *Repository) Create(ctx context.Context, identity string, sec secret.Secret) (bool, error) {
	data, err := Encode(&Account{Identity: identity, Secret: sec})
	if err != nil {
		return false, fmt.Errorf("encode account record: %w", err)
	}

	status, err := r.store.InsertIfAbsent(ctx, r.key(identity), data)
	if err != nil {
		return false, err
	}
	return status == kvstore.Inserted, nil
}

// Lookup fetches the account record for identity. Absence returns (nil, nil).
// A present record that fails to decode returns an error wrapping
// [ErrCorruptRecord].
func (r *Repository) Lookup(ctx context.Context, identity string) (*Account, error) {
	data, found, err := r.store.Fetch(ctx, r.key(identity))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	a, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return a, nil
}
