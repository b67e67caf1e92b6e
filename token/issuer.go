package token

import (
	"context"
	"time"

	"github.com/google/uuid"

	"authsrv/kvstore"
)

// DefaultKeyPrefix is the store namespace for token records.
const DefaultKeyPrefix = "tokens:"

// DefaultTTL is the lifetime of an issued token.
const DefaultTTL = 60 * time.Second

// Issuer generates opaque session tokens and records them in the store,
// keyed by account identity, with a fixed time-to-live.
//
// Issuer is safe for concurrent use.
type Issuer struct {
	store  *kvstore.Client
	prefix string
	ttl    time.Duration
}

// NewIssuer creates an [Issuer]. An empty prefix selects [DefaultKeyPrefix];
// a non-positive ttl selects [DefaultTTL].
func NewIssuer(store *kvstore.Client, prefix string, ttl time.Duration) *Issuer {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{store: store, prefix: prefix, ttl: ttl}
}

func (i *Issuer) key(identity string) string {
	return i.prefix + identity
}

// Issue generates a fresh UUID-v4 token for identity, records it with the
// configured TTL, and returns it. Any previous token for the identity is
// replaced the moment the write commits.
func (i *Issuer) Issue(ctx context.Context, identity string) (string, error) {
	value := uuid.New().String()
	if err := i.store.PutWithTTL(ctx, i.key(identity), []byte(value), i.ttl); err != nil {
		return "", err
	}
	return value, nil
}

// Inspect returns the live token for identity, if any. Read-only: the
// remaining TTL is left untouched.
func (i *Issuer) Inspect(ctx context.Context, identity string) (string, bool, error) {
	value, found, err := i.store.Fetch(ctx, i.key(identity))
	if err != nil || !found {
		return "", false, err
	}
	return string(value), true, nil
}
