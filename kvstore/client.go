package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable wraps every transport or protocol failure returned by the store.
var ErrUnavailable = errors.New("store unavailable")

// ErrInvalidTTL is returned when a set-with-expiry is requested without a positive TTL.
var ErrInvalidTTL = errors.New("ttl must be positive")

// InsertStatus is the closed outcome set of [Client.InsertIfAbsent].
type InsertStatus int

const (
	// Inserted means this call created the key.
	Inserted InsertStatus = iota
	// AlreadyExists means the key was already present and was left untouched.
	AlreadyExists
)

// Client wraps a Redis connection with the three primitives the service
// needs: atomic insert-if-absent, get, and set-with-expiry. Atomicity of
// insert-if-absent is the store's guarantee (SETNX); the client adds none of
// its own coordination.
//
// Client is safe for concurrent use.
type Client struct {
	redis     redis.UniversalClient
	opTimeout time.Duration
}

// NewClient creates a [Client] over the given Redis connection. opTimeout
// bounds each store round trip; zero disables the per-operation deadline and
// leaves timeouts to the underlying client.
func NewClient(rdb redis.UniversalClient, opTimeout time.Duration) *Client {
	return &Client{redis: rdb, opTimeout: opTimeout}
}

func (c *Client) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.opTimeout)
}

// InsertIfAbsent atomically writes value under key only if the key does not
// exist, and reports which case occurred. The status is meaningful only when
// err is nil.
func (c *Client) InsertIfAbsent(ctx context.Context, key string, value []byte) (InsertStatus, error) {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	created, err := c.redis.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		return Inserted, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if created {
		return Inserted, nil
	}
	return AlreadyExists, nil
}

// Fetch reads the value at key. Absence is an ordinary outcome (found=false),
// distinct from store failure.
func (c *Client) Fetch(ctx context.Context, key string) (value []byte, found bool, err error) {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, true, nil
}

// PutWithTTL writes value under key with a store-enforced expiry, replacing
// any previous value and its remaining TTL.
func (c *Client) PutWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.redis.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Ping returns a point-in-time store availability check and its latency.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := c.opContext(ctx)
	defer cancel()

	start := time.Now()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		return time.Since(start), fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return time.Since(start), nil
}
