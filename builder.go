package authsrv

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/redis/go-redis/v9"

	"authsrv/account"
	"authsrv/identity"
	"authsrv/kvstore"
	"authsrv/token"
)

// Builder wires a [Service] and validates its configuration. Use [New],
// chain the With methods, then call [Builder.Build] once.
type Builder struct {
	config   Config
	redis    redis.UniversalClient
	resolver identity.Resolver
	random   io.Reader

	built bool
}

// New returns a [Builder] preloaded with [DefaultConfig].
func New() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis sets the store connection. Required.
func (b *Builder) WithRedis(rdb redis.UniversalClient) *Builder {
	b.redis = rdb
	return b
}

// WithResolver sets the external identity resolver. Optional; without it the
// external register/authenticate flows return [ErrServiceNotReady].
func (b *Builder) WithResolver(r identity.Resolver) *Builder {
	b.resolver = r
	return b
}

// WithRandom replaces the entropy source used for secret encoding. Defaults
// to [crypto/rand.Reader]; anything weaker is a correctness defect and only
// tests should override this.
func (b *Builder) WithRandom(r io.Reader) *Builder {
	b.random = r
	return b
}

// Build validates the configuration and assembles the [Service].
func (b *Builder) Build() (*Service, error) {
	if b.built {
		return nil, errors.New("builder already consumed")
	}
	if b.redis == nil {
		return nil, errors.New("redis client is required")
	}
	if err := validateConfig(b.config); err != nil {
		return nil, err
	}
	b.built = true

	random := b.random
	if random == nil {
		random = rand.Reader
	}

	store := kvstore.NewClient(b.redis, b.config.Store.OpTimeout)

	return &Service{
		config:   b.config,
		store:    store,
		accounts: account.NewRepository(store, b.config.Store.AccountKeyPrefix),
		tokens:   token.NewIssuer(store, b.config.Store.TokenKeyPrefix, b.config.Token.TTL),
		resolver: b.resolver,
		random:   random,
		metrics:  NewMetrics(b.config.Metrics),
	}, nil
}
