package authsrv

import (
	"errors"
	"strings"
	"time"

	"authsrv/token"
)

// Config collects the tunables of a [Service]. Instances are configured
// during initialization and treated as immutable afterwards.
type Config struct {
	Store   StoreConfig
	Token   TokenConfig
	Metrics MetricsConfig
}

/*
====================================
STORE CONFIG
====================================
*/

// StoreConfig controls key layout and store round-trip behavior.
//
// The key prefixes are an interoperability contract: existing deployments
// hold records under accounts:<identity> and tokens:<identity>. Change them
// only for a fresh namespace.
type StoreConfig struct {
	AccountKeyPrefix string
	TokenKeyPrefix   string
	// OpTimeout bounds each store round trip. Zero leaves timeouts to the
	// underlying client.
	OpTimeout time.Duration
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig controls token issuance.
type TokenConfig struct {
	// TTL is the store-enforced lifetime of an issued token.
	TTL time.Duration
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the lock-free operation counters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the production defaults: the contractual key
// prefixes, a 60-second token TTL, a 3-second store deadline, and metrics on.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			AccountKeyPrefix: "accounts:",
			TokenKeyPrefix:   "tokens:",
			OpTimeout:        3 * time.Second,
		},
		Token: TokenConfig{
			TTL: token.DefaultTTL,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func validateConfig(cfg Config) error {
	if cfg.Store.AccountKeyPrefix == "" || cfg.Store.TokenKeyPrefix == "" {
		return errors.New("store key prefixes must not be empty")
	}
	if cfg.Store.AccountKeyPrefix == cfg.Store.TokenKeyPrefix {
		return errors.New("account and token key prefixes must differ")
	}
	if strings.ContainsAny(cfg.Store.AccountKeyPrefix, " \t\n") ||
		strings.ContainsAny(cfg.Store.TokenKeyPrefix, " \t\n") {
		return errors.New("store key prefixes must not contain whitespace")
	}
	if cfg.Store.OpTimeout < 0 {
		return errors.New("store op timeout must not be negative")
	}
	if cfg.Token.TTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	return nil
}
