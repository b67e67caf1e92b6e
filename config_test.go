package authsrv

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := validateConfig(DefaultConfig()); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestDefaultConfigContract(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Store.AccountKeyPrefix != "accounts:" {
		t.Fatalf("account key prefix is a store contract, got %q", cfg.Store.AccountKeyPrefix)
	}
	if cfg.Store.TokenKeyPrefix != "tokens:" {
		t.Fatalf("token key prefix is a store contract, got %q", cfg.Store.TokenKeyPrefix)
	}
	if cfg.Token.TTL != 60*time.Second {
		t.Fatalf("token ttl defaults to 60s, got %v", cfg.Token.TTL)
	}
}

func TestValidateConfigRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty account prefix", func(c *Config) { c.Store.AccountKeyPrefix = "" }},
		{"empty token prefix", func(c *Config) { c.Store.TokenKeyPrefix = "" }},
		{"colliding prefixes", func(c *Config) { c.Store.TokenKeyPrefix = c.Store.AccountKeyPrefix }},
		{"whitespace prefix", func(c *Config) { c.Store.AccountKeyPrefix = "accounts :" }},
		{"negative op timeout", func(c *Config) { c.Store.OpTimeout = -time.Second }},
		{"zero token ttl", func(c *Config) { c.Token.TTL = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := validateConfig(cfg); err == nil {
				t.Fatal("expected validation to fail")
			}
		})
	}
}

func TestBuilderRequiresRedis(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatal("expected Build to fail without a redis client")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	_, rdb := newTestRedis(t)

	b := New().WithRedis(rdb)
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected second Build on the same builder to fail")
	}
}
