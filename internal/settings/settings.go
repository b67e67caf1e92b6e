// Package settings loads the daemon's runtime settings from an optional YAML
// file layered under AUTHSRV_* environment overrides. A .env file in the
// working directory is honored via godotenv before the environment is read.
//
// The library core is configured through [authsrv.Config]; this package only
// exists for the authsrv binary and maps onto the daemon's concerns: listen
// address, logging, store address, token lifetime, identity provider.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the daemon looks for its settings file when no
// -config flag is given. A missing file is not an error; defaults and
// environment overrides apply.
const DefaultPath = "authsrv.yaml"

// Settings is the daemon's runtime configuration.
type Settings struct {
	ListenAddr string   `yaml:"listen_addr"`
	LogLevel   string   `yaml:"log_level"`
	Redis      Redis    `yaml:"redis"`
	Token      Token    `yaml:"token"`
	External   External `yaml:"external"`
}

// Redis locates the key-value store.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Token controls issued-token lifetime.
type Token struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// External locates the identity provider endpoint. IdentityPrefix, when set,
// is prepended to every resolved identity to keep provider identities out of
// the local login namespace.
type External struct {
	Endpoint       string `yaml:"endpoint"`
	IdentityPrefix string `yaml:"identity_prefix"`
}

// Default returns the daemon defaults.
func Default() Settings {
	return Settings{
		ListenAddr: ":8080",
		LogLevel:   "info",
		Redis: Redis{
			Addr: "127.0.0.1:6379",
		},
		Token: Token{
			TTLSeconds: 60,
		},
		External: External{
			Endpoint: "https://graph.facebook.com/me",
		},
	}
}

// Load reads settings from path (missing file uses defaults), then applies
// environment overrides and validates the result.
func Load(path string) (*Settings, error) {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return nil, fmt.Errorf("parse settings file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Defaults plus environment.
		default:
			return nil, fmt.Errorf("read settings file %s: %w", path, err)
		}
	}

	if err := applyEnv(&s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func applyEnv(s *Settings) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString("AUTHSRV_LISTEN_ADDR", &s.ListenAddr)
	setString("AUTHSRV_LOG_LEVEL", &s.LogLevel)
	setString("AUTHSRV_REDIS_ADDR", &s.Redis.Addr)
	setString("AUTHSRV_REDIS_PASSWORD", &s.Redis.Password)
	setString("AUTHSRV_FB_ENDPOINT", &s.External.Endpoint)
	setString("AUTHSRV_IDENTITY_PREFIX", &s.External.IdentityPrefix)

	if v, ok := os.LookupEnv("AUTHSRV_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AUTHSRV_REDIS_DB: %w", err)
		}
		s.Redis.DB = db
	}
	if v, ok := os.LookupEnv("AUTHSRV_TOKEN_TTL_SECONDS"); ok {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AUTHSRV_TOKEN_TTL_SECONDS: %w", err)
		}
		s.Token.TTLSeconds = ttl
	}
	return nil
}

func (s *Settings) validate() error {
	if s.ListenAddr == "" {
		return errors.New("listen_addr must not be empty")
	}
	if s.Redis.Addr == "" {
		return errors.New("redis.addr must not be empty")
	}
	if s.Token.TTLSeconds <= 0 {
		return errors.New("token.ttl_seconds must be positive")
	}
	if s.External.Endpoint == "" {
		return errors.New("external.endpoint must not be empty")
	}
	return nil
}
