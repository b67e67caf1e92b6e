package authsrv

import (
	"context"
	"io"
	"time"

	"authsrv/account"
	"authsrv/identity"
	"authsrv/kvstore"
	"authsrv/token"
)

// Service composes the account repository, the token issuer, and the secret
// codec behind the five operations the HTTP layer consumes. Construct it with
// [Builder.Build]; a zero Service is not usable.
//
// Every method may suspend on store round trips and is safe for concurrent
// use. Authentication is not transactional across its steps: between "secret
// verified" and "token issued", a concurrent login for the same identity may
// also issue a token, and the last write wins.
type Service struct {
	config   Config
	store    *kvstore.Client
	accounts *account.Repository
	tokens   *token.Issuer
	resolver identity.Resolver
	random   io.Reader
	metrics  *Metrics
}

// MetricsSnapshot exposes the operation counters, for exporters.
func (s *Service) MetricsSnapshot() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// Ping reports store availability and round-trip latency.
func (s *Service) Ping(ctx context.Context) (time.Duration, error) {
	return s.store.Ping(ctx)
}
