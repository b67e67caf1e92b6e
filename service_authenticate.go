package authsrv

import (
	"context"

	"authsrv/secret"
)

// Authenticate verifies the supplied plaintext against the stored secret for
// identity and issues a fresh token on success.
//
// An unknown identity and a wrong secret produce the same
// [AuthInvalidCredentials] result, so callers cannot enumerate identities
// from the response shape. Store and corruption failures are errors, never
// domain results.
func (s *Service) Authenticate(ctx context.Context, identity, plaintext string) (AuthResult, error) {
	if s.accounts == nil || s.tokens == nil {
		return AuthResult{}, ErrServiceNotReady
	}

	acc, err := s.accounts.Lookup(ctx, identity)
	if err != nil {
		return AuthResult{}, err
	}
	if acc == nil || !secret.Verify(acc.Secret, plaintext) {
		s.metrics.Inc(MetricLoginFailure)
		return AuthResult{Status: AuthInvalidCredentials, Identity: identity}, nil
	}

	value, err := s.tokens.Issue(ctx, identity)
	if err != nil {
		return AuthResult{}, err
	}

	s.metrics.Inc(MetricLoginSuccess)
	s.metrics.Inc(MetricTokenIssued)
	return AuthResult{Status: AuthToken, Identity: identity, Token: value}, nil
}
