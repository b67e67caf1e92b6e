package authsrv

import (
	"context"
	"fmt"

	"authsrv/secret"
)

// Register creates an account for identity with the supplied plaintext
// secret. The plaintext is encoded (salted, hashed) before anything touches
// the store and is never retained.
//
// A duplicate identity yields [RegisterUserExists], not an error; the
// existing record is left exactly as it was.
func (s *Service) Register(ctx context.Context, identity, plaintext string) (RegisterResult, error) {
	if s.accounts == nil {
		return RegisterResult{}, ErrServiceNotReady
	}
	if identity == "" {
		return RegisterResult{}, ErrIdentityEmpty
	}

	sec, err := secret.Encode(s.random, plaintext)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("encode secret: %w", err)
	}

	created, err := s.accounts.Create(ctx, identity, sec)
	if err != nil {
		return RegisterResult{}, err
	}
	if !created {
		s.metrics.Inc(MetricRegisterDuplicate)
		return RegisterResult{Status: RegisterUserExists, Identity: identity}, nil
	}

	s.metrics.Inc(MetricRegisterSuccess)
	return RegisterResult{Status: RegisterOK, Identity: identity}, nil
}
