package authsrv

import (
	"context"
	"fmt"
)

// External flows resolve the provider token first and then run the plain
// register/authenticate path with the resolved identity and an empty-string
// secret: the provider, not this service, performed the real check. The
// salt is still drawn and a hash still stored, so record shapes stay uniform.
//
// Resolved identities and local logins share one namespace; deployments that
// need them separated configure a prefix on the resolver.

// RegisterExternal registers an account for the identity behind
// externalToken. An unrecognized token yields [RegisterUnresolved] with zero
// store traffic.
func (s *Service) RegisterExternal(ctx context.Context, externalToken string) (RegisterResult, error) {
	id, resolved, err := s.resolveExternal(ctx, externalToken)
	if err != nil {
		return RegisterResult{}, err
	}
	if !resolved {
		s.metrics.Inc(MetricExternalUnresolved)
		return RegisterResult{Status: RegisterUnresolved}, nil
	}

	return s.Register(ctx, id, "")
}

// AuthenticateExternal authenticates the identity behind externalToken. An
// unrecognized token yields [AuthUnresolved] with zero store traffic.
func (s *Service) AuthenticateExternal(ctx context.Context, externalToken string) (AuthResult, error) {
	id, resolved, err := s.resolveExternal(ctx, externalToken)
	if err != nil {
		return AuthResult{}, err
	}
	if !resolved {
		s.metrics.Inc(MetricExternalUnresolved)
		return AuthResult{Status: AuthUnresolved}, nil
	}

	return s.Authenticate(ctx, id, "")
}

func (s *Service) resolveExternal(ctx context.Context, externalToken string) (string, bool, error) {
	if s.resolver == nil {
		return "", false, ErrServiceNotReady
	}

	id, resolved, err := s.resolver.Resolve(ctx, externalToken)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrResolverUnavailable, err)
	}
	return id, resolved, nil
}
