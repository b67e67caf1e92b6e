package authsrv

import "context"

// InspectToken returns the live token for identity, if one exists. Read-only:
// the token's remaining TTL is never refreshed or extended.
func (s *Service) InspectToken(ctx context.Context, identity string) (string, bool, error) {
	if s.tokens == nil {
		return "", false, ErrServiceNotReady
	}

	value, live, err := s.tokens.Inspect(ctx, identity)
	if err != nil {
		return "", false, err
	}
	if live {
		s.metrics.Inc(MetricTokenInspected)
	}
	return value, live, nil
}
