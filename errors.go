package authsrv

import "errors"

var (
	// ErrServiceNotReady is returned when a Service method is called before a
	// required dependency was wired through the builder.
	ErrServiceNotReady = errors.New("service not initialized")
	// ErrIdentityEmpty is returned when registration is attempted with an
	// empty identity string.
	ErrIdentityEmpty = errors.New("identity must not be empty")
	// ErrResolverUnavailable wraps transport failures from the external
	// identity provider.
	ErrResolverUnavailable = errors.New("identity provider unavailable")
)
